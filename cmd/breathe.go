package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/devdollz/swarm-go/internal/bridge"
	"github.com/devdollz/swarm-go/internal/config"
)

var breatheCmd = &cobra.Command{
	Use:   "breathe <thought>...",
	Short: "Submit thoughts to the execution bridge",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		b := bridge.New(buildTransport(cfg.Transport), buildComposer(cfg), bridge.Config{
			QueueSize:   cfg.Bridge.QueueSize,
			InitTimeout: time.Duration(cfg.Bridge.InitTimeoutMS) * time.Millisecond,
		})
		fmt.Printf("bridge mode: %s\n", b.Mode())

		for _, thought := range args {
			if err := b.Submit(thought); err != nil {
				b.Shutdown()
				return err
			}
		}

		// Give queued pulses a moment to finish before stopping the actor.
		for b.Pending() > 0 {
			time.Sleep(50 * time.Millisecond)
		}
		time.Sleep(200 * time.Millisecond)
		b.Shutdown()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(breatheCmd)
}
