package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/devdollz/swarm-go/internal/bridge"
	"github.com/devdollz/swarm-go/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and transport reachability",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		tr := buildTransport(cfg.Transport)
		mode := bridge.ModeLive
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		if err := tr.Init(ctx); err != nil {
			mode = bridge.ModeSimulated
			fmt.Printf("transport %s: unreachable (%v)\n", tr.Name(), err)
		} else {
			fmt.Printf("transport %s: ready\n", tr.Name())
			_ = tr.Close()
		}

		fmt.Printf("mode: %s\n", mode)
		fmt.Printf("worker: %s (queue %d, poll %dms, yield %dms)\n",
			cfg.Worker.Name, cfg.Worker.QueueSize, cfg.Worker.PollTimeoutMS, cfg.Worker.YieldMS)
		fmt.Printf("generator: enabled=%v model=%s\n", cfg.Generator.Enabled, cfg.Generator.Model)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
