package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/devdollz/swarm-go/internal/bus"
	"github.com/devdollz/swarm-go/internal/config"
	"github.com/devdollz/swarm-go/internal/envelope"
	"github.com/devdollz/swarm-go/internal/worker"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Run the task worker loop, fed by stdin lines (kind:content, or \"stop\")",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		in := bus.NewQueue(cfg.Worker.QueueSize)
		out := bus.NewResultQueue(cfg.Worker.QueueSize)
		w := worker.New(cfg.Worker.Name, in, out, worker.DefaultRegistry(), worker.Options{
			PollTimeout: time.Duration(cfg.Worker.PollTimeoutMS) * time.Millisecond,
			Yield:       time.Duration(cfg.Worker.YieldMS) * time.Millisecond,
		})

		// Print results as they arrive.
		go func() {
			for {
				data, err := out.Pop(time.Second)
				if errors.Is(err, bus.ErrTimeout) {
					if w.State() == worker.StateStopped && out.Len() == 0 {
						return
					}
					continue
				}
				res, err := envelope.Decode(data)
				if err != nil {
					continue
				}
				fmt.Printf("[%s] %s\n", res.Status(), res.Content)
			}
		}()

		// Feed tasks from stdin.
		go func() {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "stop" {
					in.PushStop()
					return
				}
				kind, content := envelope.KindCustom, line
				if i := strings.Index(line, ":"); i > 0 {
					kind, content = line[:i], line[i+1:]
				}
				in.PushTask(envelope.NewTask(kind, content).Encode())
			}
			in.PushStop()
		}()

		return w.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
