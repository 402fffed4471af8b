package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/svcgraph/partitioner/internal/config"
	"github.com/svcgraph/partitioner/internal/telemetry"
	"github.com/svcgraph/partitioner/simulate"
)

func simulateCmd() *cobra.Command {
	var (
		example string
		graph   string
		workers int
		scale   float64
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate bounded-concurrency execution of a service graph",
		Long: `simulate runs every node of a service graph concurrently, honoring
each node's predecessor dependency and a worker cap, and reports the
makespan. It never drives the DP core itself; it exists to let you
observe how a partitioning behaves under bounded concurrency.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			log := telemetry.NewLogger(cfg.Log.Level, cfg.Log.Format)

			if cmd.Flags().Changed("graph") {
				example = ""
			}
			g, err := loadGraph(example, graph)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			report, err := simulate.Run(ctx, g, simulate.Options{Workers: workers, Scale: scale, Logger: log})
			if err != nil {
				return fmt.Errorf("simulate: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "makespan: %s (workers=%d)\n", report.Makespan, workers)
			return nil
		},
	}

	cmd.Flags().StringVar(&example, "example", "daytime", "built-in example graph (daytime, nighttime)")
	cmd.Flags().StringVar(&graph, "graph", "", "path to a YAML service graph (see graphio)")
	cmd.Flags().IntVar(&workers, "workers", 4, "maximum concurrent node executions")
	cmd.Flags().Float64Var(&scale, "scale", 0.01, "runtime scale factor (1ms real time per 100ms simulated)")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall simulation timeout")

	return cmd
}
