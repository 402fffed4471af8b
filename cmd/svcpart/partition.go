package main

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/svcgraph/partitioner/core"
	"github.com/svcgraph/partitioner/internal/config"
	"github.com/svcgraph/partitioner/internal/telemetry"
	"github.com/svcgraph/partitioner/render"
	"github.com/svcgraph/partitioner/treebtp"
	"github.com/svcgraph/partitioner/treemtp"
)

func partitionCmd() *cobra.Command {
	var (
		example string
		graph   string
		algo    string
		cpEnd   int
		memory  int64
		cores   int64
		latency int64
		delay   int64
		unit    int64
		plot    string
	)

	cmd := &cobra.Command{
		Use:   "partition",
		Short: "Partition a service graph with the tree DP (meta or bottom-up)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			log := telemetry.NewLogger(cfg.Log.Level, cfg.Log.Format)

			if !cmd.Flags().Changed("memory") {
				memory = cfg.Bounds.Memory
			}
			if !cmd.Flags().Changed("cores") {
				cores = cfg.Bounds.Cores
			}
			if !cmd.Flags().Changed("latency") {
				latency = cfg.Bounds.Latency
			}
			if !cmd.Flags().Changed("delay") {
				delay = cfg.Bounds.Delay
			}
			if !cmd.Flags().Changed("unit") {
				unit = cfg.Bounds.Unit
			}

			g, err := loadGraph(example, graph)
			if err != nil {
				return err
			}
			if cpEnd == 0 {
				nodes := g.Nodes()
				cpEnd = nodes[len(nodes)-1]
			}

			var reg *prometheus.Registry
			var metrics *telemetry.Metrics
			if cfg.Metrics.Enabled {
				reg = prometheus.NewRegistry()
				metrics = telemetry.NewMetrics(reg)
			}

			start := time.Now()
			var (
				res      render.Partitioning
				cutsUsed int
			)
			switch algo {
			case "mtp":
				r, err := treemtp.Partition(g, treemtp.Options{
					M: memory, N: cores, L: latency, CPEnd: cpEnd, Delay: delay, Unit: unit,
				})
				if err != nil {
					return err
				}
				res = render.Partitioning{Barriers: r.Barriers, Blocks: r.Blocks, Cost: r.Cost, Feasible: r.Feasible}
				cutsUsed = r.CutsUsed
			case "btp":
				r, err := treebtp.Partition(g, treebtp.Options{
					M: memory, N: cores, L: latency, CPEnd: cpEnd, Delay: delay, Unit: unit,
				})
				if err != nil {
					return err
				}
				res = render.Partitioning{Barriers: r.Barriers, Blocks: r.Blocks, Cost: r.Cost, Feasible: r.Feasible}
				cutsUsed = r.CutsUsed
			default:
				return fmt.Errorf("unknown --algo %q (want mtp or btp)", algo)
			}
			elapsed := time.Since(start)

			log.Info().Str("algo", algo).Dur("elapsed", elapsed).
				Bool("feasible", res.Feasible).Int64("cost", res.Cost).Int("cuts", cutsUsed).
				Msg("partitioning complete")
			if metrics != nil {
				outcome := "infeasible"
				if res.Feasible {
					outcome = "feasible"
				}
				metrics.PartitionDuration.WithLabelValues(algo).Observe(elapsed.Seconds())
				metrics.PartitionTotal.WithLabelValues(algo, outcome).Inc()
			}

			render.PrintSummary(cmd.OutOrStdout(), g, res)

			if plot != "" && res.Feasible {
				if err := plotCriticalPath(g, res, cpEnd, plot); err != nil {
					log.Warn().Err(err).Msg("plotting critical path failed")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&example, "example", "", "built-in example graph (daytime, nighttime)")
	cmd.Flags().StringVar(&graph, "graph", "", "path to a YAML service graph (see graphio)")
	cmd.Flags().StringVar(&algo, "algo", "btp", "tree DP variant: mtp or btp")
	cmd.Flags().IntVar(&cpEnd, "cp-end", 0, "critical path tail node (0 = highest-numbered node)")
	cmd.Flags().Int64Var(&memory, "memory", 0, "per-block memory bound M in MB (0 = unbounded)")
	cmd.Flags().Int64Var(&cores, "cores", 0, "per-block CPU bound N (0 = unbounded)")
	cmd.Flags().Int64Var(&latency, "latency", 0, "critical-path latency bound L in ms (0 = unbounded)")
	cmd.Flags().Int64Var(&delay, "delay", 1, "cold-invocation gap between blocks in ms")
	cmd.Flags().Int64Var(&unit, "unit", 100, "billing rounding unit in ms")
	cmd.Flags().StringVar(&plot, "plot", "", "write a PNG timeline of the critical path to this path")

	return cmd
}

func plotCriticalPath(g *core.ServiceGraph, res render.Partitioning, cpEnd int, path string) error {
	cpath := g.PathTo(cpEnd)
	runtime := make(map[int]int64, len(cpath))
	blockOf := make(map[int]int, len(cpath))
	for _, id := range cpath {
		if id == core.PLATFORM {
			continue
		}
		runtime[id] = g.Runtime(id)
	}
	for i, blk := range res.Blocks {
		for _, id := range blk {
			blockOf[id] = i
		}
	}
	return render.PlotTimeline(cpath, runtime, blockOf, path)
}
