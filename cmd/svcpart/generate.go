package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/svcgraph/partitioner/graphgen"
	"github.com/svcgraph/partitioner/graphio"
)

func generateCmd() *cobra.Command {
	var (
		nodes      int
		branchProb float64
		runtimeLo  int64
		runtimeHi  int64
		memoryLo   int64
		memoryHi   int64
		rateLo     int64
		rateHi     int64
		seed       int64
		out        string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random service graph and write it as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphgen.Generate(graphgen.Options{
				Nodes:      nodes,
				BranchProb: branchProb,
				Runtime:    graphgen.Range{Min: runtimeLo, Max: runtimeHi},
				Memory:     graphgen.Range{Min: memoryLo, Max: memoryHi},
				Rate:       graphgen.Range{Min: rateLo, Max: rateHi},
				Seed:       seed,
			})
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("generate: creating %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			return graphio.Encode(w, g)
		},
	}

	cmd.Flags().IntVar(&nodes, "nodes", 10, "number of non-platform nodes")
	cmd.Flags().Float64Var(&branchProb, "branch-prob", 0, "probability a node gains a second child (0 = pure chain)")
	cmd.Flags().Int64Var(&runtimeLo, "runtime-min", 10, "minimum per-node runtime in ms")
	cmd.Flags().Int64Var(&runtimeHi, "runtime-max", 500, "maximum per-node runtime in ms")
	cmd.Flags().Int64Var(&memoryLo, "memory-min", 64, "minimum per-node memory in MB")
	cmd.Flags().Int64Var(&memoryHi, "memory-max", 1024, "maximum per-node memory in MB")
	cmd.Flags().Int64Var(&rateLo, "rate-min", 1, "minimum per-edge invocation rate")
	cmd.Flags().Int64Var(&rateHi, "rate-max", 5, "maximum per-edge invocation rate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "deterministic RNG seed (0 = default)")
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")

	return cmd
}
