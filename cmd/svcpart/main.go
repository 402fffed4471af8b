// Command svcpart is the CLI front-end for the partitioning engine: it
// loads or generates a service graph, runs the chain/tree DP algorithms
// against it, and prints (or plots) the resulting partition.
//
// None of this file touches the deterministic DP core directly with I/O;
// it only wires config, logging, and metrics around calls into block,
// chaindp, treemtp, and treebtp.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

func main() {
	root := &cobra.Command{
		Use:   "svcpart",
		Short: "Cost-optimal partitioning engine for serverless service graphs",
		Long: `svcpart partitions a directed service graph's nodes into
cost-minimal co-located blocks subject to per-block memory and CPU
bounds and an end-to-end latency bound on a designated critical path.`,
		Example: `  # Partition the bundled daytime car-park example with the bottom-up tree DP
  svcpart partition --example daytime --algo btp --memory 3072 --cores 3 --latency 3400

  # Generate a random 30-node service tree and partition it with the meta tree DP
  svcpart generate --nodes 30 --branch-prob 0.3 --seed 7 > tree.yaml
  svcpart partition --graph tree.yaml --algo mtp --memory 2048 --cores 2

  # Simulate bounded-concurrency execution of the nighttime example
  svcpart simulate --example nighttime --workers 4`,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a svcpart config file (YAML)")

	root.AddCommand(partitionCmd())
	root.AddCommand(generateCmd())
	root.AddCommand(simulateCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
