package main

import (
	"fmt"
	"os"

	"github.com/svcgraph/partitioner/core"
	"github.com/svcgraph/partitioner/examples"
	"github.com/svcgraph/partitioner/graphio"
)

// loadGraph resolves --example/--graph into a finalized ServiceGraph.
// Exactly one of example or path must be non-empty.
func loadGraph(example, path string) (*core.ServiceGraph, error) {
	switch {
	case example != "" && path != "":
		return nil, fmt.Errorf("specify only one of --example or --graph")
	case example != "":
		switch example {
		case "daytime":
			return examples.DaytimeService(), nil
		case "nighttime":
			return examples.NighttimeService(), nil
		default:
			return nil, fmt.Errorf("unknown --example %q (want daytime or nighttime)", example)
		}
	case path != "":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		return graphio.Decode(f)
	default:
		return nil, fmt.Errorf("one of --example or --graph is required")
	}
}
