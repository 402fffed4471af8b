package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/svcgraph/partitioner/core"
)

// Partitioning is the subset of a DP Result every algorithm shares, enough
// to print a summary regardless of which engine produced it.
type Partitioning struct {
	Barriers []int
	Blocks   [][]int
	Cost     int64
	Feasible bool
}

// PrintSummary writes a colorized one-screen summary of res to w: green for
// a feasible partitioning, red for infeasible, barrier IDs highlighted in
// each block.
func PrintSummary(w io.Writer, g *core.ServiceGraph, res Partitioning) {
	status := color.New(color.FgGreen, color.Bold).SprintFunc()
	if !res.Feasible {
		status = color.New(color.FgRed, color.Bold).SprintFunc()
	}
	barrier := color.New(color.FgYellow, color.Bold).SprintFunc()

	fmt.Fprintf(w, "partitioning: %s  cost=%d  blocks=%d\n",
		status(feasibleLabel(res.Feasible)), res.Cost, len(res.Blocks))

	for _, blk := range res.Blocks {
		if len(blk) == 0 {
			continue
		}
		fmt.Fprintf(w, "  block %s: ", barrier(blk[0]))
		for i, id := range blk {
			if i > 0 {
				fmt.Fprint(w, " -> ")
			}
			fmt.Fprintf(w, "%d", id)
		}
		fmt.Fprintln(w)
	}
}

func feasibleLabel(ok bool) string {
	if ok {
		return "FEASIBLE"
	}
	return "INFEASIBLE"
}
