package treemtp

import (
	"github.com/svcgraph/partitioner/core"
)

// recreateBlocks expands a barrier set into the member-node blocks it
// induces, via core.Blocks.
func recreateBlocks(g *core.ServiceGraph, barr map[int]bool) [][]int {
	barriers := make([]int, 0, len(barr))
	for b := range barr {
		barriers = append(barriers, b)
	}
	return core.Blocks(g, barriers)
}
