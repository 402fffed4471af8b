package treebtp

import (
	"sort"

	"github.com/svcgraph/partitioner/core"
)

type barrierCut struct {
	node, cuts int
}

// walkBlocks reconstructs every block of the optimal partitioning by
// following each subcase's cached tail node back up to its barrier,
// pushing every sibling branch encountered along the way as a fresh
// (barrier, cuts) seed to process.
func walkBlocks(g *core.ServiceGraph, dp *table, root int, cpath map[int]bool, cOpt int) [][]int {
	remaining := make(map[int]bool)
	for _, id := range g.Nodes() {
		remaining[id] = true
	}

	var blocks [][]int
	stack := []barrierCut{{root, cOpt}}
	for len(stack) > 0 {
		bc := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		b, c := bc.node, bc.cuts

		best, ok := dp.row(b)[c].best()
		if !ok {
			continue
		}
		w := best.W

		var blk []int
		prior := -1
		for prior != b {
			for _, m := range g.Successors(w) {
				if m != prior {
					if cpath[m] {
						stack = append(stack, barrierCut{m, c - 1})
					} else {
						stack = append(stack, barrierCut{m, 0})
					}
				}
			}
			blk = append(blk, w)
			delete(remaining, w)
			prior = w
			next, _ := g.Predecessor(w)
			w = next
		}
		if len(blk) == 0 || blk[len(blk)-1] != b {
			blk = append(blk, b)
		}
		for i, j := 0, len(blk)-1; i < j; i, j = i+1, j-1 {
			blk[i], blk[j] = blk[j], blk[i]
		}
		blocks = append(blocks, blk)
	}

	sort.Slice(blocks, func(i, j int) bool { return blocks[i][0] < blocks[j][0] })
	return blocks
}

func extractBlocks(g *core.ServiceGraph, dp *table, root int, cpath map[int]bool, cOpt int) [][]int {
	return walkBlocks(g, dp, root, cpath, cOpt)
}

func extractBarriers(g *core.ServiceGraph, dp *table, root int, cpath map[int]bool, cOpt int) []int {
	blocks := walkBlocks(g, dp, root, cpath, cOpt)
	out := make([]int, 0, len(blocks))
	for _, blk := range blocks {
		out = append(out, blk[0])
	}
	sort.Ints(out)
	return out
}
