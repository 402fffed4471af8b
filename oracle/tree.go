package oracle

import (
	"math"
	"sort"

	"github.com/svcgraph/partitioner/block"
	"github.com/svcgraph/partitioner/core"
)

// TreeOptions configures Tree.
type TreeOptions struct {
	M, N, L     int64
	CPEnd       int
	Delay, Unit int64
}

// TreeResult holds every equi-optimal block partition found by Tree, plus
// their shared cost and latency.
type TreeResult struct {
	Partitions [][][]int
	Cost       int64
	Latency    int64
	Feasible   bool
}

// Tree exhaustively enumerates every feasible barrier set over g (every
// subset of non-root nodes as forced cuts), keeping only those whose
// induced blocks are simple chains (no block may itself branch — a
// partitioning the chain DP inside could not represent), and tracks the
// minimum-cost partition(s) that meet M, N, and L. c_min — the
// memory-driven lower bound on the number of cuts — lets it skip subsets
// too small to ever satisfy M, the same pruning ichains_exhaustive
// applies before generating chain candidates.
func Tree(g *core.ServiceGraph, opt TreeOptions) TreeResult {
	M, N, L := opt.M, opt.N, opt.L
	if M <= 0 {
		M = math.MaxInt64 / 4
	}
	if N <= 0 {
		N = math.MaxInt64 / 4
	}
	if L <= 0 {
		L = math.MaxInt64 / 4
	}
	delay := opt.Delay
	if delay <= 0 {
		delay = 1
	}
	unit := opt.Unit
	if unit <= 0 {
		unit = 100
	}

	root := g.Root()
	cpath := g.PathTo(opt.CPEnd)
	var cpathRuntime int64
	for _, v := range cpath {
		cpathRuntime += g.Runtime(v)
	}

	var cuttable []int
	var memTotal int64
	for _, id := range g.Nodes() {
		if id != root {
			cuttable = append(cuttable, id)
			memTotal += g.Memory(id)
		}
	}
	cMin := int(math.Ceil(float64(memTotal)/float64(M))) - 1
	if cMin < 0 {
		cMin = 0
	}

	res := TreeResult{Cost: math.MaxInt64 / 4}
	for _, cuts := range subsetsFrom(cuttable, cMin) {
		barr := make(map[int]bool, len(cuts)+1)
		barr[root] = true
		for _, c := range cuts {
			barr[c] = true
		}

		blocks, ok := chainBlocks(g, barr)
		if !ok {
			continue
		}

		var cost int64
		var memOK, cpuOK = true, true
		for _, blk := range blocks {
			pred, _ := g.Predecessor(blk[0])
			runtime, memory, rate := g.Chain(pred, blk)
			if block.Memory(memory, 0, len(blk)-1) > M {
				memOK = false
				break
			}
			if int64(block.CPU(rate, 0, len(blk)-1)) > N {
				cpuOK = false
				break
			}
			cost += block.Cost(runtime, rate, 0, len(blk)-1, unit)
		}
		if !memOK || !cpuOK {
			continue
		}

		cutsOnCPath := 0
		for _, v := range cpath {
			if v != root && barr[v] {
				cutsOnCPath++
			}
		}
		lat := cpathRuntime + int64(cutsOnCPath)*delay
		if lat > L {
			continue
		}

		switch {
		case cost == res.Cost:
			res.Partitions = append(res.Partitions, blocks)
		case cost < res.Cost:
			res.Partitions = [][][]int{blocks}
			res.Cost = cost
			res.Latency = lat
		}
	}
	res.Feasible = len(res.Partitions) > 0
	return res
}

// chainBlocks expands barr into member blocks, rejecting any barrier set
// whose induced block branches internally (more than one in-block child
// at any member) since such a block is not representable as a chain.
func chainBlocks(g *core.ServiceGraph, barr map[int]bool) ([][]int, bool) {
	owner := make(map[int]int)
	groups := make(map[int][]int)
	root := g.Root()
	owner[root] = root
	groups[root] = append(groups[root], root)

	stack := []int{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range g.Successors(n) {
			if barr[c] {
				owner[c] = c
			} else {
				owner[c] = owner[n]
			}
			groups[owner[c]] = append(groups[owner[c]], c)
			stack = append(stack, c)
		}
	}

	blocks := make([][]int, 0, len(groups))
	for head, members := range groups {
		inBlockChildren := make(map[int]int, len(members))
		memberSet := make(map[int]bool, len(members))
		for _, m := range members {
			memberSet[m] = true
		}
		for _, m := range members {
			for _, c := range g.Successors(m) {
				if memberSet[c] {
					inBlockChildren[m]++
				}
			}
			if inBlockChildren[m] > 1 {
				return nil, false
			}
		}
		ordered := orderChain(g, head, memberSet)
		blocks = append(blocks, ordered)
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i][0] < blocks[j][0] })
	return blocks, true
}

// orderChain walks head down through its single in-set child at each step,
// producing the chain order a block's members form.
func orderChain(g *core.ServiceGraph, head int, memberSet map[int]bool) []int {
	out := []int{head}
	cur := head
	for {
		var next = -1
		for _, c := range g.Successors(cur) {
			if memberSet[c] {
				next = c
				break
			}
		}
		if next < 0 {
			break
		}
		out = append(out, next)
		cur = next
	}
	return out
}
