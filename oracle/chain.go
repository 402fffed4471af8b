package oracle

import (
	"math"

	"github.com/svcgraph/partitioner/block"
	"github.com/svcgraph/partitioner/chaindp"
)

// ChainResult holds every equi-optimal barrier set found by Chain, plus
// their shared cost and latency.
type ChainResult struct {
	Partitions [][]int
	Cost       int64
	Latency    int64
	Feasible   bool
}

// Chain exhaustively enumerates every feasible cut-position subset of
// in's chain, tracking the minimum-cost partition(s). c_min — the
// memory-driven lower bound on the number of cuts — lets it skip subsets
// too small to ever satisfy M, matching the chain cut generator's own
// pruning.
func Chain(in chaindp.Input) ChainResult {
	n := len(in.Runtime)
	M, N, L := in.M, in.N, in.L
	if M <= 0 {
		M = math.MaxInt64 / 4
	}
	if N <= 0 {
		N = math.MaxInt64 / 4
	}
	if L <= 0 {
		L = math.MaxInt64 / 4
	}
	delay := in.Delay
	if delay <= 0 {
		delay = 1
	}
	unit := in.Unit
	if unit <= 0 {
		unit = 100
	}
	start, end := in.Start, in.End
	if end < 0 {
		end = n - 1
	}

	var memTotal int64
	for _, m := range in.Memory {
		memTotal += m
	}
	cMin := int(math.Ceil(float64(memTotal)/float64(M))) - 1
	if cMin < 0 {
		cMin = 0
	}

	positions := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		positions = append(positions, i)
	}

	res := ChainResult{Cost: math.MaxInt64 / 4}
	for _, cuts := range subsetsFrom(positions, cMin) {
		barr := append([]int{0}, cuts...)
		blocks := blocksFromBarriers(barr, n)

		feasible := true
		for _, blk := range blocks {
			b, w := blk[0], blk[len(blk)-1]
			if block.Memory(in.Memory, b, w) > M || int64(block.CPU(in.Rate, b, w)) > N {
				feasible = false
				break
			}
		}
		if !feasible {
			continue
		}

		var cost, lat int64
		for _, blk := range blocks {
			b, w := blk[0], blk[len(blk)-1]
			cost += block.Cost(in.Runtime, in.Rate, b, w, unit)
			lat += block.Latency(in.Runtime, b, w, delay, start, end)
		}
		if lat > L {
			continue
		}
		switch {
		case cost == res.Cost:
			res.Partitions = append(res.Partitions, barr)
		case cost < res.Cost:
			res.Partitions = [][]int{barr}
			res.Cost = cost
			res.Latency = lat
		}
	}
	res.Feasible = len(res.Partitions) > 0
	return res
}

// blocksFromBarriers expands a sorted barrier list into the member blocks
// it induces over a chain of n nodes.
func blocksFromBarriers(barr []int, n int) [][]int {
	blocks := make([][]int, 0, len(barr))
	for i, b := range barr {
		end := n
		if i+1 < len(barr) {
			end = barr[i+1]
		}
		blk := make([]int, 0, end-b)
		for v := b; v < end; v++ {
			blk = append(blk, v)
		}
		blocks = append(blocks, blk)
	}
	return blocks
}

// subsetsFrom enumerates every subset of items whose size is >= minSize,
// in bitmask order (not ordered by size). items must fit in a uint (<=~20
// for practical runtimes).
func subsetsFrom(items []int, minSize int) [][]int {
	n := len(items)
	var out [][]int
	for mask := 0; mask < (1 << n); mask++ {
		var subset []int
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				subset = append(subset, items[i])
			}
		}
		if len(subset) >= minSize {
			out = append(out, subset)
		}
	}
	return out
}
