package treemtp

import (
	"errors"
	"math"

	"github.com/svcgraph/partitioner/chaindp"
	"github.com/svcgraph/partitioner/core"
)

// ErrUnreachableCPEnd indicates Options.CPEnd is not a descendant of the
// graph's root, so no critical path exists between them.
var ErrUnreachableCPEnd = errors.New("treemtp: cp_end is not reachable from root")

// TPart is a tree-DP subcase cell: the barrier set and cost of the best
// known partitioning of a subtree using a given number of critical-path
// cuts. Feasible is false for a cell that was never written.
type TPart struct {
	Barr     map[int]bool
	Cost     int64
	Feasible bool
}

// Options configures Partition.
type Options struct {
	M, N, L     int64
	CPEnd       int
	Delay, Unit int64
	OnlyBarr    bool

	// Partitioner solves each extracted sub-chain; defaults to
	// chaindp.Partition when nil.
	Partitioner chaindp.Partitioner
}

// Result is the outcome of Partition.
type Result struct {
	Barriers []int   // populated when Options.OnlyBarr
	Blocks   [][]int // populated otherwise
	Cost     int64
	CutsUsed int
	Feasible bool
}

// Partition computes the minimum-cost partitioning of g by threading
// Options.Partitioner through the graph's branching skeleton in post-order,
// tracking how many cuts are spent on the critical path root -> CPEnd.
func Partition(g *core.ServiceGraph, opt Options) (Result, error) {
	partition := opt.Partitioner
	if partition == nil {
		partition = chaindp.Partition
	}
	delay := opt.Delay
	if delay <= 0 {
		delay = 1
	}
	unit := opt.Unit
	if unit <= 0 {
		unit = 100
	}
	L := opt.L
	if L <= 0 {
		L = math.MaxInt64 / 4
	}

	root := g.Root()
	cpath := g.PathTo(opt.CPEnd)
	if cpath == nil {
		return Result{}, ErrUnreachableCPEnd
	}
	cpathSet := pathSet(cpath)

	var cpathRuntime int64
	for _, v := range cpath {
		cpathRuntime += g.Runtime(v)
	}
	cMax64 := int64(math.Floor(math.Min(float64(L-cpathRuntime)/float64(delay), float64(len(cpath)-1))))
	if cMax64 < 0 {
		return Result{Feasible: false}, nil
	}
	cMax := int(cMax64)

	dp := make(map[int][]TPart)
	blank := func() []TPart { return make([]TPart, cMax+1) }

	for _, pair := range g.PostOrder() {
		pred, n := pair.Pred, pair.Node
		if !g.IsBranching(pred) && pred != core.PLATFORM {
			continue
		}
		row := blank()
		dp[n] = row

		if g.IsLeaf(n) {
			rate, _ := g.Rate(pred, n)
			res, err := partition(chaindp.Input{
				Runtime: []int64{g.Runtime(n)}, Memory: []int64{g.Memory(n)}, Rate: []int64{rate},
				M: opt.M, N: opt.N, Delay: delay, Unit: unit,
			})
			if err != nil {
				return Result{}, err
			}
			cell := TPart{Barr: singleton(n), Cost: res.Cost, Feasible: res.Feasible}
			if n == opt.CPEnd {
				for c := 0; c <= cMax; c++ {
					row[c] = cell
				}
			} else {
				row[0] = cell
			}
			if !row[0].Feasible && !row[cMax].Feasible {
				return Result{Feasible: false}, nil
			}
			continue
		}

		for _, cand := range subchains(g, n, cpathSet) {
			subchain := append(append([]int{}, cand.Head...), cand.Tail...)
			runtime, memory, rate := g.Chain(pred, subchain)

			var sumMCost int64
			var sumMBarr []map[int]bool
			for _, m := range cand.Branches {
				if cpathSet[m] {
					continue
				}
				mrow := dp[m]
				if mrow == nil || !mrow[0].Feasible {
					sumMCost = math.MaxInt64 / 4
					continue
				}
				sumMCost += mrow[0].Cost
				sumMBarr = append(sumMBarr, mrow[0].Barr)
			}
			branchBarr := union(sumMBarr...)

			onCpath := cpathSet[n]
			switch {
			case !onCpath:
				res, err := partition(chaindp.Input{Runtime: runtime, Memory: memory, Rate: rate, M: opt.M, N: opt.N, Delay: delay, Unit: unit})
				if err != nil {
					return Result{}, err
				}
				if res.Feasible {
					sumCost := res.Cost + sumMCost
					if !row[0].Feasible || sumCost < row[0].Cost {
						row[0] = TPart{Barr: union(subchainBarrSet(subchain, res.Barriers), branchBarr), Cost: sumCost, Feasible: true}
					}
				}

			case subchain[len(subchain)-1] == opt.CPEnd && subchain[0] == root:
				res, err := partition(chaindp.Input{Runtime: runtime, Memory: memory, Rate: rate, M: opt.M, N: opt.N, L: L, End: len(subchain) - 1, Delay: delay, Unit: unit})
				if err != nil {
					return Result{}, err
				}
				if !res.Feasible {
					return Result{Feasible: false}, nil
				}
				sumCost := res.Cost + sumMCost
				cell := TPart{Barr: union(subchainBarrSet(subchain, res.Barriers), branchBarr), Cost: sumCost, Feasible: true}
				for c := len(res.Barriers) - 1; c <= cMax; c++ {
					if !row[c].Feasible || sumCost < row[c].Cost {
						row[c] = cell
					}
				}

			case subchain[len(subchain)-1] == opt.CPEnd:
				res, err := partition(chaindp.Input{Runtime: runtime, Memory: memory, Rate: rate, M: opt.M, N: opt.N, Delay: delay, Unit: unit, RetDP: true})
				if err != nil {
					return Result{}, err
				}
				if !res.Feasible {
					continue
				}
				lastRow := res.DP[len(subchain)-1]
				var best TPart
				haveBest := false
				bestRaw := int64(math.MaxInt64)
				for c := 0; c <= cMax; c++ {
					if c < len(subchain) {
						cell := lastRow[c]
						if cell.Feasible && (!haveBest || cell.Cost < bestRaw) {
							barr := chaindp.ExtractBarriers(res.DP, len(subchain)-1, c)
							best = TPart{
								Barr:     union(subchainBarrSet(subchain, barr), branchBarr),
								Cost:     cell.Cost + sumMCost,
								Feasible: true,
							}
							bestRaw = cell.Cost
							haveBest = true
						}
					}
					if haveBest && (!row[c].Feasible || best.Cost < row[c].Cost) {
						row[c] = best
					}
				}

			default:
				head := cand.Head
				mCp := -1
				for _, m := range g.Successors(head[len(head)-1]) {
					if cpathSet[m] {
						mCp = m
						break
					}
				}
				mRow := dp[mCp]
				type cached struct {
					Barr []int
					Cost int64
				}
				cache := make(map[int]cached)
				headLen := len(head)
				var headRuntime int64
				for _, v := range head {
					headRuntime += g.Runtime(v)
				}
				for k := 0; k < cMax; k++ {
					if mRow == nil || !mRow[k].Feasible {
						continue
					}
					if k > 0 && mRow[k-1].Feasible && mRow[k-1].Cost <= mRow[k].Cost {
						continue
					}
					for cHead := cMax - k - 1; cHead >= 0; cHead-- {
						var barr []int
						var cost int64
						if c, ok := cache[cHead]; ok {
							barr, cost = c.Barr, c.Cost
						} else {
							lHead := headRuntime + int64(cHead)*delay
							res, err := partition(chaindp.Input{
								Runtime: runtime[:headLen], Memory: memory[:headLen], Rate: rate[:headLen],
								M: opt.M, N: opt.N, L: lHead, Start: 0, End: headLen - 1, Delay: delay, Unit: unit,
							})
							if err != nil {
								return Result{}, err
							}
							if !res.Feasible {
								break
							}
							barr, cost = res.Barriers, res.Cost
							for cc := cHead; cc >= len(barr)-1; cc-- {
								cache[cc] = cached{Barr: barr, Cost: cost}
							}
						}
						c := k + cHead + 1
						sumCost := cost + mRow[k].Cost + sumMCost
						if !row[c].Feasible || sumCost < row[c].Cost {
							row[c] = TPart{
								Barr:     union(subchainBarrSet(head, barr), mRow[k].Barr, branchBarr),
								Cost:     sumCost,
								Feasible: true,
							}
						}
					}
				}
			}
		}

		if !row[0].Feasible && !row[cMax].Feasible {
			return Result{Feasible: false}, nil
		}
	}

	rootRow := dp[root]
	cOpt := 0
	for c := 1; c <= cMax; c++ {
		if rootRow[c].Feasible && (!rootRow[cOpt].Feasible || rootRow[c].Cost < rootRow[cOpt].Cost) {
			cOpt = c
		}
	}
	if !rootRow[cOpt].Feasible {
		return Result{Feasible: false}, nil
	}

	res := Result{Cost: rootRow[cOpt].Cost, CutsUsed: cOpt, Feasible: true}
	if opt.OnlyBarr {
		res.Barriers = sortedSlice(rootRow[cOpt].Barr)
	} else {
		res.Blocks = recreateBlocks(g, rootRow[cOpt].Barr)
	}
	return res, nil
}

// subchainBarrSet maps a chain-DP barrier list (indices into subchain) to
// the corresponding graph node IDs.
func subchainBarrSet(subchain, barriers []int) map[int]bool {
	out := make(map[int]bool, len(barriers))
	for _, b := range barriers {
		out[subchain[b]] = true
	}
	return out
}
