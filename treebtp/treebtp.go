package treebtp

import (
	"errors"
	"math"

	"github.com/svcgraph/partitioner/core"
)

// ErrUnreachableCPEnd indicates Options.CPEnd is not a descendant of root.
var ErrUnreachableCPEnd = errors.New("treebtp: cp_end is not reachable from root")

// TBlock is a BTP subcase cell: the best (or a Pareto-candidate) head
// block of a subtree partitioning, keyed externally by (node, cuts).
// W is the tail node of the head block (its barrier is the DP node
// itself); Cumsum is that block's own runtime sum, kept so merging a
// parent in can recompute cost/CPU incrementally rather than re-summing.
type TBlock struct {
	W        int
	SumCost  int64
	Cumsum   int64
	Mem      int64
	MaxRate  int64
	CPU      int64
	Feasible bool
}

// Options configures Partition.
type Options struct {
	M, N, L     int64
	CPEnd       int
	Delay, Unit int64
	OnlyBarr    bool
}

// Result is the outcome of Partition.
type Result struct {
	Barriers []int
	Blocks   [][]int
	Cost     int64
	CutsUsed int
	Feasible bool
}

// queue is a Pareto-minimal candidate list for one (node, cuts) subcase;
// the front entry, when present, is always the cheapest feasible one.
type queue []TBlock

func (q queue) best() (TBlock, bool) {
	if len(q) == 0 {
		return TBlock{}, false
	}
	return q[0], true
}

type table struct {
	rows map[int][]queue
	cMax int
}

func newTable(cMax int) *table {
	return &table{rows: make(map[int][]queue), cMax: cMax}
}

func (t *table) row(node int) []queue {
	r, ok := t.rows[node]
	if !ok {
		r = make([]queue, t.cMax+1)
		t.rows[node] = r
	}
	return r
}

func (t *table) min(node, c int) (int64, bool) {
	if c < 0 || c > t.cMax {
		return 0, false
	}
	blk, ok := t.row(node)[c].best()
	if !ok {
		return 0, false
	}
	return blk.SumCost, true
}

func (t *table) insert(M, N int64, node, c int, blk TBlock) {
	if !blk.Feasible || blk.Mem > M || blk.CPU > N {
		return
	}
	row := t.row(node)
	q := row[c]
	if best, ok := q.best(); ok && blk.SumCost <= best.SumCost {
		row[c] = append(queue{blk}, q...)
	} else {
		row[c] = append(q, blk)
	}
	t.rows[node] = row
}

func (t *table) clear(node, c int) {
	row := t.row(node)
	if best, ok := row[c].best(); ok {
		row[c] = queue{best}
		t.rows[node] = row
	}
}

func costFrom(rate, cumsum, unit int64) int64 {
	billed := int64(math.Ceil(float64(cumsum)/float64(unit))) * unit
	return rate * billed
}

// Partition computes the minimum-cost partitioning of g directly, without
// reducing to chain DP, per the bottom-up recursive recurrence.
func Partition(g *core.ServiceGraph, opt Options) (Result, error) {
	delay := opt.Delay
	if delay <= 0 {
		delay = 1
	}
	unit := opt.Unit
	if unit <= 0 {
		unit = 100
	}
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

	root := g.Root()
	cpathList := g.PathTo(opt.CPEnd)
	if cpathList == nil {
		return Result{}, ErrUnreachableCPEnd
	}
	cpath := make(map[int]bool, len(cpathList))
	var cpathRuntime int64
	for _, v := range cpathList {
		cpath[v] = true
		cpathRuntime += g.Runtime(v)
	}
	cMax64 := int64(math.Floor(math.Min(float64(L-cpathRuntime)/float64(delay), float64(len(cpathList)-1))))
	if cMax64 < 0 {
		return Result{Feasible: false}, nil
	}
	cMax := int(cMax64)

	dp := newTable(cMax)

	for _, pair := range g.PostOrder() {
		p, n := pair.Pred, pair.Node
		nMem := g.Memory(n)
		nRate, _ := g.Rate(p, n)
		children := g.Successors(n)

		if len(children) == 0 {
			cost := costFrom(nRate, g.Runtime(n), unit)
			dp.insert(M, N, n, 0, TBlock{W: n, SumCost: cost, Cumsum: g.Runtime(n), Mem: nMem, MaxRate: nRate, CPU: 1, Feasible: true})
			continue
		}

		var sumMCost int64
		for _, m := range children {
			if cpath[m] {
				continue
			}
			c, ok := dp.min(m, 0)
			if !ok {
				sumMCost = math.MaxInt64 / 4
				continue
			}
			sumMCost += c
		}

		nCost := costFrom(nRate, g.Runtime(n), unit)

		if !cpath[n] {
			dp.insert(M, N, n, 0, TBlock{W: n, SumCost: nCost + sumMCost, Cumsum: g.Runtime(n), Mem: nMem, MaxRate: nRate, CPU: 1, Feasible: true})
			for _, b := range children {
				bMin, _ := dp.min(b, 0)
				mergeInto(dp, g, M, N, unit, p, n, 0, b, 0, sumMCost-bMin)
				dp.clear(b, 0)
			}
			continue
		}

		var mCp int
		for _, m := range children {
			if cpath[m] {
				mCp = m
				break
			}
		}
		for c := 1; c <= cMax; c++ {
			prevCost, ok := dp.min(mCp, c-1)
			if !ok {
				continue
			}
			dp.insert(M, N, n, c, TBlock{
				W: n, SumCost: nCost + sumMCost + prevCost, Cumsum: g.Runtime(n),
				Mem: nMem, MaxRate: nRate, CPU: 1, Feasible: true,
			})
		}
		for _, b := range children {
			if b == mCp {
				for c := 0; c <= cMax; c++ {
					mergeInto(dp, g, M, N, unit, p, n, c, b, c, sumMCost)
					dp.clear(b, c)
				}
				continue
			}
			bMin, _ := dp.min(b, 0)
			mRes := sumMCost - bMin
			for c := 1; c <= cMax; c++ {
				prevCost, ok := dp.min(mCp, c-1)
				if !ok {
					continue
				}
				mergeInto(dp, g, M, N, unit, p, n, c, b, 0, mRes+prevCost)
			}
			dp.clear(b, 0)
		}
	}

	cOpt := 0
	bestCost := int64(math.MaxInt64)
	found := false
	for c := 0; c <= cMax; c++ {
		cost, ok := dp.min(root, c)
		if ok && (!found || cost < bestCost) {
			cOpt, bestCost, found = c, cost, true
		}
	}
	if !found {
		return Result{Feasible: false}, nil
	}

	res := Result{Cost: bestCost, CutsUsed: cOpt, Feasible: true}
	if opt.OnlyBarr {
		res.Barriers = extractBarriers(g, dp, root, cpath, cOpt)
	} else {
		res.Blocks = extractBlocks(g, dp, root, cpath, cOpt)
	}
	return res, nil
}

// mergeInto folds every Pareto candidate in barr's (barr,cB) queue into
// node's (node,cN) queue, replacing the head block's cost/memory/CPU as if
// node itself now heads that block (barr, ..., w) instead of barr.
func mergeInto(dp *table, g *core.ServiceGraph, M, N, unit int64, pred, node, cN, barr, cB int, mCost int64) {
	for _, blk := range dp.row(barr)[cB] {
		if !blk.Feasible {
			continue
		}
		rateNodeBarr, _ := g.Rate(node, barr)
		bBlkCost := costFrom(rateNodeBarr, blk.Cumsum, unit)
		rateEntering, _ := g.Rate(pred, node)
		nCumsum := blk.Cumsum + g.Runtime(node)
		nBlkCost := costFrom(rateEntering, nCumsum, unit)
		nSumCost := blk.SumCost + (nBlkCost - bBlkCost) + mCost
		nMem := blk.Mem + g.Memory(node)
		maxRate := blk.MaxRate
		if rateEntering > maxRate {
			maxRate = rateEntering
		}
		cpu := blk.CPU
		if demand := int64(math.Ceil(float64(maxRate) / float64(rateEntering))); demand > cpu {
			cpu = demand
		}
		dp.insert(M, N, node, cN, TBlock{
			W: blk.W, SumCost: nSumCost, Cumsum: nCumsum, Mem: nMem, MaxRate: maxRate, CPU: cpu, Feasible: true,
		})
	}
}
