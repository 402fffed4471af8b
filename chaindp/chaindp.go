package chaindp

import (
	"errors"
	"math"

	"github.com/svcgraph/partitioner/block"
)

// ErrInvalidInput indicates the chain vectors are missing or inconsistent:
// empty, mismatched lengths, or a non-positive rate entry.
var ErrInvalidInput = errors.New("chaindp: invalid input")

// unbounded is the internal sentinel for an unset M/N/L bound. It must be
// large enough that "x + unbounded" comparisons never overflow int64 for
// any realistic cost/latency accumulation, yet never itself arise from
// legitimate input arithmetic.
const unbounded int64 = math.MaxInt64 / 4

// Reason explains why a Result is infeasible.
type Reason int

const (
	// ReasonNone means the result is feasible (or Feasible is irrelevant).
	ReasonNone Reason = iota
	// ReasonLatencyBound means L is below the subchain's runtime floor:
	// no partition, however fine, can meet the latency budget.
	ReasonLatencyBound
	// ReasonRegionEmpty means the M/N/L region admits no valid cut count
	// (k_max < k_min), or the DP found no feasible cell at all.
	ReasonRegionEmpty
)

// Input is a chain of n nodes with per-node runtime/memory and per-edge
// invocation rate, plus the (M, N, L) bounds and billing parameters the DP
// optimizes under.
type Input struct {
	// Runtime, Memory, Rate are per-node vectors of equal length n.
	// Rate[i] is the rate of the edge entering node i.
	Runtime, Memory, Rate []int64

	// M, N, L are the memory, CPU, and latency bounds. A value <= 0
	// means unconstrained (+Inf in spec terms).
	M, N, L int64

	// Start, End delimit the latency-relevant subchain, 0-indexed and
	// inclusive. End < 0 defaults to n-1; Start defaults to 0.
	Start, End int

	// Delay is the cold-invocation gap charged when the latency path
	// crosses into a block from the left. <= 0 defaults to 1.
	Delay int64

	// Unit is the billing rounding unit in ms. <= 0 defaults to 100.
	Unit int64

	// RetDP requests the full DP table in Result.DP for use by treemtp,
	// which needs more than just the optimal barrier set.
	RetDP bool
}

// Result is the outcome of Partition: either a feasible optimal partition
// (Barriers, Cost, Latency all meaningful) or an infeasible marker
// (Feasible false, Reason set, LatencyFloor set for ReasonLatencyBound).
type Result struct {
	Barriers []int
	Cost     int64
	Latency  int64
	Feasible bool
	Reason   Reason

	// LatencyFloor is the minimum possible latency on the subchain,
	// populated only when Reason == ReasonLatencyBound.
	LatencyFloor int64

	// DP is the full cell table, populated only when Input.RetDP is true.
	// DP[w][k] is the best subcase partitioning nodes [0,w] into k+1
	// blocks.
	DP [][]block.State
}

func normalize(in *Input) (n int, M, N, L, delay, unit int64, start, end int) {
	n = len(in.Runtime)
	M, N, L = in.M, in.N, in.L
	if M <= 0 {
		M = unbounded
	}
	if N <= 0 {
		N = unbounded
	}
	if L <= 0 {
		L = unbounded
	}
	delay = in.Delay
	if delay <= 0 {
		delay = 1
	}
	unit = in.Unit
	if unit <= 0 {
		unit = 100
	}
	start = in.Start
	end = in.End
	if end < 0 {
		end = n - 1
	}
	return
}

// Partition computes the minimum-cost barrier set for in, per the chain DP
// recurrence: DP[w][k] = min over b in [k,w] of DP[b-1][k-1].Cost +
// cost(b,w), subject to memory(b,w) <= M, cpu(b,w) <= N, and
// DP[b-1][k-1].Lat + latency(b,w) <= L. Ties overwrite (<=), biasing the
// choice toward larger trailing blocks and therefore lower latency and
// fewer cuts.
func Partition(in Input) (Result, error) {
	n, M, N, L, delay, unit, start, end := normalize(&in)
	if n == 0 || len(in.Memory) != n || len(in.Rate) != n {
		return Result{}, ErrInvalidInput
	}
	for _, r := range in.Rate {
		if r <= 0 {
			return Result{}, ErrInvalidInput
		}
	}

	var latMin int64
	for i := start; i <= end; i++ {
		latMin += in.Runtime[i]
	}
	if L < latMin {
		return Result{Feasible: false, Reason: ReasonLatencyBound, LatencyFloor: latMin}, nil
	}

	var memSub int64
	for i := start; i <= end; i++ {
		memSub += in.Memory[i]
	}
	kMinMem := int64(math.Ceil(float64(memSub) / float64(M)))
	var kMinCPU int64
	for i := 0; i+1 < n; i++ {
		if int64(math.Ceil(float64(in.Rate[i+1])/float64(in.Rate[i]))) > N {
			kMinCPU++
		}
	}
	kMin := kMinMem
	if kMinCPU > kMin {
		kMin = kMinCPU
	}
	kMaxF := math.Min(float64(L-latMin)/float64(delay)+1, float64(n))
	kMax := int64(math.Floor(kMaxF))
	if kMax < kMin {
		return Result{Feasible: false, Reason: ReasonRegionEmpty}, nil
	}

	if n == 1 {
		cost := block.Cost(in.Runtime, in.Rate, 0, 0, unit)
		lat := block.Latency(in.Runtime, 0, 0, delay, start, end)
		return Result{Barriers: []int{0}, Cost: cost, Latency: lat, Feasible: true}, nil
	}

	dp := make([][]block.State, n)
	for i := range dp {
		dp[i] = make([]block.State, n)
	}

	for w := 0; w < n; w++ {
		mem := block.Memory(in.Memory, 0, w)
		cpu := block.CPU(in.Rate, 0, w)
		if mem > M || int64(cpu) > N {
			break
		}
		dp[w][0] = block.State{
			Barr:     0,
			Cost:     block.Cost(in.Runtime, in.Rate, 0, w, unit),
			Lat:      block.Latency(in.Runtime, 0, w, delay, start, end),
			Feasible: true,
		}
	}

	for w := 1; w < n; w++ {
		acc := block.NewAccumulator(in.Runtime, in.Memory, in.Rate, delay, start, end, unit, w)
		for k := 1; k <= w; k++ {
			acc.Reset(w)
			for b := w; b >= k; b-- {
				var mem, cost, lat int64
				var cpu int
				if b == w {
					mem, cost, lat, cpu = acc.Current()
				} else {
					_, mem, cost, lat, cpu = acc.Prepend()
				}
				if mem > M || int64(cpu) > N {
					break
				}
				prev := dp[b-1][k-1]
				if !prev.Feasible {
					continue
				}
				newLat := prev.Lat + lat
				if newLat > L {
					continue
				}
				newCost := prev.Cost + cost
				if !dp[w][k].Feasible || newCost <= dp[w][k].Cost {
					dp[w][k] = block.State{Barr: b, Cost: newCost, Lat: newLat, Feasible: true}
				}
			}
			if !dp[w][k].Feasible && dp[w][k-1].Feasible {
				break
			}
		}
	}

	kOpt := 0
	for k := 1; k < n; k++ {
		if dp[n-1][k].Feasible && (!dp[n-1][kOpt].Feasible || dp[n-1][k].Cost < dp[n-1][kOpt].Cost) {
			kOpt = k
		}
	}
	if !dp[n-1][kOpt].Feasible {
		return Result{Feasible: false, Reason: ReasonRegionEmpty}, nil
	}

	res := Result{
		Cost:     dp[n-1][kOpt].Cost,
		Latency:  dp[n-1][kOpt].Lat,
		Feasible: true,
	}
	if in.RetDP {
		res.DP = dp
	}
	res.Barriers = extractBarriers(dp, n-1, kOpt)
	return res, nil
}

// ExtractBarriers backtracks from (w,k) following dp[w][k].Barr, recovering
// the barrier list in ascending order. Exported so treemtp can recover
// barriers from a full DP table (Input.RetDP) at cut counts other than the
// chain-optimal one, needed by its tail-of-critical-path case.
func ExtractBarriers(dp [][]block.State, w, k int) []int {
	return extractBarriers(dp, w, k)
}

// extractBarriers backtracks from (w,k) following DP[w][k].Barr, recovering
// the barrier list in ascending order.
func extractBarriers(dp [][]block.State, w, k int) []int {
	barr := make([]int, 0, k+1)
	for ; k >= 0; k-- {
		b := dp[w][k].Barr
		barr = append(barr, b)
		w = b - 1
	}
	for i, j := 0, len(barr)-1; i < j; i, j = i+1, j-1 {
		barr[i], barr[j] = barr[j], barr[i]
	}
	return barr
}
