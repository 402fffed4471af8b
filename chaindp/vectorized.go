package chaindp

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/svcgraph/partitioner/block"
)

// PartitionVectorized is behaviorally identical to Partition — same
// recurrence, same tie-break, same early-termination pruning — but derives
// each row's block memory and runtime sums from precomputed prefix sums
// (via gonum/floats.CumSum) instead of an incremental per-cell
// accumulator, trading the accumulator's O(1)-amortized walk for O(1)
// random-access lookups into a once-built prefix array. Output is
// bit-for-bit identical to Partition on Barriers, Cost, and Latency.
func PartitionVectorized(in Input) (Result, error) {
	n, M, N, L, delay, unit, start, end := normalize(&in)
	if n == 0 || len(in.Memory) != n || len(in.Rate) != n {
		return Result{}, ErrInvalidInput
	}
	for _, r := range in.Rate {
		if r <= 0 {
			return Result{}, ErrInvalidInput
		}
	}

	rtF := toFloat(in.Runtime)
	memF := toFloat(in.Memory)
	rtPrefix := make([]float64, n+1)
	memPrefix := make([]float64, n+1)
	copy(rtPrefix[1:], rtF)
	copy(memPrefix[1:], memF)
	floats.CumSum(rtPrefix, rtPrefix)
	floats.CumSum(memPrefix, memPrefix)

	rangeSum := func(prefix []float64, b, w int) int64 {
		return int64(math.Round(prefix[w+1] - prefix[b]))
	}

	var latMin int64
	for i := start; i <= end; i++ {
		latMin += in.Runtime[i]
	}
	if L < latMin {
		return Result{Feasible: false, Reason: ReasonLatencyBound, LatencyFloor: latMin}, nil
	}

	memSub := rangeSum(memPrefix, start, end)
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
	kMax := int64(math.Floor(math.Min(float64(L-latMin)/float64(delay)+1, float64(n))))
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

	costOf := func(b, w int) int64 {
		rt := rangeSum(rtPrefix, b, w)
		billed := int64(math.Ceil(float64(rt)/float64(unit))) * unit
		return in.Rate[b] * billed
	}

	for w := 0; w < n; w++ {
		mem := rangeSum(memPrefix, 0, w)
		cpu := block.CPU(in.Rate, 0, w)
		if mem > M || int64(cpu) > N {
			break
		}
		dp[w][0] = block.State{
			Barr:     0,
			Cost:     costOf(0, w),
			Lat:      block.Latency(in.Runtime, 0, w, delay, start, end),
			Feasible: true,
		}
	}

	for w := 1; w < n; w++ {
		for k := 1; k <= w; k++ {
			for b := w; b >= k; b-- {
				mem := rangeSum(memPrefix, b, w)
				cpu := block.CPU(in.Rate, b, w)
				if mem > M || int64(cpu) > N {
					break
				}
				prev := dp[b-1][k-1]
				if !prev.Feasible {
					continue
				}
				lat := prev.Lat + block.Latency(in.Runtime, b, w, delay, start, end)
				if lat > L {
					continue
				}
				cost := prev.Cost + costOf(b, w)
				if !dp[w][k].Feasible || cost <= dp[w][k].Cost {
					dp[w][k] = block.State{Barr: b, Cost: cost, Lat: lat, Feasible: true}
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

	res := Result{Cost: dp[n-1][kOpt].Cost, Latency: dp[n-1][kOpt].Lat, Feasible: true}
	if in.RetDP {
		res.DP = dp
	}
	res.Barriers = extractBarriers(dp, n-1, kOpt)
	return res, nil
}

func toFloat(xs []int64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}
