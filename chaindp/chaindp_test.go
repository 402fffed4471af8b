package chaindp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svcgraph/partitioner/chaindp"
)

var (
	runtime = []int64{20, 40, 50, 20, 70, 40, 50, 60, 40, 10}
	memory  = []int64{3, 3, 2, 1, 2, 1, 2, 1, 2, 3}
	rate    = []int64{1, 1, 2, 2, 1, 3, 1, 2, 1, 3}
)

// TestPartition_UnconstrainedLatency covers scenario 1: a chain with
// M=6, N=3 and unconstrained latency.
func TestPartition_UnconstrainedLatency(t *testing.T) {
	res, err := chaindp.Partition(chaindp.Input{
		Runtime: runtime, Memory: memory, Rate: rate,
		M: 6, N: 3, Delay: 10, Unit: 100,
	})
	require.NoError(t, err)
	require.True(t, res.Feasible)
	assert.NotEmpty(t, res.Barriers)
	assert.Equal(t, 0, res.Barriers[0])
}

// TestPartition_TightLatencyInfeasible covers scenario 2's tight case: with
// L set to exactly the runtime floor plus one delay unit, memory forces an
// extra cut the latency budget cannot afford.
func TestPartition_TightLatencyInfeasible(t *testing.T) {
	const start, end, delay = 1, 8, 10
	var floor int64
	for i := start; i <= end; i++ {
		floor += runtime[i]
	}
	res, err := chaindp.Partition(chaindp.Input{
		Runtime: runtime, Memory: memory, Rate: rate,
		M: 6, N: 3, L: floor + delay,
		Start: start, End: end, Delay: delay, Unit: 100,
	})
	require.NoError(t, err)
	assert.False(t, res.Feasible)
	assert.Equal(t, chaindp.ReasonRegionEmpty, res.Reason)
}

// TestPartition_SingleNode covers scenario 5.
func TestPartition_SingleNode(t *testing.T) {
	res, err := chaindp.Partition(chaindp.Input{
		Runtime: []int64{50}, Memory: []int64{2}, Rate: []int64{3},
		Unit: 100,
	})
	require.NoError(t, err)
	require.True(t, res.Feasible)
	assert.Equal(t, []int{0}, res.Barriers)
	assert.EqualValues(t, 3*100, res.Cost)
	assert.EqualValues(t, 50, res.Latency)
}

// TestPartition_LatencyBelowFloorIsInfeasible exercises the preflight
// latency-lower-bound check directly.
func TestPartition_LatencyBelowFloorIsInfeasible(t *testing.T) {
	res, err := chaindp.Partition(chaindp.Input{
		Runtime: runtime, Memory: memory, Rate: rate,
		M: 6, N: 3, L: 1, Delay: 10, Unit: 100,
	})
	require.NoError(t, err)
	assert.False(t, res.Feasible)
	assert.Equal(t, chaindp.ReasonLatencyBound, res.Reason)
	assert.Greater(t, res.LatencyFloor, int64(0))
}

// TestPartition_RejectsMismatchedVectors exercises the ill-formed-input
// error path.
func TestPartition_RejectsMismatchedVectors(t *testing.T) {
	_, err := chaindp.Partition(chaindp.Input{
		Runtime: []int64{1, 2}, Memory: []int64{1}, Rate: []int64{1, 1},
	})
	assert.ErrorIs(t, err, chaindp.ErrInvalidInput)
}

// TestPartitionVectorized_MatchesPartition exercises the vectorized code
// path against the reference implementation across several bound regimes.
func TestPartitionVectorized_MatchesPartition(t *testing.T) {
	cases := []chaindp.Input{
		{Runtime: runtime, Memory: memory, Rate: rate, M: 6, N: 3, Delay: 10, Unit: 100},
		{Runtime: runtime, Memory: memory, Rate: rate, M: 10, N: 2, Delay: 5, Unit: 50},
		{Runtime: runtime, Memory: memory, Rate: rate, Delay: 1, Unit: 100},
	}
	for _, in := range cases {
		want, err := chaindp.Partition(in)
		require.NoError(t, err)
		got, err := chaindp.PartitionVectorized(in)
		require.NoError(t, err)
		assert.Equal(t, want.Feasible, got.Feasible)
		assert.Equal(t, want.Barriers, got.Barriers)
		assert.Equal(t, want.Cost, got.Cost)
		assert.Equal(t, want.Latency, got.Latency)
	}
}
