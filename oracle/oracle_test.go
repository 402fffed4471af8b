package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svcgraph/partitioner/chaindp"
	"github.com/svcgraph/partitioner/oracle"
)

func TestChain_MatchesScenarioOne(t *testing.T) {
	in := chaindp.Input{
		Runtime: []int64{20, 40, 50, 20, 70, 40, 50, 60, 40, 10},
		Memory:  []int64{3, 3, 2, 1, 2, 1, 2, 1, 2, 3},
		Rate:    []int64{1, 1, 2, 2, 1, 3, 1, 2, 1, 3},
		M:       6, N: 3, Delay: 10, Unit: 100,
	}
	want, err := chaindp.Partition(in)
	require.NoError(t, err)
	require.True(t, want.Feasible)

	got := oracle.Chain(in)
	require.True(t, got.Feasible)
	assert.Equal(t, want.Cost, got.Cost)
}

func TestChain_SingleNode(t *testing.T) {
	in := chaindp.Input{
		Runtime: []int64{42},
		Memory:  []int64{5},
		Rate:    []int64{1},
		M:       10, N: 2, Unit: 100,
	}
	got := oracle.Chain(in)
	require.True(t, got.Feasible)
	assert.Len(t, got.Partitions[0], 1)
}

func TestChain_TightLatencyInfeasible(t *testing.T) {
	in := chaindp.Input{
		Runtime: []int64{20, 40, 50, 20, 70},
		Memory:  []int64{3, 3, 2, 1, 2},
		Rate:    []int64{1, 1, 2, 2, 1},
		M:       6, N: 3, L: 1, Delay: 10, Unit: 100,
	}
	got := oracle.Chain(in)
	assert.False(t, got.Feasible)
}
