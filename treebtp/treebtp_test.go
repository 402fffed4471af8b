package treebtp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svcgraph/partitioner/chaindp"
	"github.com/svcgraph/partitioner/core"
	"github.com/svcgraph/partitioner/treebtp"
)

func buildChain(t *testing.T, runtime, memory, rate []int64) *core.ServiceGraph {
	t.Helper()
	g := core.NewServiceGraph()
	for i, rt := range runtime {
		require.NoError(t, g.AddNode(i+1, rt, memory[i]))
	}
	require.NoError(t, g.AddEdge(core.PLATFORM, 1, rate[0]))
	for i := 1; i < len(runtime); i++ {
		require.NoError(t, g.AddEdge(i, i+1, rate[i]))
	}
	require.NoError(t, g.Finalize())
	return g
}

func TestPartition_ChainShapedTreeMatchesChainDP(t *testing.T) {
	runtime := []int64{20, 40, 50, 20, 70}
	memory := []int64{3, 3, 2, 1, 2}
	rate := []int64{1, 1, 2, 2, 1}
	g := buildChain(t, runtime, memory, rate)

	want, err := chaindp.Partition(chaindp.Input{
		Runtime: runtime, Memory: memory, Rate: rate, M: 6, N: 3, Delay: 10, Unit: 100,
	})
	require.NoError(t, err)
	require.True(t, want.Feasible)

	got, err := treebtp.Partition(g, treebtp.Options{M: 6, N: 3, CPEnd: 5, Delay: 10, Unit: 100})
	require.NoError(t, err)
	require.True(t, got.Feasible)
	assert.Equal(t, want.Cost, got.Cost)
}

func TestPartition_UnreachableCPEnd(t *testing.T) {
	g := buildChain(t, []int64{10, 10}, []int64{1, 1}, []int64{1, 1})
	_, err := treebtp.Partition(g, treebtp.Options{CPEnd: 99})
	assert.ErrorIs(t, err, treebtp.ErrUnreachableCPEnd)
}

func TestPartition_BlocksCoverEveryNode(t *testing.T) {
	runtime := []int64{20, 40, 50, 20, 70}
	memory := []int64{3, 3, 2, 1, 2}
	rate := []int64{1, 1, 2, 2, 1}
	g := buildChain(t, runtime, memory, rate)

	res, err := treebtp.Partition(g, treebtp.Options{M: 6, N: 3, CPEnd: 5, Delay: 10, Unit: 100})
	require.NoError(t, err)
	require.True(t, res.Feasible)

	seen := map[int]bool{}
	for _, blk := range res.Blocks {
		for _, v := range blk {
			seen[v] = true
		}
	}
	assert.Len(t, seen, len(runtime))
}
