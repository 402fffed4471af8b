package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svcgraph/partitioner/core"
	"github.com/svcgraph/partitioner/oracle"
	"github.com/svcgraph/partitioner/treebtp"
	"github.com/svcgraph/partitioner/treemtp"
)

// buildBranchingTree builds:
//
//	1 -> 2 -> 4 -> 5   (critical path continues through 2,4,5)
//	1 -> 3 -> 6
func buildBranchingTree(t *testing.T) *core.ServiceGraph {
	t.Helper()
	g := core.NewServiceGraph()
	runtime := map[int]int64{1: 20, 2: 40, 3: 30, 4: 50, 5: 20, 6: 25}
	memory := map[int]int64{1: 2, 2: 3, 3: 2, 4: 1, 5: 2, 6: 1}
	for id, rt := range runtime {
		require.NoError(t, g.AddNode(id, rt, memory[id]))
	}
	require.NoError(t, g.AddEdge(core.PLATFORM, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(1, 3, 1))
	require.NoError(t, g.AddEdge(2, 4, 2))
	require.NoError(t, g.AddEdge(4, 5, 1))
	require.NoError(t, g.AddEdge(3, 6, 3))
	require.NoError(t, g.Finalize())
	return g
}

func TestMTPBTPOracle_AgreeOnBranchingTree(t *testing.T) {
	g := buildBranchingTree(t)
	const M, N, L, cpEnd, delay, unit = 5, 3, int64(500), 5, int64(10), int64(100)

	mtp, err := treemtp.Partition(g, treemtp.Options{M: M, N: N, L: L, CPEnd: cpEnd, Delay: delay, Unit: unit})
	require.NoError(t, err)
	require.True(t, mtp.Feasible)

	btp, err := treebtp.Partition(g, treebtp.Options{M: M, N: N, L: L, CPEnd: cpEnd, Delay: delay, Unit: unit})
	require.NoError(t, err)
	require.True(t, btp.Feasible)

	orc := oracle.Tree(g, oracle.TreeOptions{M: M, N: N, L: L, CPEnd: cpEnd, Delay: delay, Unit: unit})
	require.True(t, orc.Feasible)

	assert.Equal(t, mtp.Cost, btp.Cost)
	assert.Equal(t, mtp.Cost, orc.Cost)
}

func TestMTPBTPOracle_AgreeUnderTightLatency(t *testing.T) {
	g := buildBranchingTree(t)
	const M, N, L, cpEnd, delay, unit = 5, 3, int64(60), 5, int64(10), int64(100)

	mtp, err := treemtp.Partition(g, treemtp.Options{M: M, N: N, L: L, CPEnd: cpEnd, Delay: delay, Unit: unit})
	require.NoError(t, err)

	orc := oracle.Tree(g, oracle.TreeOptions{M: M, N: N, L: L, CPEnd: cpEnd, Delay: delay, Unit: unit})

	assert.Equal(t, orc.Feasible, mtp.Feasible)
	if mtp.Feasible && orc.Feasible {
		assert.Equal(t, mtp.Cost, orc.Cost)
	}
}
