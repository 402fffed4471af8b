package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svcgraph/partitioner/core"
)

// buildTestTree is PLATFORM -> 1 -> {2, 3}, where 2 -> 4, with 3's
// edge carrying the higher rate so it stays in 1's block.
func buildTestTree(t *testing.T) *core.ServiceGraph {
	t.Helper()
	g := core.NewServiceGraph()
	require.NoError(t, g.AddNode(1, 10, 10))
	require.NoError(t, g.AddNode(2, 10, 10))
	require.NoError(t, g.AddNode(3, 10, 10))
	require.NoError(t, g.AddNode(4, 10, 10))
	require.NoError(t, g.AddEdge(core.PLATFORM, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1, core.WithData(5)))
	require.NoError(t, g.AddEdge(1, 3, 4, core.WithData(1)))
	require.NoError(t, g.AddEdge(2, 4, 2, core.WithData(1)))
	require.NoError(t, g.Finalize())
	return g
}

func TestMaxRateBarriersKeepsHighestRateChildInParentBlock(t *testing.T) {
	g := buildTestTree(t)
	barriers := MaxRateBarriers(g)

	assert.Contains(t, barriers, 1) // root always a barrier
	assert.Contains(t, barriers, 2) // lower-rate child of branching node 1
	assert.NotContains(t, barriers, 3) // higher-rate child stays with 1
	assert.NotContains(t, barriers, 4) // not a branching node's child
}

func TestSplitClusterAlwaysIncludesRoot(t *testing.T) {
	g := buildTestTree(t)
	barriers, blocks := SplitCluster(g, 2, true)

	assert.Contains(t, barriers, 1)
	assert.LessOrEqual(t, len(barriers)-1, 2) // at most k non-root barriers

	seen := map[int]bool{}
	for _, blk := range blocks {
		for _, id := range blk {
			assert.False(t, seen[id], "node %d appears in more than one block", id)
			seen[id] = true
		}
	}
	for _, id := range g.Nodes() {
		assert.True(t, seen[id], "node %d missing from blocks", id)
	}
}

func TestSplitClusterWithoutFullOmitsBlocks(t *testing.T) {
	g := buildTestTree(t)
	barriers, blocks := SplitCluster(g, 1, false)

	assert.NotEmpty(t, barriers)
	assert.Nil(t, blocks)
}

func TestPathChildrenBetweenSiblings(t *testing.T) {
	g := buildTestTree(t)
	children := pathChildren(g, 2, 3)
	assert.ElementsMatch(t, []int{2, 3}, children)
}

func TestPathChildrenAncestorDescendant(t *testing.T) {
	g := buildTestTree(t)
	children := pathChildren(g, 1, 4)
	assert.ElementsMatch(t, []int{2, 4}, children)
}

func TestPathChildrenSameNode(t *testing.T) {
	g := buildTestTree(t)
	assert.Empty(t, pathChildren(g, 3, 3))
}
