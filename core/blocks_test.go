package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildChainGraph(t *testing.T) *ServiceGraph {
	t.Helper()
	g := NewServiceGraph()
	require.NoError(t, g.AddNode(1, 10, 10))
	require.NoError(t, g.AddNode(2, 10, 10))
	require.NoError(t, g.AddNode(3, 10, 10))
	require.NoError(t, g.AddEdge(PLATFORM, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.Finalize())
	return g
}

func TestBlocksSingleBarrierIsOneBlock(t *testing.T) {
	g := buildChainGraph(t)
	blocks := Blocks(g, []int{1})
	require.Len(t, blocks, 1)
	assert.Equal(t, []int{1, 2, 3}, blocks[0])
}

func TestBlocksEveryNodeItsOwnBarrier(t *testing.T) {
	g := buildChainGraph(t)
	blocks := Blocks(g, []int{1, 2, 3})
	require.Len(t, blocks, 3)
	for i, blk := range blocks {
		assert.Equal(t, []int{i + 1}, blk)
	}
}

func TestBlocksMiddleBarrier(t *testing.T) {
	g := buildChainGraph(t)
	blocks := Blocks(g, []int{1, 3})
	require.Len(t, blocks, 2)
	assert.Equal(t, []int{1, 2}, blocks[0])
	assert.Equal(t, []int{3}, blocks[1])
}
