package graphgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svcgraph/partitioner/graphgen"
)

func TestGenerate_Deterministic(t *testing.T) {
	opt := graphgen.Options{
		Nodes: 20, BranchProb: 0.3,
		Runtime: graphgen.Range{Min: 10, Max: 200},
		Memory:  graphgen.Range{Min: 1, Max: 10},
		Rate:    graphgen.Range{Min: 1, Max: 5},
		Seed:    7,
	}
	a, err := graphgen.Generate(opt)
	require.NoError(t, err)
	b, err := graphgen.Generate(opt)
	require.NoError(t, err)

	assert.Equal(t, a.Nodes(), b.Nodes())
	for _, id := range a.Nodes() {
		assert.Equal(t, a.Runtime(id), b.Runtime(id))
		assert.Equal(t, a.Memory(id), b.Memory(id))
	}
}

func TestGenerate_ChainWhenBranchProbZero(t *testing.T) {
	g, err := graphgen.Generate(graphgen.Options{
		Nodes: 10, BranchProb: 0,
		Runtime: graphgen.Range{Min: 1, Max: 5},
		Memory:  graphgen.Range{Min: 1, Max: 5},
		Rate:    graphgen.Range{Min: 1, Max: 5},
	})
	require.NoError(t, err)
	for _, id := range g.Nodes() {
		assert.LessOrEqual(t, len(g.Successors(id)), 1)
	}
}
