package graphio_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svcgraph/partitioner/examples"
	"github.com/svcgraph/partitioner/graphio"
)

func TestEncodeDecode_RoundTrips(t *testing.T) {
	g := examples.DaytimeService()

	var buf bytes.Buffer
	require.NoError(t, graphio.Encode(&buf, g))

	got, err := graphio.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Nodes(), got.Nodes())
	for _, id := range g.Nodes() {
		assert.Equal(t, g.Runtime(id), got.Runtime(id))
		assert.Equal(t, g.Memory(id), got.Memory(id))
	}
}

func TestDecode_RejectsEmptyDocument(t *testing.T) {
	_, err := graphio.Decode(bytes.NewBufferString("nodes: []\nedges: []\n"))
	assert.ErrorIs(t, err, graphio.ErrEmptyDocument)
}
