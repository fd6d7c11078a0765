package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlpub/watset-go/builder"
	"github.com/nlpub/watset-go/graph"
)

func TestFromEdges_DedupsVertices(t *testing.T) {
	g, err := builder.FromEdges([]builder.Triple[string]{
		{From: "a", To: "b", Weight: 1},
		{From: "b", To: "c", Weight: 1},
		{From: "a", To: "c", Weight: 1},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, g.VertexSet())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestFromEdges_PropagatesAddEdgeError(t *testing.T) {
	_, err := builder.FromEdges([]builder.Triple[string]{
		{From: "a", To: "a", Weight: 1},
	})
	assert.ErrorIs(t, err, graph.ErrSelfLoop)
}

func TestFromVerticesAndEdges_KeepsIsolatedVertices(t *testing.T) {
	g, err := builder.FromVerticesAndEdges(
		[]string{"a", "b", "isolated"},
		[]builder.Triple[string]{{From: "a", To: "b", Weight: 1}},
	)
	require.NoError(t, err)
	assert.True(t, g.HasVertex("isolated"))
	assert.Equal(t, 0, g.Degree("isolated"))
}
