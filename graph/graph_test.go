package graph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlpub/watset-go/graph"
)

func TestGraph_AddEdge_RejectsSelfLoop(t *testing.T) {
	g := graph.NewGraph[string]()
	_, err := g.AddEdge("a", "a", 1)
	assert.ErrorIs(t, err, graph.ErrSelfLoop)
}

func TestGraph_AddEdge_RejectsBadWeights(t *testing.T) {
	g := graph.NewGraph[string]()

	_, err := g.AddEdge("a", "b", -1)
	assert.ErrorIs(t, err, graph.ErrNegativeWeight)

	_, err = g.AddEdge("a", "b", math.NaN())
	assert.ErrorIs(t, err, graph.ErrNonFiniteWeight)

	_, err = g.AddEdge("a", "b", math.Inf(1))
	assert.ErrorIs(t, err, graph.ErrNonFiniteWeight)
}

func TestGraph_AddEdge_RejectsParallelEdge(t *testing.T) {
	g := graph.NewGraph[string]()
	_, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)

	_, err = g.AddEdge("a", "b", 2)
	assert.ErrorIs(t, err, graph.ErrMultiEdge)

	_, err = g.AddEdge("b", "a", 2)
	assert.ErrorIs(t, err, graph.ErrMultiEdge)
}

func TestGraph_AddEdge_AddsMissingVertices(t *testing.T) {
	g := graph.NewGraph[string]()
	_, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)

	assert.True(t, g.HasVertex("a"))
	assert.True(t, g.HasVertex("b"))
	assert.ElementsMatch(t, []string{"a", "b"}, g.VertexSet())
}

func TestGraph_VertexSet_PreservesInsertionOrder(t *testing.T) {
	g := graph.NewGraph[string]()
	g.AddVertex("c")
	g.AddVertex("a")
	g.AddVertex("b")

	assert.Equal(t, []string{"c", "a", "b"}, g.VertexSet())
}

func TestGraph_EdgesOf_SortedByInsertion(t *testing.T) {
	g := graph.NewGraph[string]()
	_, err := g.AddEdge("x", "a", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("x", "b", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("x", "c", 1)
	require.NoError(t, err)

	edges, err := g.EdgesOf("x")
	require.NoError(t, err)
	require.Len(t, edges, 3)

	var order []string
	for _, e := range edges {
		to, oerr := graph.OppositeVertex(e, "x")
		require.NoError(t, oerr)
		order = append(order, to)
	}
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestGraph_EdgesOf_MissingVertex(t *testing.T) {
	g := graph.NewGraph[string]()
	_, err := g.EdgesOf("missing")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestOppositeVertex_NotIncident(t *testing.T) {
	g := graph.NewGraph[string]()
	e, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)

	_, err = graph.OppositeVertex(e, "z")
	assert.ErrorIs(t, err, graph.ErrOppositeNotIncident)
}

func TestGraph_InducedSubgraph(t *testing.T) {
	g := graph.NewGraph[string]()
	mustAddEdge(t, g, "bank", "river", 1)
	mustAddEdge(t, g, "bank", "water", 1)
	mustAddEdge(t, g, "bank", "money", 1)
	mustAddEdge(t, g, "bank", "loan", 1)
	mustAddEdge(t, g, "river", "water", 1)
	mustAddEdge(t, g, "money", "loan", 1)

	keep := map[string]bool{"river": true, "water": true, "money": true, "loan": true}
	sub := g.InducedSubgraph(keep)

	assert.ElementsMatch(t, []string{"river", "water", "money", "loan"}, sub.VertexSet())
	assert.Equal(t, 2, sub.EdgeCount())
	assert.True(t, sub.HasEdge("river", "water"))
	assert.True(t, sub.HasEdge("money", "loan"))
	assert.False(t, sub.HasEdge("river", "money"))
}

func TestGraph_Weight(t *testing.T) {
	g := graph.NewGraph[string]()
	mustAddEdge(t, g, "a", "b", 3.5)

	w, ok := g.Weight("a", "b")
	assert.True(t, ok)
	assert.Equal(t, 3.5, w)

	w, ok = g.Weight("b", "a")
	assert.True(t, ok)
	assert.Equal(t, 3.5, w)

	_, ok = g.Weight("a", "z")
	assert.False(t, ok)
}

func TestGraph_SetEdge_OverwritesExistingWeight(t *testing.T) {
	g := graph.NewGraph[string]()
	mustAddEdge(t, g, "a", "b", 1)

	_, err := g.SetEdge("a", "b", 9)
	require.NoError(t, err)

	w, ok := g.Weight("a", "b")
	assert.True(t, ok)
	assert.Equal(t, 9.0, w)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_SetEdge_InsertsMissingEdge(t *testing.T) {
	g := graph.NewGraph[string]()
	_, err := g.SetEdge("a", "b", 2)
	require.NoError(t, err)

	w, ok := g.Weight("a", "b")
	assert.True(t, ok)
	assert.Equal(t, 2.0, w)
}

func TestGraph_SetEdge_RejectsBadWeights(t *testing.T) {
	g := graph.NewGraph[string]()
	_, err := g.SetEdge("a", "a", 1)
	assert.ErrorIs(t, err, graph.ErrSelfLoop)

	_, err = g.SetEdge("a", "b", -1)
	assert.ErrorIs(t, err, graph.ErrNegativeWeight)
}

func TestDigraph_AddEdge_Idempotent(t *testing.T) {
	d := graph.NewDigraph([]string{"a", "b"})
	d.AddEdge("a", "b")
	d.AddEdge("a", "b")

	assert.Equal(t, []string{"b"}, d.Successors("a"))
}

func TestReachableFrom(t *testing.T) {
	d := graph.NewDigraph([]string{"a", "b", "c", "d"})
	d.AddEdge("a", "b")
	d.AddEdge("b", "c")
	d.AddEdge("c", "d")

	reached := graph.ReachableFrom(d, []string{"a"})
	assert.Equal(t, map[string]bool{"a": true, "b": true, "c": true, "d": true}, reached)
}

func mustAddEdge(t *testing.T, g *graph.Graph[string], u, v string, w float64) {
	t.Helper()
	_, err := g.AddEdge(u, v, w)
	require.NoError(t, err)
}
