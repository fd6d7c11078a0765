package builder

import (
	"fmt"

	"github.com/nlpub/watset-go/graph"
)

// Triple is one input record: an unordered edge between From and To
// carrying Weight. Vertices that appear only inside a Triple are
// implicitly declared and deduplicated by FromEdges.
type Triple[V comparable] struct {
	From   V
	To     V
	Weight float64
}

// FromEdges builds a graph.Graph from a flat list of edges, adding each
// endpoint at most once regardless of how many triples mention it. Any
// validation failure (self-loop, negative or non-finite weight, or a
// repeated edge) is wrapped with the offending triple's position and
// returned immediately; no partial graph is discarded silently, but the
// caller receives no usable graph on error either — construction is
// all-or-nothing.
//
// Complexity: O(len(triples)) amortized.
func FromEdges[V comparable](triples []Triple[V]) (*graph.Graph[V], error) {
	g := graph.NewGraph[V]()

	for i, t := range triples {
		if _, err := g.AddEdge(t.From, t.To, t.Weight); err != nil {
			return nil, fmt.Errorf("builder: FromEdges: triple %d (%v,%v): %w", i, t.From, t.To, err)
		}
	}

	return g, nil
}

// FromVerticesAndEdges builds a graph.Graph from an explicit vertex list
// (so that isolated vertices with no incident edges survive into the
// result) plus a flat list of edges, following the same validation and
// error-wrapping contract as FromEdges.
//
// Complexity: O(len(vertices) + len(triples)) amortized.
func FromVerticesAndEdges[V comparable](vertices []V, triples []Triple[V]) (*graph.Graph[V], error) {
	g := graph.NewGraph[V]()

	for _, v := range vertices {
		g.AddVertex(v)
	}

	for i, t := range triples {
		if _, err := g.AddEdge(t.From, t.To, t.Weight); err != nil {
			return nil, fmt.Errorf("builder: FromVerticesAndEdges: triple %d (%v,%v): %w", i, t.From, t.To, err)
		}
	}

	return g, nil
}
