package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for the graph package. Callers should branch with
// errors.Is, never on the error string.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex absent
	// from the graph.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrSelfLoop indicates an edge whose endpoints are identical; Graph is
	// always simple and never accepts loops. Digraph.AddEdge does not check
	// for loops and never returns this error.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")

	// ErrMultiEdge indicates a second edge was requested between a pair of
	// vertices that already share one; Graph is always simple.
	ErrMultiEdge = errors.New("graph: parallel edges are not allowed")

	// ErrNegativeWeight indicates a negative edge weight was supplied.
	ErrNegativeWeight = errors.New("graph: edge weight must be non-negative")

	// ErrNonFiniteWeight indicates a NaN or infinite edge weight was supplied.
	ErrNonFiniteWeight = errors.New("graph: edge weight must be finite")

	// ErrOppositeNotIncident indicates OppositeVertex was called with a
	// vertex that is not an endpoint of the given edge.
	ErrOppositeNotIncident = errors.New("graph: vertex is not incident to edge")
)

// Edge is one undirected, weighted connection between two vertices of a
// Graph. The id field is an internal monotonic counter used only to break
// ties deterministically when edges are enumerated; it carries no meaning
// outside this package.
type Edge[V comparable] struct {
	id     uint64
	From   V
	To     V
	Weight float64
}

// Graph is a simple, weighted, undirected graph over a comparable vertex
// type V. "Simple" means no self-loops and no parallel edges; weights are
// validated to be finite and non-negative at insertion time.
//
// A Graph is safe to build concurrently, but per the data model it
// documents (see package doc), it is treated as immutable input once
// handed to a clustering algorithm: every read path in this module takes
// only the read lock.
type Graph[V comparable] struct {
	mu sync.RWMutex

	nextEdgeID uint64

	order    []V            // vertices in insertion order
	vertices map[V]struct{} // membership

	edges []*Edge[V]           // edges in insertion order
	adj   map[V]map[V]*Edge[V] // adjacency[u][v] -> edge, mirrored for both endpoints
}

// NewGraph returns an empty Graph.
func NewGraph[V comparable]() *Graph[V] {
	return &Graph[V]{
		vertices: make(map[V]struct{}),
		adj:      make(map[V]map[V]*Edge[V]),
	}
}

// Digraph is an unweighted directed graph over a comparable vertex type V
// with at most one edge per ordered pair (u,v); adding the same ordered
// pair twice is a no-op. It is used exclusively by the MaxMax clusterer to
// represent the maximal-neighbor graph.
type Digraph[V comparable] struct {
	mu sync.RWMutex

	order    []V
	vertices map[V]struct{}

	out map[V]map[V]struct{} // out[u] = set of successors of u
}

// NewDigraph returns a Digraph seeded with the given vertices and no edges,
// preserving their order. This mirrors MaxMax's graph-transformation step,
// which initializes the directed graph with V before adding any edges.
func NewDigraph[V comparable](vertices []V) *Digraph[V] {
	d := &Digraph[V]{
		vertices: make(map[V]struct{}, len(vertices)),
		out:      make(map[V]map[V]struct{}, len(vertices)),
	}
	for _, v := range vertices {
		d.addVertexLocked(v)
	}

	return d
}
