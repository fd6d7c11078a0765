package cluster

import "github.com/nlpub/watset-go/graph"

// Together is the trivial clusterer: it places every vertex of the input
// graph into a single cluster. It is used as a baseline for comparison
// against MaxMax and Watset, and as a degenerate local or global
// clusterer that collapses a neighborhood (or the sense graph) to one
// sense or one final cluster.
type Together[V comparable] struct {
	fitted   bool
	vertices map[V]bool
}

var _ Clusterer[string] = (*Together[string])(nil)

// Fit records every vertex of g as belonging to the single cluster.
func (t *Together[V]) Fit(g *graph.Graph[V]) error {
	vertices := g.VertexSet()
	set := make(map[V]bool, len(vertices))
	for _, v := range vertices {
		set[v] = true
	}

	t.vertices = set
	t.fitted = true

	return nil
}

// Clusters returns the single all-encompassing cluster, or ErrNotFitted
// if Fit has not yet run. An empty input graph yields one empty cluster,
// not zero clusters, to keep the clusterer total.
func (t *Together[V]) Clusters() ([]map[V]bool, error) {
	if !t.fitted {
		return nil, ErrNotFitted
	}

	return []map[V]bool{t.vertices}, nil
}
