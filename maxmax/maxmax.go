package maxmax

import (
	"fmt"

	"github.com/nlpub/watset-go/cluster"
	"github.com/nlpub/watset-go/graph"
)

// MaxMax is a Clusterer implementing the MaxMax algorithm. After a
// successful Fit, it exposes read-only views of the derived digraph, the
// maximal-neighbor map, and the root flags, in addition to the clusters
// themselves.
type MaxMax[V comparable] struct {
	fitted bool
	d      *graph.Digraph[V]
	m      map[V]map[V]bool
	r      map[V]bool
	order  []V
}

var _ cluster.Clusterer[string] = (*MaxMax[string])(nil)

// Fit runs the MaxMax algorithm exactly once against g: preparation
// (computing the maximal-neighbor map), graph transformation (building
// the directed maximal graph), and the root-reachability sweep. It
// replaces any previously derived state.
//
// Complexity: O(|V|+|E|) apart from graph.EdgesOf, whose per-vertex sort
// is O(deg(u)²) in the worst case.
func (mm *MaxMax[V]) Fit(g *graph.Graph[V]) error {
	vertices := g.VertexSet()

	d := graph.NewDigraph[V](vertices)
	m := make(map[V]map[V]bool, len(vertices))

	for _, u := range vertices {
		edges, err := g.EdgesOf(u)
		if err != nil {
			return fmt.Errorf("maxmax: Fit: %w", err)
		}

		max := -1.0
		for _, e := range edges {
			if e.Weight > max {
				max = e.Weight
			}
		}

		neighbors := make(map[V]bool)
		if max >= 0 {
			for _, e := range edges {
				if e.Weight != max {
					continue
				}
				v, err := graph.OppositeVertex(e, u)
				if err != nil {
					return fmt.Errorf("maxmax: Fit: %w", err)
				}
				neighbors[v] = true
			}
		}

		m[u] = neighbors
	}

	for _, e := range g.EdgeSet() {
		u, v := e.From, e.To
		if m[u][v] {
			// v is a maximal neighbor of u: add v->u.
			d.AddEdge(v, u)
		}
		if m[v][u] {
			// u is a maximal neighbor of v: add u->v.
			d.AddEdge(u, v)
		}
	}

	r := make(map[V]bool, len(vertices))
	for _, v := range vertices {
		r[v] = true
	}

	// visited is shared across every root's sweep below, so a node already
	// reached from an earlier root is never reprocessed or re-demoted,
	// matching the reference algorithm's single global visited set.
	visited := make(map[V]bool, len(vertices))

	for _, v := range vertices {
		if !r[v] {
			continue
		}

		queue := append([]V(nil), d.Successors(v)...)
		visited[v] = true

		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			if visited[u] {
				continue
			}
			r[u] = false
			visited[u] = true
			queue = append(queue, d.Successors(u)...)
		}
	}

	mm.d = d
	mm.m = m
	mm.r = r
	mm.order = vertices
	mm.fitted = true

	return nil
}

// Clusters returns, for each vertex still flagged as a root, the set of
// vertices reachable from it in the maximal-neighbor digraph (including
// itself). It returns ErrNotFitted if Fit has not yet succeeded.
func (mm *MaxMax[V]) Clusters() ([]map[V]bool, error) {
	if !mm.fitted {
		return nil, cluster.ErrNotFitted
	}

	clusters := make([]map[V]bool, 0, len(mm.order))
	for _, v := range mm.order {
		if !mm.r[v] {
			continue
		}
		clusters = append(clusters, graph.ReachableFrom(mm.d, []V{v}))
	}

	return clusters, nil
}

// Digraph returns the maximal-neighbor digraph derived by the most
// recent Fit, or nil if Fit has not yet succeeded.
func (mm *MaxMax[V]) Digraph() *graph.Digraph[V] {
	return mm.d
}

// Maximal returns the maximal-neighbor map M derived by the most recent
// Fit, or nil if Fit has not yet succeeded. The returned map and its
// value sets must not be mutated by the caller.
func (mm *MaxMax[V]) Maximal() map[V]map[V]bool {
	return mm.m
}

// Roots returns the root-flag map R derived by the most recent Fit, or
// nil if Fit has not yet succeeded. The returned map must not be
// mutated by the caller.
func (mm *MaxMax[V]) Roots() map[V]bool {
	return mm.r
}
