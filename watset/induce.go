package watset

import (
	"fmt"

	"github.com/nlpub/watset-go/cluster"
	"github.com/nlpub/watset-go/graph"
)

// induceSenses computes the sense contexts for item x: the ego network of
// x (its neighbors and the edges between them, x itself excluded) is
// handed to local, whose clusters are each rewritten into a context
// mapping neighbor items to their edge weight with x. The contexts are
// returned in the local clusterer's cluster order, which is what makes
// sense-index assignment ((x, 0), (x, 1), ...) deterministic.
//
// An item with no neighbors yields a nil slice; the caller is responsible
// for materializing its single empty-context sense.
func induceSenses[V comparable](g *graph.Graph[V], x V, local cluster.Clusterer[V]) ([]map[V]float64, error) {
	neighbors := g.NeighborSet(x)
	if len(neighbors) == 0 {
		return nil, nil
	}

	ego := g.InducedSubgraph(neighbors)
	if err := local.Fit(ego); err != nil {
		return nil, fmt.Errorf("watset: induceSenses(%v): %w", x, err)
	}

	clusters, err := local.Clusters()
	if err != nil {
		return nil, fmt.Errorf("watset: induceSenses(%v): %w", x, err)
	}

	contexts := make([]map[V]float64, len(clusters))
	for i, k := range clusters {
		ctx := make(map[V]float64, len(k))
		for y := range k {
			if w, ok := g.Weight(x, y); ok {
				ctx[y] = w
			}
		}
		contexts[i] = ctx
	}

	return contexts, nil
}
