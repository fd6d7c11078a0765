package cluster

import "github.com/nlpub/watset-go/graph"

// Clusterer is the capability every clustering algorithm in this module
// exposes: compute clusters from a graph, then retrieve them. It is
// modeled as a narrow interface rather than a class hierarchy, so that
// MaxMax, Watset, and Together are interchangeable wherever a clusterer
// is needed, including as each other's local or global stage.
//
// Implementations are safe to call Fit on once; concurrent use of the
// same instance is undefined.
type Clusterer[V comparable] interface {
	// Fit computes the clustering of g, replacing any previous result.
	Fit(g *graph.Graph[V]) error

	// Clusters returns the vertex sets computed by the most recent Fit.
	// It returns ErrNotFitted if Fit has not yet succeeded.
	Clusters() ([]map[V]bool, error)
}

// Factory builds a fresh Clusterer instance for one graph. It must be
// pure: each call constructs a new, independent instance, since Watset
// invokes it once per ego network during sense induction and once more
// for the global sense-graph clustering.
type Factory[V comparable] func() Clusterer[V]
