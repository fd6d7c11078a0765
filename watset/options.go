package watset

import (
	"github.com/nlpub/watset-go/cluster"
	"github.com/nlpub/watset-go/sense"
	"github.com/nlpub/watset-go/similarity"
)

// Config holds the tunables every Watset run is constructed with. The
// local clusterer runs on ego networks over items (V); the global
// clusterer runs on the assembled sense graph, whose vertices are senses
// (sense.ID[V]), not items.
type Config[V comparable] struct {
	selfWeight    float64
	similarity    similarity.Func[V]
	localFactory  cluster.Factory[V]
	globalFactory cluster.Factory[sense.ID[V]]
}

// Option configures a Watset instance at construction time.
type Option[V comparable] func(*Config[V])

func defaultConfig[V comparable]() Config[V] {
	return Config[V]{
		selfWeight:    1,
		similarity:    similarity.Cosine[V],
		localFactory:  func() cluster.Clusterer[V] { return &cluster.Together[V]{} },
		globalFactory: func() cluster.Clusterer[sense.ID[V]] { return &cluster.Together[sense.ID[V]]{} },
	}
}

// WithSelfWeight sets the weight inserted for an item's own key when its
// sense's context is disambiguated against its neighbors. The default is 1.
func WithSelfWeight[V comparable](w float64) Option[V] {
	return func(c *Config[V]) {
		c.selfWeight = w
	}
}

// WithSimilarity overrides the context-similarity function. The default
// is similarity.Cosine.
func WithSimilarity[V comparable](fn similarity.Func[V]) Option[V] {
	return func(c *Config[V]) {
		c.similarity = fn
	}
}

// WithLocalClusterer overrides the factory used to induce senses from each
// item's ego network. The default is cluster.Together, which collapses
// every item to a single sense (disabling sense induction).
func WithLocalClusterer[V comparable](factory cluster.Factory[V]) Option[V] {
	return func(c *Config[V]) {
		c.localFactory = factory
	}
}

// WithGlobalClusterer overrides the factory used to cluster the assembled
// sense graph. Its vertex type is sense.ID[V], not V, since it clusters
// senses rather than items. The default is cluster.Together, which
// collapses the whole run to a single cluster.
func WithGlobalClusterer[V comparable](factory cluster.Factory[sense.ID[V]]) Option[V] {
	return func(c *Config[V]) {
		c.globalFactory = factory
	}
}
