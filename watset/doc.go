// Package watset implements the Watset meta-algorithm: a local-global
// clustering pipeline that induces per-item senses from each node's ego
// network, disambiguates each sense's context against a global sense
// inventory, assembles a weighted sense graph, and clusters that graph,
// projecting the result back onto the original items.
//
// The local and global clustering stages are pluggable via cluster.Factory
// values; the default for both is the trivial cluster.Together clusterer.
// The local factory clusters an item's ego network, so it is a
// cluster.Factory[V]; the global factory clusters the assembled sense
// graph, whose vertices are senses rather than items, so it is a
// cluster.Factory[sense.ID[V]].
package watset
