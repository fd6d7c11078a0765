// Package builder constructs graph.Graph values from flat edge lists,
// deduplicating vertices that are only ever seen as edge endpoints. It is
// the single entry point for turning caller-supplied data into the
// immutable Graph that the clustering algorithms in this module consume.
package builder
