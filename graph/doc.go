// Package graph provides the two graph primitives the word-sense-induction
// core is built on: Graph, a simple weighted undirected graph, and Digraph,
// an unweighted directed graph with deduplicated edges.
//
// Both types are generic over a vertex type V constrained only to
// comparable — no ordering is assumed, so iteration order follows vertex
// insertion order rather than any sort. Mutation is protected by a single
// sync.RWMutex guarding vertex, edge, and adjacency state together, but in
// practice a Graph is built once (see the builder package) and then only
// read by the clustering algorithms in this module.
//
// Errors:
//
//	ErrVertexNotFound   - requested vertex does not exist.
//	ErrSelfLoop          - an edge endpoint equals itself.
//	ErrNegativeWeight    - a weight is negative.
//	ErrNonFiniteWeight   - a weight is NaN or +/-Inf.
package graph
