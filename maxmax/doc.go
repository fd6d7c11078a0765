// Package maxmax implements the MaxMax algorithm: a deterministic,
// single-pass clustering of a weighted undirected graph. It rewrites the
// input into a directed "maximal-neighbor" graph, where an edge u->v
// exists whenever u is one of v's heaviest neighbors, then extracts
// clusters by a root-reachability sweep over that digraph.
package maxmax
