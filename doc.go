// Package watsetgo is an in-memory library for fuzzy graph clustering and
// word-sense induction, built around two tightly coupled algorithms:
//
// 🚀 What does it do?
//
//	A thread-safe, almost-zero-dependency module that brings together:
//		• Core primitives: generic weighted graphs & directed graphs, under R/W locks
//		• MaxMax: deterministic maximal-neighbor clustering via root-reachability
//		• Watset: local-global sense induction and disambiguation over a sense graph
//		• Pluggable similarity, local clusterers, and global clusterers
//
// ✨ Why this shape?
//
//   - Beginner-friendly — minimal API, clear, intuitive naming
//   - Rock-solid guarantees — R/W locks, in-code docs & determinism notes
//   - Generic — clusters any comparable vertex type, not just strings
//   - Extensible — swap in your own local/global clusterer or similarity function
//
// Everything is organized under one subpackage per concern:
//
//	graph/      — generic weighted Graph and unweighted Digraph primitives
//	builder/    — constructs a Graph from a flat, deduplicated edge list
//	maximizer/  — deterministic and randomized argmax over a scored sequence
//	similarity/ — pluggable similarity functions over sparse weight maps
//	sense/      — sense identifiers, inventories, and context disambiguation
//	cluster/    — the shared Clusterer capability, plus the trivial Together clusterer
//	maxmax/     — the MaxMax clusterer
//	watset/     — the Watset meta-algorithm orchestrator
//	cmd/watsetctl — a minimal runnable example wiring the pieces together
//
// Quick ASCII example — "bank" induces two senses from two disjoint ego
// clusters, river/water and money/loan:
//
//	river───water        money───loan
//	    \     /              \     /
//	     \   /                \   /
//	      bank ───────────────┘
//
// Dive into DESIGN.md for the grounding behind each package's choices.
package watsetgo
