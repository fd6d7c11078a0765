// Package sense defines the sense identifier and sense inventory types
// used by the Watset clusterer, plus the disambiguation
// helper that picks, for each neighbor of an item, the neighbor's sense
// most similar to a given context.
package sense
