// Package cluster defines the narrow clusterer capability shared by
// MaxMax, Watset, and any user-supplied local or global clusterer, plus
// Together, a trivial clusterer that places every vertex in one cluster.
package cluster
