// Command watsetctl is a minimal runnable example wiring the core
// packages together over an in-memory edge list: it builds a graph with
// builder, runs MaxMax on it directly, then runs Watset with MaxMax
// plugged in as both the local and global clusterer, and prints both
// results.
//
// This is demonstration code, not part of the tested contract of the
// module: adapt the edge list and clusterer choice to your own data.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/nlpub/watset-go/builder"
	"github.com/nlpub/watset-go/cluster"
	"github.com/nlpub/watset-go/maxmax"
	"github.com/nlpub/watset-go/sense"
	"github.com/nlpub/watset-go/watset"
)

func main() {
	runID := uuid.New()
	logger := log.New(os.Stdout, fmt.Sprintf("watsetctl[%s] ", runID), log.LstdFlags)

	g, err := builder.FromEdges([]builder.Triple[string]{
		{From: "bank", To: "river", Weight: 1},
		{From: "bank", To: "water", Weight: 1},
		{From: "bank", To: "money", Weight: 1},
		{From: "bank", To: "loan", Weight: 1},
		{From: "river", To: "water", Weight: 1},
		{From: "money", To: "loan", Weight: 1},
	})
	if err != nil {
		logger.Fatalf("building graph: %v", err)
	}

	var mm maxmax.MaxMax[string]
	if err := mm.Fit(g); err != nil {
		logger.Fatalf("running MaxMax: %v", err)
	}

	mmClusters, err := mm.Clusters()
	if err != nil {
		logger.Fatalf("reading MaxMax clusters: %v", err)
	}
	logger.Printf("MaxMax found %d cluster(s):", len(mmClusters))
	for _, c := range mmClusters {
		logger.Printf("  %v", keys(c))
	}

	w := watset.New[string](
		watset.WithLocalClusterer[string](func() cluster.Clusterer[string] { return &maxmax.MaxMax[string]{} }),
		watset.WithGlobalClusterer[string](func() cluster.Clusterer[sense.ID[string]] { return &maxmax.MaxMax[sense.ID[string]]{} }),
	)
	if err := w.Fit(g); err != nil {
		logger.Fatalf("running Watset: %v", err)
	}

	wClusters, err := w.Clusters()
	if err != nil {
		logger.Fatalf("reading Watset clusters: %v", err)
	}
	logger.Printf("Watset found %d cluster(s) over %d induced sense(s):", len(wClusters), len(w.Contexts()))
	for _, c := range wClusters {
		logger.Printf("  %v", keys(c))
	}
}

func keys[V comparable](set map[V]bool) []V {
	out := make([]V, 0, len(set))
	for v := range set {
		out = append(out, v)
	}

	return out
}
