package watset

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/nlpub/watset-go/cluster"
	"github.com/nlpub/watset-go/graph"
	"github.com/nlpub/watset-go/sense"
)

// maxFanout bounds how many goroutines either phase of Fit runs at once,
// so a graph with a huge number of vertices or senses does not spawn one
// goroutine per item.
const maxFanout = 16

// Watset is a Clusterer implementing the Watset meta-algorithm. After a
// successful Fit, it exposes read-only views of the sense inventory, the
// disambiguated contexts, and the assembled sense graph, in addition to
// the projected item clusters.
type Watset[V comparable] struct {
	cfg Config[V]

	fitted     bool
	inventory  sense.Inventory[V]
	contexts   map[sense.ID[V]]map[sense.ID[V]]float64
	senseGraph *graph.Graph[sense.ID[V]]
	clusters   []map[V]bool
}

var _ cluster.Clusterer[string] = (*Watset[string])(nil)

// New constructs a Watset instance. With no options, both the local and
// global clustering stages default to cluster.Together.
func New[V comparable](opts ...Option[V]) *Watset[V] {
	cfg := defaultConfig[V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Watset[V]{cfg: cfg}
}

// Fit runs the full Watset pipeline against g exactly once, replacing any
// previously derived state: sense induction, context disambiguation,
// sense graph assembly, global clustering, and projection back to items.
func (w *Watset[V]) Fit(g *graph.Graph[V]) error {
	vertices := g.VertexSet()

	perVertex := make([][]map[V]float64, len(vertices))
	if err := fanOut(len(vertices), func(i int) error {
		x := vertices[i]
		local := w.cfg.localFactory()

		ctxs, err := induceSenses(g, x, local)
		if err != nil {
			return err
		}
		perVertex[i] = ctxs

		return nil
	}); err != nil {
		return fmt.Errorf("watset: Fit: %w", err)
	}

	inventory := make(sense.Inventory[V], len(vertices))
	for i, x := range vertices {
		ctxs := perVertex[i]
		entries := make([]sense.Entry[V], len(ctxs))
		for idx, ctx := range ctxs {
			entries[idx] = sense.Entry[V]{ID: sense.New(x, idx), Context: ctx}
		}
		inventory[x] = entries
	}

	type job struct {
		x   V
		id  sense.ID[V]
		ctx map[V]float64
	}

	var jobs []job
	contexts := make(map[sense.ID[V]]map[sense.ID[V]]float64, len(vertices))

	for _, x := range vertices {
		entries := inventory[x]
		if len(entries) == 0 {
			contexts[sense.New(x, 0)] = map[sense.ID[V]]float64{}
			continue
		}
		for _, e := range entries {
			jobs = append(jobs, job{x: x, id: e.ID, ctx: e.Context})
		}
	}

	var mu sync.Mutex
	if err := fanOut(len(jobs), func(i int) error {
		j := jobs[i]

		ctx := make(map[V]float64, len(j.ctx)+1)
		for k, v := range j.ctx {
			ctx[k] = v
		}
		ctx[j.x] = w.cfg.selfWeight

		result, err := sense.Disambiguate(inventory, w.cfg.similarity, ctx, map[V]bool{j.x: true})
		if err != nil {
			if errors.Is(err, sense.ErrUnresolved) {
				return ErrSenseUnresolved
			}
			return err
		}

		mu.Lock()
		contexts[j.id] = result
		mu.Unlock()

		return nil
	}); err != nil {
		return fmt.Errorf("watset: Fit: %w", err)
	}

	senseOrder := make([]sense.ID[V], 0, len(contexts))
	for _, x := range vertices {
		entries := inventory[x]
		if len(entries) == 0 {
			senseOrder = append(senseOrder, sense.New(x, 0))
			continue
		}
		for _, e := range entries {
			senseOrder = append(senseOrder, e.ID)
		}
	}

	senseGraph := graph.NewGraph[sense.ID[V]]()
	for _, s := range senseOrder {
		senseGraph.AddVertex(s)
	}
	for _, s := range senseOrder {
		for t, wt := range contexts[s] {
			if _, err := senseGraph.SetEdge(s, t, wt); err != nil {
				return fmt.Errorf("watset: Fit: assembling sense graph: %w", err)
			}
		}
	}

	if senseGraph.EdgeCount() < g.EdgeCount() {
		return fmt.Errorf("watset: Fit: %w", ErrCorruptSenseGraph)
	}

	global := w.cfg.globalFactory()
	if err := global.Fit(senseGraph); err != nil {
		return fmt.Errorf("watset: Fit: %w", err)
	}

	senseClusters, err := global.Clusters()
	if err != nil {
		return fmt.Errorf("watset: Fit: %w", err)
	}

	itemClusters := make([]map[V]bool, len(senseClusters))
	for i, sc := range senseClusters {
		items := make(map[V]bool, len(sc))
		for s := range sc {
			items[s.Item()] = true
		}
		itemClusters[i] = items
	}

	w.inventory = inventory
	w.contexts = contexts
	w.senseGraph = senseGraph
	w.clusters = itemClusters
	w.fitted = true

	return nil
}

// Clusters returns the item clusters produced by the most recent Fit. It
// returns ErrNotFitted if Fit has not yet succeeded.
func (w *Watset[V]) Clusters() ([]map[V]bool, error) {
	if !w.fitted {
		return nil, cluster.ErrNotFitted
	}

	return w.clusters, nil
}

// Inventory returns the sense inventory built by the most recent Fit, or
// nil if Fit has not yet succeeded. The caller must not mutate it.
func (w *Watset[V]) Inventory() sense.Inventory[V] {
	return w.inventory
}

// Contexts returns the disambiguated contexts built by the most recent
// Fit, or nil if Fit has not yet succeeded. The caller must not mutate it.
func (w *Watset[V]) Contexts() map[sense.ID[V]]map[sense.ID[V]]float64 {
	return w.contexts
}

// SenseGraph returns the assembled sense graph built by the most recent
// Fit, or nil if Fit has not yet succeeded.
func (w *Watset[V]) SenseGraph() *graph.Graph[sense.ID[V]] {
	return w.senseGraph
}

// fanOut runs fn(0), fn(1), ..., fn(n-1) concurrently, bounded to
// maxFanout in flight at once, and returns the first error encountered.
// An error does not cancel anything: every fn(i) is still scheduled and
// run to completion before Wait returns.
func fanOut(n int, fn func(i int) error) error {
	if n == 0 {
		return nil
	}

	limit := n
	if limit > maxFanout {
		limit = maxFanout
	}

	var eg errgroup.Group
	eg.SetLimit(limit)

	for i := 0; i < n; i++ {
		i := i
		eg.Go(func() error {
			return fn(i)
		})
	}

	return eg.Wait()
}
