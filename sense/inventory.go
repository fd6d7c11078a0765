package sense

// Entry pairs one sense with the context (sparse weight map over neighbor
// items) it was induced with.
type Entry[V comparable] struct {
	ID      ID[V]
	Context map[V]float64
}

// Inventory maps each item to its senses in stable, first-induced-first
// order. That order is load-bearing: disambiguation breaks ties among
// equally-similar senses by picking the first one in this slice, so the
// caller building an Inventory must append senses in a deterministic
// order (the local clusterer's cluster index).
type Inventory[V comparable] map[V][]Entry[V]
