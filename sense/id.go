package sense

// ID is an opaque identifier for one induced sense of an item: the pair
// (item, index). Two IDs constructed from equal arguments compare equal,
// so ID is safe to use as a map key.
type ID[V comparable] struct {
	item  V
	index int
}

// New constructs the identifier for the index-th sense of item.
func New[V comparable](item V, index int) ID[V] {
	return ID[V]{item: item, index: index}
}

// Item returns the original item this sense was induced from.
func (s ID[V]) Item() V {
	return s.item
}

// Index returns the local clusterer's cluster index this sense came from.
func (s ID[V]) Index() int {
	return s.index
}
