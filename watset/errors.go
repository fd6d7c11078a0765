package watset

import "errors"

// ErrSenseUnresolved is returned when disambiguation cannot select a best
// candidate sense because every candidate's similarity score is
// non-orderable (NaN), which can only happen if a caller-supplied
// similarity function misbehaves on the inputs it is given. Fatal to the
// run that triggers it.
var ErrSenseUnresolved = errors.New("watset: sense unresolved")

// ErrCorruptSenseGraph is returned when the assembled sense graph has
// fewer edges than the input graph, which the algorithm's invariant
// guarantees cannot happen for a well-behaved local/global clusterer and
// similarity function. Indicates a bug in one of those collaborators.
var ErrCorruptSenseGraph = errors.New("watset: corrupt sense graph")
