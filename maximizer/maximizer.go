// Package maximizer finds arguments of the maximum of a scoring function
// over a finite sequence, in a single pass. It is grounded directly on the
// original Java Maximizer utility: one deterministic first-wins variant and
// one randomized tie-breaking variant.
package maximizer

import (
	"cmp"
	"math/rand"
)

// Argmax returns the first element of items achieving the maximum score
// among those for which filter reports true. If filter is nil, every
// element passes. An item whose score is NaN is treated as if it failed
// the filter, since NaN is not orderable against any other score. The
// second return value is false iff no element passes the filter and has
// an orderable score (including the empty-items case).
//
// Complexity: O(len(items)), one pass, no allocation beyond the result.
func Argmax[T any, S cmp.Ordered](items []T, filter func(T) bool, scorer func(T) S) (T, bool) {
	var (
		result   T
		best     S
		haveBest bool
	)

	for _, item := range items {
		if filter != nil && !filter(item) {
			continue
		}
		score := scorer(item)
		if score != score { // NaN is never orderable, even against itself.
			continue
		}
		if !haveBest || score > best {
			result = item
			best = score
			haveBest = true
		}
	}

	return result, haveBest
}

// ArgmaxRandom returns a uniformly random choice among the elements of
// items tied at the maximum score, using rng as the source of randomness.
// The second return value is false iff items is empty.
//
// It makes a single pass, keeping the running list of current maximizers:
// a strictly better score clears the list before appending, an equal score
// appends to it.
//
// Complexity: O(len(items)) time; O(k) auxiliary space where k is the
// number of ties at the maximum.
func ArgmaxRandom[T any, S cmp.Ordered](items []T, scorer func(T) S, rng *rand.Rand) (T, bool) {
	var (
		zero     T
		best     S
		haveBest bool
		ties     []T
	)

	for _, item := range items {
		score := scorer(item)

		switch {
		case !haveBest || score > best:
			ties = ties[:0]
			ties = append(ties, item)
			best = score
			haveBest = true
		case score == best:
			ties = append(ties, item)
		}
	}

	if !haveBest {
		return zero, false
	}

	return ties[rng.Intn(len(ties))], true
}
