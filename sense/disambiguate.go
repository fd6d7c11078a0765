package sense

import (
	"fmt"

	"github.com/nlpub/watset-go/maximizer"
	"github.com/nlpub/watset-go/similarity"
)

// Disambiguate resolves context, a sparse weight map over neighbor items,
// into a map over neighbor senses: for every (y, w) in context with y not
// in exclude, it picks the sense of y in inventory[y] whose own context is
// most similar to context (ties broken by the first-induced sense), and
// writes s* -> w into the result.
//
// An item y with no senses yet in inventory (inventory[y] is empty or
// absent) is silently skipped rather than treated as an error: this is
// the documented behavior for items that have not been visited yet, or
// whose exclusion would otherwise leave nothing to disambiguate. An item y
// that does have candidate senses, but whose similarity scores are all
// non-orderable (NaN, which can only come from a misbehaving sim), is an
// error: Disambiguate stops and returns ErrUnresolved rather than picking
// an arbitrary sense.
func Disambiguate[V comparable](inventory Inventory[V], sim similarity.Func[V], context map[V]float64, exclude map[V]bool) (map[ID[V]]float64, error) {
	result := make(map[ID[V]]float64, len(context))

	for y, w := range context {
		if exclude[y] {
			continue
		}

		senses := inventory[y]
		if len(senses) == 0 {
			continue
		}

		best, ok := maximizer.Argmax(senses, nil, func(e Entry[V]) float64 {
			return sim(context, e.Context)
		})
		if !ok {
			return nil, fmt.Errorf("sense: Disambiguate(%v): %w", y, ErrUnresolved)
		}

		result[best.ID] = w
	}

	return result, nil
}
