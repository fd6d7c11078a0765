package similarity

import "math"

// Func compares two sparse weight maps over the same key space and returns
// a non-negative similarity score. Implementations must be symmetric:
// Func(a, b) == Func(b, a).
type Func[V comparable] func(a, b map[V]float64) float64

// Cosine is the default similarity: the cosine of the angle between a and
// b treated as sparse vectors over their union of keys. It iterates the
// smaller of the two maps to accumulate the dot product, and reports 0
// when either vector has zero norm rather than dividing by zero.
func Cosine[V comparable](a, b map[V]float64) float64 {
	small, large := a, b
	if len(large) < len(small) {
		small, large = large, small
	}

	var dot float64
	for k, av := range small {
		if bv, ok := large[k]; ok {
			dot += av * bv
		}
	}

	normA := norm(a)
	normB := norm(b)
	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (normA * normB)
}

func norm[V comparable](m map[V]float64) float64 {
	var sumSq float64
	for _, v := range m {
		sumSq += v * v
	}
	return math.Sqrt(sumSq)
}

// JaccardKeys is a second, ready-made similarity: the Jaccard index of the
// two maps' key sets, ignoring weights entirely. It reports 0 when both
// maps are empty.
func JaccardKeys[V comparable](a, b map[V]float64) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	small, large := a, b
	if len(large) < len(small) {
		small, large = large, small
	}

	var intersection int
	for k := range small {
		if _, ok := large[k]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}

	return float64(intersection) / float64(union)
}
