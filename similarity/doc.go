// Package similarity provides pluggable similarity functions over sparse
// weight maps, used by watset to disambiguate a sense's context against a
// neighbor's inventory of senses. Every implementation here is symmetric
// and non-negative, and returns 0 rather than NaN when both inputs are
// degenerate (e.g. empty).
package similarity
