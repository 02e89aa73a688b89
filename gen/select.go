// Selection factories: Constant, Uniform, and Weighted choice among
// caller-supplied candidates. Both Uniform and Weighted take a mandatory
// first candidate plus a possibly-empty rest, so an empty candidate set is
// unrepresentable by construction.

package gen

import "errors"

// ErrWeightedExhausted is the panic value raised when a Weighted draw scans
// every candidate without finding a cumulative weight at or above the drawn
// value. The scan cannot exhaust while all weights are non-negative finite
// numbers; reaching it means the weight contract was broken (negative or NaN
// weights), which is a fatal invariant violation, never silently absorbed.
var ErrWeightedExhausted = errors.New("gen: weighted selection scan exhausted; candidate weights must be non-negative")

// Choice pairs a candidate value with its non-negative selection weight.
// Relative to the full candidate list, P(value_i) = weight_i / Σ weights.
type Choice[A any] struct {
	// Value is the candidate returned when this Choice is selected.
	Value A

	// Weight is the candidate's non-negative selection weight. Zero-weight
	// candidates are selectable only on a boundary draw of exactly their
	// cumulative position (ties resolve to the earliest listed).
	Weight float64
}

// Constant returns a Generator that always produces value, ignoring
// randomness entirely: no source is consulted, and the same value
// (the same reference, for pointer-like types) is returned on every call.
func Constant[A any](value A) Generator[A] {
	return wrap(func() A {
		return value
	})
}

// Uniform returns a Generator selecting equiprobably among the candidate
// list [first, rest...]. The mandatory first candidate makes an empty
// candidate set unrepresentable. With no rest candidates, Uniform degenerates
// to Constant(first) and never consults the source — there is no randomness
// to spend on a single outcome.
//
// The candidate list is copied at construction; later mutation of rest does
// not affect the Generator.
// Construction: O(len(rest)) time and space. Each draw: O(1).
func Uniform[A any](first A, rest []A, opts ...Option) Generator[A] {
	if len(rest) == 0 {
		return Constant(first)
	}

	candidates := make([]A, 0, len(rest)+1)
	candidates = append(candidates, first)
	candidates = append(candidates, rest...)

	// Index drawn inclusively over [0, len(rest)] covers the full list.
	index := Int(0, len(rest), opts...)

	return Map(index, func(i int) A {
		return candidates[i]
	})
}

// Weighted returns a Generator selecting among the candidate list
// [first, rest...] with probability proportional to each candidate's weight.
//
// Algorithm: the running cumulative weight of every candidate is computed
// once at construction, in supplied order. Each draw takes a float uniformly
// in [0, totalWeight) and scans the cumulative list in order, returning the
// first candidate whose cumulative weight is >= the drawn value. Scan order
// is supply order, so ties among zero-weight entries resolve to the
// earliest-listed candidate.
//
// With no rest candidates, Weighted degenerates to Constant(first.Value)
// without consulting the source. An exhausted scan panics with
// ErrWeightedExhausted (see its documentation).
// Construction: O(len(rest)) time and space. Each draw: O(len(rest)) scan.
func Weighted[A any](first Choice[A], rest []Choice[A], opts ...Option) Generator[A] {
	if len(rest) == 0 {
		return Constant(first.Value)
	}

	values := make([]A, 0, len(rest)+1)
	cumulative := make([]float64, 0, len(rest)+1)

	total := first.Weight
	values = append(values, first.Value)
	cumulative = append(cumulative, total)
	for _, c := range rest {
		total += c.Weight
		values = append(values, c.Value)
		cumulative = append(cumulative, total)
	}

	draw := Float(0, total, opts...)

	return Map(draw, func(d float64) A {
		for i, upTo := range cumulative {
			if upTo >= d {
				return values[i]
			}
		}
		// Unreachable under the documented non-negative-weight contract:
		// the final cumulative weight equals total, and d < total.
		panic(ErrWeightedExhausted)
	})
}
