package gen

// Pair holds the two values produced by one PairOf draw, in draw order.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf returns a Generator that, on every draw, takes one value from ga and
// then one from gb and returns them as a Pair. The draw order is fixed —
// First is always drawn before Second — and is observable through stateful
// sources such as seeded streams shared by both generators.
func PairOf[A, B any](ga Generator[A], gb Generator[B]) Generator[Pair[A, B]] {
	return Map2(ga, gb, func(a A, b B) Pair[A, B] {
		return Pair[A, B]{First: a, Second: b}
	})
}

// List returns a Generator producing slices of exactly length values, drawn
// from g in ascending index order. A length of zero yields an empty non-nil
// slice without consulting g at all — the loop simply never runs.
//
// length must be non-negative; a negative length is not guarded and panics
// in the backing allocation.
// Each draw: length invocations of g, one O(length) allocation.
func List[A any](length int, g Generator[A]) Generator[[]A] {
	return wrap(func() []A {
		out := make([]A, length)
		for i := 0; i < length; i++ {
			out[i] = g.Next()
		}

		return out
	})
}
