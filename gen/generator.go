package gen

// Source produces one value per invocation. Repeated calls may yield
// different values; any mutable state (a deterministic seed, a counter) is
// private to the closure implementing the Source. A Source owned by a
// Generator must not be invoked concurrently; see the package documentation.
type Source[A any] func() A

// Generator is an immutable, opaque recipe for producing values of A.
// It exposes exactly one method, Next; transformation and chaining happen
// through the package-level Map, Map2, and Then functions, which may change
// the element type (Go methods cannot introduce type parameters).
//
// The zero Generator is unusable: obtain one from a factory such as Float,
// Int, Uniform, Constant, or a combinator. Generators are not comparable
// and not serializable.
type Generator[A any] struct {
	produce Source[A]
}

// wrap is the single construction point for Generator values. Keeping it
// private keeps the wrapper's internals closed: callers compose behavior via
// factories and combinators, and custom randomness enters through Options.
func wrap[A any](produce Source[A]) Generator[A] {
	return Generator[A]{produce: produce}
}

// Next invokes the wrapped Source once and returns its value. Each call is an
// independent fresh draw: the Generator remembers nothing about prior
// results, so any correlation across calls lives in the Source itself.
// Complexity: one Source invocation plus O(1) overhead.
func (g Generator[A]) Next() A {
	return g.produce()
}

// Map returns a Generator that draws from g and transforms every value with
// f. The underlying draw mechanism is untouched: mapping with the identity
// function is behaviorally equivalent to g, and Map(Map(g, f), h) is
// equivalent to mapping with the composition h∘f.
func Map[A, B any](g Generator[A], f func(A) B) Generator[B] {
	return wrap(func() B {
		return f(g.Next())
	})
}

// Map2 returns a Generator that draws from ga, then from gb (order is fixed
// and observable through stateful sources), and merges both values with f.
func Map2[A, B, C any](ga Generator[A], gb Generator[B], f func(A, B) C) Generator[C] {
	return wrap(func() C {
		a := ga.Next()
		b := gb.Next()

		return f(a, b)
	})
}

// Then is monadic bind: each draw takes a value from g, passes it to f to
// obtain a new Generator, and immediately draws from that Generator. The
// selected child may differ structurally on every invocation — this is how
// one random value steers the shape of the next (e.g. a random length
// driving List). Chaining is purely synchronous; no scheduling is involved.
func Then[A, B any](g Generator[A], f func(A) Generator[B]) Generator[B] {
	return wrap(func() B {
		return f(g.Next()).Next()
	})
}
