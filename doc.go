// Package randgen is your toolbox for building, combining, and drawing from
// pseudo-random value generators — from single dice rolls to weighted loot
// tables and structure-valued draws, without ever threading RNG state by hand.
//
// 🎲 What is randgen?
//
//	A small, composable library built around one abstraction:
//		• Generator[A] — an opaque, reusable recipe for producing values of A
//		• Next         — draw one value
//		• Map / Then   — transform draws, or let one draw pick the next Generator
//		• Factories    — Float, Int, Bool, Uniform, Weighted, Constant, PairOf, List
//
// ✨ Why choose randgen?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – every factory accepts WithSeed/WithRand/WithSource
//   - Pure Go values – no I/O, no globals mutated, no hidden state
//   - Composable – generators nest: a random length can drive a random list
//
// Under the hood, everything is organized under two subpackages:
//
//	gen/    — the Generator engine, numeric & selection factories, combinators,
//	          and deterministic reference sources (SimpleSeeded, LCG)
//	sample/ — statistical inspection helpers: draw batches, frequencies,
//	          coverage checks, summaries and histograms
//
// Quick example — three six-sided dice:
//
//	d6   := gen.Int(1, 6)
//	dice := gen.Map(gen.List(3, d6), func(rolls []int) int {
//		return rolls[0] + rolls[1] + rolls[2]
//	})
//	total := dice.Next() // always in [3,18]
//
// Randomness quality note: the default source is math/rand's ambient
// uniform stream; it is NOT cryptographically secure, and neither are the
// deterministic reference sources. Pick your source accordingly.
//
// Dive into examples/ for full walkthroughs: dice pools, rarity-weighted
// loot drops, and random walks.
//
//	go get github.com/katalvlaran/randgen/gen
package randgen
