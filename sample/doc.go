// Package sample inspects what a Generator actually produces: draw batches,
// count frequencies, check range coverage, and summarize numeric streams.
//
// What
//
//   - Take: n sequential draws as a slice.
//   - Frequencies / Proportions: per-value counts and normalized shares for
//     comparable element types.
//   - Covers: which expected values a stream failed to hit.
//   - Summarize: Min/Max/Mean/StdDev of a numeric stream (gonum/stat).
//   - Histogram: bin counts over caller-supplied dividers (gonum/stat).
//
// Why
//
//	Generators are opaque by design; the only way to judge one is to draw
//	from it. These helpers standardize the drawing so tests and examples can
//	assert on distributions instead of hand-rolling tally loops.
//
// Determinism
//
//	Helpers add no randomness of their own: every draw comes from the
//	supplied Generator, in sequence, so a deterministic source yields fully
//	reproducible statistics.
//
// Edge policy
//
//	n <= 0 yields empty results across the board (empty slice, empty map, a
//	zero Summary, all expected values missing). Histogram requires strictly
//	increasing dividers spanning the drawn values; that contract belongs to
//	gonum and is documented on the function.
package sample
