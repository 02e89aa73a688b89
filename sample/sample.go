package sample

import (
	"sort"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/randgen/gen"
)

// Number covers the element types Summarize and Histogram accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Summary describes a numeric draw batch.
type Summary struct {
	// N is the number of draws taken.
	N int
	// Min and Max are the extreme observed values.
	Min, Max float64
	// Mean is the arithmetic mean of the draws.
	Mean float64
	// StdDev is the sample (Bessel-corrected) standard deviation.
	StdDev float64
}

// Take draws n sequential values from g. n <= 0 yields an empty slice
// without consulting g.
// Complexity: O(n) draws, one O(n) allocation.
func Take[A any](g gen.Generator[A], n int) []A {
	if n <= 0 {
		return []A{}
	}

	out := make([]A, n)
	for i := 0; i < n; i++ {
		out[i] = g.Next()
	}

	return out
}

// Frequencies draws n values from g and counts occurrences per distinct
// value. n <= 0 yields an empty map.
func Frequencies[A comparable](g gen.Generator[A], n int) map[A]int {
	counts := make(map[A]int)
	for i := 0; i < n; i++ {
		counts[g.Next()]++
	}

	return counts
}

// Proportions draws n values from g and reports each distinct value's share
// of the batch; the shares sum to 1 (up to float rounding). n <= 0 yields an
// empty map.
func Proportions[A comparable](g gen.Generator[A], n int) map[A]float64 {
	counts := Frequencies(g, n)

	out := make(map[A]float64, len(counts))
	for v, c := range counts {
		out[v] = float64(c) / float64(n)
	}

	return out
}

// Covers draws n values from g and reports which of the expected values were
// never observed, preserving want's order. An empty result means full
// coverage. n <= 0 leaves everything missing.
func Covers[A comparable](g gen.Generator[A], n int, want []A) []A {
	seen := make(map[A]bool, len(want))
	for i := 0; i < n; i++ {
		seen[g.Next()] = true
	}

	missing := make([]A, 0)
	for _, w := range want {
		if !seen[w] {
			missing = append(missing, w)
		}
	}

	return missing
}

// Summarize draws n values from g and computes their Summary. n <= 0 yields
// the zero Summary. StdDev of a single draw is 0.
// Complexity: O(n) draws and O(n) post-processing.
func Summarize[A Number](g gen.Generator[A], n int) Summary {
	if n <= 0 {
		return Summary{}
	}

	xs := drawFloats(g, n)

	s := Summary{N: n, Min: xs[0], Max: xs[0]}
	for _, x := range xs[1:] {
		if x < s.Min {
			s.Min = x
		}
		if x > s.Max {
			s.Max = x
		}
	}
	s.Mean = stat.Mean(xs, nil)
	if n > 1 {
		s.StdDev = stat.StdDev(xs, nil)
	}

	return s
}

// Histogram draws n values from g and bins them against dividers, returning
// len(dividers)-1 counts. Dividers must be strictly increasing and span every
// drawn value (gonum/stat.Histogram's contract; violations panic there).
// n <= 0 yields all-zero bins.
func Histogram[A Number](g gen.Generator[A], n int, dividers []float64) []float64 {
	if n <= 0 {
		return make([]float64, len(dividers)-1)
	}

	xs := drawFloats(g, n)
	sort.Float64s(xs) // gonum requires ascending input

	return stat.Histogram(nil, dividers, xs, nil)
}

// drawFloats takes n draws widened to float64 for the gonum helpers.
func drawFloats[A Number](g gen.Generator[A], n int) []float64 {
	xs := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = float64(g.Next())
	}

	return xs
}
