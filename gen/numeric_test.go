package gen_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/katalvlaran/randgen/gen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFloat_Range draws heavily from Float(min,max) and checks every sample
// lies in [min, max].
func TestFloat_Range(t *testing.T) {
	g := gen.Float(-2.5, 7.5, gen.WithSource(gen.LCG(1)))

	for i := 0; i < 2000; i++ {
		v := g.Next()
		require.GreaterOrEqual(t, v, -2.5, "sample below lower bound")
		require.LessOrEqual(t, v, 7.5, "sample above upper bound")
	}
}

// TestFloat_LinearInUnitDraw pins Float's arithmetic against hand-computed
// values from a fixed unit draw.
func TestFloat_LinearInUnitDraw(t *testing.T) {
	g := gen.Float(10, 20, gen.WithSource(stepSource(0.0, 0.25, 0.5)))

	assert.Equal(t, 10.0, g.Next(), "u=0 maps to min")
	assert.Equal(t, 12.5, g.Next(), "u=0.25 maps a quarter of the way")
	assert.Equal(t, 15.0, g.Next(), "u=0.5 maps to the midpoint")
}

// TestFloat_ReversedBounds documents the deliberate absence of bounds
// validation: min > max simply produces values in the reversed interval.
func TestFloat_ReversedBounds(t *testing.T) {
	g := gen.Float(5, 1, gen.WithSource(gen.LCG(2)))

	for i := 0; i < 1000; i++ {
		v := g.Next()
		require.Greater(t, v, 1.0, "reversed range stays above max")
		require.LessOrEqual(t, v, 5.0, "reversed range stays at or below min")
	}
}

// TestFloatWithPrecision_FloorsTowardNegativeInfinity checks the cut is a
// floor, not a round-to-nearest.
func TestFloatWithPrecision_FloorsTowardNegativeInfinity(t *testing.T) {
	// u=0.99 over [0,1) → 0.99; precision 1 floors to 0.9, never 1.0.
	g := gen.FloatWithPrecision(0, 1, 1, gen.WithSource(stepSource(0.99)))
	assert.Equal(t, 0.9, g.Next(), "0.99 at precision 1 floors to 0.9")

	// Negative values floor away from zero: -0.35 at precision 0 → -1.
	neg := gen.FloatWithPrecision(-1, 0, 0, gen.WithSource(stepSource(0.65)))
	assert.Equal(t, -1.0, neg.Next(), "floor is toward negative infinity, not toward zero")
}

// TestFloatWithPrecision_ZeroPrecisionIsIntegerValued verifies precision 0
// yields integer-valued floats.
func TestFloatWithPrecision_ZeroPrecisionIsIntegerValued(t *testing.T) {
	g := gen.FloatWithPrecision(0, 100, 0, gen.WithSource(gen.LCG(5)))

	for i := 0; i < 1000; i++ {
		v := g.Next()
		require.Equal(t, math.Trunc(v), v, "precision 0 must produce integer-valued floats")
	}
}

// TestFloatWithPrecision_StringLength checks that for every precision p in
// [0,14], a unit-interval draw stringifies to at most p+2 characters
// (leading digit, decimal point, p fractional digits).
func TestFloatWithPrecision_StringLength(t *testing.T) {
	for p := 0; p <= 14; p++ {
		g := gen.FloatWithPrecision(0, 1, p, gen.WithSource(gen.LCG(int64(p)+1)))
		for i := 0; i < 200; i++ {
			s := strconv.FormatFloat(g.Next(), 'f', -1, 64)
			require.LessOrEqual(t, len(s), p+2, "precision %d produced over-long value %q", p, s)
		}
	}
}

// TestInt_InclusiveRangeAndCoverage draws 10000 samples from Int(0,100) and
// checks every sample is inside the inclusive range and that every value in
// the range appears at least once (statistical, overwhelmingly likely).
func TestInt_InclusiveRangeAndCoverage(t *testing.T) {
	g := gen.Int(0, 100, gen.WithSource(gen.LCG(1234)))

	seen := make(map[int]bool, 101)
	for i := 0; i < 10000; i++ {
		v := g.Next()
		require.GreaterOrEqual(t, v, 0, "sample below inclusive lower bound")
		require.LessOrEqual(t, v, 100, "sample above inclusive upper bound")
		seen[v] = true
	}

	for want := 0; want <= 100; want++ {
		assert.True(t, seen[want], "value %d never drawn in 10000 samples", want)
	}
}

// TestInt_BothBoundsReachable pins the "+1 then floor" widening: u near 0
// produces min, u near 1 produces max (inclusive).
func TestInt_BothBoundsReachable(t *testing.T) {
	g := gen.Int(3, 7, gen.WithSource(stepSource(0.0, 0.9999)))

	assert.Equal(t, 3, g.Next(), "u=0 lands on the inclusive minimum")
	assert.Equal(t, 7, g.Next(), "u close to 1 lands on the inclusive maximum")
}

// TestInt_NegativeRange confirms the floor-based algorithm also covers
// all-negative inclusive ranges.
func TestInt_NegativeRange(t *testing.T) {
	g := gen.Int(-5, -1, gen.WithSource(gen.LCG(77)))

	seen := make(map[int]bool, 5)
	for i := 0; i < 2000; i++ {
		v := g.Next()
		require.GreaterOrEqual(t, v, -5)
		require.LessOrEqual(t, v, -1)
		seen[v] = true
	}
	assert.Len(t, seen, 5, "all five values of [-5,-1] should appear")
}

// TestBool_ThresholdStrict verifies the strict > 0.5 cut: exactly 0.5 is false.
func TestBool_ThresholdStrict(t *testing.T) {
	g := gen.Bool(gen.WithSource(stepSource(0.5, 0.500001, 0.0, 0.9)))

	assert.False(t, g.Next(), "exactly 0.5 is not greater than 0.5")
	assert.True(t, g.Next(), "just above 0.5 is true")
	assert.False(t, g.Next(), "0 is false")
	assert.True(t, g.Next(), "0.9 is true")
}

// TestBool_RoughlyFair draws many samples from a decent deterministic stream
// and checks the true-rate sits near one half.
func TestBool_RoughlyFair(t *testing.T) {
	g := gen.Bool(gen.WithSource(gen.LCG(321)))

	trues := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if g.Next() {
			trues++
		}
	}
	rate := float64(trues) / n
	assert.InDelta(t, 0.5, rate, 0.03, "a uniform source should flip a roughly fair coin")
}
