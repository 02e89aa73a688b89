package gen

import "math"

// Float returns a Generator producing min + (max-min)*u, with u drawn from
// the configured unit-interval source. For min <= max the values lie in
// [min, max); u is never 1, so max itself is unreachable (up to float
// rounding at extreme magnitudes).
//
// Bounds are deliberately not validated: min > max simply yields values in
// the reversed interval (max, min], behavior existing callers rely on.
func Float(min, max float64, opts ...Option) Generator[float64] {
	cfg := newConfig(opts...)

	return wrap(func() float64 {
		return min + (max-min)*cfg.unit()
	})
}

// FloatWithPrecision is Float with the result cut to the given number of
// decimal digits. The cut rounds toward negative infinity — floor, not
// nearest — after scaling by 10^precision; precision 0 therefore yields
// integer-valued floats, and Int's inclusive-range arithmetic depends on
// exactly this floor behavior.
//
// precision is a non-negative count of decimal digits retained; values in
// [0,14] keep the scaling exact in float64.
func FloatWithPrecision(min, max float64, precision int, opts ...Option) Generator[float64] {
	scale := math.Pow(10, float64(precision))

	return Map(Float(min, max, opts...), func(v float64) float64 {
		return math.Floor(v*scale) / scale
	})
}

// Int returns a Generator producing integers uniformly over the INCLUSIVE
// range [min, max]. It is defined as FloatWithPrecision(min, max+1, 0):
// widening the upper bound by one and flooring makes both bounds inclusive
// while reusing the float primitive — flooring values in [min, max+1) lands
// exactly on min..max. No separate integer algorithm exists.
func Int(min, max int, opts ...Option) Generator[int] {
	wide := FloatWithPrecision(float64(min), float64(max)+1, 0, opts...)

	return Map(wide, func(v float64) int {
		// v is already floor-valued; the conversion is exact.
		return int(v)
	})
}

// Bool returns a Generator drawing a unit-interval value and reporting
// whether it exceeds 0.5 (strictly), i.e. a fair coin for any uniform
// source.
func Bool(opts ...Option) Generator[bool] {
	cfg := newConfig(opts...)

	return wrap(func() bool {
		return cfg.unit() > 0.5
	})
}
