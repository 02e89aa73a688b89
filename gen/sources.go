// SPDX-License-Identifier: MIT
// Package: randgen/gen
//
// sources.go — deterministic reference sources and stream adapters.
//
// Contract (strict):
//   • Every Source here emits float64 values in [0,1), one per call.
//   • Mutable state (seeds, LCG registers) lives inside the returned closure;
//     nothing global is touched.
//   • None of these sources is goroutine-safe or cryptographically secure.
//   • Determinism: the same seed always replays the same stream.

package gen

import (
	"math"
	"math/rand" // FromRand adapter

	exprand "golang.org/x/exp/rand" // FromExpRand adapter
)

// Lehmer multiplicative LCG parameters (Park–Miller "minimal standard").
const (
	lcgModulus    int64 = 1<<31 - 1 // Mersenne prime 2³¹−1
	lcgMultiplier int64 = 16807     // 7⁵, full-period multiplier
)

// defaultLCGSeed replaces a zero LCG seed. A Lehmer stream seeded with zero
// would be stuck at zero forever, so zero falls back to a fixed non-zero
// default — arbitrary but stable for reproducible defaults.
const defaultLCGSeed int64 = 1

// SimpleSeeded returns the reference deterministic Source: each call updates
// seed := sin(seed) * 10000 and yields its fractional part, a value in [0,1).
//
// This is deliberately LOW-QUALITY pseudo-randomness — a one-line trick for
// illustration and tests, with no statistical guarantees whatsoever. Use LCG
// for a better-behaved deterministic stream, or WithSeed for math/rand.
// Complexity: O(1) per call.
func SimpleSeeded(seed float64) Source[float64] {
	state := seed

	return func() float64 {
		state = math.Sin(state) * 10000

		return state - math.Floor(state)
	}
}

// LCG returns a deterministic Source backed by the Park–Miller multiplicative
// linear congruential generator: state := state * 16807 mod (2³¹−1), yielding
// state / (2³¹−1) in (0,1) each call. Full period 2³¹−2 over non-zero states.
//
// Policy: seed == 0 falls back to a fixed default (a zero state never
// escapes zero); any other seed is reduced into the valid state range.
// Not statistically rigorous by modern standards, but fast, portable, and
// good enough for reproducible tests and simulations.
// Complexity: O(1) per call.
func LCG(seed int64) Source[float64] {
	state := seed % lcgModulus
	if state < 0 {
		state = -state
	}
	if state == 0 {
		state = defaultLCGSeed
	}

	return func() float64 {
		state = state * lcgMultiplier % lcgModulus

		return float64(state) / float64(lcgModulus)
	}
}

// FromRand adapts an explicit math/rand stream into a unit-interval Source.
// The returned Source shares r's state: interleaving it with other users of r
// changes both streams. Panics on nil (option-constructor discipline).
func FromRand(r *rand.Rand) Source[float64] {
	if r == nil {
		panic("gen: FromRand(nil)")
	}

	return r.Float64
}

// FromExpRand adapts a golang.org/x/exp/rand stream — the source family
// gonum's distribution plumbing speaks — into a unit-interval Source.
// Shares r's state, as FromRand does. Panics on nil.
func FromExpRand(r *exprand.Rand) Source[float64] {
	if r == nil {
		panic("gen: FromExpRand(nil)")
	}

	return r.Float64
}
