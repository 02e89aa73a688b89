// SPDX-License-Identifier: MIT
// Package: randgen/gen
//
// options.go — functional options controlling where factories obtain their
// unit-interval randomness.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (nil funcs, nil streams). Generators themselves never validate.
//   • Determinism is explicit: seeding is done via WithSeed, WithRand, or
//     WithSource. No hidden globals beyond the documented ambient default.
//   • The unit source contract is [0,1); sources emitting outside it make
//     every numeric factory's output unspecified.

package gen

import (
	"math/rand" // ambient + seeded unit-interval streams
)

// Option customizes how a factory draws unit-interval randomness.
// Applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config carries the resolved source of unit-interval randomness.
// It is passed by value into factory closures (immutable to callers).
type config struct {
	// unit yields one float64 in [0,1) per call.
	unit Source[float64]
}

// newConfig starts from the ambient math/rand uniform stream and applies
// options in order; later options win.
// Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	cfg := config{unit: rand.Float64}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSource substitutes src for the ambient unit-interval source.
// src must emit values in [0,1); nothing checks that it does.
// Panics on nil to surface programmer error early.
func WithSource(src Source[float64]) Option {
	if src == nil {
		// Fail fast: option constructors validate and panic.
		panic("gen: WithSource(nil)")
	}
	return func(c *config) {
		c.unit = src
	}
}

// WithRand draws unit-interval values from an explicit math/rand stream.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("gen: WithRand(nil)")
	}
	return func(c *config) {
		c.unit = r.Float64
	}
}

// WithSeed draws unit-interval values from a fresh math/rand stream seeded
// with seed (deterministic). Each factory call applying this option gets its
// own stream starting at the same state — two factories built with
// WithSeed(42) draw identical sequences independently. Use it in tests and
// examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		// Seeded stream → reproducible draws.
		c.unit = rand.New(rand.NewSource(seed)).Float64
	}
}
