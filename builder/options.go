// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options resolving into builderConfig.

package builder

import "math/rand"

// BuilderOption mutates builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithOffset shifts every emitted vertex id by k. Composing constructors
// with different offsets yields disjoint components.
func WithOffset(k int) BuilderOption {
	if k < 0 {
		panic("builder: WithOffset(k<0)")
	}
	return func(c *builderConfig) {
		c.offset = k
	}
}

// WithRand attaches a caller-owned RNG.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOrderedPairs makes RandomSparse sample every ordered pair (i,j), i≠j.
func WithOrderedPairs() BuilderOption {
	return func(c *builderConfig) {
		c.orderedPairs = true
	}
}
