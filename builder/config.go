// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • offset       = 0      (vertex ids start at 0)
//   • rng          = nil    (pure/deterministic unless seeded)
//   • orderedPairs = false  (RandomSparse samples unordered pairs i<j)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// offset is added to every vertex id a constructor emits.
	offset int
	// rng for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// orderedPairs makes RandomSparse run a trial for (i,j) and (j,i).
	orderedPairs bool
}

// newBuilderConfig applies options in order; later options override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a constructor-local index to the emitted vertex id.
func (c builderConfig) id(i int) int {
	return c.offset + i
}
