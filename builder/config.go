// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng     = nil   (pure/deterministic unless seeded)
//   • attrFn  = 0     (every vertex carries attribute 0)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// attrFn maps (index within block, rng) to a vertex attribute.
	attrFn func(i int, r *rand.Rand) int64
	// attrNeedsRNG is set by attribute policies that draw from rng.
	attrNeedsRNG bool
}

// newBuilderConfig applies options in order over deterministic defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		attrFn: func(int, *rand.Rand) int64 { return 0 },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
