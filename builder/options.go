// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithAttributeFn overrides the per-vertex attribute generator. fn receives
// the vertex index inside the constructor's block and the configured RNG
// (possibly nil). Panics on nil.
func WithAttributeFn(fn func(i int, r *rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithAttributeFn(nil)")
	}
	return func(c *builderConfig) {
		c.attrFn = fn
		c.attrNeedsRNG = false
	}
}

// WithCyclicLabels assigns attribute i mod k. Panics if k < 1.
func WithCyclicLabels(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithCyclicLabels(k<1)")
	}
	return func(c *builderConfig) {
		c.attrFn = func(i int, _ *rand.Rand) int64 { return int64(i % k) }
		c.attrNeedsRNG = false
	}
}

// WithRandomLabels assigns attributes uniformly from [0,k) using the
// configured RNG. Constructors fail with ErrNeedRandSource without one.
// Panics if k < 1.
func WithRandomLabels(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithRandomLabels(k<1)")
	}
	return func(c *builderConfig) {
		c.attrFn = func(_ int, r *rand.Rand) int64 { return r.Int63n(int64(k)) }
		c.attrNeedsRNG = true
	}
}
