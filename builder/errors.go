// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with "%s: ...: %w" (method tag first).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, degree)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor or attribute
// policy requires an RNG (WithSeed/WithRand) and none was configured.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted its retries, or was
// handed a nil constructor, and could not produce a valid topology.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownTopology indicates that FromSpec received an unsupported topology name.
var ErrUnknownTopology = errors.New("builder: unknown topology")
