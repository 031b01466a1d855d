// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p).
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j, independently with prob p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required for 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1} is deterministic.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc with j>i.

package builder

import (
	"fmt"

	"github.com/orazve/subiso/core"
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSparse, n, MinRandomNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		base, err := addBlock(MethodRandomSparse, g, cfg, n)
		if err != nil {
			return err
		}
		if p == MinProbability {
			return nil
		}

		rng := cfg.rng
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				// p == 1 never consults the RNG, so a nil rng is fine there.
				if p < MaxProbability && rng.Float64() >= p {
					continue
				}
				if err := connect(MethodRandomSparse, g, base+i, base+j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
