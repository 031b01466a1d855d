// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d).
//
// Canonical model:
//   • Configuration model: n*d stubs shuffled and paired; a pairing with a
//     loop or a repeated pair is rejected and reshuffled.
//
// Contract:
//   • n ≥ 1, 0 ≤ d < n, n*d even (else ErrTooFewVertices).
//   • RNG required (else ErrNeedRandSource).
//   • After maxStubMatchingAttempts rejected pairings: ErrConstructFailed.
//     Vertices are only added once a valid pairing exists.
//
// Complexity:
//   • Time O(attempts · n·d), Space O(n·d).

package builder

import (
	"fmt"

	"github.com/orazve/subiso/core"
)

// RandomRegular returns a Constructor that samples a simple d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomRegular, n, MinRandomNodes, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomRegular, ErrNeedRandSource)
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		rng := cfg.rng
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}

			base, err := addBlock(MethodRandomRegular, g, cfg, n)
			if err != nil {
				return err
			}
			for i := 0; i < len(stubs); i += 2 {
				if err := connect(MethodRandomRegular, g, base+stubs[i], base+stubs[i+1]); err != nil {
					return err
				}
			}
			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form neither a loop
// nor a repeated edge.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}
