// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// impl_star.go - implementation of Star(n).
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The center is the first vertex of the block; leaves follow.

package builder

import (
	"fmt"

	"github.com/orazve/subiso/core"
)

// Star returns a Constructor that appends a star with n-1 leaves.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		base, err := addBlock(MethodStar, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := connect(MethodStar, g, base, base+i); err != nil {
				return err
			}
		}
		return nil
	}
}
