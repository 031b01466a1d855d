// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// impl_complete.go - implementation of Complete(n).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits edges {i,j} for i<j in row-major order.
//
// Complexity:
//   • Time O(n²), Space O(1) extra.

package builder

import (
	"fmt"

	"github.com/orazve/subiso/core"
)

// Complete returns a Constructor that appends the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		base, err := addBlock(MethodComplete, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(MethodComplete, g, base+i, base+j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
