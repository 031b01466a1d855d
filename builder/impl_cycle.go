// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// impl_cycle.go - implementation of Cycle(n).
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Edges {i, (i+1) mod n} emitted for i ascending.

package builder

import (
	"fmt"

	"github.com/orazve/subiso/core"
)

// Cycle returns a Constructor that appends the simple cycle C_n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		base, err := addBlock(MethodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := connect(MethodCycle, g, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}
		return nil
	}
}
