// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// impl_wheel.go - implementation of Wheel(n).
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub, i.e., a cycle of size (n-1) plus a hub vertex.
//   • Therefore, n ≥ 4 (since the outer ring must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • The rim occupies the first n-1 ids of the block, the hub the last one.
//   • Spokes are emitted by increasing rim index.
//
// Complexity:
//   • Time O(n), Space O(1) extra.

package builder

import (
	"fmt"

	"github.com/orazve/subiso/core"
)

// Wheel returns a Constructor that appends a wheel Wₙ.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}

		rim := g.VertexCount()
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", MethodWheel, n-1, err)
		}

		// The hub continues the attribute sequence at index n-1.
		hub := g.AddVertex(cfg.attrFn(n-1, cfg.rng))
		for i := 0; i < n-1; i++ {
			if err := connect(MethodWheel, g, hub, rim+i); err != nil {
				return err
			}
		}
		return nil
	}
}
