// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// impl_path.go - implementation of Path(n): 0–1–…–(n-1), n ≥ 2.

package builder

import (
	"fmt"

	"github.com/orazve/subiso/core"
)

// Path returns a Constructor that appends the simple path P_n.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		base, err := addBlock(MethodPath, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := connect(MethodPath, g, base+i, base+i+1); err != nil {
				return err
			}
		}
		return nil
	}
}
