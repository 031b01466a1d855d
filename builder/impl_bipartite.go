// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   • n1, n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side occupies the first n1 ids of the block, right side the next n2.
//   • Every left vertex is joined to every right vertex, left-major.

package builder

import (
	"fmt"

	"github.com/orazve/subiso/core"
)

// CompleteBipartite returns a Constructor that appends K_{n1,n2}.
// Complexity: O(n1*n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < MinPartition || n2 < MinPartition {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, MinPartition, ErrTooFewVertices)
		}
		base, err := addBlock(MethodCompleteBipartite, g, cfg, n1+n2)
		if err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := connect(MethodCompleteBipartite, g, base+i, base+n1+j); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
