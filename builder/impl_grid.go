// SPDX-License-Identifier: MIT
// Package: subiso/builder
//
// impl_grid.go - implementation of Grid(rows, cols).
//
// Contract:
//   • rows, cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r,c) has id base + r*cols + c (row-major).
//   • 4-neighborhood: right and down edges emitted per cell, row-major.
//
// Complexity:
//   • Time O(rows*cols), Space O(1) extra.

package builder

import (
	"fmt"

	"github.com/orazve/subiso/core"
)

// Grid returns a Constructor that appends a rows×cols 4-neighborhood grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		base, err := addBlock(MethodGrid, g, cfg, rows*cols)
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := base + r*cols + c
				if c+1 < cols {
					if err := connect(MethodGrid, g, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(MethodGrid, g, u, u+cols); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
