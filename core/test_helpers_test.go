// SPDX-License-Identifier: MIT
// Package core_test contains small fixtures shared by the core tests.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orazve/subiso/core"
)

// Common attributes used across core tests.
const (
	Attr0 = int64(0)
	Attr1 = int64(1)
	Attr7 = int64(7)
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// newSquareWithDiagonal builds 0-1-2-3-0 plus the chord 0-2.
func newSquareWithDiagonal(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithCapacity(4))
	g.AddVertices(4, Attr0)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}
