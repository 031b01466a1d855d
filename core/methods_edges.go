// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge insertion, adjacency queries, cloning and stats.
//
// Determinism:
//   - NeighborIDs returns ids in ascending order (Roaring iteration order).
//
// Concurrency:
//   - All methods take g.mu.
package core

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// AddEdge inserts the undirected edge {u,v}. Re-adding an existing edge is a
// no-op and does not change EdgeCount.
//
// Implementation:
//   - Stage 1: Reject self-loops (ErrLoopNotAllowed).
//   - Stage 2: Under the write lock, validate both endpoints.
//   - Stage 3: CheckedAdd into both bitmaps; count the edge once if new.
//
// Errors:
//   - ErrLoopNotAllowed: u == v.
//   - ErrVertexNotFound: u or v is out of range.
//
// Complexity:
//   - Time O(log d) per endpoint, Space O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.attrs)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrVertexNotFound)
	}

	if g.adj[u].CheckedAdd(uint32(v)) {
		g.adj[v].Add(uint32(u))
		g.edges++
	}
	return nil
}

// HasEdge reports whether {u,v} is an edge. Out-of-range ids yield false.
// Complexity: O(log d).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if u < 0 || u >= len(g.adj) || v < 0 {
		return false
	}
	return g.adj[u].Contains(uint32(v))
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// NeighborIDs returns N(v) in ascending order.
//
// Errors:
//   - ErrVertexNotFound: v is out of range.
//
// Complexity:
//   - Time O(d), Space O(d).
func (g *Graph) NeighborIDs(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.adj) {
		return nil, fmt.Errorf("NeighborIDs(%d): %w", v, ErrVertexNotFound)
	}
	out := make([]int, 0, g.adj[v].GetCardinality())
	it := g.adj[v].Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out, nil
}

// Clone returns a deep copy of g. Options of g are not replayed; the clone
// carries the same default attribute.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		defaultAttr: g.defaultAttr,
		attrs:       append([]int64(nil), g.attrs...),
		adj:         make([]*roaring.Bitmap, len(g.adj)),
		edges:       g.edges,
	}
	for i, bm := range g.adj {
		c.adj[i] = bm.Clone()
	}
	return c
}

// Stats returns a point-in-time summary.
// Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{VertexCount: len(g.attrs), EdgeCount: g.edges}
	for _, bm := range g.adj {
		d := int(bm.GetCardinality())
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
		if d == 0 {
			s.Isolated++
		}
	}
	return s
}
