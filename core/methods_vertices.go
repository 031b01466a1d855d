// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle, attributes and per-vertex queries.
//
// Determinism:
//   - Vertex ids are assigned densely in insertion order.
//
// Concurrency:
//   - All methods take g.mu (write lock for mutation, read lock for queries).
package core

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// AddVertex appends a new isolated vertex with the given attribute and
// returns its id.
//
// Implementation:
//   - Stage 1: Acquire the write lock.
//   - Stage 2: Append the attribute and an empty adjacency bitmap.
//
// Returns:
//   - int: the new vertex id (== previous VertexCount()).
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(attr int64) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addVertexLocked(attr)
}

// AddVertices appends n isolated vertices carrying attr and returns the id of
// the first one. n <= 0 adds nothing and returns VertexCount().
//
// Complexity:
//   - Time O(n), Space O(n).
func (g *Graph) AddVertices(n int, attr int64) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	first := len(g.attrs)
	for i := 0; i < n; i++ {
		g.addVertexLocked(attr)
	}
	return first
}

// EnsureVertices grows the graph with default-attribute vertices until it
// holds at least n of them.
func (g *Graph) EnsureVertices(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for len(g.attrs) < n {
		g.addVertexLocked(g.defaultAttr)
	}
}

// addVertexLocked appends one vertex; caller holds the write lock.
func (g *Graph) addVertexLocked(attr int64) int {
	g.attrs = append(g.attrs, attr)
	g.adj = append(g.adj, roaring.New())
	return len(g.attrs) - 1
}

// HasVertex reports whether v is a valid vertex id.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return v >= 0 && v < len(g.attrs)
}

// SetAttribute replaces the attribute of vertex v.
//
// Errors:
//   - ErrVertexNotFound: v is out of range.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) SetAttribute(v int, attr int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if v < 0 || v >= len(g.attrs) {
		return fmt.Errorf("SetAttribute(%d): %w", v, ErrVertexNotFound)
	}
	g.attrs[v] = attr
	return nil
}

// Attribute returns the attribute of vertex v.
//
// Errors:
//   - ErrVertexNotFound: v is out of range.
func (g *Graph) Attribute(v int) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.attrs) {
		return 0, fmt.Errorf("Attribute(%d): %w", v, ErrVertexNotFound)
	}
	return g.attrs[v], nil
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.attrs)
}

// Degree returns |N(v)|.
//
// Errors:
//   - ErrVertexNotFound: v is out of range.
//
// Complexity:
//   - Time O(1) (Roaring keeps cardinality per container), Space O(1).
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.attrs) {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrVertexNotFound)
	}
	return int(g.adj[v].GetCardinality()), nil
}
