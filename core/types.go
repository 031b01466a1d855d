// SPDX-License-Identifier: MIT
// Package core declares the mutable Graph, its options and the sentinel
// errors shared by Graph and Snapshot.
package core

import (
	"errors"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex id outside 0..n-1.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted; graphs are simple.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrUnknownRepresentation indicates a Representation value outside Auto/Dense/Sparse.
	ErrUnknownRepresentation = errors.New("core: unknown representation")
)

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex storage for n vertices.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.attrs = make([]int64, 0, n)
			g.adj = make([]*roaring.Bitmap, 0, n)
		}
	}
}

// WithDefaultAttribute sets the attribute assigned by AddVertices when the
// caller does not supply one explicitly through SetAttribute.
func WithDefaultAttribute(attr int64) GraphOption {
	return func(g *Graph) { g.defaultAttr = attr }
}

// Graph is a simple undirected graph with int64 vertex attributes.
//
// mu guards every field; all exported methods are safe for concurrent use.
// adj[v] holds N(v) as a Roaring bitmap; edges counts unordered pairs.
type Graph struct {
	mu sync.RWMutex

	defaultAttr int64

	attrs []int64
	adj   []*roaring.Bitmap
	edges int
}

// NewGraph creates an empty Graph.
// Complexity: O(1), or O(n) when WithCapacity(n) is supplied.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	MaxDegree   int
	// Isolated counts vertices with degree 0.
	Isolated int
}
