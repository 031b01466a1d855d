// SPDX-License-Identifier: MIT
// Package core provides the in-memory graph model used by the matcher: a
// thread-safe mutable Graph for construction and an immutable Snapshot
// optimized for the hot read paths of subgraph matching.
//
// The Graph G = (V,E) is simple and undirected:
//
//   - Vertices are dense integer ids 0..n-1 assigned in insertion order.
//   - Each vertex carries one int64 attribute (label) used for semantic matching.
//   - Edges are unordered pairs {u,v}, u != v; re-adding an edge is a no-op.
//   - Per-vertex adjacency is held in a Roaring bitmap, so duplicate edges are
//     absorbed in O(log d) and neighbor ids come out sorted for free.
//   - One sync.RWMutex guards the whole mutable Graph; readers share it.
//
// Snapshot
//
//	Graph.Snapshot freezes the current state into CSR form:
//
//	  offsets[v] .. offsets[v+1]   slice of targets[] holding N(v), ascending
//
//	and, when the dense representation is selected, one contiguous block of
//	ceil(n/8)-byte bitset rows, one per vertex. A Snapshot is never mutated
//	after construction, so any number of goroutines may read it without locks.
//
// Representation (SnapshotOption)
//
//	– WithRepresentation(Dense)   neighbor bitset rows + CSR lists
//	– WithRepresentation(Sparse)  CSR lists only
//	– WithRepresentation(Auto)    Dense iff n*ceil(n/8) <= dense budget (default)
//	– WithDenseBudget(bytes)      byte budget consulted by Auto (default 32 MiB)
//
// Core Methods:
//
//	// Mutable graph
//	AddVertex(attr int64) int            // O(1) amortized
//	AddVertices(n int, attr int64) int   // O(n), returns the first new id
//	SetAttribute(v int, attr int64) error
//	AddEdge(u, v int) error              // O(log d)
//	HasEdge(u, v int) bool               // O(log d)
//	Degree(v int) (int, error)           // O(1)
//	NeighborIDs(v int) ([]int, error)    // O(d), ascending
//	Snapshot(opts ...SnapshotOption) (*Snapshot, error) // O(V+E) or O(V^2/8) dense
//
//	// Snapshot (lock-free reads)
//	VertexCount, EdgeCount, Degree, MaxDegree, Attribute  // O(1)
//	Neighbors(v) []int32                  // O(1), shared view
//	NeighborRow(v) bitset.Bitset          // O(1), dense only
//	HasEdge(u, v) bool                    // O(1) dense, O(log d) sparse
//
// Errors:
//
//	ErrVertexNotFound         - vertex id outside 0..n-1.
//	ErrLoopNotAllowed         - AddEdge(v, v).
//	ErrUnknownRepresentation  - invalid Representation passed to Snapshot.
package core
