// SPDX-License-Identifier: MIT
// File: snapshot.go
// Role: Immutable, lock-free read model (CSR + optional dense bitset rows).
//
// Determinism:
//   - Neighbors(v) is ascending; identical Graph state yields identical Snapshots.
//
// Concurrency:
//   - Snapshot is read-only after construction; no locks on the read path.
package core

import (
	"fmt"
	"slices"

	"github.com/orazve/subiso/bitset"
)

// Representation selects how a Snapshot answers neighbor-set queries.
type Representation uint8

const (
	// Auto picks Dense when the bitset rows fit the dense budget, Sparse otherwise.
	Auto Representation = iota
	// Dense stores one bitset row per vertex in addition to the CSR lists.
	Dense
	// Sparse stores CSR neighbor lists only.
	Sparse
)

// DefaultDenseBudget is the byte budget Auto allows for bitset rows (32 MiB).
const DefaultDenseBudget = 32 << 20

// String implements fmt.Stringer.
func (r Representation) String() string {
	switch r {
	case Auto:
		return "auto"
	case Dense:
		return "dense"
	case Sparse:
		return "sparse"
	default:
		return fmt.Sprintf("Representation(%d)", uint8(r))
	}
}

// ParseRepresentation maps "auto", "dense" or "sparse" to a Representation.
func ParseRepresentation(s string) (Representation, error) {
	switch s {
	case "", "auto":
		return Auto, nil
	case "dense":
		return Dense, nil
	case "sparse":
		return Sparse, nil
	default:
		return Auto, fmt.Errorf("ParseRepresentation(%q): %w", s, ErrUnknownRepresentation)
	}
}

// SnapshotOption configures Graph.Snapshot.
type SnapshotOption func(*snapshotConfig)

type snapshotConfig struct {
	repr   Representation
	budget int
}

// WithRepresentation forces the snapshot representation.
func WithRepresentation(r Representation) SnapshotOption {
	return func(c *snapshotConfig) { c.repr = r }
}

// WithDenseBudget sets the byte budget consulted by Auto.
// Panics on a negative budget.
func WithDenseBudget(bytes int) SnapshotOption {
	if bytes < 0 {
		panic("core: WithDenseBudget(bytes<0)")
	}
	return func(c *snapshotConfig) { c.budget = bytes }
}

// Snapshot is an immutable view of a Graph in compressed sparse row form.
type Snapshot struct {
	n, m      int
	maxDegree int
	repr      Representation

	attrs   []int64
	offsets []int32 // len n+1
	targets []int32 // len 2m

	stride int    // bytes per dense row
	rows   []byte // n*stride, nil when Sparse
}

// Snapshot freezes the current state of g.
//
// Implementation:
//   - Stage 1: Resolve options; Auto becomes Dense or Sparse by byte budget.
//   - Stage 2: Under the read lock, export each Roaring bitmap into the CSR arrays.
//   - Stage 3: For Dense, raise N(v) in row v of one contiguous allocation.
//
// Errors:
//   - ErrUnknownRepresentation: invalid WithRepresentation value.
//
// Complexity:
//   - Time O(V + E) sparse; O(V + E + V*ceil(V/8)) dense.
//   - Space O(V + E) sparse; plus V*ceil(V/8) bytes dense.
func (g *Graph) Snapshot(opts ...SnapshotOption) (*Snapshot, error) {
	cfg := snapshotConfig{repr: Auto, budget: DefaultDenseBudget}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.repr > Sparse {
		return nil, fmt.Errorf("Snapshot: %v: %w", cfg.repr, ErrUnknownRepresentation)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.attrs)
	s := &Snapshot{
		n:       n,
		m:       g.edges,
		attrs:   append([]int64(nil), g.attrs...),
		offsets: make([]int32, n+1),
		targets: make([]int32, 0, 2*g.edges),
		stride:  bitset.ByteLen(n),
	}

	s.repr = cfg.repr
	if s.repr == Auto {
		s.repr = Sparse
		if n*s.stride <= cfg.budget {
			s.repr = Dense
		}
	}

	for v, bm := range g.adj {
		it := bm.Iterator()
		for it.HasNext() {
			s.targets = append(s.targets, int32(it.Next()))
		}
		s.offsets[v+1] = int32(len(s.targets))
		if d := int(s.offsets[v+1] - s.offsets[v]); d > s.maxDegree {
			s.maxDegree = d
		}
	}

	if s.repr == Dense {
		s.rows = make([]byte, n*s.stride)
		for v := 0; v < n; v++ {
			row := s.rows[v*s.stride : (v+1)*s.stride]
			for _, u := range s.Neighbors(v) {
				row[u>>3] |= 1 << (u & 7)
			}
		}
	}

	return s, nil
}

// IsNil reports whether the receiver is a nil *Snapshot, so callers holding
// it behind an interface can reject typed nils without reflection.
func (s *Snapshot) IsNil() bool { return s == nil }

// VertexCount returns the number of vertices.
func (s *Snapshot) VertexCount() int { return s.n }

// EdgeCount returns the number of undirected edges.
func (s *Snapshot) EdgeCount() int { return s.m }

// Degree returns |N(v)|.
func (s *Snapshot) Degree(v int) int { return int(s.offsets[v+1] - s.offsets[v]) }

// MaxDegree returns the largest vertex degree (0 for an empty graph).
func (s *Snapshot) MaxDegree() int { return s.maxDegree }

// Attribute returns the attribute of vertex v.
func (s *Snapshot) Attribute(v int) int64 { return s.attrs[v] }

// Representation reports the resolved representation (never Auto).
func (s *Snapshot) Representation() Representation { return s.repr }

// Neighbors returns N(v) in ascending order. The slice is shared; callers
// must not modify it.
func (s *Snapshot) Neighbors(v int) []int32 {
	lo, hi := s.offsets[v], s.offsets[v+1]
	return s.targets[lo:hi:hi]
}

// NeighborRow returns N(v) as a bitset view of length VertexCount(). The
// view is shared; callers must not modify it. Sparse snapshots return the
// zero Bitset.
func (s *Snapshot) NeighborRow(v int) bitset.Bitset {
	if s.rows == nil {
		return bitset.Bitset{}
	}
	return bitset.FromBytes(s.rows[v*s.stride:(v+1)*s.stride], s.n)
}

// HasEdge reports whether {u,v} is an edge.
// Complexity: O(1) dense, O(log d) sparse.
func (s *Snapshot) HasEdge(u, v int) bool {
	if u < 0 || u >= s.n || v < 0 || v >= s.n {
		return false
	}
	if s.rows != nil {
		return s.rows[u*s.stride+v>>3]&(1<<(v&7)) != 0
	}
	_, ok := slices.BinarySearch(s.Neighbors(u), int32(v))
	return ok
}
