package core_test

import (
	"math/rand"
	"testing"

	"github.com/orazve/subiso/core"
)

func randomGraph(n int, p float64, seed int64) *core.Graph {
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph(core.WithCapacity(n))
	g.AddVertices(n, 0)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if r.Float64() < p {
				_ = g.AddEdge(u, v)
			}
		}
	}
	return g
}

// BenchmarkSnapshot_Dense freezes a 1000-vertex graph with bitset rows.
func BenchmarkSnapshot_Dense(b *testing.B) {
	g := randomGraph(1000, 0.02, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Snapshot(core.WithRepresentation(core.Dense))
	}
}

// BenchmarkSnapshot_Sparse freezes the same graph as CSR only.
func BenchmarkSnapshot_Sparse(b *testing.B) {
	g := randomGraph(1000, 0.02, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Snapshot(core.WithRepresentation(core.Sparse))
	}
}
