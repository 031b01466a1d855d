package match_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orazve/subiso/builder"
	"github.com/orazve/subiso/core"
	"github.com/orazve/subiso/match"
	"github.com/orazve/subiso/order"
)

// embeddingSet holds embeddings keyed by their pattern-vertex-indexed form.
type embeddingSet map[string]struct{}

func snap(t testing.TB, repr core.Representation, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Snapshot {
	t.Helper()
	s, err := builder.BuildSnapshot(bopts, []core.SnapshotOption{core.WithRepresentation(repr)}, cons...)
	require.NoError(t, err)
	return s
}

func plan(t testing.TB, p *core.Snapshot) *order.Order {
	t.Helper()
	o, err := order.Plan(p)
	require.NoError(t, err)
	return o
}

// bruteForce enumerates every injective map pattern -> target and keeps the
// ones that preserve edges (and non-edges when induced) and attributes when
// semantic.
func bruteForce(target, pattern *core.Snapshot, kind match.Kind, semantic bool) embeddingSet {
	m, n := pattern.VertexCount(), target.VertexCount()
	out := embeddingSet{}
	mapping := make([]int32, m)
	used := make([]bool, n)

	var rec func(p int)
	rec = func(p int) {
		if p == m {
			out[fmt.Sprint(mapping)] = struct{}{}
			return
		}
		for t := 0; t < n; t++ {
			if used[t] {
				continue
			}
			if semantic && pattern.Attribute(p) != target.Attribute(t) {
				continue
			}
			ok := true
			for q := 0; q < p && ok; q++ {
				pe := pattern.HasEdge(p, q)
				te := target.HasEdge(t, int(mapping[q]))
				if pe && !te {
					ok = false
				}
				if kind == match.Induced && !pe && te {
					ok = false
				}
			}
			if !ok {
				continue
			}
			used[t] = true
			mapping[p] = int32(t)
			rec(p + 1)
			used[t] = false
		}
	}
	rec(0)
	return out
}

// collect converts order-indexed rows to pattern-indexed keys.
func collect(t testing.TB, o *order.Order, sols *match.Solutions) embeddingSet {
	t.Helper()
	out := embeddingSet{}
	mapping := make([]int32, o.Len())
	sols.Each(func(_ int, row []int32) bool {
		for i, v := range row {
			mapping[o.Sequence[i]] = v
		}
		key := fmt.Sprint(mapping)
		_, dup := out[key]
		require.False(t, dup, "duplicate embedding %s", key)
		out[key] = struct{}{}
		return true
	})
	return out
}

// runAllRoots drives a single engine over every target vertex.
func runAllRoots(t testing.TB, target, pattern *core.Snapshot, o *order.Order, cfg match.Config) *match.Solutions {
	t.Helper()
	eng, err := match.NewEngine(target, pattern, o, cfg)
	require.NoError(t, err)
	for v := 0; v < target.VertexCount(); v++ {
		eng.Run(v)
	}
	return eng.Solutions()
}
