package match_test

import (
	"context"
	"testing"

	"github.com/orazve/subiso/builder"
	"github.com/orazve/subiso/core"
	"github.com/orazve/subiso/match"
)

func benchTarget(b *testing.B, repr core.Representation) *core.Snapshot {
	return snap(b, repr, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(300, 0.05))
}

func BenchmarkEngine_Cycle4(b *testing.B) {
	for _, repr := range representations {
		b.Run(repr.String(), func(b *testing.B) {
			target := benchTarget(b, repr)
			pattern := snap(b, core.Sparse, nil, builder.Cycle(4))
			eng, err := match.NewEngine(target, pattern, plan(b, pattern), match.Config{Kind: match.Induced})
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				eng.Solutions().Reset()
				for v := 0; v < target.VertexCount(); v++ {
					eng.Run(v)
				}
			}
		})
	}
}

func BenchmarkBundle_Cycle4(b *testing.B) {
	target := benchTarget(b, core.Dense)
	pattern := snap(b, core.Sparse, nil, builder.Cycle(4))
	bundle, err := match.NewBundle(target, pattern, plan(b, pattern), match.WithKind(match.NonInduced))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bundle.Run(ctx); err != nil {
			b.Fatal(err)
		}
	}
}
