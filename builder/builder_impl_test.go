// File: builder_impl_test.go
// Package builder_test contains functional tests for every Constructor,
// verifying vertex/edge counts, degrees and error sentinels.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orazve/subiso/builder"
	"github.com/orazve/subiso/core"
)

// degrees returns the degree sequence of g indexed by vertex id.
func degrees(t *testing.T, g *core.Graph) []int {
	t.Helper()
	out := make([]int, g.VertexCount())
	for v := range out {
		d, err := g.Degree(v)
		require.NoError(t, err)
		out[v] = d
	}
	return out
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Complete(5)", ctor: builder.Complete(5), wantV: 5, wantE: 10,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for _, d := range degrees(t, g) {
					assert.Equal(t, 4, d)
				}
			},
		},
		{
			name: "Complete(1)", ctor: builder.Complete(1), wantV: 1, wantE: 0,
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []int{1, 2, 2, 1}, degrees(t, g))
				assert.True(t, g.HasEdge(2, 3))
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(4, 0))
			},
		},
		{
			name: "Star(6)", ctor: builder.Star(6), wantV: 6, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []int{5, 1, 1, 1, 1, 1}, degrees(t, g))
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []int{3, 3, 3, 3, 4}, degrees(t, g))
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(0, 3))
				assert.True(t, g.HasEdge(1, 2))
				assert.False(t, g.HasEdge(2, 3))
			},
		},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.False(t, g.HasEdge(0, 1))
				assert.False(t, g.HasEdge(2, 3))
				assert.True(t, g.HasEdge(1, 4))
			},
		},
		{
			name: "RandomSparse(6,1)", ctor: builder.RandomSparse(6, 1), wantV: 6, wantE: 15,
		},
		{
			name: "RandomSparse(6,0)", ctor: builder.RandomSparse(6, 0), wantV: 6, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Grid(0,2)", builder.Grid(0, 2), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,1)", builder.CompleteBipartite(0, 1), builder.ErrTooFewVertices},
		{"RandomSparse(0,0.5)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(3,1.5)", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(3,0.5) no rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"RandomRegular(5,3) odd", builder.RandomRegular(5, 3), builder.ErrTooFewVertices},
		{"RandomRegular(4,4)", builder.RandomRegular(4, 4), builder.ErrTooFewVertices},
		{"RandomRegular(4,2) no rng", builder.RandomRegular(4, 2), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		_, err := builder.BuildGraph(nil, nil, tc.ctor)
		require.ErrorIs(t, err, tc.want, tc.name)
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	a, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(9)}, builder.RandomSparse(40, 0.2))
	require.NoError(t, err)
	b, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(9)}, builder.RandomSparse(40, 0.2))
	require.NoError(t, err)

	require.Equal(t, a.EdgeCount(), b.EdgeCount())
	for v := 0; v < 40; v++ {
		na, _ := a.NeighborIDs(v)
		nb, _ := b.NeighborIDs(v)
		require.Equal(t, na, nb, "vertex %d", v)
	}
}

func TestRandomRegular_Degrees(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(5)))},
		builder.RandomRegular(10, 3))
	require.NoError(t, err)
	assert.Equal(t, 15, g.EdgeCount())
	for _, d := range degrees(t, g) {
		assert.Equal(t, 3, d)
	}
}

func TestBuildGraph_DisjointBlocks(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(3), builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge(3, 4))
	assert.False(t, g.HasEdge(2, 3))
}

func TestAttributes(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithCyclicLabels(2)}, builder.Path(3), builder.Path(3))
	require.NoError(t, err)
	want := []int64{0, 1, 0, 0, 1, 0}
	for v, w := range want {
		got, err := g.Attribute(v)
		require.NoError(t, err)
		assert.Equal(t, w, got, "vertex %d", v)
	}

	_, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithRandomLabels(3)}, builder.Path(3))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	g, err = builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithRandomLabels(3)},
		builder.Complete(20))
	require.NoError(t, err)
	for v := 0; v < 20; v++ {
		a, _ := g.Attribute(v)
		assert.GreaterOrEqual(t, a, int64(0))
		assert.Less(t, a, int64(3))
	}

	g, err = builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithAttributeFn(func(i int, _ *rand.Rand) int64 { return int64(10 * i) })},
		builder.Wheel(4))
	require.NoError(t, err)
	hub, _ := g.Attribute(3)
	assert.Equal(t, int64(30), hub)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithAttributeFn(nil) })
	assert.Panics(t, func() { builder.WithCyclicLabels(0) })
	assert.Panics(t, func() { builder.WithRandomLabels(0) })
}

func TestFromSpec(t *testing.T) {
	for _, name := range builder.Topologies() {
		ctor, err := builder.FromSpec(builder.Spec{Topology: name, N: 4, M: 3, D: 2, P: 0.5})
		require.NoError(t, err, name)
		_, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(2)}, ctor)
		require.NoError(t, err, name)
	}

	_, err := builder.FromSpec(builder.Spec{Topology: "hexagram"})
	require.ErrorIs(t, err, builder.ErrUnknownTopology)

	ctor, err := builder.FromSpec(builder.Spec{Topology: " Cycle ", N: 6})
	require.NoError(t, err)
	snap, err := builder.BuildSnapshot(nil, []core.SnapshotOption{core.WithRepresentation(core.Sparse)}, ctor)
	require.NoError(t, err)
	assert.Equal(t, 6, snap.EdgeCount())
	assert.Equal(t, core.Sparse, snap.Representation())
}
