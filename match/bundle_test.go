package match_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/orazve/subiso/builder"
	"github.com/orazve/subiso/core"
	"github.com/orazve/subiso/match"
)

// BundleSuite runs a fixed target/pattern pair through the worker pool.
type BundleSuite struct {
	suite.Suite
	target  *core.Snapshot
	pattern *core.Snapshot
}

func (s *BundleSuite) SetupSuite() {
	s.target = snap(s.T(), core.Dense, []builder.BuilderOption{builder.WithSeed(99)}, builder.RandomSparse(40, 0.25))
	s.pattern = snap(s.T(), core.Sparse, nil, builder.Cycle(4))
}

func (s *BundleSuite) run(opts ...match.Option) (*match.Result, embeddingSet) {
	o := plan(s.T(), s.pattern)
	b, err := match.NewBundle(s.target, s.pattern, o, opts...)
	s.Require().NoError(err)
	res, err := b.Run(context.Background())
	s.Require().NoError(err)
	s.Require().NotNil(res)
	return res, collect(s.T(), o, res.Solutions)
}

func (s *BundleSuite) TestWorkerCountDoesNotChangeResult() {
	for _, kind := range []match.Kind{match.Induced, match.NonInduced} {
		_, single := s.run(match.WithKind(kind), match.WithWorkers(1))
		for _, w := range []int{2, 3, 8} {
			res, multi := s.run(match.WithKind(kind), match.WithWorkers(w), match.WithChunkSize(3))
			s.Equal(single, multi, "kind=%v workers=%d", kind, w)
			s.Len(res.Workers, w)
			s.False(res.Capped)
		}
	}
}

func (s *BundleSuite) TestWorkerStatsAddUp() {
	res, _ := s.run(match.WithKind(match.NonInduced), match.WithWorkers(4), match.WithChunkSize(1))

	var roots, sols, feasible int
	for i, st := range res.Workers {
		s.Equal(i, st.Worker)
		s.NoError(st.Err)
		roots += st.Roots
		sols += st.Solutions
		feasible += st.Feasible
	}
	s.Equal(res.Roots, roots)
	s.Equal(res.Solutions.Len(), sols)
	s.Equal(res.Feasible, feasible)
	s.GreaterOrEqual(res.Feasible, res.Solutions.Len())
}

func (s *BundleSuite) TestCapIsExact() {
	_, all := s.run(match.WithKind(match.NonInduced), match.WithWorkers(1))
	s.Require().Greater(len(all), 10)

	for _, w := range []int{1, 4} {
		res, got := s.run(match.WithKind(match.NonInduced), match.WithWorkers(w), match.WithMaxSolutions(10))
		s.Equal(10, res.Solutions.Len())
		s.True(res.Capped)
		for key := range got {
			s.Contains(all, key)
		}
	}
}

func (s *BundleSuite) TestCapLargerThanTotal() {
	_, all := s.run(match.WithKind(match.NonInduced), match.WithWorkers(1))
	res, got := s.run(match.WithKind(match.NonInduced), match.WithWorkers(4), match.WithMaxSolutions(len(all)+5))
	s.Equal(all, got)
	s.False(res.Capped)
}

func TestBundleSuite(t *testing.T) {
	suite.Run(t, new(BundleSuite))
}

func TestBundle_AgreesWithBruteForce(t *testing.T) {
	target := snap(t, core.Sparse, []builder.BuilderOption{builder.WithSeed(5)}, builder.RandomSparse(12, 0.4))
	pattern := snap(t, core.Sparse, nil, builder.Star(4))
	o := plan(t, pattern)

	b, err := match.NewBundle(target, pattern, o, match.WithWorkers(3), match.WithKind(match.Induced))
	require.NoError(t, err)
	res, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, bruteForce(target, pattern, match.Induced, false), collect(t, o, res.Solutions))
}

func TestBundle_Semantic(t *testing.T) {
	target := snap(t, core.Dense, []builder.BuilderOption{builder.WithCyclicLabels(2)}, builder.Cycle(6))
	pattern := snap(t, core.Sparse, []builder.BuilderOption{builder.WithCyclicLabels(2)}, builder.Path(3))
	o := plan(t, pattern)

	b, err := match.NewBundle(target, pattern, o, match.WithSemantic(true), match.WithWorkers(2))
	require.NoError(t, err)
	res, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Roots, "only label-1 vertices can host the center")
	assert.Equal(t, 6, res.Solutions.Len())
}

func TestBundle_NoRoots(t *testing.T) {
	target := snap(t, core.Sparse, nil, builder.Path(5))
	pattern := snap(t, core.Sparse, nil, builder.Star(5))

	b, err := match.NewBundle(target, pattern, plan(t, pattern))
	require.NoError(t, err)
	res, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.Roots)
	assert.Zero(t, res.Solutions.Len())
	assert.Len(t, res.Workers, 1)
}

func TestBundle_EmptyPattern(t *testing.T) {
	target := snap(t, core.Sparse, nil, builder.Path(3))
	empty := snap(t, core.Sparse, nil)

	b, err := match.NewBundle(target, empty, nil)
	require.NoError(t, err)
	res, err := b.Run(context.Background())
	require.ErrorIs(t, err, match.ErrEmptyPattern)
	assert.Nil(t, res)
}

func TestBundle_BadOrder(t *testing.T) {
	target := snap(t, core.Sparse, nil, builder.Cycle(6))
	pattern := snap(t, core.Sparse, nil, builder.Path(4))
	smaller := snap(t, core.Sparse, nil, builder.Path(3))

	b, err := match.NewBundle(target, pattern, plan(t, smaller), match.WithWorkers(2))
	require.NoError(t, err)
	res, err := b.Run(context.Background())
	require.ErrorIs(t, err, match.ErrOrderMismatch)
	require.NotNil(t, res)
	assert.Zero(t, res.Solutions.Len())
	for _, st := range res.Workers {
		assert.ErrorIs(t, st.Err, match.ErrOrderMismatch)
	}

	b, err = match.NewBundle(target, pattern, nil)
	require.NoError(t, err)
	res, err = b.Run(context.Background())
	require.ErrorIs(t, err, match.ErrOrderMismatch)
	require.NotNil(t, res)
	assert.Zero(t, res.Solutions.Len())
}

func TestBundle_Cancelled(t *testing.T) {
	target := snap(t, core.Dense, nil, builder.Complete(8))
	pattern := snap(t, core.Sparse, nil, builder.Path(3))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b, err := match.NewBundle(target, pattern, plan(t, pattern), match.WithWorkers(2), match.WithKind(match.NonInduced))
	require.NoError(t, err)
	res, err := b.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Zero(t, res.Solutions.Len())
}

func TestNewBundle_Errors(t *testing.T) {
	target := snap(t, core.Sparse, nil, builder.Path(3))
	o := plan(t, target)

	_, err := match.NewBundle(nil, target, o)
	assert.ErrorIs(t, err, match.ErrNilGraph)
	_, err = match.NewBundle(target, (*core.Snapshot)(nil), o)
	assert.ErrorIs(t, err, match.ErrNilGraph)

	bad := []match.Option{
		match.WithWorkers(-1),
		match.WithChunkSize(-2),
		match.WithMaxSolutions(-3),
		match.WithKind(match.Kind(7)),
	}
	for _, opt := range bad {
		_, err := match.NewBundle(target, target, o, opt)
		assert.ErrorIs(t, err, match.ErrOptionViolation)
	}
}

func TestBundle_Options(t *testing.T) {
	target := snap(t, core.Sparse, nil, builder.Path(3))
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	b, err := match.NewBundle(target, target, plan(t, target),
		match.WithKind(match.NonInduced), match.WithSemantic(true),
		match.WithMaxSolutions(4), match.WithWorkers(2), match.WithChunkSize(5),
		match.WithLogger(logger))
	require.NoError(t, err)

	got := b.Options()
	assert.Equal(t, match.NonInduced, got.Kind)
	assert.True(t, got.Semantic)
	assert.Equal(t, 4, got.MaxSolutions)
	assert.Equal(t, 2, got.Workers)
	assert.Equal(t, 5, got.ChunkSize)

	_, err = b.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "bundle done")

	def := match.DefaultOptions()
	assert.Equal(t, match.Induced, def.Kind)
	assert.NotNil(t, def.Logger)
}
