package subiso

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/orazve/subiso/core"
	"github.com/orazve/subiso/match"
	"github.com/orazve/subiso/order"
)

// ErrInvalidCacheSize is returned by NewMatcher for a non-positive plan cache.
var ErrInvalidCacheSize = errors.New("subiso: plan cache size must be positive")

// MatcherOption configures a Matcher.
type MatcherOption func(*matcherConfig)

type matcherConfig struct {
	log       *slog.Logger
	cacheSize int
}

// WithLogger routes Matcher and Bundle records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) MatcherOption {
	return func(c *matcherConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// WithPlanCacheSize sets how many pattern plans are kept.
func WithPlanCacheSize(n int) MatcherOption {
	return func(c *matcherConfig) { c.cacheSize = n }
}

// Matcher runs pattern searches and caches the matching order of each
// pattern snapshot it has seen. Safe for concurrent use.
type Matcher struct {
	log   *slog.Logger
	plans *lru.Cache[*core.Snapshot, *order.Order]
}

// NewMatcher returns a Matcher with a discarding logger and a plan cache of
// DefaultPlanCacheSize entries unless overridden.
func NewMatcher(opts ...MatcherOption) (*Matcher, error) {
	cfg := matcherConfig{
		log:       slog.New(slog.DiscardHandler),
		cacheSize: DefaultPlanCacheSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cacheSize <= 0 {
		return nil, fmt.Errorf("NewMatcher: size=%d: %w", cfg.cacheSize, ErrInvalidCacheSize)
	}
	plans, err := lru.New[*core.Snapshot, *order.Order](cfg.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("NewMatcher: %w", err)
	}
	return &Matcher{log: cfg.log, plans: plans}, nil
}

// Match finds the embeddings of pattern in target described by desc.
//
// Errors:
//   - match.ErrNilGraph: target or pattern is nil.
//   - match.ErrEmptyPattern: pattern has no vertices.
//   - match.ErrOptionViolation: desc carries an unknown kind or a negative value.
//   - context errors when ctx ends before the search does; the partial
//     Result is returned alongside.
func (m *Matcher) Match(ctx context.Context, target, pattern *core.Snapshot, desc Descriptor) (*Result, error) {
	if target == nil || pattern == nil {
		return nil, fmt.Errorf("Match: %w", match.ErrNilGraph)
	}
	if pattern.VertexCount() == 0 {
		return nil, fmt.Errorf("Match: %w", match.ErrEmptyPattern)
	}

	o, cached, err := m.plan(pattern)
	if err != nil {
		return nil, fmt.Errorf("Match: %w", err)
	}

	b, err := match.NewBundle(target, pattern, o, desc.options(m.log)...)
	if err != nil {
		return nil, fmt.Errorf("Match: %w", err)
	}
	run, runErr := b.Run(ctx)
	if run == nil {
		return nil, fmt.Errorf("Match: %w", runErr)
	}

	res := &Result{
		MatchCount:  run.Solutions.Len(),
		VertexMatch: byPatternVertex(o, run.Solutions),
		Order:       o,
		Stats: Stats{
			Roots:      run.Roots,
			Feasible:   run.Feasible,
			Capped:     run.Capped,
			PlanCached: cached,
			Workers:    run.Workers,
			Elapsed:    run.Elapsed,
		},
	}
	m.log.Info("match finished",
		"target_vertices", target.VertexCount(), "pattern_vertices", pattern.VertexCount(),
		"kind", desc.Kind.String(), "matches", res.MatchCount, "capped", run.Capped,
		"plan_cached", cached, "elapsed", run.Elapsed)
	if runErr != nil {
		return res, fmt.Errorf("Match: %w", runErr)
	}
	return res, nil
}

// plan returns the cached order for pattern, planning it on a miss.
func (m *Matcher) plan(pattern *core.Snapshot) (*order.Order, bool, error) {
	if o, ok := m.plans.Get(pattern); ok {
		return o, true, nil
	}
	o, err := order.Plan(pattern)
	if err != nil {
		return nil, false, err
	}
	m.plans.Add(pattern, o)
	m.log.Debug("pattern planned", "sequence", o.Sequence)
	return o, false, nil
}

// PlanCacheLen returns the number of cached plans.
func (m *Matcher) PlanCacheLen() int { return m.plans.Len() }

// Match is a one-shot Matcher.Match with default Matcher settings.
func Match(ctx context.Context, target, pattern *core.Snapshot, desc Descriptor) (*Result, error) {
	m, err := NewMatcher(WithPlanCacheSize(1))
	if err != nil {
		return nil, err
	}
	return m.Match(ctx, target, pattern, desc)
}

// byPatternVertex re-indexes order-position rows by pattern vertex id and
// sorts them.
func byPatternVertex(o *order.Order, sols *match.Solutions) [][]int {
	m := sols.Stride()
	out := make([][]int, sols.Len())
	flat := make([]int, sols.Len()*m)
	sols.Each(func(i int, row []int32) bool {
		dst := flat[i*m : (i+1)*m : (i+1)*m]
		for pos, v := range row {
			dst[o.Sequence[pos]] = int(v)
		}
		out[i] = dst
		return true
	})
	slices.SortFunc(out, func(a, b []int) int { return slices.Compare(a, b) })
	return out
}
