package subiso

import (
	"log/slog"
	"time"

	"github.com/orazve/subiso/match"
	"github.com/orazve/subiso/order"
)

// DefaultPlanCacheSize is the number of pattern plans a Matcher keeps.
const DefaultPlanCacheSize = 64

// Descriptor selects what counts as a match and how the search runs.
type Descriptor struct {
	// Kind is match.Induced or match.NonInduced.
	Kind match.Kind
	// Semantic requires equal vertex attributes.
	Semantic bool
	// MaxMatchCount caps the number of embeddings returned; 0 means all.
	MaxMatchCount int
	// Workers is the number of parallel workers; 0 means GOMAXPROCS.
	Workers int
}

// DefaultDescriptor returns induced, non-semantic, unlimited matching on
// GOMAXPROCS workers.
func DefaultDescriptor() Descriptor {
	return Descriptor{Kind: match.Induced}
}

// options maps d onto bundle options.
func (d Descriptor) options(log *slog.Logger) []match.Option {
	return []match.Option{
		match.WithKind(d.Kind),
		match.WithSemantic(d.Semantic),
		match.WithMaxSolutions(d.MaxMatchCount),
		match.WithWorkers(d.Workers),
		match.WithLogger(log),
	}
}

// Stats reports how a Match call went.
type Stats struct {
	Roots    int
	Feasible int
	Capped   bool
	// PlanCached is set when the pattern's order came from the cache.
	PlanCached bool
	Workers    []match.WorkerStats
	Elapsed    time.Duration
}

// Result holds the embeddings found by Match.
type Result struct {
	MatchCount int
	// VertexMatch[i][p] is the target vertex hosting pattern vertex p in the
	// i-th embedding. Rows are sorted lexicographically.
	VertexMatch [][]int
	// Order is the matching order the search used.
	Order *order.Order
	Stats Stats
}
