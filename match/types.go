package match

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/orazve/subiso/bitset"
	"github.com/orazve/subiso/core"
)

// Sentinel errors for engine and bundle construction.
var (
	// ErrNilGraph is returned when the target or pattern graph is nil.
	ErrNilGraph = errors.New("match: graph is nil")

	// ErrEmptyPattern is returned when the pattern has no vertices.
	ErrEmptyPattern = errors.New("match: pattern is empty")

	// ErrOrderMismatch is returned when the order is nil or does not fit the pattern.
	ErrOrderMismatch = errors.New("match: order does not fit pattern")

	// ErrRepresentation is returned when the target does not supply the
	// neighbor sets its Representation promises.
	ErrRepresentation = errors.New("match: target representation unsupported")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("match: invalid option supplied")
)

// Graph is the read-only graph capability consumed by the engine.
// *core.Snapshot satisfies it.
type Graph interface {
	VertexCount() int
	Degree(v int) int
	MaxDegree() int
	Attribute(v int) int64
	Representation() core.Representation
	// NeighborRow returns N(v) as a bitset; used when Representation is Dense.
	NeighborRow(v int) bitset.Bitset
	// Neighbors returns N(v) as a sorted id list; used when Representation is Sparse.
	Neighbors(v int) []int32
}

// nilable is implemented by pointer-backed graphs that can detect a typed nil.
type nilable interface{ IsNil() bool }

func isNil(g Graph) bool {
	if g == nil {
		return true
	}
	n, ok := g.(nilable)
	return ok && n.IsNil()
}

// Kind selects induced or non-induced matching.
type Kind uint8

const (
	// Induced requires pattern non-edges to map to target non-edges.
	Induced Kind = iota
	// NonInduced only requires pattern edges to map to target edges.
	NonInduced
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Induced:
		return "induced"
	case NonInduced:
		return "non-induced"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Config holds the per-engine matching parameters.
type Config struct {
	Kind Kind
	// Semantic enables attribute equality in the vertex predicate.
	Semantic bool
	// MaxSolutions caps the engine's collector; 0 means unlimited.
	MaxSolutions int
}

// Option configures a Bundle via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation by NewBundle.
type Option func(*Options)

// Options holds the parameters of a Bundle run.
type Options struct {
	Config

	// Workers is the number of long-lived workers; 0 means GOMAXPROCS.
	Workers int
	// ChunkSize is the number of roots claimed per cursor step; 0 picks one
	// from the root count and the worker count.
	ChunkSize int
	// Logger receives run-level records; never nil after DefaultOptions.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns induced, non-semantic, unlimited matching on
// GOMAXPROCS workers with a discarding logger.
func DefaultOptions() Options {
	return Options{
		Config: Config{Kind: Induced},
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithKind selects induced or non-induced matching.
func WithKind(k Kind) Option {
	return func(o *Options) {
		if k > NonInduced {
			o.err = fmt.Errorf("WithKind(%v): %w", k, ErrOptionViolation)
			return
		}
		o.Kind = k
	}
}

// WithSemantic toggles attribute equality in the vertex predicate.
func WithSemantic(on bool) Option {
	return func(o *Options) { o.Semantic = on }
}

// WithMaxSolutions caps the number of collected solutions; 0 means unlimited.
func WithMaxSolutions(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("WithMaxSolutions(%d): %w", k, ErrOptionViolation)
			return
		}
		o.MaxSolutions = k
	}
}

// WithWorkers sets the worker count; 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("WithWorkers(%d): %w", n, ErrOptionViolation)
			return
		}
		o.Workers = n
	}
}

// WithChunkSize sets how many roots a worker claims at a time.
func WithChunkSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("WithChunkSize(%d): %w", n, ErrOptionViolation)
			return
		}
		o.ChunkSize = n
	}
}

// WithLogger routes run-level records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
