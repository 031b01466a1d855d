package match

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/orazve/subiso/order"
)

// chunksPerWorker controls the default chunk size: roots are split into about
// this many claims per worker so late workers can still steal work.
const chunksPerWorker = 8

// WorkerStats summarizes one worker's share of a Bundle run.
type WorkerStats struct {
	Worker    int
	Roots     int
	Feasible  int
	Solutions int
	// Err is set when the worker's engine could not be constructed.
	Err error
}

// Result is the outcome of Bundle.Run.
type Result struct {
	// Solutions holds the merged full assignments indexed by order position.
	Solutions *Solutions
	// Roots is the number of target vertices that passed the root filter.
	Roots int
	// Feasible sums the feasible placements reported by every engine.
	Feasible int
	// Capped is set when the solution cap was reached.
	Capped  bool
	Workers []WorkerStats
	Elapsed time.Duration
}

// Bundle runs engines for independent roots in parallel and merges their
// solutions.
type Bundle struct {
	target  Graph
	pattern Graph
	order   *order.Order
	opts    Options
}

// NewBundle resolves options and rejects nil inputs. Order validation is left
// to the engines.
func NewBundle(target, pattern Graph, o *order.Order, opts ...Option) (*Bundle, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if isNil(target) || isNil(pattern) {
		return nil, fmt.Errorf("NewBundle: %w", ErrNilGraph)
	}
	return &Bundle{target: target, pattern: pattern, order: o, opts: cfg}, nil
}

// Options returns the resolved options.
func (b *Bundle) Options() Options { return b.opts }

// Run explores every root concurrently and returns the merged solutions.
//
// Workers that fail to construct an engine are reported through the joined
// error while the others keep searching; Result is always non-nil unless the
// pattern is empty. Cancellation of ctx is observed between roots.
func (b *Bundle) Run(ctx context.Context) (*Result, error) {
	m := b.pattern.VertexCount()
	if m == 0 {
		return nil, fmt.Errorf("Bundle.Run: %w", ErrEmptyPattern)
	}
	start := time.Now()
	log := b.opts.Logger

	roots, err := b.roots()
	if err != nil {
		return &Result{Solutions: NewSolutions(m)}, err
	}

	workers := b.opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = max(1, min(workers, len(roots)))

	chunk := b.opts.ChunkSize
	if chunk == 0 {
		chunk = max(1, len(roots)/(workers*chunksPerWorker))
	}

	limit := b.opts.MaxSolutions
	res := &Result{
		Solutions: NewSolutions(m),
		Roots:     len(roots),
		Workers:   make([]WorkerStats, workers),
	}
	log.Debug("bundle run",
		"roots", len(roots), "workers", workers, "chunk", chunk,
		"kind", b.opts.Kind.String(), "semantic", b.opts.Semantic, "max_solutions", limit)

	var (
		mu     sync.Mutex
		cursor atomic.Int64
		full   atomic.Bool
		wg     sync.WaitGroup
	)

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			st := &res.Workers[w]
			st.Worker = w

			eng, err := NewEngine(b.target, b.pattern, b.order, b.opts.Config)
			if err != nil {
				st.Err = fmt.Errorf("worker %d: %w", w, err)
				log.Warn("engine construction failed", "worker", w, "err", err)
				return
			}

			for !full.Load() && ctx.Err() == nil {
				lo := int(cursor.Add(int64(chunk))) - chunk
				if lo >= len(roots) {
					return
				}
				for _, r := range roots[lo:min(lo+chunk, len(roots))] {
					if full.Load() || ctx.Err() != nil {
						return
					}
					if limit > 0 {
						mu.Lock()
						remaining := limit - res.Solutions.Len()
						mu.Unlock()
						if remaining <= 0 {
							return
						}
						eng.SetLimit(remaining)
					}

					st.Roots++
					st.Feasible += eng.Run(int(r))

					local := eng.Solutions()
					if local.Len() == 0 {
						continue
					}
					mu.Lock()
					st.Solutions += res.Solutions.Merge(local, limit)
					if limit > 0 && res.Solutions.Len() >= limit {
						full.Store(true)
					}
					mu.Unlock()
					local.Reset()
				}
			}
		}(w)
	}
	wg.Wait()

	var errs []error
	for _, st := range res.Workers {
		res.Feasible += st.Feasible
		if st.Err != nil {
			errs = append(errs, st.Err)
		}
	}
	res.Capped = full.Load()
	res.Elapsed = time.Since(start)
	if ctxErr := ctx.Err(); ctxErr != nil {
		errs = append(errs, fmt.Errorf("Bundle.Run: %w", ctxErr))
	}

	log.Debug("bundle done",
		"solutions", res.Solutions.Len(), "feasible", res.Feasible,
		"capped", res.Capped, "elapsed", res.Elapsed)
	return res, errors.Join(errs...)
}

// roots returns the target vertices that may take order position 0.
func (b *Bundle) roots() ([]int32, error) {
	if b.order == nil || len(b.order.Sequence) == 0 {
		return nil, fmt.Errorf("Bundle.Run: nil or empty order: %w", ErrOrderMismatch)
	}
	p0 := b.order.Sequence[0]
	if p0 < 0 || p0 >= b.pattern.VertexCount() {
		return nil, fmt.Errorf("Bundle.Run: order starts at %d: %w", p0, ErrOrderMismatch)
	}
	n := b.target.VertexCount()
	roots := make([]int32, 0, n)
	for v := 0; v < n; v++ {
		if Matches(b.pattern, b.target, p0, v, b.opts.Semantic) {
			roots = append(roots, int32(v))
		}
	}
	return roots, nil
}
