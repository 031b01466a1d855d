package match

import (
	"fmt"

	"github.com/orazve/subiso/bitset"
	"github.com/orazve/subiso/core"
	"github.com/orazve/subiso/order"
)

// Engine runs the backtracking search for one root at a time. It owns its
// candidate bitset, scratch buffer, stack and collector; the graphs and the
// order are shared read-only. An Engine is not safe for concurrent use.
type Engine struct {
	target  Graph
	pattern Graph
	order   *order.Order
	cfg     Config
	dense   bool
	m       int

	// Pattern degree and attribute per order position.
	posDegree []int
	posAttr   []int64

	cand    bitset.Bitset
	scratch []int32
	stack   *Stack
	sols    *Solutions

	limit   int
	stopped bool
}

// NewEngine validates its inputs once and allocates the per-engine buffers.
//
// Errors:
//   - ErrNilGraph: target or pattern is nil.
//   - ErrEmptyPattern: the pattern has no vertices.
//   - ErrOrderMismatch: o is nil or invalid for the pattern.
//   - ErrRepresentation: the target's representation is unusable.
//   - ErrOptionViolation: cfg carries an unknown Kind or a negative cap.
func NewEngine(target, pattern Graph, o *order.Order, cfg Config) (*Engine, error) {
	if isNil(target) || isNil(pattern) {
		return nil, fmt.Errorf("NewEngine: %w", ErrNilGraph)
	}
	m := pattern.VertexCount()
	if m == 0 {
		return nil, fmt.Errorf("NewEngine: %w", ErrEmptyPattern)
	}
	if o == nil {
		return nil, fmt.Errorf("NewEngine: nil order: %w", ErrOrderMismatch)
	}
	if err := o.Validate(m); err != nil {
		return nil, fmt.Errorf("NewEngine: %w: %w", ErrOrderMismatch, err)
	}
	if cfg.Kind > NonInduced || cfg.MaxSolutions < 0 {
		return nil, fmt.Errorf("NewEngine: kind=%v max=%d: %w", cfg.Kind, cfg.MaxSolutions, ErrOptionViolation)
	}

	n := target.VertexCount()
	var dense bool
	switch target.Representation() {
	case core.Dense:
		dense = true
		if n > 0 && target.NeighborRow(0).Len() != n {
			return nil, fmt.Errorf("NewEngine: dense target without %d-bit rows: %w", n, ErrRepresentation)
		}
	case core.Sparse:
	default:
		return nil, fmt.Errorf("NewEngine: %v: %w", target.Representation(), ErrRepresentation)
	}

	e := &Engine{
		target:    target,
		pattern:   pattern,
		order:     o,
		cfg:       cfg,
		dense:     dense,
		m:         m,
		posDegree: make([]int, m),
		posAttr:   make([]int64, m),
		cand:      bitset.New(n),
		scratch:   make([]int32, target.MaxDegree()),
		stack:     NewStack(m),
		sols:      NewSolutions(m),
		limit:     cfg.MaxSolutions,
	}
	for i, v := range o.Sequence {
		e.posDegree[i] = pattern.Degree(v)
		e.posAttr[i] = pattern.Attribute(v)
	}
	return e, nil
}

// Solutions returns the engine's collector. Rows are indexed by order position.
func (e *Engine) Solutions() *Solutions { return e.sols }

// SetLimit changes the collector cap; 0 means unlimited.
func (e *Engine) SetLimit(k int) { e.limit = max(k, 0) }

// Stopped reports whether the last Run ended early on the cap.
func (e *Engine) Stopped() bool { return e.stopped }

// Run explores every embedding whose position 0 maps to root and returns the
// number of feasible placements found. Full embeddings are appended to
// Solutions(). The search stops as soon as the collector holds the cap.
func (e *Engine) Run(root int) int {
	e.stopped = false
	e.stack.Reset()
	if e.full() {
		e.stopped = true
		return 0
	}
	if !e.feasible(0, root) {
		return 0
	}
	if e.m == 1 {
		e.sols.appendFrom(e.stack, int32(root))
		e.stopped = e.full()
		return 1
	}

	e.stack.PushIntoCurrentLevel(int32(root))
	total := 0
	for e.stack.StatesInStack() > 0 {
		total += e.explore()
		if e.stopped {
			e.stack.Reset()
			break
		}
		e.stack.Update()
	}
	return total
}

func (e *Engine) full() bool { return e.limit > 0 && e.sols.Len() >= e.limit }

// feasible applies the vertex predicate using the cached pattern side.
func (e *Engine) feasible(pos, t int) bool {
	if e.posDegree[pos] > e.target.Degree(t) {
		return false
	}
	return !e.cfg.Semantic || e.posAttr[pos] == e.target.Attribute(t)
}

// explore refines the candidates of the position after the current level
// and either records solutions or pushes them for the next level.
func (e *Engine) explore() int {
	level := e.stack.CurrentLevel()
	pos := level + 1
	c := &e.order.Conditions[pos]
	cand := e.cand

	cand.Clear()
	if e.cfg.Kind == Induced {
		for _, j := range c.Positions[:c.Divider] {
			e.union(e.stack.Top(j))
		}
	}
	cand.Not()
	for k := len(c.Positions) - 1; k >= c.Divider; k-- {
		e.intersect(e.stack.Top(c.Positions[k]))
	}
	for l := 0; l <= level; l++ {
		cand.Unset(int(e.stack.Top(l)))
	}

	last := pos == e.m-1
	found := 0
	cand.Extract(func(v int) bool {
		if !e.feasible(pos, v) {
			return true
		}
		found++
		if !last {
			e.stack.PushIntoNextLevel(int32(v))
			return true
		}
		e.sols.appendFrom(e.stack, int32(v))
		if e.full() {
			e.stopped = true
			return false
		}
		return true
	})
	return found
}

func (e *Engine) union(t int32) {
	if e.dense {
		e.cand.Or(e.target.NeighborRow(int(t)))
		return
	}
	e.cand.OrIndices(e.target.Neighbors(int(t)))
}

func (e *Engine) intersect(t int32) {
	if e.dense {
		e.cand.And(e.target.NeighborRow(int(t)))
		return
	}
	e.scratch = e.cand.AndIndices(e.target.Neighbors(int(t)), e.scratch)
}
