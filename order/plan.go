package order

import (
	"fmt"

	"github.com/emirpasic/gods/trees/binaryheap"
)

// candidate is one heap entry. Entries go stale when conn[v] grows; stale
// entries are skipped on pop.
type candidate struct {
	v, conn, degree int
}

// byPriority orders candidates best-first: most connections into the
// visited set, then highest degree, then lowest id.
func byPriority(a, b interface{}) int {
	x, y := a.(candidate), b.(candidate)
	switch {
	case x.conn != y.conn:
		return y.conn - x.conn
	case x.degree != y.degree:
		return y.degree - x.degree
	default:
		return x.v - y.v
	}
}

// Plan computes a matching order for p.
func Plan(p Pattern) (*Order, error) {
	if p == nil || p.VertexCount() == 0 {
		return nil, ErrEmptyPattern
	}
	m := p.VertexCount()

	heap := binaryheap.NewWith(byPriority)
	for v := 0; v < m; v++ {
		heap.Push(candidate{v: v, degree: p.Degree(v)})
	}

	conn := make([]int, m)
	visited := make([]bool, m)
	seq := make([]int, 0, m)

	for len(seq) < m {
		top, ok := heap.Pop()
		if !ok {
			// Unreachable: every vertex has a live conn-0 entry until visited.
			return nil, fmt.Errorf("Plan: heap drained after %d of %d vertices: %w", len(seq), m, ErrBadSequence)
		}
		c := top.(candidate)
		if visited[c.v] || c.conn != conn[c.v] {
			continue
		}
		visited[c.v] = true
		seq = append(seq, c.v)

		for _, u := range p.Neighbors(c.v) {
			if visited[u] {
				continue
			}
			conn[u]++
			heap.Push(candidate{v: int(u), conn: conn[u], degree: p.Degree(int(u))})
		}
	}

	return FromSequence(p, seq)
}

// FromSequence builds an Order that visits pattern vertices in seq.
func FromSequence(p Pattern, seq []int) (*Order, error) {
	if p == nil || p.VertexCount() == 0 {
		return nil, ErrEmptyPattern
	}
	m := p.VertexCount()
	if len(seq) != m {
		return nil, fmt.Errorf("FromSequence: len(seq)=%d, m=%d: %w", len(seq), m, ErrBadSequence)
	}

	o := &Order{
		Sequence:    append([]int(nil), seq...),
		Position:    make([]int, m),
		Conditions:  make([]Condition, m),
		Predecessor: make([]int, m),
		Direction:   make([]Direction, m),
	}
	for i := range o.Position {
		o.Position[i] = -1
	}
	for i, v := range seq {
		if v < 0 || v >= m || o.Position[v] != -1 {
			return nil, fmt.Errorf("FromSequence: seq[%d]=%d: %w", i, v, ErrBadSequence)
		}
		o.Position[v] = i
	}

	// One backing array for all conditions: position i needs exactly i slots.
	flat := make([]int, m*(m-1)/2)
	for i, v := range seq {
		positions := flat[:i:i]
		flat = flat[i:]

		k := 0
		for j := 0; j < i; j++ {
			if !p.HasEdge(v, seq[j]) {
				positions[k] = j
				k++
			}
		}
		divider := k

		o.Predecessor[v] = -1
		for j := 0; j < i; j++ {
			if p.HasEdge(v, seq[j]) {
				positions[k] = j
				k++
				if o.Predecessor[v] == -1 {
					o.Predecessor[v] = seq[j]
					o.Direction[v] = DirectionForward
				}
			}
		}
		o.Conditions[i] = Condition{Positions: positions, Divider: divider}
	}
	return o, nil
}
