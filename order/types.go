package order

import (
	"errors"
	"fmt"
)

// Sentinel errors for plan construction and validation.
var (
	// ErrEmptyPattern is returned when the pattern has no vertices.
	ErrEmptyPattern = errors.New("order: pattern is empty")

	// ErrBadSequence is returned when a sequence is not a permutation of 0..m-1.
	ErrBadSequence = errors.New("order: sequence is not a permutation")

	// ErrMalformed is returned by Validate when conditions are inconsistent.
	ErrMalformed = errors.New("order: malformed conditions")
)

// Pattern is the read-only view of a pattern graph the planner needs.
// *core.Snapshot satisfies it.
type Pattern interface {
	VertexCount() int
	Degree(v int) int
	Neighbors(v int) []int32
	HasEdge(u, v int) bool
}

// Direction tags how a pattern vertex is reached in the spanning forest.
type Direction uint8

const (
	// DirectionNone marks the first vertex of a connected component.
	DirectionNone Direction = iota
	// DirectionForward marks a vertex reached from its Predecessor.
	DirectionForward
)

// Condition constrains the candidates of one order position.
type Condition struct {
	// Positions lists earlier order positions: non-neighbors first, then
	// neighbors, each group ascending.
	Positions []int
	// Divider splits Positions into non-neighbors [:Divider] and
	// neighbors [Divider:].
	Divider int
}

// NonNeighbors returns the earlier positions not adjacent to this one.
func (c Condition) NonNeighbors() []int { return c.Positions[:c.Divider] }

// Neighbors returns the earlier positions adjacent to this one.
func (c Condition) Neighbors() []int { return c.Positions[c.Divider:] }

// Order is the immutable matching plan for one pattern.
type Order struct {
	// Sequence[i] is the pattern vertex visited at position i.
	Sequence []int
	// Position is the inverse of Sequence.
	Position []int
	// Conditions[i] constrains position i; Conditions[0] is empty.
	Conditions []Condition
	// Predecessor[v] is the pattern vertex that reaches v, or -1.
	Predecessor []int
	// Direction[v] tags the edge Predecessor[v] → v.
	Direction []Direction
}

// Len returns the number of order positions.
func (o *Order) Len() int { return len(o.Sequence) }

// Validate checks that o is a well-formed plan for a pattern of m vertices.
func (o *Order) Validate(m int) error {
	if o == nil || m == 0 {
		return ErrEmptyPattern
	}
	if len(o.Sequence) != m || len(o.Position) != m {
		return fmt.Errorf("Validate: len(Sequence)=%d, len(Position)=%d, m=%d: %w",
			len(o.Sequence), len(o.Position), m, ErrBadSequence)
	}
	for i, v := range o.Sequence {
		if v < 0 || v >= m || o.Position[v] != i {
			return fmt.Errorf("Validate: position %d: %w", i, ErrBadSequence)
		}
	}
	if len(o.Conditions) != m {
		return fmt.Errorf("Validate: %d conditions for %d positions: %w", len(o.Conditions), m, ErrMalformed)
	}
	for i, c := range o.Conditions {
		if len(c.Positions) != i || c.Divider < 0 || c.Divider > i {
			return fmt.Errorf("Validate: condition %d: len=%d divider=%d: %w",
				i, len(c.Positions), c.Divider, ErrMalformed)
		}
		seen := make([]bool, i)
		for _, p := range c.Positions {
			if p < 0 || p >= i || seen[p] {
				return fmt.Errorf("Validate: condition %d references %d: %w", i, p, ErrMalformed)
			}
			seen[p] = true
		}
	}
	return nil
}
