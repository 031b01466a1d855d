package match

import "sort"

// Solutions is an append-only collection of full assignments stored in one
// flat arena. Row i holds the target vertex of every order position.
type Solutions struct {
	stride int
	data   []int32
}

// NewSolutions returns an empty collector for patterns of m vertices.
func NewSolutions(m int) *Solutions { return &Solutions{stride: m} }

// Stride returns the row length (the pattern size).
func (s *Solutions) Stride() int { return s.stride }

// Len returns the number of rows.
func (s *Solutions) Len() int {
	if s.stride == 0 {
		return 0
	}
	return len(s.data) / s.stride
}

// At returns row i as a view into the arena.
func (s *Solutions) At(i int) []int32 {
	lo := i * s.stride
	return s.data[lo : lo+s.stride : lo+s.stride]
}

// Append copies sol in as a new row. sol must have Stride() entries.
func (s *Solutions) Append(sol []int32) {
	s.data = append(s.data, sol[:s.stride]...)
}

// appendFrom records the stack's current path extended by last.
func (s *Solutions) appendFrom(st *Stack, last int32) {
	n := len(s.data)
	s.data = append(s.data, make([]int32, s.stride)...)
	st.FillSolution(s.data[n:], last)
}

// Merge copies rows of o into s, at most limit rows in total when limit > 0,
// and returns the number of rows copied.
func (s *Solutions) Merge(o *Solutions, limit int) int {
	rows := o.Len()
	if limit > 0 {
		rows = min(rows, max(0, limit-s.Len()))
	}
	s.data = append(s.data, o.data[:rows*o.stride]...)
	return rows
}

// Truncate keeps the first k rows.
func (s *Solutions) Truncate(k int) {
	if k < s.Len() {
		s.data = s.data[:k*s.stride]
	}
}

// Reset drops every row, keeping the arena.
func (s *Solutions) Reset() { s.data = s.data[:0] }

// Each calls fn for every row in order until fn returns false.
func (s *Solutions) Each(fn func(i int, row []int32) bool) {
	for i := 0; i < s.Len(); i++ {
		if !fn(i, s.At(i)) {
			return
		}
	}
}

// Sort orders the rows lexicographically in place.
func (s *Solutions) Sort() { sort.Sort(rowSorter{s}) }

type rowSorter struct{ s *Solutions }

func (r rowSorter) Len() int { return r.s.Len() }

func (r rowSorter) Less(i, j int) bool {
	a, b := r.s.At(i), r.s.At(j)
	for k := range a {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}
	return false
}

func (r rowSorter) Swap(i, j int) {
	a, b := r.s.At(i), r.s.At(j)
	for k := range a {
		a[k], b[k] = b[k], a[k]
	}
}
