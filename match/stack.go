package match

// Stack is the partial-assignment state of one search.
//
// Level l owns arena[levelStart[l]:levelStart[l+1]]: the candidates still to
// try at order position l. The last slot of a level is its top, the target
// vertex currently assigned to position l. Candidates for the next position
// are appended past levelStart[level+1] until Update commits them.
//
// The arena grows to its high-water mark once and is reused across roots.
type Stack struct {
	arena      []int32
	levelStart []int
	level      int
}

// NewStack returns an empty stack for patterns of up to levels positions.
func NewStack(levels int) *Stack {
	s := &Stack{levelStart: make([]int, levels+1)}
	s.Reset()
	return s
}

// Reset drops every level.
func (s *Stack) Reset() {
	s.arena = s.arena[:0]
	s.level = -1
	s.levelStart[0] = 0
}

// CurrentLevel returns the deepest committed level, or -1 when empty.
func (s *Stack) CurrentLevel() int { return s.level }

// StatesInStack returns the number of pending states across all levels,
// including uncommitted next-level candidates.
func (s *Stack) StatesInStack() int { return len(s.arena) }

// Top returns the target vertex assigned to level l (0 <= l <= CurrentLevel).
func (s *Stack) Top(l int) int32 { return s.arena[s.levelStart[l+1]-1] }

// PushIntoCurrentLevel adds v as a candidate of the current level, opening
// level 0 on an empty stack. Used to seed roots.
func (s *Stack) PushIntoCurrentLevel(v int32) {
	if s.level < 0 {
		s.level = 0
	}
	s.arena = append(s.arena, v)
	s.levelStart[s.level+1] = len(s.arena)
}

// PushIntoNextLevel adds v as a candidate of level CurrentLevel()+1.
func (s *Stack) PushIntoNextLevel(v int32) {
	s.arena = append(s.arena, v)
}

// Update advances the search by one step. If candidates were pushed for the
// next level it descends into them; otherwise the current top is exhausted
// and popped, retreating through every level left empty.
func (s *Stack) Update() {
	if s.level < 0 {
		return
	}
	end := s.levelStart[s.level+1]
	if len(s.arena) > end {
		s.level++
		s.levelStart[s.level+1] = len(s.arena)
		return
	}

	s.pop()
	for s.level >= 0 && s.levelStart[s.level+1] == s.levelStart[s.level] {
		s.level--
		if s.level >= 0 {
			s.pop()
		}
	}
}

// pop removes the top of the current level.
func (s *Stack) pop() {
	end := s.levelStart[s.level+1] - 1
	s.arena = s.arena[:end]
	s.levelStart[s.level+1] = end
}

// FillSolution writes the tops of levels 0..CurrentLevel into dst followed by
// last. dst must hold CurrentLevel()+2 entries.
func (s *Stack) FillSolution(dst []int32, last int32) {
	for l := 0; l <= s.level; l++ {
		dst[l] = s.Top(l)
	}
	dst[s.level+1] = last
}
