package sat

import "github.com/ondrejsvarc/bfs-iddfs-benchmark/search"

// 2-bit assignment codes, chosen so the identifier encoding is stable.
const (
	codeUnset uint8 = 0
	codeFalse uint8 = 1
	codeTrue  uint8 = 2
)

// State is a partial assignment of boolean values to the formula's
// variables. It implements search.State.
type State struct {
	pred    *State
	formula *Formula
	codes   []uint8 // codes[i] is the assignment of variable i+1
}

// Successors assigns the lowest-index unassigned variable, true first.
// A complete or goal assignment has no successors.
func (s *State) Successors() []search.State {
	if s.IsGoal() {
		return nil
	}

	next := -1
	for i, c := range s.codes {
		if c == codeUnset {
			next = i
			break
		}
	}
	if next == -1 {
		return nil
	}

	return []search.State{s.assign(next, codeTrue), s.assign(next, codeFalse)}
}

// assign derives a child state with variable index i set to code.
func (s *State) assign(i int, code uint8) *State {
	codes := make([]uint8, len(s.codes))
	copy(codes, s.codes)
	codes[i] = code

	return &State{pred: s, formula: s.formula, codes: codes}
}

// IsGoal reports whether the assignment is complete and satisfies every
// clause of the formula.
func (s *State) IsGoal() bool {
	for _, c := range s.formula.Clauses {
		satisfied := false
		for _, lit := range c {
			switch s.codes[lit.Var-1] {
			case codeTrue:
				satisfied = !lit.Negated
			case codeFalse:
				satisfied = lit.Negated
			}
			if satisfied {
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	for _, c := range s.codes {
		if c == codeUnset {
			return false
		}
	}

	return true
}

// ID packs two bits per variable, from variable 1 in the most significant
// position: unset=0, false=1, true=2.
func (s *State) ID() uint64 {
	var id uint64
	for _, c := range s.codes {
		id = id<<2 | uint64(c)
	}

	return id
}

// Predecessor returns the state this assignment was derived from.
func (s *State) Predecessor() search.State {
	if s.pred == nil {
		return nil
	}

	return s.pred
}

// Formula returns the formula this state assigns.
func (s *State) Formula() *Formula {
	return s.formula
}

// Assignment returns the current values as a map from variable index to
// value; unassigned variables are absent.
func (s *State) Assignment() map[int]bool {
	m := make(map[int]bool, len(s.codes))
	for i, c := range s.codes {
		switch c {
		case codeTrue:
			m[i+1] = true
		case codeFalse:
			m[i+1] = false
		}
	}

	return m
}
