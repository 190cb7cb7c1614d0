package hanoi

import (
	"fmt"
	"strings"

	"github.com/ondrejsvarc/bfs-iddfs-benchmark/search"
)

// State is one peg configuration. pegs[i] lists the discs on peg i from
// bottom to top; disc numbers are sizes, 1 the smallest.
// It implements search.State.
type State struct {
	pred     *State
	pegs     [][]int
	numPegs  int
	numDiscs int
}

// Successors returns every legal single-disc move: the top disc of a
// non-empty source peg onto a different peg whose top disc is larger, or
// which is empty. Enumeration order is source-major, then destination.
func (s *State) Successors() []search.State {
	var children []search.State
	for from := 0; from < s.numPegs; from++ {
		if len(s.pegs[from]) == 0 {
			continue
		}
		disc := s.pegs[from][len(s.pegs[from])-1]
		for to := 0; to < s.numPegs; to++ {
			if to == from {
				continue
			}
			if n := len(s.pegs[to]); n > 0 && s.pegs[to][n-1] < disc {
				continue
			}
			children = append(children, s.move(from, to))
		}
	}

	return children
}

// move derives the child state with the top disc of from placed on to.
func (s *State) move(from, to int) *State {
	pegs := make([][]int, s.numPegs)
	for i, p := range s.pegs {
		pegs[i] = append([]int(nil), p...)
	}
	disc := pegs[from][len(pegs[from])-1]
	pegs[from] = pegs[from][:len(pegs[from])-1]
	pegs[to] = append(pegs[to], disc)

	return &State{pred: s, pegs: pegs, numPegs: s.numPegs, numDiscs: s.numDiscs}
}

// IsGoal reports whether the last peg holds every disc.
func (s *State) IsGoal() bool {
	if len(s.pegs[s.numPegs-1]) != s.numDiscs {
		return false
	}
	for i := 0; i < s.numPegs-1; i++ {
		if len(s.pegs[i]) != 0 {
			return false
		}
	}

	return true
}

// ID folds each peg's disc sequence into a mixed-radix number with a
// separator factor per peg boundary.
func (s *State) ID() uint64 {
	var id uint64
	for _, peg := range s.pegs {
		for _, disc := range peg {
			id = id*uint64(s.numDiscs) + uint64(disc)
		}
		id *= uint64(s.numDiscs + 1)
	}

	return id
}

// Predecessor returns the configuration this one was reached from.
func (s *State) Predecessor() search.State {
	if s.pred == nil {
		return nil
	}

	return s.pred
}

// Pegs returns a copy of the peg configuration. Empty pegs are returned as
// empty, non-nil slices.
func (s *State) Pegs() [][]int {
	pegs := make([][]int, s.numPegs)
	for i, p := range s.pegs {
		pegs[i] = make([]int, len(p))
		copy(pegs[i], p)
	}

	return pegs
}

// Render lists each peg and its discs, bottom to top.
func (s *State) Render() string {
	var b strings.Builder
	for i, peg := range s.pegs {
		fmt.Fprintf(&b, "Peg %d:", i+1)
		for _, disc := range peg {
			fmt.Fprintf(&b, " %d", disc)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
