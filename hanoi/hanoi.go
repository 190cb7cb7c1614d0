package hanoi

import (
	"errors"
	"fmt"
)

// Sentinel errors for Hanoi instance construction.
var (
	// ErrTooFewPegs is returned when fewer than 3 pegs are requested.
	ErrTooFewPegs = errors.New("hanoi: at least 3 pegs required")

	// ErrTooFewDiscs is returned when fewer than 1 disc is requested.
	ErrTooFewDiscs = errors.New("hanoi: at least 1 disc required")
)

const minPegs = 3

// Generate returns the initial state of a pegs×discs instance: every disc
// on the first peg in decreasing size order.
func Generate(pegs, discs int) (*State, error) {
	if pegs < minPegs {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPegs, pegs)
	}
	if discs < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewDiscs, discs)
	}

	stacks := make([][]int, pegs)
	first := make([]int, 0, discs)
	for d := discs; d >= 1; d-- {
		first = append(first, d)
	}
	stacks[0] = first

	return &State{pegs: stacks, numPegs: pegs, numDiscs: discs}, nil
}
