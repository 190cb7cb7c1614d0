package sat

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for SAT instance construction.
var (
	// ErrNonPositiveParam is returned when a count parameter is below 1.
	ErrNonPositiveParam = errors.New("sat: parameters must be positive")

	// ErrTooManyVariables is returned when the variable count exceeds the
	// 2-bit-per-variable identifier capacity.
	ErrTooManyVariables = errors.New("sat: at most 32 variables supported")
)

// maxVariables is bounded by the 64-bit identifier at 2 bits per variable.
const maxVariables = 32

// Generate builds a random CNF formula with the given seed and returns the
// empty-assignment root state. Each of the clauses clauses holds between 1
// and maxLiterals literals over vars variables; the same parameters always
// produce the same formula.
func Generate(vars, clauses, maxLiterals int, seed int64) (*State, error) {
	if vars < 1 || clauses < 1 || maxLiterals < 1 {
		return nil, fmt.Errorf("%w: vars=%d clauses=%d maxLiterals=%d",
			ErrNonPositiveParam, vars, clauses, maxLiterals)
	}
	if vars > maxVariables {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyVariables, vars)
	}

	rng := rand.New(rand.NewSource(seed))
	f := &Formula{Variables: vars, Clauses: make([]Clause, 0, clauses)}
	for i := 0; i < clauses; i++ {
		n := rng.Intn(maxLiterals) + 1
		c := make(Clause, 0, n)
		for j := 0; j < n; j++ {
			c = append(c, Literal{
				Var:     rng.Intn(vars) + 1,
				Negated: rng.Intn(2) == 1,
			})
		}
		f.Clauses = append(f.Clauses, c)
	}

	return Root(f)
}

// Root returns the empty-assignment root state for an explicit formula.
func Root(f *Formula) (*State, error) {
	if f == nil || f.Variables < 1 {
		return nil, fmt.Errorf("%w: formula needs at least one variable", ErrNonPositiveParam)
	}
	if f.Variables > maxVariables {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyVariables, f.Variables)
	}
	for _, c := range f.Clauses {
		for _, lit := range c {
			if lit.Var < 1 || lit.Var > f.Variables {
				return nil, fmt.Errorf("sat: literal variable %d out of range 1..%d", lit.Var, f.Variables)
			}
		}
	}

	return &State{formula: f, codes: make([]uint8, f.Variables)}, nil
}
