package sat

import (
	"strconv"
	"strings"
)

// Literal is a variable occurrence in a clause: the variable index
// (1-based) and whether it appears negated.
type Literal struct {
	Var     int
	Negated bool
}

// Clause is a disjunction of literals.
type Clause []Literal

// Formula is a CNF formula: a conjunction of clauses over Variables
// boolean variables indexed 1..Variables.
type Formula struct {
	Variables int
	Clauses   []Clause
}

// String renders the formula as "(1 v ~2) & (3)".
func (f *Formula) String() string {
	var b strings.Builder
	for ci, c := range f.Clauses {
		if ci > 0 {
			b.WriteString(" & ")
		}
		b.WriteByte('(')
		for li, lit := range c {
			if li > 0 {
				b.WriteString(" v ")
			}
			if lit.Negated {
				b.WriteByte('~')
			}
			b.WriteString(strconv.Itoa(lit.Var))
		}
		b.WriteByte(')')
	}

	return b.String()
}
