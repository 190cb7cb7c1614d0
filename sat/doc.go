// Package sat generates random CNF satisfiability instances and exposes
// partial variable assignments as search.States.
//
// A formula is a conjunction of clauses, each a disjunction of literals.
// The root state carries an empty assignment; a state's successors assign
// the lowest-index unassigned variable to true and to false (in that order),
// so the search space is the complete binary assignment tree. The goal
// predicate holds only on a complete assignment that satisfies every clause
// — an unsatisfiable formula is reported as a normal not-found result once
// the tree is exhausted.
//
// The identifier packs two bits per variable (unset=0, false=1, true=2) from
// variable 1 downward, which is why instances are capped at 32 variables:
// beyond that, distinct assignments would collide and corrupt deduplication.
package sat
