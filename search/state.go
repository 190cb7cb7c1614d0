package search

import "errors"

// ErrNilRoot is returned when a solver is invoked with a nil root state.
var ErrNilRoot = errors.New("search: root state is nil")

// State is the contract every domain state must satisfy.
// Implementations must be immutable after construction.
type State interface {
	// Successors returns all states reachable from this one in a single
	// step, in the domain's enumeration order. Pure and deterministic for
	// a given state; may be empty; never contains the receiver.
	Successors() []State

	// IsGoal reports whether this state satisfies the goal predicate.
	IsGoal() bool

	// ID returns a deterministic 64-bit encoding of the state's content,
	// used for deduplication and as the tie-break key among goals.
	ID() uint64

	// Predecessor returns the state this one was expanded from,
	// or nil for the root.
	Predecessor() State
}

// Path reconstructs the root→goal sequence by walking Predecessor links.
// Returns nil for a nil goal.
func Path(goal State) []State {
	if goal == nil {
		return nil
	}
	// build reversed path
	var path []State
	for cur := goal; cur != nil; cur = cur.Predecessor() {
		path = append(path, cur)
	}
	// reverse to get root → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
