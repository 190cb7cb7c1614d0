package search

// Result holds the outcome of one solve invocation:
//   - Goal: the goal state found, or nil.
//   - Found: whether a goal was found. An empty result is a normal outcome
//     of an exhausted search space, not an error.
//   - Depth: edge distance from the root at which Goal was recorded,
//     or -1 when no goal was found.
//   - Expanded: number of states expanded; informational only.
type Result struct {
	Goal     State
	Found    bool
	Depth    int
	Expanded int
}

// NewResult returns an empty (not-found) result.
func NewResult() *Result {
	return &Result{Depth: -1}
}

// Record stores goal at the given depth and marks the result found.
func (r *Result) Record(goal State, depth int) {
	r.Goal = goal
	r.Found = true
	r.Depth = depth
}
