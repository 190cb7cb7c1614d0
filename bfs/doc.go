// Package bfs provides breadth-first search over a search.State space,
// in a sequential and a shared-memory parallel form.
//
// What
//
//   - Sequential: classic queue-based level-order traversal with a global
//     visited-identifier set. The first goal dequeued is at minimum depth
//     from the root; among multiple minimum-depth goals the one returned is
//     whichever was enqueued first.
//   - Parallel: level-synchronous traversal. Each round expands the whole
//     current frontier concurrently; discovered children merge into a shared
//     (next-frontier, visited) pair under mutual exclusion. Within the
//     shallowest goal-bearing level the goal with the numerically lowest
//     identifier wins.
//
// Tie-break divergence
//
//	Sequential returns the first-enqueued minimum-depth goal; Parallel
//	returns the minimum-identifier goal of that same level. The two
//	variants therefore agree on depth for every instance, but not
//	necessarily on which minimum-depth goal is returned when several tie.
//
// Determinism
//
//	Sequential is fully deterministic given the root. Parallel is
//	deterministic up to the documented tie-break: all coordination state is
//	freshly allocated per call, so repeated solves of equivalent roots are
//	independent.
//
// Complexity (V = reachable states, E = transitions)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for frontier and visited set
//
// Errors
//
//   - search.ErrNilRoot    if the root state is nil.
//   - ErrOptionViolation   for an invalid Option (e.g. non-positive workers).
//   - Context errors when the supplied context is cancelled mid-search.
//
// "No solution found" is reported via Result.Found == false with a nil
// error; an exhausted space is a normal outcome.
package bfs
