// Package iddfs provides iterative-deepening depth-first search over a
// search.State space, in a sequential and a shared-memory parallel form.
//
// What
//
//	The outer loop runs depth-limited depth-first passes with the limit
//	starting at 1 and incrementing until a pass finds a goal. Within one
//	pass, duplicate suppression is path-scoped, not global: a child already
//	on the current root-to-node path is skipped, but siblings never exclude
//	each other — the true pruning mechanism is the depth limit. Each pass
//	completes its whole limited traversal and records the lowest-identifier
//	goal encountered anywhere in it; a goal state is not expanded further.
//	No memory is carried between passes.
//
// Parallel variant
//
//	Same outer loop. While the current depth is below a fork threshold
//	(default 8 from the root), each child may run as an independent task
//	when a slot is free in a bounded task pool; beyond the threshold, or
//	when no slot is available, recursion proceeds inline in the same task.
//	The path-visited set is forked as an independent copy at every branch
//	point — sibling tasks never mutate a shared structure. A mutex-guarded
//	"best goal this pass" cell, updated only on strict improvement, lets
//	later tasks skip worse candidates; it does not cancel in-flight work.
//	Each forking call joins its own children before returning, so a pass
//	concludes only once every task for that limit has finished.
//
// Termination
//
//	If the problem has no reachable goal, the depth limit grows without
//	bound and the search never terminates on its own. Bounding total run
//	time is a caller responsibility: supply a cancellable context via
//	WithContext, or an explicit cap via WithMaxDepth (an exhausted cap
//	yields a normal not-found Result).
//
// Errors
//
//   - search.ErrNilRoot    if the root state is nil.
//   - ErrOptionViolation   for an invalid Option.
//   - Context errors when the supplied context is cancelled mid-search.
package iddfs
