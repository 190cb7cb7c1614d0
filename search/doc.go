// Package search defines the capability contract shared by every state-space
// search domain (maze, sat, hanoi) and the result type returned by every
// solver (bfs, iddfs).
//
// What
//
//   - State: an immutable, domain-opaque snapshot that can enumerate its
//     successor states, test goal membership, and produce a stable 64-bit
//     identifier.
//   - Result: the outcome of one solve invocation — the goal found (if any),
//     its edge distance from the root, and the number of states expanded.
//   - Path: predecessor-chain reconstruction from a goal back to the root.
//
// Contract
//
//	Two semantically identical states must produce equal identifiers, and
//	semantically distinct reachable states must not collide. Collisions
//	silently corrupt deduplication; this is a correctness precondition on
//	every domain implementation, not something the solvers enforce.
//
//	Successors must be pure and deterministic for a given state, may be
//	empty, and never contain the receiver itself. Structural constraints
//	(a maze state never steps through a wall, a Hanoi state never places a
//	larger disc on a smaller one) are the domain's responsibility.
//
// Lifecycle
//
//	States are produced lazily by expanding a parent, never mutated after
//	construction, and reclaimed once no frontier, visited set, or
//	predecessor chain retains them.
package search
