// Package maze generates random maze instances and exposes each position in
// a maze as a search.State.
//
// Generation uses recursive backtracking on an all-wall grid: corridors are
// carved between odd-coordinate cells, so width and height must both be odd
// (and at least 5, leaving room for a goal cell distinct from the start).
// A fixed seed yields an identical maze on every call.
//
// A state is a position in the grid; successors are the up/down/left/right
// neighbours that are not walls, and the goal predicate holds on the single
// goal cell. The identifier is the row-major cell index, which is unique per
// reachable position by construction.
package maze
