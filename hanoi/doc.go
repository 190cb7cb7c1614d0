// Package hanoi generates Tower of Hanoi instances and exposes each peg
// configuration as a search.State.
//
// The initial state stacks all discs on the first peg, largest at the
// bottom. A successor moves the top disc of any peg onto any other peg whose
// top disc is larger (or which is empty); the goal holds when the last peg
// carries every disc. All edges are unit cost, so the minimum solution depth
// for the classic 3-peg instance is 2^discs - 1.
//
// The identifier folds the disc sequence of each peg into a mixed-radix
// number, with a peg separator factor, so distinct configurations of any
// instance small enough to search map to distinct 64-bit values.
package hanoi
