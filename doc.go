// Package bfsiddfsbenchmark compares breadth-first search and
// iterative-deepening depth-first search, each in a sequential and a
// shared-memory parallel form, on classic state-space problems.
//
// What's inside:
//
//	search/      — the State contract, solver Result, path reconstruction
//	bfs/         — queue-based and level-synchronous parallel BFS
//	iddfs/       — depth-limited passes with bounded fork-join parallelism
//	maze/        — random maze generator (recursive backtracking)
//	sat/         — random CNF generator and assignment states
//	hanoi/       — Tower of Hanoi generator
//	problemfile/ — YAML persistence of generation parameters
//	benchmark/   — timing harness over the four solver variants
//	cmd/solverbench — the CLI front-end
//
// Every solver consumes any search.State root, so new problem domains plug
// in by implementing the four-method contract in search/.
//
//	go get github.com/ondrejsvarc/bfs-iddfs-benchmark
package bfsiddfsbenchmark
