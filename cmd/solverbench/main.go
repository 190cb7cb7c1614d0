// Command solverbench generates state-space search problems (maze, SAT,
// Tower of Hanoi) and benchmarks the BFS and IDDFS solvers on them, in
// sequential and parallel form.
package main

func main() {
	Execute()
}
