package iddfs_test

import (
	"fmt"

	"github.com/ondrejsvarc/bfs-iddfs-benchmark/hanoi"
	"github.com/ondrejsvarc/bfs-iddfs-benchmark/iddfs"
)

// ExampleSequential solves the 3-peg, 2-disc Tower of Hanoi: the first
// successful pass runs at depth limit 3, the minimum solution depth.
func ExampleSequential() {
	root, err := hanoi.Generate(3, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := iddfs.Sequential(root)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("found:", res.Found, "depth:", res.Depth)
	// Output:
	// found: true depth: 3
}

// ExampleParallel caps the escalation on an unsolvable instance so the
// search concludes with a normal not-found result.
func ExampleParallel() {
	root, err := hanoi.Generate(3, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// A cap below the minimum solution depth exhausts without a goal.
	res, err := iddfs.Parallel(root, iddfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("found:", res.Found)
	// Output:
	// found: false
}
