package hanoi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ondrejsvarc/bfs-iddfs-benchmark/bfs"
	"github.com/ondrejsvarc/bfs-iddfs-benchmark/hanoi"
	"github.com/ondrejsvarc/bfs-iddfs-benchmark/iddfs"
)

// TestGenerate_Validation verifies malformed parameters are rejected.
func TestGenerate_Validation(t *testing.T) {
	_, err := hanoi.Generate(2, 1)
	assert.ErrorIs(t, err, hanoi.ErrTooFewPegs)

	_, err = hanoi.Generate(3, 0)
	assert.ErrorIs(t, err, hanoi.ErrTooFewDiscs)
}

// TestGenerate_InitialState verifies all discs start on the first peg,
// largest at the bottom.
func TestGenerate_InitialState(t *testing.T) {
	root, err := hanoi.Generate(3, 3)
	require.NoError(t, err)

	assert.Equal(t, [][]int{{3, 2, 1}, {}, {}}, root.Pegs())
	assert.False(t, root.IsGoal())
	assert.Nil(t, root.Predecessor())
}

// TestState_Successors verifies only legal moves are enumerated: from the
// initial 2-disc state, the small disc can move to either free peg.
func TestState_Successors(t *testing.T) {
	root, err := hanoi.Generate(3, 2)
	require.NoError(t, err)

	kids := root.Successors()
	require.Len(t, kids, 2)
	assert.Equal(t, [][]int{{2}, {1}, {}}, kids[0].(*hanoi.State).Pegs())
	assert.Equal(t, [][]int{{2}, {}, {1}}, kids[1].(*hanoi.State).Pegs())
}

// TestState_NoLargerOnSmaller verifies stacking constraints: with disc 1
// parked on peg 2, disc 2 may only move to peg 3.
func TestState_NoLargerOnSmaller(t *testing.T) {
	root, err := hanoi.Generate(3, 2)
	require.NoError(t, err)
	mid := root.Successors()[0].(*hanoi.State) // [[2],[1],[]]

	var destinations [][][]int
	for _, kid := range mid.Successors() {
		destinations = append(destinations, kid.(*hanoi.State).Pegs())
	}
	// moves: 1 back onto 2, 1 to the last peg, 2 to the last peg —
	// but never 2 onto 1.
	assert.Contains(t, destinations, [][]int{{2, 1}, {}, {}})
	assert.Contains(t, destinations, [][]int{{2}, {}, {1}})
	assert.Contains(t, destinations, [][]int{{}, {1}, {2}})
	assert.Len(t, destinations, 3)
}

// TestTwoDiscs_MinimumSolution pins the documented example: 3 pegs and
// 2 discs solve in 3 moves, with both discs in order on the last peg.
func TestTwoDiscs_MinimumSolution(t *testing.T) {
	root, err := hanoi.Generate(3, 2)
	require.NoError(t, err)

	res, err := bfs.Sequential(root)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 3, res.Depth)

	goal := res.Goal.(*hanoi.State)
	assert.Equal(t, [][]int{{}, {}, {2, 1}}, goal.Pegs())
}

// TestAllSolversAgree verifies every variant solves 3 discs at the optimal
// depth 2^3-1 = 7.
func TestAllSolversAgree(t *testing.T) {
	solve := func(t *testing.T, run func() (int, bool)) {
		t.Helper()
		depth, found := run()
		require.True(t, found)
		assert.Equal(t, 7, depth)
	}

	t.Run("bfs sequential", func(t *testing.T) {
		solve(t, func() (int, bool) {
			root, _ := hanoi.Generate(3, 3)
			res, err := bfs.Sequential(root)
			require.NoError(t, err)
			return res.Depth, res.Found
		})
	})
	t.Run("bfs parallel", func(t *testing.T) {
		solve(t, func() (int, bool) {
			root, _ := hanoi.Generate(3, 3)
			res, err := bfs.Parallel(root)
			require.NoError(t, err)
			return res.Depth, res.Found
		})
	})
	t.Run("iddfs sequential", func(t *testing.T) {
		solve(t, func() (int, bool) {
			root, _ := hanoi.Generate(3, 3)
			res, err := iddfs.Sequential(root)
			require.NoError(t, err)
			return res.Depth, res.Found
		})
	})
	t.Run("iddfs parallel", func(t *testing.T) {
		solve(t, func() (int, bool) {
			root, _ := hanoi.Generate(3, 3)
			res, err := iddfs.Parallel(root)
			require.NoError(t, err)
			return res.Depth, res.Found
		})
	})
}

// TestReinvocation_EqualGoals verifies two fresh solves of equivalent roots
// return goals with equal identifiers.
func TestReinvocation_EqualGoals(t *testing.T) {
	first, err := hanoi.Generate(3, 2)
	require.NoError(t, err)
	second, err := hanoi.Generate(3, 2)
	require.NoError(t, err)

	resA, err := bfs.Sequential(first)
	require.NoError(t, err)
	resB, err := bfs.Sequential(second)
	require.NoError(t, err)

	assert.Equal(t, resA.Goal.ID(), resB.Goal.ID())
}

// TestFourPegs verifies extra pegs shorten nothing for a single disc and
// still reach the goal.
func TestFourPegs(t *testing.T) {
	root, err := hanoi.Generate(4, 1)
	require.NoError(t, err)

	res, err := bfs.Sequential(root)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 1, res.Depth)
}

// TestRender covers the peg listing format.
func TestRender(t *testing.T) {
	root, err := hanoi.Generate(3, 2)
	require.NoError(t, err)
	assert.Equal(t, "Peg 1: 2 1\nPeg 2:\nPeg 3:\n", root.Render())
}
