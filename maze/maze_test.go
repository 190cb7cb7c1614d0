package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ondrejsvarc/bfs-iddfs-benchmark/bfs"
	"github.com/ondrejsvarc/bfs-iddfs-benchmark/iddfs"
	"github.com/ondrejsvarc/bfs-iddfs-benchmark/maze"
)

// TestGenerate_Validation verifies malformed parameters are rejected.
func TestGenerate_Validation(t *testing.T) {
	_, err := maze.Generate(6, 5, 1)
	assert.ErrorIs(t, err, maze.ErrEvenDimension)

	_, err = maze.Generate(5, 8, 1)
	assert.ErrorIs(t, err, maze.ErrEvenDimension)

	_, err = maze.Generate(3, 5, 1)
	assert.ErrorIs(t, err, maze.ErrTooSmall)
}

// TestGenerate_Deterministic verifies a fixed seed reproduces the maze.
func TestGenerate_Deterministic(t *testing.T) {
	first, err := maze.Generate(9, 9, 42)
	require.NoError(t, err)
	second, err := maze.Generate(9, 9, 42)
	require.NoError(t, err)

	assert.Equal(t, first.Render(), second.Render())
	assert.Equal(t, first.ID(), second.ID())
}

// TestGenerate_Layout verifies the rendered maze has exactly one start and
// one goal, and the border is all wall.
func TestGenerate_Layout(t *testing.T) {
	root, err := maze.Generate(7, 7, 3)
	require.NoError(t, err)

	starts, goals := 0, 0
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			switch root.Cell(x, y) {
			case maze.CellStart:
				starts++
			case maze.CellGoal:
				goals++
			}
			if x == 0 || y == 0 || x == 6 || y == 6 {
				assert.Equal(t, maze.CellWall, root.Cell(x, y), "border cell (%d,%d)", x, y)
			}
		}
	}
	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, goals)
}

// TestFromGrid_Successors verifies successors honor walls and bounds.
func TestFromGrid_Successors(t *testing.T) {
	// S is boxed in except for the cell to its right.
	cells := [][]maze.Cell{
		{maze.CellWall, maze.CellWall, maze.CellWall, maze.CellWall},
		{maze.CellWall, maze.CellStart, maze.CellPath, maze.CellWall},
		{maze.CellWall, maze.CellWall, maze.CellGoal, maze.CellWall},
	}
	root, err := maze.FromGrid(cells, 1, 1)
	require.NoError(t, err)

	kids := root.Successors()
	require.Len(t, kids, 1)
	assert.Equal(t, uint64(1*4+2), kids[0].ID()) // row-major index of (2,1)
	assert.False(t, kids[0].IsGoal())

	grandkids := kids[0].Successors()
	// back to start, and down to the goal
	require.Len(t, grandkids, 2)
}

// TestFromGrid_Validation verifies fixture construction errors.
func TestFromGrid_Validation(t *testing.T) {
	_, err := maze.FromGrid(nil, 0, 0)
	assert.Error(t, err)

	cells := [][]maze.Cell{{maze.CellWall, maze.CellPath}}
	_, err = maze.FromGrid(cells, 0, 0)
	assert.Error(t, err) // start on a wall

	_, err = maze.FromGrid(cells, 5, 0)
	assert.Error(t, err) // out of bounds
}

// TestGenerated_AllSolversAgree runs all four solver variants on a fixed
// 5x5 instance: every variant finds the goal, and the IDDFS depth equals
// the BFS depth.
func TestGenerated_AllSolversAgree(t *testing.T) {
	root, err := maze.Generate(5, 5, 8)
	require.NoError(t, err)

	bfsSeq, err := bfs.Sequential(root)
	require.NoError(t, err)
	require.True(t, bfsSeq.Found)

	bfsPar, err := bfs.Parallel(root)
	require.NoError(t, err)
	require.True(t, bfsPar.Found)
	assert.Equal(t, bfsSeq.Depth, bfsPar.Depth)

	idSeq, err := iddfs.Sequential(root)
	require.NoError(t, err)
	require.True(t, idSeq.Found)
	assert.Equal(t, bfsSeq.Depth, idSeq.Depth)

	idPar, err := iddfs.Parallel(root)
	require.NoError(t, err)
	require.True(t, idPar.Found)
	assert.Equal(t, bfsSeq.Depth, idPar.Depth)
}

// TestState_Predecessor verifies the root has no predecessor and children
// link back to their parent.
func TestState_Predecessor(t *testing.T) {
	root, err := maze.Generate(5, 5, 8)
	require.NoError(t, err)
	assert.Nil(t, root.Predecessor())

	for _, child := range root.Successors() {
		require.NotNil(t, child.Predecessor())
		assert.Equal(t, root.ID(), child.Predecessor().ID())
	}
}
