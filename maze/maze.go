package maze

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for maze generation.
var (
	// ErrEvenDimension is returned when width or height is not odd.
	ErrEvenDimension = errors.New("maze: width and height must be odd")

	// ErrTooSmall is returned when width or height is below 5; smaller
	// grids cannot hold a goal cell distinct from the start.
	ErrTooSmall = errors.New("maze: width and height must be at least 5")
)

// minDimension is the smallest usable maze side.
const minDimension = 5

// Generate carves a random width×height maze with the given seed and returns
// the start position as the root state. The same parameters always produce
// the same maze.
func Generate(width, height int, seed int64) (*State, error) {
	if width%2 == 0 || height%2 == 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEvenDimension, width, height)
	}
	if width < minDimension || height < minDimension {
		return nil, fmt.Errorf("%w: got %dx%d", ErrTooSmall, width, height)
	}

	rng := rand.New(rand.NewSource(seed))

	// All walls initially; corridors are carved between odd cells.
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}

	startX := rng.Intn(width/2)*2 + 1
	startY := rng.Intn(height/2)*2 + 1
	cells[startY][startX] = CellStart

	carve(cells, startX, startY, rng)

	// Pick a distinct odd goal cell reachable from the start. The carver
	// visits every odd cell, so any Path cell qualifies.
	var goalX, goalY int
	for {
		goalX = rng.Intn(width/2)*2 + 1
		goalY = rng.Intn(height/2)*2 + 1
		if cells[goalY][goalX] == CellPath {
			break
		}
	}
	cells[goalY][goalX] = CellGoal

	g := &grid{width: width, height: height, cells: cells}

	return &State{grid: g, x: startX, y: startY}, nil
}

// carve runs recursive backtracking from (x,y): pick a random order of the
// four two-step directions, and for each unvisited odd neighbour knock out
// the wall between and recurse.
func carve(cells [][]Cell, x, y int, rng *rand.Rand) {
	if cells[y][x] == CellWall {
		cells[y][x] = CellPath
	}

	dirs := [][2]int{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
	rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})

	width, height := len(cells[0]), len(cells)
	for _, d := range dirs {
		nx, ny := x+d[0], y+d[1]
		if nx <= 0 || nx >= width-1 || ny <= 0 || ny >= height-1 {
			continue
		}
		if cells[ny][nx] != CellWall {
			continue
		}
		// Knock out the wall between (x,y) and (nx,ny).
		cells[y+d[1]/2][x+d[0]/2] = CellPath
		carve(cells, nx, ny, rng)
	}
}

// FromGrid wraps an explicit grid as a root state at position (x,y).
// Intended for fixed fixtures; rows must be non-empty, rectangular, and the
// position must be an in-bounds non-wall cell.
func FromGrid(cells [][]Cell, x, y int) (*State, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrTooSmall)
	}
	width := len(cells[0])
	for _, row := range cells {
		if len(row) != width {
			return nil, fmt.Errorf("maze: ragged grid row (want width %d, got %d)", width, len(row))
		}
	}
	if y < 0 || y >= len(cells) || x < 0 || x >= width {
		return nil, fmt.Errorf("maze: start (%d,%d) out of bounds", x, y)
	}
	if cells[y][x] == CellWall {
		return nil, fmt.Errorf("maze: start (%d,%d) is a wall", x, y)
	}

	g := &grid{width: width, height: len(cells), cells: cells}

	return &State{grid: g, x: x, y: y}, nil
}
