package maze

import (
	"strings"

	"github.com/ondrejsvarc/bfs-iddfs-benchmark/search"
)

// Cell is the content of one maze grid cell.
type Cell uint8

// Cell kinds.
const (
	CellWall Cell = iota
	CellPath
	CellStart
	CellGoal
)

// grid is the immutable maze layout, shared by every state of one instance.
type grid struct {
	width  int
	height int
	cells  [][]Cell
}

// State is a position within a maze. It implements search.State.
type State struct {
	pred *State
	grid *grid
	x, y int
}

// neighbor offsets: up, down, left, right.
var offsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Successors returns the adjacent non-wall positions in up/down/left/right
// order.
func (s *State) Successors() []search.State {
	children := make([]search.State, 0, len(offsets))
	for _, d := range offsets {
		nx, ny := s.x+d[0], s.y+d[1]
		if nx < 0 || nx >= s.grid.width || ny < 0 || ny >= s.grid.height {
			continue
		}
		if s.grid.cells[ny][nx] == CellWall {
			continue
		}
		children = append(children, &State{pred: s, grid: s.grid, x: nx, y: ny})
	}

	return children
}

// IsGoal reports whether the position is the goal cell.
func (s *State) IsGoal() bool {
	return s.grid.cells[s.y][s.x] == CellGoal
}

// ID returns the row-major cell index of the position.
func (s *State) ID() uint64 {
	return uint64(s.y*s.grid.width + s.x)
}

// Predecessor returns the state this position was reached from.
func (s *State) Predecessor() search.State {
	if s.pred == nil {
		return nil
	}

	return s.pred
}

// Position returns the (x, y) coordinates of the state.
func (s *State) Position() (int, int) {
	return s.x, s.y
}

// Cell returns the content of the grid cell at (x, y).
func (s *State) Cell(x, y int) Cell {
	return s.grid.cells[y][x]
}

// Render returns an ASCII rendering of the maze layout:
// '#' wall, ' ' path, 'S' start, 'G' goal.
func (s *State) Render() string {
	var b strings.Builder
	for y := 0; y < s.grid.height; y++ {
		for x := 0; x < s.grid.width; x++ {
			switch s.grid.cells[y][x] {
			case CellWall:
				b.WriteByte('#')
			case CellPath:
				b.WriteByte(' ')
			case CellStart:
				b.WriteByte('S')
			case CellGoal:
				b.WriteByte('G')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
