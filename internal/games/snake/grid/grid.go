// Package grid models the fixed rectangular board the snake moves on.
// It holds pure cell state and knows nothing about snakes, food timing or
// rendering.
package grid

import (
	"errors"
	"fmt"
)

// MinSize is the smallest accepted row and column count.
const MinSize = 3

// ErrInvalidDimensions is returned by New for grids smaller than MinSize.
var ErrInvalidDimensions = errors.New("grid: invalid dimensions")

// CellState is the occupancy of one cell.
type CellState uint8

const (
	Empty CellState = iota
	Wall
	Food
	SnakeBody

	// OutOfBounds is returned by State for coordinates outside the grid.
	// It is never stored in a cell.
	OutOfBounds
)

func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Food:
		return "food"
	case SnakeBody:
		return "snake"
	case OutOfBounds:
		return "out_of_bounds"
	default:
		return "unknown"
	}
}

// Grid is a rows x cols matrix of cell states stored in row-major order.
// The outermost ring is Wall from construction on.
type Grid struct {
	rows   int
	cols   int
	cells  []CellState
	counts [OutOfBounds]int
}

// New allocates an empty grid and walls off its border.
func New(rows, cols int) (*Grid, error) {
	if rows < MinSize || cols < MinSize {
		return nil, fmt.Errorf("%w: %dx%d (minimum %dx%d)", ErrInvalidDimensions, rows, cols, MinSize, MinSize)
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]CellState, rows*cols),
	}
	g.counts[Empty] = rows * cols

	for row := range rows {
		for col := range cols {
			c := Coord{row: row, col: col}
			if g.IsBorder(c) {
				g.SetState(c, Wall)
			}
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// At returns the coordinate (row, col) and whether it lies inside the grid.
func (g *Grid) At(row, col int) (Coord, bool) {
	c := Coord{row: row, col: col}
	return c, g.Contains(c)
}

// MustAt is like At but panics on an out-of-range position.
// Intended for setup code working with known-good positions.
func (g *Grid) MustAt(row, col int) Coord {
	c, ok := g.At(row, col)
	if !ok {
		panic(fmt.Sprintf("grid: %v outside %dx%d grid", c, g.rows, g.cols))
	}
	return c
}

// Contains reports whether c lies inside the grid.
func (g *Grid) Contains(c Coord) bool {
	return c.row >= 0 && c.row < g.rows && c.col >= 0 && c.col < g.cols
}

// IsBorder reports whether c is on the outermost ring.
func (g *Grid) IsBorder(c Coord) bool {
	return c.row == 0 || c.row == g.rows-1 || c.col == 0 || c.col == g.cols-1
}

// Neighbor returns the adjacent coordinate in direction d.
// The second result is false when the step would leave the grid.
func (g *Grid) Neighbor(c Coord, d Direction) (Coord, bool) {
	n := c.step(d)
	if !g.Contains(n) {
		return Coord{}, false
	}
	return n, true
}

// State returns the state of the cell at c, or OutOfBounds.
func (g *Grid) State(c Coord) CellState {
	if !g.Contains(c) {
		return OutOfBounds
	}
	return g.cells[g.index(c)]
}

// SetState overwrites the cell at c. Out-of-range coordinates and the
// OutOfBounds sentinel are ignored; any other transition is the caller's
// responsibility.
func (g *Grid) SetState(c Coord, s CellState) {
	if !g.Contains(c) || s >= OutOfBounds {
		return
	}
	i := g.index(c)
	g.counts[g.cells[i]]--
	g.cells[i] = s
	g.counts[s]++
}

// Count returns how many cells are currently in state s.
func (g *Grid) Count(s CellState) int {
	if s >= OutOfBounds {
		return 0
	}
	return g.counts[s]
}

// Each calls fn for every cell, row by row.
func (g *Grid) Each(fn func(c Coord, s CellState)) {
	for i, s := range g.cells {
		fn(Coord{row: i / g.cols, col: i % g.cols}, s)
	}
}

// States returns a row-major copy of every cell state.
func (g *Grid) States() []CellState {
	states := make([]CellState, len(g.cells))
	copy(states, g.cells)
	return states
}

func (g *Grid) index(c Coord) int {
	return c.row*g.cols + c.col
}
