package grid

import "fmt"

// Coord identifies a cell by row and column.
// Coords are minted by a Grid (At, MustAt, Neighbor), so a Coord obtained
// from a grid is always inside it.
type Coord struct {
	row int
	col int
}

// Row returns the zero-based row index.
func (c Coord) Row() int {
	return c.row
}

// Col returns the zero-based column index.
func (c Coord) Col() int {
	return c.col
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.row, c.col)
}

// step returns the coordinate one cell away in direction d.
// The result is not bounds-checked; use Grid.Neighbor for that.
func (c Coord) step(d Direction) Coord {
	dr, dc := d.Delta()
	return Coord{row: c.row + dr, col: c.col + dc}
}

// Direction is one of the four headings a snake can move in.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every heading in declaration order.
var Directions = [...]Direction{Up, Down, Left, Right}

// Delta returns the (row, col) offset of a single step.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a name such as "left" into a Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if d.String() == s {
			return d, nil
		}
	}
	return Up, fmt.Errorf("grid: unknown direction %q", s)
}
