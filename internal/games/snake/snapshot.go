package snake

import "github.com/vovakirdan/tui-snake/internal/games/snake/grid"

// Snapshot is a point-in-time copy of the game, safe to read without the
// game lock. Renderers and tests consume snapshots.
type Snapshot struct {
	Tick      uint64
	Rows      int
	Cols      int
	Cells     []grid.CellState // Row-major, Rows*Cols long
	Head      grid.Coord
	Body      []grid.Coord // Neck first
	Heading   grid.Direction
	FoodEaten int
	Running   bool
	Outcome   Outcome
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	return Snapshot{
		Tick:      g.loop.Ticks(),
		Rows:      g.grid.Rows(),
		Cols:      g.grid.Cols(),
		Cells:     g.grid.States(),
		Head:      g.snake.Head(),
		Body:      g.snake.Body(),
		Heading:   g.snake.Heading(),
		FoodEaten: g.session.FoodEaten(),
		Running:   g.session.Running(),
		Outcome:   g.session.Outcome(),
	}
}

// State returns the state of the cell at (row, col), or grid.OutOfBounds.
func (s Snapshot) State(row, col int) grid.CellState {
	if row < 0 || row >= s.Rows || col < 0 || col >= s.Cols {
		return grid.OutOfBounds
	}
	return s.Cells[row*s.Cols+col]
}

// Count returns how many cells are in state st.
func (s Snapshot) Count(st grid.CellState) int {
	n := 0
	for _, c := range s.Cells {
		if c == st {
			n++
		}
	}
	return n
}

// IsHead reports whether (row, col) is the snake's head.
func (s Snapshot) IsHead(row, col int) bool {
	return s.Head.Row() == row && s.Head.Col() == col
}
