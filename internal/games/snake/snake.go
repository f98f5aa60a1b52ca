package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/games/snake/grid"
)

// InitialLength is the number of cells a new snake occupies.
const InitialLength = 3

// Snake is the player's chain of cells on a grid.
type Snake struct {
	grid    *grid.Grid
	session *Session

	head    grid.Coord
	body    []grid.Coord   // Neck at index 0, tail last
	heading grid.Direction // Consumed by the next Advance
}

// NewSnake places a snake with its head at head and two body cells trailing
// behind it, opposite to heading. All three cells must be empty.
func NewSnake(g *grid.Grid, session *Session, head grid.Coord, heading grid.Direction) (*Snake, error) {
	if !heading.Valid() {
		return nil, fmt.Errorf("snake: invalid heading %d", heading)
	}

	cells := []grid.Coord{head}
	for len(cells) < InitialLength {
		prev := cells[len(cells)-1]
		next, ok := g.Neighbor(prev, heading.Opposite())
		if !ok {
			return nil, fmt.Errorf("snake: no room behind %v heading %v", head, heading)
		}
		cells = append(cells, next)
	}
	for _, c := range cells {
		if s := g.State(c); s != grid.Empty {
			return nil, fmt.Errorf("snake: start cell %v is %v", c, s)
		}
	}

	for _, c := range cells {
		g.SetState(c, grid.SnakeBody)
	}

	return &Snake{
		grid:    g,
		session: session,
		head:    head,
		body:    cells[1:],
		heading: heading,
	}, nil
}

// Head returns the head coordinate.
func (s *Snake) Head() grid.Coord {
	return s.head
}

// Body returns a copy of the body, neck first.
func (s *Snake) Body() []grid.Coord {
	body := make([]grid.Coord, len(s.body))
	copy(body, s.body)
	return body
}

// Len returns the number of occupied cells, head included.
func (s *Snake) Len() int {
	return len(s.body) + 1
}

// Heading returns the direction the next Advance will move in.
func (s *Snake) Heading() grid.Direction {
	return s.heading
}

// SetDirection buffers a heading change for the next Advance.
// The reverse of the current heading is silently ignored. Two quick turns
// between ticks can still point the snake back at its neck.
func (s *Snake) SetDirection(d grid.Direction) {
	if !d.Valid() || d == s.heading.Opposite() {
		return
	}
	s.heading = d
}

// Advance moves the snake one cell along its heading and reports what
// happened. Once the session is terminal it changes nothing and returns
// the terminal outcome.
func (s *Snake) Advance() Outcome {
	if !s.session.Running() {
		return s.session.Outcome()
	}

	newHead, ok := s.grid.Neighbor(s.head, s.heading)
	if !ok {
		// Leaving the board entirely counts as a win.
		s.session.end(Won)
		return Won
	}

	var outcome Outcome
	switch s.grid.State(newHead) {
	case grid.Wall, grid.SnakeBody:
		s.session.end(Lost)
		return Lost
	case grid.Food:
		outcome = AteFood
	default:
		outcome = Continued
	}

	s.grid.SetState(newHead, grid.SnakeBody)
	s.body = append([]grid.Coord{s.head}, s.body...)
	s.head = newHead

	if outcome == Continued {
		tail := s.body[len(s.body)-1]
		s.body = s.body[:len(s.body)-1]
		s.grid.SetState(tail, grid.Empty)
	}

	s.session.record(outcome)
	return outcome
}
