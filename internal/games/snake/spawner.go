package snake

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake/grid"
)

// ErrNoFreeCell is returned by Spawn when no empty cell is left.
var ErrNoFreeCell = errors.New("snake: no free cell for food")

// Scheduler runs fire once, after d has elapsed.
// The driver decides how: a timer goroutine, a Bubble Tea command, or a
// fake clock in tests. After must return before fire runs.
type Scheduler interface {
	After(d time.Duration, fire func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(d time.Duration, fire func())

// After calls f(d, fire).
func (f SchedulerFunc) After(d time.Duration, fire func()) {
	f(d, fire)
}

// FoodSpawner places food on random empty interior cells on a randomized
// schedule.
type FoodSpawner struct {
	grid    *grid.Grid
	session *Session
	rng     *rand.Rand

	minDelay time.Duration
	maxDelay time.Duration
	maxFood  int
}

// NewFoodSpawner creates a spawner drawing delays from [minDelay, maxDelay]
// and keeping at most maxFood items on the board.
func NewFoodSpawner(g *grid.Grid, session *Session, rng *rand.Rand, minDelay, maxDelay time.Duration, maxFood int) *FoodSpawner {
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return &FoodSpawner{
		grid:     g,
		session:  session,
		rng:      rng,
		minDelay: minDelay,
		maxDelay: maxDelay,
		maxFood:  max(1, maxFood),
	}
}

// NextDelay draws a delay uniformly from [min, max], both ends inclusive,
// at millisecond resolution.
func (f *FoodSpawner) NextDelay() time.Duration {
	lo := f.minDelay.Milliseconds()
	hi := f.maxDelay.Milliseconds()
	return time.Duration(lo+f.rng.Int63n(hi-lo+1)) * time.Millisecond
}

// ScheduleNext registers one future firing with s. When it fires the
// spawner tries to place food and, if the session is still running,
// schedules the next firing. A firing already registered when the session
// ends still runs, but schedules nothing further.
func (f *FoodSpawner) ScheduleNext(s Scheduler) {
	s.After(f.NextDelay(), func() {
		f.TrySpawn()
		if f.session.Running() {
			f.ScheduleNext(s)
		}
	})
}

// TrySpawn places one food item unless the session is over or the board
// already holds maxFood items. It reports the cell used, if any.
func (f *FoodSpawner) TrySpawn() (grid.Coord, bool) {
	if !f.session.Running() || f.grid.Count(grid.Food) >= f.maxFood {
		return grid.Coord{}, false
	}
	c, err := f.Spawn()
	if err != nil {
		return grid.Coord{}, false
	}
	return c, true
}

// Spawn turns a random empty interior cell into food.
//
// Candidates are drawn uniformly by rejection sampling. After a bounded
// number of misses the remaining empty interior cells are enumerated and
// one is picked directly, so the call always terminates. Border cells never
// receive food, even when breached.
func (f *FoodSpawner) Spawn() (grid.Coord, error) {
	if f.grid.Count(grid.Empty) == 0 {
		return grid.Coord{}, ErrNoFreeCell
	}

	rows, cols := f.grid.Rows()-2, f.grid.Cols()-2
	attempts := 4 * rows * cols / f.grid.Count(grid.Empty)
	for range attempts {
		c := f.grid.MustAt(1+f.rng.Intn(rows), 1+f.rng.Intn(cols))
		if f.grid.State(c) == grid.Empty {
			f.grid.SetState(c, grid.Food)
			return c, nil
		}
	}

	var empty []grid.Coord
	f.grid.Each(func(c grid.Coord, s grid.CellState) {
		if s == grid.Empty && !f.grid.IsBorder(c) {
			empty = append(empty, c)
		}
	})
	if len(empty) == 0 {
		return grid.Coord{}, ErrNoFreeCell
	}
	c := empty[f.rng.Intn(len(empty))]
	f.grid.SetState(c, grid.Food)
	return c, nil
}
