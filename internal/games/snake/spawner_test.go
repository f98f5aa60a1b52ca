package snake

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake/grid"
)

// fakeClock collects scheduled firings and runs them on demand.
type fakeClock struct {
	pending []func()
	delays  []time.Duration
}

func (c *fakeClock) After(d time.Duration, fire func()) {
	c.delays = append(c.delays, d)
	c.pending = append(c.pending, fire)
}

// fireNext runs the oldest pending firing. It reports false if none is queued.
func (c *fakeClock) fireNext() bool {
	if len(c.pending) == 0 {
		return false
	}
	fire := c.pending[0]
	c.pending = c.pending[1:]
	fire()
	return true
}

func newTestSpawner(g *grid.Grid, session *Session, seed int64, maxFood int) *FoodSpawner {
	return NewFoodSpawner(g, session, rand.New(rand.NewSource(seed)), 2*time.Second, 6*time.Second, maxFood)
}

func TestSpawnPlacesFoodOnEmptyInterior(t *testing.T) {
	g, session, _ := newTestSnake(t, 12, 16, 6, 8, grid.Left)
	f := newTestSpawner(g, session, 999, 1)

	for range 100 {
		c, err := f.Spawn()
		if err != nil {
			t.Fatalf("Spawn() failed: %v", err)
		}
		if g.IsBorder(c) {
			t.Errorf("food spawned on border cell %v", c)
		}
		if g.State(c) != grid.Food {
			t.Errorf("State(%v) = %v, expected food", c, g.State(c))
		}
		// Clear it again so the next round samples the same board.
		g.SetState(c, grid.Empty)
	}

	if g.Count(grid.SnakeBody) != InitialLength {
		t.Error("Spawn() must never overwrite the snake")
	}
}

func TestSpawnSingleEmptyCell(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		g, _ := grid.New(6, 7)
		last := g.MustAt(3, 4)
		g.Each(func(c grid.Coord, s grid.CellState) {
			if s == grid.Empty && c != last {
				g.SetState(c, grid.SnakeBody)
			}
		})

		f := newTestSpawner(g, NewSession(), seed, 1)
		c, err := f.Spawn()
		if err != nil {
			t.Fatalf("seed %d: Spawn() failed: %v", seed, err)
		}
		if c != last {
			t.Errorf("seed %d: Spawn() = %v, expected %v", seed, c, last)
		}
		if g.Count(grid.Empty) != 0 || g.Count(grid.Food) != 1 {
			t.Errorf("seed %d: expected exactly one food and no empty cells", seed)
		}
	}
}

func TestSpawnFullGrid(t *testing.T) {
	g, _ := grid.New(4, 4)
	g.Each(func(c grid.Coord, s grid.CellState) {
		if s == grid.Empty {
			g.SetState(c, grid.SnakeBody)
		}
	})

	f := newTestSpawner(g, NewSession(), 1, 1)
	if _, err := f.Spawn(); !errors.Is(err, ErrNoFreeCell) {
		t.Errorf("Spawn() on a full grid = %v, expected ErrNoFreeCell", err)
	}
	if _, ok := f.TrySpawn(); ok {
		t.Error("TrySpawn() on a full grid should place nothing")
	}
}

func TestSpawnSkipsBreachedBorder(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		g, _ := grid.New(5, 6)
		breach := g.MustAt(2, 0)
		last := g.MustAt(2, 3)
		g.SetState(breach, grid.Empty)
		g.Each(func(c grid.Coord, s grid.CellState) {
			if s == grid.Empty && !g.IsBorder(c) && c != last {
				g.SetState(c, grid.SnakeBody)
			}
		})

		f := newTestSpawner(g, NewSession(), seed, 1)
		c, err := f.Spawn()
		if err != nil {
			t.Fatalf("seed %d: Spawn() failed: %v", seed, err)
		}
		if c != last {
			t.Errorf("seed %d: Spawn() = %v, expected %v", seed, c, last)
		}
		if g.State(breach) != grid.Empty {
			t.Errorf("seed %d: breached border cell received food", seed)
		}

		// Only the breached border cell is left empty now.
		if _, err := f.Spawn(); !errors.Is(err, ErrNoFreeCell) {
			t.Errorf("seed %d: Spawn() with only a border cell free = %v, expected ErrNoFreeCell", seed, err)
		}
		if g.State(breach) != grid.Empty {
			t.Errorf("seed %d: breached border cell received food", seed)
		}
	}
}

func TestTrySpawnRespectsMaxFood(t *testing.T) {
	g, session, _ := newTestSnake(t, 20, 20, 10, 10, grid.Left)

	single := newTestSpawner(g, session, 7, 1)
	if _, ok := single.TrySpawn(); !ok {
		t.Fatal("first TrySpawn() should place food")
	}
	if _, ok := single.TrySpawn(); ok {
		t.Error("TrySpawn() should not exceed one outstanding food item")
	}

	multi := newTestSpawner(g, session, 7, 3)
	multi.TrySpawn()
	multi.TrySpawn()
	multi.TrySpawn()
	if g.Count(grid.Food) != 3 {
		t.Errorf("Count(Food) = %d, expected 3", g.Count(grid.Food))
	}
}

func TestTrySpawnAfterSessionEnds(t *testing.T) {
	g, session, _ := newTestSnake(t, 20, 20, 10, 10, grid.Left)
	f := newTestSpawner(g, session, 3, 1)

	session.end(Lost)
	if _, ok := f.TrySpawn(); ok {
		t.Error("TrySpawn() should do nothing once the session is over")
	}
	if g.Count(grid.Food) != 0 {
		t.Error("no food expected after the session ended")
	}
}

func TestNextDelayRange(t *testing.T) {
	g, _ := grid.New(5, 5)
	f := newTestSpawner(g, NewSession(), 11, 1)

	seenMin, seenMax := false, false
	for range 20000 {
		d := f.NextDelay()
		if d < 2*time.Second || d > 6*time.Second {
			t.Fatalf("NextDelay() = %v, outside [2s, 6s]", d)
		}
		if d%time.Millisecond != 0 {
			t.Fatalf("NextDelay() = %v, expected millisecond resolution", d)
		}
		seenMin = seenMin || d == 2*time.Second
		seenMax = seenMax || d == 6*time.Second
	}
	if !seenMin || !seenMax {
		t.Errorf("both ends should be reachable: min=%v max=%v", seenMin, seenMax)
	}

	fixed := NewFoodSpawner(g, NewSession(), rand.New(rand.NewSource(1)), time.Second, time.Second, 1)
	if d := fixed.NextDelay(); d != time.Second {
		t.Errorf("NextDelay() with min == max = %v, expected 1s", d)
	}
}

func TestScheduleNextRecurrence(t *testing.T) {
	g, session, _ := newTestSnake(t, 20, 20, 10, 10, grid.Left)
	f := newTestSpawner(g, session, 5, 1)
	clock := &fakeClock{}

	f.ScheduleNext(clock)
	if len(clock.pending) != 1 {
		t.Fatalf("ScheduleNext() queued %d firings, expected 1", len(clock.pending))
	}

	clock.fireNext()
	if g.Count(grid.Food) != 1 {
		t.Errorf("Count(Food) after firing = %d, expected 1", g.Count(grid.Food))
	}
	if len(clock.pending) != 1 {
		t.Fatalf("firing should reschedule exactly once, %d queued", len(clock.pending))
	}

	// Firing with food outstanding keeps the recurrence alive without placing more.
	clock.fireNext()
	if g.Count(grid.Food) != 1 {
		t.Errorf("Count(Food) = %d, expected 1", g.Count(grid.Food))
	}

	for _, d := range clock.delays {
		if d < 2*time.Second || d > 6*time.Second {
			t.Errorf("scheduled delay %v outside [2s, 6s]", d)
		}
	}
}

func TestScheduleNextStopsWhenSessionEnds(t *testing.T) {
	g, session, _ := newTestSnake(t, 20, 20, 10, 10, grid.Left)
	f := newTestSpawner(g, session, 5, 2)
	clock := &fakeClock{}

	f.ScheduleNext(clock)
	clock.fireNext()
	before := g.Count(grid.Food)

	session.end(Lost)

	// The firing already in flight still runs, but nothing follows it.
	if !clock.fireNext() {
		t.Fatal("expected one in-flight firing")
	}
	if len(clock.pending) != 0 {
		t.Errorf("recurrence should stop after the session ends, %d queued", len(clock.pending))
	}
	if g.Count(grid.Food) != before {
		t.Errorf("no food should be placed after the session ends")
	}
}
