// Package snake implements the game-state engine of a grid snake game:
// the snake's movement and collision rules, the food spawner and the fixed
// tick loop. Rendering, input devices and timers belong to the caller.
package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake/grid"
)

// ErrInvalidConfiguration is returned by New when the game cannot be built
// from its Config.
var ErrInvalidConfiguration = errors.New("snake: invalid configuration")

// Config holds the construction-time parameters of a game.
type Config struct {
	Rows, Cols    int
	Tick          time.Duration
	SpawnDelayMin time.Duration
	SpawnDelayMax time.Duration
	MaxFood       int
	Heading       grid.Direction
	Seed          int64
}

// DefaultConfig returns the classic setup: 40x50 board, 100ms ticks,
// food every 2-6 seconds, snake heading left from the center.
func DefaultConfig() Config {
	return Config{
		Rows:          40,
		Cols:          50,
		Tick:          DefaultTick,
		SpawnDelayMin: 2 * time.Second,
		SpawnDelayMax: 6 * time.Second,
		MaxFood:       1,
		Heading:       grid.Left,
	}
}

// ConfigFrom converts a loaded YAML configuration.
func ConfigFrom(sc config.SnakeConfig) (Config, error) {
	if err := sc.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	heading, err := grid.ParseDirection(sc.Snake.Heading)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	lo, hi := sc.SpawnDelay()
	return Config{
		Rows:          sc.Grid.Rows,
		Cols:          sc.Grid.Cols,
		Tick:          sc.Tick(),
		SpawnDelayMin: lo,
		SpawnDelayMax: hi,
		MaxFood:       sc.Food.MaxOutstanding,
		Heading:       heading,
		Seed:          sc.Seed,
	}, nil
}

// Game ties a grid, a session, a snake, a spawner and a loop together.
// Every method takes the same lock, so ticks, spawns and direction changes
// may come from different goroutines.
type Game struct {
	mu      sync.Mutex
	cfg     Config
	grid    *grid.Grid
	session *Session
	snake   *Snake
	spawner *FoodSpawner
	loop    *Loop
}

// New builds a running game. The snake starts in the middle of the board.
func New(cfg Config) (*Game, error) {
	if cfg.SpawnDelayMin < 0 || cfg.SpawnDelayMax < cfg.SpawnDelayMin {
		return nil, fmt.Errorf("%w: spawn delay range [%v, %v]", ErrInvalidConfiguration, cfg.SpawnDelayMin, cfg.SpawnDelayMax)
	}

	g, err := grid.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	session := NewSession()
	s, err := NewSnake(g, session, g.MustAt(cfg.Rows/2, cfg.Cols/2), cfg.Heading)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	return &Game{
		cfg:     cfg,
		grid:    g,
		session: session,
		snake:   s,
		spawner: NewFoodSpawner(g, session, rng, cfg.SpawnDelayMin, cfg.SpawnDelayMax, cfg.MaxFood),
		loop:    NewLoop(s, session, cfg.Tick),
	}, nil
}

// Config returns the configuration the game was built with.
func (g *Game) Config() Config {
	return g.cfg
}

// Period returns the tick period.
func (g *Game) Period() time.Duration {
	return g.loop.Period()
}

// SetDirection requests a heading change for the next tick.
func (g *Game) SetDirection(d grid.Direction) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.snake.SetDirection(d)
}

// Tick advances the game by one step.
func (g *Game) Tick() Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loop.Tick()
}

// TrySpawn places food now if the spawner allows it.
func (g *Game) TrySpawn() (grid.Coord, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.spawner.TrySpawn()
}

// ScheduleSpawns starts the self-rescheduling food recurrence on s.
// Each firing runs under the game lock; the recurrence stops on its own
// once the session ends.
func (g *Game) ScheduleSpawns(s Scheduler) {
	locked := SchedulerFunc(func(d time.Duration, fire func()) {
		s.After(d, func() {
			g.mu.Lock()
			defer g.mu.Unlock()
			fire()
		})
	})

	g.mu.Lock()
	defer g.mu.Unlock()
	g.spawner.ScheduleNext(locked)
}

// Running reports whether the session is still in progress.
func (g *Game) Running() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.Running()
}

// FoodEaten returns the food counter.
func (g *Game) FoodEaten() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.FoodEaten()
}

// Outcome returns the most recent step outcome.
func (g *Game) Outcome() Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.Outcome()
}
