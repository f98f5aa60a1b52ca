// Package config provides YAML-based configuration loading for the snake
// game.
package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid   SnakeGrid   `yaml:"grid"`
	Timing SnakeTiming `yaml:"timing"`
	Food   SnakeFood   `yaml:"food"`
	Snake  SnakeStart  `yaml:"snake"`
	Seed   int64       `yaml:"seed"` // 0 = time-based
}

// SnakeGrid defines the board dimensions, border included.
type SnakeGrid struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// SnakeTiming defines the fixed tick period.
type SnakeTiming struct {
	TickMs int `yaml:"tick_ms"`
}

// SnakeFood defines the food spawn schedule.
type SnakeFood struct {
	SpawnDelayMinMs int `yaml:"spawn_delay_min_ms"`
	SpawnDelayMaxMs int `yaml:"spawn_delay_max_ms"`
	MaxOutstanding  int `yaml:"max_outstanding"` // Food items allowed on the board at once
}

// SnakeStart defines the initial snake placement.
type SnakeStart struct {
	Heading string `yaml:"heading"` // up, down, left or right
}

// Tick returns the tick period as a duration.
func (c SnakeConfig) Tick() time.Duration {
	return time.Duration(c.Timing.TickMs) * time.Millisecond
}

// SpawnDelay returns the inclusive spawn delay range.
func (c SnakeConfig) SpawnDelay() (time.Duration, time.Duration) {
	return time.Duration(c.Food.SpawnDelayMinMs) * time.Millisecond,
		time.Duration(c.Food.SpawnDelayMaxMs) * time.Millisecond
}

// Validate checks the configuration for values the game cannot run with.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.Rows < 3 || c.Grid.Cols < 3:
		return fmt.Errorf("%w: grid %dx%d is smaller than 3x3", ErrInvalidConfig, c.Grid.Rows, c.Grid.Cols)
	case c.Timing.TickMs <= 0:
		return fmt.Errorf("%w: tick_ms must be positive, got %d", ErrInvalidConfig, c.Timing.TickMs)
	case c.Food.SpawnDelayMinMs < 0:
		return fmt.Errorf("%w: spawn_delay_min_ms must not be negative, got %d", ErrInvalidConfig, c.Food.SpawnDelayMinMs)
	case c.Food.SpawnDelayMaxMs < c.Food.SpawnDelayMinMs:
		return fmt.Errorf("%w: spawn delay range [%d, %d] is empty", ErrInvalidConfig, c.Food.SpawnDelayMinMs, c.Food.SpawnDelayMaxMs)
	case c.Food.MaxOutstanding < 1:
		return fmt.Errorf("%w: max_outstanding must be at least 1, got %d", ErrInvalidConfig, c.Food.MaxOutstanding)
	}

	switch c.Snake.Heading {
	case "up", "down", "left", "right":
	default:
		return fmt.Errorf("%w: unknown heading %q", ErrInvalidConfig, c.Snake.Heading)
	}

	if !c.startFits() {
		return fmt.Errorf("%w: grid %dx%d has no room for a snake heading %s from the center",
			ErrInvalidConfig, c.Grid.Rows, c.Grid.Cols, c.Snake.Heading)
	}
	return nil
}

// startLength is the snake length at the start of a game.
const startLength = 3

// startFits reports whether the starting snake, head at the center and body
// trailing away from the heading, lies inside the border.
func (c SnakeConfig) startFits() bool {
	row, col := c.Grid.Rows/2, c.Grid.Cols/2
	tail := startLength - 1

	switch c.Snake.Heading {
	case "up":
		row += tail
	case "down":
		row -= tail
	case "left":
		col += tail
	case "right":
		col -= tail
	}
	return row >= 1 && row <= c.Grid.Rows-2 && col >= 1 && col <= c.Grid.Cols-2
}

// YAML renders the configuration in the same layout as the default file.
func (c SnakeConfig) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
