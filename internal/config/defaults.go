package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration:
// a 40x50 board, 100ms ticks and food every 2-6 seconds.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Rows: 40,
			Cols: 50,
		},
		Timing: SnakeTiming{
			TickMs: 100,
		},
		Food: SnakeFood{
			SpawnDelayMinMs: 2000,
			SpawnDelayMaxMs: 6000,
			MaxOutstanding:  1,
		},
		Snake: SnakeStart{
			Heading: "left",
		},
	}
}
