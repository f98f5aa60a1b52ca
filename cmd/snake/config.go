package main

import (
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, after the config
file search and any command line overrides, as YAML.

The output can be saved and edited:
  snake config > ~/.snake/configs/snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	sc, err := loadSnakeConfig()
	if err != nil {
		return err
	}

	data, err := sc.YAML()
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

// loadSnakeConfig loads the YAML config and applies flag overrides.
func loadSnakeConfig() (config.SnakeConfig, error) {
	sc, err := config.LoadSnake(flagConfig)
	if err != nil {
		return sc, err
	}

	if flagSeed != 0 {
		sc.Seed = flagSeed
	}
	if flagRows != 0 {
		sc.Grid.Rows = flagRows
	}
	if flagCols != 0 {
		sc.Grid.Cols = flagCols
	}
	if flagTick != "" {
		d, err := time.ParseDuration(flagTick)
		if err != nil {
			return sc, fmt.Errorf("invalid --tick: %w", err)
		}
		sc.Timing.TickMs = int(d / time.Millisecond)
	}

	return sc, sc.Validate()
}

// loadGameConfig returns the engine configuration for this invocation.
func loadGameConfig() (snake.Config, error) {
	sc, err := loadSnakeConfig()
	if err != nil {
		return snake.Config{}, err
	}
	return snake.ConfigFrom(sc)
}

// newLogger returns a logger for the game, or nil when --log-file is unset.
// The terminal belongs to the game, so logs never go to stderr during play.
func newLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return nil, func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }, nil
}

// currentPlayer names the local player for saved results.
func currentPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
