package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD/HJKL - Steer
  P/Space          - Pause
  R                - Restart (after the game ends)
  ?                - Show all keys
  Q/Esc/Ctrl+C     - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml
  snake play --rows 20 --cols 30 --tick 80ms`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}

	return tui.Run(cfg, tui.Options{
		Player: currentPlayer(),
		Width:  width,
		Height: height,
		Logger: logger,
		Store:  store,
	})
}
