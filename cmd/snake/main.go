// snake is a terminal snake game.
//
// Usage:
//
//	snake                    - Play a game (same as "snake play")
//	snake play               - Play a game
//	snake serve              - Start SSH server for remote play
//	snake scores             - Show the best results
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path> - Load a YAML config file
//	--seed <value>  - Set RNG seed for reproducible food placement
//	--rows, --cols  - Override the board size
//	--tick <dur>    - Override the tick period
//	--db <path>     - Set database path (default: ~/.snake/scores.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagRows    int
	flagCols    int
	flagTick    string
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("snake failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Steer the snake around a walled board, eat the food that appears
every few seconds, and don't run into a wall or yourself.

Available commands:
  play     - Play a game (default)
  serve    - Start SSH server for remote play
  scores   - View the best results
  config   - Print the effective configuration

Examples:
  snake
  snake play --rows 20 --cols 30
  snake serve --ssh :2222
  snake scores --browse`,
	SilenceUsage: true,
	RunE:         runPlay,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagDebug {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.IntVar(&flagRows, "rows", 0, "Board rows including the wall (overrides config)")
	pf.IntVar(&flagCols, "cols", 0, "Board columns including the wall (overrides config)")
	pf.StringVar(&flagTick, "tick", "", "Tick period such as 100ms (overrides config)")
	pf.StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	pf.StringVar(&flagLogFile, "log-file", "", "Write game logs to this file")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
