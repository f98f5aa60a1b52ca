package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit int
	flagBrowse      bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best results",
	Long: `Display the best recorded games by food eaten.

Examples:
  snake scores
  snake scores --limit 25
  snake scores --browse     # Interactive table
  snake scores --clear      # Delete every recorded result`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse results in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			return err
		}
		fmt.Println("All results deleted.")
		return nil
	}

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, currentPlayer(), width, height)
	}

	results, err := store.TopResults(flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("Snake - Best Results")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-5s  %-6s  %s\n", "Rank", "Player", "Food", "Result", "Date")
	fmt.Printf("  %-4s  %-12s  %-5s  %-6s  %s\n", "----", "------", "----", "------", "----")

	for i, r := range results {
		fmt.Printf("  %-4d  %-12s  %-5d  %-6s  %s\n",
			i+1, r.Player, r.FoodEaten, r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Escapes: %d  Best: %d  Average: %.1f\n",
			stats.Games, stats.Wins, stats.BestFood, stats.AvgFood)
	}
	return nil
}
