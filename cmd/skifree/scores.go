package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-skifree/internal/games/skifree"
	"github.com/vovakirdan/tui-skifree/internal/platform/tui"
	"github.com/vovakirdan/tui-skifree/internal/registry"
	"github.com/vovakirdan/tui-skifree/internal/storage"
)

var (
	flagTable bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the best runs",
	Long: `Display the best runs for a game (default skifree).

Examples:
  skifree scores
  skifree scores --table
  skifree scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagTable, "table", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := skifree.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'skifree list' to see available games)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	title := game.Title()

	store, err := storage.Open(appConfig.Scores.DB)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		stderrLog.Info("runs cleared", "game", gameID)
		fmt.Printf("Cleared all runs for %s.\n", title)
		return nil
	}

	if flagTable {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	runs, err := store.TopRuns(gameID, appConfig.Scores.Top)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'skifree play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-9s  %-6s  %s\n", "Rank", "Score", "Distance", "Style", "Date")
	fmt.Printf("  %-4s  %-8s  %-9s  %-6s  %s\n", "----", "-----", "--------", "-----", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-9s  %-6d  %s\n", i+1, r.Score, fmt.Sprintf("%dm", r.Distance), r.Style, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Runs: %d   Average: %.0f   Longest: %dm\n",
			stats.HighScore, stats.RunsCount, stats.AvgScore, stats.BestDistance)
	}
	return nil
}
