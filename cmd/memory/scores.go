package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/registry"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var (
	flagScoresRun   string
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 level scores for a mode (default: memory).

Examples:
  memory scores
  memory scores memory_custom
  memory scores --run 3f2a9c41-77de-4b0e-9a51-0c8e3b7d2f10
  memory scores memory_custom --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "list the levels cleared in one session")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "delete every score of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := string(memory.ModeCampaign)
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'memory list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		err = clearScores(os.Stdout, store, gameID)
	case flagScoresRun != "":
		err = printRun(os.Stdout, store, flagScoresRun)
	default:
		err = printScores(os.Stdout, store, gameID)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScores(w io.Writer, store *storage.Store, gameID string) error {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", registry.Title(gameID))
	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintf(w, "\nPlay 'memory play %s' and clear a level to set the first high score!\n", gameID)
		return nil
	}

	printScoreRows(w, scores)
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintf(w, "\nBest: %d  |  Levels cleared: %d  |  Furthest level: %d\n",
			stats.HighScore, stats.GamesCount, stats.BestLevel)
	}
	return nil
}

func printRun(w io.Writer, store *storage.Store, runID string) error {
	scores, err := store.RunScores(runID)
	if err != nil {
		return err
	}
	if len(scores) == 0 {
		fmt.Fprintf(w, "No levels recorded for run %s.\n", runID)
		return nil
	}

	fmt.Fprintf(w, "Run %s - %s\n\n", runID, registry.Title(scores[0].GameID))
	printScoreRows(w, scores)
	best := 0
	for _, e := range scores {
		best = max(best, e.Score)
	}
	fmt.Fprintf(w, "\nCleared %d levels, best score %d\n", len(scores), best)
	return nil
}

func clearScores(w io.Writer, store *storage.Store, gameID string) error {
	n, err := store.ClearScores(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Removed %d scores from %s.\n", n, registry.Title(gameID))
	return nil
}

func printScoreRows(w io.Writer, scores []storage.ScoreEntry) {
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(w, "  %-4d  %-8d  %-5d  %s\n", i+1, e.Score, e.Level, e.CreatedAt.Format("2006-01-02 15:04"))
	}
}
