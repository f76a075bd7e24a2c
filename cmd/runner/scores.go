package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

// scoresGameID is the key runner scores are stored under.
const scoresGameID = "runner"

var (
	flagRecent int
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 high scores, or the latest runs with --recent.

Examples:
  runner scores
  runner scores --recent 20
  runner scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 0, "Show the N most recent runs instead of top scores")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded high scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(scoresGameID); err != nil {
			return err
		}
		fmt.Println("High scores cleared.")
		return nil
	case flagRecent > 0:
		return printRecentRuns(store, flagRecent)
	}

	scores, err := store.TopScores(scoresGameID, 10)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Runner")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(scoresGameID); err == nil {
		fmt.Printf("Best: %d   Games: %d   Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func printRecentRuns(store *storage.Store, limit int) error {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Println("Recent Runs - Runner")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-7s  %-8s  %-6s  %-5s  %-20s  %s\n", "Score", "Time", "Speed", "Jumps", "Seed", "Date")
	fmt.Printf("  %-7s  %-8s  %-6s  %-5s  %-20s  %s\n", "-----", "----", "-----", "-----", "----", "----")

	for _, r := range runs {
		fmt.Printf("  %-7d  %-8s  %-6.0f  %-5d  %-20d  %s\n",
			r.Score,
			fmt.Sprintf("%.1fs", r.Elapsed),
			r.MaxSpeed,
			r.Jumps,
			r.Seed,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return nil
}
