package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcadegrid/xonix-tui/internal/registry"
	"github.com/arcadegrid/xonix-tui/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show best runs for a game",
	Long: `Display the top 10 runs for the specified game, ranked by
claimed territory.

Examples:
  xonix scores xonix`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'xonix list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.TopResults(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'xonix play %s' to set the first record!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Territory", "Outcome", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "---------", "-------", "----")

	for i, entry := range results {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %8.1f%%  %-8s  %s\n", i+1, entry.Percent, entry.Outcome, dateStr)
	}

	fmt.Println()
	best, err := store.BestPercent(gameID)
	if err == nil {
		fmt.Printf("Best: %.1f%%\n", best)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Printf("Games: %d  Wins: %d  Average: %.1f%%\n",
			stats.GamesCount, stats.Wins, stats.AvgPercent)
	}
}
