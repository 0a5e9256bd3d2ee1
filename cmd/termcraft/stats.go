package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"termcraft/internal/registry"
	"termcraft/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats <world>",
	Short: "Show session stats for a world",
	Long: `Display the top 10 sessions and aggregate totals for the specified world.

Examples:
  termcraft stats craft
  termcraft stats farm`,
	Args: cobra.ExactArgs(1),
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown world %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'termcraft list' to see available worlds.")
		os.Exit(1)
	}

	// Get world title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating world: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	sessions, err := store.TopSessions(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Session Stats - %s\n", title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'termcraft play %s' to log the first session!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %-7s  %-8s  %s\n",
		"Rank", "Score", "Placed", "Mined", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-7s  %-8s  %s\n",
		"----", "-----", "------", "-----", "----", "----")

	for i, sess := range sessions {
		dateStr := sess.CreatedAt.Format("2006-01-02 15:04")
		timeStr := fmt.Sprintf("%dm%02ds", sess.DurationSecs/60, sess.DurationSecs%60)
		fmt.Printf("  %-4d  %-8d  %-7d  %-7d  %-8s  %s\n",
			i+1, sess.Score, sess.BlocksPlaced, sess.BlocksBroken, timeStr, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil && stats.Sessions > 0 {
		fmt.Printf("Sessions: %d   Best: %d   Avg: %.1f   Placed: %d   Mined: %d\n",
			stats.Sessions, stats.BestScore, stats.AvgScore,
			stats.BlocksPlaced, stats.BlocksBroken)
	}
}
