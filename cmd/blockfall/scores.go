package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuigames/blockfall/internal/registry"
	"github.com/tuigames/blockfall/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game.

Examples:
  blockfall scores blocks`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blockfall list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blockfall play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "Rank", "Score", "Level", "Lines", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-6d  %s\n", i+1, entry.Score, entry.Level, entry.Lines, dateStr)
	}

	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
