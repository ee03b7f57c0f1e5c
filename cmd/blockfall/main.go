// blockfall is a terminal falling-block puzzle game.
//
// Usage:
//
//	blockfall list              - List available games
//	blockfall play <game>       - Play a game
//	blockfall menu              - Start menu to pick games interactively
//	blockfall serve             - Start SSH server for remote play
//	blockfall scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.blockfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/tuigames/blockfall/internal/games/blocks"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - falling-block puzzle in your terminal",
	Long: `Blockfall is a terminal falling-block puzzle game: stack the pieces,
clear lines, and chase a high score as gravity speeds up.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  blockfall play blocks
  blockfall menu
  blockfall serve --ssh :2222
  blockfall scores blocks`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
