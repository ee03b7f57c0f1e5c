package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tuigames/blockfall/internal/core"
	"github.com/tuigames/blockfall/internal/games/blocks"
	"github.com/tuigames/blockfall/internal/platform/tui"
	"github.com/tuigames/blockfall/internal/registry"
	"github.com/tuigames/blockfall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right/h/l  - Move piece
  Down/j          - Soft drop
  Up/x            - Rotate clockwise
  Z               - Rotate counter-clockwise
  Space           - Hard drop
  P               - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Slower gravity
  normal - Standard gravity
  hard   - Faster gravity

Examples:
  blockfall play blocks
  blockfall play blocks --difficulty hard
  blockfall play blocks --config ./my-blocks.yaml
  blockfall play blocks --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blockfall list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	if gameID == "blocks" {
		blocks.SetConfigPath(flagConfig)
		blocks.SetDifficultyPreset(flagDifficulty)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
