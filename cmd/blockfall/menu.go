package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tuigames/blockfall/internal/core"
	"github.com/tuigames/blockfall/internal/games/blocks"
	"github.com/tuigames/blockfall/internal/platform/tui"
	"github.com/tuigames/blockfall/internal/registry"
	"github.com/tuigames/blockfall/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Blockfall with a game picker menu",
	Long: `Start Blockfall in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - High scores
  Q            - Quit

Examples:
  blockfall menu
  blockfall menu --fps 30
  blockfall menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		if gameID == "blocks" {
			blocks.SetConfigPath(flagConfig)
			blocks.SetDifficultyPreset(flagDifficulty)
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each game
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
