package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/horde-arcade/internal/core"
	"github.com/vovakirdan/horde-arcade/internal/platform/tui"
	"github.com/vovakirdan/horde-arcade/internal/registry"
	"github.com/vovakirdan/horde-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Pick a game with the arrows and Enter, or press its number. Leaving a
game brings you back here.

Controls:
  Up/Down/j/k  - Move the cursor
  Enter/Space  - Play the game under the cursor
  1-9          - Play game N
  Tab          - High scores and recent runs
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --difficulty hard
  arcade menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	// Reject a bad preset before the first screen is drawn.
	if err := configureGame(""); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	for {
		picked, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = picked.Config

		switch {
		case picked.Quit:
			return nil

		case picked.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil || !back {
				return err
			}

		case picked.GameID != "":
			if err := playFromMenu(picked.GameID, store, cfg); err != nil {
				logger.Error("game failed", "game", picked.GameID, "error", err)
			}

		default:
			return nil
		}
	}
}

// playFromMenu runs one game and returns to the menu afterwards. Each game
// gets a fresh seed unless --seed pinned one.
func playFromMenu(gameID string, store *storage.Store, cfg core.RuntimeConfig) error {
	if err := configureGame(gameID); err != nil {
		return err
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if flagSeed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger.Debug("starting game", "game", gameID, "seed", cfg.Seed)
	return tui.Run(game, store, cfg)
}
