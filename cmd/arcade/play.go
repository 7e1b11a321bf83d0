package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/horde-arcade/internal/core"
	"github.com/vovakirdan/horde-arcade/internal/platform/tui"
	"github.com/vovakirdan/horde-arcade/internal/registry"
	"github.com/vovakirdan/horde-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  WASD/Arrows  - Move (extraction: Up/Space thrusts)
  Space        - Special attack (wings)
  1/2/3        - Pick an upgrade when offered
  P/Esc        - Pause
  B/Esc        - Back (when paused or over)
  R            - Restart (after the session ends)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Difficulty ramps half as fast
  normal - Default ramp
  hard   - Starts as if 30 seconds had passed
  fixed  - No progression, the multiplier stays at 1

Examples:
  arcade play survivors
  arcade play wings --difficulty easy
  arcade play invaders --difficulty hard
  arcade play escape --config ./my-escape.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// terminalConfig sizes a runtime config to the controlling terminal,
// falling back to 80x24.
func terminalConfig() core.RuntimeConfig {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: flagSeed}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	return cfg
}

// openStore opens the scores database. Games run without one, so a
// failure is only logged and yields nil.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	if err := configureGame(gameID); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	logger.Debug("starting game", "game", gameID, "seed", cfg.Seed, "fps", cfg.TickRate)
	return tui.Run(game, store, cfg)
}
