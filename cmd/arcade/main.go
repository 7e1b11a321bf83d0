// arcade is a terminal arcade of horde-survival games built on one shared
// simulation core.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade sim <game>        - Play headless sessions with the autopilot
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/horde-arcade/internal/config"
	"github.com/vovakirdan/horde-arcade/internal/games/escape"
	"github.com/vovakirdan/horde-arcade/internal/games/extraction"
	"github.com/vovakirdan/horde-arcade/internal/games/invaders"
	"github.com/vovakirdan/horde-arcade/internal/games/survivors"
	"github.com/vovakirdan/horde-arcade/internal/games/wings"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Game flags shared by play, menu and sim
	flagConfig     string
	flagDifficulty string
)

// logger is configured from --log-level before any command runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "arcade",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Horde Arcade - survive the swarm in your terminal",
	Long: `Horde Arcade is a terminal gaming platform with five action games
sharing one simulation core: escape, extraction, invaders, survivors and wings.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  sim      - Run headless sessions with the autopilot

Examples:
  arcade list
  arcade play survivors
  arcade menu
  arcade serve --ssh :2222
  arcade scores wings
  arcade sim invaders --runs 20`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// addGameFlags registers --config and --difficulty on cmd.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// configureGame hands the config path and difficulty flags to a game
// package before instances are created.
func configureGame(gameID string) error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	switch gameID {
	case "escape":
		escape.SetConfigPath(flagConfig)
		escape.SetDifficultyPreset(flagDifficulty)
	case "extraction":
		extraction.SetConfigPath(flagConfig)
		extraction.SetDifficultyPreset(flagDifficulty)
	case "invaders":
		invaders.SetConfigPath(flagConfig)
		invaders.SetDifficultyPreset(flagDifficulty)
	case "survivors":
		survivors.SetConfigPath(flagConfig)
		survivors.SetDifficultyPreset(flagDifficulty)
	case "wings":
		wings.SetConfigPath(flagConfig)
		wings.SetDifficultyPreset(flagDifficulty)
	}
	return nil
}
