package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/horde-arcade/internal/registry"
	"github.com/vovakirdan/horde-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game registered in the arcade with its best score so far.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Best scores are optional; a missing database just leaves them blank.
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, err = store.GetAllGamesStats()
		if err != nil {
			logger.Debug("could not read game stats", "error", err)
		}
		store.Close()
	} else {
		logger.Debug("could not open scores database", "path", flagDBPath, "error", err)
	}

	fmt.Println("Available games:")
	fmt.Println()

	t := newTable("ID", "Title", "Best", "About")
	for _, g := range games {
		best := "-"
		if s, ok := stats[g.ID]; ok && s.GamesCount > 0 {
			best = fmt.Sprint(s.HighScore)
		}
		t.Row(g.ID, g.Title, best, g.Summary)
	}
	fmt.Println(t)

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}

// newTable returns a borderless table with a bold header row, the layout
// shared by the listing commands.
func newTable(headers ...string) *table.Table {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.HiddenBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}
