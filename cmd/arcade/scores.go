package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/horde-arcade/internal/core"
	"github.com/vovakirdan/horde-arcade/internal/registry"
	"github.com/vovakirdan/horde-arcade/internal/storage"
)

var (
	flagShowRuns bool
	flagLimit    int
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Print the best scores of a game, or with --runs its most recent
sessions along with their seeds and final state hashes. Runs recorded by
'arcade sim' reproduce with 'arcade sim <game> --runs 1 --seed <seed>'
and the same --minutes.

Examples:
  arcade scores survivors
  arcade scores wings --runs --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagShowRuns, "runs", false, "Show recent runs instead of high scores")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Rows to show")
}

func runScores(_ *cobra.Command, args []string) error {
	info, ok := registry.Info(args[0])
	if !ok {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagShowRuns {
		return printRuns(store, info)
	}

	scores, err := store.TopScores(info.ID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", info.Title)
	if len(scores) == 0 {
		fmt.Printf("No scores recorded yet. Play 'arcade play %s' to set one.\n", info.ID)
		return nil
	}

	t := newTable("#", "Score", "Date")
	for i, entry := range scores {
		t.Row(fmt.Sprint(i+1), fmt.Sprint(entry.Score), entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println(t)

	stats, err := store.GetGameStats(info.ID)
	if err != nil {
		return err
	}
	fmt.Printf("\n%d played, average %.0f\n", stats.GamesCount, stats.AvgScore)
	return nil
}

func printRuns(store *storage.Store, info registry.GameInfo) error {
	runs, err := store.RecentRuns(info.ID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Recent Runs - %s\n\n", info.Title)
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	t := newTable("Date", "By", "Seed", "Score", "Time", "Result", "Hash")
	for _, r := range runs {
		result := "lost"
		if r.Won {
			result = "won"
		}
		t.Row(
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Source,
			fmt.Sprint(r.Seed),
			fmt.Sprint(r.Score),
			core.FormatClock(r.Elapsed),
			result,
			fmt.Sprintf("%016x", r.Hash),
		)
	}
	fmt.Println(t)
	return nil
}
