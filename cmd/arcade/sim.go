package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/horde-arcade/internal/bot"
	"github.com/vovakirdan/horde-arcade/internal/core"
	"github.com/vovakirdan/horde-arcade/internal/registry"
	"github.com/vovakirdan/horde-arcade/internal/storage"
)

var (
	flagSimRuns     int
	flagSimParallel int
	flagSimMinutes  float64
	flagSimSave     bool
)

var simCmd = &cobra.Command{
	Use:   "sim <game|all>",
	Short: "Play headless sessions with the autopilot",
	Long: `Run batches of sessions without a terminal, driven by the built-in
autopilot. Run i uses seed --seed + i, so a batch is reproducible: the same
seed always produces the same scores and final state hashes.

Examples:
  arcade sim survivors
  arcade sim all --runs 50 --parallel 8
  arcade sim wings --seed 42 --minutes 5 --save`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	addGameFlags(simCmd)
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 10, "Sessions per game")
	simCmd.Flags().IntVar(&flagSimParallel, "parallel", runtime.NumCPU(), "Sessions played at once")
	simCmd.Flags().Float64Var(&flagSimMinutes, "minutes", 10, "Simulated minutes before a session is cut off")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the runs in the scores database")
}

func runSim(cmd *cobra.Command, args []string) error {
	ids := []string{args[0]}
	if args[0] == "all" {
		ids = ids[:0]
		for _, info := range registry.List() {
			ids = append(ids, info.ID)
		}
	}
	for _, id := range ids {
		if !registry.Exists(id) {
			return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", id)
		}
		if err := configureGame(id); err != nil {
			return err
		}
	}
	if flagSimRuns <= 0 {
		return errors.New("--runs must be positive")
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	maxSteps := int(flagSimMinutes * 60 * float64(core.DefaultConfig().TickRate))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	outcomes := make([]bot.Outcome, len(ids)*flagSimRuns)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(flagSimParallel, 1))

	for gi, id := range ids {
		for i := 0; i < flagSimRuns; i++ {
			slot := gi*flagSimRuns + i
			runSeed := seed + int64(i)
			g.Go(func() error {
				game, err := registry.Create(id)
				if err != nil {
					return err
				}
				out, err := bot.Play(ctx, game, runSeed, maxSteps)
				if err != nil {
					logger.Error("run failed", "game", id, "seed", runSeed, "error", err)
					return err
				}
				logger.Info("run finished",
					"game", id,
					"seed", runSeed,
					"score", out.Score,
					"time", core.FormatClock(out.Elapsed),
					"won", out.Won,
					"hash", fmt.Sprintf("%016x", out.Hash),
				)
				outcomes[slot] = out
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if flagSimSave {
		if err := saveOutcomes(outcomes); err != nil {
			return err
		}
	}

	printSummary(ids, outcomes)
	return nil
}

func saveOutcomes(outcomes []bot.Outcome) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, out := range outcomes {
		id, err := store.SaveRun(storage.Run{
			GameID:  out.Game,
			Source:  "sim",
			Seed:    out.Seed,
			Score:   out.Score,
			Elapsed: out.Elapsed,
			Won:     out.Won,
			Hash:    out.Hash,
		})
		if err != nil {
			return err
		}
		logger.Debug("run saved", "id", id, "game", out.Game, "seed", out.Seed)
	}
	return nil
}

func printSummary(ids []string, outcomes []bot.Outcome) {
	t := newTable("Game", "Runs", "Won", "Cut", "Best", "Average", "Avg time")
	for gi, id := range ids {
		runs := outcomes[gi*flagSimRuns : (gi+1)*flagSimRuns]
		var won, cut, best, total int
		var elapsed float64
		for _, out := range runs {
			if out.Won {
				won++
			}
			if !out.Ended {
				cut++
			}
			best = max(best, out.Score)
			total += out.Score
			elapsed += out.Elapsed
		}
		n := float64(len(runs))
		t.Row(id,
			fmt.Sprint(len(runs)),
			fmt.Sprint(won),
			fmt.Sprint(cut),
			fmt.Sprint(best),
			fmt.Sprintf("%.0f", float64(total)/n),
			core.FormatClock(elapsed/n),
		)
	}
	fmt.Println(t)
}
