package bot

import (
	"context"
	"fmt"

	"github.com/vovakirdan/horde-arcade/internal/core"
	"github.com/vovakirdan/horde-arcade/internal/registry"
)

// checkEvery is how many steps run between context checks.
const checkEvery = 600

// Outcome summarizes one headless session.
type Outcome struct {
	Game    string
	Seed    int64
	Score   int
	Elapsed float64
	Won     bool
	Ended   bool // false when the step limit cut the session short
	Steps   int
	Hash    uint64 // snapshot hash of the final step
}

// Play runs one session of g with a pilot until it ends or maxSteps steps
// have run. A maxSteps of zero or less means no limit.
func Play(ctx context.Context, g registry.Game, seed int64, maxSteps int) (Outcome, error) {
	runtime := core.DefaultConfig()
	runtime.Seed = seed
	g.Reset(runtime)

	pilot := New(g.ID(), seed)
	out := Outcome{Game: g.ID(), Seed: seed}

	for maxSteps <= 0 || out.Steps < maxSteps {
		if out.Steps%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return out, fmt.Errorf("bot: %s seed %d: %w", g.ID(), seed, err)
			}
		}
		res := g.Step(pilot.Next(g.Snapshot()))
		out.Steps++
		if res.State.Ended() {
			break
		}
	}

	st := g.State()
	out.Score = st.Score
	out.Elapsed = st.Elapsed
	out.Won = st.Won
	out.Ended = st.Ended()
	out.Hash = g.Snapshot().Hash()
	return out, nil
}
