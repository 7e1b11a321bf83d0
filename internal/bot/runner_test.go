package bot_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/horde-arcade/internal/bot"
	"github.com/vovakirdan/horde-arcade/internal/games/extraction"
	"github.com/vovakirdan/horde-arcade/internal/games/survivors"
)

func TestPlayIsDeterministic(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	a, err := bot.Play(context.Background(), survivors.New(), 7, 900)
	require.NoError(t, err)
	b, err := bot.Play(context.Background(), survivors.New(), 7, 900)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, "survivors", a.Game)
	assert.LessOrEqual(t, a.Steps, 900)
	assert.Greater(t, a.Elapsed, 0.0)
}

func TestPlayStopsAtStepLimit(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := bot.Play(context.Background(), extraction.New(), 3, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, out.Steps)
	assert.False(t, out.Ended, "a flight cannot land in ten steps")
	assert.NotZero(t, out.Hash)
}

func TestPlayLandsExtraction(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	won := 0
	for seed := int64(0); seed < 4; seed++ {
		out, err := bot.Play(context.Background(), extraction.New(), seed, 60*60)
		require.NoError(t, err)
		require.True(t, out.Ended, "seed %d should finish within a minute", seed)
		if out.Won {
			won++
			assert.Positive(t, out.Score, "seed %d", seed)
		}
	}
	assert.Positive(t, won, "the pilot should land at least once")
}

func TestPlayHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bot.Play(ctx, survivors.New(), 1, 100)
	require.ErrorIs(t, err, context.Canceled)
}
