package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/horde-arcade/internal/core"
)

func TestLinearRamp(t *testing.T) {
	r := LinearRamp{Ramp: 30}
	assert.Equal(t, 1.0, r.Multiplier(0))
	assert.Equal(t, 2.0, r.Multiplier(30))
	assert.Equal(t, 3.0, r.Multiplier(60))

	assert.Equal(t, 1.0, LinearRamp{}.Multiplier(120), "no ramp keeps the base rate")
}

func TestSpawnerFiresOnceAtEffectiveInterval(t *testing.T) {
	w := newTestWorld(nil)
	w.Time = 30

	emitted := 0
	s := &Spawner{
		Name:       "boats",
		Interval:   2.0,
		Difficulty: LinearRamp{Ramp: 30},
		Emit:       func(_ *World, n int) { emitted += n },
	}

	require.Equal(t, 2.0, s.Multiplier(w.Time))
	require.Equal(t, 1.0, s.EffectiveInterval(w.Time))

	fired := 0
	for i := 0; i < 4; i++ {
		if s.Update(w, 0.25) {
			fired++
		}
	}

	assert.Equal(t, 1, fired)
	assert.Equal(t, 1, emitted)
	assert.Equal(t, 0.0, s.Timer)
}

func TestSpawnerFiresAfterTenTenthSteps(t *testing.T) {
	w := newTestWorld(nil)
	s := &Spawner{Interval: 1.0}

	for i := 1; i <= 9; i++ {
		require.False(t, s.Update(w, 0.1), "step %d", i)
	}
	assert.True(t, s.Update(w, 0.1), "0.1 s steps summing to the interval fire on the tenth")
	assert.Equal(t, 0.0, s.Timer)
}

func TestSpawnerDoesNotFireEarly(t *testing.T) {
	w := newTestWorld(nil)
	s := &Spawner{Interval: 1.0}

	for i := 0; i < 3; i++ {
		assert.False(t, s.Update(w, 0.25))
	}
	assert.Equal(t, 0.75, s.Timer)
}

func TestSpawnerCountNeverNegative(t *testing.T) {
	w := newTestWorld(nil)
	calls := 0
	s := &Spawner{
		Interval: 0.1,
		Count:    func(float64, float64) int { return -3 },
		Emit:     func(*World, int) { calls++ },
	}

	assert.True(t, s.Update(w, 0.1))
	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, s.Fired)
}

func TestSpawnerSchedule(t *testing.T) {
	w := newTestWorld(nil)
	s := &Spawner{
		Interval: 3,
		Schedule: func(gameTime float64) float64 { return 0.5 },
	}
	assert.Equal(t, 0.5, s.EffectiveInterval(w.Time))
}

func TestSpawnerRunsInsideStep(t *testing.T) {
	w := newTestWorld(nil)
	w.AddSpawner(&Spawner{
		Name:     "rocks",
		Interval: 0.5,
		Emit: func(w *World, n int) {
			for i := 0; i < n; i++ {
				w.Spawn(&Entity{Kind: KindHazard, Pos: core.V(10, 10), Radius: 5})
			}
		},
	})

	for i := 0; i < 10; i++ {
		w.Step(0.1, core.NewInputFrame())
	}

	assert.Equal(t, 2, w.Count(KindHazard))
	assert.NotNil(t, w.Spawner("rocks"))
	assert.Nil(t, w.Spawner("missing"))
}

func TestEdgePoint(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := Bounds{W: 1200, H: 800}

	left := EdgePoint(rng, b, SideLeft, 20)
	assert.Equal(t, -20.0, left.X())
	assert.True(t, left.Y() >= 0 && left.Y() <= b.H)

	right := EdgePoint(rng, b, SideRight, 20)
	assert.Equal(t, 1220.0, right.X())

	top := EdgePoint(rng, b, SideTop, 20)
	assert.Equal(t, -20.0, top.Y())

	bottom := EdgePoint(rng, b, SideBottom, 20)
	assert.Equal(t, 820.0, bottom.Y())
}

func TestFormationIsCentred(t *testing.T) {
	b := Bounds{W: 1280, H: 720}
	slots := Formation(b, 60, 80, 0.3, 0.8)

	// 3 rows of 17 columns.
	require.Len(t, slots, 51)
	first, last := slots[0], slots[len(slots)-1]
	assert.Equal(t, 80.0, first.Y())
	assert.Equal(t, 200.0, last.Y())
	assert.InDelta(t, b.W-first.X(), last.X(), 1e-9, "grid is symmetric about the centre")

	assert.Empty(t, Formation(b, 0, 80, 0.3, 0.8))
}
