package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/horde-arcade/internal/core"
)

func catalogue(n int) []Upgrade {
	pool := make([]Upgrade, n)
	for i := range pool {
		id := string(rune('a' + i))
		pool[i] = Upgrade{ID: id, Name: id}
	}
	return pool
}

func TestSelectRandomDistinct(t *testing.T) {
	for _, mode := range []ShuffleMode{ShuffleFisherYates, ShuffleComparator} {
		t.Run(mode.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(7))
			pool := catalogue(9)

			for i := 0; i < 200; i++ {
				picked := SelectRandom(rng, pool, 3, mode)
				require.Len(t, picked, 3)

				seen := map[string]bool{}
				for _, u := range picked {
					assert.False(t, seen[u.ID], "duplicate %s", u.ID)
					seen[u.ID] = true
				}
			}
			assert.Equal(t, "a", pool[0].ID, "pool order is untouched")
		})
	}
}

func TestSelectRandomSmallPool(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Len(t, SelectRandom(rng, catalogue(2), 3, ShuffleFisherYates), 2)
	assert.Empty(t, SelectRandom(rng, nil, 3, ShuffleFisherYates))
	assert.Empty(t, SelectRandom(rng, catalogue(5), 0, ShuffleFisherYates))
}

func TestSelectRandomCoversCatalogue(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	pool := catalogue(6)
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		for _, u := range SelectRandom(rng, pool, 3, ShuffleFisherYates) {
			seen[u.ID] = true
		}
	}
	assert.Len(t, seen, 6)
}

func TestParseShuffleMode(t *testing.T) {
	assert.Equal(t, ShuffleComparator, ParseShuffleMode("comparator"))
	assert.Equal(t, ShuffleComparator, ParseShuffleMode(" Sort "))
	assert.Equal(t, ShuffleFisherYates, ParseShuffleMode("fisher-yates"))
	assert.Equal(t, ShuffleFisherYates, ParseShuffleMode(""))
}

func TestOfferAndChoose(t *testing.T) {
	w := newTestWorld(nil)
	applied := ""
	pool := []Upgrade{
		{ID: "hp", Name: "Max Health Up", Apply: func(w *World) { applied = "hp"; RaiseMaxHealth(50)(w) }},
		{ID: "speed", Name: "Speed", Apply: func(w *World) { applied = "speed"; ScaleSpeed(1.2)(w) }},
	}

	assert.ErrorIs(t, w.Choose(0), ErrNoChoicePending)

	offers := w.OfferUpgrades(pool, DefaultChoices)
	require.Len(t, offers, 2)
	assert.Equal(t, PhaseChoosing, w.Phase())

	assert.ErrorIs(t, w.Choose(2), ErrChoiceOutOfRange)
	assert.ErrorIs(t, w.Choose(-1), ErrChoiceOutOfRange)
	assert.Equal(t, PhaseChoosing, w.Phase())

	require.NoError(t, w.Choose(1))
	assert.Equal(t, offers[1].ID, applied)
	assert.Equal(t, PhaseRunning, w.Phase())
	assert.Empty(t, w.Offers())

	assert.ErrorIs(t, w.Choose(0), ErrNoChoicePending, "only one upgrade per offer")
}

func TestChoosingPausesTheSimulation(t *testing.T) {
	w := newTestWorld(nil)
	rock := w.Spawn(&Entity{Kind: KindHazard, Pos: core.V(100, 100), Vel: core.V(60, 0), Radius: 5})

	w.OfferUpgrades(catalogue(4), 3)
	for i := 0; i < 10; i++ {
		w.Step(0.1, core.NewInputFrame())
	}
	assert.Equal(t, 100.0, rock.Pos.X())
	assert.Equal(t, 0.0, w.Time)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	w.Step(0.1, pause)
	assert.Equal(t, PhaseChoosing, w.Phase(), "pause does not skip a pending choice")

	pick := core.NewInputFrame()
	pick.Set(core.ActionChoice2)
	w.Step(0.1, pick)
	assert.Equal(t, PhaseRunning, w.Phase())
	assert.Greater(t, rock.Pos.X(), 100.0, "the step that takes the choice also runs")
}

func TestOfferIgnoredAfterGameOver(t *testing.T) {
	w := newTestWorld(nil)
	w.Lose()
	assert.Nil(t, w.OfferUpgrades(catalogue(3), 3))
	assert.Equal(t, PhaseGameOver, w.Phase())
}

func TestAddWeaponLevelsOwnedWeapon(t *testing.T) {
	w := newTestWorld(nil)

	gun := w.AddWeapon(&Weapon{ID: "autogun", MaxLevel: 3})
	assert.Equal(t, 1, gun.Level)

	again := w.AddWeapon(&Weapon{ID: "autogun", MaxLevel: 3})
	assert.Same(t, gun, again)
	assert.Equal(t, 2, gun.Level)
	assert.Len(t, w.Weapons, 1)

	w.AddWeapon(&Weapon{ID: "autogun"})
	w.AddWeapon(&Weapon{ID: "autogun"})
	assert.Equal(t, 3, gun.Level, "capped at max level")

	w.AddWeapon(&Weapon{ID: "mines"})
	assert.Len(t, w.Weapons, 2)
}

func TestWeaponCooldown(t *testing.T) {
	w := newTestWorld(nil)
	shots := 0
	target := true
	gun := w.AddWeapon(&Weapon{
		ID:       "gun",
		Cooldown: func(level int) float64 { return 0.5 / float64(level) },
		Fire: func(*World, *Weapon) bool {
			if !target {
				return false
			}
			shots++
			return true
		},
	})

	for i := 0; i < 10; i++ {
		w.FireWeapons(0.1)
	}
	assert.Equal(t, 2, shots)

	target = false
	for i := 0; i < 10; i++ {
		w.FireWeapons(0.1)
	}
	assert.Equal(t, 2, shots)
	assert.True(t, gun.Ready(w.Mods), "stays ready while nothing is in range")

	target = true
	w.FireWeapons(0.1)
	assert.Equal(t, 3, shots)

	w.Mods.CooldownMul = 0.5
	assert.InDelta(t, 0.25, gun.Interval(w.Mods), 1e-12)
}
