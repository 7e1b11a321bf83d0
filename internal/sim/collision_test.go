package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/horde-arcade/internal/core"
)

func TestContactDamageIsARate(t *testing.T) {
	w := newTestWorld(nil)
	w.Spawn(&Entity{Kind: KindEnemy, Pos: w.Player.Pos, Radius: 10, Health: 50, MaxHealth: 50, Damage: 10})

	for i := 0; i < 3; i++ {
		w.Resolve(0.5)
	}

	assert.InDelta(t, 85, w.Player.Health, 1e-9)
	assert.Equal(t, PhaseRunning, w.Phase())
}

func TestContactDamageNeverBelowZero(t *testing.T) {
	rules := &recordingRules{}
	w := newTestWorld(rules)
	w.Spawn(&Entity{Kind: KindEnemy, Pos: w.Player.Pos, Radius: 10, Health: 50, MaxHealth: 50, Damage: 1000})

	w.Resolve(0.5)
	w.Resolve(0.5)

	assert.Equal(t, 0.0, w.Player.Health)
	assert.Equal(t, PhaseGameOver, w.Phase())
	assert.Len(t, rules.killed, 1, "the player dies once")
}

func TestContactSelfDamage(t *testing.T) {
	rules := &recordingRules{}
	w := newTestWorld(rules)
	e := w.Spawn(&Entity{Kind: KindEnemy, Pos: w.Player.Pos, Radius: 10, Health: 30, MaxHealth: 30, Damage: 10, SelfDamage: 100})

	w.Resolve(0.1)
	assert.InDelta(t, 20, e.Health, 1e-9)
	assert.InDelta(t, 99, w.Player.Health, 1e-9)
}

func TestProjectilePierce(t *testing.T) {
	tests := []struct {
		name        string
		maxPierce   int
		enemies     int
		wantKilled  int
		wantSpent   bool
		wantHitsMax int
	}{
		{"budget 0 stops at the first enemy", 0, 3, 1, true, 1},
		{"budget 2 survives two hits", 2, 2, 2, false, 2},
		{"budget 2 is spent on the third enemy", 2, 4, 3, true, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rules := &recordingRules{}
			w := newTestWorld(rules)
			w.Player.Pos = core.V(700, 500)

			for i := 0; i < tc.enemies; i++ {
				w.Spawn(enemyAt(100+float64(i)*2, 100))
			}
			proj := w.Spawn(&Entity{
				Kind:   KindProjectile,
				Pos:    core.V(102, 100),
				Radius: 20,
				Damage: 100,
				Pierce: Pierce{Max: tc.maxPierce},
			})

			w.Resolve(1.0 / 60)

			assert.Len(t, rules.killed, tc.wantKilled)
			assert.Equal(t, tc.wantSpent, !proj.Alive())
			assert.Equal(t, tc.wantHitsMax, proj.Pierce.Hits)
		})
	}
}

func TestPiercingProjectileNeverHitsTheSameTargetTwice(t *testing.T) {
	rules := &recordingRules{}
	w := newTestWorld(rules)
	w.Player.Pos = core.V(700, 500)

	tank := w.Spawn(&Entity{Kind: KindEnemy, Pos: core.V(100, 100), Radius: 30, Health: 100, MaxHealth: 100})
	proj := w.Spawn(&Entity{Kind: KindProjectile, Pos: core.V(100, 100), Radius: 5, Damage: 10, Pierce: Pierce{Max: 5}})

	for i := 0; i < 5; i++ {
		w.Resolve(1.0 / 60)
	}

	assert.Equal(t, 90.0, tank.Health)
	assert.Equal(t, 1, proj.Pierce.Hits)
	assert.Equal(t, 1, rules.hits)
}

func TestKillSideEffectFiresOnce(t *testing.T) {
	rules := &recordingRules{}
	w := newTestWorld(rules)
	w.Player.Pos = core.V(700, 500)

	target := w.Spawn(enemyAt(100, 100))
	for i := 0; i < 3; i++ {
		w.Spawn(&Entity{Kind: KindProjectile, Pos: core.V(100, 100), Radius: 5, Damage: 50})
	}

	w.Resolve(1.0 / 60)
	w.Resolve(1.0 / 60)

	require.Len(t, rules.killed, 1)
	assert.Same(t, target, rules.killed[0])
	assert.Equal(t, 10, w.Score)
	assert.Equal(t, 2, w.Count(KindProjectile), "only the killing projectile was consumed")
}

func TestPassThroughDamagesPerSecond(t *testing.T) {
	w := newTestWorld(nil)
	w.Player.Pos = core.V(700, 500)

	tank := w.Spawn(&Entity{Kind: KindEnemy, Pos: core.V(100, 100), Radius: 30, Health: 1000, MaxHealth: 1000})
	saw := w.Spawn(&Entity{Kind: KindProjectile, Pos: core.V(100, 100), Radius: 25, Damage: 300, PassThrough: true})

	for i := 0; i < 10; i++ {
		w.Resolve(0.1)
	}

	assert.InDelta(t, 700, tank.Health, 1e-6)
	assert.True(t, saw.Alive())
}

func TestEnemyProjectileHitsPlayer(t *testing.T) {
	w := newTestWorld(nil)
	bullet := w.Spawn(&Entity{Kind: KindEnemyProjectile, Pos: w.Player.Pos, Radius: 5, Damage: 10})

	w.Resolve(1.0 / 60)

	assert.Equal(t, 90.0, w.Player.Health)
	assert.False(t, bullet.Alive())
}

func TestShieldDestroysEnemyProjectiles(t *testing.T) {
	w := newTestWorld(nil)
	shield := w.Spawn(&Entity{Kind: KindProjectile, Pos: w.Player.Pos, Radius: 25, PassThrough: true, Shield: true, Pinned: true})
	bullet := w.Spawn(&Entity{Kind: KindEnemyProjectile, Pos: w.Player.Pos, Radius: 5, Damage: 10})

	w.Resolve(1.0 / 60)

	assert.True(t, shield.Alive())
	assert.False(t, bullet.Alive())
	assert.Equal(t, 100.0, w.Player.Health, "the shield took the bullet first")
}

func TestPickupUsesCollectRadius(t *testing.T) {
	rules := &recordingRules{}
	w := newTestWorld(rules)
	crate := w.Spawn(&Entity{Kind: KindPickup, Pos: core.V(455, 300), Radius: 30})

	w.Resolve(1.0 / 60)
	require.True(t, crate.Alive(), "out of reach at the base radius")

	w.Mods.CollectRadius = 1.5
	w.Resolve(1.0 / 60)

	assert.False(t, crate.Alive())
	assert.Equal(t, 1, rules.collected)
	assert.Equal(t, 1, w.Stats.Collected)
}

func TestPickupOfferWaitsForChoice(t *testing.T) {
	rules := &recordingRules{}
	rules.onCollect = func(w *World) { w.OfferUpgrades(catalogue(4), 3) }
	w := newTestWorld(rules)
	first := w.Spawn(&Entity{Kind: KindPickup, Pos: core.V(400, 300), Radius: 10})
	second := w.Spawn(&Entity{Kind: KindPickup, Pos: core.V(410, 300), Radius: 10})

	w.Resolve(1.0 / 60)
	require.Equal(t, PhaseChoosing, w.Phase())
	offered := w.Offers()
	assert.False(t, first.Alive())
	assert.True(t, second.Alive(), "the second crate waits for the choice")
	assert.Equal(t, 1, w.Stats.Collected)

	w.Step(1.0/60, core.NewInputFrame())
	assert.Equal(t, offered, w.Offers(), "the open offer is not replaced")

	choose := core.NewInputFrame()
	choose.Set(core.ActionChoice1)
	w.Step(1.0/60, choose)

	assert.False(t, second.Alive())
	assert.Equal(t, 2, rules.collected)
	assert.Equal(t, PhaseChoosing, w.Phase(), "the second crate opens its own offer")
}

func TestUnarmedDeployableIsInert(t *testing.T) {
	rules := &recordingRules{}
	w := newTestWorld(rules)
	w.Player.Pos = core.V(700, 500)

	w.Spawn(enemyAt(100, 100))
	mine := w.Spawn(&Entity{Kind: KindDeployable, Pos: core.V(100, 100), Radius: 10, Damage: 40, Arming: 0.3})

	w.Resolve(1.0 / 60)
	assert.Empty(t, rules.killed)

	mine.Arming = 0
	w.Resolve(1.0 / 60)
	assert.Len(t, rules.killed, 1)
}
