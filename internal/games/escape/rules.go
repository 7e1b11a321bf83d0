package escape

import (
	"fmt"

	"github.com/vovakirdan/horde-arcade/internal/config"
	"github.com/vovakirdan/horde-arcade/internal/core"
	"github.com/vovakirdan/horde-arcade/internal/sim"
)

// rules holds the Boat Escape specifics plugged into the simulation.
type rules struct {
	sim.BaseRules

	cfg        config.EscapeConfig
	difficulty *config.DifficultyManager
	catalogue  []sim.Upgrade
	choices    int
}

func newRules(cfg config.EscapeConfig) *rules {
	choices := cfg.Upgrades.Choices
	if choices <= 0 {
		choices = sim.DefaultChoices
	}
	return &rules{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		catalogue:  catalogue(cfg),
		choices:    choices,
	}
}

// Control regenerates health, steers the boat and drops barrels.
func (r *rules) Control(w *sim.World, in core.InputFrame, dt float64) {
	p := w.Player
	if w.Mods.Regen > 0 {
		p.Heal(w.Mods.Regen * dt)
	}
	sim.SteerPlayer(p, in.Direction(), p.Speed*w.Mods.SpeedMul)
	w.Stats.Distance += r.cfg.ScrollSpeed * dt
	w.FireWeapons(dt)
}

// barrelDropper drops a barrel behind the boat on every cooldown. The first
// barrel goes out immediately.
func (r *rules) barrelDropper() *sim.Weapon {
	b := r.cfg.Barrels
	return &sim.Weapon{
		ID:       "barrel",
		Name:     "Barrel",
		Cooldown: func(int) float64 { return b.Interval },
		Timer:    b.Interval,
		Fire: func(w *sim.World, _ *sim.Weapon) bool {
			w.Spawn(&sim.Entity{
				Kind:        sim.KindProjectile,
				Tag:         "barrel",
				Pos:         w.Player.Pos,
				Vel:         core.V(-r.cfg.ScrollSpeed, 0),
				Radius:      b.Radius,
				Damage:      b.Damage + w.Mods.BonusDamage,
				Pierce:      sim.Pierce{Max: b.Pierce + w.Mods.Pierce},
				PruneMargin: b.Radius + 50,
			})
			return true
		},
	}
}

func (r *rules) spawnBoats(w *sim.World, n int) {
	c := r.cfg.Boats
	t := r.difficulty.Progress(w.Time)
	for i := 0; i < n; i++ {
		hp := c.Health + t*c.HealthPerSecond
		w.Spawn(&sim.Entity{
			Kind:      sim.KindEnemy,
			Tag:       "boat",
			Pos:       core.V(c.SpawnX, w.Rand(0, w.Bounds.H)),
			Radius:    c.Radius,
			Speed:     c.Speed + w.Rand(0, c.SpeedJitter) + t*c.SpeedPerSecond,
			Health:    hp,
			MaxHealth: hp,
			Steering:  sim.SteerChase,
			Damage:    c.ContactDamage,
			Reward:    c.Reward,
		})
	}
}

func (r *rules) spawnContainers(w *sim.World, n int) {
	c := r.cfg.Containers
	for i := 0; i < n; i++ {
		w.Spawn(&sim.Entity{
			Kind:        sim.KindPickup,
			Tag:         "container",
			Pos:         core.V(w.Bounds.W+50, 50+w.Rand(0, w.Bounds.H-100)),
			Vel:         core.V(-r.cfg.ScrollSpeed, 0),
			Radius:      c.Radius,
			Reward:      c.Reward,
			PruneMargin: c.Radius + 50,
		})
	}
}

// ProjectileHit blows up a barrel against a boat. Each hit spends pierce.
func (r *rules) ProjectileHit(w *sim.World, proj, _ *sim.Entity) {
	size := r.cfg.Barrels.Explosion * w.Mods.ExplosionSize
	w.Burst(proj.Pos, size, core.ColorOrange)
	w.Burst(proj.Pos, size*0.7, core.ColorYellow)
	w.Burst(proj.Pos, size*0.5, core.ColorBrightYellow)
	if proj.Pierce.Spent() {
		proj.Exploded = true
	}
}

func (r *rules) Killed(w *sim.World, victim, _ *sim.Entity) {
	if victim.Kind != sim.KindEnemy {
		return
	}
	w.Burst(victim.Pos, 15, core.ColorOrange)
	w.Score += victim.Reward
	w.Stats.Kills++
}

// Collected scores a container and offers an upgrade.
func (r *rules) Collected(w *sim.World, pickup *sim.Entity) {
	w.Score += pickup.Reward
	w.Burst(pickup.Pos, 20, core.ColorBrightYellow)
	w.Burst(pickup.Pos, 15, core.ColorBrightWhite)
	w.OfferUpgrades(r.catalogue, r.choices)
}

func (r *rules) Derive(w *sim.World, _ float64) {
	if w.Stats.Collected >= r.cfg.Containers.Goal {
		w.Win()
	}
}

func (r *rules) HUD(w *sim.World) []sim.HUDItem {
	return []sim.HUDItem{
		{Label: "HP", Bar: true, Ratio: w.Player.HealthRatio(), Color: core.ColorBrightGreen},
		{Label: "Containers", Value: fmt.Sprintf("%d/%d", w.Stats.Collected, r.cfg.Containers.Goal), Color: core.ColorBrightYellow},
		{Label: "Distance", Value: fmt.Sprintf("%dm", int(w.Stats.Distance))},
	}
}
