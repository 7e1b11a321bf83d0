package survivors

import (
	"fmt"
	"math"

	"github.com/vovakirdan/horde-arcade/internal/config"
	"github.com/vovakirdan/horde-arcade/internal/core"
	"github.com/vovakirdan/horde-arcade/internal/sim"
)

type rules struct {
	sim.BaseRules

	cfg        config.SurvivorsConfig
	difficulty *config.DifficultyManager
	catalogue  []sim.Upgrade
	choices    int
}

func newRules(cfg config.SurvivorsConfig) *rules {
	choices := cfg.Upgrades.Choices
	if choices <= 0 {
		choices = sim.DefaultChoices
	}
	r := &rules{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		choices:    choices,
	}
	r.catalogue = catalogue(r)
	return r
}

// hordeSize grows by one enemy for every two points of multiplier.
func (r *rules) hordeSize(mult, _ float64) int {
	return min(int(math.Floor(1+mult/2)), r.cfg.Spawns.MaxCount)
}

// bossChance grows linearly with time, by BossChance every BossRampTime.
func (r *rules) bossChance(t float64) float64 {
	s := r.cfg.Spawns
	if s.BossRampTime <= 0 {
		return s.BossChance
	}
	return s.BossChance + t/s.BossRampTime*s.BossChance
}

func (r *rules) spawnHorde(w *sim.World, n int) {
	t := r.difficulty.Progress(w.Time)
	for i := 0; i < n; i++ {
		pos := sim.EdgePoint(w.Rng, w.Bounds, sim.RandomSide(w.Rng), r.cfg.Spawns.EdgeOffset)
		stats, tag := r.cfg.Enemy, "grunt"
		if w.Rng.Float64() < r.bossChance(t) {
			stats, tag = r.cfg.Boss, "boss"
		}
		hp := stats.Health + t*stats.HealthPerSecond
		w.Spawn(&sim.Entity{
			Kind:      sim.KindEnemy,
			Tag:       tag,
			Pos:       pos,
			Radius:    stats.Radius,
			Speed:     stats.Speed + w.Rand(0, stats.SpeedJitter) + t*stats.SpeedPerSecond,
			Health:    hp,
			MaxHealth: hp,
			Steering:  sim.SteerChase,
			Damage:    stats.ContactDamage,
			Reward:    stats.Reward,
		})
	}
}

// Control moves the player in eight directions and runs every weapon.
func (r *rules) Control(w *sim.World, in core.InputFrame, dt float64) {
	p := w.Player
	sim.SteerPlayer(p, in.Direction(), p.Speed*w.Mods.SpeedMul)
	w.FireWeapons(dt)
}

// AreaEffects burns bomb fuses.
func (r *rules) AreaEffects(w *sim.World, dt float64) {
	for _, e := range w.Entities(sim.KindDeployable) {
		if !e.Alive() || e.Tag != "bomb" {
			continue
		}
		e.Timer -= dt
		if e.Timer <= 0 {
			r.detonate(w, e)
		}
	}
}

// ProjectileHit sets off bombs and armed mines on contact and sparks bullets.
func (r *rules) ProjectileHit(w *sim.World, proj, _ *sim.Entity) {
	switch proj.Tag {
	case "bomb", "mine":
		r.detonate(w, proj)
	default:
		w.Burst(proj.Pos, 5, core.ColorBrightYellow)
	}
}

func (r *rules) Killed(w *sim.World, victim, _ *sim.Entity) {
	if victim.Kind != sim.KindEnemy {
		return
	}
	w.Burst(victim.Pos, 15, core.ColorOrange)
	w.Score += victim.Reward
	w.Stats.Kills++
	w.Stats.Exp++
}

// Derive levels the player up and ends the run once the clock runs out.
// Leftover experience carries into the next level.
func (r *rules) Derive(w *sim.World, _ float64) {
	if w.Time >= r.cfg.WinTime {
		w.Win()
		return
	}

	s := &w.Stats
	if s.ExpToLevel > 0 && s.Exp >= s.ExpToLevel {
		s.Exp -= s.ExpToLevel
		s.ExpToLevel = math.Floor(s.ExpToLevel * r.cfg.Levels.Growth)
		s.Level++
		w.OfferUpgrades(r.catalogue, r.choices)
	}
}

func (r *rules) HUD(w *sim.World) []sim.HUDItem {
	s := w.Stats
	levelRatio := 0.0
	if s.ExpToLevel > 0 {
		levelRatio = s.Exp / s.ExpToLevel
	}
	return []sim.HUDItem{
		{Label: "HP", Bar: true, Ratio: w.Player.HealthRatio(), Color: core.ColorBrightGreen},
		{Label: fmt.Sprintf("Lv %d", s.Level), Bar: true, Ratio: levelRatio, Color: core.ColorBrightCyan},
		{Label: "Kills", Value: fmt.Sprintf("%d", s.Kills), Color: core.ColorBrightRed},
		{Label: "Left", Value: core.FormatClock(math.Max(0, r.cfg.WinTime-w.Time))},
	}
}
