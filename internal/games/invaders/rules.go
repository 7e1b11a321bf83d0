package invaders

import (
	"fmt"
	"math"

	"github.com/vovakirdan/horde-arcade/internal/config"
	"github.com/vovakirdan/horde-arcade/internal/core"
	"github.com/vovakirdan/horde-arcade/internal/sim"
)

type rules struct {
	sim.BaseRules

	cfg        config.InvadersConfig
	difficulty *config.DifficultyManager

	direction float64 // +1 marching right, -1 left
	speed     float64 // base formation speed of the current wave
	total     int     // formation size of the current wave
	wave      int
}

func (r *rules) spawnFormation(w *sim.World) {
	f := r.cfg.Formation
	slots := sim.Formation(w.Bounds, f.Cell, f.StartY, f.RowFrac, f.ColFrac)
	for _, pos := range slots {
		w.Spawn(&sim.Entity{
			Kind:      sim.KindEnemy,
			Tag:       "invader",
			Pos:       pos,
			Radius:    f.Radius,
			Health:    1,
			MaxHealth: 1,
			Reward:    r.cfg.Player.HitReward,
		})
	}
	r.total = len(slots)
	r.direction = 1
	r.wave++
}

// marchSpeed grows from MinFactor to MaxFactor times the base speed as the
// formation thins out.
func (r *rules) marchSpeed(remaining int) float64 {
	f := r.cfg.Formation
	if r.total == 0 {
		return r.speed * f.MinFactor
	}
	ratio := float64(remaining) / float64(r.total)
	return r.speed * (f.MinFactor + (1-ratio)*(f.MaxFactor-f.MinFactor))
}

func (r *rules) cannon() *sim.Weapon {
	pc := r.cfg.Player
	return &sim.Weapon{
		ID:       "cannon",
		Name:     "Cannon",
		Cooldown: func(int) float64 { return pc.FireRate },
		Timer:    pc.FireRate,
		Fire: func(w *sim.World, _ *sim.Weapon) bool {
			p := w.Player
			w.Spawn(&sim.Entity{
				Kind:        sim.KindProjectile,
				Tag:         "shot",
				Pos:         core.V(p.Pos.X(), p.Pos.Y()-p.Radius),
				Vel:         core.V(0, -pc.ShotSpeed),
				Radius:      pc.ShotRadius,
				Damage:      pc.ShotDamage,
				PruneMargin: pc.ShotRadius,
			})
			return true
		},
	}
}

// Control moves the cannon sideways, fires and marches the formation.
func (r *rules) Control(w *sim.World, in core.InputFrame, dt float64) {
	p := w.Player
	dx := in.Direction().X()
	if in.Analog.Len() == 0 && dx != 0 {
		dx = math.Copysign(1, dx) // keys drive the cannon at full speed
	}
	sim.SteerPlayer(p, core.V(dx, 0), p.Speed*w.Mods.SpeedMul)
	w.FireWeapons(dt)
	r.march(w, dt)
}

// march reverses and drops the whole formation when the next move would
// cross an edge, then sets every invader's velocity.
func (r *rules) march(w *sim.World, dt float64) {
	enemies := w.Entities(sim.KindEnemy)
	remaining := w.Count(sim.KindEnemy)
	if remaining == 0 {
		return
	}
	speed := r.marchSpeed(remaining)

	hitLeft, hitRight := false, false
	for _, e := range enemies {
		if !e.Alive() {
			continue
		}
		nextX := e.Pos.X() + r.direction*speed*dt
		if nextX-e.Radius < 0 {
			hitLeft = true
		}
		if nextX+e.Radius > w.Bounds.W {
			hitRight = true
		}
	}

	if (hitLeft && r.direction < 0) || (hitRight && r.direction > 0) {
		r.direction = -r.direction
		for _, e := range enemies {
			e.Pos[1] += r.cfg.Formation.Drop
		}
	}

	for _, e := range enemies {
		e.Vel = core.V(r.direction*speed, 0)
		e.Facing = int(r.direction)
	}
}

// returnFire drops a bomb from the lowest invader of a random column.
func (r *rules) returnFire(w *sim.World, n int) {
	ef := r.cfg.EnemyFire
	for i := 0; i < n; i++ {
		pick := w.RandomOf(sim.KindEnemy)
		if pick == nil {
			return
		}
		shooter := pick
		for _, e := range w.Entities(sim.KindEnemy) {
			if e.Alive() && e.Pos.X() == pick.Pos.X() && e.Pos.Y() > shooter.Pos.Y() {
				shooter = e
			}
		}
		w.Spawn(&sim.Entity{
			Kind:   sim.KindEnemyProjectile,
			Tag:    "bomb",
			Pos:    core.V(shooter.Pos.X(), shooter.Pos.Y()+shooter.Radius),
			Vel:    core.V(0, ef.Speed),
			Radius: ef.Radius,
			Damage: ef.Damage,
		})
	}
}

func (r *rules) Killed(w *sim.World, victim, _ *sim.Entity) {
	if victim.Kind != sim.KindEnemy {
		return
	}
	w.Burst(victim.Pos, r.cfg.Player.HitParticle, core.ColorOrange)
	w.Score += victim.Reward
	w.Stats.Kills++
}

// Derive ends the session on invasion and sends a faster wave once the
// formation is cleared.
func (r *rules) Derive(w *sim.World, _ float64) {
	line := w.Bounds.H - r.cfg.Player.Invasion
	for _, e := range w.Entities(sim.KindEnemy) {
		if e.Alive() && e.Pos.Y()+e.Radius >= line {
			w.Lose()
			return
		}
	}

	if w.Count(sim.KindEnemy) == 0 {
		r.spawnFormation(w)
		r.speed = r.difficulty.Scale(r.cfg.Formation.Speed, w.Time)
	}
}

func (r *rules) HUD(w *sim.World) []sim.HUDItem {
	return []sim.HUDItem{
		{Label: "HP", Bar: true, Ratio: w.Player.HealthRatio(), Color: core.ColorBrightGreen},
		{Label: "Invaders", Value: fmt.Sprintf("%d", w.Count(sim.KindEnemy)), Color: core.ColorBrightMagenta},
		{Label: "Wave", Value: fmt.Sprintf("%d", r.wave)},
	}
}
