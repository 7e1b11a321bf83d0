package extraction

import (
	"fmt"
	"math"

	"github.com/vovakirdan/horde-arcade/internal/config"
	"github.com/vovakirdan/horde-arcade/internal/core"
	"github.com/vovakirdan/horde-arcade/internal/sim"
)

type rules struct {
	sim.BaseRules

	cfg        config.ExtractionConfig
	difficulty *config.DifficultyManager
	target     *sim.Entity
	desperate  bool
}

func (r *rules) groundY(w *sim.World) float64 {
	return w.Bounds.H - r.cfg.Target.GroundLevel
}

// Control applies thrust, horizontal input and gravity. Thrust replaces the
// vertical speed; gravity is added afterwards in the same step.
func (r *rules) Control(w *sim.World, in core.InputFrame, dt float64) {
	h := r.cfg.Helicopter
	p := w.Player

	if in.Has(core.ActionUp) || in.Has(core.ActionFire) {
		p.Vel[1] = -h.Thrust
	}

	switch {
	case in.Has(core.ActionLeft):
		p.Vel[0] = -h.Horizontal
		p.Facing = -1
	case in.Has(core.ActionRight):
		p.Vel[0] = h.Horizontal
		p.Facing = 1
	default:
		p.Vel[0] = 0
	}

	p.Vel[1] += h.Gravity * dt
}

func (r *rules) launchMissiles(w *sim.World, n int) {
	m := r.cfg.Missiles
	for i := 0; i < n; i++ {
		w.Spawn(&sim.Entity{
			Kind:        sim.KindEnemyProjectile,
			Tag:         "missile",
			Pos:         core.V(w.Player.Pos.X(), w.Bounds.H),
			Vel:         core.V(0, -m.Speed),
			Half:        core.V(m.Width/2, m.Height/2),
			Damage:      1,
			PruneMargin: m.Height,
		})
	}
}

// AreaEffects keeps the helicopter below the top edge and resolves missile
// hits with their explosions before the generic enemy projectile pass.
func (r *rules) AreaEffects(w *sim.World, _ float64) {
	p := w.Player
	if top := p.Half.Y(); p.Pos.Y() < top {
		p.Pos[1] = top
		p.Vel[1] = 0
	}

	for _, m := range w.Entities(sim.KindEnemyProjectile) {
		if !p.Alive() {
			return
		}
		if !m.Alive() || !sim.Overlaps(p, m) {
			continue
		}
		m.Dead = true
		w.Burst(m.Pos, 20, core.ColorOrange)
		w.Hurt(p, m.Damage, m)
	}
}

// Derive resolves landing, crashing and the target's mood.
func (r *rules) Derive(w *sim.World, _ float64) {
	p := w.Player
	h := r.cfg.Helicopter
	vy := math.Abs(p.Vel.Y())

	r.desperate = math.Abs(p.Pos.Y()-r.target.Pos.Y()) < w.Bounds.H/2
	r.target.Color = core.ColorDefault
	if r.desperate {
		r.target.Color = core.ColorBrightRed
	}

	if core.Dist(p.Pos, r.target.Pos) < r.cfg.Target.LandingZone {
		switch {
		case vy > h.CrashSpeed:
			r.crash(w)
		case vy < h.SafeSpeed:
			p.Vel = core.Vec2{}
			w.Score = r.landingScore(w)
			w.Win()
		default:
			p.Vel[1] = -vy / 2
		}
		return
	}

	if p.Pos.Y()+p.Half.Y() >= r.groundY(w) {
		r.crash(w)
	}
}

func (r *rules) crash(w *sim.World) {
	p := w.Player
	p.Vel = core.Vec2{}
	p.Exploded = true
	w.Burst(p.Pos, 40, core.ColorOrange)
	w.Burst(p.Pos, 25, core.ColorBrightYellow)
	w.Lose()
}

// landingScore rewards remaining hit points and time left of par.
func (r *rules) landingScore(w *sim.World) int {
	t := r.cfg.Target
	bonus := math.Max(0, t.ParTime-w.Time) * float64(t.TimeBonus)
	return int(w.Player.Health)*t.HitBonus + int(bonus)
}

func (r *rules) HUD(w *sim.World) []sim.HUDItem {
	p := w.Player
	h := r.cfg.Helicopter
	speed := math.Abs(p.Vel.Y())

	speedColor := core.ColorBrightGreen
	switch {
	case speed > h.CrashSpeed:
		speedColor = core.ColorBrightRed
	case speed > h.SafeSpeed:
		speedColor = core.ColorOrange
	}

	return []sim.HUDItem{
		{Label: "Hits", Value: fmt.Sprintf("%d/%d", int(p.Health), h.HitPoints), Color: core.ColorBrightGreen},
		{Label: "Altitude", Value: fmt.Sprintf("%d", int(w.Bounds.H-p.Pos.Y()))},
		{Label: "Speed", Value: fmt.Sprintf("%d", int(speed)), Color: speedColor},
	}
}
