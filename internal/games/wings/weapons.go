package wings

import (
	"math"

	"github.com/vovakirdan/horde-arcade/internal/core"
	"github.com/vovakirdan/horde-arcade/internal/sim"
)

// armament is one row of the weapon table. Damage and volley size grow
// with the weapon level.
type armament struct {
	name     string
	cooldown float64
	fire     func(r *rules, w *sim.World, level int)
}

var spreadAngles = [...]float64{-30, -20, -10, 0, 10, 20, 30}

var armory = map[string]armament{
	"basic": {"Basic", 0.25, func(r *rules, w *sim.World, level int) {
		r.shoot(w, "basic", core.V(0, 0), core.V(600, 0), 20+5*float64(level))
	}},
	"spread": {"Spread", 0.4, func(r *rules, w *sim.World, level int) {
		n := min(3+level, len(spreadAngles))
		start := (len(spreadAngles) - n) / 2
		for i := 0; i < n; i++ {
			angle := spreadAngles[start+i] * math.Pi / 180
			r.shoot(w, "spread", core.V(0, 0), core.FromAngle(angle, 500), 15+3*float64(level))
		}
	}},
	"rapid": {"Rapid", 0.08, func(r *rules, w *sim.World, level int) {
		r.shoot(w, "rapid", core.V(0, 0), core.V(700, 0), 10+2*float64(level))
	}},
	"homing": {"Homing", 0.6, func(r *rules, w *sim.World, level int) {
		n := min(1+level/2, 3)
		for i := 0; i < n; i++ {
			offset := (float64(i) - float64(n-1)/2) * 20
			b := r.shoot(w, "homing", core.V(0, offset), core.V(400, 0), 35+10*float64(level))
			b.Steering = sim.SteerHoming
			b.Homing = sim.Homing{TurnRate: 8, Speed: 500, Targets: []sim.Kind{sim.KindEnemy, sim.KindHazard}}
		}
	}},
	"saw": {"Saw", 0.8, func(r *rules, w *sim.World, level int) {
		// saws stay in play and grind whatever they overlap
		for _, angle := range [...]float64{-math.Pi / 4, math.Pi / 4} {
			b := r.shoot(w, "saw", core.V(0, 0), core.FromAngle(angle, 450), (25+8*float64(level))*60)
			b.PassThrough = true
			b.Bounces = level
		}
	}},
	"wave": {"Wave", 0.35, func(r *rules, w *sim.World, level int) {
		n := min(2+level, 5)
		for i := 0; i < n; i++ {
			b := r.shoot(w, "wave", core.V(float64(i)*30, 0), core.V(500, 0), 18+4*float64(level))
			b.Steering = sim.SteerRipple
			b.Wave = sim.Wave{Amplitude: 200, Frequency: 0.02}
		}
	}},
}

// weapon builds the owned weapon for an armory id, or nil.
func (r *rules) weapon(id string) *sim.Weapon {
	a, ok := armory[id]
	if !ok {
		return nil
	}
	return &sim.Weapon{
		ID:       id,
		Name:     a.name,
		MaxLevel: r.cfg.Player.MaxWeaponLevel,
		Cooldown: func(int) float64 { return a.cooldown },
		Fire: func(w *sim.World, wp *sim.Weapon) bool {
			a.fire(r, w, wp.Level)
			return true
		},
	}
}

// shoot spawns a player bullet at the plane's nose plus offset.
func (r *rules) shoot(w *sim.World, tag string, offset, vel core.Vec2, damage float64) *sim.Entity {
	p := w.Player
	return w.Spawn(&sim.Entity{
		Kind:   sim.KindProjectile,
		Tag:    tag,
		Pos:    core.V(p.Pos.X()+p.Radius, p.Pos.Y()).Add(offset),
		Vel:    vel,
		Radius: r.cfg.Player.BulletRadius,
		Damage: damage * w.Mods.DamageMul,
	})
}

// addSaw puts one more saw on the orbit and spaces them evenly.
func (r *rules) addSaw(w *sim.World) {
	o := r.cfg.Orbit
	r.saws = append(r.saws, w.Spawn(&sim.Entity{
		Kind:        sim.KindProjectile,
		Tag:         "orbit-saw",
		Radius:      o.Radius,
		Damage:      o.DPS,
		PassThrough: true,
		Shield:      true,
		Pinned:      true,
	}))
	r.placeSaws(w)
}

func (r *rules) placeSaws(w *sim.World) {
	n := float64(len(r.saws))
	for i, s := range r.saws {
		angle := r.orbitAngle + float64(i)*2*math.Pi/n
		s.Pos = w.Player.Pos.Add(core.FromAngle(angle, r.cfg.Orbit.Distance))
	}
}
