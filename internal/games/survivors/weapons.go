package survivors

import (
	"math"

	"github.com/vovakirdan/horde-arcade/internal/core"
	"github.com/vovakirdan/horde-arcade/internal/sim"
)

// Weapon ids double as upgrade ids so picking an owned weapon levels it.
const (
	weaponAutoGun = "auto-gun"
	weaponBombs   = "bombs"
	weaponMines   = "mines"
)

// autoGun shoots the nearest enemy. With nothing on screen it holds fire
// and stays ready.
func (r *rules) autoGun() *sim.Weapon {
	g := r.cfg.Weapons.AutoGun
	return &sim.Weapon{
		ID:       weaponAutoGun,
		Name:     "Auto Gun",
		Cooldown: func(level int) float64 { return g.Cooldown / float64(max(level, 1)) },
		Timer:    g.Cooldown,
		Fire: func(w *sim.World, wp *sim.Weapon) bool {
			p := w.Player
			target := w.Nearest(p.Pos, sim.KindEnemy)
			if target == nil {
				return false
			}
			dir, ok := core.Toward(p.Pos, target.Pos)
			if !ok {
				return false
			}
			w.Spawn(&sim.Entity{
				Kind:        sim.KindProjectile,
				Tag:         "bullet",
				Pos:         p.Pos,
				Vel:         dir.Mul(g.Speed),
				Radius:      g.Radius,
				Damage:      g.Damage * float64(wp.Level) * w.Mods.DamageMul,
				PruneMargin: g.Radius,
			})
			return true
		},
	}
}

// bombLauncher lobs a bomb at a random enemy. Bombs blow up on the first
// enemy they touch or when the fuse runs out.
func (r *rules) bombLauncher() *sim.Weapon {
	b := r.cfg.Weapons.Bombs
	return &sim.Weapon{
		ID:       weaponBombs,
		Name:     "Bomb Launcher",
		Cooldown: func(level int) float64 { return b.Cooldown / math.Sqrt(float64(max(level, 1))) },
		Timer:    b.Cooldown,
		Fire: func(w *sim.World, wp *sim.Weapon) bool {
			p := w.Player
			target := w.RandomOf(sim.KindEnemy)
			if target == nil {
				return false
			}
			dir, ok := core.Toward(p.Pos, target.Pos)
			if !ok {
				return false
			}
			w.Spawn(r.bomb(p.Pos, dir.Mul(b.Speed), wp.Level))
			return true
		},
	}
}

func (r *rules) bomb(at, vel core.Vec2, level int) *sim.Entity {
	b := r.cfg.Weapons.Bombs
	return &sim.Entity{
		Kind:   sim.KindDeployable,
		Tag:    "bomb",
		Pos:    at,
		Vel:    vel,
		Radius: b.Radius,
		Timer:  b.Fuse,
		Level:  level,
	}
}

// mineLayer drops a mine under the player on every cooldown.
func (r *rules) mineLayer() *sim.Weapon {
	m := r.cfg.Weapons.Mines
	return &sim.Weapon{
		ID:       weaponMines,
		Name:     "Mine Layer",
		Cooldown: func(int) float64 { return m.Cooldown },
		Timer:    m.Cooldown,
		Fire: func(w *sim.World, wp *sim.Weapon) bool {
			w.Spawn(r.mine(w.Player.Pos, wp.Level))
			return true
		},
	}
}

func (r *rules) mine(at core.Vec2, level int) *sim.Entity {
	m := r.cfg.Weapons.Mines
	return &sim.Entity{
		Kind:    sim.KindDeployable,
		Tag:     "mine",
		Pos:     at,
		Radius:  m.Radius,
		Arming:  m.Arm,
		Life:    m.Life,
		Expires: true,
		Level:   level,
	}
}

// blast returns the damage and radius of a deployable's explosion.
func (r *rules) blast(w *sim.World, e *sim.Entity) (damage, radius float64) {
	level := float64(max(e.Level, 1))
	switch e.Tag {
	case "bomb":
		b := r.cfg.Weapons.Bombs
		return b.Damage * level * w.Mods.DamageMul, b.Blast + b.BlastLevel*level
	case "mine":
		m := r.cfg.Weapons.Mines
		return m.Damage * level * w.Mods.DamageMul, m.Blast + m.BlastLevel*level
	}
	return 0, 0
}

// detonate damages every enemy inside the blast and removes the deployable.
func (r *rules) detonate(w *sim.World, e *sim.Entity) {
	if e.Exploded {
		return
	}
	e.Exploded = true
	e.Dead = true

	size := w.Mods.ExplosionSize
	if e.Tag == "bomb" {
		w.Burst(e.Pos, 100*size, core.ColorOrange)
		w.Burst(e.Pos, 80*size, core.ColorYellow)
		w.Burst(e.Pos, 60*size, core.ColorBrightYellow)
	} else {
		w.Burst(e.Pos, 70*size, core.ColorOrange)
		w.Burst(e.Pos, 50*size, core.ColorYellow)
	}

	damage, radius := r.blast(w, e)
	for _, enemy := range w.Entities(sim.KindEnemy) {
		if enemy.Alive() && core.Dist(enemy.Pos, e.Pos) < radius {
			w.Hurt(enemy, damage, e)
		}
	}
}
