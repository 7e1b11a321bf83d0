package wings

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/horde-arcade/internal/config"
	"github.com/vovakirdan/horde-arcade/internal/core"
	"github.com/vovakirdan/horde-arcade/internal/sim"
)

const powerPrefix = "power-"

// powerups are the island drops. Weapon ids switch on or level up a weapon.
var powerups = [...]string{"spread", "rapid", "homing", "saw", "wave", "orbit", "health"}

type rules struct {
	sim.BaseRules

	cfg        config.WingsConfig
	difficulty *config.DifficultyManager

	saws        []*sim.Entity
	orbitAngle  float64
	specialLeft float64 // seconds of the active special, zero when idle
}

// wave is the difficulty step: one per WaveLength seconds of progress.
func (r *rules) wave(gameTime float64) float64 {
	if r.cfg.Enemies.WaveLength <= 0 {
		return 0
	}
	return math.Floor(r.difficulty.Progress(gameTime) / r.cfg.Enemies.WaveLength)
}

func (r *rules) spawnInterval(gameTime float64) float64 {
	e := r.cfg.Enemies
	return math.Max(e.IntervalMin, e.Interval-e.IntervalCut*r.wave(gameTime))
}

func (r *rules) spawnCount(_, gameTime float64) int {
	e := r.cfg.Enemies
	return min(e.BaseCount+e.CountStep*int(r.wave(gameTime)), e.MaxCount)
}

func (r *rules) enemySpeed(gameTime float64) float64 {
	e := r.cfg.Enemies
	return e.Speed * (1 + r.wave(gameTime)*e.SpeedStep)
}

func (r *rules) fireCooldown(gameTime float64) float64 {
	e := r.cfg.Enemies
	return e.FireEvery / (1 + r.wave(gameTime)*e.FireStep)
}

// spawnEnemies sends a group in from the right edge, each picking straight,
// chase or weave movement.
func (r *rules) spawnEnemies(w *sim.World, n int) {
	c := r.cfg.Enemies
	speed := r.enemySpeed(w.Time)
	for i := 0; i < n; i++ {
		e := &sim.Entity{
			Kind:      sim.KindEnemy,
			Pos:       core.V(w.Bounds.W+50, 50+w.Rand(0, w.Bounds.H-100)),
			Vel:       core.V(-speed, 0),
			Radius:    c.Radius,
			Speed:     speed,
			Health:    c.Health,
			MaxHealth: c.Health,
			Damage:    r.cfg.Player.ContactDamage,
			// enemies take ram damage for as long as they touch the plane
			SelfDamage: r.cfg.Player.RamDamage,
			Reward:     c.Reward,
			Facing:     -1,
		}
		switch roll := w.Rng.Float64(); {
		case roll < 0.33:
			e.Tag = "straight"
		case roll < 0.66:
			e.Tag = "chase"
			e.Steering = sim.SteerChase
		default:
			e.Tag = "weave"
			e.Steering = sim.SteerWave
			e.Wave = sim.Wave{Amplitude: c.WaveAmp, Frequency: c.WaveFreq}
		}
		w.Spawn(e)
	}
}

func (r *rules) spawnIslands(w *sim.World, n int) {
	c := r.cfg.Islands
	for i := 0; i < n; i++ {
		w.Spawn(&sim.Entity{
			Kind:        sim.KindHazard,
			Tag:         "island",
			Pos:         core.V(w.Bounds.W+100, 50+w.Rand(0, w.Bounds.H-100)),
			Vel:         core.V(-c.Speed, 0),
			Radius:      c.Radius,
			Health:      c.Health,
			MaxHealth:   c.Health,
			Reward:      c.Reward,
			PruneMargin: 200,
		})
	}
}

func (r *rules) dropPowerup(w *sim.World, at core.Vec2) {
	kind := powerups[w.Rng.Intn(len(powerups))]
	w.Spawn(&sim.Entity{
		Kind:   sim.KindPickup,
		Tag:    powerPrefix + kind,
		Pos:    at,
		Vel:    core.V(-r.cfg.Islands.Speed, 0),
		Radius: r.cfg.Orbit.Radius,
	})
}

// Control triggers the special, flies the plane, fires every weapon and
// runs the enemies' pace and return fire.
func (r *rules) Control(w *sim.World, in core.InputFrame, dt float64) {
	sp := r.cfg.Special
	if in.Has(core.ActionFire) && r.specialLeft <= 0 && w.Stats.Special >= sp.MaxEnergy {
		r.specialLeft = sp.Duration
		w.Stats.Special = 0
	}

	p := w.Player
	sim.SteerPlayer(p, in.Direction(), p.Speed*w.Mods.SpeedMul)
	w.FireWeapons(dt)
	r.pilotEnemies(w, dt)
}

func (r *rules) pilotEnemies(w *sim.World, dt float64) {
	c := r.cfg.Enemies
	speed := r.enemySpeed(w.Time)
	cooldown := r.fireCooldown(w.Time)
	p := w.Player

	for _, e := range w.Entities(sim.KindEnemy) {
		if !e.Alive() {
			continue
		}
		e.Speed = speed
		if e.Steering != sim.SteerChase {
			e.Vel[0] = -speed
		}

		e.Timer += dt
		if e.Timer < cooldown {
			continue
		}
		e.Timer = 0
		dir, ok := core.Toward(e.Pos, p.Pos)
		if !ok {
			continue
		}
		tag := "shot"
		if w.Rng.Float64() > 0.5 {
			tag = "rocket"
		}
		w.Spawn(&sim.Entity{
			Kind:   sim.KindEnemyProjectile,
			Tag:    tag,
			Pos:    e.Pos,
			Vel:    dir.Mul(c.ShotSpeed),
			Radius: c.ShotRadius,
			Damage: c.ShotDamage,
		})
	}
}

// AreaEffects spins the orbit and runs the special, which destroys every
// enemy and enemy bullet within its radius.
func (r *rules) AreaEffects(w *sim.World, dt float64) {
	if len(r.saws) > 0 {
		r.orbitAngle += r.cfg.Orbit.Spin * dt
		r.placeSaws(w)
	}

	if r.specialLeft <= 0 {
		return
	}
	p := w.Player
	radius := r.cfg.Special.Radius
	for _, e := range w.Entities(sim.KindEnemy) {
		if e.Alive() && core.Dist(e.Pos, p.Pos) < radius {
			w.Kill(e, nil)
		}
	}
	for _, ep := range w.Entities(sim.KindEnemyProjectile) {
		if ep.Alive() && core.Dist(ep.Pos, p.Pos) < radius {
			ep.Dead = true
		}
	}
	r.specialLeft = math.Max(0, r.specialLeft-dt)
}

// Killed scores enemies and islands. Islands drop a power-up; enemy kills
// charge the special unless the special itself made them.
func (r *rules) Killed(w *sim.World, victim, by *sim.Entity) {
	switch victim.Kind {
	case sim.KindEnemy:
		w.Burst(victim.Pos, 25, core.ColorOrange)
		w.Score += victim.Reward
		w.Stats.Kills++
		if by != nil {
			w.Stats.Special = math.Min(r.cfg.Special.MaxEnergy, w.Stats.Special+r.cfg.Enemies.Energy)
		}
	case sim.KindHazard:
		w.Burst(victim.Pos, 40, core.ColorOrange)
		w.Score += victim.Reward
		r.dropPowerup(w, victim.Pos)
	}
}

func (r *rules) Collected(w *sim.World, pickup *sim.Entity) {
	w.Burst(pickup.Pos, 15, core.ColorBrightYellow)
	switch kind := strings.TrimPrefix(pickup.Tag, powerPrefix); kind {
	case "health":
		w.Player.Heal(r.cfg.Islands.Heal)
	case "orbit":
		r.addSaw(w)
	default:
		if wp := r.weapon(kind); wp != nil {
			w.AddWeapon(wp)
		}
	}
}

func (r *rules) HUD(w *sim.World) []sim.HUDItem {
	sp := r.cfg.Special
	specialColor := core.ColorBrightBlue
	if w.Stats.Special >= sp.MaxEnergy {
		specialColor = core.ColorBrightYellow
	}
	if r.specialLeft > 0 {
		specialColor = core.ColorBrightMagenta
	}

	arms := make([]string, 0, len(w.Weapons))
	for _, wp := range w.Weapons {
		arms = append(arms, fmt.Sprintf("%s %d", wp.Name, wp.Level))
	}

	items := []sim.HUDItem{
		{Label: "HP", Bar: true, Ratio: w.Player.HealthRatio(), Color: core.ColorBrightGreen},
		{Label: "Special", Bar: true, Ratio: w.Stats.Special / sp.MaxEnergy, Color: specialColor},
		{Label: "Weapons", Value: strings.Join(arms, ", "), Color: core.ColorOrange},
	}
	if len(r.saws) > 0 {
		items = append(items, sim.HUDItem{Label: "Saws", Value: fmt.Sprintf("%d", len(r.saws)), Color: core.ColorBrightCyan})
	}
	return items
}
