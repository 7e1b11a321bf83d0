package sim

import (
	"math"

	"github.com/vovakirdan/horde-arcade/internal/core"
)

// MaxStep is the largest delta time a single step simulates.
const MaxStep = 0.1

// ClampDelta bounds dt to [0, MaxStep]. Non-finite values become zero.
func ClampDelta(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	return math.Min(dt, MaxStep)
}

// ClampMode says how the player is kept inside the bounds after moving.
type ClampMode int

const (
	ClampBoth ClampMode = iota
	ClampX              // vertical handled by the game rules
	ClampNone
)

// Integrate advances position by velocity. A zero velocity is a fixed point.
func Integrate(e *Entity, dt float64) {
	if e.Vel[0] == 0 && e.Vel[1] == 0 {
		return
	}
	e.Pos = e.Pos.Add(e.Vel.Mul(dt))
}

// SteerPlayer sets the player velocity from a normalized intent.
func SteerPlayer(p *Entity, intent core.Vec2, speed float64) {
	p.Vel = intent.Mul(speed)
	switch {
	case intent.X() > 0:
		p.Facing = 1
	case intent.X() < 0:
		p.Facing = -1
	}
}

// Chase points the velocity at target with the entity's speed.
// When the entity sits on the target the previous velocity is kept.
func Chase(e *Entity, target core.Vec2) {
	dir, ok := core.Toward(e.Pos, target)
	if !ok {
		return
	}
	e.Vel = dir.Mul(e.Speed)
	if dir.X() != 0 {
		e.Facing = int(math.Copysign(1, dir.X()))
	}
}

// WaveStep keeps the horizontal velocity and oscillates the vertical one.
func WaveStep(e *Entity, dt float64) {
	e.Wave.Time += dt
	e.Vel[1] = e.Wave.Amplitude * math.Cos(e.Wave.Time*e.Wave.Frequency)
}

// RippleStep sets the vertical velocity from the horizontal position.
func RippleStep(e *Entity) {
	e.Vel[1] = e.Wave.Amplitude * math.Sin(e.Pos.X()*e.Wave.Frequency)
}

// Home turns the velocity toward target by TurnRate and renormalizes it to
// the homing speed. A nil target or a target at zero distance leaves the
// velocity unchanged.
func Home(e *Entity, target *Entity) {
	if target == nil {
		return
	}
	dir, ok := core.Toward(e.Pos, target.Pos)
	if !ok {
		return
	}
	v := e.Vel.Add(dir.Mul(e.Homing.TurnRate))
	if u, ok := core.Unit(v); ok {
		e.Vel = u.Mul(e.Homing.Speed)
	}
}

// ApplyDrag decays velocity by Drag per 1/60 s.
func ApplyDrag(e *Entity, dt float64) {
	if e.Drag <= 0 || e.Drag >= 1 {
		return
	}
	e.Vel = e.Vel.Mul(math.Pow(e.Drag, dt*60))
}

// Bounce reflects vy off the top and bottom edges while bounces remain.
func Bounce(e *Entity, b Bounds) {
	if e.Bounces <= 0 {
		return
	}
	switch {
	case e.Pos.Y()-e.Radius <= 0:
		e.Pos[1] = e.Radius
	case e.Pos.Y()+e.Radius >= b.H:
		e.Pos[1] = b.H - e.Radius
	default:
		return
	}
	e.Vel[1] = -e.Vel[1]
	e.Bounces--
}

// homingTarget picks the nearest living entity of the first listed kind that
// has one.
func (w *World) homingTarget(e *Entity) *Entity {
	for _, k := range e.Homing.Targets {
		if t := w.Nearest(e.Pos, k); t != nil {
			return t
		}
	}
	return nil
}

// move runs steering, integration, bounds handling and life countdown for
// every entity.
func (w *World) move(dt float64) {
	if p := w.Player; p != nil && p.Alive() {
		Integrate(p, dt)
		ex, ey := extents(p)
		switch w.PlayerClamp {
		case ClampBoth:
			p.Pos[0] = core.ClampF(p.Pos.X(), ex, math.Max(ex, w.Bounds.W-ex))
			p.Pos[1] = core.ClampF(p.Pos.Y(), ey, math.Max(ey, w.Bounds.H-ey))
		case ClampX:
			p.Pos[0] = core.ClampF(p.Pos.X(), ex, math.Max(ex, w.Bounds.W-ex))
		}
	}

	for k := KindEnemy; int(k) < kindCount; k++ {
		for _, e := range w.lists[k] {
			if !e.Alive() {
				continue
			}
			w.steer(e, dt)
			Integrate(e, dt)
			Bounce(e, w.Bounds)
			if e.Expires {
				e.Life -= dt
			}
			if e.Arming > 0 {
				e.Arming -= dt
			}
		}
	}
}

// extents returns the half width and height of the entity's shape.
func extents(e *Entity) (float64, float64) {
	if e.IsBox() {
		return e.Half.X(), e.Half.Y()
	}
	return e.Radius, e.Radius
}

func (w *World) steer(e *Entity, dt float64) {
	switch e.Steering {
	case SteerChase:
		if w.Player != nil {
			Chase(e, w.Player.Pos)
		}
	case SteerWave:
		WaveStep(e, dt)
	case SteerRipple:
		RippleStep(e)
	case SteerHoming:
		Home(e, w.homingTarget(e))
	case SteerDrag:
		ApplyDrag(e, dt)
	}
}
