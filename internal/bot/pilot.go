// Package bot drives games without a human. A Pilot reads the snapshot a
// player would see and answers with the input frame for the next step; the
// headless runner uses it to play batches of sessions.
package bot

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/horde-arcade/internal/core"
	"github.com/vovakirdan/horde-arcade/internal/sim"
)

// Pilot tuning. Danger is the distance at which threats start pushing the
// pilot away; pickups pull from anywhere on the field.
const (
	danger       = 220.0
	pickupPull   = 0.6
	homePull     = 0.15
	specialRange = 250.0
)

// Landing tuning for the default extraction config. The pilot aims to enter
// the landing zone touchdownDepth above the target below touchdownLimit,
// comfortably under the 300 safe speed.
const (
	fallGravity    = 150.0
	liftThrust     = 175.0
	touchdownLimit = 280.0
	touchdownDepth = 70.0
	sideOffset     = 80.0 // hover this far to either side of the target
	alignSlack     = 20.0 // horizontal dead zone
)

// Pilot is a simple reactive player. It is not safe for concurrent use;
// give every session its own pilot.
type Pilot struct {
	game string
	rng  *rand.Rand

	lastY    float64
	lastTime float64
	seen     bool
	missiles int
	side     float64
}

// New creates a pilot for the game id. The seed drives its upgrade picks.
func New(gameID string, seed int64) *Pilot {
	return &Pilot{
		game: gameID,
		rng:  rand.New(rand.NewSource(seed)), //#nosec G404 -- bot choices
		side: -1,
	}
}

// Next returns the input for the step after snap.
func (p *Pilot) Next(snap sim.Snapshot) core.InputFrame {
	in := core.NewInputFrame()

	switch snap.Phase {
	case sim.PhaseChoosing:
		if n := len(snap.Choices); n > 0 {
			in.Set(core.ActionChoice1 + core.Action(p.rng.Intn(min(n, 3))))
		}
		return in
	case sim.PhaseRunning:
	default:
		return in
	}

	me, ok := snap.Player()
	if !ok {
		return in
	}

	if p.game == "extraction" {
		p.land(snap, me, &in)
		return in
	}

	in.Analog = core.LimitLen(p.steer(snap, me), 1)
	if p.specialReady(snap) && p.threatsNear(snap, me, specialRange) >= 3 {
		in.Set(core.ActionFire)
	}
	return in
}

// steer sums a push away from every nearby threat, a pull toward the
// closest pickup and a weak pull back to the home point.
func (p *Pilot) steer(snap sim.Snapshot, me sim.EntityView) core.Vec2 {
	pos := core.V(me.X, me.Y)
	var push core.Vec2
	var pickup *sim.EntityView
	pickupDist := math.Inf(1)

	for i := range snap.Entities {
		v := &snap.Entities[i]
		at := core.V(v.X, v.Y)
		d := core.Dist(pos, at)

		switch v.Kind {
		case sim.KindEnemy, sim.KindEnemyProjectile:
			reach := danger + v.Radius + me.Radius
			if d >= reach {
				continue
			}
			if away, ok := core.Toward(at, pos); ok {
				push = push.Add(away.Mul((reach - d) / reach * 2))
			}
		case sim.KindPickup:
			if d < pickupDist {
				pickup, pickupDist = v, d
			}
		}
	}

	if pickup != nil {
		if dir, ok := core.Toward(pos, core.V(pickup.X, pickup.Y)); ok {
			push = push.Add(dir.Mul(pickupPull))
		}
	}
	if dir, ok := core.Toward(pos, p.home(snap)); ok {
		push = push.Add(dir.Mul(homePull))
	}
	if p.game == "invaders" {
		push = push.Add(p.aim(snap, pos))
	}
	return push
}

// home is where the pilot drifts when nothing is going on.
func (p *Pilot) home(snap sim.Snapshot) core.Vec2 {
	b := snap.Bounds
	switch p.game {
	case "wings":
		return core.V(b.W*0.2, b.H/2)
	case "escape":
		return core.V(b.W*0.4, b.H/2)
	default:
		return b.Center()
	}
}

// aim slides the cannon under the lowest invader.
func (p *Pilot) aim(snap sim.Snapshot, pos core.Vec2) core.Vec2 {
	var target *sim.EntityView
	for i := range snap.Entities {
		v := &snap.Entities[i]
		if v.Kind == sim.KindEnemy && (target == nil || v.Y > target.Y) {
			target = v
		}
	}
	if target == nil {
		return core.Vec2{}
	}
	return core.V(math.Copysign(0.5, target.X-pos.X()), 0)
}

// land falls freely and thrusts only when the touchdown speed it is heading
// for is too high and a thrust now would bring it back under the limit.
// Thrust resets the fall speed, so an early burst only wastes time. Missiles
// rise from under the helicopter, so every launch flips the side of the
// target it drifts to and the missile climbs through the column it left.
func (p *Pilot) land(snap sim.Snapshot, me sim.EntityView, in *core.InputFrame) {
	vy := 0.0
	if p.seen && snap.Time > p.lastTime {
		vy = (me.Y - p.lastY) / (snap.Time - p.lastTime)
	}
	p.lastY, p.lastTime, p.seen = me.Y, snap.Time, true

	var target *sim.EntityView
	missiles := 0
	for i := range snap.Entities {
		v := &snap.Entities[i]
		switch {
		case v.Kind == sim.KindEnemyProjectile:
			missiles++
		case v.Kind == sim.KindHazard && v.Tag == "target":
			target = v
		}
	}
	if missiles > p.missiles {
		p.side = -p.side
	}
	p.missiles = missiles
	if target == nil {
		return
	}

	if vy > 0 {
		drop := math.Max(0, target.Y-touchdownDepth-me.Y)
		if touchdownSpeed(vy, drop) > touchdownLimit && touchdownSpeed(liftThrust, drop) <= touchdownLimit {
			in.Set(core.ActionUp)
		}
	}

	switch dx := target.X + p.side*sideOffset - me.X; {
	case dx > alignSlack:
		in.Set(core.ActionRight)
	case dx < -alignSlack:
		in.Set(core.ActionLeft)
	}
}

// touchdownSpeed is the fall speed after dropping drop units from speed v.
func touchdownSpeed(v, drop float64) float64 {
	return math.Sqrt(v*v + 2*fallGravity*drop)
}

func (p *Pilot) specialReady(snap sim.Snapshot) bool {
	for _, item := range snap.HUD {
		if item.Label == "Special" && item.Bar {
			return item.Ratio >= 1
		}
	}
	return false
}

func (p *Pilot) threatsNear(snap sim.Snapshot, me sim.EntityView, radius float64) int {
	n := 0
	pos := core.V(me.X, me.Y)
	for _, v := range snap.Entities {
		if v.Kind == sim.KindEnemy && core.Dist(pos, core.V(v.X, v.Y)) < radius {
			n++
		}
	}
	return n
}
