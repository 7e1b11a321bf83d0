// Package sim is the shared per-frame simulation core of the arcade games.
//
// A World owns every live Entity of one session. Each Step advances time,
// steers and integrates entities, runs spawners, resolves collisions in a
// fixed order, prunes dead entities and lets the game recompute derived
// state. Games plug their specifics in through the Rules interface and stat
// tables; the core has no I/O and never logs.
package sim

import (
	"math"
	"slices"

	"github.com/vovakirdan/horde-arcade/internal/core"
)

// Kind classifies an entity for collision and rendering.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindProjectile      // fired by the player
	KindEnemyProjectile // fired at the player
	KindParticle
	KindPickup
	KindHazard     // static or scrolling obstacle the player can shoot (islands)
	KindDeployable // barrels, bombs, mines
)

var kindNames = [...]string{
	KindPlayer:          "player",
	KindEnemy:           "enemy",
	KindProjectile:      "projectile",
	KindEnemyProjectile: "enemy-projectile",
	KindParticle:        "particle",
	KindPickup:          "pickup",
	KindHazard:          "hazard",
	KindDeployable:      "deployable",
}

// String returns the kind name.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Steering selects the rule that sets an entity's velocity each step.
type Steering int

const (
	SteerNone   Steering = iota // keep the current velocity
	SteerChase                  // head for the player at Speed
	SteerWave                   // keep vx, oscillate vy
	SteerHoming                 // turn gradually toward the nearest target
	SteerDrag                   // decay velocity (particles)
	SteerRipple                 // keep vx, vy follows a sine of the x position
)

// Wave parameters for SteerWave, vy = Amplitude * cos(Time * Frequency),
// and for SteerRipple, vy = Amplitude * sin(Pos.X * Frequency).
type Wave struct {
	Amplitude float64
	Frequency float64
	Time      float64
}

// Homing parameters for SteerHoming.
type Homing struct {
	TurnRate float64 // weight of the target direction added each step
	Speed    float64 // speed the velocity is renormalized to
	Targets  []Kind  // searched in order; the first kind with a live entity wins
}

// Pierce tracks how many targets a projectile has hit.
// The projectile is spent once Hits exceeds Max, so Max 0 allows one hit.
type Pierce struct {
	Hits int
	Max  int
}

// Spent reports whether the pierce budget is exhausted.
func (p Pierce) Spent() bool {
	return p.Hits > p.Max
}

// Entity is any simulated object. Behaviour comes from its Kind, Steering
// and the combat fields rather than from per-game types.
type Entity struct {
	ID   uint64
	Kind Kind
	Tag  string // variant inside a game, e.g. "boss" or "bomb"

	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
	Half   core.Vec2 // box half extents; zero means the entity is a circle
	Speed  float64

	Health    float64
	MaxHealth float64
	Life      float64 // seconds left, only for expiring entities
	Expires   bool
	Dead      bool
	Arming    float64 // seconds before the entity takes part in collisions

	Steering Steering
	Wave     Wave
	Homing   Homing
	Drag     float64 // velocity factor per 1/60 s for SteerDrag

	Damage      float64 // hit damage, or contact damage per second for enemies
	SelfDamage  float64 // damage per second taken while touching the player
	Pierce      Pierce
	Bounces     int  // remaining reflections off the top and bottom edges
	PassThrough bool // never consumed; Damage is then a rate per second of overlap
	Shield      bool // destroys enemy projectiles on contact
	Reward      int

	PruneMargin float64 // distance past the bounds before removal
	Pinned      bool    // never pruned for leaving the bounds

	Timer float64 // per-entity countdown owned by the game rules
	Level int

	Facing   int // -1 left, +1 right
	Exploded bool
	Color    core.Color

	hits []uint64
}

// Damageable reports whether the entity carries health.
func (e *Entity) Damageable() bool {
	return e.MaxHealth > 0
}

// Alive reports whether the entity still takes part in the simulation.
func (e *Entity) Alive() bool {
	if e.Dead {
		return false
	}
	if e.Damageable() && e.Health <= 0 {
		return false
	}
	if e.Expires && e.Life <= 0 {
		return false
	}
	return true
}

// TakeDamage lowers health by amount, never below zero.
// It returns true exactly once: on the call that takes a living entity to
// zero health. Non-positive amounts are ignored.
func (e *Entity) TakeDamage(amount float64) bool {
	if amount <= 0 || !e.Damageable() {
		return false
	}
	wasAlive := e.Health > 0 && !e.Dead
	e.Health = math.Max(0, e.Health-amount)
	if e.Health > 0 {
		return false
	}
	e.Dead = true
	return wasAlive
}

// Heal raises health by amount, clamped to MaxHealth.
func (e *Entity) Heal(amount float64) {
	if e.Dead {
		return
	}
	e.Health = core.ClampF(e.Health+amount, 0, e.MaxHealth)
}

// RaiseMaxHealth grows MaxHealth and optionally refills health.
func (e *Entity) RaiseMaxHealth(amount float64, healFull bool) {
	e.MaxHealth += amount
	if healFull {
		e.Health = e.MaxHealth
	}
	e.Health = core.ClampF(e.Health, 0, e.MaxHealth)
}

// HealthRatio returns health as a fraction of MaxHealth.
func (e *Entity) HealthRatio() float64 {
	if !e.Damageable() {
		return 1
	}
	return core.ClampF(e.Health/e.MaxHealth, 0, 1)
}

// Armed reports whether the entity collides yet.
func (e *Entity) Armed() bool {
	return e.Arming <= 0
}

// Box returns the entity's axis-aligned box.
func (e *Entity) Box() core.Box {
	return core.Box{Center: e.Pos, Half: e.Half}
}

// IsBox reports whether collisions use the box shape.
func (e *Entity) IsBox() bool {
	return e.Half.X() > 0 && e.Half.Y() > 0
}

func (e *Entity) hasHit(id uint64) bool {
	return slices.Contains(e.hits, id)
}

func (e *Entity) markHit(id uint64) {
	e.hits = append(e.hits, id)
}

// Overlaps reports whether two entities touch.
// Circles use the strict radius test, boxes use their half extents, and
// mixed pairs use the closest point of the box. The result is symmetric.
func Overlaps(a, b *Entity) bool {
	switch {
	case a.IsBox() && b.IsBox():
		return a.Box().Overlaps(b.Box())
	case a.IsBox():
		return a.Box().OverlapsCircle(b.Pos, b.Radius)
	case b.IsBox():
		return b.Box().OverlapsCircle(a.Pos, a.Radius)
	default:
		return core.CirclesOverlap(a.Pos, a.Radius, b.Pos, b.Radius)
	}
}
