package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/horde-arcade/internal/core"
)

// DefaultPruneMargin is how far past the visible bounds an entity may travel
// before it is removed, unless it sets its own margin.
const DefaultPruneMargin = 100

// DefaultParticleCap bounds the number of live particles.
const DefaultParticleCap = 800

const kindCount = int(KindDeployable) + 1

// Bounds is the visible world rectangle, anchored at the origin.
type Bounds struct {
	W, H float64
}

// Center returns the middle of the bounds.
func (b Bounds) Center() core.Vec2 {
	return core.V(b.W/2, b.H/2)
}

// Contains reports whether p lies inside the bounds grown by margin.
func (b Bounds) Contains(p core.Vec2, margin float64) bool {
	return p.X() >= -margin && p.X() <= b.W+margin &&
		p.Y() >= -margin && p.Y() <= b.H+margin
}

// Phase is the session state machine.
type Phase int

const (
	PhaseRunning  Phase = iota
	PhasePaused         // paused by the player
	PhaseChoosing       // paused until an upgrade offer is taken
	PhaseGameOver       // terminal
	PhaseWon            // terminal
)

var phaseNames = [...]string{
	PhaseRunning:  "running",
	PhasePaused:   "paused",
	PhaseChoosing: "choosing",
	PhaseGameOver: "game-over",
	PhaseWon:      "won",
}

// String returns the phase name.
func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Terminal reports whether only a restart can leave this phase.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseWon
}

// Modifiers are the player-accumulated stat changes applied by upgrades.
type Modifiers struct {
	DamageMul     float64 // multiplies weapon damage
	SpeedMul      float64 // multiplies player speed
	CooldownMul   float64 // multiplies weapon cooldowns; below 1 fires faster
	Pierce        int     // extra targets for new projectiles
	CollectRadius float64 // multiplies the player radius for pickups
	Regen         float64 // health per second
	ExplosionSize float64 // multiplies explosion particle counts
	BonusDamage   float64 // flat damage added to deployables
}

// DefaultModifiers returns neutral modifiers.
func DefaultModifiers() Modifiers {
	return Modifiers{
		DamageMul:     1,
		SpeedMul:      1,
		CooldownMul:   1,
		CollectRadius: 1,
		ExplosionSize: 1,
	}
}

// Stats are per-session counters shown on the HUD and stored with runs.
type Stats struct {
	Kills      int
	Collected  int
	Level      int
	Exp        float64
	ExpToLevel float64
	Special    float64
	Distance   float64
}

// World is the state of one session. It is not safe for concurrent use;
// one goroutine steps it and hands snapshots to the renderer.
type World struct {
	Bounds Bounds
	Player *Entity

	Time  float64
	Tick  uint64
	Score int
	Stats Stats
	Mods  Modifiers

	Weapons  []*Weapon
	Spawners []*Spawner
	Shuffle  ShuffleMode

	ParticleCap int
	PlayerClamp ClampMode

	Rng *rand.Rand

	rules  Rules
	phase  Phase
	lists  [kindCount][]*Entity
	offers []Upgrade
	nextID uint64
}

// NewWorld creates an empty running world. The game adds the player and
// spawners afterwards.
func NewWorld(bounds Bounds, seed int64, rules Rules) *World {
	if rules == nil {
		rules = BaseRules{}
	}
	return &World{
		Bounds:      bounds,
		Mods:        DefaultModifiers(),
		ParticleCap: DefaultParticleCap,
		Rng:         rand.New(rand.NewSource(seed)), //#nosec G404 -- gameplay randomness
		rules:       rules,
		phase:       PhaseRunning,
	}
}

// Phase returns the current session phase.
func (w *World) Phase() Phase {
	return w.phase
}

// Running reports whether the simulation advances this step.
func (w *World) Running() bool {
	return w.phase == PhaseRunning
}

// TogglePause switches between running and paused.
// It has no effect while an upgrade offer is pending or after the session ended.
func (w *World) TogglePause() {
	switch w.phase {
	case PhaseRunning:
		w.phase = PhasePaused
	case PhasePaused:
		w.phase = PhaseRunning
	}
}

// Lose ends the session in defeat. Terminal phases are never left.
func (w *World) Lose() {
	if !w.phase.Terminal() {
		w.phase = PhaseGameOver
		w.offers = nil
	}
}

// Win ends the session in victory. Terminal phases are never left.
func (w *World) Win() {
	if !w.phase.Terminal() {
		w.phase = PhaseWon
		w.offers = nil
	}
}

// SetPlayer installs the single player entity.
func (w *World) SetPlayer(p *Entity) *Entity {
	p.Kind = KindPlayer
	p.Pinned = true
	w.Player = w.register(p)
	return w.Player
}

// Spawn adds an entity to the world and returns it.
// Particles beyond ParticleCap are dropped and Spawn returns nil.
func (w *World) Spawn(e *Entity) *Entity {
	if e.Kind == KindPlayer {
		return w.SetPlayer(e)
	}
	if e.Kind == KindParticle && w.ParticleCap > 0 && len(w.lists[KindParticle]) >= w.ParticleCap {
		return nil
	}
	w.register(e)
	w.lists[e.Kind] = append(w.lists[e.Kind], e)
	return e
}

func (w *World) register(e *Entity) *Entity {
	w.nextID++
	e.ID = w.nextID
	if e.Facing == 0 {
		e.Facing = 1
	}
	if e.PruneMargin == 0 {
		e.PruneMargin = DefaultPruneMargin
	}
	return e
}

// Entities returns the live list for a kind. The slice is owned by the world.
func (w *World) Entities(kind Kind) []*Entity {
	if kind == KindPlayer {
		if w.Player == nil {
			return nil
		}
		return []*Entity{w.Player}
	}
	return w.lists[kind]
}

// Count returns how many entities of a kind are alive.
func (w *World) Count(kind Kind) int {
	n := 0
	for _, e := range w.Entities(kind) {
		if e.Alive() {
			n++
		}
	}
	return n
}

// Nearest returns the closest living entity of the kind, or nil.
func (w *World) Nearest(from core.Vec2, kind Kind) *Entity {
	var best *Entity
	bestDist := math.Inf(1)
	for _, e := range w.Entities(kind) {
		if !e.Alive() {
			continue
		}
		if d := core.Dist(from, e.Pos); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// RandomOf returns a random living entity of the kind, or nil.
func (w *World) RandomOf(kind Kind) *Entity {
	live := make([]*Entity, 0, len(w.lists[kind]))
	for _, e := range w.Entities(kind) {
		if e.Alive() {
			live = append(live, e)
		}
	}
	if len(live) == 0 {
		return nil
	}
	return live[w.Rng.Intn(len(live))]
}

// Hurt is the single damage path. It applies damage and, on the one call
// that kills the target, fires the death side effects: Rules.Killed for
// every victim and the end of the session when the victim is the player.
func (w *World) Hurt(target *Entity, amount float64, by *Entity) bool {
	if !target.TakeDamage(amount) {
		return false
	}
	w.rules.Killed(w, target, by)
	if target == w.Player {
		w.Lose()
	}
	return true
}

// Kill removes a damageable or plain entity outright, firing the death side
// effects once when it was still alive.
func (w *World) Kill(target *Entity, by *Entity) bool {
	if !target.Alive() {
		return false
	}
	if target.Damageable() {
		return w.Hurt(target, target.Health, by)
	}
	target.Dead = true
	w.rules.Killed(w, target, by)
	return true
}

// Burst emits an explosion of particles. Fractional counts round up.
func (w *World) Burst(at core.Vec2, count float64, color core.Color) {
	n := int(math.Ceil(count))
	for i := 0; i < n; i++ {
		angle := math.Pi*2*float64(i)/float64(n) + w.Rng.Float64()*0.5
		speed := 100 + w.Rng.Float64()*200
		life := w.Rng.Float64()*0.8 + 0.5
		w.Spawn(&Entity{
			Kind:     KindParticle,
			Pos:      at,
			Vel:      core.FromAngle(angle, speed),
			Radius:   w.Rng.Float64()*10 + 5,
			Life:     life,
			Expires:  true,
			Steering: SteerDrag,
			Drag:     0.95,
			Color:    color,
		})
	}
}

// Rand returns a float in [lo, hi).
func (w *World) Rand(lo, hi float64) float64 {
	return lo + w.Rng.Float64()*(hi-lo)
}
