package sim

import "github.com/vovakirdan/horde-arcade/internal/core"

// Rules are the game-specific hooks the driver calls during a step.
type Rules interface {
	// Control turns the input frame into player motion and fires weapons.
	// It also runs enemy fire and any other per-step intent.
	Control(w *World, in core.InputFrame, dt float64)

	// AreaEffects resolves explosions, orbiting weapons, fuses and specials.
	// It is the first collision phase.
	AreaEffects(w *World, dt float64)

	// ProjectileHit runs after a player projectile damaged a target.
	ProjectileHit(w *World, proj, target *Entity)

	// Killed runs once per entity, on the step it dies.
	Killed(w *World, victim, by *Entity)

	// Collected runs once per pickup the player touches.
	Collected(w *World, pickup *Entity)

	// Derive recomputes state that depends on the whole step:
	// regen, levelling, formation bookkeeping, win and lose checks.
	Derive(w *World, dt float64)

	// HUD lists the counters shown above the playfield.
	HUD(w *World) []HUDItem
}

// BaseRules implements every hook as a no-op. Embed it and override what
// the game needs.
type BaseRules struct{}

func (BaseRules) Control(*World, core.InputFrame, float64) {}
func (BaseRules) AreaEffects(*World, float64)              {}
func (BaseRules) ProjectileHit(*World, *Entity, *Entity)   {}
func (BaseRules) Killed(*World, *Entity, *Entity)          {}
func (BaseRules) Collected(*World, *Entity)                {}
func (BaseRules) Derive(*World, float64)                   {}
func (BaseRules) HUD(*World) []HUDItem                     { return nil }
