package sim

import "github.com/vovakirdan/horde-arcade/internal/core"

// recordingRules counts the hooks the core fires.
type recordingRules struct {
	BaseRules
	killed    []*Entity
	hits      int
	collected int
	control   func(w *World, in core.InputFrame, dt float64)
	onCollect func(w *World)
}

func (r *recordingRules) Control(w *World, in core.InputFrame, dt float64) {
	if r.control != nil {
		r.control(w, in, dt)
	}
}

func (r *recordingRules) ProjectileHit(*World, *Entity, *Entity) { r.hits++ }

func (r *recordingRules) Killed(w *World, victim, _ *Entity) {
	r.killed = append(r.killed, victim)
	if victim.Kind == KindEnemy {
		w.Score += victim.Reward
	}
}

func (r *recordingRules) Collected(w *World, _ *Entity) {
	r.collected++
	if r.onCollect != nil {
		r.onCollect(w)
	}
}

func newTestWorld(rules Rules) *World {
	w := NewWorld(Bounds{W: 800, H: 600}, 42, rules)
	w.SetPlayer(&Entity{Pos: core.V(400, 300), Radius: 20, Health: 100, MaxHealth: 100, Speed: 200})
	return w
}

func enemyAt(x, y float64) *Entity {
	return &Entity{Kind: KindEnemy, Pos: core.V(x, y), Radius: 10, Health: 10, MaxHealth: 10, Reward: 10}
}
