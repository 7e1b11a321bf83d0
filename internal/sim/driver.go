package sim

import "github.com/vovakirdan/horde-arcade/internal/core"

// Step advances the session by dt seconds.
//
// The pause toggle and pending upgrade choices are handled first; the rest
// of the pipeline only runs while the session is running:
// time, control, movement, spawners, collisions, pruning, derived state.
func (w *World) Step(dt float64, in core.InputFrame) {
	dt = ClampDelta(dt)

	if in.Has(core.ActionPause) {
		w.TogglePause()
	}
	if w.phase == PhaseChoosing {
		if c := in.Choice(); c >= 0 {
			_ = w.Choose(c) // out-of-range keys are ignored
		}
	}
	if !w.Running() {
		return
	}

	w.Tick++
	w.Time += dt

	w.rules.Control(w, in, dt)
	w.move(dt)
	w.runSpawners(dt)
	w.Resolve(dt)
	w.Prune()
	w.rules.Derive(w, dt)
}

// Prune drops dead, expired and out-of-bounds entities in place.
func (w *World) Prune() {
	for k := KindEnemy; int(k) < kindCount; k++ {
		w.lists[k] = w.pruneList(w.lists[k])
	}
}

func (w *World) pruneList(list []*Entity) []*Entity {
	kept := list[:0]
	for _, e := range list {
		if w.keep(e) {
			kept = append(kept, e)
		}
	}
	clear(list[len(kept):])
	return kept
}

func (w *World) keep(e *Entity) bool {
	if !e.Alive() {
		return false
	}
	return e.Pinned || w.Bounds.Contains(e.Pos, e.PruneMargin)
}

// State reports the session scalars in the platform's terms.
func (w *World) State() core.GameState {
	return core.GameState{
		Score:    w.Score,
		Elapsed:  w.Time,
		GameOver: w.phase == PhaseGameOver,
		Won:      w.phase == PhaseWon,
		Paused:   w.phase == PhasePaused || w.phase == PhaseChoosing,
		Choosing: w.phase == PhaseChoosing,
	}
}
