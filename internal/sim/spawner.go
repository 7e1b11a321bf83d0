package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/horde-arcade/internal/core"
)

// Difficulty maps elapsed session time to a multiplier of at least 1.
type Difficulty interface {
	Multiplier(gameTime float64) float64
}

// LinearRamp grows the multiplier by one every Ramp seconds.
// A non-positive Ramp keeps the multiplier at 1.
type LinearRamp struct {
	Ramp float64
}

// Multiplier returns 1 + gameTime/Ramp.
func (r LinearRamp) Multiplier(gameTime float64) float64 {
	if r.Ramp <= 0 || gameTime <= 0 {
		return 1
	}
	return 1 + gameTime/r.Ramp
}

// CountFunc decides how many entities one spawn emits.
type CountFunc func(multiplier, gameTime float64) int

// Spawner emits entities on an accumulating timer.
//
// Each step the timer grows by dt. Once it reaches the effective interval
// (Interval divided by the difficulty multiplier, or Schedule when set) the
// spawner fires once, resets the timer to zero and emits Count entities.
type Spawner struct {
	Name       string
	Interval   float64
	Difficulty Difficulty

	// Schedule overrides the effective interval when the game uses a
	// stepped curve instead of a divided base interval.
	Schedule func(gameTime float64) float64

	Count CountFunc
	Emit  func(w *World, n int)

	Timer float64
	Fired int
}

// Multiplier returns the spawner's difficulty multiplier at gameTime.
func (s *Spawner) Multiplier(gameTime float64) float64 {
	if s.Difficulty == nil {
		return 1
	}
	return math.Max(1, s.Difficulty.Multiplier(gameTime))
}

// EffectiveInterval returns the seconds between spawns at gameTime.
func (s *Spawner) EffectiveInterval(gameTime float64) float64 {
	if s.Schedule != nil {
		return s.Schedule(gameTime)
	}
	return s.Interval / s.Multiplier(gameTime)
}

// timerEpsilon absorbs rounding in accumulated step times, so ten 0.1 s
// steps count as a full second.
const timerEpsilon = 1e-9

// Update advances the timer and fires at most once. It reports whether the
// spawner fired.
func (s *Spawner) Update(w *World, dt float64) bool {
	s.Timer += dt
	if s.Timer+timerEpsilon < s.EffectiveInterval(w.Time) {
		return false
	}
	s.Timer = 0
	s.Fired++

	n := 1
	if s.Count != nil {
		n = max(0, s.Count(s.Multiplier(w.Time), w.Time))
	}
	if n > 0 && s.Emit != nil {
		s.Emit(w, n)
	}
	return true
}

// AddSpawner registers a spawner that runs every step.
func (w *World) AddSpawner(s *Spawner) *Spawner {
	w.Spawners = append(w.Spawners, s)
	return s
}

// Spawner returns the registered spawner with the name, or nil.
func (w *World) Spawner(name string) *Spawner {
	for _, s := range w.Spawners {
		if s.Name == name {
			return s
		}
	}
	return nil
}

func (w *World) runSpawners(dt float64) {
	for _, s := range w.Spawners {
		s.Update(w, dt)
	}
}

// Side is one edge of the world.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// RandomSide picks an edge uniformly.
func RandomSide(rng *rand.Rand) Side {
	return Side(rng.Intn(4))
}

// EdgePoint returns a random point on the strip offset units outside the
// given edge.
func EdgePoint(rng *rand.Rand, b Bounds, side Side, offset float64) core.Vec2 {
	switch side {
	case SideTop:
		return core.V(rng.Float64()*b.W, -offset)
	case SideRight:
		return core.V(b.W+offset, rng.Float64()*b.H)
	case SideBottom:
		return core.V(rng.Float64()*b.W, b.H+offset)
	default:
		return core.V(-offset, rng.Float64()*b.H)
	}
}

// Formation lays out a grid of cell-sized slots centred horizontally.
// Rows fill rowFrac of the height and columns colFrac of the width.
func Formation(b Bounds, cell, startY, rowFrac, colFrac float64) []core.Vec2 {
	if cell <= 0 {
		return nil
	}
	rows := int(math.Floor(b.H * rowFrac / cell))
	cols := int(math.Floor(b.W * colFrac / cell))
	startX := (b.W-float64(cols)*cell)/2 + cell/2

	slots := make([]core.Vec2, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			slots = append(slots, core.V(startX+float64(c)*cell, startY+float64(r)*cell))
		}
	}
	return slots
}
