package sim

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/horde-arcade/internal/core"
)

// HUDItem is one counter of the heads-up display.
// Bar items render Ratio as a gauge next to the label.
type HUDItem struct {
	Label string
	Value string
	Bar   bool
	Ratio float64
	Color core.Color
}

// EntityView is the read-only render data of one entity.
type EntityView struct {
	ID          uint64
	Kind        Kind
	Tag         string
	X, Y        float64
	Radius      float64
	HalfW       float64
	HalfH       float64
	HealthRatio float64
	Facing      int
	Exploded    bool
	Color       core.Color
}

// Snapshot is everything a renderer needs after a step.
// It shares nothing with the world it was taken from.
type Snapshot struct {
	Tick     uint64
	Time     float64
	Score    int
	Phase    Phase
	Bounds   Bounds
	Entities []EntityView
	Choices  []string
	HUD      []HUDItem
}

// drawOrder lists kinds back to front.
var drawOrder = [...]Kind{
	KindParticle,
	KindPickup,
	KindHazard,
	KindDeployable,
	KindEnemy,
	KindEnemyProjectile,
	KindProjectile,
	KindPlayer,
}

// Snapshot captures the live entities in draw order and the session scalars.
func (w *World) Snapshot() Snapshot {
	n := 1
	for _, l := range w.lists {
		n += len(l)
	}

	snap := Snapshot{
		Tick:     w.Tick,
		Time:     w.Time,
		Score:    w.Score,
		Phase:    w.phase,
		Bounds:   w.Bounds,
		Entities: make([]EntityView, 0, n),
		HUD:      w.rules.HUD(w),
	}

	for _, kind := range drawOrder {
		for _, e := range w.Entities(kind) {
			if !e.Alive() && e != w.Player {
				continue
			}
			snap.Entities = append(snap.Entities, viewOf(e))
		}
	}

	for _, u := range w.offers {
		snap.Choices = append(snap.Choices, u.Label())
	}
	return snap
}

func viewOf(e *Entity) EntityView {
	return EntityView{
		ID:          e.ID,
		Kind:        e.Kind,
		Tag:         e.Tag,
		X:           e.Pos.X(),
		Y:           e.Pos.Y(),
		Radius:      e.Radius,
		HalfW:       e.Half.X(),
		HalfH:       e.Half.Y(),
		HealthRatio: e.HealthRatio(),
		Facing:      e.Facing,
		Exploded:    e.Exploded,
		Color:       e.Color,
	}
}

// Player returns the player view, if the snapshot has one.
func (s Snapshot) Player() (EntityView, bool) {
	for i := len(s.Entities) - 1; i >= 0; i-- {
		if s.Entities[i].Kind == KindPlayer {
			return s.Entities[i], true
		}
	}
	return EntityView{}, false
}

// Count returns the number of views of a kind.
func (s Snapshot) Count(kind Kind) int {
	n := 0
	for _, v := range s.Entities {
		if v.Kind == kind {
			n++
		}
	}
	return n
}

// Hash fingerprints the simulation state of the snapshot with xxhash.
// HUD text and choice labels are derived and left out.
func (s Snapshot) Hash() uint64 {
	buf := make([]byte, 0, 64+len(s.Entities)*72)
	buf = binary.LittleEndian.AppendUint64(buf, s.Tick)
	buf = appendFloat(buf, s.Time)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(s.Score)) //#nosec G115 -- hash computation
	buf = append(buf, byte(s.Phase), byte(len(s.Choices)))

	for _, v := range s.Entities {
		buf = binary.LittleEndian.AppendUint64(buf, v.ID)
		buf = append(buf, byte(v.Kind))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(v.Tag))) //#nosec G115 -- hash computation
		buf = append(buf, v.Tag...)
		buf = appendFloat(buf, v.X)
		buf = appendFloat(buf, v.Y)
		buf = appendFloat(buf, v.Radius)
		buf = appendFloat(buf, v.HealthRatio)
		buf = append(buf, byte(v.Facing+1))
	}

	return xxhash.Sum64(buf)
}

func appendFloat(buf []byte, f float64) []byte {
	return binary.LittleEndian.AppendUint64(buf, math.Float64bits(f))
}
