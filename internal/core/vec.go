package core

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a point or direction in world units.
// World space has its origin at the top-left corner with y growing downwards.
type Vec2 = mgl64.Vec2

// Diagonal scales both axes of an eight-way digital intent so diagonals
// are not faster than straight moves.
const Diagonal = 0.707

// V builds a vector from its components.
func V(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Dist returns the euclidean distance between two points.
func Dist(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// Unit returns v scaled to length 1.
// The second result is false for a zero-length (or non-finite) vector, in
// which case the caller must skip whatever update needed the direction.
func Unit(v Vec2) (Vec2, bool) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}, false
	}
	return v.Mul(1 / l), true
}

// Toward returns the unit direction from one point to another.
func Toward(from, to Vec2) (Vec2, bool) {
	return Unit(to.Sub(from))
}

// FromAngle returns a vector of the given length pointing at angle radians.
func FromAngle(angle, length float64) Vec2 {
	return V(math.Cos(angle)*length, math.Sin(angle)*length)
}

// CirclesOverlap reports whether two circles intersect.
// The test is strict: circles that only touch do not overlap.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	return Dist(a, b) < ra+rb
}

// LimitLen scales v down to length max when it is longer.
func LimitLen(v Vec2, max float64) Vec2 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Mul(max / l)
}

// FormatClock formats elapsed seconds as m:ss.
func FormatClock(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	mins := int(math.Floor(seconds / 60))
	secs := int(math.Floor(math.Mod(seconds, 60)))
	return fmt.Sprintf("%d:%02d", mins, secs)
}
