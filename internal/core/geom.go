// Package core provides fundamental types and utilities for the arcade platform.
// It has no terminal dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Box is an axis-aligned box in world units described by its center and half extents.
type Box struct {
	Center Vec2
	Half   Vec2
}

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func (b Box) Overlaps(o Box) bool {
	return math.Abs(b.Center.X()-o.Center.X()) < b.Half.X()+o.Half.X() &&
		math.Abs(b.Center.Y()-o.Center.Y()) < b.Half.Y()+o.Half.Y()
}

// OverlapsCircle reports whether the box intersects a circle.
// Uses the closest point of the box to the circle center.
func (b Box) OverlapsCircle(c Vec2, r float64) bool {
	closest := V(
		ClampF(c.X(), b.Center.X()-b.Half.X(), b.Center.X()+b.Half.X()),
		ClampF(c.Y(), b.Center.Y()-b.Half.Y(), b.Center.Y()+b.Half.Y()),
	)
	return Dist(closest, c) < r
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
