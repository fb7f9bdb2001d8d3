// Package core provides fundamental types and utilities for the runner
// simulation. It contains no external dependencies to keep the physics
// logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in level coordinates.
// Y grows downward, matching canvas conventions.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// IntersectsCircle returns true if the circle centered at (cx, cy) with the
// given radius overlaps this rectangle. Uses the closest-point test: the
// distance from the circle center to the nearest point on the rectangle must
// be less than the radius.
func (r Rect) IntersectsCircle(cx, cy, radius float64) bool {
	nearestX := Clamp(cx, r.X, r.Right())
	nearestY := Clamp(cy, r.Y, r.Bottom())
	dx := cx - nearestX
	dy := cy - nearestY
	return dx*dx+dy*dy < radius*radius
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of a float64.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
