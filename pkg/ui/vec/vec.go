// Package vec provides the 2D cell geometry shared by the backend, the event
// model and the view tree.
package vec

import "fmt"

// Vec2 is a size or a position measured in character cells.
type Vec2 struct {
	X, Y int
}

// New creates a Vec2.
func New(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

// Zero returns the origin.
func Zero() Vec2 {
	return Vec2{}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o. Components may go negative.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// SaturatingSub returns v - o with each component floored at zero.
func (v Vec2) SaturatingSub(o Vec2) Vec2 {
	return Vec2{X: max(0, v.X-o.X), Y: max(0, v.Y-o.Y)}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Min returns the component-wise minimum.
func (v Vec2) Min(o Vec2) Vec2 {
	return Vec2{X: min(v.X, o.X), Y: min(v.Y, o.Y)}
}

// Max returns the component-wise maximum.
func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{X: max(v.X, o.X), Y: max(v.Y, o.Y)}
}

// Fits reports whether v fits inside o on both axes.
func (v Vec2) Fits(o Vec2) bool {
	return v.X <= o.X && v.Y <= o.Y
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// String implements fmt.Stringer.
func (v Vec2) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}
