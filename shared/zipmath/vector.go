package zipmath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vec2 is the 2D vector used throughout the zipper code.
type Vec2 = dmath.Vec2

// V builds a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Lerp interpolates between a and b. t is clamped to [0,1].
func Lerp(a, b Vec2, t float64) Vec2 {
	t = Clamp01(t)
	return Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// MirrorX negates the X component.
func MirrorX(v Vec2) Vec2 {
	return Vec2{X: -v.X, Y: v.Y}
}

// Clamp01 clamps t to [0,1].
func Clamp01(t float64) float64 {
	return Clamp(t, 0, 1)
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// VectorClamp clamps each axis of v to the range spanned by a and b.
// a and b may be given in either order.
func VectorClamp(v, a, b Vec2) Vec2 {
	return Vec2{
		X: Clamp(v.X, math.Min(a.X, b.X), math.Max(a.X, b.X)),
		Y: Clamp(v.Y, math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)),
	}
}

// Side selects which way a curve normal points relative to its tangent.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Normal returns the unit normal of a tangent: tangent x (0,0,1) for the left
// row and tangent x (0,0,-1) for the mirrored right row.
func Normal(tangent Vec2, side Side) Vec2 {
	n := Vec2{X: tangent.Y, Y: -tangent.X}
	if side == SideRight {
		n = Vec2{X: -tangent.Y, Y: tangent.X}
	}
	return n.Normalized()
}

// UpAngle returns the rotation that turns a sprite's up axis (0,-1 in screen
// space) onto dir.
func UpAngle(dir Vec2) float64 {
	return math.Atan2(dir.X, -dir.Y)
}

// NearlyEqual reports whether a and b are within eps on both axes.
func NearlyEqual(a, b Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}
