package zipmath

import (
	"honnef.co/go/curve"
)

// Point evaluates the quadratic Bezier p0,p1,p2 at t. t is clamped to [0,1].
func Point(p0, p1, p2 Vec2, t float64) Vec2 {
	t = Clamp01(t)
	u := 1 - t
	return Vec2{
		X: u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
		Y: u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
	}
}

// PointMirrorX evaluates the curve whose control points are mirrored across
// the local Y axis.
func PointMirrorX(p0, p1, p2 Vec2, t float64) Vec2 {
	return Point(MirrorX(p0), MirrorX(p1), MirrorX(p2), t)
}

// Derivative returns the first derivative of the curve at t.
// Unlike Point, t is not clamped: callers that sample slightly outside the
// curve get the extrapolated tangent.
func Derivative(p0, p1, p2 Vec2, t float64) Vec2 {
	a := 2 * (1 - t)
	b := 2 * t
	return Vec2{
		X: a*(p1.X-p0.X) + b*(p2.X-p1.X),
		Y: a*(p1.Y-p0.Y) + b*(p2.Y-p1.Y),
	}
}

// DerivativeMirrorX is Derivative for the mirrored curve.
func DerivativeMirrorX(p0, p1, p2 Vec2, t float64) Vec2 {
	return Derivative(MirrorX(p0), MirrorX(p1), MirrorX(p2), t)
}

// Quad is a quadratic Bezier segment.
type Quad struct {
	P0, P1, P2 Vec2
}

func (q Quad) Eval(t float64) Vec2 {
	return Point(q.P0, q.P1, q.P2, t)
}

func (q Quad) Deriv(t float64) Vec2 {
	return Derivative(q.P0, q.P1, q.P2, t)
}

// Mirror returns the curve mirrored across the local Y axis.
func (q Quad) Mirror() Quad {
	return Quad{P0: MirrorX(q.P0), P1: MirrorX(q.P1), P2: MirrorX(q.P2)}
}

// Sample returns n+1 evenly spaced points from t=0 to t=1.
func (q Quad) Sample(n int) []Vec2 {
	if n < 1 {
		n = 1
	}
	pts := make([]Vec2, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = q.Eval(float64(i) / float64(n))
	}
	return pts
}

// Cubic evaluates the cubic Bezier p0,c0,c1,p1 at t (clamped).
func Cubic(p0, c0, c1, p1 Vec2, t float64) Vec2 {
	cb := curve.CubicBez{P0: toPoint(p0), P1: toPoint(c0), P2: toPoint(c1), P3: toPoint(p1)}
	return fromPoint(cb.Eval(Clamp01(t)))
}
