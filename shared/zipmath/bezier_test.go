package zipmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestPointEndpoints(t *testing.T) {
	p0, p1, p2 := V(1, 2), V(5, -3), V(-4, 8)

	assert.True(t, NearlyEqual(p0, Point(p0, p1, p2, 0), eps))
	assert.True(t, NearlyEqual(p2, Point(p0, p1, p2, 1), eps))
}

func TestPointClampsT(t *testing.T) {
	p0, p1, p2 := V(0, 0), V(10, 10), V(20, 0)

	assert.Equal(t, Point(p0, p1, p2, 0), Point(p0, p1, p2, -0.5))
	assert.Equal(t, Point(p0, p1, p2, 1), Point(p0, p1, p2, 1.7))
}

func TestPointMidpoint(t *testing.T) {
	got := Point(V(0, 0), V(10, 10), V(20, 0), 0.5)
	assert.InDelta(t, 10, got.X, eps)
	assert.InDelta(t, 5, got.Y, eps)
}

func TestPointMirrorSymmetry(t *testing.T) {
	p0, p1, p2 := V(3, 0), V(7, 4), V(1, 9)
	for _, tt := range []float64{0, 0.1, 0.25, 0.5, 0.9, 1} {
		left := Point(p0, p1, p2, tt)
		right := PointMirrorX(p0, p1, p2, tt)
		assert.True(t, NearlyEqual(MirrorX(left), right, eps), "t=%v", tt)
	}
}

func TestDerivative(t *testing.T) {
	p0, p1, p2 := V(0, 0), V(10, 10), V(20, 0)

	assert.True(t, NearlyEqual(V(20, 20), Derivative(p0, p1, p2, 0), eps))
	assert.True(t, NearlyEqual(V(20, -20), Derivative(p0, p1, p2, 1), eps))
	assert.True(t, NearlyEqual(V(20, 0), Derivative(p0, p1, p2, 0.5), eps))
}

func TestDerivativeIsNotClamped(t *testing.T) {
	p0, p1, p2 := V(0, 0), V(10, 10), V(20, 0)

	// Linear in t, so it keeps changing past the end of the curve.
	assert.True(t, NearlyEqual(V(20, -40), Derivative(p0, p1, p2, 1.5), eps))
	assert.True(t, NearlyEqual(V(20, 40), Derivative(p0, p1, p2, -0.5), eps))
}

func TestDerivativeMirror(t *testing.T) {
	p0, p1, p2 := V(3, 0), V(7, 4), V(1, 9)
	d := Derivative(p0, p1, p2, 0.3)
	m := DerivativeMirrorX(p0, p1, p2, 0.3)
	assert.True(t, NearlyEqual(MirrorX(d), m, eps))
}

func TestQuadSample(t *testing.T) {
	q := Quad{P0: V(0, 0), P1: V(5, 5), P2: V(10, 0)}
	pts := q.Sample(4)

	assert.Len(t, pts, 5)
	assert.Equal(t, q.P0, pts[0])
	assert.True(t, NearlyEqual(q.P2, pts[4], eps))
}

func TestCubicEndpoints(t *testing.T) {
	p0, c0, c1, p1 := V(0, 0), V(0, 10), V(10, 10), V(10, 0)
	assert.True(t, NearlyEqual(p0, Cubic(p0, c0, c1, p1, 0), eps))
	assert.True(t, NearlyEqual(p1, Cubic(p0, c0, c1, p1, 1), eps))
}

func TestNormal(t *testing.T) {
	left := Normal(V(0, 5), SideLeft)
	right := Normal(V(0, 5), SideRight)

	assert.True(t, NearlyEqual(V(1, 0), left, eps))
	assert.True(t, NearlyEqual(V(-1, 0), right, eps))
	assert.Equal(t, V(0, 0), Normal(V(0, 0), SideLeft))
}

func TestUpAngle(t *testing.T) {
	assert.InDelta(t, 0, UpAngle(V(0, -1)), eps)
	assert.InDelta(t, math.Pi/2, UpAngle(V(1, 0)), eps)
}
