package zipper

import (
	"math"
	"testing"

	zm "github.com/UnrealXinda/Zipper/shared/zipmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeResize(t *testing.T) {
	s := NewShape(2, false)
	s.SetPosition(1, zm.V(4, 5))

	s.Resize(4)
	require.Equal(t, 4, s.PointCount())
	assert.Equal(t, zm.V(4, 5), s.Position(3))

	s.Resize(1)
	assert.Equal(t, 1, s.PointCount())
}

func TestShapeIgnoresOutOfRange(t *testing.T) {
	s := NewShape(1, false)
	s.SetPosition(5, zm.V(1, 1))
	s.SetLeftTangent(-1, zm.V(1, 1))

	assert.Equal(t, zm.Vec2{}, s.Position(5))
	assert.Equal(t, zm.Vec2{}, s.Position(0))
}

func TestBakeLinearOpen(t *testing.T) {
	s := NewShape(3, false)
	s.SetPosition(0, zm.V(0, 0))
	s.SetPosition(1, zm.V(10, 0))
	s.SetPosition(2, zm.V(10, 10))

	out := s.Bake(0.5)
	assert.Equal(t, []zm.Vec2{zm.V(0, 0), zm.V(10, 0), zm.V(10, 10)}, out)
	assert.False(t, s.Dirty())
}

func TestBakeClosedPassesThroughPoints(t *testing.T) {
	s := NewShape(3, true)
	pts := []zm.Vec2{zm.V(0, 0), zm.V(10, 0), zm.V(5, 10)}
	for i, p := range pts {
		s.SetPosition(i, p)
		s.SetTangentMode(i, TangentContinuous)
		s.SetRightTangent(i, zm.V(2, 0))
		s.SetLeftTangent(i, zm.V(-2, 0))
	}

	out := s.Bake(0.1)
	require.GreaterOrEqual(t, len(out), 4)
	assert.Equal(t, pts[0], out[0])
	assert.True(t, zm.NearlyEqual(pts[0], out[len(out)-1], 1e-9))
	for _, p := range pts {
		assert.True(t, containsPoint(out, p, 1e-9), "outline misses %v", p)
	}
}

func TestBakeFollowsCurveWithinTolerance(t *testing.T) {
	s := NewShape(2, false)
	s.SetPosition(0, zm.V(0, 0))
	s.SetPosition(1, zm.V(100, 0))
	s.SetTangentMode(0, TangentContinuous)
	s.SetTangentMode(1, TangentContinuous)
	s.SetRightTangent(0, zm.V(0, 60))
	s.SetLeftTangent(1, zm.V(0, 60))

	const tol = 0.5
	out := s.Bake(tol)
	require.Greater(t, len(out), 2)

	for i := 0; i <= 20; i++ {
		p := zm.Cubic(zm.V(0, 0), zm.V(0, 60), zm.V(100, 60), zm.V(100, 0), float64(i)/20)
		assert.LessOrEqual(t, distanceToPolyline(out, p), 2*tol)
	}

	coarse := len(out)
	assert.Greater(t, len(s.Bake(tol/10)), coarse)
}

func containsPoint(pts []zm.Vec2, p zm.Vec2, eps float64) bool {
	for _, q := range pts {
		if zm.NearlyEqual(p, q, eps) {
			return true
		}
	}
	return false
}

func distanceToPolyline(pts []zm.Vec2, p zm.Vec2) float64 {
	best := math.Inf(1)
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		ab := b.Sub(a)
		t := 0.0
		if l := ab.Dot(&ab); l > 0 {
			off := p.Sub(a)
			t = zm.Clamp01(off.Dot(&ab) / l)
		}
		best = math.Min(best, p.Distance(a.Add(ab.MulScalar(t))))
	}
	return best
}

func TestBakeEmpty(t *testing.T) {
	s := NewShape(0, true)
	assert.Empty(t, s.Bake(0.5))
}

func TestSliderDrag(t *testing.T) {
	s := Slider{Min: zm.V(0, -50), Max: zm.V(0, 50)}

	assert.InDelta(t, 0.5, s.Drag(zm.V(30, 0)), 1e-9)
	assert.Equal(t, 1.0, s.Drag(zm.V(0, 500)))
	assert.Equal(t, 0.0, s.Drag(zm.V(0, -500)))
	assert.Equal(t, zm.V(0, 0), s.HandleLocal(0.5))
	assert.InDelta(t, 100, s.Length(), 1e-9)
}
