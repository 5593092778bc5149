package zipper

import (
	"testing"

	"github.com/UnrealXinda/Zipper/shared/keyframe"
	zm "github.com/UnrealXinda/Zipper/shared/zipmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRig() *SeparateRig {
	r := NewSeparateRig(20, zm.V(0, 0), zm.V(0, 50), zm.V(0, 100))
	r.Curve1X = keyframe.Linear(0, 20)
	r.Curve1Y = keyframe.Linear(50, 50)
	r.Curve2X = keyframe.Linear(0, 60)
	r.Curve2Y = keyframe.Linear(100, 90)
	return r
}

func TestNewSeparateRigClampsCount(t *testing.T) {
	assert.Equal(t, MinTeeth, NewSeparateRig(3, zm.V(0, 0), zm.V(0, 0), zm.V(0, 0)).Count)
	assert.Equal(t, MaxTeeth, NewSeparateRig(500, zm.V(0, 0), zm.V(0, 0), zm.V(0, 0)).Count)
}

func TestControlPointsFollowCurves(t *testing.T) {
	r := newTestRig()

	_, p1, p2 := r.ControlPoints(0.5)
	assert.True(t, zm.NearlyEqual(zm.V(10, 50), p1, 1e-9))
	assert.True(t, zm.NearlyEqual(zm.V(30, 95), p2, 1e-9))
}

func TestControlPointsDebugUsesAuthoredPoints(t *testing.T) {
	r := newTestRig()
	r.Debug = true

	p0, p1, p2 := r.ControlPoints(1)
	assert.Equal(t, r.P0, p0)
	assert.Equal(t, r.P1, p1)
	assert.Equal(t, r.P2, p2)
}

func TestControlInterpReshapesControl(t *testing.T) {
	r := newTestRig()
	r.ControlInterp = keyframe.Constant(1)

	_, p1, _ := r.ControlPoints(0)
	assert.True(t, zm.NearlyEqual(zm.V(20, 50), p1, 1e-9))
}

func TestLayoutTeethCountAndMirror(t *testing.T) {
	r := newTestRig()
	left, right := r.LayoutTeeth(0.7, nil, nil)

	require.Len(t, left, r.Count)
	require.Len(t, right, r.Count)
	for i := range left {
		assert.True(t, zm.NearlyEqual(zm.MirrorX(left[i].Position), right[i].Position, 1e-9), "tooth %d", i)
		assert.InDelta(t, -left[i].Normal.X, right[i].Normal.X, 1e-9)
		assert.InDelta(t, left[i].Normal.Y, right[i].Normal.Y, 1e-9)
		assert.InDelta(t, 1, left[i].Normal.Magnitude(), 1e-9)
	}
}

func TestLayoutTeethFirstToothAtStart(t *testing.T) {
	r := newTestRig()
	r.TapeOffset = zm.V(2, 0)
	left, right := r.LayoutTeeth(0, nil, nil)

	assert.True(t, zm.NearlyEqual(zm.V(-2, 0), left[0].Position, 1e-9))
	assert.True(t, zm.NearlyEqual(zm.V(2, 0), right[0].Position, 1e-9))
}

func TestLayoutTeethLongitudinalOffset(t *testing.T) {
	r := newTestRig()
	r.LongitudinalOffset = 0.05
	left, right := r.LayoutTeeth(0, nil, nil)

	// Left samples t-offset (clamped to the start), right samples t+offset.
	assert.True(t, zm.NearlyEqual(zm.V(0, 0), left[0].Position, 1e-9))
	assert.Greater(t, right[0].Position.Y, 0.0)
}

func TestLayoutTeethReusesStorage(t *testing.T) {
	r := newTestRig()
	left := make([]Pose, 0, MaxTeeth)
	right := make([]Pose, 0, MaxTeeth)

	l, rr := r.LayoutTeeth(0.2, left, right)
	assert.Equal(t, cap(left), cap(l))
	assert.Equal(t, cap(right), cap(rr))
}

func TestUpdateTapes(t *testing.T) {
	r := newTestRig()
	left, right := NewShape(3, false), NewShape(70, false)

	r.UpdateTapes(0.3, left, right)

	require.Equal(t, r.Count, left.PointCount())
	require.Equal(t, r.Count, right.PointCount())
	p0, p1, p2 := r.ControlPoints(0.3)
	for i := 0; i < r.Count; i++ {
		tt := float64(i) / float64(r.Count)
		assert.Equal(t, zm.Point(p0, p1, p2, tt), left.Position(i))
		assert.Equal(t, zm.PointMirrorX(p0, p1, p2, tt), right.Position(i))
		assert.Equal(t, TangentLinear, left.Points[i].Mode)
	}
}

func TestRecordThenLoad(t *testing.T) {
	r := newTestRig()
	r.P1 = zm.V(7, 42)
	r.P2 = zm.V(13, 77)
	r.Record(0.4)

	r.P1, r.P2 = zm.V(0, 0), zm.V(0, 0)
	r.Load(0.4)

	assert.True(t, zm.NearlyEqual(zm.V(7, 42), r.P1, 1e-9))
	assert.True(t, zm.NearlyEqual(zm.V(13, 77), r.P2, 1e-9))
}

func TestRecordOverwritesExistingKey(t *testing.T) {
	r := newTestRig()
	before := r.Curve1X.Len()

	r.P1 = zm.V(99, 50)
	r.Record(1)

	assert.Equal(t, before, r.Curve1X.Len())
	assert.InDelta(t, 99, r.Curve1X.Evaluate(1), 1e-9)
}

func TestGizmo(t *testing.T) {
	r := newTestRig()
	g := r.Gizmo(16, 5)

	assert.Len(t, g.Left, 17)
	assert.Len(t, g.LeftNormals, r.Count)
	assert.Equal(t, zm.MirrorX(r.P1), g.RightControl[1])
	for _, n := range g.LeftNormals {
		assert.InDelta(t, 5, n[0].Distance(n[1]), 1e-9)
	}
}
