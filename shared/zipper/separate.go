// Package zipper holds the engine-independent zipper rigs: tooth layout along a
// pair of mirrored quadratic Beziers, spline shapes keyed by a control value,
// and the handle track that maps drags back to control.
package zipper

import (
	"github.com/UnrealXinda/Zipper/shared/keyframe"
	zm "github.com/UnrealXinda/Zipper/shared/zipmath"
)

const (
	MinTeeth = 20
	MaxTeeth = 60

	MaxLongitudinalOffset = 0.1
)

// Pose is the local placement of a single tooth.
type Pose struct {
	Position zm.Vec2
	Normal   zm.Vec2
	Rotation float64
	Scale    zm.Vec2
}

// SeparateRig describes a zipper whose two rows of teeth split apart as it
// opens. The left row follows the curve P0,P1,P2; the right row follows the
// same curve mirrored across local x=0.
type SeparateRig struct {
	Count   int
	P0      zm.Vec2
	P1      zm.Vec2
	P2      zm.Vec2
	Curve1X *keyframe.Curve
	Curve1Y *keyframe.Curve
	Curve2X *keyframe.Curve
	Curve2Y *keyframe.Curve

	// ControlInterp reshapes control before the curves are sampled.
	ControlInterp keyframe.Interpolator

	// Debug freezes P1/P2 at their authored values instead of the curves.
	Debug bool

	ToothScale         zm.Vec2
	TapeOffset         zm.Vec2
	LongitudinalOffset float64
}

// NewSeparateRig returns a rig with identity interpolation whose curves hold
// P1/P2 constant.
func NewSeparateRig(count int, p0, p1, p2 zm.Vec2) *SeparateRig {
	r := &SeparateRig{
		Count:         count,
		P0:            p0,
		P1:            p1,
		P2:            p2,
		Curve1X:       keyframe.Constant(p1.X),
		Curve1Y:       keyframe.Constant(p1.Y),
		Curve2X:       keyframe.Constant(p2.X),
		Curve2Y:       keyframe.Constant(p2.Y),
		ControlInterp: keyframe.Linear(0, 1),
		ToothScale:    zm.V(1, 1),
	}
	r.Normalize()
	return r
}

// Normalize clamps the tunables into their supported ranges.
func (r *SeparateRig) Normalize() {
	r.Count = int(zm.Clamp(float64(r.Count), MinTeeth, MaxTeeth))
	r.LongitudinalOffset = zm.Clamp(r.LongitudinalOffset, 0, MaxLongitudinalOffset)
	if r.ControlInterp == nil {
		r.ControlInterp = keyframe.Linear(0, 1)
	}
	for _, c := range []**keyframe.Curve{&r.Curve1X, &r.Curve1Y, &r.Curve2X, &r.Curve2Y} {
		if *c == nil {
			*c = &keyframe.Curve{}
		}
	}
}

// InterpControl returns control after the interp curve.
func (r *SeparateRig) InterpControl(control float64) float64 {
	return r.ControlInterp.Evaluate(zm.Clamp01(control))
}

// ControlPoints returns the curve's control points for control.
func (r *SeparateRig) ControlPoints(control float64) (p0, p1, p2 zm.Vec2) {
	p0, p1, p2 = r.P0, r.P1, r.P2
	if r.Debug {
		return p0, p1, p2
	}
	c := r.InterpControl(control)
	p1 = zm.V(r.Curve1X.Evaluate(c), r.Curve1Y.Evaluate(c))
	p2 = zm.V(r.Curve2X.Evaluate(c), r.Curve2Y.Evaluate(c))
	return p0, p1, p2
}

// Quad returns the left row's curve for control.
func (r *SeparateRig) Quad(control float64) zm.Quad {
	p0, p1, p2 := r.ControlPoints(control)
	return zm.Quad{P0: p0, P1: p1, P2: p2}
}

// LayoutTeeth writes Count poses per row into left and right, reusing their
// storage, and returns the resulting slices.
func (r *SeparateRig) LayoutTeeth(control float64, left, right []Pose) ([]Pose, []Pose) {
	left = resizePoses(left, r.Count)
	right = resizePoses(right, r.Count)

	p0, p1, p2 := r.ControlPoints(control)
	for i := 0; i < r.Count; i++ {
		t := float64(i) / float64(r.Count)
		lt := t - r.LongitudinalOffset
		rt := t + r.LongitudinalOffset

		lp := zm.Point(p0, p1, p2, lt)
		ln := zm.Normal(zm.Derivative(p0, p1, p2, lt), zm.SideLeft)
		left[i] = Pose{
			Position: lp.Sub(r.TapeOffset),
			Normal:   ln,
			Rotation: zm.UpAngle(ln),
			Scale:    r.ToothScale,
		}

		rp := zm.PointMirrorX(p0, p1, p2, rt)
		rn := zm.Normal(zm.DerivativeMirrorX(p0, p1, p2, rt), zm.SideRight)
		right[i] = Pose{
			Position: rp.Add(r.TapeOffset),
			Normal:   rn,
			Rotation: zm.UpAngle(rn),
			Scale:    r.ToothScale,
		}
	}
	return left, right
}

// UpdateTapes rebuilds both tape shapes: Count linear points sampled at
// t = i/Count along each row's curve.
func (r *SeparateRig) UpdateTapes(control float64, left, right *Shape) {
	left.Resize(r.Count)
	right.Resize(r.Count)

	p0, p1, p2 := r.ControlPoints(control)
	for i := 0; i < r.Count; i++ {
		t := float64(i) / float64(r.Count)
		left.SetPosition(i, zm.Point(p0, p1, p2, t))
		left.SetTangentMode(i, TangentLinear)
		right.SetPosition(i, zm.PointMirrorX(p0, p1, p2, t))
		right.SetTangentMode(i, TangentLinear)
	}
}

// Record keys the current P1/P2 into the curves at control.
func (r *SeparateRig) Record(control float64) {
	r.Curve1X.SetKey(control, r.P1.X)
	r.Curve1Y.SetKey(control, r.P1.Y)
	r.Curve2X.SetKey(control, r.P2.X)
	r.Curve2Y.SetKey(control, r.P2.Y)
}

// Load sets P1/P2 from the curves at control.
func (r *SeparateRig) Load(control float64) {
	r.P1 = zm.V(r.Curve1X.Evaluate(control), r.Curve1Y.Evaluate(control))
	r.P2 = zm.V(r.Curve2X.Evaluate(control), r.Curve2Y.Evaluate(control))
}

// Gizmo is the debug geometry for a separate rig, in local space.
type Gizmo struct {
	Left, Right  []zm.Vec2
	LeftControl  [3]zm.Vec2
	RightControl [3]zm.Vec2
	LeftNormals  [][2]zm.Vec2
	RightNormals [][2]zm.Vec2
}

// Gizmo samples the authored curves (P0/P1/P2 as they are, like the editor
// view) with normals of the given length at each tooth.
func (r *SeparateRig) Gizmo(samples int, normalLength float64) Gizmo {
	q := zm.Quad{P0: r.P0, P1: r.P1, P2: r.P2}
	m := q.Mirror()
	g := Gizmo{
		Left:         q.Sample(samples),
		Right:        m.Sample(samples),
		LeftControl:  [3]zm.Vec2{q.P0, q.P1, q.P2},
		RightControl: [3]zm.Vec2{m.P0, m.P1, m.P2},
		LeftNormals:  make([][2]zm.Vec2, r.Count),
		RightNormals: make([][2]zm.Vec2, r.Count),
	}
	for i := 0; i < r.Count; i++ {
		t := float64(i)/float64(r.Count) + r.LongitudinalOffset
		lp := q.Eval(t)
		ln := zm.Normal(q.Deriv(t), zm.SideLeft)
		rp := m.Eval(t)
		rn := zm.Normal(m.Deriv(t), zm.SideRight)
		g.LeftNormals[i] = [2]zm.Vec2{lp, lp.Add(ln.MulScalar(normalLength))}
		g.RightNormals[i] = [2]zm.Vec2{rp, rp.Add(rn.MulScalar(normalLength))}
	}
	return g
}

func resizePoses(p []Pose, n int) []Pose {
	if cap(p) < n {
		return make([]Pose, n)
	}
	return p[:n]
}
