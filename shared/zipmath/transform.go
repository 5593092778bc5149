package zipmath

import (
	"honnef.co/go/curve"
)

// Transform places a local frame in world space: scale, then rotate, then
// translate.
type Transform struct {
	Position Vec2
	Rotation float64
	Scale    float64
}

// Identity returns a transform with unit scale at the origin.
func Identity() Transform {
	return Transform{Scale: 1}
}

// UniformScale returns the scale, treating an unset (zero) scale as 1.
func (tr Transform) UniformScale() float64 {
	if tr.Scale == 0 {
		return 1
	}
	return tr.Scale
}

// Affine returns the local-to-world matrix. A zero scale counts as 1.
func (tr Transform) Affine() curve.Affine {
	s := tr.UniformScale()
	return curve.Scale(s, s).
		ThenRotate(tr.Rotation).
		ThenTranslate(curve.Vec(tr.Position.X, tr.Position.Y))
}

// TransformPoint converts a local point to world space.
func (tr Transform) TransformPoint(p Vec2) Vec2 {
	return fromPoint(toPoint(p).Transform(tr.Affine()))
}

// InverseTransformPoint converts a world point to local space.
func (tr Transform) InverseTransformPoint(p Vec2) Vec2 {
	return fromPoint(toPoint(p).Transform(tr.Affine().Invert()))
}

// TransformDirection rotates and scales a local direction without translating.
func (tr Transform) TransformDirection(d Vec2) Vec2 {
	aff := tr.Affine().WithTranslation(curve.Vec2{})
	return fromPoint(toPoint(d).Transform(aff))
}

func toPoint(v Vec2) curve.Point {
	return curve.Pt(v.X, v.Y)
}

func fromPoint(p curve.Point) Vec2 {
	return Vec2{X: p.X, Y: p.Y}
}
