package zipper

import (
	"encoding/json"

	"github.com/UnrealXinda/Zipper/shared/keyframe"
	zm "github.com/UnrealXinda/Zipper/shared/zipmath"
)

// SplineCurves keys one shape point's position and tangents by control.
type SplineCurves struct {
	Index         int             `json:"index"`
	PositionX     *keyframe.Curve `json:"positionX"`
	PositionY     *keyframe.Curve `json:"positionY"`
	LeftTangentX  *keyframe.Curve `json:"leftTangentX"`
	LeftTangentY  *keyframe.Curve `json:"leftTangentY"`
	RightTangentX *keyframe.Curve `json:"rightTangentX"`
	RightTangentY *keyframe.Curve `json:"rightTangentY"`
}

// NewSplineCurves returns curves that hold a point still at pos with no
// tangents.
func NewSplineCurves(index int, pos zm.Vec2) SplineCurves {
	return SplineCurves{
		Index:         index,
		PositionX:     keyframe.Constant(pos.X),
		PositionY:     keyframe.Constant(pos.Y),
		LeftTangentX:  keyframe.Constant(0),
		LeftTangentY:  keyframe.Constant(0),
		RightTangentX: keyframe.Constant(0),
		RightTangentY: keyframe.Constant(0),
	}
}

func (c SplineCurves) Position(t float64) zm.Vec2 {
	return zm.V(c.PositionX.Evaluate(t), c.PositionY.Evaluate(t))
}

func (c SplineCurves) LeftTangent(t float64) zm.Vec2 {
	return zm.V(c.LeftTangentX.Evaluate(t), c.LeftTangentY.Evaluate(t))
}

func (c SplineCurves) RightTangent(t float64) zm.Vec2 {
	return zm.V(c.RightTangentX.Evaluate(t), c.RightTangentY.Evaluate(t))
}

// SplineRig drives a subset of a shape's points from keyframe curves.
type SplineRig struct {
	Curves []SplineCurves `json:"curves"`
}

// UnmarshalJSON decodes a rig and fills in curves missing from the data.
func (r *SplineRig) UnmarshalJSON(data []byte) error {
	type plain SplineRig
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = SplineRig(p)
	r.Normalize()
	return nil
}

// Normalize replaces nil curves with empty ones.
func (r *SplineRig) Normalize() {
	for i := range r.Curves {
		c := &r.Curves[i]
		for _, curve := range []**keyframe.Curve{
			&c.PositionX, &c.PositionY,
			&c.LeftTangentX, &c.LeftTangentY,
			&c.RightTangentX, &c.RightTangentY,
		} {
			if *curve == nil {
				*curve = &keyframe.Curve{}
			}
		}
	}
}

// Apply writes every keyed point of shape for control.
func (r *SplineRig) Apply(control float64, shape *Shape) {
	for _, c := range r.Curves {
		shape.SetPosition(c.Index, c.Position(control))
		shape.SetLeftTangent(c.Index, c.LeftTangent(control))
		shape.SetRightTangent(c.Index, c.RightTangent(control))
	}
}

// Record keys the shape's current point positions and tangents at control.
func (r *SplineRig) Record(control float64, shape *Shape) {
	for _, c := range r.Curves {
		pos := shape.Position(c.Index)
		left := shape.LeftTangent(c.Index)
		right := shape.RightTangent(c.Index)

		c.PositionX.SetKey(control, pos.X)
		c.PositionY.SetKey(control, pos.Y)
		c.LeftTangentX.SetKey(control, left.X)
		c.LeftTangentY.SetKey(control, left.Y)
		c.RightTangentX.SetKey(control, right.X)
		c.RightTangentY.SetKey(control, right.Y)
	}
}

// Spread builds a rig for a closed outline that opens by pushing every point
// outward from local x=0 by spread when control reaches 1.
func Spread(points []zm.Vec2, spread float64) *SplineRig {
	r := &SplineRig{Curves: make([]SplineCurves, len(points))}
	for i, p := range points {
		c := NewSplineCurves(i, p)
		dir := 0.0
		switch {
		case p.X < 0:
			dir = -1
		case p.X > 0:
			dir = 1
		}
		c.PositionX = keyframe.Linear(p.X, p.X+dir*spread)
		r.Curves[i] = c
	}
	return r
}
