package zipper

import (
	zm "github.com/UnrealXinda/Zipper/shared/zipmath"
	"honnef.co/go/curve"
)

// DefaultBakeTolerance is the flattening tolerance used when Bake is given a
// non-positive one.
const DefaultBakeTolerance = 0.25

// TangentMode controls how a shape point's tangents are used when baking.
type TangentMode int

const (
	// TangentLinear ignores tangents: the segment is a straight line.
	TangentLinear TangentMode = iota
	// TangentContinuous uses the point's left/right tangents as cubic handles.
	TangentContinuous
)

// ShapePoint is one point of a spline shape. Tangents are offsets relative to
// Position.
type ShapePoint struct {
	Position     zm.Vec2
	LeftTangent  zm.Vec2
	RightTangent zm.Vec2
	Mode         TangentMode
}

// Shape is an editable spline made of points, baked into a polyline outline
// for drawing and hit-testing.
type Shape struct {
	Points []ShapePoint
	Closed bool

	path    curve.BezPath
	outline []zm.Vec2
	dirty   bool
}

// NewShape returns a shape with n points at the origin.
func NewShape(n int, closed bool) *Shape {
	s := &Shape{Closed: closed}
	s.Resize(n)
	return s
}

// PointCount returns the number of points.
func (s *Shape) PointCount() int {
	return len(s.Points)
}

// Resize grows or shrinks the point list to exactly n points. New points are
// placed at the last existing point.
func (s *Shape) Resize(n int) {
	if n < 0 {
		n = 0
	}
	for len(s.Points) < n {
		var p ShapePoint
		if len(s.Points) > 0 {
			p.Position = s.Points[len(s.Points)-1].Position
		}
		s.Points = append(s.Points, p)
	}
	s.Points = s.Points[:n]
	s.dirty = true
}

func (s *Shape) valid(i int) bool {
	return i >= 0 && i < len(s.Points)
}

func (s *Shape) SetPosition(i int, p zm.Vec2) {
	if s.valid(i) {
		s.Points[i].Position = p
		s.dirty = true
	}
}

func (s *Shape) SetLeftTangent(i int, t zm.Vec2) {
	if s.valid(i) {
		s.Points[i].LeftTangent = t
		s.dirty = true
	}
}

func (s *Shape) SetRightTangent(i int, t zm.Vec2) {
	if s.valid(i) {
		s.Points[i].RightTangent = t
		s.dirty = true
	}
}

func (s *Shape) SetTangentMode(i int, m TangentMode) {
	if s.valid(i) {
		s.Points[i].Mode = m
		s.dirty = true
	}
}

func (s *Shape) Position(i int) zm.Vec2 {
	if !s.valid(i) {
		return zm.Vec2{}
	}
	return s.Points[i].Position
}

func (s *Shape) LeftTangent(i int) zm.Vec2 {
	if !s.valid(i) {
		return zm.Vec2{}
	}
	return s.Points[i].LeftTangent
}

func (s *Shape) RightTangent(i int) zm.Vec2 {
	if !s.valid(i) {
		return zm.Vec2{}
	}
	return s.Points[i].RightTangent
}

// Bake flattens the shape into a polyline that stays within tolerance of the
// curve. The outline passes through every point and a closed shape ends back
// at its first point.
func (s *Shape) Bake(tolerance float64) []zm.Vec2 {
	if tolerance <= 0 {
		tolerance = DefaultBakeTolerance
	}
	s.outline = s.outline[:0]
	n := len(s.Points)
	if n == 0 {
		s.dirty = false
		return s.outline
	}

	s.path.Truncate(0)
	s.path.MoveTo(toPoint(s.Points[0].Position))
	last := n - 1
	if s.Closed && n > 1 {
		last = n
	}
	for i := 0; i < last; i++ {
		a := s.Points[i]
		b := s.Points[(i+1)%n]
		if a.Mode == TangentLinear && b.Mode == TangentLinear {
			s.path.LineTo(toPoint(b.Position))
			continue
		}
		s.path.CubicTo(
			toPoint(a.Position.Add(a.RightTangent)),
			toPoint(b.Position.Add(b.LeftTangent)),
			toPoint(b.Position),
		)
	}
	if s.Closed {
		s.path.ClosePath()
	}

	for el := range s.path.Flatten(tolerance) {
		switch el.Kind {
		case curve.MoveToKind, curve.LineToKind:
			s.outline = append(s.outline, zm.V(el.P0.X, el.P0.Y))
		}
	}
	s.dirty = false
	return s.outline
}

func toPoint(v zm.Vec2) curve.Point {
	return curve.Pt(v.X, v.Y)
}

// Outline returns the last baked outline.
func (s *Shape) Outline() []zm.Vec2 {
	return s.outline
}

// Dirty reports whether the shape changed since the last bake.
func (s *Shape) Dirty() bool {
	return s.dirty
}
