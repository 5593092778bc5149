package zipper

import (
	"github.com/UnrealXinda/Zipper/shared/keyframe"
	zm "github.com/UnrealXinda/Zipper/shared/zipmath"
)

// SeparateRecord is the persisted form of a SeparateRig's authored data.
type SeparateRecord struct {
	P0      zm.Vec2         `json:"p0"`
	P1      zm.Vec2         `json:"p1"`
	P2      zm.Vec2         `json:"p2"`
	Curve1X *keyframe.Curve `json:"curve1x"`
	Curve1Y *keyframe.Curve `json:"curve1y"`
	Curve2X *keyframe.Curve `json:"curve2x"`
	Curve2Y *keyframe.Curve `json:"curve2y"`
}

// Span keys P1 and P2 linearly from their closed positions at control 0 to
// their open positions at control 1.
func (r *SeparateRig) Span(closed1, closed2, open1, open2 zm.Vec2) {
	r.Curve1X = keyframe.Linear(closed1.X, open1.X)
	r.Curve1Y = keyframe.Linear(closed1.Y, open1.Y)
	r.Curve2X = keyframe.Linear(closed2.X, open2.X)
	r.Curve2Y = keyframe.Linear(closed2.Y, open2.Y)
	r.P1 = closed1
	r.P2 = closed2
}

// Snapshot copies the authored points and curves.
func (r *SeparateRig) Snapshot() SeparateRecord {
	return SeparateRecord{
		P0:      r.P0,
		P1:      r.P1,
		P2:      r.P2,
		Curve1X: r.Curve1X.Clone(),
		Curve1Y: r.Curve1Y.Clone(),
		Curve2X: r.Curve2X.Clone(),
		Curve2Y: r.Curve2Y.Clone(),
	}
}

// Restore replaces the authored points and curves. Missing curves keep their
// current value.
func (r *SeparateRig) Restore(rec SeparateRecord) {
	r.P0, r.P1, r.P2 = rec.P0, rec.P1, rec.P2
	if rec.Curve1X != nil {
		r.Curve1X = rec.Curve1X.Clone()
	}
	if rec.Curve1Y != nil {
		r.Curve1Y = rec.Curve1Y.Clone()
	}
	if rec.Curve2X != nil {
		r.Curve2X = rec.Curve2X.Clone()
	}
	if rec.Curve2Y != nil {
		r.Curve2Y = rec.Curve2Y.Clone()
	}
	r.Normalize()
}
