package systems

import (
	"github.com/UnrealXinda/Zipper/components"
	cfg "github.com/UnrealXinda/Zipper/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClosedZippers pushes each closed zipper's control into the spline
// shapes it owns and places its handle.
func UpdateClosedZippers(e *ecs.ECS) {
	components.ClosedZipper.Each(e.World, func(entry *donburi.Entry) {
		control := components.Control.Get(entry).Value
		for _, s := range validSplines(entry) {
			spline := components.SplineShape.Get(s)
			if spline.Debug {
				continue
			}
			spline.Control = control
		}
		placeHandle(entry)
	})
}

// UpdateSplineShapes evaluates every spline shape's curves at its control and
// bakes the outline. Shapes frozen for hand editing are left alone.
func UpdateSplineShapes(e *ecs.ECS) {
	components.SplineShape.Each(e.World, func(entry *donburi.Entry) {
		spline := components.SplineShape.Get(entry)
		if spline.Debug && spline.Manual {
			return
		}
		spline.Rig.Apply(spline.Control, spline.Shape)
		spline.Shape.Bake(cfg.Zipper.BakeTolerance)
	})
}

// UpdateSeparateZippers places the handle, lays out both rows of teeth and
// rebuilds both tapes.
func UpdateSeparateZippers(e *ecs.ECS) {
	components.SeparateZipper.Each(e.World, func(entry *donburi.Entry) {
		control := components.Control.Get(entry).Value
		z := components.SeparateZipper.Get(entry)

		placeHandle(entry)
		z.Left, z.Right = z.Rig.LayoutTeeth(control, z.Left, z.Right)
		z.Rig.UpdateTapes(control, z.LeftTape, z.RightTape)
		z.LeftTape.Bake(cfg.Zipper.BakeTolerance)
		z.RightTape.Bake(cfg.Zipper.BakeTolerance)
	})
}

// validSplines returns a closed zipper's spline shapes that still exist.
func validSplines(zipper *donburi.Entry) []*donburi.Entry {
	data := components.ClosedZipper.Get(zipper)
	out := make([]*donburi.Entry, 0, len(data.Splines))
	for _, s := range data.Splines {
		if s != nil && s.Valid() {
			out = append(out, s)
		}
	}
	return out
}
