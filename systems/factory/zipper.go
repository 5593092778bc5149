package factory

import (
	"log"

	"github.com/UnrealXinda/Zipper/archetypes"
	"github.com/UnrealXinda/Zipper/components"
	cfg "github.com/UnrealXinda/Zipper/config"
	"github.com/UnrealXinda/Zipper/shared/keyframe"
	"github.com/UnrealXinda/Zipper/shared/scenedata"
	"github.com/UnrealXinda/Zipper/shared/zipmath"
	"github.com/UnrealXinda/Zipper/shared/zipper"
	"github.com/charmbracelet/harmonica"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func zipperTransform(spec scenedata.ZipperSpec) components.TransformData {
	return components.TransformData{Transform: zipmath.Transform{
		Position: spec.Position,
		Rotation: spec.Rotation,
		Scale:    spec.Scale,
	}}
}

func setCommon(entry *donburi.Entry, spec scenedata.ZipperSpec, kind components.ZipperKind) {
	components.Zipper.SetValue(entry, components.ZipperData{
		Name: spec.Name,
		Kind: kind,
	})
	components.Transform.SetValue(entry, zipperTransform(spec))
	components.Control.SetValue(entry, components.ControlData{
		Value: spec.Control,
		Last:  spec.Control,
	})
	components.HandleTrack.SetValue(entry, components.HandleTrackData{
		Slider: zipper.Slider{Min: spec.TrackMin, Max: spec.TrackMax},
	})
	components.ZipperSound.SetValue(entry, components.ZipperSoundData{
		Spring: harmonica.NewSpring(harmonica.FPS(60), cfg.ZipperSound.SpringFrequency, cfg.ZipperSound.SpringDamping),
	})
	components.AutoPlay.SetValue(entry, components.AutoPlayData{})
}

// CreateSeparateZipper spawns a zipper whose two rows of teeth split apart,
// together with its handle.
func CreateSeparateZipper(ecs *ecs.ECS, spec scenedata.ZipperSpec) *donburi.Entry {
	entry := archetypes.SeparateZipper.Spawn(ecs)
	setCommon(entry, spec, components.ZipperSeparate)

	rig := zipper.NewSeparateRig(spec.Count, spec.P0, spec.ClosedP1, spec.ClosedP2)
	rig.Span(spec.ClosedP1, spec.ClosedP2, spec.OpenP1, spec.OpenP2)
	rig.ToothScale = zipmath.V(spec.ToothScale, spec.ToothScale)
	rig.TapeOffset = zipmath.V(spec.TapeOffset, 0)
	rig.LongitudinalOffset = spec.LongitudinalOffset
	interp, err := keyframe.Interp(spec.Interp)
	if err != nil {
		log.Printf("Warning: zipper %s: %v, using linear", spec.Name, err)
		interp = keyframe.Linear(0, 1)
	}
	rig.ControlInterp = interp
	rig.Normalize()

	components.SeparateZipper.SetValue(entry, components.SeparateZipperData{
		Rig:       rig,
		LeftTape:  zipper.NewShape(rig.Count, false),
		RightTape: zipper.NewShape(rig.Count, false),
	})

	CreateHandle(ecs, entry)
	return entry
}

// CreateClosedZipper spawns a zipper that opens its spline shapes, together
// with its handle and every spline the layout assigns to it.
func CreateClosedZipper(ecs *ecs.ECS, spec scenedata.ZipperSpec, splines []scenedata.SplineSpec) *donburi.Entry {
	entry := archetypes.ClosedZipper.Spawn(ecs)
	setCommon(entry, spec, components.ZipperClosed)

	data := components.ClosedZipperData{}
	for _, s := range splines {
		data.Splines = append(data.Splines, CreateSplineShape(ecs, s, spec.Control))
	}
	components.ClosedZipper.SetValue(entry, data)

	CreateHandle(ecs, entry)
	return entry
}

// CreateSplineShape spawns a spline shape that spreads outward as control
// rises.
func CreateSplineShape(ecs *ecs.ECS, spec scenedata.SplineSpec, control float64) *donburi.Entry {
	entry := archetypes.SplineShape.Spawn(ecs)

	shape := zipper.NewShape(len(spec.Points), spec.Closed)
	for i, p := range spec.Points {
		shape.SetPosition(i, p)
	}
	rig := zipper.Spread(spec.Points, spec.Spread)
	rig.Apply(control, shape)
	shape.Bake(cfg.Zipper.BakeTolerance)

	components.SplineShape.SetValue(entry, components.SplineShapeData{
		Name:    spec.Name,
		Owner:   spec.Owner,
		Shape:   shape,
		Rig:     rig,
		Control: control,
	})
	components.Transform.SetValue(entry, components.TransformData{Transform: zipmath.Transform{
		Position: spec.Position,
		Scale:    1,
	}})
	return entry
}
