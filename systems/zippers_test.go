package systems

import (
	"testing"

	"github.com/UnrealXinda/Zipper/archetypes"
	"github.com/UnrealXinda/Zipper/components"
	"github.com/UnrealXinda/Zipper/shared/zipmath"
	"github.com/UnrealXinda/Zipper/shared/zipper"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var testOutline = []zipmath.Vec2{zipmath.V(-10, 0), zipmath.V(10, 0)}

func spawnSpline(e *ecs.ECS, name, owner string, control float64) *donburi.Entry {
	s := archetypes.SplineShape.Spawn(e)
	components.SplineShape.SetValue(s, components.SplineShapeData{
		Name:    name,
		Owner:   owner,
		Shape:   zipper.NewShape(len(testOutline), true),
		Rig:     zipper.Spread(testOutline, 5),
		Control: control,
	})
	components.Transform.SetValue(s, components.TransformData{Transform: zipmath.Identity()})
	return s
}

func TestUpdateClosedZippersSkipsDebugSplines(t *testing.T) {
	e := newTestECS()
	z := spawnClosedZipper(e, "pouch", zipmath.Identity())
	components.Control.Get(z).Value = 0.7

	attached := spawnSpline(e, "slit", "pouch", 0)
	detached := spawnSpline(e, "lining", "pouch", 0.2)
	components.SplineShape.Get(detached).Debug = true
	removed := spawnSpline(e, "gone", "pouch", 0)
	e.World.Remove(removed.Entity())

	components.ClosedZipper.Get(z).Splines = []*donburi.Entry{attached, nil, detached, removed}

	assert.NotPanics(t, func() { UpdateClosedZippers(e) })
	assert.Equal(t, 0.7, components.SplineShape.Get(attached).Control)
	assert.Equal(t, 0.2, components.SplineShape.Get(detached).Control)
}

func TestUpdateSplineShapesSkipsFrozenShapes(t *testing.T) {
	e := newTestECS()
	live := spawnSpline(e, "live", "pouch", 1)
	debug := spawnSpline(e, "debug", "pouch", 1)
	components.SplineShape.Get(debug).Debug = true
	frozen := spawnSpline(e, "frozen", "pouch", 1)
	components.SplineShape.Get(frozen).Debug = true
	components.SplineShape.Get(frozen).Manual = true

	UpdateSplineShapes(e)

	for _, s := range []*donburi.Entry{live, debug} {
		shape := components.SplineShape.Get(s).Shape
		assert.True(t, zipmath.NearlyEqual(zipmath.V(-15, 0), shape.Position(0), 1e-9))
		assert.True(t, zipmath.NearlyEqual(zipmath.V(15, 0), shape.Position(1), 1e-9))
		assert.NotEmpty(t, shape.Outline())
	}

	shape := components.SplineShape.Get(frozen).Shape
	assert.Equal(t, zipmath.Vec2{}, shape.Position(0))
	assert.Empty(t, shape.Outline())
	assert.True(t, shape.Dirty())
}
