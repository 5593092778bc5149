package systems

import (
	"encoding/json"
	"testing"

	"github.com/UnrealXinda/Zipper/archetypes"
	"github.com/UnrealXinda/Zipper/components"
	"github.com/UnrealXinda/Zipper/shared/zipmath"
	"github.com/UnrealXinda/Zipper/shared/zipper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func spawnClosedWithSplines(e *ecs.ECS, names ...string) *donburi.Entry {
	z := spawnClosedZipper(e, "pouch", zipmath.Identity())
	data := components.ClosedZipper.Get(z)
	for _, n := range names {
		data.Splines = append(data.Splines, spawnSpline(e, n, "pouch", 0))
	}
	return z
}

func spawnSeparateZipper(e *ecs.ECS) *donburi.Entry {
	z := archetypes.SeparateZipper.Spawn(e)
	components.Zipper.SetValue(z, components.ZipperData{Name: "jacket", Kind: components.ZipperSeparate})
	components.SeparateZipper.SetValue(z, components.SeparateZipperData{
		Rig: zipper.NewSeparateRig(30, zipmath.V(0, 100), zipmath.V(0, 50), zipmath.V(0, 0)),
	})
	return z
}

func splineRig(z *donburi.Entry, i int) *zipper.SplineRig {
	return components.SplineShape.Get(components.ClosedZipper.Get(z).Splines[i]).Rig
}

func TestRestoreRigIgnoresOtherKind(t *testing.T) {
	e := newTestECS()
	closed := spawnClosedWithSplines(e, "slit")
	before := splineRig(closed, 0)

	restoreRig(closed, SavedRig{
		Kind:    components.ZipperSeparate.String(),
		Splines: map[string]*zipper.SplineRig{"slit": zipper.Spread(testOutline, 50)},
	})
	assert.Same(t, before, splineRig(closed, 0))

	separate := spawnSeparateZipper(e)
	rig := components.SeparateZipper.Get(separate).Rig
	restoreRig(separate, SavedRig{
		Kind:     components.ZipperClosed.String(),
		Separate: &zipper.SeparateRecord{P1: zipmath.V(40, 40)},
	})
	assert.Equal(t, zipmath.V(0, 50), rig.P1)
}

func TestRestoreRigIgnoresChangedSplineIndices(t *testing.T) {
	e := newTestECS()
	z := spawnClosedWithSplines(e, "slit", "lining")
	slit := splineRig(z, 0)

	wider := zipper.Spread(
		[]zipmath.Vec2{zipmath.V(-10, 0), zipmath.V(0, 5), zipmath.V(10, 0)}, 5,
	)
	matching := zipper.Spread(testOutline, 50)

	restoreRig(z, SavedRig{
		Kind: components.ZipperClosed.String(),
		Splines: map[string]*zipper.SplineRig{
			"slit":   wider,
			"lining": matching,
		},
	})
	assert.Same(t, slit, splineRig(z, 0))
	assert.Same(t, matching, splineRig(z, 1))
}

func TestRestoreRigAppliesSeparateRecord(t *testing.T) {
	e := newTestECS()
	z := spawnSeparateZipper(e)
	rig := components.SeparateZipper.Get(z).Rig

	restoreRig(z, SavedRig{
		Kind:     components.ZipperSeparate.String(),
		Separate: &zipper.SeparateRecord{P0: zipmath.V(0, 100), P1: zipmath.V(-20, 60), P2: zipmath.V(-30, 0)},
	})
	assert.Equal(t, zipmath.V(-20, 60), rig.P1)
	assert.NotNil(t, rig.Curve1X)
}

func TestSavedRigRoundTripsByName(t *testing.T) {
	e := newTestECS()
	z := spawnClosedWithSplines(e, "slit", "lining")
	splineRig(z, 1).Curves[0].PositionX.SetKey(0.5, -40)

	data, err := json.Marshal(snapshotRig(z))
	require.NoError(t, err)

	other := spawnClosedWithSplines(newTestECS(), "slit", "lining")
	var saved SavedRig
	require.NoError(t, json.Unmarshal(data, &saved))
	restoreRig(other, saved)

	assert.InDelta(t, -40, splineRig(other, 1).Curves[0].PositionX.Evaluate(0.5), 1e-9)
	assert.InDelta(t, -10, splineRig(other, 0).Curves[0].PositionX.Evaluate(0), 1e-9)
}
