package zipper

import (
	"encoding/json"
	"testing"

	zm "github.com/UnrealXinda/Zipper/shared/zipmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpreadRig(t *testing.T) {
	pts := []zm.Vec2{zm.V(-10, 0), zm.V(0, 20), zm.V(10, 0)}
	rig := Spread(pts, 5)
	shape := NewShape(len(pts), true)

	rig.Apply(0, shape)
	for i, p := range pts {
		assert.True(t, zm.NearlyEqual(p, shape.Position(i), 1e-9))
	}

	rig.Apply(1, shape)
	assert.True(t, zm.NearlyEqual(zm.V(-15, 0), shape.Position(0), 1e-9))
	assert.True(t, zm.NearlyEqual(zm.V(0, 20), shape.Position(1), 1e-9))
	assert.True(t, zm.NearlyEqual(zm.V(15, 0), shape.Position(2), 1e-9))
}

func TestSplineRecordThenApply(t *testing.T) {
	rig := Spread([]zm.Vec2{zm.V(-10, 0), zm.V(10, 0)}, 5)
	shape := NewShape(2, true)

	shape.SetPosition(0, zm.V(-30, 4))
	shape.SetRightTangent(0, zm.V(1, 2))
	shape.SetLeftTangent(1, zm.V(-3, 0))
	rig.Record(0.5, shape)

	other := NewShape(2, true)
	rig.Apply(0.5, other)
	assert.True(t, zm.NearlyEqual(zm.V(-30, 4), other.Position(0), 1e-9))
	assert.True(t, zm.NearlyEqual(zm.V(1, 2), other.RightTangent(0), 1e-9))
	assert.True(t, zm.NearlyEqual(zm.V(-3, 0), other.LeftTangent(1), 1e-9))
}

func TestSplineRigJSON(t *testing.T) {
	rig := Spread([]zm.Vec2{zm.V(-10, 0), zm.V(10, 0)}, 5)
	data, err := json.Marshal(rig)
	require.NoError(t, err)

	var got SplineRig
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got.Curves, 2)
	assert.InDelta(t, 15, got.Curves[1].Position(1).X, 1e-9)
}

func TestSplineRigJSONFillsMissingCurves(t *testing.T) {
	var rig SplineRig
	require.NoError(t, json.Unmarshal([]byte(`{"curves":[{"index":0,"positionX":{"keys":[]}}]}`), &rig))
	require.Len(t, rig.Curves, 1)

	shape := NewShape(1, false)
	shape.SetPosition(0, zm.V(3, 4))
	require.NotPanics(t, func() { rig.Record(0.5, shape) })

	other := NewShape(1, false)
	rig.Apply(0.5, other)
	assert.True(t, zm.NearlyEqual(zm.V(3, 4), other.Position(0), 1e-9))
}
