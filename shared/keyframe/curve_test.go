package keyframe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyCurve(t *testing.T) {
	var c *Curve
	assert.Equal(t, 0.0, c.Evaluate(0.5))
	assert.Equal(t, 0.0, (&Curve{}).Evaluate(0.5))
}

func TestConstant(t *testing.T) {
	c := Constant(4)
	assert.Equal(t, 4.0, c.Evaluate(-1))
	assert.Equal(t, 4.0, c.Evaluate(0.3))
	assert.Equal(t, 4.0, c.Evaluate(10))
}

func TestLinear(t *testing.T) {
	c := Linear(2, 6)
	for _, tt := range []float64{0, 0.25, 0.5, 0.8, 1} {
		assert.InDelta(t, 2+4*tt, c.Evaluate(tt), 1e-9, "t=%v", tt)
	}
}

func TestEvaluateClampsOutsideRange(t *testing.T) {
	c := New(Key{Time: 0.2, Value: 1}, Key{Time: 0.8, Value: 3})
	assert.Equal(t, 1.0, c.Evaluate(0))
	assert.Equal(t, 3.0, c.Evaluate(1))
}

func TestEvaluateHitsKeys(t *testing.T) {
	c := New(
		Key{Time: 0, Value: 0},
		Key{Time: 0.5, Value: 10},
		Key{Time: 1, Value: 2},
	)
	assert.InDelta(t, 0, c.Evaluate(0), 1e-9)
	assert.InDelta(t, 10, c.Evaluate(0.5), 1e-9)
	assert.InDelta(t, 2, c.Evaluate(1), 1e-9)
}

func TestNewSortsKeys(t *testing.T) {
	c := New(Key{Time: 1, Value: 5}, Key{Time: 0, Value: 1})
	require.Equal(t, 2, c.Len())
	assert.Equal(t, 0.0, c.Keys[0].Time)
	assert.Equal(t, 1.0, c.Keys[1].Time)
}

func TestAddKey(t *testing.T) {
	c := Linear(0, 1)

	i := c.AddKey(0.5, 3)
	assert.Equal(t, 1, i)
	assert.Equal(t, 3, c.Len())
	assert.InDelta(t, 3, c.Evaluate(0.5), 1e-9)

	assert.Equal(t, -1, c.AddKey(0.5, 7), "duplicate time is rejected")
	assert.InDelta(t, 3, c.Evaluate(0.5), 1e-9)
}

func TestSetKeyReplacesExistingTime(t *testing.T) {
	c := Linear(0, 1)
	c.SetKey(1, 9)

	assert.Equal(t, 2, c.Len())
	assert.InDelta(t, 9, c.Evaluate(1), 1e-9)

	c.SetKey(0.25, -1)
	assert.Equal(t, 3, c.Len())
	assert.InDelta(t, -1, c.Evaluate(0.25), 1e-9)
}

func TestRemoveKey(t *testing.T) {
	c := New(Key{Time: 0, Value: 0}, Key{Time: 0.5, Value: 4}, Key{Time: 1, Value: 0})
	c.RemoveKey(1)
	assert.Equal(t, 2, c.Len())
	assert.InDelta(t, 0, c.Evaluate(0.5), 1e-9)

	c.RemoveKey(5)
	assert.Equal(t, 2, c.Len())
}

func TestCloneIsIndependent(t *testing.T) {
	c := Linear(0, 1)
	d := c.Clone()
	d.SetKey(1, 5)

	assert.InDelta(t, 1, c.Evaluate(1), 1e-9)
	assert.InDelta(t, 5, d.Evaluate(1), 1e-9)
}

func TestJSON(t *testing.T) {
	c := New(Key{Time: 0, Value: 1}, Key{Time: 1, Value: 2})
	data, err := json.Marshal(c)
	require.NoError(t, err)

	var got Curve
	require.NoError(t, json.Unmarshal(data, &got))
	assert.InDelta(t, c.Evaluate(0.4), got.Evaluate(0.4), 1e-12)
}

func TestUnmarshalSortsKeys(t *testing.T) {
	var c Curve
	require.NoError(t, json.Unmarshal([]byte(`{"keys":[{"time":1,"value":10},{"time":0,"value":0}]}`), &c))

	require.Equal(t, 2, c.Len())
	assert.Equal(t, 0.0, c.Keys[0].Time)
	assert.InDelta(t, 5, c.Evaluate(0.5), 1e-9)
	assert.Equal(t, 10.0, c.Evaluate(2))
}

func TestEase(t *testing.T) {
	e, err := EaseByName("InOutQuad")
	require.NoError(t, err)

	assert.InDelta(t, 0, e.Evaluate(0), 1e-6)
	assert.InDelta(t, 1, e.Evaluate(1), 1e-6)
	assert.InDelta(t, 0.5, e.Evaluate(0.5), 1e-6)
	assert.InDelta(t, 1, e.Evaluate(3), 1e-6)

	_, err = EaseByName("wobble")
	assert.Error(t, err)
}

func TestInterpDefaultsToIdentity(t *testing.T) {
	in, err := Interp("")
	require.NoError(t, err)
	assert.InDelta(t, 0.3, in.Evaluate(0.3), 1e-9)
}
