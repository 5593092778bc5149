package zipmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectControl(t *testing.T) {
	min, max := V(0, 0), V(0, 100)

	tests := []struct {
		name  string
		local Vec2
		want  float64
	}{
		{"at min", V(0, 0), 0},
		{"at max", V(0, 100), 1},
		{"middle", V(0, 50), 0.5},
		{"off axis", V(40, 25), 0.25},
		{"beyond max", V(0, 250), 1},
		{"before min", V(0, -30), 0},
		{"before min off axis", V(-12, -30), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ProjectControl(tt.local, min, max), 1e-9)
		})
	}
}

func TestProjectControlDiagonal(t *testing.T) {
	min, max := V(10, 10), V(-10, 30)

	got := ProjectControl(V(0, 20), min, max)
	assert.InDelta(t, 0.5, got, 1e-9)

	got = ProjectControl(V(-50, 70), min, max)
	assert.InDelta(t, 1, got, 1e-9)
}

func TestProjectControlDegenerateTrack(t *testing.T) {
	p := V(3, 3)
	got := ProjectControl(V(10, -4), p, p)
	assert.Equal(t, 0.0, got)
	assert.False(t, math.IsNaN(got))
}

func TestHandlePosition(t *testing.T) {
	min, max := V(0, 0), V(0, 100)

	assert.Equal(t, V(0, 25), HandlePosition(min, max, 0.25))
	assert.Equal(t, max, HandlePosition(min, max, 3))
}

func TestProjectControlRoundTrip(t *testing.T) {
	min, max := V(-20, 5), V(40, 65)
	for _, c := range []float64{0, 0.2, 0.5, 0.75, 1} {
		pos := HandlePosition(min, max, c)
		assert.InDelta(t, c, ProjectControl(pos, min, max), 1e-9)
	}
}

func TestVectorClamp(t *testing.T) {
	got := VectorClamp(V(15, -5), V(10, 0), V(0, 10))
	assert.Equal(t, V(10, 0), got)
}

func TestTransformRoundTrip(t *testing.T) {
	tr := Transform{Position: V(100, 50), Rotation: 0.7, Scale: 2}
	local := V(3, -8)

	world := tr.TransformPoint(local)
	back := tr.InverseTransformPoint(world)
	assert.True(t, NearlyEqual(local, back, 1e-9))
}

func TestTransformZeroScaleActsAsIdentity(t *testing.T) {
	tr := Transform{Position: V(1, 1)}
	assert.Equal(t, V(3, 4), tr.TransformPoint(V(2, 3)))
	assert.Equal(t, 1.0, tr.UniformScale())
}

func TestTransformScalesThenRotatesThenTranslates(t *testing.T) {
	tr := Transform{Position: V(10, -5), Rotation: math.Pi / 2, Scale: 3}

	assert.True(t, NearlyEqual(V(10, -2), tr.TransformPoint(V(1, 0)), 1e-9))
	assert.True(t, NearlyEqual(V(0, 3), tr.TransformDirection(V(1, 0)), 1e-9))
	assert.True(t, NearlyEqual(V(1, 0), tr.InverseTransformPoint(V(10, -2)), 1e-9))
}
