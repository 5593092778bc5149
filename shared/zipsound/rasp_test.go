package zipsound

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() Params {
	return Params{
		SampleRate:  44100,
		Duration:    250 * time.Millisecond,
		ClickRate:   40,
		ClickLength: 6 * time.Millisecond,
		ClickTone:   2400,
		ClickLevel:  0.8,
		NoiseLevel:  0.3,
		Seed:        7,
	}
}

func TestRaspLength(t *testing.T) {
	p := testParams()
	frames := Samples(Rasp(p), 1<<20)

	assert.Len(t, frames, 44100/4)
}

func TestRaspInRange(t *testing.T) {
	for _, f := range Samples(Rasp(testParams()), 1<<20) {
		require.GreaterOrEqual(t, f[0], -1.0)
		require.LessOrEqual(t, f[0], 1.0)
		require.Equal(t, f[0], f[1])
	}
}

func TestRaspDeterministic(t *testing.T) {
	a := Render(testParams())
	b := Render(testParams())
	assert.Equal(t, a, b)
}

func TestRaspHasClicks(t *testing.T) {
	p := testParams()
	p.NoiseLevel = 0
	frames := Samples(Rasp(p), 1<<20)

	period := p.SampleRate / int(p.ClickRate)
	// Between clicks the train is silent.
	assert.Equal(t, 0.0, frames[period-1][0])
	var peak float64
	for _, f := range frames[:period] {
		if f[0] > peak {
			peak = f[0]
		}
	}
	assert.Greater(t, peak, 0.05)
}

func TestRenderPCMSize(t *testing.T) {
	p := testParams()
	p.Duration = 10 * time.Millisecond
	assert.Len(t, Render(p), 441*4)
}
