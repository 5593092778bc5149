// Package zipsound synthesizes the zipper rasp: a train of short metallic
// clicks, one per tooth, over a soft noise bed.
package zipsound

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Params tunes the rasp.
type Params struct {
	SampleRate  int
	Duration    time.Duration
	ClickRate   float64 // clicks per second
	ClickLength time.Duration
	ClickTone   float64 // Hz of the ringing component of each click
	ClickLevel  float64
	NoiseLevel  float64
	Volume      float64 // beep volume, log2 scale; 0 = unchanged
	Seed        int64
}

// clickTrain emits decaying noisy clicks at a fixed rate.
type clickTrain struct {
	rng      *rand.Rand
	period   int
	length   int
	tone     float64
	rate     float64
	level    float64
	position int
	total    int
}

func (c *clickTrain) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.position >= c.total {
			return i, i > 0
		}
		phase := c.position % c.period
		var val float64
		if phase < c.length {
			decay := math.Exp(-6 * float64(phase) / float64(c.length))
			ring := math.Sin(2 * math.Pi * c.tone * float64(phase) / c.rate)
			val = c.level * decay * (0.6*ring + 0.4*(c.rng.Float64()*2-1))
		}
		samples[i][0] = val
		samples[i][1] = val
		c.position++
	}
	return len(samples), true
}

func (c *clickTrain) Err() error { return nil }

// noiseBed is low-passed white noise.
type noiseBed struct {
	rng      *rand.Rand
	level    float64
	prev     float64
	position int
	total    int
}

func (nb *noiseBed) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if nb.position >= nb.total {
			return i, i > 0
		}
		raw := nb.rng.Float64()*2 - 1
		nb.prev += 0.15 * (raw - nb.prev)
		val := nb.level * nb.prev
		samples[i][0] = val
		samples[i][1] = val
		nb.position++
	}
	return len(samples), true
}

func (nb *noiseBed) Err() error { return nil }

// Rasp returns a finite streamer for the given params.
func Rasp(p Params) beep.Streamer {
	rate := beep.SampleRate(p.SampleRate)
	total := rate.N(p.Duration)
	rng := rand.New(rand.NewSource(p.Seed))

	clickRate := p.ClickRate
	if clickRate <= 0 {
		clickRate = 1
	}
	period := int(float64(p.SampleRate) / clickRate)
	if period < 1 {
		period = 1
	}
	length := rate.N(p.ClickLength)
	if length > period {
		length = period
	}
	if length < 1 {
		length = 1
	}

	clicks := &clickTrain{
		rng:    rng,
		period: period,
		length: length,
		tone:   p.ClickTone,
		rate:   float64(p.SampleRate),
		level:  p.ClickLevel,
		total:  total,
	}
	bed := &noiseBed{
		rng:   rand.New(rand.NewSource(p.Seed + 1)),
		level: p.NoiseLevel,
		total: total,
	}

	return &effects.Volume{
		Streamer: beep.Mix(clicks, bed),
		Base:     2,
		Volume:   p.Volume,
	}
}

// Samples drains up to n frames from s, clamped to [-1,1].
func Samples(s beep.Streamer, n int) [][2]float64 {
	out := make([][2]float64, 0, n)
	buf := make([][2]float64, 512)
	for len(out) < n {
		want := n - len(out)
		if want > len(buf) {
			want = len(buf)
		}
		got, ok := s.Stream(buf[:want])
		for _, f := range buf[:got] {
			out = append(out, [2]float64{clamp(f[0]), clamp(f[1])})
		}
		if !ok || got == 0 {
			break
		}
	}
	return out
}

// PCM renders s into signed 16-bit little-endian stereo, the format ebiten's
// audio players consume.
func PCM(s beep.Streamer, n int) []byte {
	frames := Samples(s, n)
	out := make([]byte, len(frames)*4)
	for i, f := range frames {
		binary.LittleEndian.PutUint16(out[i*4:], uint16(int16(f[0]*math.MaxInt16)))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(int16(f[1]*math.MaxInt16)))
	}
	return out
}

// Render synthesizes the full rasp as PCM.
func Render(p Params) []byte {
	return PCM(Rasp(p), beep.SampleRate(p.SampleRate).N(p.Duration))
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
