// Package keyframe implements value curves keyed by time, used to map a zipper
// control value onto curve control points and spline tangents.
package keyframe

import (
	"encoding/json"
	"sort"
)

// Key is a single keyframe. InTangent and OutTangent are slopes (value per
// unit of time) on either side of the key.
type Key struct {
	Time       float64 `json:"time" toml:"time"`
	Value      float64 `json:"value" toml:"value"`
	InTangent  float64 `json:"in" toml:"in"`
	OutTangent float64 `json:"out" toml:"out"`
}

// Curve is a piecewise cubic Hermite curve through its keys. Outside the key
// range the curve holds the first/last value. An empty curve evaluates to 0.
type Curve struct {
	Keys []Key `json:"keys" toml:"keys"`
}

// UnmarshalJSON decodes a curve and sorts its keys by time. Tangents are kept
// as stored.
func (c *Curve) UnmarshalJSON(data []byte) error {
	type plain Curve
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*c = Curve(p)
	c.sort()
	return nil
}

// Interpolator maps a normalized input onto an output value.
type Interpolator interface {
	Evaluate(t float64) float64
}

var _ Interpolator = (*Curve)(nil)

// New returns a curve through the given keys with smooth tangents.
func New(keys ...Key) *Curve {
	c := &Curve{Keys: append([]Key(nil), keys...)}
	c.sort()
	c.smooth()
	return c
}

// Linear returns a straight line from v0 at t=0 to v1 at t=1.
func Linear(v0, v1 float64) *Curve {
	slope := v1 - v0
	return &Curve{Keys: []Key{
		{Time: 0, Value: v0, InTangent: slope, OutTangent: slope},
		{Time: 1, Value: v1, InTangent: slope, OutTangent: slope},
	}}
}

// Constant returns a curve with a single key.
func Constant(v float64) *Curve {
	return &Curve{Keys: []Key{{Time: 0, Value: v}}}
}

// Len returns the number of keys.
func (c *Curve) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Keys)
}

// Evaluate returns the curve value at t.
func (c *Curve) Evaluate(t float64) float64 {
	if c == nil || len(c.Keys) == 0 {
		return 0
	}
	keys := c.Keys
	if len(keys) == 1 || t <= keys[0].Time {
		return keys[0].Value
	}
	last := keys[len(keys)-1]
	if t >= last.Time {
		return last.Value
	}

	// First key strictly after t.
	i := sort.Search(len(keys), func(i int) bool { return keys[i].Time > t })
	k0, k1 := keys[i-1], keys[i]
	return hermite(k0, k1, t)
}

func hermite(k0, k1 Key, t float64) float64 {
	dt := k1.Time - k0.Time
	if dt <= 0 {
		return k1.Value
	}
	s := (t - k0.Time) / dt
	s2 := s * s
	s3 := s2 * s

	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2

	return h00*k0.Value + h10*dt*k0.OutTangent + h01*k1.Value + h11*dt*k1.InTangent
}

// IndexOf returns the index of the key at exactly time, or -1.
func (c *Curve) IndexOf(time float64) int {
	for i, k := range c.Keys {
		if k.Time == time {
			return i
		}
	}
	return -1
}

// AddKey inserts a key and recomputes smooth tangents. It returns the index of
// the new key, or -1 if a key already exists at time.
func (c *Curve) AddKey(time, value float64) int {
	if c.IndexOf(time) >= 0 {
		return -1
	}
	c.Keys = append(c.Keys, Key{Time: time, Value: value})
	c.sort()
	c.smooth()
	return c.IndexOf(time)
}

// SetKey overwrites the value of the key at exactly time, or adds a new key
// when none exists there.
func (c *Curve) SetKey(time, value float64) {
	if i := c.IndexOf(time); i >= 0 {
		c.Keys[i].Value = value
		c.smooth()
		return
	}
	c.AddKey(time, value)
}

// RemoveKey deletes the key at index i.
func (c *Curve) RemoveKey(i int) {
	if i < 0 || i >= len(c.Keys) {
		return
	}
	c.Keys = append(c.Keys[:i], c.Keys[i+1:]...)
	c.smooth()
}

// Clone returns a deep copy.
func (c *Curve) Clone() *Curve {
	if c == nil {
		return nil
	}
	return &Curve{Keys: append([]Key(nil), c.Keys...)}
}

func (c *Curve) sort() {
	sort.SliceStable(c.Keys, func(i, j int) bool { return c.Keys[i].Time < c.Keys[j].Time })
}

// smooth sets every tangent to the slope between the neighbouring keys.
// End keys use the slope towards their only neighbour.
func (c *Curve) smooth() {
	n := len(c.Keys)
	if n < 2 {
		for i := range c.Keys {
			c.Keys[i].InTangent, c.Keys[i].OutTangent = 0, 0
		}
		return
	}
	for i := range c.Keys {
		prev, next := i-1, i+1
		if prev < 0 {
			prev = i
		}
		if next >= n {
			next = i
		}
		dt := c.Keys[next].Time - c.Keys[prev].Time
		slope := 0.0
		if dt > 0 {
			slope = (c.Keys[next].Value - c.Keys[prev].Value) / dt
		}
		c.Keys[i].InTangent, c.Keys[i].OutTangent = slope, slope
	}
}
