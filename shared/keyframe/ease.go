package keyframe

import (
	"fmt"
	"strings"

	"github.com/tanema/gween/ease"
)

// Ease adapts a gween easing function to the Interpolator interface over the
// unit interval.
type Ease struct {
	Name string
	fn   ease.TweenFunc
}

var eases = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inquad":     ease.InQuad,
	"outquad":    ease.OutQuad,
	"inoutquad":  ease.InOutQuad,
	"incubic":    ease.InCubic,
	"outcubic":   ease.OutCubic,
	"inoutcubic": ease.InOutCubic,
	"insine":     ease.InSine,
	"outsine":    ease.OutSine,
	"inoutsine":  ease.InOutSine,
}

// EaseByName looks up an easing function by a case-insensitive name such as
// "inOutQuad".
func EaseByName(name string) (Ease, error) {
	fn, ok := eases[strings.ToLower(name)]
	if !ok {
		return Ease{}, fmt.Errorf("unknown ease %q", name)
	}
	return Ease{Name: name, fn: fn}, nil
}

// Evaluate returns the eased value of t, clamped to [0,1] first.
func (e Ease) Evaluate(t float64) float64 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	if e.fn == nil {
		return t
	}
	return float64(e.fn(float32(t), 0, 1, 1))
}

// Interp returns the interpolator named by spec: an empty name is the identity
// curve.
func Interp(name string) (Interpolator, error) {
	if name == "" {
		return Linear(0, 1), nil
	}
	e, err := EaseByName(name)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Func returns the underlying gween easing function, linear when unset.
func (e Ease) Func() ease.TweenFunc {
	if e.fn == nil {
		return ease.Linear
	}
	return e.fn
}
