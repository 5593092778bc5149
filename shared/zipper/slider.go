package zipper

import (
	zm "github.com/UnrealXinda/Zipper/shared/zipmath"
)

// Slider is a handle track in a controller's local space.
type Slider struct {
	Min zm.Vec2
	Max zm.Vec2
}

// Drag maps a local-space drag position to a control value in [0,1].
func (s Slider) Drag(local zm.Vec2) float64 {
	return zm.ProjectControl(local, s.Min, s.Max)
}

// HandleLocal returns the handle position on the track for control.
func (s Slider) HandleLocal(control float64) zm.Vec2 {
	return zm.HandlePosition(s.Min, s.Max, control)
}

// Length returns the track length.
func (s Slider) Length() float64 {
	return s.Min.Distance(s.Max)
}
