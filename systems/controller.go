package systems

import (
	"github.com/UnrealXinda/Zipper/components"
	"github.com/UnrealXinda/Zipper/shared/zipmath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Every zipper controller reacts to its handle the same way; the kind only
// changes what control drives afterwards.

// HandleDown is sent when the handle is grabbed.
func HandleDown(e *ecs.ECS, zipper *donburi.Entry) {
	if !zipper.Valid() {
		return
	}
	StopAutoPlay(zipper)
	StopZipperSound(zipper)
}

// HandleUp is sent when the handle is released.
func HandleUp(e *ecs.ECS, zipper *donburi.Entry) {
	if !zipper.Valid() {
		return
	}
	StopZipperSound(zipper)
}

// HandleDragged maps a world-space drag position onto the zipper's handle
// track and sets control from it.
func HandleDragged(e *ecs.ECS, zipper *donburi.Entry, world math.Vec2) {
	if !zipper.Valid() {
		return
	}
	tr := components.Transform.Get(zipper)
	track := components.HandleTrack.Get(zipper)

	local := tr.InverseTransformPoint(world)
	SetControl(zipper, track.Drag(local))
	PlayZipperSound(zipper)
}

// SetControl clamps and stores a zipper's control value.
func SetControl(zipper *donburi.Entry, value float64) {
	components.Control.Get(zipper).Value = zipmath.Clamp01(value)
}

// HandleWorldPosition is where the handle sits on the track for the current
// control.
func HandleWorldPosition(zipper *donburi.Entry) zipmath.Vec2 {
	tr := components.Transform.Get(zipper)
	track := components.HandleTrack.Get(zipper)
	control := components.Control.Get(zipper).Value
	return zipmath.HandlePosition(
		tr.TransformPoint(track.Min),
		tr.TransformPoint(track.Max),
		control,
	)
}

// placeHandle moves the zipper's handle and its picking box onto the track.
func placeHandle(zipper *donburi.Entry) {
	data := components.Zipper.Get(zipper)
	if data.Handle == nil || !data.Handle.Valid() {
		return
	}
	pos := HandleWorldPosition(zipper)
	obj := components.Object.Get(data.Handle)
	obj.X = pos.X - obj.W/2
	obj.Y = pos.Y
	obj.Update()
}
