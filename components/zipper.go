package components

import (
	"github.com/UnrealXinda/Zipper/shared/zipmath"
	"github.com/UnrealXinda/Zipper/shared/zipper"
	"github.com/yohamta/donburi"
)

// TransformData places an entity's local space in the world.
type TransformData struct {
	zipmath.Transform
}

var Transform = donburi.NewComponentType[TransformData]()

// ControlData is how open a zipper is, in [0,1].
type ControlData struct {
	Value float64
	// Last is the value at the end of the previous frame.
	Last float64
}

var Control = donburi.NewComponentType[ControlData]()

// HandleTrackData is the local segment the handle slides along.
type HandleTrackData struct {
	zipper.Slider
}

var HandleTrack = donburi.NewComponentType[HandleTrackData]()

// ZipperKind tells the two controller flavors apart.
type ZipperKind int

const (
	ZipperSeparate ZipperKind = iota
	ZipperClosed
)

func (k ZipperKind) String() string {
	if k == ZipperClosed {
		return "closed"
	}
	return "separate"
}

// ZipperData identifies a zipper controller and links its handle.
type ZipperData struct {
	Name   string
	Kind   ZipperKind
	Handle *donburi.Entry
}

var Zipper = donburi.NewComponentType[ZipperData]()

// SeparateZipperData is the state of a zipper whose teeth split apart.
type SeparateZipperData struct {
	Rig       *zipper.SeparateRig
	Left      []zipper.Pose
	Right     []zipper.Pose
	LeftTape  *zipper.Shape
	RightTape *zipper.Shape
}

var SeparateZipper = donburi.NewComponentType[SeparateZipperData]()

// ClosedZipperData drives a set of spline shapes from one control value.
type ClosedZipperData struct {
	Splines []*donburi.Entry
}

var ClosedZipper = donburi.NewComponentType[ClosedZipperData]()

// SplineShapeData is a spline shape whose points are keyed by control.
type SplineShapeData struct {
	Name    string
	Owner   string
	Shape   *zipper.Shape
	Rig     *zipper.SplineRig
	Control float64
	// Debug detaches the shape from its owning zipper.
	Debug bool
	// Manual freezes the shape for hand editing while in debug.
	Manual bool
}

var SplineShape = donburi.NewComponentType[SplineShapeData]()

// HandleData is the draggable pull tab of a zipper.
type HandleData struct {
	Zipper   *donburi.Entry
	Dragging bool
	Hovered  bool
}

var Handle = donburi.NewComponentType[HandleData]()
