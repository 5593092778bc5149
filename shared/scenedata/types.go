// Package scenedata parses zipper scene layouts from Tiled TMX files.
// It has no dependencies on ebitengine, donburi, or resolv: pure data only.
package scenedata

import (
	zm "github.com/UnrealXinda/Zipper/shared/zipmath"
)

// Object classes recognised in the layout.
const (
	ClassSeparateZipper = "separate_zipper"
	ClassClosedZipper   = "closed_zipper"
	ClassZipperSpline   = "zipper_spline"
)

// Object group names.
const (
	GroupZippers = "Zippers"
	GroupSplines = "Splines"
)

// Layout is everything a scene file describes.
type Layout struct {
	Name    string
	Width   int
	Height  int
	Zippers []ZipperSpec
	Splines []SplineSpec
}

// ZipperSpec places one zipper controller. Points are local to the zipper's
// transform.
type ZipperSpec struct {
	Name     string
	Class    string
	Position zm.Vec2
	Rotation float64 // radians
	Scale    float64

	// Separate zipper tuning.
	Count              int
	ToothScale         float64
	TapeOffset         float64
	LongitudinalOffset float64
	Interp             string

	// Curve control points. ClosedP1/ClosedP2 are used at control 0 and
	// OpenP1/OpenP2 at control 1.
	P0       zm.Vec2
	ClosedP1 zm.Vec2
	ClosedP2 zm.Vec2
	OpenP1   zm.Vec2
	OpenP2   zm.Vec2

	// Handle track.
	TrackMin zm.Vec2
	TrackMax zm.Vec2

	Control float64 // starting control
}

// SplineSpec is one spline shape owned by a closed zipper.
type SplineSpec struct {
	Name     string
	Owner    string
	Position zm.Vec2
	Points   []zm.Vec2 // local to Position
	Closed   bool
	Spread   float64
}
