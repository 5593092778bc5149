package tags

import "github.com/yohamta/donburi"

var (
	Zipper         = donburi.NewTag().SetName("Zipper")
	SeparateZipper = donburi.NewTag().SetName("SeparateZipper")
	ClosedZipper   = donburi.NewTag().SetName("ClosedZipper")
	SplineShape    = donburi.NewTag().SetName("SplineShape")
	Handle         = donburi.NewTag().SetName("Handle")
	Cursor         = donburi.NewTag().SetName("Cursor")
)

// Resolv tags for picking
const (
	ResolvHandle = "handle"
	ResolvCursor = "cursor"
)
