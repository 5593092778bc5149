package components

import (
	"image"

	"github.com/yohamta/donburi"
)

// GizmoPoint names a draggable rig point.
type GizmoPoint int

const (
	GizmoNone GizmoPoint = iota - 1
	GizmoP0
	GizmoP1
	GizmoP2
)

// EditorData is the authoring state (singleton component)
type EditorData struct {
	Selected      int // index into the scene's zipper order
	Authoring     bool
	ShowGizmos    bool
	ShowInspector bool

	// Point being dragged on the selected separate zipper; DragMirror is set
	// when it was grabbed on the mirrored row.
	DragPoint  GizmoPoint
	DragMirror bool

	// Spline point being dragged on the selected closed zipper.
	DragSpline *donburi.Entry
	DragIndex  int

	// Screen area covered by the inspector panel.
	PanelRect image.Rectangle

	Status      string
	StatusTimer int // frames left to show Status
}

var Editor = donburi.NewComponentType[EditorData]()
