package systems

import (
	"fmt"

	"github.com/UnrealXinda/Zipper/components"
	cfg "github.com/UnrealXinda/Zipper/config"
	"github.com/UnrealXinda/Zipper/shared/zipmath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const statusFrames = 120

// UpdateEditor handles the authoring actions: selection, Record / Load,
// authoring mode, gizmo visibility and dragging rig points.
func UpdateEditor(e *ecs.ECS) {
	editor := GetOrCreateEditor(e)
	input := getOrCreateInput(e)

	if editor.StatusTimer > 0 {
		editor.StatusTimer--
		if editor.StatusTimer == 0 {
			editor.Status = ""
		}
	}

	if GetAction(input, cfg.ActionSelectNext).JustPressed {
		SelectNext(e)
	}
	if GetAction(input, cfg.ActionToggleGizmos).JustPressed {
		ToggleGizmos(e)
	}
	if GetAction(input, cfg.ActionToggleInspector).JustPressed {
		ToggleInspector(e)
	}
	if GetAction(input, cfg.ActionToggleMute).JustPressed {
		ToggleMute(e)
	}
	if GetAction(input, cfg.ActionToggleAuthoring).JustPressed {
		ToggleAuthoring(e)
	}
	if GetAction(input, cfg.ActionRecord).JustPressed {
		RecordSelected(e)
	}
	if GetAction(input, cfg.ActionLoad).JustPressed {
		LoadSelected(e)
	}

	updateGizmoDrag(e, editor)
}

// GetOrCreateEditor returns the singleton Editor component, creating it if needed
func GetOrCreateEditor(e *ecs.ECS) *components.EditorData {
	entry, ok := components.Editor.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Editor))
		components.Editor.SetValue(entry, components.EditorData{
			ShowGizmos:    cfg.Gizmo.ShowByDefault || cfg.Debug.ShowGizmos,
			ShowInspector: true,
			DragPoint:     components.GizmoNone,
		})
	}
	return components.Editor.Get(entry)
}

// Zippers returns the zipper controllers in scene order, skipping any that
// were removed.
func Zippers(e *ecs.ECS) []*donburi.Entry {
	sceneEntry, ok := components.Scene.First(e.World)
	if !ok {
		return nil
	}
	var out []*donburi.Entry
	for _, z := range components.Scene.Get(sceneEntry).Zippers {
		if z != nil && z.Valid() {
			out = append(out, z)
		}
	}
	return out
}

// SelectedZipper returns the zipper the editor acts on.
func SelectedZipper(e *ecs.ECS) *donburi.Entry {
	zippers := Zippers(e)
	if len(zippers) == 0 {
		return nil
	}
	editor := GetOrCreateEditor(e)
	if editor.Selected < 0 || editor.Selected >= len(zippers) {
		editor.Selected = 0
	}
	return zippers[editor.Selected]
}

// SelectNext cycles the selection through the scene's zippers.
func SelectNext(e *ecs.ECS) {
	zippers := Zippers(e)
	if len(zippers) == 0 {
		return
	}
	editor := GetOrCreateEditor(e)
	selectZipper(e, editor, zippers[(editor.Selected+1)%len(zippers)])
	PlaySFX(e, cfg.SoundSelect)
}

func selectZipper(e *ecs.ECS, editor *components.EditorData, zipper *donburi.Entry) {
	previous := SelectedZipper(e)
	for i, z := range Zippers(e) {
		if z != zipper {
			continue
		}
		if z != previous && editor.Authoring {
			setAuthoring(previous, false)
			setAuthoring(z, true)
		}
		editor.Selected = i
		return
	}
}

// ToggleAuthoring switches the selected zipper between its keyed curves and
// its hand-placed points.
func ToggleAuthoring(e *ecs.ECS) {
	editor := GetOrCreateEditor(e)
	editor.Authoring = !editor.Authoring
	editor.DragPoint = components.GizmoNone
	editor.DragSpline = nil

	zipper := SelectedZipper(e)
	setAuthoring(zipper, editor.Authoring)
	if editor.Authoring && !editor.ShowGizmos {
		editor.ShowGizmos = true
	}

	mode := "off"
	if editor.Authoring {
		mode = "on"
	}
	setStatus(editor, "Authoring %s", mode)
}

func setAuthoring(zipper *donburi.Entry, on bool) {
	if zipper == nil || !zipper.Valid() {
		return
	}
	if zipper.HasComponent(components.SeparateZipper) {
		components.SeparateZipper.Get(zipper).Rig.Debug = on
	}
	if zipper.HasComponent(components.ClosedZipper) {
		for _, s := range validSplines(zipper) {
			spline := components.SplineShape.Get(s)
			spline.Debug = on
			spline.Manual = on
		}
	}
}

// ToggleGizmos shows or hides the debug geometry.
func ToggleGizmos(e *ecs.ECS) {
	editor := GetOrCreateEditor(e)
	editor.ShowGizmos = !editor.ShowGizmos
	SaveEditorSettings(e)
}

// ToggleInspector shows or hides the inspector panel.
func ToggleInspector(e *ecs.ECS) {
	editor := GetOrCreateEditor(e)
	editor.ShowInspector = !editor.ShowInspector
	SaveEditorSettings(e)
}

// ToggleMute mutes or unmutes all sound.
func ToggleMute(e *ecs.ECS) {
	SetMuted(e, !IsMuted())
	SaveEditorSettings(e)
}

// CycleVolume steps the sound volume through the configured levels.
func CycleVolume(e *ecs.ECS) {
	steps := cfg.Settings.VolumeSteps
	if len(steps) == 0 {
		return
	}
	current := GetSFXVolume()
	next := steps[0]
	for i, v := range steps {
		if v > current+1e-6 {
			next = steps[i]
			break
		}
	}
	SetSFXVolume(e, next)
	SaveEditorSettings(e)
	setStatus(GetOrCreateEditor(e), "Volume %d%%", int(next*100+0.5))
}

// RecordSelected keys the selected zipper's current shape at its control
// value and saves the rig.
func RecordSelected(e *ecs.ECS) {
	zipper := SelectedZipper(e)
	if zipper == nil {
		return
	}
	editor := GetOrCreateEditor(e)
	name := components.Zipper.Get(zipper).Name
	control := components.Control.Get(zipper).Value

	if zipper.HasComponent(components.SeparateZipper) {
		components.SeparateZipper.Get(zipper).Rig.Record(control)
	}
	if zipper.HasComponent(components.ClosedZipper) {
		for _, s := range validSplines(zipper) {
			spline := components.SplineShape.Get(s)
			spline.Control = control
			spline.Rig.Record(control, spline.Shape)
		}
	}

	if err := SaveRig(zipper); err != nil {
		setStatus(editor, "Recorded %s at %.2f (not saved)", name, control)
	} else {
		setStatus(editor, "Recorded %s at %.2f", name, control)
	}
	PlaySFX(e, cfg.SoundRecord)
}

// LoadSelected restores the selected zipper's shape from its curves at its
// control value.
func LoadSelected(e *ecs.ECS) {
	zipper := SelectedZipper(e)
	if zipper == nil {
		return
	}
	editor := GetOrCreateEditor(e)
	control := components.Control.Get(zipper).Value

	if zipper.HasComponent(components.SeparateZipper) {
		components.SeparateZipper.Get(zipper).Rig.Load(control)
	}
	if zipper.HasComponent(components.ClosedZipper) {
		for _, s := range validSplines(zipper) {
			spline := components.SplineShape.Get(s)
			spline.Control = control
			spline.Rig.Apply(control, spline.Shape)
			spline.Shape.Bake(cfg.Zipper.BakeTolerance)
		}
	}

	setStatus(editor, "Loaded %s at %.2f", components.Zipper.Get(zipper).Name, control)
	PlaySFX(e, cfg.SoundLoad)
}

func setStatus(editor *components.EditorData, format string, args ...any) {
	editor.Status = fmt.Sprintf(format, args...)
	editor.StatusTimer = statusFrames
}

// gizmoPick is a rig point under the cursor.
type gizmoPick struct {
	point  components.GizmoPoint
	mirror bool
	spline *donburi.Entry
	index  int
}

func (p gizmoPick) ok() bool {
	return p.point != components.GizmoNone || p.spline != nil
}

func gizmoUnderCursor(e *ecs.ECS, editor *components.EditorData, world zipmath.Vec2) bool {
	return pickGizmo(e, editor, world).ok()
}

// pickGizmo finds the closest draggable point of the selected zipper within
// the pick radius.
func pickGizmo(e *ecs.ECS, editor *components.EditorData, world zipmath.Vec2) gizmoPick {
	pick := gizmoPick{point: components.GizmoNone}
	zipper := SelectedZipper(e)
	if zipper == nil || !editor.Authoring {
		return pick
	}
	best := cfg.Gizmo.PickRadius
	tr := components.Transform.Get(zipper)

	if zipper.HasComponent(components.SeparateZipper) {
		rig := components.SeparateZipper.Get(zipper).Rig
		points := [3]zipmath.Vec2{rig.P0, rig.P1, rig.P2}
		for i, p := range points {
			for _, mirror := range []bool{false, true} {
				local := p
				if mirror {
					local = zipmath.MirrorX(p)
				}
				if d := tr.TransformPoint(local).Distance(world); d <= best {
					best = d
					pick = gizmoPick{point: components.GizmoPoint(i), mirror: mirror}
				}
			}
		}
	}

	if zipper.HasComponent(components.ClosedZipper) {
		for _, s := range validSplines(zipper) {
			spline := components.SplineShape.Get(s)
			if !spline.Manual {
				continue
			}
			str := components.Transform.Get(s)
			for i := 0; i < spline.Shape.PointCount(); i++ {
				if d := str.TransformPoint(spline.Shape.Position(i)).Distance(world); d <= best {
					best = d
					pick = gizmoPick{point: components.GizmoNone, spline: s, index: i}
				}
			}
		}
	}
	return pick
}

func updateGizmoDrag(e *ecs.ECS, editor *components.EditorData) {
	mouse := getOrCreateMouse(e)
	button := mouse.Button()

	if !button.Pressed {
		editor.DragPoint = components.GizmoNone
		editor.DragSpline = nil
		return
	}

	if button.JustPressed && !mouse.OverUI {
		pick := pickGizmo(e, editor, mouse.World)
		editor.DragPoint = pick.point
		editor.DragMirror = pick.mirror
		editor.DragSpline = pick.spline
		editor.DragIndex = pick.index
	}

	zipper := SelectedZipper(e)
	if zipper == nil {
		return
	}

	if editor.DragPoint != components.GizmoNone && zipper.HasComponent(components.SeparateZipper) {
		local := components.Transform.Get(zipper).InverseTransformPoint(mouse.World)
		if editor.DragMirror {
			local = zipmath.MirrorX(local)
		}
		rig := components.SeparateZipper.Get(zipper).Rig
		switch editor.DragPoint {
		case components.GizmoP0:
			rig.P0 = local
		case components.GizmoP1:
			rig.P1 = local
		case components.GizmoP2:
			rig.P2 = local
		}
	}

	if editor.DragSpline != nil && editor.DragSpline.Valid() {
		spline := components.SplineShape.Get(editor.DragSpline)
		local := components.Transform.Get(editor.DragSpline).InverseTransformPoint(mouse.World)
		spline.Shape.SetPosition(editor.DragIndex, local)
		spline.Shape.Bake(cfg.Zipper.BakeTolerance)
	}
}
