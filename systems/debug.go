package systems

import (
	"image/color"

	"github.com/UnrealXinda/Zipper/components"
	cfg "github.com/UnrealXinda/Zipper/config"
	"github.com/UnrealXinda/Zipper/shared/zipmath"
	"github.com/UnrealXinda/Zipper/shared/zipper"
	"github.com/UnrealXinda/Zipper/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawGizmos renders the authoring overlay: both Bezier rows with their
// control points and tooth normals, the handle tracks, editable spline
// points and the picking boxes.
func DrawGizmos(e *ecs.ECS, screen *ebiten.Image) {
	editor := GetOrCreateEditor(e)
	if !editor.ShowGizmos {
		return
	}
	camX, camY, ok := cameraOffset(e, screen.Bounds().Dx(), screen.Bounds().Dy())
	if !ok {
		return
	}
	selected := SelectedZipper(e)

	for _, z := range Zippers(e) {
		tr := components.Transform.Get(z).Transform
		track := components.HandleTrack.Get(z)
		a := tr.TransformPoint(track.Min)
		b := tr.TransformPoint(track.Max)
		vector.StrokeLine(screen,
			float32(a.X+camX), float32(a.Y+camY),
			float32(b.X+camX), float32(b.Y+camY),
			cfg.Gizmo.TrackWidth, cfg.Colors.GizmoTrack, true)

		if z.HasComponent(components.SeparateZipper) {
			drawSeparateGizmo(screen, z, tr, camX, camY, z == selected && editor.Authoring)
		}
		if z.HasComponent(components.ClosedZipper) && cfg.Gizmo.ShowSplinePts {
			for _, s := range validSplines(z) {
				drawSplineGizmo(screen, s, camX, camY)
			}
		}
	}

	if selected != nil {
		drawSelection(screen, selected, camX, camY)
	}
	drawObjects(e, screen, camX, camY)
}

func drawSeparateGizmo(screen *ebiten.Image, z *donburi.Entry, tr zipmath.Transform, camX, camY float64, editable bool) {
	rig := components.SeparateZipper.Get(z).Rig
	g := rig.Gizmo(cfg.Gizmo.CurveSamples, cfg.Gizmo.NormalLength)

	drawPolyline(screen, tr, g.Left, camX, camY, cfg.Gizmo.CurveWidth, cfg.Colors.GizmoCurve)
	drawPolyline(screen, tr, g.Right, camX, camY, cfg.Gizmo.CurveWidth, cfg.Colors.GizmoCurve)

	if cfg.Gizmo.ShowNormals {
		for _, n := range g.LeftNormals {
			drawPolyline(screen, tr, n[:], camX, camY, 1, cfg.Colors.GizmoNormal)
		}
		for _, n := range g.RightNormals {
			drawPolyline(screen, tr, n[:], camX, camY, 1, cfg.Colors.GizmoNormal)
		}
	}

	pointColor := cfg.Colors.GizmoPoint
	if editable {
		pointColor = cfg.Colors.Selection
	}
	for _, ctrl := range [][3]zipmath.Vec2{g.LeftControl, g.RightControl} {
		drawPolyline(screen, tr, ctrl[:], camX, camY, 1, cfg.Colors.GizmoPoint)
		for _, p := range ctrl {
			w := tr.TransformPoint(p)
			vector.FillCircle(screen, float32(w.X+camX), float32(w.Y+camY), cfg.Gizmo.PointRadius, pointColor, true)
		}
	}
}

func drawSplineGizmo(screen *ebiten.Image, s *donburi.Entry, camX, camY float64) {
	spline := components.SplineShape.Get(s)
	tr := components.Transform.Get(s).Transform

	pointColor := cfg.Colors.GizmoPoint
	if spline.Manual {
		pointColor = cfg.Colors.Selection
	}
	for i := 0; i < spline.Shape.PointCount(); i++ {
		p := spline.Shape.Position(i)
		if spline.Shape.Points[i].Mode == zipper.TangentContinuous {
			left := p.Add(spline.Shape.LeftTangent(i))
			right := p.Add(spline.Shape.RightTangent(i))
			drawPolyline(screen, tr, []zipmath.Vec2{left, p, right}, camX, camY, 1, cfg.Colors.GizmoNormal)
		}
		w := tr.TransformPoint(p)
		vector.FillCircle(screen, float32(w.X+camX), float32(w.Y+camY), cfg.Gizmo.SplinePtRadius, pointColor, true)
	}
}

// drawSelection rings the selected zipper's handle.
func drawSelection(screen *ebiten.Image, z *donburi.Entry, camX, camY float64) {
	data := components.Zipper.Get(z)
	if data.Handle == nil || !data.Handle.Valid() {
		return
	}
	o := components.Object.Get(data.Handle)
	vector.StrokeRect(screen,
		float32(o.X+camX-2), float32(o.Y+camY-2),
		float32(o.W+4), float32(o.H+4),
		1, cfg.Colors.Selection, false)
}

// drawObjects outlines every collision object in the space.
func drawObjects(e *ecs.ECS, screen *ebiten.Image, camX, camY float64) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		x := obj.X + camX
		y := obj.Y + camY

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvHandle) {
			c = color.RGBA{0, 255, 0, 255} // Green
		} else if obj.HasTags(tags.ResolvCursor) {
			c = color.RGBA{255, 0, 255, 255} // Magenta
		}

		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}
}
