package systems

import (
	"image/color"

	"github.com/UnrealXinda/Zipper/assets"
	"github.com/UnrealXinda/Zipper/components"
	cfg "github.com/UnrealXinda/Zipper/config"
	"github.com/UnrealXinda/Zipper/shared/zipmath"
	"github.com/UnrealXinda/Zipper/shared/zipper"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const toothSheen = 0.35

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
	fillOp   = &ebiten.DrawTrianglesOptions{FillRule: ebiten.FillRuleNonZero}

	// Scratch buffers reused by every filled path.
	fillVerts []ebiten.Vertex
	fillIdx   []uint16
)

// DrawBackground clears the screen to the scene color.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)
}

// DrawTapes renders the fabric on both sides of every separate zipper.
func DrawTapes(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(e, screen.Bounds().Dx(), screen.Bounds().Dy())
	if !ok {
		return
	}

	components.SeparateZipper.Each(e.World, func(entry *donburi.Entry) {
		sz := components.SeparateZipper.Get(entry)
		tr := components.Transform.Get(entry)
		width := tapeWidth(tr.Transform)
		drawPolyline(screen, tr.Transform, sz.LeftTape.Outline(), camX, camY, width, cfg.Colors.LeftTape)
		drawPolyline(screen, tr.Transform, sz.RightTape.Outline(), camX, camY, width, cfg.Colors.RightTape)
	})
}

// DrawSplineShapes fills and outlines the baked spline shapes.
func DrawSplineShapes(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(e, screen.Bounds().Dx(), screen.Bounds().Dy())
	if !ok {
		return
	}

	components.SplineShape.Each(e.World, func(entry *donburi.Entry) {
		spline := components.SplineShape.Get(entry)
		outline := spline.Shape.Outline()
		if len(outline) < 2 {
			return
		}

		tr := components.Transform.Get(entry).Transform
		if spline.Shape.Closed && len(outline) > 2 {
			fillPolygon(screen, tr, outline, camX, camY, cfg.Colors.SplineFill)
		}
		drawPolyline(screen, tr, outline, camX, camY, cfg.Zipper.SplineOutline, cfg.Colors.SplineEdge)
	})
}

// DrawTeeth renders both rows of teeth of every separate zipper.
func DrawTeeth(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(e, screen.Bounds().Dx(), screen.Bounds().Dy())
	if !ok {
		return
	}
	tooth := assets.ToothImage()

	components.SeparateZipper.Each(e.World, func(entry *donburi.Entry) {
		sz := components.SeparateZipper.Get(entry)
		tr := components.Transform.Get(entry).Transform
		for _, pose := range sz.Left {
			drawTooth(screen, tooth, tr, pose, camX, camY)
		}
		for _, pose := range sz.Right {
			drawTooth(screen, tooth, tr, pose, camX, camY)
		}
	})
}

func tapeWidth(tr zipmath.Transform) float32 {
	return cfg.Zipper.TapeWidth * float32(tr.UniformScale())
}

func drawTooth(screen, tooth *ebiten.Image, tr zipmath.Transform, pose zipper.Pose, camX, camY float64) {
	w, h := tooth.Bounds().Dx(), tooth.Bounds().Dy()
	pos := tr.TransformPoint(pose.Position)
	scale := tr.UniformScale()

	if assets.ToothShader != nil {
		shaderOp.GeoM.Reset()
		shaderOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		shaderOp.GeoM.Scale(pose.Scale.X*scale, pose.Scale.Y*scale)
		shaderOp.GeoM.Rotate(pose.Rotation + tr.Rotation)
		shaderOp.GeoM.Translate(pos.X+camX, pos.Y+camY)
		shaderOp.Images[0] = tooth
		shaderOp.Uniforms = map[string]any{"Sheen": float32(toothSheen)}
		screen.DrawRectShader(w, h, assets.ToothShader, shaderOp)
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	drawOp.GeoM.Scale(pose.Scale.X*scale, pose.Scale.Y*scale)
	drawOp.GeoM.Rotate(pose.Rotation + tr.Rotation)
	drawOp.GeoM.Translate(pos.X+camX, pos.Y+camY)
	screen.DrawImage(tooth, drawOp)
}

// DrawHandles renders every zipper's pull tab at its picking box.
func DrawHandles(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(e, screen.Bounds().Dx(), screen.Bounds().Dy())
	if !ok {
		return
	}

	components.Handle.Each(e.World, func(entry *donburi.Entry) {
		handle := components.Handle.Get(entry)
		if handle.Zipper == nil || !handle.Zipper.Valid() {
			return
		}
		o := components.Object.Get(entry)
		img := assets.HandleImage(handle.Dragging || handle.Hovered)
		tr := components.Transform.Get(handle.Zipper)

		// Anchor at the top center so the tab hangs off the slider.
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(img.Bounds().Dx())/2, 0)
		drawOp.GeoM.Rotate(tr.Rotation)
		drawOp.GeoM.Translate(o.X+o.W/2+camX, o.Y+camY)
		screen.DrawImage(img, drawOp)
	})
}

func drawPolyline(screen *ebiten.Image, tr zipmath.Transform, pts []zipmath.Vec2, camX, camY float64, width float32, clr color.Color) {
	for i := 1; i < len(pts); i++ {
		a := tr.TransformPoint(pts[i-1])
		b := tr.TransformPoint(pts[i])
		vector.StrokeLine(screen,
			float32(a.X+camX), float32(a.Y+camY),
			float32(b.X+camX), float32(b.Y+camY),
			width, clr, true)
	}
}

func fillPolygon(screen *ebiten.Image, tr zipmath.Transform, pts []zipmath.Vec2, camX, camY float64, clr color.RGBA) {
	var path vector.Path
	for i, p := range pts {
		w := tr.TransformPoint(p)
		x, y := float32(w.X+camX), float32(w.Y+camY)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	fillVerts, fillIdx = path.AppendVerticesAndIndicesForFilling(fillVerts[:0], fillIdx[:0])
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range fillVerts {
		fillVerts[i].SrcX = 1
		fillVerts[i].SrcY = 1
		fillVerts[i].ColorR = r
		fillVerts[i].ColorG = g
		fillVerts[i].ColorB = b
		fillVerts[i].ColorA = a
	}
	screen.DrawTriangles(fillVerts, fillIdx, assets.WhitePixel(), fillOp)
}
