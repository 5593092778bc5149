package systems

import (
	"math"

	"github.com/UnrealXinda/Zipper/components"
	"github.com/UnrealXinda/Zipper/config"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateCamera pans the view with the pan actions, keeping the scene on
// screen.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	input := getOrCreateInput(e)

	speed := config.Camera.PanSpeed
	if GetAction(input, config.ActionPanLeft).Pressed {
		camera.Position.X -= speed
	}
	if GetAction(input, config.ActionPanRight).Pressed {
		camera.Position.X += speed
	}
	if GetAction(input, config.ActionPanUp).Pressed {
		camera.Position.Y -= speed
	}
	if GetAction(input, config.ActionPanDown).Pressed {
		camera.Position.Y += speed
	}

	sceneEntry, ok := components.Scene.First(e.World)
	if !ok || components.Scene.Get(sceneEntry).Layout == nil {
		return
	}
	layout := components.Scene.Get(sceneEntry).Layout

	// Let the camera travel the scene but never past its edges; a scene
	// smaller than the screen stays centered.
	camera.Position.X = clampAxis(camera.Position.X, float64(layout.Width), float64(config.C.Width))
	camera.Position.Y = clampAxis(camera.Position.Y, float64(layout.Height), float64(config.C.Height))
}

func clampAxis(pos, sceneSize, screenSize float64) float64 {
	if sceneSize <= screenSize {
		return sceneSize / 2
	}
	return math.Max(screenSize/2, math.Min(sceneSize-screenSize/2, pos))
}

// cameraOffset returns the translation from world to screen coordinates.
func cameraOffset(e *ecs.ECS, width, height int) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}

// ScreenToWorld converts a point on the logical screen to world space.
func ScreenToWorld(e *ecs.ECS, p dmath.Vec2) dmath.Vec2 {
	camX, camY, _ := cameraOffset(e, config.C.Width, config.C.Height)
	return dmath.Vec2{X: p.X - camX, Y: p.Y - camY}
}
