package scenes

import (
	"log"
	"sync"

	"github.com/UnrealXinda/Zipper/assets"
	cfg "github.com/UnrealXinda/Zipper/config"
	"github.com/UnrealXinda/Zipper/systems"
	"github.com/UnrealXinda/Zipper/systems/factory"
	"github.com/UnrealXinda/Zipper/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ZipperScene shows the zippers of one scene layout
type ZipperScene struct {
	ecs       *ecs.ECS
	inspector *ui.InspectorUI
	path      string
	once      sync.Once
	quitting  bool
}

// NewZipperScene creates a scene for the embedded layout at path
func NewZipperScene(path string) *ZipperScene {
	return &ZipperScene{path: path}
}

func (zs *ZipperScene) Update() {
	zs.once.Do(zs.configure)
	zs.ecs.Update()

	zs.inspector.Update()

	if systems.QuitRequested(zs.ecs) {
		zs.quitting = true
	}
}

func (zs *ZipperScene) Draw(screen *ebiten.Image) {
	if zs.ecs == nil {
		screen.Fill(cfg.Colors.Background)
		return
	}
	zs.ecs.Draw(screen)

	if zs.inspector.Visible() {
		zs.inspector.UI.Draw(screen)
	}
}

// Quitting reports whether the user asked to leave
func (zs *ZipperScene) Quitting() bool {
	return zs.quitting
}

func (zs *ZipperScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()

	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders, drawing plain teeth: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first)
	ecs.AddSystem(systems.UpdateAudio)

	// Input, then the handles that read it
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateMouse)
	ecs.AddSystem(systems.UpdateHandles)
	ecs.AddSystem(systems.UpdateAutoPlay)
	ecs.AddSystem(systems.UpdateEditor)

	// Closed zippers push control into their splines before the splines bake
	ecs.AddSystem(systems.UpdateClosedZippers)
	ecs.AddSystem(systems.UpdateSplineShapes)
	ecs.AddSystem(systems.UpdateSeparateZippers)
	ecs.AddSystem(systems.UpdateZipperSounds)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawSplineShapes)
	ecs.AddRenderer(cfg.Default, systems.DrawTapes)
	ecs.AddRenderer(cfg.Default, systems.DrawTeeth)
	ecs.AddRenderer(cfg.Default, systems.DrawHandles)
	ecs.AddRenderer(cfg.Default, systems.DrawGizmos)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	zs.ecs = ecs

	layout := assets.MustLoadScene(zs.path)
	factory.CreateScene(zs.ecs, layout)

	// Saved rigs replace the layout's curves before the first frame
	systems.LoadSavedRigs(zs.ecs)

	if saved, err := systems.LoadSettings(); err == nil {
		systems.ApplySavedSettings(zs.ecs, saved)
	}
	if cfg.Debug.StartAuthoring {
		systems.ToggleAuthoring(zs.ecs)
	}

	zs.inspector = ui.NewInspectorUI(zs.ecs)
}
