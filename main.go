package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/UnrealXinda/Zipper/assets"
	"github.com/UnrealXinda/Zipper/config"
	"github.com/UnrealXinda/Zipper/fonts"
	"github.com/UnrealXinda/Zipper/scenes"
	"github.com/UnrealXinda/Zipper/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Quitting() bool
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewZipperScene(config.Debug.SceneFile),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.Quitting() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// scenePath accepts either a bare scene name or a path inside the embedded
// scenes directory.
func scenePath(name string) string {
	if strings.HasPrefix(name, "scenes/") {
		return name
	}
	return "scenes/" + strings.TrimSuffix(name, ".tmx") + ".tmx"
}

func main() {
	configFile := flag.String("config", "", "TOML tuning file")
	scene := flag.String("scene", config.Debug.SceneFile, "scene to open")
	listScenes := flag.Bool("list-scenes", false, "print the embedded scenes and exit")
	flag.BoolVar(&config.Debug.ShowGizmos, "gizmos", false, "show debug gizmos")
	flag.BoolVar(&config.Debug.StartAuthoring, "author", false, "start in authoring mode")
	flag.BoolVar(&config.Debug.NoPersistence, "no-save", false, "do not read or write saved settings and rigs")
	flag.Parse()

	if *listScenes {
		names, err := assets.SceneNames()
		if err != nil {
			log.Fatalf("Failed to list scenes: %v", err)
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return
	}

	if *configFile != "" {
		config.Debug.ConfigFile = *configFile
		if err := config.LoadFile(*configFile); err != nil {
			log.Printf("Warning: Could not load config file: %v", err)
		}
	}
	config.Debug.SceneFile = scenePath(*scene)
	systems.ResetSFXVolume()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if !config.Debug.NoPersistence {
		if err := systems.InitPersistence(); err != nil {
			log.Printf("Warning: Could not initialize persistence: %v", err)
		}
		if saved, err := systems.LoadSettings(); err == nil && saved != nil {
			systems.ApplySavedSettingsGlobal(saved)
		}
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
