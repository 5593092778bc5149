package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render/update layer used by every entity.
const Default ecs.LayerID = 0

// Config holds general window configuration
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	Title  string
}

// ZipperConfig contains defaults and tuning shared by all zippers
type ZipperConfig struct {
	// Teeth
	DefaultCount       int
	ToothWidth         int     // pixels of the generated tooth sprite
	ToothHeight        int     // pixels of the generated tooth sprite
	ToothScale         float64 // default uniform tooth scale
	TapeOffset         float64 // default horizontal tape offset in local units
	LongitudinalOffset float64 // default offset along the curve (0 - 0.1)

	// Tapes and spline shapes
	TapeWidth       float32
	SplineOutline   float32
	BakeTolerance   float64 // max distance of the baked outline from the curve
	DefaultSpread   float64
	DefaultTrackLen float64 // handle track length when the scene omits one

	// Handle
	HandleWidth  float64
	HandleHeight float64

	// Control animation
	AutoPlaySeconds float64 // duration of one open or close sweep
	AutoPlayEase    string
	NudgePerFrame   float64 // control change per frame from keyboard/gamepad
}

// GizmoConfig contains debug gizmo drawing configuration
type GizmoConfig struct {
	CurveSamples   int
	CurveWidth     float32
	TrackWidth     float32
	NormalLength   float64
	PointRadius    float32
	PickRadius     float64 // pixels around a control point that grab it
	ShowByDefault  bool
	ShowNormals    bool
	ShowSplinePts  bool
	SplinePtRadius float32
}

// ColorConfig contains every color used to draw the scene
type ColorConfig struct {
	Background   color.RGBA
	LeftTape     color.RGBA
	RightTape    color.RGBA
	Tooth        color.RGBA
	ToothEdge    color.RGBA
	Handle       color.RGBA
	HandleActive color.RGBA
	HandleEdge   color.RGBA
	SplineFill   color.RGBA
	SplineEdge   color.RGBA
	GizmoCurve   color.RGBA
	GizmoTrack   color.RGBA
	GizmoPoint   color.RGBA
	GizmoNormal  color.RGBA
	Selection    color.RGBA
	HUDText      color.RGBA
	HUDTextBg    color.RGBA
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	PanSpeed float64 // pixels per frame while a pan key is held
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SceneFile      string // scene file inside the embedded scenes directory
	ShowGizmos     bool
	StartAuthoring bool
	ConfigFile     string
	NoPersistence  bool
}

// Global configuration instances
var C *Config
var Zipper ZipperConfig
var Gizmo GizmoConfig
var Colors ColorConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "Zipper",
	}

	Zipper = ZipperConfig{
		DefaultCount:       30,
		ToothWidth:         7,
		ToothHeight:        9,
		ToothScale:         1.0,
		TapeOffset:         3.0,
		LongitudinalOffset: 0.0,

		TapeWidth:       9,
		SplineOutline:   2,
		BakeTolerance:   0.25,
		DefaultSpread:   40,
		DefaultTrackLen: 200,

		HandleWidth:  18,
		HandleHeight: 28,

		AutoPlaySeconds: 1.5,
		AutoPlayEase:    "inOutSine",
		NudgePerFrame:   0.01,
	}

	Gizmo = GizmoConfig{
		CurveSamples:   32,
		CurveWidth:     2,
		TrackWidth:     6,
		NormalLength:   12,
		PointRadius:    5,
		PickRadius:     9,
		ShowByDefault:  false,
		ShowNormals:    true,
		ShowSplinePts:  true,
		SplinePtRadius: 3,
	}

	Colors = ColorConfig{
		Background:   color.RGBA{R: 28, G: 30, B: 38, A: 255},
		LeftTape:     color.RGBA{R: 58, G: 92, B: 150, A: 255},
		RightTape:    color.RGBA{R: 52, G: 84, B: 140, A: 255},
		Tooth:        color.RGBA{R: 212, G: 196, B: 140, A: 255},
		ToothEdge:    color.RGBA{R: 140, G: 120, B: 70, A: 255},
		Handle:       color.RGBA{R: 190, G: 190, B: 200, A: 255},
		HandleActive: color.RGBA{R: 255, G: 230, B: 140, A: 255},
		HandleEdge:   color.RGBA{R: 80, G: 80, B: 90, A: 255},
		SplineFill:   color.RGBA{R: 150, G: 60, B: 70, A: 255},
		SplineEdge:   color.RGBA{R: 90, G: 30, B: 40, A: 255},
		GizmoCurve:   color.RGBA{R: 255, G: 40, B: 40, A: 255},
		GizmoTrack:   color.RGBA{R: 0, G: 200, B: 0, A: 160},
		GizmoPoint:   color.RGBA{R: 255, G: 255, B: 255, A: 220},
		GizmoNormal:  color.RGBA{R: 255, G: 160, B: 40, A: 255},
		Selection:    color.RGBA{R: 100, G: 180, B: 255, A: 255},
		HUDText:      White,
		HUDTextBg:    BlackOverlay,
	}

	Camera = CameraConfig{
		PanSpeed: 4,
	}

	Debug = DebugConfig{
		SceneFile: "scenes/zippers.tmx",
	}
}
