package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/UnrealXinda/Zipper/components"
	cfg "github.com/UnrealXinda/Zipper/config"
	"github.com/UnrealXinda/Zipper/shared/zipper"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume     float64 `json:"sfxVolume"`
	Muted         bool    `json:"muted"`
	ShowGizmos    bool    `json:"showGizmos"`
	ShowInspector bool    `json:"showInspector"`
	Fullscreen    bool    `json:"fullscreen"`
}

// SavedRig is the authored data of one zipper, keyed by zipper name
type SavedRig struct {
	Kind     string                       `json:"kind"`
	Separate *zipper.SeparateRecord       `json:"separate,omitempty"`
	Splines  map[string]*zipper.SplineRig `json:"splines,omitempty"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings and rig storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.SettingsItem)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Settings.SettingsItem, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveEditorSettings saves the current editor and audio settings
func SaveEditorSettings(e *ecs.ECS) {
	editor := GetOrCreateEditor(e)
	_ = SaveSettings(&SavedSettings{
		SFXVolume:     GetSFXVolume(),
		Muted:         IsMuted(),
		ShowGizmos:    editor.ShowGizmos,
		ShowInspector: editor.ShowInspector,
		Fullscreen:    ebiten.IsFullscreen(),
	})
}

// ApplySavedSettings applies loaded settings to a scene's editor
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	SetSFXVolume(e, saved.SFXVolume)
	SetMuted(e, saved.Muted)

	editor := GetOrCreateEditor(e)
	editor.ShowGizmos = saved.ShowGizmos || cfg.Debug.ShowGizmos
	editor.ShowInspector = saved.ShowInspector
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference
// Used during startup before scenes are created
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	globalSFXVolume = saved.SFXVolume
	globalMuted = saved.Muted
	ebiten.SetFullscreen(saved.Fullscreen)
}

func rigItem(name string) string {
	return fmt.Sprintf(cfg.Settings.RigItemFmt, name)
}

// snapshotRig captures a zipper's authored data
func snapshotRig(z *donburi.Entry) SavedRig {
	data := components.Zipper.Get(z)
	rig := SavedRig{Kind: data.Kind.String()}

	if z.HasComponent(components.SeparateZipper) {
		rec := components.SeparateZipper.Get(z).Rig.Snapshot()
		rig.Separate = &rec
	}
	if z.HasComponent(components.ClosedZipper) {
		rig.Splines = map[string]*zipper.SplineRig{}
		for _, s := range validSplines(z) {
			spline := components.SplineShape.Get(s)
			rig.Splines[spline.Name] = spline.Rig
		}
	}
	return rig
}

// restoreRig applies saved data to a zipper. Data for another kind of zipper
// or for splines that no longer exist is ignored.
func restoreRig(z *donburi.Entry, rig SavedRig) {
	data := components.Zipper.Get(z)
	if rig.Kind != data.Kind.String() {
		return
	}
	if rig.Separate != nil && z.HasComponent(components.SeparateZipper) {
		components.SeparateZipper.Get(z).Rig.Restore(*rig.Separate)
	}
	if z.HasComponent(components.ClosedZipper) {
		for _, s := range validSplines(z) {
			spline := components.SplineShape.Get(s)
			saved, ok := rig.Splines[spline.Name]
			if !ok || saved == nil || !sameIndices(saved, spline.Rig) {
				continue
			}
			saved.Normalize()
			spline.Rig = saved
		}
	}
}

func sameIndices(a, b *zipper.SplineRig) bool {
	if len(a.Curves) != len(b.Curves) {
		return false
	}
	for i := range a.Curves {
		if a.Curves[i].Index != b.Curves[i].Index {
			return false
		}
	}
	return true
}

// SaveRig writes a zipper's authored data to disk
func SaveRig(z *donburi.Entry) error {
	if !gdataInitialized || gdataManager == nil {
		return fmt.Errorf("persistence unavailable")
	}

	name := components.Zipper.Get(z).Name
	data, err := json.Marshal(snapshotRig(z))
	if err != nil {
		log.Printf("Warning: Could not serialize rig %s: %v", name, err)
		return err
	}
	if err := gdataManager.SaveItem(rigItem(name), data); err != nil {
		log.Printf("Warning: Could not save rig %s: %v", name, err)
		return err
	}
	return nil
}

// LoadSavedRigs restores every zipper in the scene that has saved data
func LoadSavedRigs(e *ecs.ECS) {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	for _, z := range Zippers(e) {
		name := components.Zipper.Get(z).Name
		data, err := gdataManager.LoadItem(rigItem(name))
		if err != nil {
			log.Printf("Warning: Could not load rig %s: %v", name, err)
			continue
		}
		if len(data) == 0 {
			continue
		}

		var rig SavedRig
		if err := json.Unmarshal(data, &rig); err != nil {
			log.Printf("Warning: Could not parse saved rig %s: %v", name, err)
			continue
		}
		restoreRig(z, rig)
	}
}
