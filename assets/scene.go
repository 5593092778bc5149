package assets

import (
	"embed"
	"fmt"

	"github.com/UnrealXinda/Zipper/config"
	"github.com/UnrealXinda/Zipper/shared/scenedata"
)

//go:embed all:scenes
var sceneFS embed.FS

// Scene is a parsed zipper layout.
type Scene = scenedata.Layout

func sceneDefaults() scenedata.Defaults {
	return scenedata.Defaults{
		Count:              config.Zipper.DefaultCount,
		ToothScale:         config.Zipper.ToothScale,
		TapeOffset:         config.Zipper.TapeOffset,
		LongitudinalOffset: config.Zipper.LongitudinalOffset,
		Interp:             config.Zipper.AutoPlayEase,
		TrackLength:        config.Zipper.DefaultTrackLen,
		Spread:             config.Zipper.DefaultSpread,
	}
}

// LoadScene parses an embedded scene file such as "scenes/zippers.tmx".
func LoadScene(path string) (*Scene, error) {
	s, err := scenedata.LoadLayout(sceneFS, path, sceneDefaults())
	if err != nil {
		return nil, fmt.Errorf("failed to load scene %s: %w", path, err)
	}
	return s, nil
}

func MustLoadScene(path string) *Scene {
	s, err := LoadScene(path)
	if err != nil {
		panic(err)
	}
	return s
}

// SceneNames lists the embedded scenes.
func SceneNames() ([]string, error) {
	_, names, err := scenedata.LoadAllLayouts(sceneFS, "scenes", sceneDefaults())
	return names, err
}
