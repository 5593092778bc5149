package components

import (
	"github.com/UnrealXinda/Zipper/assets"
	"github.com/yohamta/donburi"
)

// SceneData keeps the loaded layout and the zipper order (singleton component)
type SceneData struct {
	Layout  *assets.Scene
	Zippers []*donburi.Entry
}

var Scene = donburi.NewComponentType[SceneData]()
