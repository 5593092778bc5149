package factory

import (
	"github.com/UnrealXinda/Zipper/archetypes"
	"github.com/UnrealXinda/Zipper/assets"
	"github.com/UnrealXinda/Zipper/components"
	"github.com/UnrealXinda/Zipper/shared/scenedata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScene spawns every zipper of layout in file order, plus the picking
// space, the cursor and the camera.
func CreateScene(ecs *ecs.ECS, layout *assets.Scene) *donburi.Entry {
	scene := archetypes.Scene.Spawn(ecs)
	data := &components.SceneData{Layout: layout}

	CreateSpace(ecs, layout.Width, layout.Height, 4, 4)
	CreateCursor(ecs)
	CreateCamera(ecs, float64(layout.Width)/2, float64(layout.Height)/2)

	for _, spec := range layout.Zippers {
		var z *donburi.Entry
		switch spec.Class {
		case scenedata.ClassSeparateZipper:
			z = CreateSeparateZipper(ecs, spec)
		case scenedata.ClassClosedZipper:
			z = CreateClosedZipper(ecs, spec, layout.SplinesOf(spec.Name))
		default:
			continue
		}
		data.Zippers = append(data.Zippers, z)
	}

	components.Scene.Set(scene, data)
	return scene
}
