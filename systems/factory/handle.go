package factory

import (
	"github.com/UnrealXinda/Zipper/archetypes"
	"github.com/UnrealXinda/Zipper/components"
	cfg "github.com/UnrealXinda/Zipper/config"
	"github.com/UnrealXinda/Zipper/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHandle spawns the pull tab for zipper and links them both ways.
func CreateHandle(ecs *ecs.ECS, zipper *donburi.Entry) *donburi.Entry {
	handle := archetypes.Handle.Spawn(ecs)

	obj := resolv.NewObject(0, 0, cfg.Zipper.HandleWidth, cfg.Zipper.HandleHeight, tags.ResolvHandle)
	obj.Data = handle
	components.Object.SetValue(handle, components.ObjectData{Object: obj})
	components.Handle.SetValue(handle, components.HandleData{Zipper: zipper})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Zipper.Get(zipper).Handle = handle
	return handle
}

// CreateCursor spawns the 1x1 resolv object that follows the mouse.
func CreateCursor(ecs *ecs.ECS) *donburi.Entry {
	cursor := archetypes.Cursor.Spawn(ecs)

	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvCursor)
	obj.Data = cursor
	components.Object.SetValue(cursor, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return cursor
}
