package archetypes

import (
	"github.com/UnrealXinda/Zipper/components"
	cfg "github.com/UnrealXinda/Zipper/config"
	"github.com/UnrealXinda/Zipper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	SeparateZipper = newArchetype(
		tags.Zipper,
		tags.SeparateZipper,
		components.Zipper,
		components.Transform,
		components.Control,
		components.HandleTrack,
		components.ZipperSound,
		components.AutoPlay,
		components.SeparateZipper,
	)
	ClosedZipper = newArchetype(
		tags.Zipper,
		tags.ClosedZipper,
		components.Zipper,
		components.Transform,
		components.Control,
		components.HandleTrack,
		components.ZipperSound,
		components.AutoPlay,
		components.ClosedZipper,
	)
	SplineShape = newArchetype(
		tags.SplineShape,
		components.SplineShape,
		components.Transform,
	)
	Handle = newArchetype(
		tags.Handle,
		components.Handle,
		components.Object,
	)
	Cursor = newArchetype(
		tags.Cursor,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Scene = newArchetype(
		components.Scene,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
