package archetypes

import (
	"github.com/automoto/alienrun/components"
	cfg "github.com/automoto/alienrun/config"
	"github.com/automoto/alienrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Controller,
		components.Body,
		components.Sprite,
	)
	Wall = newArchetype(
		tags.Solid,
		components.Body,
		components.Sprite,
	)
	ShuttlePlatform = newArchetype(
		tags.Solid,
		components.Body,
		components.Shuttle,
		components.Sprite,
	)
	BouncePlatform = newArchetype(
		tags.Solid,
		components.Body,
		components.Bounce,
		components.Sprite,
	)
	PatrolEnemy = newArchetype(
		tags.Hazard,
		components.Body,
		components.Patrol,
		components.Sprite,
	)
	FallingEnemy = newArchetype(
		tags.Hazard,
		components.Body,
		components.Physics,
		components.Sprite,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
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
