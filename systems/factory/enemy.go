package factory

import (
	"github.com/automoto/alienrun/archetypes"
	"github.com/automoto/alienrun/assets"
	"github.com/automoto/alienrun/components"
	cfg "github.com/automoto/alienrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePatrolEnemy(ecs *ecs.ECS, spawn assets.HazardSpawn) *donburi.Entry {
	enemy := archetypes.PatrolEnemy.Spawn(ecs)

	components.Body.SetValue(enemy, components.BodyData{
		X: spawn.X, Y: spawn.Y, W: spawn.W, H: spawn.H,
		PrevX: spawn.X, PrevY: spawn.Y,
		Active: true,
	})
	components.Patrol.SetValue(enemy, components.PatrolData{
		LeftBound:   spawn.LeftBound,
		RightBound:  spawn.RightBound,
		Speed:       spawn.Speed,
		MovingRight: true,
	})
	components.Sprite.SetValue(enemy, components.SpriteData{Color: cfg.Red})

	return enemy
}

func CreateFallingEnemy(ecs *ecs.ECS, spawn assets.HazardSpawn) *donburi.Entry {
	enemy := archetypes.FallingEnemy.Spawn(ecs)

	gravity := spawn.Gravity
	if gravity == 0 {
		gravity = cfg.Physics.EnemyGravity
	}

	components.Body.SetValue(enemy, components.BodyData{
		X: spawn.X, Y: spawn.Y, W: spawn.W, H: spawn.H,
		PrevX: spawn.X, PrevY: spawn.Y,
		Active: true,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{Gravity: gravity})
	components.Sprite.SetValue(enemy, components.SpriteData{Color: cfg.Red})

	return enemy
}
