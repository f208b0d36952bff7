package factory

import (
	"github.com/automoto/alienrun/archetypes"
	"github.com/automoto/alienrun/assets"
	"github.com/automoto/alienrun/components"
	cfg "github.com/automoto/alienrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Body.SetValue(player, components.BodyData{
		X: level.SpawnX, Y: level.SpawnY,
		W: cfg.Player.Width, H: cfg.Player.Height,
		PrevX: level.SpawnX, PrevY: level.SpawnY,
		Active: true,
	})
	components.Controller.SetValue(player, components.ControllerData{
		Speed:       cfg.Player.Speed,
		JumpForce:   cfg.Player.JumpForce,
		Gravity:     cfg.Player.Gravity,
		DeathHeight: level.Height + cfg.Player.DeathMargin,
		SpawnX:      level.SpawnX,
		SpawnY:      level.SpawnY,
	})
	components.Sprite.SetValue(player, components.SpriteData{Color: cfg.Player.Color})

	return player
}
