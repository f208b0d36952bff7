package factory

import (
	"github.com/automoto/alienrun/archetypes"
	"github.com/automoto/alienrun/components"
	cfg "github.com/automoto/alienrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	components.Body.SetValue(wall, components.BodyData{
		X: x, Y: y, W: w, H: h,
		PrevX: x, PrevY: y,
		Active: true,
	})
	components.Sprite.SetValue(wall, components.SpriteData{Color: cfg.Grey})

	return wall
}
