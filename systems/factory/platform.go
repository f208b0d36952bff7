package factory

import (
	"github.com/automoto/alienrun/archetypes"
	"github.com/automoto/alienrun/assets"
	"github.com/automoto/alienrun/components"
	cfg "github.com/automoto/alienrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateShuttlePlatform(ecs *ecs.ECS, spawn assets.PlatformSpawn) *donburi.Entry {
	platform := archetypes.ShuttlePlatform.Spawn(ecs)

	components.Body.SetValue(platform, components.BodyData{
		X: spawn.X, Y: spawn.Y, W: spawn.W, H: spawn.H,
		PrevX: spawn.X, PrevY: spawn.Y,
		Active: true,
	})
	components.Shuttle.SetValue(platform, components.ShuttleData{
		LeftBound:   spawn.LeftBound,
		RightBound:  spawn.RightBound,
		Speed:       spawn.Speed,
		MovingRight: true,
	})
	components.Sprite.SetValue(platform, components.SpriteData{Color: cfg.Sand})

	return platform
}

func CreateBouncePlatform(ecs *ecs.ECS, spawn assets.PlatformSpawn) *donburi.Entry {
	platform := archetypes.BouncePlatform.Spawn(ecs)

	components.Body.SetValue(platform, components.BodyData{
		X: spawn.X, Y: spawn.Y, W: spawn.W, H: spawn.H,
		PrevX: spawn.X, PrevY: spawn.Y,
		Active: true,
	})
	// BaseY is captured from the body on the first bounce update.
	components.Bounce.SetValue(platform, components.BounceData{
		Amplitude: spawn.Amplitude,
		Frequency: spawn.Frequency,
	})
	components.Sprite.SetValue(platform, components.SpriteData{Color: cfg.Sand})

	return platform
}
