package factory

import (
	"github.com/automoto/alienrun/archetypes"
	"github.com/automoto/alienrun/assets"
	"github.com/automoto/alienrun/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	levels, err := assets.LoadAllLevels()
	if err != nil {
		panic(err)
	}
	if len(levels) == 0 {
		panic("no levels found in assets/levels")
	}
	return CreateLevelFrom(ecs, &levels[0])
}

// CreateLevelFrom spawns the level entity and every obstacle it describes.
// Obstacles are registered in construction order: solids, then platforms,
// then hazards. The player collision pass depends on that order.
func CreateLevelFrom(ecs *ecs.ECS, lvl *assets.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{CurrentLevel: lvl})

	for _, s := range lvl.Solids {
		registerObstacle(level, CreateWall(ecs, s.X, s.Y, s.W, s.H))
	}
	for _, p := range lvl.Platforms {
		switch p.Kind {
		case assets.PlatformShuttle:
			registerObstacle(level, CreateShuttlePlatform(ecs, p))
		case assets.PlatformBounce:
			registerObstacle(level, CreateBouncePlatform(ecs, p))
		}
	}
	for _, h := range lvl.Hazards {
		switch h.Kind {
		case assets.HazardPatrol:
			registerObstacle(level, CreatePatrolEnemy(ecs, h))
		case assets.HazardFaller:
			registerObstacle(level, CreateFallingEnemy(ecs, h))
		}
	}

	return level
}

func registerObstacle(level *donburi.Entry, obstacle *donburi.Entry) {
	data := components.Level.Get(level)
	data.Obstacles = append(data.Obstacles, obstacle.Entity())
}
