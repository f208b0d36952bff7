package factory

import (
	"github.com/automoto/alienrun/archetypes"
	"github.com/automoto/alienrun/components"
	cfg "github.com/automoto/alienrun/config"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: dmath.Vec2{X: x, Y: y},
		Zoom:     cfg.Camera.Zoom,
	})
}
