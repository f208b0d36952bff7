package systems

import (
	"github.com/automoto/alienrun/components"
	cfg "github.com/automoto/alienrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics accumulates gravity into every gravity-bearing body. There is
// no terminal velocity: uncapped fall speed is accepted behavior.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Body) {
			return
		}
		body := components.Body.Get(e)
		if !body.Active {
			return
		}
		physics := components.Physics.Get(e)
		body.VelY += physics.Gravity * cfg.Physics.Delta
	})
}
