package systems

import (
	"github.com/automoto/alienrun/components"
	cfg "github.com/automoto/alienrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateShuttles advances every shuttling platform one frame. Same rule as
// patrol; the separate component marks the entity as a carryable platform.
func UpdateShuttles(ecs *ecs.ECS) {
	components.Shuttle.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Body) {
			return
		}
		body := components.Body.Get(e)
		if !body.Active {
			return
		}
		shuttle := components.Shuttle.Get(e)
		shuttle.MovingRight = stepBoundedRun(body, shuttle.LeftBound, shuttle.RightBound,
			shuttle.Speed, shuttle.MovingRight, cfg.Physics.Delta)
	})
}
