package systems

import (
	"github.com/automoto/alienrun/components"
	cfg "github.com/automoto/alienrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBodies snapshots every active body's position and integrates its
// velocity. Behaviors that position their body directly (patrol, shuttle,
// bounce) run after this and recompute from PrevX/PrevY, so the integration
// here never double-moves them.
func UpdateBodies(ecs *ecs.ECS) {
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if !body.Active {
			return
		}
		body.Step(cfg.Physics.Delta)
	})
}
