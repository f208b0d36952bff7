package systems

import (
	"math"

	"github.com/automoto/alienrun/components"
	cfg "github.com/automoto/alienrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBounce advances every bouncing platform one frame.
func UpdateBounce(ecs *ecs.ECS) {
	components.Bounce.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Body) {
			return
		}
		body := components.Body.Get(e)
		if !body.Active {
			return
		}
		stepBounce(body, components.Bounce.Get(e), cfg.Physics.Delta)
	})
}

// stepBounce oscillates the body vertically around the baseline captured on
// first observation. Horizontal position is untouched.
func stepBounce(body *components.BodyData, bounce *components.BounceData, dt float64) {
	if dt <= 0 {
		return
	}
	if !bounce.Initialized {
		bounce.BaseY = body.PrevY
		bounce.Initialized = true
	}
	bounce.Elapsed += dt
	body.Y = bounce.BaseY + bounce.Amplitude*math.Sin(bounce.Frequency*bounce.Elapsed)
	body.VelY = (body.Y - body.PrevY) / dt
}
