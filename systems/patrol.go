package systems

import (
	"github.com/automoto/alienrun/components"
	cfg "github.com/automoto/alienrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePatrols advances every patrolling enemy one frame.
func UpdatePatrols(ecs *ecs.ECS) {
	components.Patrol.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Body) {
			return
		}
		body := components.Body.Get(e)
		if !body.Active {
			return
		}
		patrol := components.Patrol.Get(e)
		patrol.MovingRight = stepBoundedRun(body, patrol.LeftBound, patrol.RightBound,
			patrol.Speed, patrol.MovingRight, cfg.Physics.Delta)
	})
}

// stepBoundedRun moves a body horizontally at speed toward the current
// direction, flipping inclusively at the bounds, and returns the new
// direction. Motion is computed from PrevX (the frame-start position), so the
// generic body integration that ran earlier this frame is overridden rather
// than compounded. VelX is recomputed from the actual displacement so carry
// logic downstream sees what really happened this frame.
func stepBoundedRun(body *components.BodyData, left, right, speed float64, movingRight bool, dt float64) bool {
	if dt <= 0 {
		return movingRight
	}

	x := body.PrevX
	if movingRight {
		x += speed * dt
	} else {
		x -= speed * dt
	}

	maxX := right - body.W
	if x >= maxX {
		x = maxX
		movingRight = false
	}
	if x <= left {
		x = left
		movingRight = true
	}

	body.X = x
	body.VelX = (body.X - body.PrevX) / dt
	return movingRight
}
