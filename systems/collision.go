package systems

import (
	"math"

	"github.com/automoto/alienrun/components"
	"github.com/automoto/alienrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// unresolved marks an axis with no penetration candidate: the mover is not
// moving along it, so it cannot be pushed out along it.
const unresolved = math.MaxFloat64

// UpdateCollisions runs once per frame after every behavior has moved its
// body. It resolves the player against the obstacle list in construction
// order, then settles gravity-bearing hazards onto solids. These are the only
// cross-entity mutation points in the simulation.
func UpdateCollisions(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		resolvePlayerCollisions(ecs, level, playerEntry)
	}

	settleHazards(ecs, level)
}

// Overlaps reports whether two bodies intersect. Strict inequality on all four
// sides: rectangles that merely touch edges do not overlap.
func Overlaps(a, b *components.BodyData) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// ResolveMoverCollision pushes an overlapping mover out of an obstacle along
// the axis of least directed penetration, zeroing the mover's velocity on that
// axis. Penetration candidates exist only in the direction the mover is
// travelling; on an axis tie the vertical branch wins.
//
// Resolving onto the obstacle's top additionally displaces the mover by
// obstacleShiftX, the obstacle's actual frame displacement, and reports the
// landing so the caller can ground or attach the mover.
func ResolveMoverCollision(mover, obstacle *components.BodyData, obstacleShiftX float64) (landedOnTop bool) {
	overlapX := unresolved
	if mover.VelX > 0 {
		overlapX = mover.Right() - obstacle.X
	} else if mover.VelX < 0 {
		overlapX = obstacle.Right() - mover.X
	}

	overlapY := unresolved
	if mover.VelY > 0 {
		overlapY = mover.Bottom() - obstacle.Y
	} else if mover.VelY < 0 {
		overlapY = obstacle.Bottom() - mover.Y
	}

	if overlapX < overlapY {
		if mover.VelX > 0 {
			mover.X = obstacle.X - mover.W
		} else {
			mover.X = obstacle.Right()
		}
		mover.VelX = 0
		return false
	}

	if overlapY == unresolved {
		// Stationary mover: nothing directed to resolve.
		return false
	}

	if mover.VelY > 0 {
		mover.Y = obstacle.Y - mover.H
		mover.VelY = 0
		mover.X += obstacleShiftX
		return true
	}

	mover.Y = obstacle.Bottom()
	mover.VelY = 0
	return false
}

// resolvePlayerCollisions walks the obstacle list in construction order.
// Hazards are first-hit-wins: the first overlapping hazard kills the player
// and abandons every remaining check this frame, so resolutions applied
// earlier in the iteration stand while later ones never happen.
func resolvePlayerCollisions(ecs *ecs.ECS, level *components.LevelData, playerEntry *donburi.Entry) {
	if !playerEntry.HasComponent(components.Body) {
		return
	}
	body := components.Body.Get(playerEntry)
	if !body.Active {
		return
	}
	ctrl := components.Controller.Get(playerEntry)

	wasAttached := ctrl.Attached
	previousPlatform := ctrl.AttachedPlatform
	ctrl.Grounded = false
	ctrl.OnPlatform = false
	ctrl.Attached = false

	for _, entity := range level.Obstacles {
		if !ecs.World.Valid(entity) {
			continue
		}
		entry := ecs.World.Entry(entity)
		if !entry.HasComponent(components.Body) {
			continue
		}
		obstacle := components.Body.Get(entry)
		if !obstacle.Active || !Overlaps(body, obstacle) {
			continue
		}

		if entry.HasComponent(tags.Hazard) {
			KillPlayer(ecs, playerEntry)
			return
		}

		if !entry.HasComponent(tags.Solid) {
			continue
		}

		// While riding, the controller already followed the platform's
		// displacement this frame; carrying again here would double it.
		// The in-resolution carry therefore applies on the landing frame only.
		riding := wasAttached && previousPlatform == entity
		shiftX := 0.0
		if !riding {
			shiftX = obstacle.X - obstacle.PrevX
		}

		if !ResolveMoverCollision(body, obstacle, shiftX) {
			continue
		}

		ctrl.Grounded = true
		if entry.HasComponent(components.Shuttle) || entry.HasComponent(components.Bounce) {
			ctrl.OnPlatform = true
			ctrl.Attached = true
			ctrl.AttachedPlatform = entity
			if !riding {
				ctrl.LastPlatformX = obstacle.X
			}
		}
	}
}

// settleHazards rests every gravity-bearing hazard on top of any solid it
// overlaps when arriving from above. Vertical only: it never moves a hazard
// horizontally and does not distinguish landing from being pushed.
func settleHazards(ecs *ecs.ECS, level *components.LevelData) {
	for _, hazardEntity := range level.Obstacles {
		if !ecs.World.Valid(hazardEntity) {
			continue
		}
		hazardEntry := ecs.World.Entry(hazardEntity)
		if !hazardEntry.HasComponent(tags.Hazard) ||
			!hazardEntry.HasComponent(components.Physics) ||
			!hazardEntry.HasComponent(components.Body) {
			continue
		}
		hazard := components.Body.Get(hazardEntry)
		if !hazard.Active {
			continue
		}

		for _, solidEntity := range level.Obstacles {
			if !ecs.World.Valid(solidEntity) {
				continue
			}
			solidEntry := ecs.World.Entry(solidEntity)
			if !solidEntry.HasComponent(tags.Solid) || !solidEntry.HasComponent(components.Body) {
				continue
			}
			solid := components.Body.Get(solidEntry)
			if !solid.Active || !Overlaps(hazard, solid) {
				continue
			}

			topOverlap := hazard.Bottom() - solid.Y
			bottomOverlap := solid.Bottom() - hazard.Y
			if topOverlap < bottomOverlap {
				hazard.Y = solid.Y - hazard.H
				hazard.VelY = 0
			}
		}
	}
}
