package systems

import (
	"github.com/automoto/alienrun/components"
	cfg "github.com/automoto/alienrun/config"
	"github.com/automoto/alienrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer drives the single controllable entity: input-derived horizontal
// velocity, gravity, edge-triggered jumps, platform riding and the kill height.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	updateSinglePlayer(ecs, playerEntry)
}

func updateSinglePlayer(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	if !playerEntry.HasComponent(components.Body) {
		return
	}
	ctrl := components.Controller.Get(playerEntry)
	if ctrl.IsDead {
		return
	}
	body := components.Body.Get(playerEntry)
	if !body.Active {
		return
	}

	input := getOrCreateInput(ecs)
	dt := cfg.Physics.Delta

	// Horizontal velocity is fully re-derived from input every frame: no inertia.
	body.VelX = 0
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		body.VelX = -ctrl.Speed
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		body.VelX = ctrl.Speed
	}

	// Gravity accumulates unconditionally; landing zeroes it during resolution.
	body.VelY += ctrl.Gravity * dt

	if GetAction(input, cfg.ActionJump).JustPressed && (ctrl.Grounded || ctrl.OnPlatform) {
		body.VelY = -ctrl.JumpForce
		ctrl.Grounded = false
		ctrl.OnPlatform = false
		ctrl.Attached = false
	}

	// While attached, horizontal displacement comes from the platform's
	// frame-over-frame x delta, not from input.
	if ctrl.Attached && ecs.World.Valid(ctrl.AttachedPlatform) {
		platform := ecs.World.Entry(ctrl.AttachedPlatform)
		if platform.HasComponent(components.Body) {
			platformBody := components.Body.Get(platform)
			body.X += platformBody.X - ctrl.LastPlatformX
			ctrl.LastPlatformX = platformBody.X
			body.VelX = 0
		}
	}

	if body.Y > ctrl.DeathHeight {
		KillPlayer(ecs, playerEntry)
	}
}

// KillPlayer performs the fused die/respawn reset: teleport to spawn, zero
// velocity, drop any attachment. IsDead is raised only across the reset so
// hooks like the respawn flash can observe the transition.
func KillPlayer(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	ctrl := components.Controller.Get(playerEntry)
	body := components.Body.Get(playerEntry)

	ctrl.IsDead = true
	ctrl.Grounded = false
	ctrl.OnPlatform = false
	ctrl.Attached = false

	TriggerRespawnFlash(ecs)

	body.X = ctrl.SpawnX
	body.Y = ctrl.SpawnY
	body.VelX = 0
	body.VelY = 0

	ctrl.Deaths++
	ctrl.IsDead = false
}
