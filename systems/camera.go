package systems

import (
	"math"

	"github.com/automoto/alienrun/components"
	cfg "github.com/automoto/alienrun/config"
	"github.com/automoto/alienrun/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera recenters the camera on the player's body center after physics
// settles, with smoothing, clamped so the level always fills the screen.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	if !playerEntry.HasComponent(components.Body) {
		return
	}
	playerBody := components.Body.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	targetX := playerBody.CenterX()
	targetY := playerBody.CenterY()

	screenWidth := float64(cfg.C.Width) / camera.Zoom
	screenHeight := float64(cfg.C.Height) / camera.Zoom

	minCameraX := screenWidth / 2
	maxCameraX := levelData.CurrentLevel.Width - screenWidth/2
	minCameraY := screenHeight / 2
	maxCameraY := levelData.CurrentLevel.Height - screenHeight/2

	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	camera.Position.X += (targetX - camera.Position.X) * cfg.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * cfg.Camera.FollowSmoothing
}

// SnapCameraTo centers the camera immediately, used once at scene start so the
// view does not pan in from the origin.
func SnapCameraTo(e *ecs.ECS, x, y float64) {
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.Position.X = x
		camera.Position.Y = y
	}
}
