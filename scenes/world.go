package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/alienrun/components"
	cfg "github.com/automoto/alienrun/config"
	"github.com/automoto/alienrun/systems"
	"github.com/automoto/alienrun/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs the side-scrolling simulation.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewPlatformerScene creates a new platformer scene
func NewPlatformerScene(sc SceneChanger) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(ps.sceneChanger)
	}

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.NewUpdatePause(ps.sceneChanger, createMenuScene))
	ecs.AddSystem(systems.UpdateSettings)

	// Gameplay systems, skipped while paused. Order matters: the controller
	// and gravity set velocities, UpdateBodies integrates them, the kinematic
	// movers then reposition from their snapshots, and collision resolves the
	// resulting state before the camera follows it.
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateBodies))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePatrols))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateShuttles))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateBounce))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateFlash))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	// Renderers, back to front
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawHazards)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawFlash)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ps.ecs = ecs

	level := factory.CreateLevel(ps.ecs)
	levelData := components.Level.Get(level)

	player := factory.CreatePlayer(ps.ecs, levelData.CurrentLevel)
	playerBody := components.Body.Get(player)

	factory.CreateCamera(ps.ecs, playerBody.CenterX(), playerBody.CenterY())
	systems.SnapCameraTo(ps.ecs, playerBody.CenterX(), playerBody.CenterY())
}
