package systems

import (
	"github.com/automoto/alienrun/components"
	cfg "github.com/automoto/alienrun/config"
	"github.com/automoto/alienrun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// viewTransform is the world->screen mapping: translation by the camera center
// plus a uniform scale.
type viewTransform struct {
	offsetX, offsetY float64
	zoom             float64
}

func currentView(e *ecs.ECS, screen *ebiten.Image) (viewTransform, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return viewTransform{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return viewTransform{
		offsetX: float64(width)/2 - camera.Position.X*camera.Zoom,
		offsetY: float64(height)/2 - camera.Position.Y*camera.Zoom,
		zoom:    camera.Zoom,
	}, true
}

func (v viewTransform) apply(x, y float64) (float64, float64) {
	return x*v.zoom + v.offsetX, y*v.zoom + v.offsetY
}

// DrawLevel renders every solid (static walls and moving platforms).
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := currentView(e, screen)
	if !ok {
		return
	}
	tags.Solid.Each(e.World, func(entry *donburi.Entry) {
		drawBodyRect(entry, screen, view)
	})
}

// DrawHazards renders enemies on top of the level geometry.
func DrawHazards(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := currentView(e, screen)
	if !ok {
		return
	}
	tags.Hazard.Each(e.World, func(entry *donburi.Entry) {
		drawBodyRect(entry, screen, view)
	})
}

// DrawPlayer renders the player last so it is never hidden by geometry.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := currentView(e, screen)
	if !ok {
		return
	}
	if playerEntry, ok := tags.Player.First(e.World); ok {
		drawBodyRect(playerEntry, screen, view)
	}
}

func drawBodyRect(entry *donburi.Entry, screen *ebiten.Image, view viewTransform) {
	if !entry.HasComponent(components.Body) || !entry.HasComponent(components.Sprite) {
		return
	}
	body := components.Body.Get(entry)
	if !body.Active {
		return
	}

	x, y := view.apply(body.X, body.Y)
	w := body.W * view.zoom
	h := body.H * view.zoom

	// Viewport culling
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	if x+w < 0 || x > float64(width) || y+h < 0 || y > float64(height) {
		return
	}

	sprite := components.Sprite.Get(entry)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), sprite.Color, false)
}

// DrawBackground clears the play area.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Background)
}
