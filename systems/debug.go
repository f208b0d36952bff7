package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/alienrun/components"
	cfg "github.com/automoto/alienrun/config"
	"github.com/automoto/alienrun/fonts"
	"github.com/automoto/alienrun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every body color-keyed by role and prints the player's
// physics state. Toggled with F1 and persisted across runs.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	view, ok := currentView(e, screen)
	if !ok {
		return
	}

	components.Body.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		if !body.Active {
			return
		}

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case entry.HasComponent(tags.Player):
			c = color.RGBA{0, 0, 255, 255}
		case entry.HasComponent(tags.Hazard):
			c = color.RGBA{255, 0, 0, 255}
		case entry.HasComponent(tags.Solid):
			c = color.RGBA{160, 160, 160, 255}
		}

		x, y := view.apply(body.X, body.Y)
		w := float32(body.W * view.zoom)
		h := float32(body.H * view.zoom)

		// Draw outline
		vector.FillRect(screen, float32(x), float32(y), w, 1, c, false)
		vector.FillRect(screen, float32(x), float32(y)+h-1, w, 1, c, false)
		vector.FillRect(screen, float32(x), float32(y), 1, h, c, false)
		vector.FillRect(screen, float32(x)+w-1, float32(y), 1, h, c, false)
	})

	drawPlayerState(e, screen)
}

func drawPlayerState(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok || !playerEntry.HasComponent(components.Body) {
		return
	}
	body := components.Body.Get(playerEntry)
	ctrl := components.Controller.Get(playerEntry)

	state := "airborne"
	switch {
	case ctrl.OnPlatform:
		state = "on-platform"
	case ctrl.Grounded:
		state = "grounded"
	}

	line := fmt.Sprintf("pos (%.1f, %.1f)  vel (%.1f, %.1f)  %s",
		body.X, body.Y, body.VelX, body.VelY, state)
	text.Draw(screen, line, fonts.Small.Get(), 10, 58, cfg.White)
}
