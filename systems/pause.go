package systems

import (
	"github.com/automoto/alienrun/components"
	cfg "github.com/automoto/alienrun/config"
	"github.com/automoto/alienrun/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdatePause returns a system that toggles pause on Escape and, while
// paused, quits to the menu on Q.
func NewUpdatePause(sceneChanger SceneChanger, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		pause := getOrCreatePause(e)
		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionPause).JustPressed {
			pause.Paused = !pause.Paused
		}

		if pause.Paused && GetAction(input, cfg.ActionQuit).JustPressed {
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// WithPauseCheck wraps a gameplay system so it is skipped while paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}

// IsPaused reports whether the scene is paused.
func IsPaused(e *ecs.ECS) bool {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		return false
	}
	return components.Pause.Get(entry).Paused
}

func getOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}

// DrawPause dims the scene and shows the pause hints.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	if !IsPaused(e) {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.BlackShroud, false)

	titleFont := fonts.Title.Get()
	text.Draw(screen, "PAUSED", titleFont, width/2-70, height/2-20, cfg.White)

	hintFont := fonts.Small.Get()
	text.Draw(screen, "ESC resume   Q quit to menu", hintFont, width/2-90, height/2+20, cfg.White)
}
