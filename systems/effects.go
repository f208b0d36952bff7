package systems

import (
	"image/color"

	"github.com/automoto/alienrun/components"
	cfg "github.com/automoto/alienrun/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// TriggerRespawnFlash starts the full-screen fade shown when the player dies.
// Called from the kill path while IsDead is raised.
func TriggerRespawnFlash(e *ecs.ECS) {
	flashEntry, ok := components.Flash.First(e.World)
	if !ok {
		flashEntry = e.World.Entry(e.World.Create(components.Flash))
	}
	components.Flash.SetValue(flashEntry, components.FlashData{
		Tween:  gween.New(cfg.Flash.StartAlpha, 0, cfg.Flash.Duration, ease.Linear),
		Alpha:  cfg.Flash.StartAlpha,
		Active: true,
	})
}

// UpdateFlash advances the fade tween.
func UpdateFlash(e *ecs.ECS) {
	flashEntry, ok := components.Flash.First(e.World)
	if !ok {
		return
	}
	flash := components.Flash.Get(flashEntry)
	if !flash.Active || flash.Tween == nil {
		return
	}

	value, finished := flash.Tween.Update(float32(cfg.Physics.Delta))
	flash.Alpha = value
	if finished {
		flash.Active = false
		flash.Alpha = 0
	}
}

// DrawFlash draws the overlay while the fade is running.
func DrawFlash(e *ecs.ECS, screen *ebiten.Image) {
	flashEntry, ok := components.Flash.First(e.World)
	if !ok {
		return
	}
	flash := components.Flash.Get(flashEntry)
	if !flash.Active || flash.Alpha <= 0 {
		return
	}

	c := cfg.Flash.Color
	overlay := color.RGBA{
		R: uint8(float32(c.R) * flash.Alpha),
		G: uint8(float32(c.G) * flash.Alpha),
		B: uint8(float32(c.B) * flash.Alpha),
		A: uint8(255 * flash.Alpha),
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), overlay, false)
}
