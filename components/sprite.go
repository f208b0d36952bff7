package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// SpriteData is the visual: entities render as solid colored rectangles sized
// by their body.
type SpriteData struct {
	Color color.RGBA
}

var Sprite = donburi.NewComponentType[SpriteData]()
