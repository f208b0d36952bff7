package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData is a full-screen overlay fading out after a respawn.
type FlashData struct {
	Tween  *gween.Tween
	Alpha  float32
	Active bool
}

var Flash = donburi.NewComponentType[FlashData]()
