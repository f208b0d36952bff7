package components

import (
	"github.com/automoto/alienrun/assets"
	"github.com/yohamta/donburi"
)

// LevelData holds the loaded level and the obstacle list in construction order.
// The player collision pass iterates Obstacles in this exact order; the first
// hazard hit ends the pass, so the order is part of the behavior.
type LevelData struct {
	CurrentLevel *assets.Level
	Obstacles    []donburi.Entity
}

var Level = donburi.NewComponentType[LevelData]()
