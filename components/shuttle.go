package components

import "github.com/yohamta/donburi"

// ShuttleData is the same bounded oscillation rule as PatrolData, attached to
// solid platforms instead of enemies. The collision system treats its presence
// as "this solid is a moving platform".
type ShuttleData struct {
	LeftBound   float64
	RightBound  float64
	Speed       float64
	MovingRight bool
}

var Shuttle = donburi.NewComponentType[ShuttleData]()
