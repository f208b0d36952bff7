package components

import "github.com/yohamta/donburi"

// PatrolData drives bounded horizontal oscillation between LeftBound and
// RightBound. Used by ground enemies.
type PatrolData struct {
	LeftBound   float64
	RightBound  float64
	Speed       float64
	MovingRight bool
}

var Patrol = donburi.NewComponentType[PatrolData]()
