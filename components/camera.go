package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData holds the camera center in world coordinates and a uniform zoom.
type CameraData struct {
	Position math.Vec2
	Zoom     float64
}

var Camera = donburi.NewComponentType[CameraData]()
