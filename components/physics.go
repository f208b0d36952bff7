package components

import "github.com/yohamta/donburi"

// PhysicsData marks an entity as affected by gravity. The player is not one of
// them; its gravity is owned by the Controller.
type PhysicsData struct {
	Gravity float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
