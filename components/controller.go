package components

import "github.com/yohamta/donburi"

// ControllerData holds the player's movement tuning and ground/platform/death
// state. By convention exactly one entity carries a Controller; the collision
// and camera systems both locate the player through it.
type ControllerData struct {
	Speed     float64
	JumpForce float64
	Gravity   float64

	// DeathHeight is the y below which the player dies.
	DeathHeight float64

	SpawnX float64
	SpawnY float64

	Grounded   bool
	OnPlatform bool

	// AttachedPlatform is an entity handle, not a pointer, so a stale
	// attachment can never dangle. Attached reports whether it is set.
	Attached         bool
	AttachedPlatform donburi.Entity
	LastPlatformX    float64

	// IsDead is transient: die and respawn are fused into one reset, so it is
	// only observable by hooks that run inside the kill path (e.g. effects).
	IsDead bool
	Deaths int
}

var Controller = donburi.NewComponentType[ControllerData]()
