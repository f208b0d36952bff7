package components

import "github.com/yohamta/donburi"

// BodyData is the axis-aligned rectangle every simulated entity owns: position,
// size, velocity, and the position at the start of the current frame. PrevX/PrevY
// are the basis for effective per-frame velocity, which can differ from the
// velocity fields when a behavior positions the body directly.
type BodyData struct {
	X, Y float64
	W, H float64

	VelX, VelY float64

	PrevX, PrevY float64

	// Active gates participation in update and draw.
	Active bool
}

var Body = donburi.NewComponentType[BodyData]()

// Step snapshots the current position and integrates velocity over dt.
func (b *BodyData) Step(dt float64) {
	b.PrevX, b.PrevY = b.X, b.Y
	b.X += b.VelX * dt
	b.Y += b.VelY * dt
}

// EffectiveVelX is the actual horizontal displacement over the frame divided by dt,
// regardless of which behavior produced the motion.
func (b *BodyData) EffectiveVelX(dt float64) float64 {
	if dt == 0 {
		return 0
	}
	return (b.X - b.PrevX) / dt
}

// EffectiveVelY is the vertical counterpart of EffectiveVelX.
func (b *BodyData) EffectiveVelY(dt float64) float64 {
	if dt == 0 {
		return 0
	}
	return (b.Y - b.PrevY) / dt
}

func (b *BodyData) Right() float64 {
	return b.X + b.W
}

func (b *BodyData) Bottom() float64 {
	return b.Y + b.H
}

func (b *BodyData) CenterX() float64 {
	return b.X + b.W/2
}

func (b *BodyData) CenterY() float64 {
	return b.Y + b.H/2
}
