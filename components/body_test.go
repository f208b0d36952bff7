package components

import "testing"

func TestBodyStep(t *testing.T) {
	b := BodyData{X: 10, Y: 20, W: 5, H: 5, VelX: 60, VelY: -30, Active: true}
	b.Step(0.5)

	if b.PrevX != 10 || b.PrevY != 20 {
		t.Errorf("expected prev (10,20), got (%v,%v)", b.PrevX, b.PrevY)
	}
	if b.X != 40 || b.Y != 5 {
		t.Errorf("expected pos (40,5), got (%v,%v)", b.X, b.Y)
	}
}

func TestEffectiveVelocity(t *testing.T) {
	b := BodyData{X: 10, Y: 20, PrevX: 10, PrevY: 20}

	// A behavior moves the body directly, without touching VelX/VelY.
	b.X = 13
	b.Y = 18

	if got := b.EffectiveVelX(0.5); got != 6 {
		t.Errorf("EffectiveVelX = %v, want 6", got)
	}
	if got := b.EffectiveVelY(0.5); got != -4 {
		t.Errorf("EffectiveVelY = %v, want -4", got)
	}
}

func TestEffectiveVelocityZeroDelta(t *testing.T) {
	b := BodyData{X: 13, PrevX: 10}
	if got := b.EffectiveVelX(0); got != 0 {
		t.Errorf("EffectiveVelX with dt=0 = %v, want 0", got)
	}
	if got := b.EffectiveVelY(0); got != 0 {
		t.Errorf("EffectiveVelY with dt=0 = %v, want 0", got)
	}
}

func TestBodyEdges(t *testing.T) {
	b := BodyData{X: 10, Y: 20, W: 30, H: 40}
	if b.Right() != 40 {
		t.Errorf("Right = %v, want 40", b.Right())
	}
	if b.Bottom() != 60 {
		t.Errorf("Bottom = %v, want 60", b.Bottom())
	}
	if b.CenterX() != 25 || b.CenterY() != 40 {
		t.Errorf("center = (%v,%v), want (25,40)", b.CenterX(), b.CenterY())
	}
}
