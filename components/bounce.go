package components

import "github.com/yohamta/donburi"

// BounceData drives vertical sinusoidal motion around a baseline captured from
// the body's first observed y. Initialized makes the capture explicit so a body
// legitimately spawned at y == 0 still records its baseline.
type BounceData struct {
	Amplitude   float64
	Frequency   float64
	BaseY       float64
	Elapsed     float64
	Initialized bool
}

var Bounce = donburi.NewComponentType[BounceData]()
