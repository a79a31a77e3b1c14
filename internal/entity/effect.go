package entity

import "image/color"

const (
	EffectStartRadius = 4.0
	EffectGrowth      = 90.0 // px per second
	EffectFade        = 2.5  // alpha per second
)

// FloorHitEffect is the expanding ring left where an obstacle hits the
// floor.
type FloorHitEffect struct {
	X, Y   float64
	Color  color.RGBA
	Radius float64
	Alpha  float64
	Active bool
}

// Start (re)initialises the effect at x, y.
func (e *FloorHitEffect) Start(x, y float64, c color.RGBA) {
	*e = FloorHitEffect{
		X:      x,
		Y:      y,
		Color:  c,
		Radius: EffectStartRadius,
		Alpha:  1,
		Active: true,
	}
}

// Update grows the ring and fades it out, deactivating at zero alpha.
func (e *FloorHitEffect) Update(dt float64) {
	if !e.Active {
		return
	}
	e.Radius += EffectGrowth * dt
	e.Alpha -= EffectFade * dt
	if e.Alpha <= 0 {
		e.Alpha = 0
		e.Active = false
	}
}

// Faded returns the effect color with alpha applied (premultiplied).
func (e *FloorHitEffect) Faded() color.RGBA {
	a := e.Alpha
	return color.RGBA{
		R: uint8(float64(e.Color.R) * a),
		G: uint8(float64(e.Color.G) * a),
		B: uint8(float64(e.Color.B) * a),
		A: uint8(255 * a),
	}
}
