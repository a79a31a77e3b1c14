package entity

import "image/color"

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether r and o share any area. Rectangles that only
// touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Center returns the midpoint of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Resize keeps the center fixed while changing the size.
func (r Rect) Resize(w, h float64) Rect {
	cx, cy := r.Center()
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// ClampTo moves r so it lies inside a width x height area.
func (r Rect) ClampTo(width, height float64) Rect {
	if r.X+r.W > width {
		r.X = width - r.W
	}
	if r.Y+r.H > height {
		r.Y = height - r.H
	}
	if r.X < 0 {
		r.X = 0
	}
	if r.Y < 0 {
		r.Y = 0
	}
	return r
}

// Vec2 is a per-tick velocity.
type Vec2 struct {
	X, Y float64
}

// GameObject is the player or one slot of the obstacle pool.
type GameObject struct {
	Rect   Rect
	Speed  Vec2
	Color  color.RGBA
	Active bool
}

// Fall advances the object down by its vertical speed scaled by factor.
func (o *GameObject) Fall(factor float64) {
	o.Rect.Y += o.Speed.Y * factor
}

// Below reports whether the object's top edge has passed the floor.
func (o *GameObject) Below(floor float64) bool {
	return o.Rect.Y > floor
}
