package editor

import (
	"math"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

const (
	minScale = 1e-6
	maxScale = 1e6
)

// Viewport maps screen pixels to sketch coordinates. Origin is the sketch
// position shown at screen (0, 0) and Scale is pixels per sketch unit.
// FlipY makes sketch y grow upwards on a screen whose y grows downwards.
type Viewport struct {
	Origin geometry.Vector2
	Scale  float64
	FlipY  bool
}

// NewViewport returns the identity mapping
func NewViewport() Viewport {
	return Viewport{Scale: 1}
}

// ToSketch converts a screen position to sketch coordinates
func (v Viewport) ToSketch(screen geometry.Vector2) geometry.Vector2 {
	y := screen.Y
	if v.FlipY {
		y = -y
	}
	return geometry.Vector2{
		X: v.Origin.X + screen.X/v.Scale,
		Y: v.Origin.Y + y/v.Scale,
	}
}

// ToScreen converts sketch coordinates to a screen position
func (v Viewport) ToScreen(p geometry.Vector2) geometry.Vector2 {
	y := (p.Y - v.Origin.Y) * v.Scale
	if v.FlipY {
		y = -y
	}
	return geometry.Vector2{X: (p.X - v.Origin.X) * v.Scale, Y: y}
}

// ToSketchDistance converts a length in pixels to sketch units
func (v Viewport) ToSketchDistance(pixels float64) float64 {
	return pixels / v.Scale
}

// Pan moves the view so that content follows a pointer drag of delta pixels
func (v *Viewport) Pan(delta geometry.Vector2) {
	dy := delta.Y
	if v.FlipY {
		dy = -dy
	}
	v.Origin = v.Origin.Sub(geometry.Vector2{X: delta.X / v.Scale, Y: dy / v.Scale})
}

// Zoom scales the view by factor, keeping the sketch position under anchor
// fixed on screen.
func (v *Viewport) Zoom(factor float64, anchor geometry.Vector2) {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return
	}
	before := v.ToSketch(anchor)
	v.Scale = math.Min(maxScale, math.Max(minScale, v.Scale*factor))
	after := v.ToSketch(anchor)
	v.Origin = v.Origin.Add(before.Sub(after))
}

// Fit centers b in a screen of the given size, leaving margin pixels on each
// side.
func (v *Viewport) Fit(b geometry.Bounds2, width, height, margin float64) {
	if b.IsEmpty() || width <= 2*margin || height <= 2*margin {
		return
	}
	size := b.Size()
	scale := maxScale
	if size.X > 0 {
		scale = math.Min(scale, (width-2*margin)/size.X)
	}
	if size.Y > 0 {
		scale = math.Min(scale, (height-2*margin)/size.Y)
	}
	if scale == maxScale {
		scale = 1
	}
	v.Scale = math.Max(minScale, scale)

	center := b.Center()
	half := geometry.Vector2{X: width / 2 / v.Scale, Y: height / 2 / v.Scale}
	if v.FlipY {
		half.Y = -half.Y
	}
	v.Origin = center.Sub(half)
}
