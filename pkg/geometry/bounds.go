package geometry

import "math"

// Bounds2 is an axis-aligned bounding box in sketch-local space.
// The zero value is empty.
type Bounds2 struct {
	Min, Max Vector2
	valid    bool
}

// EmptyBounds returns a box that contains nothing
func EmptyBounds() Bounds2 {
	return Bounds2{}
}

// IsEmpty reports whether nothing has been added to the box
func (b Bounds2) IsEmpty() bool {
	return !b.valid
}

// Extend returns the box grown to include p
func (b Bounds2) Extend(p Vector2) Bounds2 {
	if !b.valid {
		return Bounds2{Min: p, Max: p, valid: true}
	}
	return Bounds2{Min: b.Min.Min(p), Max: b.Max.Max(p), valid: true}
}

// Union returns the smallest box containing both boxes
func (b Bounds2) Union(other Bounds2) Bounds2 {
	if !other.valid {
		return b
	}
	return b.Extend(other.Min).Extend(other.Max)
}

// Center returns the center of the box
func (b Bounds2) Center() Vector2 {
	return b.Min.Lerp(b.Max, 0.5)
}

// Size returns the width and height of the box
func (b Bounds2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Diagonal returns the length of the box diagonal
func (b Bounds2) Diagonal() float64 {
	return b.Size().Length()
}

// Contains reports whether p lies inside the box, border included
func (b Bounds2) Contains(p Vector2) bool {
	return b.valid &&
		p.X >= b.Min.X-Tolerance && p.X <= b.Max.X+Tolerance &&
		p.Y >= b.Min.Y-Tolerance && p.Y <= b.Max.Y+Tolerance
}

// Overlaps reports whether two boxes intersect
func (b Bounds2) Overlaps(other Bounds2) bool {
	if !b.valid || !other.valid {
		return false
	}
	return math.Max(b.Min.X, other.Min.X) <= math.Min(b.Max.X, other.Max.X)+Tolerance &&
		math.Max(b.Min.Y, other.Min.Y) <= math.Min(b.Max.Y, other.Max.Y)+Tolerance
}
