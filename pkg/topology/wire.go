package topology

import (
	"math"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
	"gonum.org/v1/gonum/floats"
)

// Wire is a closed chain of edges. Wires produced by Build run
// counter-clockwise, so their Area is positive.
type Wire struct {
	Edges []Edge
}

// Len returns the number of edges
func (w Wire) Len() int {
	return len(w.Edges)
}

// Entities returns the sketch entities of the edges in walk order
func (w Wire) Entities() []sketch.EntityID {
	ids := make([]sketch.EntityID, len(w.Edges))
	for i, e := range w.Edges {
		ids[i] = e.Entity
	}
	return ids
}

// Area returns the signed enclosed area, positive for counter-clockwise wires
func (w Wire) Area() float64 {
	terms := make([]float64, len(w.Edges))
	for i, e := range w.Edges {
		terms[i] = e.areaTerm()
	}
	return floats.Sum(terms)
}

// Perimeter returns the total edge length
func (w Wire) Perimeter() float64 {
	lengths := make([]float64, len(w.Edges))
	for i, e := range w.Edges {
		lengths[i] = e.Length()
	}
	return floats.Sum(lengths)
}

// Bounds returns the bounding box of all edges
func (w Wire) Bounds() geometry.Bounds2 {
	b := geometry.EmptyBounds()
	for _, e := range w.Edges {
		b = b.Union(e.Bounds())
	}
	return b
}

// IsClosed reports whether each edge ends where the next one starts and the
// last edge returns to the first.
func (w Wire) IsClosed() bool {
	n := len(w.Edges)
	if n == 0 {
		return false
	}
	for i, e := range w.Edges {
		if !e.End.NearlyEqual(w.Edges[(i+1)%n].Start) {
			return false
		}
	}
	return true
}

// Region validates the wire as a containment boundary
func (w Wire) Region() (*Region, error) {
	return NewRegion(w.Edges)
}

// Innermost returns the index of the smallest wire whose interior contains
// p. Wires that are not valid boundaries are skipped.
func Innermost(wires []Wire, p geometry.Vector2) (int, bool) {
	best := -1
	bestArea := math.Inf(1)
	for i, w := range wires {
		region, err := w.Region()
		if err != nil || region.Classify(p) != Inside {
			continue
		}
		if a := math.Abs(w.Area()); a < bestArea {
			best, bestArea = i, a
		}
	}
	return best, best >= 0
}
