package sketch

import (
	"math"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

// NearestPoint returns the point closest to pos within radius. Ties go to
// the lower id. A non-positive radius never matches.
func (s *Store) NearestPoint(pos geometry.Vector2, radius float64) (EntityID, bool) {
	if radius <= 0 {
		return 0, false
	}
	best := EntityID(0)
	bestDist := math.Inf(1)
	for id, p := range s.points {
		d := p.Distance(pos)
		if d > radius {
			continue
		}
		if d < bestDist || (d == bestDist && id < best) {
			best, bestDist = id, d
		}
	}
	return best, best != 0
}

// NearestEntity returns the entity closest to pos within radius. Points win
// over curves so that endpoints stay selectable where lines meet.
func (s *Store) NearestEntity(pos geometry.Vector2, radius float64) (EntityID, bool) {
	if id, ok := s.NearestPoint(pos, radius); ok {
		return id, true
	}

	best := EntityID(0)
	bestDist := math.Inf(1)
	consider := func(id EntityID, d float64) {
		if d > radius {
			return
		}
		if d < bestDist || (d == bestDist && id < best) {
			best, bestDist = id, d
		}
	}
	for id, l := range s.lines {
		consider(id, geometry.NewSegment(s.points[l.Start], s.points[l.End]).DistanceToPoint(pos))
	}
	for id, c := range s.circles {
		consider(id, geometry.Circle{Center: s.points[c.Center], Radius: c.Radius}.DistanceToPoint(pos))
	}
	for id := range s.arcs {
		if arc, err := s.ArcGeometry(id); err == nil {
			consider(id, arc.DistanceToPoint(pos))
		}
	}
	return best, best != 0
}

// Bounds returns the bounding box of every entity in the store
func (s *Store) Bounds() geometry.Bounds2 {
	b := geometry.EmptyBounds()
	for _, p := range s.points {
		b = b.Extend(p)
	}
	for id := range s.circles {
		if c, err := s.CircleGeometry(id); err == nil {
			b = b.Union(c.Bounds())
		}
	}
	for id := range s.arcs {
		if a, err := s.ArcGeometry(id); err == nil {
			b = b.Union(a.Bounds())
		}
	}
	return b
}
