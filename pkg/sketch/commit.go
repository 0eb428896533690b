package sketch

import (
	"fmt"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

// Commit describes the outcome of a composite insert made by a tool.
type Commit struct {
	// Entity is the line, circle or arc that was created.
	Entity EntityID
	// Points lists the point ids the entity references, in definition order.
	Points []EntityID
	// Created lists the points that did not exist before the commit.
	Created []EntityID
}

// anchor is a point position that is either an existing point or one that
// will be inserted when the commit is applied.
type anchor struct {
	id  EntityID
	pos geometry.Vector2
}

func (s *Store) resolve(pos geometry.Vector2, snap float64) (anchor, error) {
	if !pos.IsFinite() {
		return anchor{}, fmt.Errorf("%w: position %v is not finite", ErrInvalidGeometry, pos)
	}
	if id, ok := s.NearestPoint(pos, snap); ok {
		return anchor{id: id, pos: s.points[id]}, nil
	}
	return anchor{pos: pos}, nil
}

func (s *Store) materialize(a anchor, c *Commit) EntityID {
	if a.id == 0 {
		a.id = s.insertPoint(a.pos)
		c.Created = append(c.Created, a.id)
	}
	c.Points = append(c.Points, a.id)
	return a.id
}

// AddLineAt commits a line between two positions. Each position reuses the
// nearest existing point within snap or creates a new one. All checks run
// before anything is inserted, so a failed commit leaves the store untouched.
func (s *Store) AddLineAt(a, b geometry.Vector2, snap float64) (Commit, error) {
	start, err := s.resolve(a, snap)
	if err != nil {
		return Commit{}, err
	}
	end, err := s.resolve(b, snap)
	if err != nil {
		return Commit{}, err
	}
	if (start.id != 0 && start.id == end.id) || start.pos.NearlyEqual(end.pos) {
		return Commit{}, fmt.Errorf("%w: line from %v to %v has zero length", ErrInvalidGeometry, start.pos, end.pos)
	}

	var c Commit
	sa := s.materialize(start, &c)
	sb := s.materialize(end, &c)
	c.Entity = s.insertLine(sa, sb)
	return c, nil
}

// AddCircleAt commits a circle around center, snapping the center like AddLineAt.
func (s *Store) AddCircleAt(center geometry.Vector2, radius float64, snap float64) (Commit, error) {
	ca, err := s.resolve(center, snap)
	if err != nil {
		return Commit{}, err
	}
	if err := validateRadius(radius); err != nil {
		return Commit{}, err
	}

	var c Commit
	id := s.materialize(ca, &c)
	c.Entity = s.insertCircle(id, radius)
	return c, nil
}

// AddArcAt commits the arc from start through mid to end. The endpoints snap
// like AddLineAt; the center point is derived and only reused when an
// existing point lies on it within tolerance.
func (s *Store) AddArcAt(start, mid, end geometry.Vector2, snap float64) (Commit, error) {
	sa, err := s.resolve(start, snap)
	if err != nil {
		return Commit{}, err
	}
	ea, err := s.resolve(end, snap)
	if err != nil {
		return Commit{}, err
	}
	if !mid.IsFinite() {
		return Commit{}, fmt.Errorf("%w: position %v is not finite", ErrInvalidGeometry, mid)
	}
	if sa.id != 0 && sa.id == ea.id {
		return Commit{}, fmt.Errorf("%w: arc endpoints coincide", ErrInvalidGeometry)
	}

	arc, err := geometry.ArcThroughPoints(sa.pos, mid, ea.pos)
	if err != nil {
		return Commit{}, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}
	ca, err := s.resolve(arc.Center, geometry.Tolerance)
	if err != nil {
		return Commit{}, err
	}
	if ca.id != 0 && (ca.id == sa.id || ca.id == ea.id) {
		return Commit{}, fmt.Errorf("%w: arc center coincides with an endpoint", ErrInvalidGeometry)
	}

	var c Commit
	cid := s.materialize(ca, &c)
	sid := s.materialize(sa, &c)
	eid := s.materialize(ea, &c)
	c.Entity = s.insertArc(cid, sid, eid, arc.IsCCW())
	return c, nil
}
