package sketch

import (
	"fmt"
	"maps"
	"slices"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

// Store owns the entities of one sketch. Every mutation goes through its
// methods and bumps Version, which derived views use for invalidation.
//
// A Store is not safe for concurrent mutation. Clone returns a snapshot
// that may be queried from several goroutines while it is left unmodified.
type Store struct {
	nextID  EntityID
	version uint64

	kinds   map[EntityID]Kind
	points  map[EntityID]geometry.Vector2
	lines   map[EntityID]Line
	circles map[EntityID]Circle
	arcs    map[EntityID]Arc

	// refs maps a point to every entity that references it.
	refs map[EntityID]map[EntityID]struct{}
	// incident maps a point to the lines and arcs that end at it.
	incident map[EntityID]map[EntityID]struct{}
}

// NewStore creates an empty entity store
func NewStore() *Store {
	return &Store{
		kinds:    make(map[EntityID]Kind),
		points:   make(map[EntityID]geometry.Vector2),
		lines:    make(map[EntityID]Line),
		circles:  make(map[EntityID]Circle),
		arcs:     make(map[EntityID]Arc),
		refs:     make(map[EntityID]map[EntityID]struct{}),
		incident: make(map[EntityID]map[EntityID]struct{}),
	}
}

// Version increases with every successful mutation
func (s *Store) Version() uint64 {
	return s.version
}

// Len returns the number of live entities
func (s *Store) Len() int {
	return len(s.kinds)
}

// Kind returns the kind of an entity
func (s *Store) Kind(id EntityID) (Kind, bool) {
	k, ok := s.kinds[id]
	return k, ok
}

// AddPoint inserts a point at pos
func (s *Store) AddPoint(pos geometry.Vector2) (EntityID, error) {
	if !pos.IsFinite() {
		return 0, fmt.Errorf("%w: point position %v is not finite", ErrInvalidGeometry, pos)
	}
	return s.insertPoint(pos), nil
}

// AddLine inserts a line between two existing points
func (s *Store) AddLine(a, b EntityID) (EntityID, error) {
	if err := s.validateLine(a, b); err != nil {
		return 0, err
	}
	return s.insertLine(a, b), nil
}

// AddCircle inserts a circle around an existing center point
func (s *Store) AddCircle(center EntityID, radius float64) (EntityID, error) {
	if _, err := s.Position(center); err != nil {
		return 0, fmt.Errorf("circle center: %w", err)
	}
	if err := validateRadius(radius); err != nil {
		return 0, err
	}
	return s.insertCircle(center, radius), nil
}

// AddArc inserts an arc around center from start to end. The endpoints
// must be equidistant from the center and distinct.
func (s *Store) AddArc(center, start, end EntityID, ccw bool) (EntityID, error) {
	if _, err := s.arcGeometry(center, start, end, ccw); err != nil {
		return 0, err
	}
	return s.insertArc(center, start, end, ccw), nil
}

// Remove deletes an entity. Points still referenced by a line, circle or
// arc are rejected with ErrEntityInUse; nothing is removed implicitly.
func (s *Store) Remove(id EntityID) error {
	kind, ok := s.kinds[id]
	if !ok {
		return fmt.Errorf("entity %d: %w", id, ErrNotFound)
	}

	switch kind {
	case KindPoint:
		if users := s.refs[id]; len(users) > 0 {
			return fmt.Errorf("point %d is referenced by %d entities: %w", id, len(users), ErrEntityInUse)
		}
		delete(s.points, id)
		delete(s.refs, id)
		delete(s.incident, id)
	case KindLine:
		l := s.lines[id]
		s.unlink(id, l.Start, true)
		s.unlink(id, l.End, true)
		delete(s.lines, id)
	case KindCircle:
		c := s.circles[id]
		s.unlink(id, c.Center, false)
		delete(s.circles, id)
	case KindArc:
		a := s.arcs[id]
		s.unlink(id, a.Center, false)
		s.unlink(id, a.Start, true)
		s.unlink(id, a.End, true)
		delete(s.arcs, id)
	}
	delete(s.kinds, id)
	s.version++
	return nil
}

// MovePoint relocates a point. The move is rejected if it would collapse a
// line or break an arc's equal-radius condition.
func (s *Store) MovePoint(id EntityID, pos geometry.Vector2) error {
	if _, err := s.Position(id); err != nil {
		return err
	}
	if !pos.IsFinite() {
		return fmt.Errorf("%w: point position %v is not finite", ErrInvalidGeometry, pos)
	}

	old := s.points[id]
	s.points[id] = pos
	for user := range s.refs[id] {
		var err error
		switch s.kinds[user] {
		case KindLine:
			l := s.lines[user]
			err = s.validateLine(l.Start, l.End)
		case KindArc:
			a := s.arcs[user]
			_, err = s.arcGeometry(a.Center, a.Start, a.End, a.CCW)
		}
		if err != nil {
			s.points[id] = old
			return fmt.Errorf("move point %d: %w", id, err)
		}
	}
	s.version++
	return nil
}

// Position returns the coordinate of a point entity
func (s *Store) Position(id EntityID) (geometry.Vector2, error) {
	if p, ok := s.points[id]; ok {
		return p, nil
	}
	if k, ok := s.kinds[id]; ok {
		return geometry.Vector2{}, fmt.Errorf("%w: entity %d is a %s, not a point", ErrInvalidGeometry, id, k)
	}
	return geometry.Vector2{}, fmt.Errorf("point %d: %w", id, ErrNotFound)
}

// Point returns a point entity
func (s *Store) Point(id EntityID) (Point, error) {
	pos, err := s.Position(id)
	if err != nil {
		return Point{}, err
	}
	return Point{ID: id, Position: pos}, nil
}

// Line returns a line entity
func (s *Store) Line(id EntityID) (Line, error) {
	l, ok := s.lines[id]
	if !ok {
		return Line{}, fmt.Errorf("line %d: %w", id, ErrNotFound)
	}
	return l, nil
}

// Circle returns a circle entity
func (s *Store) Circle(id EntityID) (Circle, error) {
	c, ok := s.circles[id]
	if !ok {
		return Circle{}, fmt.Errorf("circle %d: %w", id, ErrNotFound)
	}
	return c, nil
}

// Arc returns an arc entity
func (s *Store) Arc(id EntityID) (Arc, error) {
	a, ok := s.arcs[id]
	if !ok {
		return Arc{}, fmt.Errorf("arc %d: %w", id, ErrNotFound)
	}
	return a, nil
}

// Segment resolves a line entity to its geometry
func (s *Store) Segment(id EntityID) (geometry.Segment, error) {
	l, err := s.Line(id)
	if err != nil {
		return geometry.Segment{}, err
	}
	return geometry.NewSegment(s.points[l.Start], s.points[l.End]), nil
}

// CircleGeometry resolves a circle entity to its geometry
func (s *Store) CircleGeometry(id EntityID) (geometry.Circle, error) {
	c, err := s.Circle(id)
	if err != nil {
		return geometry.Circle{}, err
	}
	return geometry.Circle{Center: s.points[c.Center], Radius: c.Radius}, nil
}

// ArcGeometry resolves an arc entity to its geometry
func (s *Store) ArcGeometry(id EntityID) (geometry.Arc, error) {
	a, err := s.Arc(id)
	if err != nil {
		return geometry.Arc{}, err
	}
	return s.arcGeometry(a.Center, a.Start, a.End, a.CCW)
}

// Incident returns the lines and arcs that end at the given point, sorted by id
func (s *Store) Incident(point EntityID) ([]EntityID, error) {
	if _, err := s.Position(point); err != nil {
		return nil, err
	}
	return sortedIDs(s.incident[point]), nil
}

// Points returns all points sorted by id
func (s *Store) Points() []Point {
	out := make([]Point, 0, len(s.points))
	for _, id := range slices.Sorted(maps.Keys(s.points)) {
		out = append(out, Point{ID: id, Position: s.points[id]})
	}
	return out
}

// Lines returns all lines sorted by id
func (s *Store) Lines() []Line {
	return sortedValues(s.lines)
}

// Circles returns all circles sorted by id
func (s *Store) Circles() []Circle {
	return sortedValues(s.circles)
}

// Arcs returns all arcs sorted by id
func (s *Store) Arcs() []Arc {
	return sortedValues(s.arcs)
}

// Clone returns an independent copy of the store
func (s *Store) Clone() *Store {
	c := &Store{
		nextID:   s.nextID,
		version:  s.version,
		kinds:    maps.Clone(s.kinds),
		points:   maps.Clone(s.points),
		lines:    maps.Clone(s.lines),
		circles:  maps.Clone(s.circles),
		arcs:     maps.Clone(s.arcs),
		refs:     make(map[EntityID]map[EntityID]struct{}, len(s.refs)),
		incident: make(map[EntityID]map[EntityID]struct{}, len(s.incident)),
	}
	for id, set := range s.refs {
		c.refs[id] = maps.Clone(set)
	}
	for id, set := range s.incident {
		c.incident[id] = maps.Clone(set)
	}
	return c
}

func (s *Store) allocate(kind Kind) EntityID {
	s.nextID++
	s.kinds[s.nextID] = kind
	s.version++
	return s.nextID
}

func (s *Store) insertPoint(pos geometry.Vector2) EntityID {
	id := s.allocate(KindPoint)
	s.points[id] = pos
	return id
}

func (s *Store) insertLine(a, b EntityID) EntityID {
	id := s.allocate(KindLine)
	s.lines[id] = Line{ID: id, Start: a, End: b}
	s.link(id, a, true)
	s.link(id, b, true)
	return id
}

func (s *Store) insertCircle(center EntityID, radius float64) EntityID {
	id := s.allocate(KindCircle)
	s.circles[id] = Circle{ID: id, Center: center, Radius: radius}
	s.link(id, center, false)
	return id
}

func (s *Store) insertArc(center, start, end EntityID, ccw bool) EntityID {
	id := s.allocate(KindArc)
	s.arcs[id] = Arc{ID: id, Center: center, Start: start, End: end, CCW: ccw}
	s.link(id, center, false)
	s.link(id, start, true)
	s.link(id, end, true)
	return id
}

func (s *Store) link(user, point EntityID, endpoint bool) {
	addTo(s.refs, point, user)
	if endpoint {
		addTo(s.incident, point, user)
	}
}

func (s *Store) unlink(user, point EntityID, endpoint bool) {
	delete(s.refs[point], user)
	if endpoint {
		delete(s.incident[point], user)
	}
}

func (s *Store) validateLine(a, b EntityID) error {
	pa, err := s.Position(a)
	if err != nil {
		return fmt.Errorf("line start: %w", err)
	}
	pb, err := s.Position(b)
	if err != nil {
		return fmt.Errorf("line end: %w", err)
	}
	if a == b || pa.NearlyEqual(pb) {
		return fmt.Errorf("%w: line endpoints %d and %d coincide", ErrInvalidGeometry, a, b)
	}
	return nil
}

func (s *Store) arcGeometry(center, start, end EntityID, ccw bool) (geometry.Arc, error) {
	pc, err := s.Position(center)
	if err != nil {
		return geometry.Arc{}, fmt.Errorf("arc center: %w", err)
	}
	ps, err := s.Position(start)
	if err != nil {
		return geometry.Arc{}, fmt.Errorf("arc start: %w", err)
	}
	pe, err := s.Position(end)
	if err != nil {
		return geometry.Arc{}, fmt.Errorf("arc end: %w", err)
	}
	if start == end || center == start || center == end {
		return geometry.Arc{}, fmt.Errorf("%w: arc references the same point twice", ErrInvalidGeometry)
	}
	arc, err := geometry.NewArc(pc, ps, pe, ccw)
	if err != nil {
		return geometry.Arc{}, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}
	return arc, nil
}

func validateRadius(radius float64) error {
	if !geometry.IsFinite(radius) || radius <= geometry.Tolerance {
		return fmt.Errorf("%w: radius %v must be positive", ErrInvalidGeometry, radius)
	}
	return nil
}

func addTo(m map[EntityID]map[EntityID]struct{}, key, value EntityID) {
	set, ok := m[key]
	if !ok {
		set = make(map[EntityID]struct{})
		m[key] = set
	}
	set[value] = struct{}{}
}

func sortedIDs(set map[EntityID]struct{}) []EntityID {
	return slices.Sorted(maps.Keys(set))
}

func sortedValues[T any](m map[EntityID]T) []T {
	out := make([]T, 0, len(m))
	for _, id := range slices.Sorted(maps.Keys(m)) {
		out = append(out, m[id])
	}
	return out
}
