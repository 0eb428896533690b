package sketch

import (
	"fmt"
	"maps"
	"slices"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

// Sketch is a 2D working plane with its own entity store
type Sketch struct {
	ID      SketchID
	Name    string
	Plane   geometry.Plane
	Visible bool
	Store   *Store
}

// Document holds the sketches of one editing session
type Document struct {
	nextID   SketchID
	sketches map[SketchID]*Sketch
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{sketches: make(map[SketchID]*Sketch)}
}

// AddSketch creates a visible, empty sketch on the given plane
func (d *Document) AddSketch(name string, plane geometry.Plane) *Sketch {
	d.nextID++
	s := &Sketch{
		ID:      d.nextID,
		Name:    name,
		Plane:   plane,
		Visible: true,
		Store:   NewStore(),
	}
	d.sketches[s.ID] = s
	return s
}

// Sketch returns a sketch by id
func (d *Document) Sketch(id SketchID) (*Sketch, error) {
	s, ok := d.sketches[id]
	if !ok {
		return nil, fmt.Errorf("sketch %d: %w", id, ErrNotFound)
	}
	return s, nil
}

// Sketches returns all sketches sorted by id
func (d *Document) Sketches() []*Sketch {
	out := make([]*Sketch, 0, len(d.sketches))
	for _, id := range slices.Sorted(maps.Keys(d.sketches)) {
		out = append(out, d.sketches[id])
	}
	return out
}

// RemoveSketch drops a sketch and all of its entities
func (d *Document) RemoveSketch(id SketchID) error {
	if _, ok := d.sketches[id]; !ok {
		return fmt.Errorf("sketch %d: %w", id, ErrNotFound)
	}
	delete(d.sketches, id)
	return nil
}

// Len returns the number of sketches
func (d *Document) Len() int {
	return len(d.sketches)
}
