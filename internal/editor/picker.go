package editor

import (
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

// Pick identifies an entity under the pointer
type Pick struct {
	Sketch sketch.SketchID
	Entity sketch.EntityID
}

// PickQuery describes where to pick. Screen is the pointer position in
// pixels for pickers that read an id buffer; At and Radius are the same
// position and tolerance in sketch units. A non-zero Sketch restricts the
// pick to that sketch.
type PickQuery struct {
	Screen geometry.Vector2
	At     geometry.Vector2
	Radius float64
	Sketch sketch.SketchID
}

// Picker finds the entity under the pointer
type Picker interface {
	Pick(doc *sketch.Document, q PickQuery) (Pick, bool)
}

// GeometricPicker picks by distance to entity geometry. Points win over
// curves; across sketches the lowest sketch id wins.
type GeometricPicker struct{}

// Pick implements Picker
func (GeometricPicker) Pick(doc *sketch.Document, q PickQuery) (Pick, bool) {
	if q.Sketch != 0 {
		sk, err := doc.Sketch(q.Sketch)
		if err != nil {
			return Pick{}, false
		}
		return pickIn(sk, q)
	}
	for _, sk := range doc.Sketches() {
		if !sk.Visible {
			continue
		}
		if p, ok := pickIn(sk, q); ok {
			return p, true
		}
	}
	return Pick{}, false
}

func pickIn(sk *sketch.Sketch, q PickQuery) (Pick, bool) {
	id, ok := sk.Store.NearestEntity(q.At, q.Radius)
	if !ok {
		return Pick{}, false
	}
	return Pick{Sketch: sk.ID, Entity: id}, true
}
