package editor

import (
	"github.com/philipparndt/gosketch/internal/mode"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

// LineView is a line with its resolved geometry
type LineView struct {
	ID      sketch.EntityID
	Segment geometry.Segment
}

// CircleView is a circle with its resolved geometry
type CircleView struct {
	ID     sketch.EntityID
	Circle geometry.Circle
}

// ArcView is an arc with its resolved geometry
type ArcView struct {
	ID  sketch.EntityID
	Arc geometry.Arc
}

// SketchView is everything needed to draw one sketch
type SketchView struct {
	ID      sketch.SketchID
	Name    string
	Plane   geometry.Plane
	Active  bool
	Points  []sketch.Point
	Lines   []LineView
	Circles []CircleView
	Arcs    []ArcView
}

// Frame is a snapshot of the session for rendering
type Frame struct {
	Modes     []mode.ID
	Active    sketch.SketchID
	Sketches  []SketchView
	Pending   *PendingShape
	Selection Selection
	// Cursor is the pointer position in sketch coordinates
	Cursor geometry.Vector2
	View   Viewport
	Status string
}

// Frame returns what a renderer needs for the next frame. Hidden sketches
// are left out unless they are being edited.
func (s *Session) Frame() Frame {
	st := s.st
	f := Frame{
		Modes:     s.stack.Modes(),
		Active:    s.Active(),
		Selection: st.selection,
		Cursor:    st.view.ToSketch(st.pointer.Position),
		View:      st.view,
		Status:    st.status,
	}
	if t, ok := s.stack.Top().Data.(tool); ok {
		f.Pending = t.preview(f.Cursor)
	}
	for _, sk := range st.doc.Sketches() {
		if !sk.Visible && sk.ID != f.Active {
			continue
		}
		f.Sketches = append(f.Sketches, viewOf(sk, sk.ID == f.Active))
	}
	return f
}

func viewOf(sk *sketch.Sketch, active bool) SketchView {
	v := SketchView{
		ID:     sk.ID,
		Name:   sk.Name,
		Plane:  sk.Plane,
		Active: active,
		Points: sk.Store.Points(),
	}
	for _, l := range sk.Store.Lines() {
		if seg, err := sk.Store.Segment(l.ID); err == nil {
			v.Lines = append(v.Lines, LineView{ID: l.ID, Segment: seg})
		}
	}
	for _, c := range sk.Store.Circles() {
		if g, err := sk.Store.CircleGeometry(c.ID); err == nil {
			v.Circles = append(v.Circles, CircleView{ID: c.ID, Circle: g})
		}
	}
	for _, a := range sk.Store.Arcs() {
		if g, err := sk.Store.ArcGeometry(a.ID); err == nil {
			v.Arcs = append(v.Arcs, ArcView{ID: a.ID, Arc: g})
		}
	}
	return v
}
