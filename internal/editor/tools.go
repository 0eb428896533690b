package editor

import (
	"github.com/philipparndt/gosketch/internal/keymap"
	"github.com/philipparndt/gosketch/internal/mode"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/input"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

// PendingShape is the partial construction of the active tool, for preview
// drawing. Points are in sketch coordinates and end with the pointer.
type PendingShape struct {
	Kind   sketch.Kind
	Points []geometry.Vector2
	Radius float64
}

// tool is implemented by the mode data of the drawing tools
type tool interface {
	sketchID() sketch.SketchID
	pending() bool
	reset()
	place(st *state, sk *sketch.Sketch, at geometry.Vector2) error
	preview(cursor geometry.Vector2) *PendingShape
}

// toolBase holds the clicks collected so far
type toolBase struct {
	sketch sketch.SketchID
	points []geometry.Vector2
}

func (t *toolBase) sketchID() sketch.SketchID { return t.sketch }
func (t *toolBase) pending() bool             { return len(t.points) > 0 }
func (t *toolBase) reset()                    { t.points = nil }

func toolBehavior[T any, PT interface {
	*T
	tool
}](st *state, id mode.ID) mode.Behavior {
	return mode.Behavior{
		Handle: mode.HandlerFor(func(t *T, ev input.Event) (bool, error) {
			return st.handleTool(id, PT(t), ev)
		}),
		Exit: mode.ExitFor(func(t *T) { PT(t).reset() }),
	}
}

// handleTool is the input handling shared by all tools. Activating another
// tool swaps it in place of this one.
func (st *state) handleTool(id mode.ID, t tool, ev input.Event) (bool, error) {
	act := st.resolve(id, ev)
	if next, ok := toolFor(act, t.sketchID()); ok {
		st.queue.PopAndPush(next)
		return true, nil
	}

	switch act {
	case keymap.Place:
		sk, err := st.doc.Sketch(t.sketchID())
		if err != nil {
			return true, err
		}
		return true, t.place(st, sk, st.at(ev))
	case keymap.Confirm:
		t.reset()
		return true, nil
	case keymap.Cancel:
		if t.pending() {
			t.reset()
			return true, nil
		}
		st.queue.Pop()
		return true, nil
	case keymap.PopMode:
		st.queue.Pop()
		return true, nil
	}
	return false, nil
}

type pointTool struct{ toolBase }

func (m *pointTool) place(st *state, sk *sketch.Sketch, at geometry.Vector2) error {
	if id, ok := sk.Store.NearestPoint(at, st.snapRadius()); ok {
		st.status = "point exists"
		st.logger.Debug("point placement snapped to existing point", "sketch", sk.ID, "id", id)
		return nil
	}
	id, err := sk.Store.AddPoint(at)
	if err != nil {
		return st.rejected(sketch.KindPoint, err)
	}
	st.committed(sk, sketch.KindPoint, sketch.Commit{Entity: id, Points: []sketch.EntityID{id}, Created: []sketch.EntityID{id}})
	return nil
}

func (m *pointTool) preview(geometry.Vector2) *PendingShape { return nil }

// lineTool draws chained lines: every committed line starts the next one
// at its end point until Confirm or Cancel.
type lineTool struct{ toolBase }

func (m *lineTool) place(st *state, sk *sketch.Sketch, at geometry.Vector2) error {
	if len(m.points) == 0 {
		m.points = []geometry.Vector2{st.snapTo(sk, at)}
		return nil
	}
	c, err := sk.Store.AddLineAt(m.points[0], at, st.snapRadius())
	if err != nil {
		return st.rejected(sketch.KindLine, err)
	}
	st.committed(sk, sketch.KindLine, c)
	end, err := sk.Store.Position(c.Points[1])
	if err != nil {
		m.reset()
		return err
	}
	m.points = []geometry.Vector2{end}
	return nil
}

func (m *lineTool) preview(cursor geometry.Vector2) *PendingShape {
	if len(m.points) == 0 {
		return nil
	}
	return &PendingShape{Kind: sketch.KindLine, Points: []geometry.Vector2{m.points[0], cursor}}
}

// circleTool takes the center, then a point on the circle
type circleTool struct{ toolBase }

func (m *circleTool) place(st *state, sk *sketch.Sketch, at geometry.Vector2) error {
	if len(m.points) == 0 {
		m.points = []geometry.Vector2{st.snapTo(sk, at)}
		return nil
	}
	c, err := sk.Store.AddCircleAt(m.points[0], m.points[0].Distance(at), st.snapRadius())
	if err != nil {
		return st.rejected(sketch.KindCircle, err)
	}
	st.committed(sk, sketch.KindCircle, c)
	m.reset()
	return nil
}

func (m *circleTool) preview(cursor geometry.Vector2) *PendingShape {
	if len(m.points) == 0 {
		return nil
	}
	return &PendingShape{
		Kind:   sketch.KindCircle,
		Points: []geometry.Vector2{m.points[0], cursor},
		Radius: m.points[0].Distance(cursor),
	}
}

// arcTool takes the start, the end, then a point the arc passes through
type arcTool struct{ toolBase }

func (m *arcTool) place(st *state, sk *sketch.Sketch, at geometry.Vector2) error {
	if len(m.points) < 2 {
		m.points = append(m.points, st.snapTo(sk, at))
		return nil
	}
	c, err := sk.Store.AddArcAt(m.points[0], at, m.points[1], st.snapRadius())
	if err != nil {
		return st.rejected(sketch.KindArc, err)
	}
	st.committed(sk, sketch.KindArc, c)
	m.reset()
	return nil
}

func (m *arcTool) preview(cursor geometry.Vector2) *PendingShape {
	if len(m.points) == 0 {
		return nil
	}
	return &PendingShape{Kind: sketch.KindArc, Points: append(append([]geometry.Vector2{}, m.points...), cursor)}
}
