package editor

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gosketch/internal/keymap"
	"github.com/philipparndt/gosketch/internal/mode"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/input"
	"github.com/philipparndt/gosketch/pkg/sketch"
	"github.com/philipparndt/gosketch/pkg/topology"
)

// newTable wires every mode tag to its behavior over the shared state
func newTable(st *state) mode.Table {
	return mode.Table{
		mode.Base: {
			Handle: mode.HandlerFor(func(m *baseMode, ev input.Event) (bool, error) {
				return m.handle(st, ev)
			}),
		},
		mode.Sketch: {
			Handle: mode.HandlerFor(func(m *sketchMode, ev input.Event) (bool, error) {
				return m.handle(st, ev)
			}),
			Exit: mode.ExitFor(func(m *sketchMode) {
				if st.selection.Sketch == m.sketch {
					st.selection = Selection{}
				}
			}),
		},
		mode.Point:  toolBehavior[pointTool](st, mode.Point),
		mode.Line:   toolBehavior[lineTool](st, mode.Line),
		mode.Circle: toolBehavior[circleTool](st, mode.Circle),
		mode.Arc:    toolBehavior[arcTool](st, mode.Arc),
	}
}

type baseMode struct{}

func (m *baseMode) handle(st *state, ev input.Event) (bool, error) {
	switch st.resolve(mode.Base, ev) {
	case keymap.EnterSketch:
		sk := st.sketchToEnter(ev)
		st.queue.Push(mode.New(mode.Sketch, &sketchMode{sketch: sk.ID}))
		st.status = fmt.Sprintf("editing %s", sk.Name)
		return true, nil
	case keymap.PopMode:
		st.queue.Pop()
		return true, nil
	}
	return false, nil
}

// sketchToEnter returns the sketch under the pointer, else the first
// sketch, creating one on the XY plane when the document is empty.
func (st *state) sketchToEnter(ev input.Event) *sketch.Sketch {
	if p, ok := st.pick(ev, 0); ok {
		if sk, err := st.doc.Sketch(p.Sketch); err == nil {
			return sk
		}
	}
	if all := st.doc.Sketches(); len(all) > 0 {
		return all[0]
	}
	sk := st.doc.AddSketch(fmt.Sprintf("Sketch %d", st.doc.Len()+1), geometry.PlaneXY)
	st.logger.Info("created sketch", "sketch", sk.ID, "name", sk.Name)
	return sk
}

type sketchMode struct {
	sketch sketch.SketchID
}

func (m *sketchMode) handle(st *state, ev input.Event) (bool, error) {
	act := st.resolve(mode.Sketch, ev)
	if next, ok := toolFor(act, m.sketch); ok {
		st.queue.Push(next)
		return true, nil
	}

	switch act {
	case keymap.Select:
		return true, st.selectAt(m.sketch, ev)
	case keymap.DeleteSelection:
		return true, st.deleteSelection()
	case keymap.Cancel:
		if !st.selection.IsEmpty() {
			st.selection = Selection{}
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

// selectAt selects the entity under the pointer, else the innermost closed
// region around it, else clears the selection.
func (st *state) selectAt(id sketch.SketchID, ev input.Event) error {
	sk, err := st.doc.Sketch(id)
	if err != nil {
		return err
	}
	if p, ok := st.pick(ev, id); ok {
		st.selection = Selection{Sketch: id, Entity: p.Entity}
		return nil
	}

	wires := st.wiresOf(sk)
	if i, ok := topology.Innermost(wires, st.at(ev)); ok {
		st.selection = Selection{Sketch: id, Region: wires[i].Entities()}
		return nil
	}
	st.selection = Selection{}
	return nil
}

// deleteSelection removes the selected entity, or the edges of the selected
// region. Points still referenced are left in place.
func (st *state) deleteSelection() error {
	sel := st.selection
	if sel.IsEmpty() {
		return nil
	}
	sk, err := st.doc.Sketch(sel.Sketch)
	if err != nil {
		st.selection = Selection{}
		return err
	}

	if sel.Entity != 0 {
		if err := sk.Store.Remove(sel.Entity); err != nil {
			st.status = err.Error()
			return fmt.Errorf("delete %d: %w", sel.Entity, err)
		}
		st.logger.Debug("entity removed", "sketch", sk.ID, "id", sel.Entity)
		st.selection = Selection{}
		return nil
	}

	var errs []error
	for _, id := range sel.Region {
		if err := sk.Store.Remove(id); err != nil && !errors.Is(err, sketch.ErrNotFound) {
			errs = append(errs, fmt.Errorf("delete %d: %w", id, err))
		}
	}
	st.selection = Selection{}
	return errors.Join(errs...)
}

// toolFor returns the tool mode an activation action starts
func toolFor(act keymap.Action, id sketch.SketchID) (mode.Mode, bool) {
	base := toolBase{sketch: id}
	switch act {
	case keymap.ActivatePointMode:
		return mode.New(mode.Point, &pointTool{toolBase: base}), true
	case keymap.ActivateLineMode:
		return mode.New(mode.Line, &lineTool{toolBase: base}), true
	case keymap.ActivateCircleMode:
		return mode.New(mode.Circle, &circleTool{toolBase: base}), true
	case keymap.ActivateArcMode:
		return mode.New(mode.Arc, &arcTool{toolBase: base}), true
	}
	return mode.Mode{}, false
}
