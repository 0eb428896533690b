package editor

import (
	"fmt"
	"log/slog"

	"github.com/philipparndt/gosketch/internal/keymap"
	"github.com/philipparndt/gosketch/internal/metrics"
	"github.com/philipparndt/gosketch/internal/mode"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/input"
	"github.com/philipparndt/gosketch/pkg/sketch"
	"github.com/philipparndt/gosketch/pkg/topology"
)

// Selection is the current selection of the Sketch mode. Either a single
// entity or the entities bounding a region are selected.
type Selection struct {
	Sketch sketch.SketchID
	Entity sketch.EntityID
	Region []sketch.EntityID
}

// IsEmpty reports whether nothing is selected
func (s Selection) IsEmpty() bool {
	return s.Entity == 0 && len(s.Region) == 0
}

// PointerState tracks the pointer between events
type PointerState struct {
	Position  geometry.Vector2 // screen pixels
	panning   bool
	panButton input.MouseButton
}

// state is shared by all mode handlers. Modes reach it through the
// closures built in newTable and talk to the stack only via the queue.
type state struct {
	doc       *sketch.Document
	queue     *mode.Queue
	view      Viewport
	keymap    *keymap.Keymap
	picker    Picker
	selection Selection
	pointer   PointerState
	status    string
	wires     map[sketch.SketchID]*topology.Cache
	logger    *slog.Logger
	metrics   *metrics.Recorder
}

func (st *state) resolve(id mode.ID, ev input.Event) keymap.Action {
	a, ok := st.keymap.Resolve(id, ev)
	if !ok {
		return keymap.None
	}
	return a
}

// at returns the sketch position of a pointer event, or of the last known
// pointer position for key events.
func (st *state) at(ev input.Event) geometry.Vector2 {
	switch ev.Kind {
	case input.MousePress, input.MouseRelease, input.MouseMove, input.Scroll:
		return st.view.ToSketch(ev.Position)
	}
	return st.view.ToSketch(st.pointer.Position)
}

func (st *state) snapRadius() float64 {
	return st.view.ToSketchDistance(st.keymap.Settings.SnapRadius)
}

func (st *state) pickRadius() float64 {
	return st.view.ToSketchDistance(st.keymap.Settings.PickRadius)
}

// snapTo returns the position of the point within snap radius of at, or at
// itself.
func (st *state) snapTo(sk *sketch.Sketch, at geometry.Vector2) geometry.Vector2 {
	if id, ok := sk.Store.NearestPoint(at, st.snapRadius()); ok {
		if p, err := sk.Store.Position(id); err == nil {
			return p
		}
	}
	return at
}

func (st *state) pick(ev input.Event, restrict sketch.SketchID) (Pick, bool) {
	screen := st.pointer.Position
	if ev.Kind == input.MousePress || ev.Kind == input.MouseRelease {
		screen = ev.Position
	}
	return st.picker.Pick(st.doc, PickQuery{
		Screen: screen,
		At:     st.at(ev),
		Radius: st.pickRadius(),
		Sketch: restrict,
	})
}

func (st *state) wiresOf(sk *sketch.Sketch) []topology.Wire {
	c, ok := st.wires[sk.ID]
	if !ok {
		c = &topology.Cache{}
		st.wires[sk.ID] = c
	}
	return c.Wires(sk.Store)
}

func (st *state) committed(sk *sketch.Sketch, kind sketch.Kind, c sketch.Commit) {
	st.metrics.Commit(kind.String())
	st.logger.Debug("entity committed", "sketch", sk.ID, "kind", kind.String(), "id", c.Entity, "new_points", len(c.Created))
	st.status = fmt.Sprintf("added %s %d", kind, c.Entity)
}

func (st *state) rejected(kind sketch.Kind, err error) error {
	st.metrics.Failure(kind.String())
	st.logger.Info("commit rejected", "kind", kind.String(), "err", err)
	st.status = err.Error()
	return fmt.Errorf("add %s: %w", kind, err)
}
