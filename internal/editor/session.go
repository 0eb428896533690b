// Package editor drives a sketching session: it turns raw input into
// mode-stack dispatches, owns the document and exposes what a frontend
// needs to draw.
package editor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/philipparndt/gosketch/internal/keymap"
	"github.com/philipparndt/gosketch/internal/logging"
	"github.com/philipparndt/gosketch/internal/metrics"
	"github.com/philipparndt/gosketch/internal/mode"
	"github.com/philipparndt/gosketch/pkg/input"
	"github.com/philipparndt/gosketch/pkg/sketch"
	"github.com/philipparndt/gosketch/pkg/topology"
	"github.com/philipparndt/gosketch/pkg/watcher"
)

// Session is one editing session. It is not safe for concurrent use; call
// it from the UI thread. Only WatchKeymap starts background work, and that
// hands results over through Poll.
type Session struct {
	id      uuid.UUID
	st      *state
	stack   *mode.Stack
	reloads chan *keymap.Keymap
}

// Option configures a Session
type Option func(*state)

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(st *state) { st.logger = l }
}

// WithMetrics sets the metrics recorder
func WithMetrics(r *metrics.Recorder) Option {
	return func(st *state) { st.metrics = r }
}

// WithKeymap replaces the default key bindings
func WithKeymap(k *keymap.Keymap) Option {
	return func(st *state) { st.keymap = k }
}

// WithPicker replaces the geometric picker
func WithPicker(p Picker) Option {
	return func(st *state) { st.picker = p }
}

// WithDocument edits an existing document instead of an empty one
func WithDocument(d *sketch.Document) Option {
	return func(st *state) { st.doc = d }
}

// WithViewport sets the initial viewport
func WithViewport(v Viewport) Option {
	return func(st *state) { st.view = v }
}

// NewSession creates a session with only the Base mode active
func NewSession(opts ...Option) *Session {
	st := &state{
		doc:    sketch.NewDocument(),
		queue:  mode.NewQueue(),
		view:   NewViewport(),
		picker: GeometricPicker{},
		wires:  make(map[sketch.SketchID]*topology.Cache),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(st)
	}
	if st.keymap == nil {
		st.keymap = keymap.Default()
	}

	s := &Session{
		id:      uuid.New(),
		st:      st,
		reloads: make(chan *keymap.Keymap, 1),
	}
	st.logger = st.logger.With("session", s.id.String())
	s.stack = mode.NewStack(newTable(st), st.queue,
		mode.WithLogger(st.logger),
		mode.WithBaseData(&baseMode{}),
		mode.WithObserver(func(c mode.Change) {
			st.metrics.Message(c.Message.Op.String(), c.Err)
		}),
	)
	return s
}

// ID returns the session id used in log records
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Document returns the edited document
func (s *Session) Document() *sketch.Document {
	return s.st.doc
}

// Keymap returns the active key bindings
func (s *Session) Keymap() *keymap.Keymap {
	return s.st.keymap
}

// Viewport returns the current view mapping
func (s *Session) Viewport() Viewport {
	return s.st.view
}

// SetViewport replaces the view mapping, e.g. after a window resize
func (s *Session) SetViewport(v Viewport) {
	s.st.view = v
}

// Modes returns the active mode tags from bottom to top
func (s *Session) Modes() []mode.ID {
	return s.stack.Modes()
}

// Active returns the sketch being edited, or 0 in the Base mode
func (s *Session) Active() sketch.SketchID {
	if d, ok := s.stack.Data(mode.Sketch); ok {
		if m, ok := d.(*sketchMode); ok {
			return m.sketch
		}
	}
	return 0
}

// Selection returns the current selection
func (s *Session) Selection() Selection {
	return s.st.selection
}

// HandleEvent processes one input event. View actions are handled here in
// every mode; everything else goes to the top mode. The returned error
// carries any rejected commit or stack message and leaves the session
// usable.
func (s *Session) HandleEvent(ev input.Event) (bool, error) {
	st := s.st
	switch ev.Kind {
	case input.MouseMove, input.MousePress, input.MouseRelease, input.Scroll:
		st.pointer.Position = ev.Position
	}
	if ev.Kind == input.KeyPress || ev.Kind == input.MousePress {
		st.status = ""
	}

	if st.pointer.panning {
		switch {
		case ev.Kind == input.MouseMove:
			st.view.Pan(ev.Delta)
			return true, nil
		case ev.Kind == input.MouseRelease && ev.Button == st.pointer.panButton:
			st.pointer.panning = false
			return true, nil
		}
	}

	top := s.stack.Top().ID
	if act, ok := st.keymap.Resolve(top, ev); ok {
		st.metrics.Action(act.String())
		if act.IsView() {
			s.view(act, ev)
			st.metrics.Event(top.String(), true)
			return true, nil
		}
	}

	consumed, err := s.stack.Dispatch(ev)
	st.metrics.Event(top.String(), consumed)
	if err != nil {
		st.logger.Debug("event not fully applied", "event", ev.String(), "err", err)
	}
	return consumed, err
}

func (s *Session) view(act keymap.Action, ev input.Event) {
	st := s.st
	switch act {
	case keymap.Pan:
		if ev.Kind == input.MousePress {
			st.pointer.panning = true
			st.pointer.panButton = ev.Button
		}
	case keymap.ZoomIn:
		st.view.Zoom(st.keymap.Settings.ZoomStep, st.pointer.Position)
	case keymap.ZoomOut:
		st.view.Zoom(1/st.keymap.Settings.ZoomStep, st.pointer.Position)
	}
}

// Activate switches to editing the given sketch from any mode depth
func (s *Session) Activate(id sketch.SketchID) error {
	if _, err := s.st.doc.Sketch(id); err != nil {
		return err
	}
	s.st.queue.PopUntil(mode.Base)
	s.st.queue.Push(mode.New(mode.Sketch, &sketchMode{sketch: id}))
	return s.stack.Flush()
}

// Wires returns the closed wires of a sketch, cached until it changes
func (s *Session) Wires(id sketch.SketchID) ([]topology.Wire, error) {
	sk, err := s.st.doc.Sketch(id)
	if err != nil {
		return nil, err
	}
	return s.st.wiresOf(sk), nil
}

// Poll applies a keymap delivered by the watcher. Call it at the start of
// each frame; it reports whether the bindings changed.
func (s *Session) Poll() bool {
	select {
	case km := <-s.reloads:
		s.st.keymap = km
		s.st.status = "keymap reloaded"
		s.st.logger.Info("keymap reloaded")
		return true
	default:
		return false
	}
}

// WatchKeymap reloads the keymap at path whenever it changes until ctx is
// done. A keymap with errors is logged and ignored, keeping the old one.
func (s *Session) WatchKeymap(ctx context.Context, path string) error {
	w, err := watcher.New(100*time.Millisecond, s.st.logger)
	if err != nil {
		return err
	}
	if err := w.Watch(path, s.reload); err != nil {
		w.Close()
		return fmt.Errorf("watch keymap: %w", err)
	}
	go func() {
		if err := w.Run(ctx); err != nil {
			s.st.logger.Warn("keymap watcher stopped", "err", err)
		}
	}()
	s.st.logger.Info("watching keymap", "path", path)
	return nil
}

// reload runs on the watcher goroutine and must only touch the channel
// and the logger.
func (s *Session) reload(path string) {
	km, err := keymap.Load(path)
	if err != nil {
		s.st.logger.Warn("keymap not reloaded", "path", path, "err", err)
		return
	}
	for {
		select {
		case s.reloads <- km:
			return
		default:
			select {
			case <-s.reloads:
			default:
			}
		}
	}
}
