// Package viewer is the fyne frontend widget: it translates fyne pointer and
// keyboard callbacks into editor input events and draws the session frame
// with canvas primitives.
package viewer

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/gosketch/internal/display"
	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/input"
)

const fitMargin = 40

// SketchCanvas is a focusable widget that edits one session
type SketchCanvas struct {
	widget.BaseWidget

	session *editor.Session
	options display.Options
	palette display.Palette

	mods     input.Modifiers // held modifier keys
	last     geometry.Vector2
	hasLast  bool
	centered bool

	onChange func(editor.Frame)
	onError  func(error)
}

// NewSketchCanvas creates the widget for s
func NewSketchCanvas(s *editor.Session) *SketchCanvas {
	c := &SketchCanvas{
		session: s,
		options: display.DefaultOptions(),
		palette: display.DefaultPalette(),
	}
	c.ExtendBaseWidget(c)
	return c
}

// SetOnChange sets the callback run after every handled event
func (c *SketchCanvas) SetOnChange(callback func(editor.Frame)) {
	c.onChange = callback
}

// SetOnError sets the callback for rejected events
func (c *SketchCanvas) SetOnError(callback func(error)) {
	c.onError = callback
}

// Session returns the edited session
func (c *SketchCanvas) Session() *editor.Session {
	return c.session
}

// CreateRenderer creates the renderer for the widget
func (c *SketchCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &sketchRenderer{w: c}
}

// FitView zooms to the content of every sketch
func (c *SketchCanvas) FitView() {
	size := c.Size()
	bounds := geometry.EmptyBounds()
	for _, sk := range c.session.Document().Sketches() {
		bounds = bounds.Union(sk.Store.Bounds())
	}
	v := c.session.Viewport()
	if bounds.IsEmpty() {
		v = centered(size)
	} else {
		v.Fit(bounds, float64(size.Width), float64(size.Height), fitMargin)
	}
	c.session.SetViewport(v)
	c.changed()
}

// Sync redraws after the session was changed from outside the widget,
// e.g. by a replayed script or a keymap reload
func (c *SketchCanvas) Sync() {
	c.changed()
}

// centered shows the sketch origin in the middle with y pointing up
func centered(size fyne.Size) editor.Viewport {
	return editor.Viewport{
		Origin: geometry.Vector2{X: -float64(size.Width) / 2, Y: float64(size.Height) / 2},
		Scale:  1,
		FlipY:  true,
	}
}

func pos(p fyne.Position) geometry.Vector2 {
	return geometry.Vector2{X: float64(p.X), Y: float64(p.Y)}
}

func (c *SketchCanvas) handle(ev input.Event) {
	if _, err := c.session.HandleEvent(ev); err != nil && c.onError != nil {
		c.onError(err)
	}
	c.changed()
}

func (c *SketchCanvas) changed() {
	c.Refresh()
	if c.onChange != nil {
		c.onChange(c.session.Frame())
	}
}

func (c *SketchCanvas) moveTo(p geometry.Vector2) {
	delta := geometry.Vector2{}
	if c.hasLast {
		delta = p.Sub(c.last)
	}
	c.last, c.hasLast = p, true
	c.handle(input.Move(p, delta, c.mods))
}

// MouseDown implements desktop.Mouseable
func (c *SketchCanvas) MouseDown(ev *desktop.MouseEvent) {
	if cv := fyne.CurrentApp().Driver().CanvasForObject(c); cv != nil {
		cv.Focus(c)
	}
	c.mods = modifiersFromFyne(ev.Modifier)
	c.last, c.hasLast = pos(ev.Position), true
	if b := buttonFromFyne(ev.Button); b != input.ButtonNone {
		c.handle(input.MouseDown(b, pos(ev.Position), c.mods))
	}
}

// MouseUp implements desktop.Mouseable
func (c *SketchCanvas) MouseUp(ev *desktop.MouseEvent) {
	c.mods = modifiersFromFyne(ev.Modifier)
	if b := buttonFromFyne(ev.Button); b != input.ButtonNone {
		c.handle(input.MouseUp(b, pos(ev.Position), c.mods))
	}
}

// MouseIn implements desktop.Hoverable
func (c *SketchCanvas) MouseIn(ev *desktop.MouseEvent) {
	c.last, c.hasLast = pos(ev.Position), true
}

// MouseMoved implements desktop.Hoverable
func (c *SketchCanvas) MouseMoved(ev *desktop.MouseEvent) {
	c.moveTo(pos(ev.Position))
}

// MouseOut implements desktop.Hoverable
func (c *SketchCanvas) MouseOut() {
	c.hasLast = false
}

// Dragged implements fyne.Draggable. fyne reports pointer motion with a
// button held as drags, not moves.
func (c *SketchCanvas) Dragged(ev *fyne.DragEvent) {
	c.moveTo(pos(ev.Position))
}

// DragEnd implements fyne.Draggable
func (c *SketchCanvas) DragEnd() {}

// Scrolled implements fyne.Scrollable
func (c *SketchCanvas) Scrolled(ev *fyne.ScrollEvent) {
	delta := geometry.Vector2{X: float64(ev.Scrolled.DX), Y: float64(ev.Scrolled.DY)}
	c.handle(input.Wheel(pos(ev.Position), delta, c.mods))
}

// FocusGained implements fyne.Focusable
func (c *SketchCanvas) FocusGained() {}

// FocusLost implements fyne.Focusable. Modifier releases are not delivered
// to an unfocused widget.
func (c *SketchCanvas) FocusLost() {
	c.mods = 0
}

// TypedRune implements fyne.Focusable. Keys arrive through KeyDown.
func (c *SketchCanvas) TypedRune(rune) {}

// TypedKey implements fyne.Focusable. Keys arrive through KeyDown.
func (c *SketchCanvas) TypedKey(*fyne.KeyEvent) {}

// KeyDown implements desktop.Keyable
func (c *SketchCanvas) KeyDown(ev *fyne.KeyEvent) {
	if m, ok := modifierKeys[ev.Name]; ok {
		c.mods |= m
		return
	}
	if k := keyFromFyne(ev.Name); k != input.KeyNone {
		c.handle(input.KeyDown(k, c.mods))
	}
}

// KeyUp implements desktop.Keyable
func (c *SketchCanvas) KeyUp(ev *fyne.KeyEvent) {
	if m, ok := modifierKeys[ev.Name]; ok {
		c.mods &^= m
		return
	}
	if k := keyFromFyne(ev.Name); k != input.KeyNone {
		c.handle(input.KeyUp(k, c.mods))
	}
}
