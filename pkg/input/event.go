// Package input defines the raw, toolkit-independent input events the
// editor consumes.
package input

import (
	"fmt"
	"strings"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

// Kind is the type of an input event
type Kind uint8

const (
	KeyPress Kind = iota + 1
	KeyRelease
	MousePress
	MouseRelease
	MouseMove
	Scroll
)

func (k Kind) String() string {
	switch k {
	case KeyPress:
		return "key-press"
	case KeyRelease:
		return "key-release"
	case MousePress:
		return "mouse-press"
	case MouseRelease:
		return "mouse-release"
	case MouseMove:
		return "mouse-move"
	case Scroll:
		return "scroll"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Modifiers is a bit set of held modifier keys
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

var modifierNames = []struct {
	mod  Modifiers
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
	{ModSuper, "Super"},
}

// Has reports whether every modifier in m is held
func (m Modifiers) Has(other Modifiers) bool {
	return m&other == other
}

func (m Modifiers) String() string {
	var parts []string
	for _, mn := range modifierNames {
		if m.Has(mn.mod) {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(parts, "+")
}

// Event is one raw input event. Position is in screen pixels. Delta holds
// the pointer movement for MouseMove and the wheel offset for Scroll.
type Event struct {
	Kind     Kind
	Key      Key
	Button   MouseButton
	Position geometry.Vector2
	Delta    geometry.Vector2
	Mods     Modifiers
}

// KeyDown creates a key press event
func KeyDown(k Key, mods Modifiers) Event {
	return Event{Kind: KeyPress, Key: k, Mods: mods}
}

// KeyUp creates a key release event
func KeyUp(k Key, mods Modifiers) Event {
	return Event{Kind: KeyRelease, Key: k, Mods: mods}
}

// MouseDown creates a mouse button press event
func MouseDown(b MouseButton, pos geometry.Vector2, mods Modifiers) Event {
	return Event{Kind: MousePress, Button: b, Position: pos, Mods: mods}
}

// MouseUp creates a mouse button release event
func MouseUp(b MouseButton, pos geometry.Vector2, mods Modifiers) Event {
	return Event{Kind: MouseRelease, Button: b, Position: pos, Mods: mods}
}

// Move creates a pointer movement event
func Move(pos, delta geometry.Vector2, mods Modifiers) Event {
	return Event{Kind: MouseMove, Position: pos, Delta: delta, Mods: mods}
}

// Wheel creates a scroll event at pos
func Wheel(pos, delta geometry.Vector2, mods Modifiers) Event {
	return Event{Kind: Scroll, Position: pos, Delta: delta, Mods: mods}
}

func (e Event) String() string {
	switch e.Kind {
	case KeyPress, KeyRelease:
		return fmt.Sprintf("%s %s", e.Kind, Chord{Key: e.Key, Mods: e.Mods})
	case MousePress, MouseRelease:
		return fmt.Sprintf("%s %s at (%.1f, %.1f)", e.Kind, MouseChord{Button: e.Button, Mods: e.Mods}, e.Position.X, e.Position.Y)
	default:
		return fmt.Sprintf("%s at (%.1f, %.1f) delta (%.1f, %.1f)", e.Kind, e.Position.X, e.Position.Y, e.Delta.X, e.Delta.Y)
	}
}
