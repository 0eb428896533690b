// Package keymap maps raw input events to editor actions per mode.
//
// Bindings are read from a small line based language:
//
//	# comment
//	Bind <mode> <chord> <action>
//	MouseBind <mode> <mouse-chord> <action>
//	Set <setting> <value>
//
// The mode is a mode tag name or Global. Global bindings apply whenever the
// active mode has no binding of its own for the same input.
package keymap

import (
	_ "embed"
	"math"

	"github.com/philipparndt/gosketch/internal/mode"
	"github.com/philipparndt/gosketch/pkg/input"
)

//go:embed default.keymap
var defaultText string

// DefaultText returns the source of the built-in key bindings
func DefaultText() string {
	return defaultText
}

// Default returns the built-in key bindings. It panics if the embedded
// keymap does not parse, which only a broken build can cause.
func Default() *Keymap {
	km, err := ParseString(defaultText)
	if err != nil {
		panic("keymap: embedded default does not parse: " + err.Error())
	}
	return km
}

// Settings are the tunables a keymap file can Set
type Settings struct {
	// SnapRadius is the distance in screen pixels within which a click
	// reuses an existing point.
	SnapRadius float64
	// PickRadius is the distance in screen pixels used for picking
	PickRadius float64
	// ZoomStep is the scale factor applied per zoom action
	ZoomStep float64
}

// DefaultSettings are used for every setting a keymap does not Set
func DefaultSettings() Settings {
	return Settings{SnapRadius: 8, PickRadius: 6, ZoomStep: 1.2}
}

// scope is a mode tag or the global scope
type scope int

const global scope = -1

// Keymap holds key and mouse bindings per mode
type Keymap struct {
	Settings Settings

	keys  map[scope]map[input.Chord]Action
	mouse map[scope]map[input.MouseChord]Action
}

// New creates an empty keymap with default settings
func New() *Keymap {
	return &Keymap{
		Settings: DefaultSettings(),
		keys:     map[scope]map[input.Chord]Action{},
		mouse:    map[scope]map[input.MouseChord]Action{},
	}
}

// Bind binds a key chord in mode m
func (k *Keymap) Bind(m mode.ID, c input.Chord, a Action) {
	k.bindKey(scope(m), c, a)
}

// BindGlobal binds a key chord in every mode without its own binding
func (k *Keymap) BindGlobal(c input.Chord, a Action) {
	k.bindKey(global, c, a)
}

// BindMouse binds a mouse chord in mode m
func (k *Keymap) BindMouse(m mode.ID, c input.MouseChord, a Action) {
	k.bindMouse(scope(m), c, a)
}

// BindMouseGlobal binds a mouse chord in every mode without its own binding
func (k *Keymap) BindMouseGlobal(c input.MouseChord, a Action) {
	k.bindMouse(global, c, a)
}

func (k *Keymap) bindKey(s scope, c input.Chord, a Action) {
	if k.keys[s] == nil {
		k.keys[s] = map[input.Chord]Action{}
	}
	k.keys[s][c] = a
}

func (k *Keymap) bindMouse(s scope, c input.MouseChord, a Action) {
	if k.mouse[s] == nil {
		k.mouse[s] = map[input.MouseChord]Action{}
	}
	k.mouse[s][c] = a
}

// Resolve returns the action bound to ev in mode m. Key presses, mouse
// presses and scroll steps resolve; releases and pointer motion never do.
func (k *Keymap) Resolve(m mode.ID, ev input.Event) (Action, bool) {
	switch ev.Kind {
	case input.KeyPress:
		return lookup(k.keys, scope(m), input.Chord{Key: ev.Key, Mods: ev.Mods})
	case input.MousePress:
		return lookup(k.mouse, scope(m), input.MouseChord{Button: ev.Button, Mods: ev.Mods})
	case input.Scroll:
		b := input.ScrollUp
		if ev.Delta.Y < 0 {
			b = input.ScrollDown
		} else if ev.Delta.Y == 0 || math.IsNaN(ev.Delta.Y) {
			return None, false
		}
		return lookup(k.mouse, scope(m), input.MouseChord{Button: b, Mods: ev.Mods})
	}
	return None, false
}

func lookup[C comparable](tables map[scope]map[C]Action, s scope, c C) (Action, bool) {
	if a, ok := tables[s][c]; ok {
		return a, true
	}
	a, ok := tables[global][c]
	return a, ok
}

// Len returns the number of key and mouse bindings
func (k *Keymap) Len() (keys, mouse int) {
	for _, t := range k.keys {
		keys += len(t)
	}
	for _, t := range k.mouse {
		mouse += len(t)
	}
	return keys, mouse
}
