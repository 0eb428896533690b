package input

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownInput is returned for key, button or modifier names that do not parse.
var ErrUnknownInput = errors.New("unknown input")

// Key identifies a keyboard key
type Key uint16

const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeySpace
	KeyLeft
	KeyRight
	KeyArrowUp
	KeyArrowDown
	KeyHome
	KeyEnd
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Printable keys map their lower-case ASCII character onto keyRune+c.
	keyRune Key = 0x100
)

var namedKeys = map[Key]string{
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeySpace:     "Space",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyArrowUp:   "Up",
	KeyArrowDown: "Down",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
}

var keyAliases = map[string]Key{
	"esc":    KeyEscape,
	"return": KeyEnter,
	"del":    KeyDelete,
	"plus":   keyRune + '+',
	"minus":  keyRune + '-',
}

// KeyRune returns the key for a printable character. Letters are case
// folded; shift is a modifier, not part of the key.
func KeyRune(r rune) Key {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r <= ' ' || r > '~' {
		return KeyNone
	}
	return keyRune + Key(r)
}

// Rune returns the printable character of the key, if any
func (k Key) Rune() (rune, bool) {
	if k > keyRune && k <= keyRune+'~' {
		return rune(k - keyRune), true
	}
	return 0, false
}

func (k Key) String() string {
	if name, ok := namedKeys[k]; ok {
		return name
	}
	if r, ok := k.Rune(); ok {
		return string(r)
	}
	return fmt.Sprintf("key(%d)", uint16(k))
}

// ParseKey parses a key name such as "Escape", "F5" or "l"
func ParseKey(s string) (Key, error) {
	if len([]rune(s)) == 1 {
		if k := KeyRune([]rune(s)[0]); k != KeyNone {
			return k, nil
		}
	}
	lower := strings.ToLower(s)
	if k, ok := keyAliases[lower]; ok {
		return k, nil
	}
	for k, name := range namedKeys {
		if strings.ToLower(name) == lower {
			return k, nil
		}
	}
	return KeyNone, fmt.Errorf("key %q: %w", s, ErrUnknownInput)
}

// MouseButton identifies a mouse button or wheel direction
type MouseButton uint8

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonBack
	ButtonForward
	// ScrollUp and ScrollDown let wheel motion be bound like a button.
	ScrollUp
	ScrollDown
)

var buttonNames = map[MouseButton]string{
	ButtonLeft:    "Left",
	ButtonMiddle:  "Middle",
	ButtonRight:   "Right",
	ButtonBack:    "Back",
	ButtonForward: "Forward",
	ScrollUp:      "ScrollUp",
	ScrollDown:    "ScrollDown",
}

func (b MouseButton) String() string {
	if name, ok := buttonNames[b]; ok {
		return name
	}
	return fmt.Sprintf("button(%d)", uint8(b))
}

// ParseMouseButton parses a button name such as "Left" or "ScrollUp"
func ParseMouseButton(s string) (MouseButton, error) {
	for b, name := range buttonNames {
		if strings.EqualFold(name, s) {
			return b, nil
		}
	}
	return ButtonNone, fmt.Errorf("mouse button %q: %w", s, ErrUnknownInput)
}

// ParseModifier parses a single modifier name
func ParseModifier(s string) (Modifiers, error) {
	switch strings.ToLower(s) {
	case "shift":
		return ModShift, nil
	case "ctrl", "control":
		return ModCtrl, nil
	case "alt", "option":
		return ModAlt, nil
	case "super", "cmd", "meta":
		return ModSuper, nil
	}
	return 0, fmt.Errorf("modifier %q: %w", s, ErrUnknownInput)
}

// Chord is a key together with the modifiers that must be held
type Chord struct {
	Key  Key
	Mods Modifiers
}

func (c Chord) String() string {
	if c.Mods == 0 {
		return c.Key.String()
	}
	return c.Mods.String() + "+" + c.Key.String()
}

// MouseChord is a mouse button together with the modifiers that must be held
type MouseChord struct {
	Button MouseButton
	Mods   Modifiers
}

func (c MouseChord) String() string {
	if c.Mods == 0 {
		return c.Button.String()
	}
	return c.Mods.String() + "+" + c.Button.String()
}

// ParseChord parses "Ctrl+Shift+s" style key chords. The plus key is
// written "plus".
func ParseChord(s string) (Chord, error) {
	mods, last, err := splitModifiers(s)
	if err != nil {
		return Chord{}, err
	}
	k, err := ParseKey(last)
	if err != nil {
		return Chord{}, err
	}
	return Chord{Key: k, Mods: mods}, nil
}

// ParseMouseChord parses "Shift+Middle" style mouse chords
func ParseMouseChord(s string) (MouseChord, error) {
	mods, last, err := splitModifiers(s)
	if err != nil {
		return MouseChord{}, err
	}
	b, err := ParseMouseButton(last)
	if err != nil {
		return MouseChord{}, err
	}
	return MouseChord{Button: b, Mods: mods}, nil
}

func splitModifiers(s string) (Modifiers, string, error) {
	parts := strings.Split(s, "+")
	last := parts[len(parts)-1]
	if last == "" {
		return 0, "", fmt.Errorf("chord %q: %w", s, ErrUnknownInput)
	}
	var mods Modifiers
	for _, p := range parts[:len(parts)-1] {
		m, err := ParseModifier(p)
		if err != nil {
			return 0, "", err
		}
		mods |= m
	}
	return mods, last, nil
}
