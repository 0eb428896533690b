// Package mode implements the tool mode stack. Modes never touch the stack
// directly: they enqueue messages that the stack applies once the handler
// that produced them has returned.
package mode

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateMode is returned when pushing a tag that is already on the stack.
	ErrDuplicateMode = errors.New("mode already active")

	// ErrPopBase is reported when a message tries to remove the Base mode.
	// The message is ignored; the stack stays valid.
	ErrPopBase = errors.New("cannot pop base mode")

	// ErrModeNotActive is returned when unwinding to a tag that is not on
	// the stack. The stack is left unchanged.
	ErrModeNotActive = errors.New("mode not active")

	// ErrUnknownMode is returned when parsing an unknown mode name.
	ErrUnknownMode = errors.New("unknown mode")
)

// ID tags a mode. Each tag is live at most once in a stack.
type ID uint8

const (
	Base ID = iota
	Sketch
	Point
	Line
	Circle
	Arc
)

var names = [...]string{
	Base:   "Base",
	Sketch: "Sketch",
	Point:  "Point",
	Line:   "Line",
	Circle: "Circle",
	Arc:    "Arc",
}

func (id ID) String() string {
	if int(id) < len(names) {
		return names[id]
	}
	return fmt.Sprintf("mode(%d)", uint8(id))
}

// All returns every known mode tag
func All() []ID {
	return []ID{Base, Sketch, Point, Line, Circle, Arc}
}

// Parse returns the tag for a mode name, ignoring case
func Parse(name string) (ID, error) {
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return ID(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownMode)
}

// Data is the mode-specific state paired with a tag. Handlers receive the
// value that was pushed with the tag.
type Data any

// Mode is a tag with its data
type Mode struct {
	ID   ID
	Data Data
}

// New pairs a tag with its data
func New(id ID, data Data) Mode {
	return Mode{ID: id, Data: data}
}
