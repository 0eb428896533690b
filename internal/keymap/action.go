package keymap

import (
	"fmt"
	"strings"
)

// Action is an editor command a binding resolves to
type Action uint8

const (
	None Action = iota
	Cancel
	PopMode
	EnterSketch
	ActivatePointMode
	ActivateLineMode
	ActivateCircleMode
	ActivateArcMode
	Confirm
	DeleteSelection
	Select
	Place
	Pan
	ZoomIn
	ZoomOut
)

var actionNames = [...]string{
	None:               "None",
	Cancel:             "Cancel",
	PopMode:            "PopMode",
	EnterSketch:        "EnterSketch",
	ActivatePointMode:  "ActivatePointMode",
	ActivateLineMode:   "ActivateLineMode",
	ActivateCircleMode: "ActivateCircleMode",
	ActivateArcMode:    "ActivateArcMode",
	Confirm:            "Confirm",
	DeleteSelection:    "DeleteSelection",
	Select:             "Select",
	Place:              "Place",
	Pan:                "Pan",
	ZoomIn:             "ZoomIn",
	ZoomOut:            "ZoomOut",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// IsView reports whether the action changes the viewport rather than the
// sketch. View actions work in every mode.
func (a Action) IsView() bool {
	return a == Pan || a == ZoomIn || a == ZoomOut
}

// ParseAction returns the action with the given name, ignoring case
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if i != int(None) && strings.EqualFold(n, name) {
			return Action(i), nil
		}
	}
	return None, fmt.Errorf("unknown action %q", name)
}
