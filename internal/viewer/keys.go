package viewer

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/philipparndt/gosketch/pkg/input"
)

var namedKeys = map[fyne.KeyName]input.Key{
	fyne.KeyEscape:    input.KeyEscape,
	fyne.KeyReturn:    input.KeyEnter,
	fyne.KeyEnter:     input.KeyEnter,
	fyne.KeyTab:       input.KeyTab,
	fyne.KeyBackspace: input.KeyBackspace,
	fyne.KeyDelete:    input.KeyDelete,
	fyne.KeySpace:     input.KeySpace,
	fyne.KeyLeft:      input.KeyLeft,
	fyne.KeyRight:     input.KeyRight,
	fyne.KeyUp:        input.KeyArrowUp,
	fyne.KeyDown:      input.KeyArrowDown,
	fyne.KeyHome:      input.KeyHome,
	fyne.KeyEnd:       input.KeyEnd,
	fyne.KeyF1:        input.KeyF1,
	fyne.KeyF2:        input.KeyF2,
	fyne.KeyF3:        input.KeyF3,
	fyne.KeyF4:        input.KeyF4,
	fyne.KeyF5:        input.KeyF5,
	fyne.KeyF6:        input.KeyF6,
	fyne.KeyF7:        input.KeyF7,
	fyne.KeyF8:        input.KeyF8,
	fyne.KeyF9:        input.KeyF9,
	fyne.KeyF10:       input.KeyF10,
	fyne.KeyF11:       input.KeyF11,
	fyne.KeyF12:       input.KeyF12,
	fyne.KeyMinus:     input.KeyRune('-'),
	fyne.KeyEqual:     input.KeyRune('+'),
}

var modifierKeys = map[fyne.KeyName]input.Modifiers{
	desktop.KeyShiftLeft:    input.ModShift,
	desktop.KeyShiftRight:   input.ModShift,
	desktop.KeyControlLeft:  input.ModCtrl,
	desktop.KeyControlRight: input.ModCtrl,
	desktop.KeyAltLeft:      input.ModAlt,
	desktop.KeyAltRight:     input.ModAlt,
	desktop.KeySuperLeft:    input.ModSuper,
	desktop.KeySuperRight:   input.ModSuper,
}

// keyFromFyne translates a fyne key name. Letters and digits are single
// character names.
func keyFromFyne(name fyne.KeyName) input.Key {
	if k, ok := namedKeys[name]; ok {
		return k
	}
	if r := []rune(string(name)); len(r) == 1 {
		return input.KeyRune(r[0])
	}
	return input.KeyNone
}

func buttonFromFyne(b desktop.MouseButton) input.MouseButton {
	switch b {
	case desktop.MouseButtonPrimary:
		return input.ButtonLeft
	case desktop.MouseButtonSecondary:
		return input.ButtonRight
	case desktop.MouseButtonTertiary:
		return input.ButtonMiddle
	}
	return input.ButtonNone
}

func modifiersFromFyne(m fyne.KeyModifier) input.Modifiers {
	var out input.Modifiers
	if m&fyne.KeyModifierShift != 0 {
		out |= input.ModShift
	}
	if m&fyne.KeyModifierControl != 0 {
		out |= input.ModCtrl
	}
	if m&fyne.KeyModifierAlt != 0 {
		out |= input.ModAlt
	}
	if m&fyne.KeyModifierSuper != 0 {
		out |= input.ModSuper
	}
	return out
}
