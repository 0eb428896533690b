package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/input"
)

// namedKeys maps raylib key codes that are not letters or digits
var namedKeys = map[int32]input.Key{
	rl.KeyEscape:     input.KeyEscape,
	rl.KeyEnter:      input.KeyEnter,
	rl.KeyKpEnter:    input.KeyEnter,
	rl.KeyTab:        input.KeyTab,
	rl.KeyBackspace:  input.KeyBackspace,
	rl.KeyDelete:     input.KeyDelete,
	rl.KeySpace:      input.KeySpace,
	rl.KeyLeft:       input.KeyLeft,
	rl.KeyRight:      input.KeyRight,
	rl.KeyUp:         input.KeyArrowUp,
	rl.KeyDown:       input.KeyArrowDown,
	rl.KeyHome:       input.KeyHome,
	rl.KeyEnd:        input.KeyEnd,
	rl.KeyF1:         input.KeyF1,
	rl.KeyF2:         input.KeyF2,
	rl.KeyF3:         input.KeyF3,
	rl.KeyF4:         input.KeyF4,
	rl.KeyF5:         input.KeyF5,
	rl.KeyF6:         input.KeyF6,
	rl.KeyF7:         input.KeyF7,
	rl.KeyF8:         input.KeyF8,
	rl.KeyF9:         input.KeyF9,
	rl.KeyF10:        input.KeyF10,
	rl.KeyF11:        input.KeyF11,
	rl.KeyF12:        input.KeyF12,
	rl.KeyMinus:      input.KeyRune('-'),
	rl.KeyKpSubtract: input.KeyRune('-'),
	rl.KeyEqual:      input.KeyRune('+'),
	rl.KeyKpAdd:      input.KeyRune('+'),
	rl.KeyComma:      input.KeyRune(','),
	rl.KeyPeriod:     input.KeyRune('.'),
	rl.KeySlash:      input.KeyRune('/'),
}

var mouseButtons = []struct {
	code   rl.MouseButton
	button input.MouseButton
}{
	{rl.MouseButtonLeft, input.ButtonLeft},
	{rl.MouseButtonMiddle, input.ButtonMiddle},
	{rl.MouseButtonRight, input.ButtonRight},
	{rl.MouseButtonBack, input.ButtonBack},
	{rl.MouseButtonForward, input.ButtonForward},
}

// keyFromRaylib translates a raylib key code. Letters and digits share
// their ASCII codes with the editor's printable keys.
func keyFromRaylib(k int32) input.Key {
	if key, ok := namedKeys[k]; ok {
		return key
	}
	if (k >= rl.KeyA && k <= rl.KeyZ) || (k >= rl.KeyZero && k <= rl.KeyNine) {
		return input.KeyRune(rune(k))
	}
	return input.KeyNone
}

func modifiers() input.Modifiers {
	var m input.Modifiers
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		m |= input.ModShift
	}
	if rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) {
		m |= input.ModCtrl
	}
	if rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt) {
		m |= input.ModAlt
	}
	if rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper) {
		m |= input.ModSuper
	}
	return m
}

func vec(v rl.Vector2) geometry.Vector2 {
	return geometry.Vector2{X: float64(v.X), Y: float64(v.Y)}
}

// pollEvents collects this frame's raylib input as editor events: pointer
// movement first, then buttons, keys and the wheel.
func (app *App) pollEvents() []input.Event {
	var events []input.Event
	mods := modifiers()
	mouse := rl.GetMousePosition()
	pos := vec(mouse)

	if !app.Input.seenMouse {
		app.Input.lastMouse = mouse
		app.Input.seenMouse = true
	}
	if mouse != app.Input.lastMouse {
		events = append(events, input.Move(pos, pos.Sub(vec(app.Input.lastMouse)), mods))
		app.Input.lastMouse = mouse
	}

	for _, b := range mouseButtons {
		if rl.IsMouseButtonPressed(b.code) {
			events = append(events, input.MouseDown(b.button, pos, mods))
		}
		if rl.IsMouseButtonReleased(b.code) {
			events = append(events, input.MouseUp(b.button, pos, mods))
		}
	}

	for code := rl.GetKeyPressed(); code != 0; code = rl.GetKeyPressed() {
		key := keyFromRaylib(code)
		if key == input.KeyNone {
			continue
		}
		app.Input.held[code] = key
		events = append(events, input.KeyDown(key, mods))
	}
	for code, key := range app.Input.held {
		if rl.IsKeyReleased(code) {
			delete(app.Input.held, code)
			events = append(events, input.KeyUp(key, mods))
		}
	}

	if wheel := rl.GetMouseWheelMoveV(); wheel.X != 0 || wheel.Y != 0 {
		events = append(events, input.Wheel(pos, vec(wheel), mods))
	}
	return events
}

// handleInput feeds the frame's events to the session. F1, F2, Home and
// Ctrl+Q are frontend keys and never reach the session.
func (app *App) handleInput() (quit bool) {
	for _, ev := range app.pollEvents() {
		if ev.Kind == input.KeyPress {
			switch {
			case ev.Key == input.KeyF1 && ev.Mods == 0:
				app.View.showHelp = !app.View.showHelp
				continue
			case ev.Key == input.KeyF2 && ev.Mods == 0:
				app.View.showPoints = !app.View.showPoints
				continue
			case ev.Key == input.KeyHome && ev.Mods == 0:
				app.fitView()
				continue
			case ev.Key == input.KeyRune('q') && ev.Mods == input.ModCtrl:
				return true
			}
		}
		if _, err := app.session.HandleEvent(ev); err != nil {
			app.notify(err.Error(), true)
		}
	}
	return false
}
