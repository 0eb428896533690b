package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gosketch/internal/display"
	"github.com/philipparndt/gosketch/pkg/input"
)

// InputState tracks what raylib reports as held between frames
type InputState struct {
	held      map[int32]input.Key // raylib key code -> editor key
	lastMouse rl.Vector2
	seenMouse bool
}

// ViewState holds frontend-only view settings
type ViewState struct {
	options    display.Options
	palette    display.Palette
	showHelp   bool
	showPoints bool
	lastWidth  int32
	lastHeight int32
}

// UIState holds UI-related state
type UIState struct {
	font      rl.Font
	notice    string    // Last error or info message
	noticeErr bool      // Whether notice is an error
	noticeAt  time.Time // When notice was set
}

const noticeDuration = 4 * time.Second

func (app *App) notify(msg string, isErr bool) {
	app.UI.notice = msg
	app.UI.noticeErr = isErr
	app.UI.noticeAt = time.Now()
}
