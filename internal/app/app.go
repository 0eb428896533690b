// Package app is the raylib frontend: it polls raylib input, feeds it to an
// editor session and draws the session's frame every tick.
package app

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gosketch/internal/bootstrap"
	"github.com/philipparndt/gosketch/internal/display"
	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/pkg/input"
)

const (
	screenWidth  = 1400
	screenHeight = 900
)

// App is the raylib frontend state for one session
type App struct {
	env     *bootstrap.Env
	session *editor.Session
	Input   InputState
	View    ViewState
	UI      UIState
}

// New creates the frontend for env. The window is not opened until Run.
func New(env *bootstrap.Env) *App {
	return &App{
		env:     env,
		session: env.Session,
		Input:   InputState{held: make(map[int32]input.Key)},
		View: ViewState{
			options:    display.DefaultOptions(),
			palette:    display.DefaultPalette(),
			showPoints: true,
		},
	}
}

// Run opens the window and runs the main loop until the window is closed,
// Ctrl+Q is pressed or ctx is cancelled
func (app *App) Run(ctx context.Context) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(screenWidth, screenHeight, "GoSketch")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	// Escape is an editor binding
	rl.SetExitKey(0)

	app.UI.font = rl.GetFontDefault()

	if app.session.Document().Len() > 0 {
		app.fitView()
	} else {
		app.session.SetViewport(centeredView(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())))
	}
	app.View.lastWidth, app.View.lastHeight = int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	app.env.Start(ctx)
	app.env.Logger.Info("window opened", "session", app.session.ID().String())

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		if app.session.Poll() {
			app.notify("keymap reloaded", false)
		}
		app.trackResize()
		if app.handleInput() {
			break
		}

		frame := app.session.Frame()
		list := display.Build(frame, app.View.options)

		rl.BeginDrawing()
		rl.ClearBackground(display.Background)
		app.drawAxes()
		app.drawList(list)
		app.drawUI(frame, list)
		rl.EndDrawing()
	}
	return nil
}
