package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gosketch/internal/display"
	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/version"
)

const (
	barHeight  = 28
	uiFontSize = 18
	helpSize   = 16
)

var helpLines = []string{
	"s / Enter   enter sketch",
	"p l c a     point, line, circle, arc tool",
	"Left        place / select",
	"Enter       finish line chain",
	"Escape      cancel, then leave mode",
	"Delete      delete selection",
	"Middle drag pan      wheel  zoom",
	"Home        fit view  F2  toggle points",
	"Ctrl+Q      quit     F1  toggle help",
}

// drawUI draws the mode bar at the top, the status bar at the bottom and
// the help overlay
func (app *App) drawUI(f editor.Frame, l display.List) {
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	bg := rl.NewColor(0, 0, 0, 200)
	fg := rl.NewColor(220, 220, 230, 255)

	// Mode stack and active sketch
	rl.DrawRectangle(0, 0, int32(w), barHeight, bg)
	title := l.Header
	for _, sv := range f.Sketches {
		if sv.Active {
			title = fmt.Sprintf("%s   [%s on %s]", title, sv.Name, sv.Plane.Name())
		}
	}
	rl.DrawTextEx(app.UI.font, title, rl.Vector2{X: 10, Y: 5}, uiFontSize, 1, fg)

	ver := "gosketch " + version.GetFullVersion()
	vs := rl.MeasureTextEx(app.UI.font, ver, helpSize, 1)
	rl.DrawTextEx(app.UI.font, ver, rl.Vector2{X: w - vs.X - 10, Y: 6}, helpSize, 1, rl.NewColor(120, 120, 130, 255))

	// Cursor position and status
	rl.DrawRectangle(0, int32(h)-barHeight, int32(w), barHeight, bg)
	cursor := fmt.Sprintf("x %.2f  y %.2f  zoom %.2f", f.Cursor.X, f.Cursor.Y, f.View.Scale)
	rl.DrawTextEx(app.UI.font, cursor, rl.Vector2{X: 10, Y: h - barHeight + 5}, uiFontSize, 1, fg)

	status, col := l.Status, fg
	if app.UI.notice != "" && time.Since(app.UI.noticeAt) < noticeDuration {
		status = app.UI.notice
		if app.UI.noticeErr {
			col = rl.NewColor(255, 90, 90, 255)
		} else {
			col = app.View.palette.Color(display.RoleSelected)
		}
	}
	if status != "" {
		ss := rl.MeasureTextEx(app.UI.font, status, uiFontSize, 1)
		rl.DrawTextEx(app.UI.font, status, rl.Vector2{X: w - ss.X - 10, Y: h - barHeight + 5}, uiFontSize, 1, col)
	}

	if app.View.showHelp {
		app.drawHelp(w)
	}
}

func (app *App) drawHelp(w float32) {
	lineHeight := float32(helpSize + 4)
	boxW := float32(380)
	boxH := lineHeight*float32(len(helpLines)) + 20
	x := w - boxW - 10
	y := float32(barHeight + 10)

	rl.DrawRectangle(int32(x), int32(y), int32(boxW), int32(boxH), rl.NewColor(0, 0, 0, 210))
	rl.DrawRectangleLines(int32(x), int32(y), int32(boxW), int32(boxH), rl.NewColor(90, 95, 110, 255))
	for i, line := range helpLines {
		rl.DrawTextEx(app.UI.font, line, rl.Vector2{X: x + 10, Y: y + 10 + float32(i)*lineHeight}, helpSize, 1, rl.RayWhite)
	}
}
