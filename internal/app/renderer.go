package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gosketch/internal/display"
	"github.com/philipparndt/gosketch/pkg/geometry"
)

const (
	lineThickness    = 2
	previewThickness = 1.5
	labelFontSize    = 16
	labelPadding     = 4
)

func toVec(v geometry.Vector2) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}

// drawList draws the sketch primitives of one frame in screen space
func (app *App) drawList(l display.List) {
	for _, s := range l.Strokes {
		app.drawStroke(s)
	}
	for _, m := range l.Markers {
		if m.Role == display.RolePoint && !app.View.showPoints {
			continue
		}
		rl.DrawCircleV(toVec(m.Center), float32(m.Radius), app.View.palette.Color(m.Role))
	}
	for _, lb := range l.Labels {
		app.drawLabel(lb)
	}
}

func (app *App) drawStroke(s display.Stroke) {
	if len(s.Points) < 2 {
		return
	}
	col := app.View.palette.Color(s.Role)
	thick := float32(lineThickness)
	if s.Role == display.RolePreview {
		thick = previewThickness
	}
	for i := 1; i < len(s.Points); i++ {
		rl.DrawLineEx(toVec(s.Points[i-1]), toVec(s.Points[i]), thick, col)
	}
	if s.Closed {
		rl.DrawLineEx(toVec(s.Points[len(s.Points)-1]), toVec(s.Points[0]), thick, col)
	}
}

// drawLabel draws text on a dark box centered above its anchor
func (app *App) drawLabel(lb display.Label) {
	col := app.View.palette.Color(lb.Role)
	size := rl.MeasureTextEx(app.UI.font, lb.Text, labelFontSize, 1)
	at := toVec(lb.At)

	rect := rl.Rectangle{
		X:      at.X - size.X/2 - labelPadding,
		Y:      at.Y - size.Y - 2*labelPadding - 6,
		Width:  size.X + 2*labelPadding,
		Height: size.Y + 2*labelPadding,
	}
	rl.DrawRectangleRec(rect, rl.NewColor(20, 20, 20, 220))
	rl.DrawRectangleLinesEx(rect, 1, col)
	rl.DrawTextEx(app.UI.font, lb.Text, rl.Vector2{X: rect.X + labelPadding, Y: rect.Y + labelPadding}, labelFontSize, 1, col)
}

// drawAxes draws the sketch x and y axes through the origin
func (app *App) drawAxes() {
	v := app.session.Viewport()
	o := toVec(v.ToScreen(geometry.Vector2{}))
	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	rl.DrawLineEx(rl.Vector2{X: 0, Y: o.Y}, rl.Vector2{X: w, Y: o.Y}, 1, rl.NewColor(120, 40, 40, 255))
	rl.DrawLineEx(rl.Vector2{X: o.X, Y: 0}, rl.Vector2{X: o.X, Y: h}, 1, rl.NewColor(40, 120, 40, 255))
}
