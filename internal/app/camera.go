package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/pkg/geometry"
)

const (
	defaultScale = 4.0 // pixels per sketch unit
	fitMargin    = 60.0
)

// centeredView shows the sketch origin in the middle of the window with y
// pointing up
func centeredView(width, height int32) editor.Viewport {
	return editor.Viewport{
		Origin: geometry.Vector2{
			X: -float64(width) / 2 / defaultScale,
			Y: float64(height) / 2 / defaultScale,
		},
		Scale: defaultScale,
		FlipY: true,
	}
}

// fitView zooms to the bounds of every sketch, or recenters an empty
// document
func (app *App) fitView() {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	bounds := geometry.EmptyBounds()
	for _, sk := range app.session.Document().Sketches() {
		bounds = bounds.Union(sk.Store.Bounds())
	}
	if bounds.IsEmpty() {
		app.session.SetViewport(centeredView(int32(w), int32(h)))
		return
	}
	v := app.session.Viewport()
	v.Fit(bounds, float64(w), float64(h), fitMargin)
	app.session.SetViewport(v)
}

// trackResize keeps the sketch under the window center when the window is
// resized
func (app *App) trackResize() {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	if w == app.View.lastWidth && h == app.View.lastHeight {
		return
	}
	if app.View.lastWidth != 0 {
		v := app.session.Viewport()
		dx := float64(w-app.View.lastWidth) / 2
		dy := float64(h-app.View.lastHeight) / 2
		v.Pan(geometry.Vector2{X: dx, Y: dy})
		app.session.SetViewport(v)
	}
	app.View.lastWidth, app.View.lastHeight = w, h
}
