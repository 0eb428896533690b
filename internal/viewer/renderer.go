package viewer

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/philipparndt/gosketch/internal/display"
	"github.com/philipparndt/gosketch/pkg/geometry"
)

const (
	lineWidth    = 2
	previewWidth = 1.5
	labelSize    = 13
)

// sketchRenderer implements fyne.WidgetRenderer
type sketchRenderer struct {
	w       *SketchCanvas
	objects []fyne.CanvasObject
}

func (r *sketchRenderer) Layout(size fyne.Size) {
	if !r.w.centered && size.Width > 0 && size.Height > 0 {
		r.w.session.SetViewport(centered(size))
		r.w.centered = true
	}
	r.rebuild(size)
}

func (r *sketchRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *sketchRenderer) Refresh() {
	r.rebuild(r.w.Size())
	canvas.Refresh(r.w)
}

func (r *sketchRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *sketchRenderer) Destroy() {}

func fpos(v geometry.Vector2) fyne.Position {
	return fyne.NewPos(float32(v.X), float32(v.Y))
}

// rebuild replaces the canvas objects with the current frame
func (r *sketchRenderer) rebuild(size fyne.Size) {
	list := display.Build(r.w.session.Frame(), r.w.options)
	pal := r.w.palette

	bg := canvas.NewRectangle(display.Background)
	bg.Resize(size)
	objects := []fyne.CanvasObject{bg}

	for _, s := range list.Strokes {
		width := float32(lineWidth)
		if s.Role == display.RolePreview {
			width = previewWidth
		}
		pts := s.Points
		if s.Closed && len(pts) > 2 {
			pts = append(pts[:len(pts):len(pts)], pts[0])
		}
		for i := 1; i < len(pts); i++ {
			line := canvas.NewLine(pal.Color(s.Role))
			line.StrokeWidth = width
			line.Position1 = fpos(pts[i-1])
			line.Position2 = fpos(pts[i])
			objects = append(objects, line)
		}
	}

	for _, m := range list.Markers {
		dot := canvas.NewCircle(pal.Color(m.Role))
		d := float32(2 * m.Radius)
		dot.Resize(fyne.NewSize(d, d))
		dot.Move(fpos(m.Center).Subtract(fyne.NewPos(d/2, d/2)))
		objects = append(objects, dot)
	}

	for _, lb := range list.Labels {
		text := canvas.NewText(lb.Text, pal.Color(lb.Role))
		text.TextSize = labelSize
		text.TextStyle = fyne.TextStyle{Monospace: true}
		ts := text.MinSize()
		text.Move(fpos(lb.At).Subtract(fyne.NewPos(ts.Width/2, ts.Height+4)))
		objects = append(objects, text)
	}

	r.objects = objects
}
