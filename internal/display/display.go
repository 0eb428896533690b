// Package display turns an editor frame into screen-space primitives that
// any immediate-mode toolkit can draw: polylines, point markers and text
// labels, each tagged with a role that the frontend maps to a colour.
package display

import (
	"fmt"
	"math"
	"strings"

	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

// Role says what a primitive represents
type Role uint8

const (
	RoleInactive Role = iota
	RoleEntity
	RoleSelected
	RoleRegion
	RolePreview
	RolePoint
	RoleCursor
)

// Stroke is an open or closed polyline in screen pixels
type Stroke struct {
	Points []geometry.Vector2
	Role   Role
	Closed bool
}

// Marker is a filled dot in screen pixels
type Marker struct {
	Center geometry.Vector2
	Radius float64
	Role   Role
}

// Label is text anchored at a screen position
type Label struct {
	Text string
	At   geometry.Vector2
	Role Role
}

// List is everything to draw for one frame, in drawing order
type List struct {
	Strokes []Stroke
	Markers []Marker
	Labels  []Label
	// Header shows the mode stack, Status the last editor message.
	Header string
	Status string
}

// Options tune the tessellation and marker sizes
type Options struct {
	// MaxError is the largest allowed distance in pixels between an arc and
	// its polyline.
	MaxError     float64
	PointRadius  float64
	CursorRadius float64
}

// DefaultOptions returns the sizes used by both frontends
func DefaultOptions() Options {
	return Options{MaxError: 0.25, PointRadius: 3, CursorRadius: 2}
}

const (
	minSegments = 8
	maxSegments = 512
)

// Build converts a frame into a display list
func Build(f editor.Frame, opts Options) List {
	l := List{
		Header: header(f),
		Status: f.Status,
	}
	sel := selected(f.Selection)
	for _, sv := range f.Sketches {
		l.addSketch(f.View, sv, sel, f.Selection.Sketch == sv.ID, opts)
	}
	if f.Pending != nil {
		l.addPending(f.View, f.Pending, opts)
	}
	l.Markers = append(l.Markers, Marker{Center: f.View.ToScreen(f.Cursor), Radius: opts.CursorRadius, Role: RoleCursor})
	return l
}

func header(f editor.Frame) string {
	names := make([]string, len(f.Modes))
	for i, m := range f.Modes {
		names[i] = m.String()
	}
	return strings.Join(names, " > ")
}

// selected maps every highlighted entity to its role
func selected(s editor.Selection) map[sketch.EntityID]Role {
	out := make(map[sketch.EntityID]Role)
	for _, id := range s.Region {
		out[id] = RoleRegion
	}
	if s.Entity != 0 {
		out[s.Entity] = RoleSelected
	}
	return out
}

func (l *List) addSketch(v editor.Viewport, sv editor.SketchView, sel map[sketch.EntityID]Role, selIn bool, opts Options) {
	role := func(id sketch.EntityID) Role {
		if selIn {
			if r, ok := sel[id]; ok {
				return r
			}
		}
		if sv.Active {
			return RoleEntity
		}
		return RoleInactive
	}

	for _, ln := range sv.Lines {
		l.Strokes = append(l.Strokes, Stroke{
			Points: []geometry.Vector2{v.ToScreen(ln.Segment.A), v.ToScreen(ln.Segment.B)},
			Role:   role(ln.ID),
		})
	}
	for _, c := range sv.Circles {
		l.Strokes = append(l.Strokes, Stroke{
			Points: Tessellate(v, c.Circle.AsArc(), opts.MaxError),
			Role:   role(c.ID),
			Closed: true,
		})
	}
	for _, a := range sv.Arcs {
		l.Strokes = append(l.Strokes, Stroke{Points: Tessellate(v, a.Arc, opts.MaxError), Role: role(a.ID)})
	}
	if !sv.Active {
		return
	}
	for _, p := range sv.Points {
		r := RolePoint
		if selIn && sel[p.ID] == RoleSelected {
			r = RoleSelected
		}
		l.Markers = append(l.Markers, Marker{Center: v.ToScreen(p.Position), Radius: opts.PointRadius, Role: r})
	}
}

func (l *List) addPending(v editor.Viewport, p *editor.PendingShape, opts Options) {
	if len(p.Points) == 0 {
		return
	}
	for _, pt := range p.Points[:len(p.Points)-1] {
		l.Markers = append(l.Markers, Marker{Center: v.ToScreen(pt), Radius: opts.PointRadius, Role: RolePreview})
	}

	switch {
	case p.Kind == sketch.KindCircle && len(p.Points) == 2:
		center, rim := p.Points[0], p.Points[1]
		if p.Radius > 0 {
			l.Strokes = append(l.Strokes, Stroke{
				Points: Tessellate(v, geometry.Circle{Center: center, Radius: p.Radius}.AsArc(), opts.MaxError),
				Role:   RolePreview,
				Closed: true,
			})
		}
		l.Strokes = append(l.Strokes, Stroke{Points: []geometry.Vector2{v.ToScreen(center), v.ToScreen(rim)}, Role: RolePreview})
		l.label(v, fmt.Sprintf("R %.2f", p.Radius), center.Lerp(rim, 0.5))

	case p.Kind == sketch.KindArc && len(p.Points) == 3:
		start, end, through := p.Points[0], p.Points[1], p.Points[2]
		arc, err := geometry.ArcThroughPoints(start, through, end)
		if err != nil {
			l.Strokes = append(l.Strokes, Stroke{Points: []geometry.Vector2{v.ToScreen(start), v.ToScreen(end)}, Role: RolePreview})
			return
		}
		l.Strokes = append(l.Strokes, Stroke{Points: Tessellate(v, arc, opts.MaxError), Role: RolePreview})
		l.label(v, fmt.Sprintf("R %.2f", arc.Radius), arc.Midpoint())

	default:
		pts := make([]geometry.Vector2, len(p.Points))
		for i, pt := range p.Points {
			pts[i] = v.ToScreen(pt)
		}
		l.Strokes = append(l.Strokes, Stroke{Points: pts, Role: RolePreview})
		if len(p.Points) == 2 {
			a, b := p.Points[0], p.Points[1]
			l.label(v, fmt.Sprintf("%.2f", a.Distance(b)), a.Lerp(b, 0.5))
		}
	}
}

func (l *List) label(v editor.Viewport, text string, at geometry.Vector2) {
	l.Labels = append(l.Labels, Label{Text: text, At: v.ToScreen(at), Role: RolePreview})
}

// Tessellate approximates an arc by a screen-space polyline whose chords
// stay within maxError pixels of the curve. The first and last points are
// the arc's end points.
func Tessellate(v editor.Viewport, a geometry.Arc, maxError float64) []geometry.Vector2 {
	n := segments(a.Radius*v.Scale, a.Subtended(), maxError)
	pts := make([]geometry.Vector2, 0, n+1)
	for i := range n + 1 {
		theta := a.StartAngle + a.Sweep*float64(i)/float64(n)
		pts = append(pts, v.ToScreen(a.PointAt(theta)))
	}
	return pts
}

// segments returns how many chords keep the sagitta r(1-cos(θ/2)) within
// maxError for a screen radius r.
func segments(r, sweep, maxError float64) int {
	if r <= maxError || maxError <= 0 {
		return minSegments
	}
	step := 2 * math.Acos(1-maxError/r)
	n := int(math.Ceil(sweep / step))
	return max(minSegments, min(maxSegments, n))
}

