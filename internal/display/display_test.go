package display

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/internal/mode"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

func v2(x, y float64) geometry.Vector2 { return geometry.Vector2{X: x, Y: y} }

func frame() editor.Frame {
	return editor.Frame{
		Modes:  []mode.ID{mode.Base, mode.Sketch, mode.Line},
		Active: 1,
		View:   editor.Viewport{Scale: 2},
		Sketches: []editor.SketchView{
			{
				ID:     1,
				Active: true,
				Points: []sketch.Point{{ID: 1, Position: v2(0, 0)}, {ID: 2, Position: v2(10, 0)}},
				Lines:  []editor.LineView{{ID: 3, Segment: geometry.NewSegment(v2(0, 0), v2(10, 0))}},
			},
			{
				ID:     2,
				Points: []sketch.Point{{ID: 1, Position: v2(5, 5)}},
				Lines:  []editor.LineView{{ID: 3, Segment: geometry.NewSegment(v2(5, 5), v2(6, 6))}},
			},
		},
	}
}

func TestBuildMapsEntitiesToScreen(t *testing.T) {
	l := Build(frame(), DefaultOptions())

	assert.Equal(t, "Base > Sketch > Line", l.Header)
	require.Len(t, l.Strokes, 2)
	assert.Equal(t, []geometry.Vector2{v2(0, 0), v2(20, 0)}, l.Strokes[0].Points)
	assert.Equal(t, RoleEntity, l.Strokes[0].Role)
	assert.Equal(t, RoleInactive, l.Strokes[1].Role)

	// points of the inactive sketch are hidden, the cursor is last
	require.Len(t, l.Markers, 3)
	assert.Equal(t, v2(20, 0), l.Markers[1].Center)
	assert.Equal(t, RoleCursor, l.Markers[2].Role)
}

func TestSelectionOnlyHighlightsItsSketch(t *testing.T) {
	f := frame()
	f.Selection = editor.Selection{Sketch: 1, Entity: 3}

	l := Build(f, DefaultOptions())
	assert.Equal(t, RoleSelected, l.Strokes[0].Role)
	assert.Equal(t, RoleInactive, l.Strokes[1].Role)

	f.Selection = editor.Selection{Sketch: 1, Region: []sketch.EntityID{3}}
	l = Build(f, DefaultOptions())
	assert.Equal(t, RoleRegion, l.Strokes[0].Role)
}

func TestPendingLineHasLengthLabel(t *testing.T) {
	f := frame()
	f.Pending = &editor.PendingShape{Kind: sketch.KindLine, Points: []geometry.Vector2{v2(0, 0), v2(3, 4)}}

	l := Build(f, DefaultOptions())
	last := l.Strokes[len(l.Strokes)-1]
	assert.Equal(t, RolePreview, last.Role)
	assert.Equal(t, []geometry.Vector2{v2(0, 0), v2(6, 8)}, last.Points)
	require.Len(t, l.Labels, 1)
	assert.Equal(t, "5.00", l.Labels[0].Text)
	assert.Equal(t, v2(3, 4), l.Labels[0].At)
}

func TestPendingCircleAndArc(t *testing.T) {
	f := frame()
	f.Pending = &editor.PendingShape{Kind: sketch.KindCircle, Points: []geometry.Vector2{v2(0, 0), v2(2, 0)}, Radius: 2}
	l := Build(f, DefaultOptions())
	require.Len(t, l.Labels, 1)
	assert.Equal(t, "R 2.00", l.Labels[0].Text)

	f.Pending = &editor.PendingShape{Kind: sketch.KindArc, Points: []geometry.Vector2{v2(-1, 0), v2(1, 0), v2(0, 1)}}
	l = Build(f, DefaultOptions())
	require.Len(t, l.Labels, 1)
	assert.Equal(t, "R 1.00", l.Labels[0].Text)
	arc := l.Strokes[len(l.Strokes)-1].Points
	assert.InDelta(t, -2, arc[0].X, 1e-9)
	assert.InDelta(t, 2, arc[len(arc)-1].X, 1e-9)

	// collinear third click falls back to the chord
	f.Pending = &editor.PendingShape{Kind: sketch.KindArc, Points: []geometry.Vector2{v2(-1, 0), v2(1, 0), v2(0, 0)}}
	l = Build(f, DefaultOptions())
	assert.Empty(t, l.Labels)
	assert.Len(t, l.Strokes[len(l.Strokes)-1].Points, 2)
}

func TestTessellateStaysWithinError(t *testing.T) {
	v := editor.Viewport{Scale: 10}
	arc := geometry.Circle{Center: v2(0, 0), Radius: 20}.AsArc()

	pts := Tessellate(v, arc, 0.25)
	require.Greater(t, len(pts), minSegments)
	assert.InDelta(t, pts[0].X, pts[len(pts)-1].X, 1e-9)
	assert.InDelta(t, pts[0].Y, pts[len(pts)-1].Y, 1e-9)

	for i := 1; i < len(pts); i++ {
		mid := pts[i-1].Lerp(pts[i], 0.5)
		sagitta := 200 - mid.Length()
		assert.LessOrEqual(t, sagitta, 0.25+1e-9)
	}
}

func TestSegmentsClamp(t *testing.T) {
	assert.Equal(t, minSegments, segments(0.1, math.Pi, 0.25))
	assert.Equal(t, minSegments, segments(100, math.Pi, 0))
	assert.Equal(t, maxSegments, segments(1e9, 2*math.Pi, 0.25))
}

func TestPaletteFallsBackToWhite(t *testing.T) {
	p := Palette{}
	assert.Equal(t, uint8(255), p.Color(RoleEntity).R)
	assert.NotEqual(t, DefaultPalette().Color(RoleSelected), DefaultPalette().Color(RoleEntity))
}
