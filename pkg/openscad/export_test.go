package openscad

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/topology"
)

func v2(x, y float64) geometry.Vector2 { return geometry.Vector2{X: x, Y: y} }

func square(x, y, size float64) topology.Wire {
	a, b, c, d := v2(x, y), v2(x+size, y), v2(x+size, y+size), v2(x, y+size)
	return topology.Wire{Edges: []topology.Edge{
		topology.LineEdge(a, b), topology.LineEdge(b, c), topology.LineEdge(c, d), topology.LineEdge(d, a),
	}}
}

func TestOutlineOfLines(t *testing.T) {
	pts := Outline(square(0, 0, 10), DefaultMaxError)
	assert.Equal(t, []geometry.Vector2{v2(0, 0), v2(10, 0), v2(10, 10), v2(0, 10)}, pts)
}

func TestOutlineOfArcStaysWithinError(t *testing.T) {
	arc, err := geometry.NewArc(v2(0, 0), v2(5, 0), v2(-5, 0), true)
	require.NoError(t, err)
	w := topology.Wire{Edges: []topology.Edge{
		topology.ArcEdge(arc),
		topology.LineEdge(v2(-5, 0), v2(5, 0)),
	}}

	pts := Outline(w, 0.01)
	require.Greater(t, len(pts), minArcSegments)
	assert.Equal(t, v2(5, 0), pts[0])
	// the last vertex starts the closing line
	assert.InDelta(t, -5, pts[len(pts)-1].X, 1e-9)

	for i := 1; i < len(pts); i++ {
		mid := pts[i-1].Lerp(pts[i], 0.5)
		assert.LessOrEqual(t, 5-mid.Length(), 0.01+1e-9)
	}
}

func TestArcSegmentsClamp(t *testing.T) {
	small := geometry.Circle{Center: v2(0, 0), Radius: 0.001}.AsArc()
	assert.Equal(t, minArcSegments, arcSegments(small, 0.01))
	huge := geometry.Circle{Center: v2(0, 0), Radius: 1e9}.AsArc()
	assert.Equal(t, maxArcSegments, arcSegments(huge, 0.01))
	assert.Equal(t, minArcSegments, arcSegments(huge, 0))
	assert.Equal(t, 4, arcSegments(geometry.Arc{Radius: 1, Sweep: math.Pi / 8}, 0.5))
}

func TestWriteNestedWires(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "Sketch 1", []topology.Wire{square(0, 0, 10), square(2, 2, 2)}, 0))

	out := buf.String()
	assert.Contains(t, out, "// Sketch 1\n")
	assert.Contains(t, out, "polygon(")
	assert.Contains(t, out, "[0, 0], [10, 0], [10, 10], [0, 10]")
	assert.Contains(t, out, "[2, 2], [4, 2], [4, 4], [2, 4]")
	assert.Contains(t, out, "paths = [[0, 1, 2, 3], [4, 5, 6, 7]]")
}

func TestWriteWithoutWires(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Write(&buf, "empty", nil, 0), ErrNoWires)
	assert.Zero(t, buf.Len())
}

func TestRenderWithoutOpenSCAD(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	err := NewRenderer(t.TempDir()).Render(context.Background(), "in.scad", "out.svg")
	assert.ErrorIs(t, err, ErrNotInstalled)
}
