package topology

import (
	"math"
	"testing"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func v(x, y float64) geometry.Vector2 { return geometry.NewVector2(x, y) }

func polygon(pts ...geometry.Vector2) []Edge {
	edges := make([]Edge, len(pts))
	for i := range pts {
		edges[i] = LineEdge(pts[i], pts[(i+1)%len(pts)])
	}
	return edges
}

// evenOdd is the textbook crossing test for straight-edged polygons.
func evenOdd(pts []geometry.Vector2, p geometry.Vector2) bool {
	inside := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		pi, pj := pts[i], pts[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}

func TestClassifySquare(t *testing.T) {
	square := polygon(v(0, 0), v(4, 0), v(4, 4), v(0, 4))

	tests := []struct {
		p        geometry.Vector2
		expected Location
	}{
		{v(2, 2), Inside},
		{v(5, 5), Outside},
		{v(0, 2), OnBoundary},
		{v(4, 4), OnBoundary},
		{v(-1, 2), Outside},
		{v(2, 4+1e-3), Outside},
	}
	for _, tt := range tests {
		loc, err := Classify(square, tt.p)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, loc, "point %v", tt.p)
	}
}

func TestClassifyConvexPolygonsMatchEvenOdd(t *testing.T) {
	for n := 3; n <= 9; n++ {
		pts := make([]geometry.Vector2, n)
		for i := range pts {
			theta := 0.3 + 2*math.Pi*float64(i)/float64(n)
			pts[i] = v(1+3*math.Cos(theta), -1+3*math.Sin(theta))
		}
		region, err := NewRegion(polygon(pts...))
		require.NoError(t, err, "%d-gon", n)

		for x := -4.5; x <= 4.5; x += 0.37 {
			for y := -4.5; y <= 4.5; y += 0.41 {
				p := v(x, y)
				loc := region.Classify(p)
				if loc == OnBoundary {
					continue
				}
				expected := Outside
				if evenOdd(pts, p) {
					expected = Inside
				}
				assert.Equal(t, expected, loc, "%d-gon at %v", n, p)
			}
		}

		for i := range pts {
			mid := pts[i].Lerp(pts[(i+1)%n], 0.5)
			assert.Equal(t, OnBoundary, region.Classify(mid), "%d-gon edge midpoint", n)
			assert.Equal(t, OnBoundary, region.Classify(pts[i]), "%d-gon vertex", n)
		}
	}
}

func TestClassifyRayThroughVertex(t *testing.T) {
	diamond := polygon(v(0, 2), v(-2, 0), v(0, -2), v(2, 0))
	region, err := NewRegion(diamond)
	require.NoError(t, err)

	assert.Equal(t, Inside, region.Classify(v(-1, 0)), "ray leaves through the right vertex")
	assert.Equal(t, Outside, region.Classify(v(-3, 0)), "ray passes through two vertices")
	assert.Equal(t, Outside, region.Classify(v(-1, 2)), "ray grazes the top vertex")
	assert.Equal(t, Outside, region.Classify(v(-1, -2)), "ray grazes the bottom vertex")
}

func dShape(ccw bool) []Edge {
	arc, err := geometry.NewArc(v(0, 0), v(0, -1), v(0, 1), ccw)
	if err != nil {
		panic(err)
	}
	return []Edge{
		LineEdge(v(0, 1), v(0, -1)),
		ArcEdge(arc),
	}
}

func TestClassifyDShapeBulgeFlip(t *testing.T) {
	right, err := NewRegion(dShape(true))
	require.NoError(t, err)
	left, err := NewRegion(dShape(false))
	require.NoError(t, err)

	convex := v(0.5, 0)
	concave := v(-0.5, 0)

	assert.Equal(t, Inside, right.Classify(convex))
	assert.Equal(t, Outside, right.Classify(concave))
	assert.Equal(t, Outside, left.Classify(convex))
	assert.Equal(t, Inside, left.Classify(concave))

	for _, p := range []geometry.Vector2{v(0.5, 0.5), v(0.2, -0.9), v(0.9, 0.1)} {
		assert.NotEqual(t, right.Classify(p), left.Classify(p), "point %v", p)
	}

	assert.Equal(t, OnBoundary, right.Classify(v(1, 0)))
	assert.Equal(t, Outside, right.Classify(v(0.5, 1)), "ray touching the arc's end")
	assert.Equal(t, Outside, right.Classify(v(-2, -1)), "ray through the bottom vertex")
}

func TestClassifyCircle(t *testing.T) {
	region, err := NewRegion([]Edge{CircleEdge(geometry.Circle{Center: v(1, 1), Radius: 2})})
	require.NoError(t, err)

	assert.Equal(t, Inside, region.Classify(v(1, 1)))
	assert.Equal(t, Inside, region.Classify(v(-0.5, 1)))
	assert.Equal(t, Outside, region.Classify(v(3.5, 1)))
	assert.Equal(t, OnBoundary, region.Classify(v(3, 1)))
	assert.Equal(t, OnBoundary, region.Classify(v(1, -1)))
	assert.Equal(t, Outside, region.Classify(v(-5, -1)), "ray tangent at the bottom")
	assert.Equal(t, Outside, region.Classify(v(-5, 3)), "ray tangent at the top")
}

func TestClassifyLens(t *testing.T) {
	upper, err := geometry.ArcThroughPoints(v(-1, 0), v(0, 0.5), v(1, 0))
	require.NoError(t, err)
	lower, err := geometry.ArcThroughPoints(v(1, 0), v(0, -0.5), v(-1, 0))
	require.NoError(t, err)

	region, err := NewRegion([]Edge{ArcEdge(upper), ArcEdge(lower)})
	require.NoError(t, err)

	assert.Equal(t, Inside, region.Classify(v(0, 0)))
	assert.Equal(t, Inside, region.Classify(v(0.5, 0.2)))
	assert.Equal(t, Outside, region.Classify(v(0, 0.6)))
	assert.Equal(t, Outside, region.Classify(v(-2, 0)))
}

func TestWindingSign(t *testing.T) {
	ccw, err := NewRegion(polygon(v(0, 0), v(4, 0), v(4, 4), v(0, 4)))
	require.NoError(t, err)
	cw, err := NewRegion(polygon(v(0, 0), v(0, 4), v(4, 4), v(4, 0)))
	require.NoError(t, err)

	assert.Equal(t, 1, ccw.Winding(v(2, 2)))
	assert.Equal(t, -1, cw.Winding(v(2, 2)))
	assert.Equal(t, 0, ccw.Winding(v(9, 2)))
	assert.Equal(t, Inside, cw.Locate(v(2, 2), NonZero))
}

func TestInvalidBoundary(t *testing.T) {
	tests := map[string][]Edge{
		"empty": nil,
		"open chain": {
			LineEdge(v(0, 0), v(4, 0)),
			LineEdge(v(4, 0), v(4, 4)),
		},
		"gap between edges": {
			LineEdge(v(0, 0), v(4, 0)),
			LineEdge(v(4, 1), v(4, 4)),
			LineEdge(v(4, 4), v(0, 0)),
		},
		"bowtie": polygon(v(0, 0), v(2, 2), v(2, 0), v(0, 2)),
		"folded back": {
			LineEdge(v(0, 0), v(4, 0)),
			LineEdge(v(4, 0), v(2, 0)),
			LineEdge(v(2, 0), v(0, 0)),
		},
		"single arc": {ArcEdge(geometry.Arc{Center: v(0, 0), Radius: 1, StartAngle: 0, Sweep: math.Pi})},
		"degenerate edge": {
			LineEdge(v(0, 0), v(0, 0)),
		},
	}
	for name, edges := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Classify(edges, v(1, 1))
			assert.ErrorIs(t, err, ErrInvalidBoundary)
		})
	}
}

func TestRegionIsSafeForConcurrentQueries(t *testing.T) {
	region, err := NewRegion(dShape(true))
	require.NoError(t, err)

	done := make(chan Location, 8)
	for i := 0; i < cap(done); i++ {
		go func() { done <- region.Classify(v(0.5, 0)) }()
	}
	for i := 0; i < cap(done); i++ {
		assert.Equal(t, Inside, <-done)
	}
}
