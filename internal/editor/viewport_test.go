package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{Origin: geometry.Vector2{X: -5, Y: 20}, Scale: 4, FlipY: true}
	screen := geometry.Vector2{X: 40, Y: 80}

	p := v.ToSketch(screen)
	assert.Equal(t, geometry.Vector2{X: 5, Y: 0}, p)
	assert.True(t, v.ToScreen(p).NearlyEqual(screen))
	assert.Equal(t, 2.5, v.ToSketchDistance(10))
}

func TestViewportPanFollowsPointer(t *testing.T) {
	for _, flip := range []bool{false, true} {
		v := Viewport{Scale: 2, FlipY: flip}
		grabbed := v.ToSketch(geometry.Vector2{X: 10, Y: 10})

		v.Pan(geometry.Vector2{X: 6, Y: -4})
		assert.True(t, v.ToSketch(geometry.Vector2{X: 16, Y: 6}).NearlyEqual(grabbed), "flip=%v", flip)
	}
}

func TestViewportZoomKeepsAnchor(t *testing.T) {
	v := Viewport{Origin: geometry.Vector2{X: 3, Y: 4}, Scale: 1, FlipY: true}
	anchor := geometry.Vector2{X: 200, Y: 100}
	before := v.ToSketch(anchor)

	v.Zoom(2, anchor)
	assert.Equal(t, 2.0, v.Scale)
	assert.True(t, v.ToSketch(anchor).NearlyEqual(before))

	v.Zoom(0, anchor)
	v.Zoom(-1, anchor)
	assert.Equal(t, 2.0, v.Scale, "non-positive factors are ignored")
}

func TestViewportFit(t *testing.T) {
	b := geometry.EmptyBounds().
		Extend(geometry.Vector2{X: 0, Y: 0}).
		Extend(geometry.Vector2{X: 100, Y: 50})

	v := Viewport{FlipY: true, Scale: 1}
	v.Fit(b, 220, 220, 10)

	assert.InDelta(t, 2.0, v.Scale, 1e-12)
	assert.True(t, v.ToSketch(geometry.Vector2{X: 110, Y: 110}).NearlyEqual(geometry.Vector2{X: 50, Y: 25}))
}
