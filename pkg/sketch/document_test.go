package sketch

import (
	"testing"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentSketches(t *testing.T) {
	doc := NewDocument()
	first := doc.AddSketch("Sketch 1", geometry.PlaneXY)
	second := doc.AddSketch("Sketch 2", geometry.PlaneXZ)

	assert.Equal(t, 2, doc.Len())
	assert.Equal(t, []*Sketch{first, second}, doc.Sketches())

	got, err := doc.Sketch(second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sketch 2", got.Name)
	assert.True(t, got.Visible)

	require.NoError(t, doc.RemoveSketch(first.ID))
	_, err = doc.Sketch(first.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, doc.RemoveSketch(first.ID), ErrNotFound)
}

func TestSketchKeepsItsPlane(t *testing.T) {
	doc := NewDocument()
	sk := doc.AddSketch("front", geometry.PlaneXZ)
	_, err := sk.Store.AddPoint(geometry.NewVector2(3, 4))
	require.NoError(t, err)

	got, err := doc.Sketch(sk.ID)
	require.NoError(t, err)
	assert.Equal(t, "XZ", got.Plane.Name())
	lo, hi := got.Plane.WorldBounds(got.Store.Bounds())
	assert.Equal(t, geometry.Vector3{X: 3, Z: 4}, lo)
	assert.Equal(t, lo, hi)
}
