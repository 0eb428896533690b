package topology

import (
	"math"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

// EdgeKind distinguishes straight edges from arc edges
type EdgeKind uint8

const (
	EdgeLine EdgeKind = iota
	EdgeArc
)

// Edge is one directed piece of a boundary. Start and End are the exact
// endpoint positions in travel direction; for arc edges Arc is oriented the
// same way. Entity, From and To refer back to the sketch when the edge was
// derived from one and are zero otherwise.
type Edge struct {
	Kind       EdgeKind
	Start, End geometry.Vector2
	Arc        geometry.Arc

	Entity   sketch.EntityID
	From, To sketch.EntityID
}

// LineEdge returns a straight edge from a to b
func LineEdge(a, b geometry.Vector2) Edge {
	return Edge{Kind: EdgeLine, Start: a, End: b}
}

// ArcEdge returns an edge following arc in its own direction
func ArcEdge(arc geometry.Arc) Edge {
	return Edge{Kind: EdgeArc, Start: arc.StartPoint(), End: arc.EndPoint(), Arc: arc}
}

// CircleEdge returns a closed counter-clockwise edge around c
func CircleEdge(c geometry.Circle) Edge {
	return ArcEdge(c.AsArc())
}

// Reversed returns the edge traversed in the opposite direction
func (e Edge) Reversed() Edge {
	r := e
	r.Start, r.End = e.End, e.Start
	r.From, r.To = e.To, e.From
	if e.Kind == EdgeArc {
		r.Arc = e.Arc.Reversed()
	}
	return r
}

// Length returns the length of the edge
func (e Edge) Length() float64 {
	if e.Kind == EdgeArc {
		return e.Arc.Length()
	}
	return e.Start.Distance(e.End)
}

// DistanceToPoint returns the shortest distance from p to the edge
func (e Edge) DistanceToPoint(p geometry.Vector2) float64 {
	if e.Kind == EdgeArc {
		return e.Arc.DistanceToPoint(p)
	}
	return geometry.NewSegment(e.Start, e.End).DistanceToPoint(p)
}

// Bounds returns the bounding box of the edge
func (e Edge) Bounds() geometry.Bounds2 {
	if e.Kind == EdgeArc {
		return e.Arc.Bounds()
	}
	return geometry.NewSegment(e.Start, e.End).Bounds()
}

// IsClosed reports whether the edge starts where it ends on its own
func (e Edge) IsClosed() bool {
	return e.Kind == EdgeArc && e.Arc.IsFull()
}

// areaTerm is the edge's contribution to the shoelace sum. Arcs add the
// signed circular segment between their chord and the curve.
func (e Edge) areaTerm() float64 {
	chord := e.Start.Cross(e.End) / 2
	if e.Kind != EdgeArc {
		return chord
	}
	s := e.Arc.Sweep
	r := e.Arc.Radius
	return chord + r*r/2*(s-math.Sin(s))
}

// departure returns the direction the edge leaves its start in, plus its
// signed curvature for ordering edges that leave in the same direction.
func (e Edge) departure() (float64, float64) {
	if e.Kind == EdgeArc {
		return e.Arc.TangentAt(e.Arc.StartAngle).Angle(), e.Arc.Curvature()
	}
	return e.End.Sub(e.Start).Angle(), 0
}
