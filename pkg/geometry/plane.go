package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegeneratePlane is returned when plane axes are zero or parallel.
var ErrDegeneratePlane = errors.New("degenerate plane axes")

// Vector3 is a position or direction in document space. Sketch geometry
// stays 2D; Vector3 only appears where a sketch plane meets the document.
type Vector3 struct {
	X, Y, Z float64
}

func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Mul(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Dot(o Vector3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vector3) Length() float64       { return math.Sqrt(v.Dot(v)) }

// Cross returns v × o
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}

// unit scales v to length one. It reports false for vectors shorter than
// Tolerance, which have no usable direction.
func (v Vector3) unit() (Vector3, bool) {
	l := v.Length()
	if l <= Tolerance {
		return Vector3{}, false
	}
	return v.Mul(1 / l), true
}

// NearlyEqual reports whether v and o are within Tolerance of each other
func (v Vector3) NearlyEqual(o Vector3) bool {
	return v.Sub(o).Length() <= Tolerance
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

// Plane embeds a sketch's 2D space in 3D. XAxis and YAxis are orthonormal.
type Plane struct {
	Origin Vector3
	XAxis  Vector3
	YAxis  Vector3
}

var (
	PlaneXY = Plane{XAxis: Vector3{X: 1}, YAxis: Vector3{Y: 1}}
	PlaneXZ = Plane{XAxis: Vector3{X: 1}, YAxis: Vector3{Z: 1}}
	PlaneYZ = Plane{XAxis: Vector3{Y: 1}, YAxis: Vector3{Z: 1}}
)

var namedPlanes = []struct {
	name  string
	plane Plane
}{
	{"XY", PlaneXY},
	{"XZ", PlaneXZ},
	{"YZ", PlaneYZ},
}

// NewPlane builds a plane from an origin and two spanning directions.
// The y direction is re-orthogonalized against x.
func NewPlane(origin, x, y Vector3) (Plane, error) {
	xa, ok := x.unit()
	if !ok {
		return Plane{}, ErrDegeneratePlane
	}
	ya, ok := y.Sub(xa.Mul(y.Dot(xa))).unit()
	if !ok {
		return Plane{}, ErrDegeneratePlane
	}
	return Plane{Origin: origin, XAxis: xa, YAxis: ya}, nil
}

// Normal returns the unit normal (x cross y)
func (p Plane) Normal() Vector3 {
	n, _ := p.XAxis.Cross(p.YAxis).unit()
	return n
}

// ToWorld maps a sketch-local point into 3D
func (p Plane) ToWorld(local Vector2) Vector3 {
	return p.Origin.Add(p.XAxis.Mul(local.X)).Add(p.YAxis.Mul(local.Y))
}

// ToLocal projects a 3D point onto the plane's local coordinates
func (p Plane) ToLocal(world Vector3) Vector2 {
	d := world.Sub(p.Origin)
	return Vector2{X: d.Dot(p.XAxis), Y: d.Dot(p.YAxis)}
}

// Name returns "XY", "XZ" or "YZ" for the principal planes through the
// origin, and "custom" for anything else
func (p Plane) Name() string {
	for _, n := range namedPlanes {
		if p.Origin.NearlyEqual(n.plane.Origin) && p.XAxis.NearlyEqual(n.plane.XAxis) && p.YAxis.NearlyEqual(n.plane.YAxis) {
			return n.name
		}
	}
	return "custom"
}

// WorldBounds returns the corners of the smallest document-space box that
// holds the plane image of b
func (p Plane) WorldBounds(b Bounds2) (lo, hi Vector3) {
	corners := [4]Vector2{b.Min, {X: b.Max.X, Y: b.Min.Y}, b.Max, {X: b.Min.X, Y: b.Max.Y}}
	lo = p.ToWorld(corners[0])
	hi = lo
	for _, c := range corners[1:] {
		w := p.ToWorld(c)
		lo = Vector3{math.Min(lo.X, w.X), math.Min(lo.Y, w.Y), math.Min(lo.Z, w.Z)}
		hi = Vector3{math.Max(hi.X, w.X), math.Max(hi.Y, w.Y), math.Max(hi.Z, w.Z)}
	}
	return lo, hi
}
