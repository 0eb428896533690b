package geometry

import (
	"errors"
	"math"
)

// ErrInvalidArc is returned when arc endpoints are inconsistent with its center.
var ErrInvalidArc = errors.New("invalid arc")

// Arc is a circular arc. Sweep is signed: positive runs counter-clockwise
// from StartAngle, negative runs clockwise. |Sweep| is in (0, 2π].
type Arc struct {
	Center     Vector2
	Radius     float64
	StartAngle float64
	Sweep      float64
}

// NewArc builds the arc around center from start to end in the given direction.
// Both endpoints must lie at the same distance from center and must not coincide.
func NewArc(center, start, end Vector2, ccw bool) (Arc, error) {
	r := center.Distance(start)
	if r <= Tolerance {
		return Arc{}, ErrInvalidArc
	}
	if math.Abs(center.Distance(end)-r) > Tolerance || start.NearlyEqual(end) {
		return Arc{}, ErrInvalidArc
	}

	a0 := start.Sub(center).Angle()
	a1 := end.Sub(center).Angle()
	var sweep float64
	if ccw {
		sweep = NormalizeAngle(a1 - a0)
	} else {
		sweep = -NormalizeAngle(a0 - a1)
	}
	if sweep == 0 {
		return Arc{}, ErrInvalidArc
	}
	return Arc{Center: center, Radius: r, StartAngle: a0, Sweep: sweep}, nil
}

// ArcThroughPoints returns the arc that starts at start, passes through mid
// and ends at end.
func ArcThroughPoints(start, mid, end Vector2) (Arc, error) {
	c, err := CircleThroughPoints(start, mid, end)
	if err != nil {
		return Arc{}, err
	}
	ccw := mid.Sub(start).Cross(end.Sub(mid)) > 0
	return NewArc(c.Center, start, end, ccw)
}

// IsCCW reports whether the arc runs counter-clockwise
func (a Arc) IsCCW() bool {
	return a.Sweep > 0
}

// Subtended returns the angle subtended by the arc, in (0, 2π]
func (a Arc) Subtended() float64 {
	return math.Abs(a.Sweep)
}

// EndAngle returns the angle of the end point, not normalized
func (a Arc) EndAngle() float64 {
	return a.StartAngle + a.Sweep
}

// Length returns the arc length
func (a Arc) Length() float64 {
	return a.Radius * a.Subtended()
}

// IsFull reports whether the arc closes on itself
func (a Arc) IsFull() bool {
	return a.Subtended() >= 2*math.Pi-Tolerance
}

// PointAt returns the point on the supporting circle at angle theta
func (a Arc) PointAt(theta float64) Vector2 {
	return Vector2{
		X: a.Center.X + a.Radius*math.Cos(theta),
		Y: a.Center.Y + a.Radius*math.Sin(theta),
	}
}

// StartPoint returns the first point of the arc
func (a Arc) StartPoint() Vector2 {
	return a.PointAt(a.StartAngle)
}

// EndPoint returns the last point of the arc
func (a Arc) EndPoint() Vector2 {
	return a.PointAt(a.EndAngle())
}

// Midpoint returns the point halfway along the arc
func (a Arc) Midpoint() Vector2 {
	return a.PointAt(a.StartAngle + a.Sweep/2)
}

// Reversed returns the same arc traversed in the opposite direction
func (a Arc) Reversed() Arc {
	return Arc{
		Center:     a.Center,
		Radius:     a.Radius,
		StartAngle: NormalizeAngle(a.StartAngle + a.Sweep),
		Sweep:      -a.Sweep,
	}
}

// Flipped returns the complementary arc between the same endpoints, bulging
// to the other side of the chord.
func (a Arc) Flipped() Arc {
	if a.IsFull() {
		return a
	}
	comp := 2*math.Pi - a.Subtended()
	if a.Sweep > 0 {
		return Arc{Center: a.Center, Radius: a.Radius, StartAngle: a.StartAngle, Sweep: -comp}
	}
	return Arc{Center: a.Center, Radius: a.Radius, StartAngle: a.StartAngle, Sweep: comp}
}

// Curvature returns 1/r, signed positive for counter-clockwise arcs
func (a Arc) Curvature() float64 {
	if a.Sweep < 0 {
		return -1 / a.Radius
	}
	return 1 / a.Radius
}

// TangentAt returns the unit direction of travel at angle theta
func (a Arc) TangentAt(theta float64) Vector2 {
	t := Vector2{X: -math.Sin(theta), Y: math.Cos(theta)}
	if a.Sweep < 0 {
		return t.Mul(-1)
	}
	return t
}

// offset returns how far theta lies along the arc from its start, in [0, 2π)
func (a Arc) offset(theta float64) float64 {
	if a.Sweep < 0 {
		return NormalizeAngle(a.StartAngle - theta)
	}
	return NormalizeAngle(theta - a.StartAngle)
}

func (a Arc) angleTolerance() float64 {
	return Tolerance / a.Radius
}

// ContainsAngle reports whether the direction theta from the center falls
// within the arc's span, endpoints included.
func (a Arc) ContainsAngle(theta float64) bool {
	if a.IsFull() {
		return true
	}
	t := a.offset(theta)
	tol := a.angleTolerance()
	return t <= a.Subtended()+tol || t >= 2*math.Pi-tol
}

// containsAngleStrict excludes a tolerance band around both endpoints
func (a Arc) containsAngleStrict(theta float64) bool {
	t := a.offset(theta)
	tol := a.angleTolerance()
	return t > tol && t < a.Subtended()-tol
}

// DistanceToPoint returns the shortest distance from p to the arc
func (a Arc) DistanceToPoint(p Vector2) float64 {
	d := p.Sub(a.Center)
	dist := d.Length()
	if dist == 0 {
		return a.Radius
	}
	if a.ContainsAngle(d.Angle()) {
		return math.Abs(dist - a.Radius)
	}
	return math.Min(p.Distance(a.StartPoint()), p.Distance(a.EndPoint()))
}

// ContainsPoint reports whether p lies on the arc within Tolerance
func (a Arc) ContainsPoint(p Vector2) bool {
	return a.DistanceToPoint(p) <= Tolerance
}

// Bounds returns the bounding box of the arc
func (a Arc) Bounds() Bounds2 {
	b := EmptyBounds().Extend(a.StartPoint()).Extend(a.EndPoint())
	for k := 0; k < 4; k++ {
		theta := float64(k) * math.Pi / 2
		if a.ContainsAngle(theta) {
			b = b.Extend(a.PointAt(theta))
		}
	}
	return b
}

// IntersectSegment returns the points where the segment crosses the arc
func (a Arc) IntersectSegment(s Segment) []Vector2 {
	var out []Vector2
	length := s.Length()
	tol := Tolerance / math.Max(length, Tolerance)
	for _, t := range circleLineParams(a.Center, a.Radius, s.A, s.B) {
		if t < -tol || t > 1+tol {
			continue
		}
		p := s.A.Lerp(s.B, t)
		if a.ContainsAngle(p.Sub(a.Center).Angle()) {
			out = append(out, p)
		}
	}
	return out
}

// IntersectArc returns the points where two arcs cross. Arcs on the same
// circle report no points; use OverlapsArc for them.
func (a Arc) IntersectArc(o Arc) []Vector2 {
	var out []Vector2
	for _, p := range circleCircleIntersections(a.Center, a.Radius, o.Center, o.Radius) {
		if a.ContainsAngle(p.Sub(a.Center).Angle()) && o.ContainsAngle(p.Sub(o.Center).Angle()) {
			out = append(out, p)
		}
	}
	return out
}

// OverlapsArc reports whether two arcs on the same circle share more than
// their endpoints.
func (a Arc) OverlapsArc(o Arc) bool {
	if !a.Center.NearlyEqual(o.Center) || !NearlyEqual(a.Radius, o.Radius) {
		return false
	}
	if a.IsFull() || o.IsFull() {
		return true
	}
	angle := func(p Vector2, c Vector2) float64 { return p.Sub(c).Angle() }
	return a.containsAngleStrict(angle(o.StartPoint(), a.Center)) ||
		a.containsAngleStrict(angle(o.EndPoint(), a.Center)) ||
		a.containsAngleStrict(angle(o.Midpoint(), a.Center)) ||
		o.containsAngleStrict(angle(a.Midpoint(), o.Center))
}
