package geometry

import (
	"errors"
	"math"
)

// ErrCollinear is returned when three points do not define a circle.
var ErrCollinear = errors.New("points are collinear")

// Circle is a full circle in sketch-local space
type Circle struct {
	Center Vector2
	Radius float64
}

// CircleThroughPoints returns the circle passing through three points.
//
// Uses the determinant formula:
//
//	D  = 2(x₁(y₂-y₃) + x₂(y₃-y₁) + x₃(y₁-y₂))
//	cx = ((x₁²+y₁²)(y₂-y₃) + (x₂²+y₂²)(y₃-y₁) + (x₃²+y₃²)(y₁-y₂)) / D
//	cy = ((x₁²+y₁²)(x₃-x₂) + (x₂²+y₂²)(x₁-x₃) + (x₃²+y₃²)(x₂-x₁)) / D
func CircleThroughPoints(p1, p2, p3 Vector2) (Circle, error) {
	if p1.NearlyEqual(p2) || p2.NearlyEqual(p3) || p1.NearlyEqual(p3) {
		return Circle{}, ErrCollinear
	}
	if math.Abs(SignedDistance(p1, p3, p2)) <= Tolerance {
		return Circle{}, ErrCollinear
	}

	x1, y1 := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y
	x3, y3 := p3.X, p3.Y

	d := 2.0 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if d == 0 {
		return Circle{}, ErrCollinear
	}

	s1 := x1*x1 + y1*y1
	s2 := x2*x2 + y2*y2
	s3 := x3*x3 + y3*y3

	center := Vector2{
		X: (s1*(y2-y3) + s2*(y3-y1) + s3*(y1-y2)) / d,
		Y: (s1*(x3-x2) + s2*(x1-x3) + s3*(x2-x1)) / d,
	}
	return Circle{Center: center, Radius: center.Distance(p1)}, nil
}

// DistanceToPoint returns the distance from p to the circumference
func (c Circle) DistanceToPoint(p Vector2) float64 {
	return math.Abs(p.Distance(c.Center) - c.Radius)
}

// ContainsPoint reports whether p lies on the circumference within Tolerance
func (c Circle) ContainsPoint(p Vector2) bool {
	return c.DistanceToPoint(p) <= Tolerance
}

// Area returns the enclosed area
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Circumference returns the length of the circle
func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.Radius
}

// Bounds returns the bounding box of the circle
func (c Circle) Bounds() Bounds2 {
	r := Vector2{X: c.Radius, Y: c.Radius}
	return EmptyBounds().Extend(c.Center.Sub(r)).Extend(c.Center.Add(r))
}

// AsArc returns the circle as a counter-clockwise arc starting at angle 0
func (c Circle) AsArc() Arc {
	return Arc{Center: c.Center, Radius: c.Radius, StartAngle: 0, Sweep: 2 * math.Pi}
}

// circleLineParams returns the parameters t along a + t(b-a) where the
// infinite line crosses the circle.
func circleLineParams(center Vector2, radius float64, a, b Vector2) []float64 {
	d := b.Sub(a)
	f := a.Sub(center)
	qa := d.Dot(d)
	if qa == 0 {
		return nil
	}
	qb := 2 * f.Dot(d)
	qc := f.Dot(f) - radius*radius
	disc := qb*qb - 4*qa*qc

	// Near-tangent lines are snapped to a single touch point.
	dist := math.Abs(SignedDistance(a, b, center))
	if math.Abs(dist-radius) <= Tolerance {
		return []float64{-qb / (2 * qa)}
	}
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-qb - sq) / (2 * qa), (-qb + sq) / (2 * qa)}
}

// circleCircleIntersections returns the crossing points of two circles.
// Coincident circles report nothing; callers handle overlap separately.
func circleCircleIntersections(c1 Vector2, r1 float64, c2 Vector2, r2 float64) []Vector2 {
	d := c1.Distance(c2)
	if d <= Tolerance {
		return nil
	}
	if d > r1+r2+Tolerance || d < math.Abs(r1-r2)-Tolerance {
		return nil
	}
	a := (r1*r1 - r2*r2 + d*d) / (2 * d)
	h2 := r1*r1 - a*a
	u := c2.Sub(c1).Mul(1 / d)
	base := c1.Add(u.Mul(a))
	if h2 <= Tolerance*Tolerance {
		return []Vector2{base}
	}
	h := math.Sqrt(h2)
	off := u.Perp().Mul(h)
	return []Vector2{base.Add(off), base.Sub(off)}
}
