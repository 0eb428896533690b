package geometry

import "math"

// Segment is a straight line segment from A to B
type Segment struct {
	A, B Vector2
}

// NewSegment creates a segment between two points
func NewSegment(a, b Vector2) Segment {
	return Segment{A: a, B: b}
}

// Length returns the length of the segment
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// Direction returns the unit direction from A to B
func (s Segment) Direction() Vector2 {
	return s.B.Sub(s.A).Normalize()
}

// IsDegenerate reports whether both endpoints coincide within Tolerance
func (s Segment) IsDegenerate() bool {
	return s.A.NearlyEqual(s.B)
}

// Midpoint returns the point halfway between A and B
func (s Segment) Midpoint() Vector2 {
	return s.A.Lerp(s.B, 0.5)
}

// Reversed returns the segment from B to A
func (s Segment) Reversed() Segment {
	return Segment{A: s.B, B: s.A}
}

// Bounds returns the bounding box of the segment
func (s Segment) Bounds() Bounds2 {
	return EmptyBounds().Extend(s.A).Extend(s.B)
}

// ClosestPoint returns the point on the segment nearest to p
func (s Segment) ClosestPoint(p Vector2) Vector2 {
	d := s.B.Sub(s.A)
	lenSq := d.LengthSquared()
	if lenSq == 0 {
		return s.A
	}
	t := p.Sub(s.A).Dot(d) / lenSq
	t = math.Max(0, math.Min(1, t))
	return s.A.Add(d.Mul(t))
}

// DistanceToPoint returns the shortest distance from p to the segment
func (s Segment) DistanceToPoint(p Vector2) float64 {
	return p.Distance(s.ClosestPoint(p))
}

// ContainsPoint reports whether p lies on the segment within Tolerance
func (s Segment) ContainsPoint(p Vector2) bool {
	return s.DistanceToPoint(p) <= Tolerance
}

// Intersect returns the intersection point of two segments.
// Parallel segments, and segments whose lines cross outside either
// extent, report false. Endpoint touches count as intersections.
func (s Segment) Intersect(other Segment) (Vector2, bool) {
	r := s.B.Sub(s.A)
	q := other.B.Sub(other.A)
	denom := r.Cross(q)
	if math.Abs(denom) <= Tolerance*math.Max(1, r.Length()*q.Length()) {
		return Vector2{}, false
	}

	w := other.A.Sub(s.A)
	t := w.Cross(q) / denom
	u := w.Cross(r) / denom

	// Extent checks are done in length units so the tolerance means the same
	// thing as everywhere else.
	tTol := Tolerance / math.Max(r.Length(), Tolerance)
	uTol := Tolerance / math.Max(q.Length(), Tolerance)
	if t < -tTol || t > 1+tTol || u < -uTol || u > 1+uTol {
		return Vector2{}, false
	}
	return s.A.Add(r.Mul(t)), true
}

// Overlaps reports whether two collinear segments share more than a single point
func (s Segment) Overlaps(other Segment) bool {
	dir := s.B.Sub(s.A)
	length := dir.Length()
	if length <= Tolerance {
		return false
	}
	if math.Abs(SignedDistance(s.A, s.B, other.A)) > Tolerance ||
		math.Abs(SignedDistance(s.A, s.B, other.B)) > Tolerance {
		return false
	}
	u := dir.Mul(1 / length)
	t0 := other.A.Sub(s.A).Dot(u)
	t1 := other.B.Sub(s.A).Dot(u)
	lo, hi := math.Min(t0, t1), math.Max(t0, t1)
	return math.Min(hi, length)-math.Max(lo, 0) > Tolerance
}

// SignedDistance returns the distance from p to the infinite line through
// a and b. The sign is positive when p lies to the left of the direction a→b.
// A degenerate line yields the plain distance to a.
func SignedDistance(a, b, p Vector2) float64 {
	d := b.Sub(a)
	length := d.Length()
	if length == 0 {
		return p.Distance(a)
	}
	return d.Cross(p.Sub(a)) / length
}
