package geometry

import (
	"math"
	"testing"
)

func TestNewArcSweep(t *testing.T) {
	center := NewVector2(0, 0)
	start := NewVector2(1, 0)
	end := NewVector2(0, 1)

	ccw, err := NewArc(center, start, end, true)
	if err != nil {
		t.Fatalf("NewArc failed: %v", err)
	}
	if math.Abs(ccw.Subtended()-math.Pi/2) > 1e-10 {
		t.Errorf("CCW subtended: expected π/2, got %v", ccw.Subtended())
	}

	cw, err := NewArc(center, start, end, false)
	if err != nil {
		t.Fatalf("NewArc failed: %v", err)
	}
	if math.Abs(cw.Subtended()-3*math.Pi/2) > 1e-10 {
		t.Errorf("CW subtended: expected 3π/2, got %v", cw.Subtended())
	}
	if cw.IsCCW() {
		t.Errorf("CW arc reports counter-clockwise")
	}
	if !cw.EndPoint().NearlyEqual(end) {
		t.Errorf("EndPoint failed: expected %v, got %v", end, cw.EndPoint())
	}
}

func TestNewArcInvalid(t *testing.T) {
	center := NewVector2(0, 0)
	if _, err := NewArc(center, NewVector2(1, 0), NewVector2(0, 2), true); err != ErrInvalidArc {
		t.Errorf("radius mismatch: expected ErrInvalidArc, got %v", err)
	}
	if _, err := NewArc(center, NewVector2(1, 0), NewVector2(1, 0), true); err != ErrInvalidArc {
		t.Errorf("coincident endpoints: expected ErrInvalidArc, got %v", err)
	}
	if _, err := NewArc(center, center, NewVector2(1, 0), true); err != ErrInvalidArc {
		t.Errorf("zero radius: expected ErrInvalidArc, got %v", err)
	}
}

func TestArcThroughPoints(t *testing.T) {
	arc, err := ArcThroughPoints(NewVector2(1, 0), NewVector2(0, 1), NewVector2(-1, 0))
	if err != nil {
		t.Fatalf("ArcThroughPoints failed: %v", err)
	}
	if !arc.Center.NearlyEqual(NewVector2(0, 0)) || math.Abs(arc.Radius-1) > 1e-10 {
		t.Errorf("wrong circle: center %v radius %v", arc.Center, arc.Radius)
	}
	if !arc.IsCCW() {
		t.Errorf("arc through the top from right to left should be counter-clockwise")
	}
	if !arc.Midpoint().NearlyEqual(NewVector2(0, 1)) {
		t.Errorf("Midpoint failed: got %v", arc.Midpoint())
	}

	below, err := ArcThroughPoints(NewVector2(1, 0), NewVector2(0, -1), NewVector2(-1, 0))
	if err != nil {
		t.Fatalf("ArcThroughPoints failed: %v", err)
	}
	if below.IsCCW() {
		t.Errorf("arc through the bottom from right to left should be clockwise")
	}
}

func TestArcContainsAngle(t *testing.T) {
	arc, _ := NewArc(NewVector2(0, 0), NewVector2(0, -1), NewVector2(0, 1), true)

	if !arc.ContainsAngle(0) {
		t.Errorf("right-bulging arc should contain angle 0")
	}
	if arc.ContainsAngle(math.Pi) {
		t.Errorf("right-bulging arc should not contain angle π")
	}
	if !arc.ContainsAngle(math.Pi / 2) {
		t.Errorf("endpoints should be contained")
	}
}

func TestArcDistanceToPoint(t *testing.T) {
	arc, _ := NewArc(NewVector2(0, 0), NewVector2(0, -1), NewVector2(0, 1), true)

	if d := arc.DistanceToPoint(NewVector2(3, 0)); math.Abs(d-2) > 1e-10 {
		t.Errorf("radial distance: expected 2, got %v", d)
	}
	if d := arc.DistanceToPoint(NewVector2(-2, 1)); math.Abs(d-2) > 1e-10 {
		t.Errorf("distance to nearest endpoint: expected 2, got %v", d)
	}
}

func TestArcReversed(t *testing.T) {
	arc, _ := NewArc(NewVector2(0, 0), NewVector2(1, 0), NewVector2(0, 1), true)
	rev := arc.Reversed()

	if !rev.StartPoint().NearlyEqual(arc.EndPoint()) || !rev.EndPoint().NearlyEqual(arc.StartPoint()) {
		t.Errorf("Reversed should swap endpoints")
	}
	if !rev.Midpoint().NearlyEqual(arc.Midpoint()) {
		t.Errorf("Reversed should keep the same points: %v vs %v", rev.Midpoint(), arc.Midpoint())
	}
}

func TestArcFlipped(t *testing.T) {
	arc, _ := NewArc(NewVector2(0, 0), NewVector2(0, -1), NewVector2(0, 1), true)
	flipped := arc.Flipped()

	if !flipped.EndPoint().NearlyEqual(NewVector2(0, 1)) {
		t.Errorf("Flipped should keep endpoints, got end %v", flipped.EndPoint())
	}
	if !flipped.Midpoint().NearlyEqual(NewVector2(-1, 0)) {
		t.Errorf("Flipped should bulge left, got midpoint %v", flipped.Midpoint())
	}
}

func TestArcIntersectSegment(t *testing.T) {
	arc, _ := NewArc(NewVector2(0, 0), NewVector2(0, -1), NewVector2(0, 1), true)

	hits := arc.IntersectSegment(NewSegment(NewVector2(-2, 0), NewVector2(2, 0)))
	if len(hits) != 1 || !hits[0].NearlyEqual(NewVector2(1, 0)) {
		t.Errorf("expected one hit at (1,0), got %v", hits)
	}
}

func TestArcIntersectArc(t *testing.T) {
	a := Circle{Center: NewVector2(0, 0), Radius: 1}.AsArc()
	b := Circle{Center: NewVector2(1, 0), Radius: 1}.AsArc()
	if hits := a.IntersectArc(b); len(hits) != 2 {
		t.Errorf("expected 2 intersections, got %v", hits)
	}
	if !a.OverlapsArc(a) {
		t.Errorf("an arc overlaps itself")
	}
}

func TestArcBounds(t *testing.T) {
	arc, _ := NewArc(NewVector2(0, 0), NewVector2(1, 0), NewVector2(-1, 0), true)
	b := arc.Bounds()
	if !b.Min.NearlyEqual(NewVector2(-1, 0)) || !b.Max.NearlyEqual(NewVector2(1, 1)) {
		t.Errorf("Bounds failed: got min %v max %v", b.Min, b.Max)
	}
}
