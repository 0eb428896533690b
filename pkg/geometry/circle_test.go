package geometry

import (
	"math"
	"testing"
)

func TestCircleThroughPoints(t *testing.T) {
	c, err := CircleThroughPoints(NewVector2(5, 2), NewVector2(2, 5), NewVector2(-1, 2))
	if err != nil {
		t.Fatalf("CircleThroughPoints failed: %v", err)
	}
	if !c.Center.NearlyEqual(NewVector2(2, 2)) {
		t.Errorf("Center failed: expected (2,2), got %v", c.Center)
	}
	if math.Abs(c.Radius-3) > 1e-10 {
		t.Errorf("Radius failed: expected 3, got %v", c.Radius)
	}
}

func TestCircleThroughCollinearPoints(t *testing.T) {
	_, err := CircleThroughPoints(NewVector2(0, 0), NewVector2(1, 1), NewVector2(2, 2))
	if err != ErrCollinear {
		t.Errorf("expected ErrCollinear, got %v", err)
	}
	_, err = CircleThroughPoints(NewVector2(0, 0), NewVector2(0, 0), NewVector2(2, 2))
	if err != ErrCollinear {
		t.Errorf("expected ErrCollinear for coincident points, got %v", err)
	}
}

func TestCircleDistanceToPoint(t *testing.T) {
	c := Circle{Center: NewVector2(1, 1), Radius: 2}
	if d := c.DistanceToPoint(NewVector2(1, 1)); math.Abs(d-2) > 1e-10 {
		t.Errorf("center distance: expected 2, got %v", d)
	}
	if !c.ContainsPoint(NewVector2(3, 1)) {
		t.Errorf("ContainsPoint should accept a point on the circumference")
	}
}

func TestCircleAsArc(t *testing.T) {
	arc := Circle{Center: NewVector2(0, 0), Radius: 1}.AsArc()
	if !arc.IsFull() {
		t.Errorf("AsArc should produce a full arc")
	}
	if math.Abs(arc.Length()-2*math.Pi) > 1e-10 {
		t.Errorf("Length failed: expected 2π, got %v", arc.Length())
	}
}
