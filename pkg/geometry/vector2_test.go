package geometry

import (
	"math"
	"testing"
)

func TestVector2Arithmetic(t *testing.T) {
	v1 := NewVector2(1, 2)
	v2 := NewVector2(4, 6)

	if got := v1.Add(v2); got != NewVector2(5, 8) {
		t.Errorf("Add failed: expected (5,8), got %v", got)
	}
	if got := v2.Sub(v1); got != NewVector2(3, 4) {
		t.Errorf("Sub failed: expected (3,4), got %v", got)
	}
	if got := v1.Mul(3); got != NewVector2(3, 6) {
		t.Errorf("Mul failed: expected (3,6), got %v", got)
	}
	if got := v1.Dot(v2); got != 16 {
		t.Errorf("Dot failed: expected 16, got %v", got)
	}
}

func TestVector2Cross(t *testing.T) {
	x := NewVector2(1, 0)
	y := NewVector2(0, 1)
	if x.Cross(y) != 1 {
		t.Errorf("Cross failed: expected 1, got %v", x.Cross(y))
	}
	if y.Cross(x) != -1 {
		t.Errorf("Cross failed: expected -1, got %v", y.Cross(x))
	}
}

func TestVector2Distance(t *testing.T) {
	distance := NewVector2(0, 0).Distance(NewVector2(3, 4))
	if math.Abs(distance-5) > 1e-10 {
		t.Errorf("Distance failed: expected 5, got %v", distance)
	}
}

func TestVector2Angle(t *testing.T) {
	tests := []struct {
		v        Vector2
		expected float64
	}{
		{NewVector2(1, 0), 0},
		{NewVector2(0, 1), math.Pi / 2},
		{NewVector2(-1, 0), math.Pi},
		{NewVector2(0, -1), 3 * math.Pi / 2},
	}
	for _, tt := range tests {
		if got := tt.v.Angle(); math.Abs(got-tt.expected) > 1e-10 {
			t.Errorf("Angle(%v) failed: expected %v, got %v", tt.v, tt.expected, got)
		}
	}
}

func TestVector2Perp(t *testing.T) {
	p := NewVector2(2, 1).Perp()
	if p != NewVector2(-1, 2) {
		t.Errorf("Perp failed: expected (-1,2), got %v", p)
	}
}

func TestNormalizeAngle(t *testing.T) {
	if got := NormalizeAngle(-math.Pi / 2); math.Abs(got-3*math.Pi/2) > 1e-10 {
		t.Errorf("NormalizeAngle failed: expected 3π/2, got %v", got)
	}
	if got := NormalizeAngle(5 * math.Pi); math.Abs(got-math.Pi) > 1e-10 {
		t.Errorf("NormalizeAngle failed: expected π, got %v", got)
	}
}

func TestSetTolerance(t *testing.T) {
	defer func() { Tolerance = DefaultTolerance }()

	if err := SetTolerance(0); err == nil {
		t.Errorf("SetTolerance(0) should fail")
	}
	if err := SetTolerance(math.NaN()); err == nil {
		t.Errorf("SetTolerance(NaN) should fail")
	}
	if err := SetTolerance(0.5); err != nil {
		t.Fatalf("SetTolerance(0.5) failed: %v", err)
	}
	if !NearlyEqual(1.0, 1.4) {
		t.Errorf("NearlyEqual should honour the new tolerance")
	}
}

func TestBounds2(t *testing.T) {
	b := EmptyBounds()
	if !b.IsEmpty() {
		t.Fatalf("EmptyBounds should be empty")
	}
	b = b.Extend(NewVector2(1, -2)).Extend(NewVector2(-3, 4))
	if b.Min != NewVector2(-3, -2) || b.Max != NewVector2(1, 4) {
		t.Errorf("Extend failed: got min %v max %v", b.Min, b.Max)
	}
	if b.Center() != NewVector2(-1, 1) {
		t.Errorf("Center failed: got %v", b.Center())
	}
	if !b.Contains(NewVector2(0, 0)) || b.Contains(NewVector2(2, 0)) {
		t.Errorf("Contains failed")
	}
}
