package geometry

import (
	"math"
	"testing"
)

func TestVector3Cross(t *testing.T) {
	result := Vector3{X: 1}.Cross(Vector3{Y: 1})
	if result != (Vector3{Z: 1}) {
		t.Errorf("Cross failed: expected (0,0,1), got %v", result)
	}
}

func TestPlaneRoundTrip(t *testing.T) {
	plane, err := NewPlane(Vector3{1, 2, 3}, Vector3{Y: 2}, Vector3{Y: 1, Z: 5})
	if err != nil {
		t.Fatalf("NewPlane failed: %v", err)
	}

	local := NewVector2(3.5, -1.25)
	back := plane.ToLocal(plane.ToWorld(local))
	if !back.NearlyEqual(local) {
		t.Errorf("ToLocal(ToWorld(p)) failed: expected %v, got %v", local, back)
	}

	normal := plane.Normal()
	if math.Abs(normal.Length()-1) > 1e-10 {
		t.Errorf("Normal is not a unit vector: %v", normal)
	}
	if math.Abs(normal.Dot(plane.XAxis)) > 1e-10 || math.Abs(normal.Dot(plane.YAxis)) > 1e-10 {
		t.Errorf("Normal is not perpendicular to the plane axes: %v", normal)
	}
	if math.Abs(plane.XAxis.Dot(plane.YAxis)) > 1e-10 {
		t.Errorf("Axes are not orthogonal: %v, %v", plane.XAxis, plane.YAxis)
	}
}

func TestPlaneXZ(t *testing.T) {
	world := PlaneXZ.ToWorld(NewVector2(2, 5))
	if world != (Vector3{X: 2, Z: 5}) {
		t.Errorf("ToWorld failed: expected (2,0,5), got %v", world)
	}
	if PlaneXZ.Normal() != (Vector3{Y: -1}) {
		t.Errorf("Normal failed: expected (0,-1,0), got %v", PlaneXZ.Normal())
	}
}

func TestNewPlaneDegenerate(t *testing.T) {
	if _, err := NewPlane(Vector3{}, Vector3{X: 1}, Vector3{X: 2}); err != ErrDegeneratePlane {
		t.Errorf("expected ErrDegeneratePlane for parallel axes, got %v", err)
	}
	if _, err := NewPlane(Vector3{}, Vector3{}, Vector3{Y: 1}); err != ErrDegeneratePlane {
		t.Errorf("expected ErrDegeneratePlane for zero x axis, got %v", err)
	}
}

func TestPlaneName(t *testing.T) {
	tests := []struct {
		plane    Plane
		expected string
	}{
		{PlaneXY, "XY"},
		{PlaneXZ, "XZ"},
		{PlaneYZ, "YZ"},
		{Plane{Origin: Vector3{Z: 5}, XAxis: Vector3{X: 1}, YAxis: Vector3{Y: 1}}, "custom"},
		{Plane{XAxis: Vector3{Y: 1}, YAxis: Vector3{X: 1}}, "custom"},
	}
	for _, tt := range tests {
		if got := tt.plane.Name(); got != tt.expected {
			t.Errorf("Name(%v) = %q, expected %q", tt.plane, got, tt.expected)
		}
	}
}

func TestPlaneWorldBounds(t *testing.T) {
	b := EmptyBounds().Extend(NewVector2(-1, 2)).Extend(NewVector2(3, 4))
	lo, hi := PlaneXZ.WorldBounds(b)
	if lo != (Vector3{X: -1, Z: 2}) || hi != (Vector3{X: 3, Z: 4}) {
		t.Errorf("WorldBounds on XZ failed: got %v .. %v", lo, hi)
	}

	// a plane whose x axis points along -y flips the order of the corners
	flipped := Plane{Origin: Vector3{Z: 1}, XAxis: Vector3{Y: -1}, YAxis: Vector3{X: 1}}
	lo, hi = flipped.WorldBounds(b)
	if lo != (Vector3{X: 2, Y: -3, Z: 1}) || hi != (Vector3{X: 4, Y: 1, Z: 1}) {
		t.Errorf("WorldBounds on rotated plane failed: got %v .. %v", lo, hi)
	}
}
