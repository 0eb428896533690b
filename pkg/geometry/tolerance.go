package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultTolerance is the coincidence threshold used unless SetTolerance is called.
const DefaultTolerance = 1e-9

// Tolerance is the single threshold for coincidence and degeneracy checks
// shared by the entity store, the wire builder and the containment tester.
var Tolerance = DefaultTolerance

// SetTolerance replaces the package tolerance.
func SetTolerance(tol float64) error {
	if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return fmt.Errorf("invalid tolerance %v: must be a positive finite number", tol)
	}
	Tolerance = tol
	return nil
}

// NearlyEqual reports whether a and b differ by at most Tolerance
func NearlyEqual(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Tolerance)
}

// NearlyZero reports whether v is within Tolerance of zero
func NearlyZero(v float64) bool {
	return scalar.EqualWithinAbs(v, 0, Tolerance)
}

// IsFinite reports whether v is neither NaN nor infinite
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// NormalizeAngle maps an angle into [0, 2π)
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}
