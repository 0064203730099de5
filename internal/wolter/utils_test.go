package wolter

import (
	"math"
	"testing"
)

func v3(x, y, z float64) Vector3 { return Vector3{X: x, Y: y, Z: z} }

func almostEq(a, b, tol Real) bool { return math.Abs(a-b) <= tol }

func vecAlmostEq(a, b Vector3, tol Real) bool {
	return almostEq(a.X, b.X, tol) && almostEq(a.Y, b.Y, tol) && almostEq(a.Z, b.Z, tol)
}

func referenceScene(t *testing.T) *Scene {
	t.Helper()
	s, err := ReferenceScene()
	if err != nil {
		t.Fatalf("ReferenceScene: %v", err)
	}
	return s
}

func TestClamp(t *testing.T) {
	if clamp(-2, -1, 1) != -1 || clamp(2, -1, 1) != 1 || clamp(0.5, -1, 1) != 0.5 {
		t.Fatalf("clamp wrong")
	}
}

func TestIsFinite(t *testing.T) {
	if !isFinite(1) || isFinite(math.NaN()) || isFinite(math.Inf(-1)) {
		t.Fatalf("isFinite wrong")
	}
	if imax(2, 3) != 3 || imax(3, 2) != 3 {
		t.Fatalf("imax wrong")
	}
}
