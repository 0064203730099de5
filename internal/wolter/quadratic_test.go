package wolter

import (
	"math"
	"testing"
)

func residual(a, b, c, t Real) Real { return a*t*t + b*t + c }

func TestSolveQuadratic_RootsAndOrder(t *testing.T) {
	cases := []struct {
		a, b, c Real
		t0, t1  Real
	}{
		{1, -3, 2, 1, 2},
		{1, 3, 2, -2, -1},
		{-1, 3, -2, 1, 2},
		{2, 0, -8, -2, 2},
		{1, -2, 1, 1, 1},
		{1, 0, 0, 0, 0},
	}
	for _, tc := range cases {
		t0, t1, ok := SolveQuadratic(tc.a, tc.b, tc.c)
		if !ok {
			t.Fatalf("(%v,%v,%v): expected roots", tc.a, tc.b, tc.c)
		}
		if t0 > t1 {
			t.Fatalf("(%v,%v,%v): roots not ascending: %v > %v", tc.a, tc.b, tc.c, t0, t1)
		}
		if !almostEq(t0, tc.t0, 1e-12) || !almostEq(t1, tc.t1, 1e-12) {
			t.Fatalf("(%v,%v,%v): got %v,%v want %v,%v", tc.a, tc.b, tc.c, t0, t1, tc.t0, tc.t1)
		}
	}
}

func TestSolveQuadratic_Cancellation(t *testing.T) {
	// naive formula loses the small root entirely
	a, b, c := 1.0, -1e8, 1.0
	t0, t1, ok := SolveQuadratic(a, b, c)
	if !ok {
		t.Fatalf("expected roots")
	}
	if math.Abs(t0-1e-8)/1e-8 > 1e-9 || math.Abs(t1-1e8)/1e8 > 1e-12 {
		t.Fatalf("got %v, %v", t0, t1)
	}
	for _, r := range []Real{t0, t1} {
		scale := math.Max(1, math.Abs(b*r))
		if math.Abs(residual(a, b, c, r))/scale > 1e-9 {
			t.Fatalf("residual too large at %v: %v", r, residual(a, b, c, r))
		}
	}
}

func TestSolveQuadratic_NoRealRoots(t *testing.T) {
	if _, _, ok := SolveQuadratic(1, 0, 1); ok {
		t.Fatalf("x^2+1 has no real roots")
	}
	if _, _, ok := SolveQuadratic(0, 0, 1); ok {
		t.Fatalf("constant equation has no roots")
	}
	if _, _, ok := SolveQuadratic(1e-20, 1e-20, 1); ok {
		t.Fatalf("vanishing a and b must report no roots")
	}
}

func TestSolveQuadratic_Linear(t *testing.T) {
	t0, t1, ok := SolveQuadratic(0, 2, -4)
	if !ok || t0 != 2 || t1 != 2 {
		t.Fatalf("linear: got %v,%v,%v", t0, t1, ok)
	}
	// below the threshold a is treated as zero
	t0, _, ok = SolveQuadratic(1e-17, 2, -4)
	if !ok || t0 != 2 {
		t.Fatalf("near-linear: got %v,%v", t0, ok)
	}
}

func TestSolveQuadratic_ResidualGrid(t *testing.T) {
	for _, a := range []Real{-3, -0.5, 0.001, 1, 7} {
		for _, b := range []Real{-100, -1, 0, 2.5, 40} {
			for _, c := range []Real{-50, -1, 0, 0.25, 9} {
				t0, t1, ok := SolveQuadratic(a, b, c)
				if !ok {
					if b*b-4*a*c >= 0 {
						t.Fatalf("(%v,%v,%v): discriminant >= 0 but no roots", a, b, c)
					}
					continue
				}
				if t0 > t1 {
					t.Fatalf("(%v,%v,%v): not ascending", a, b, c)
				}
				for _, r := range []Real{t0, t1} {
					scale := math.Max(1, math.Max(math.Abs(a*r*r), math.Max(math.Abs(b*r), math.Abs(c))))
					if math.Abs(residual(a, b, c, r))/scale > 1e-9 {
						t.Fatalf("(%v,%v,%v): residual %v at %v", a, b, c, residual(a, b, c, r), r)
					}
				}
			}
		}
	}
}
