package wolter

import "math"

// SolveQuadratic returns the real roots of a*t^2 + b*t + c = 0 in ascending order.
// A vanishing a degrades to the linear case, reported as a double root.
// ok is false when there is no real solution.
func SolveQuadratic(a, b, c Real) (t0, t1 Real, ok bool) {
	if math.Abs(a) < epsQuad {
		if math.Abs(b) < epsQuad {
			return 0, 0, false
		}
		t := -c / b
		return t, t, true
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	sd := math.Sqrt(disc)
	if b < 0 {
		sd = -sd
	}
	q := -0.5 * (b + sd)
	t0 = q / a
	t1 = t0
	if q != 0 {
		t1 = c / q
	}
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1, true
}
