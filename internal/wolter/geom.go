package wolter

import "math"

// reflect3 mirrors I about the unit normal N.
func reflect3(I, N Vector3) Vector3 {
	return I.Sub(N.Mul(2 * I.Dot(N)))
}

// incidenceDeg is the angle between the normal and the reversed ray, in degrees.
func incidenceDeg(N, D Vector3) Real {
	c := clamp(math.Abs(N.Dot(D.Neg())), 0, 1)
	return math.Acos(c) * 180 / math.Pi
}

// reflectsOff reports whether a ray travelling along D meets the illuminated face of a
// surface with inward normal N. Exact tangency counts as the back face.
func reflectsOff(N, D Vector3) bool {
	return N.Dot(D) > 0
}
