package wolter

import "math"

type Real = float64

// Vector3 is a point (mm) or a direction in 3D space.
type Vector3 struct {
	X Real `json:"x"`
	Y Real `json:"y"`
	Z Real `json:"z"`
}

// Vector functions
func (a Vector3) Add(b Vector3) Vector3 { return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vector3) Mul(s Real) Vector3    { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Neg() Vector3          { return Vector3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product between two 3D vectors.
func (a Vector3) Dot(b Vector3) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Len returns the Euclidean length of the vector.
func (v Vector3) Len() Real { return math.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector.
// The zero vector is returned unchanged.
func (v Vector3) Norm() Vector3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}

// At returns the point o + d*t.
func At(o, d Vector3, t Real) Vector3 {
	return Vector3{o.X + d.X*t, o.Y + d.Y*t, o.Z + d.Z*t}
}

// maxAbs is the largest absolute component.
func (v Vector3) maxAbs() Real {
	return math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
}

// unit normalizes after scaling by the largest component, so huge or tiny
// finite vectors neither overflow nor underflow. It fails for the zero vector.
func (v Vector3) unit() (Vector3, bool) {
	m := v.maxAbs()
	if m == 0 {
		return v, false
	}
	u := Vector3{v.X / m, v.Y / m, v.Z / m}
	return u.Mul(1 / u.Len()), true
}

func (v Vector3) finite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}
