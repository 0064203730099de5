package wolter

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Pose tilts a mirror segment about a pivot: rotation about X first, then about Y.
// The zero Pose is the identity and costs nothing during intersection.
type Pose struct {
	rot    mgl64.Mat3 // local -> world
	inv    mgl64.Mat3 // world -> local
	pivot  Vector3
	tilted bool
}

// NewPose builds a pose from tilt angles in degrees.
func NewPose(tiltXDeg, tiltYDeg Real, pivot Vector3) Pose {
	if tiltXDeg == 0 && tiltYDeg == 0 {
		return Pose{}
	}
	rot := mgl64.Rotate3DY(mgl64.DegToRad(tiltYDeg)).Mul3(mgl64.Rotate3DX(mgl64.DegToRad(tiltXDeg)))
	return Pose{
		rot:    rot,
		inv:    rot.Transpose(),
		pivot:  pivot,
		tilted: true,
	}
}

// Tilted reports whether the pose is not the identity.
func (p Pose) Tilted() bool { return p.tilted }

// toLocal maps a world ray into the segment frame.
func (p Pose) toLocal(o, d Vector3) (Vector3, Vector3) {
	if !p.tilted {
		return o, d
	}
	lo := fromVec(p.inv.Mul3x1(toVec(o.Sub(p.pivot)))).Add(p.pivot)
	ld := fromVec(p.inv.Mul3x1(toVec(d)))
	return lo, ld
}

// dirToWorld rotates a local direction (or normal) back into world space.
func (p Pose) dirToWorld(v Vector3) Vector3 {
	if !p.tilted {
		return v
	}
	return fromVec(p.rot.Mul3x1(toVec(v)))
}

// pointToWorld maps a local point back into world space.
func (p Pose) pointToWorld(v Vector3) Vector3 {
	if !p.tilted {
		return v
	}
	return fromVec(p.rot.Mul3x1(toVec(v.Sub(p.pivot)))).Add(p.pivot)
}

func toVec(v Vector3) mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }

func fromVec(v mgl64.Vec3) Vector3 { return Vector3{v[0], v[1], v[2]} }
