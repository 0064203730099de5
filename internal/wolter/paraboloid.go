package wolter

import (
	"fmt"
	"math"
)

// Paraboloid is the front mirror segment of one shell: the part of
// x^2 + y^2 - 2pz - p^2 = 0 (opening towards +Z) with z in [ZMin, ZMax].
type Paraboloid struct {
	P          Real
	ZMin, ZMax Real
	Shell      int
	Pose       Pose

	// cached world bounds for the pre-cull
	AABBMin, AABBMax Vector3
}

// NewParaboloid validates the segment and caches its bounds.
func NewParaboloid(p, zmin, zmax Real, shell int, pose Pose) (*Paraboloid, error) {
	if !isFinite(p) || p <= 0 {
		return nil, fmt.Errorf("%w: paraboloid #%d: p must be > 0, got %g", ErrInvalidShell, shell, p)
	}
	if !isFinite(zmin) || !isFinite(zmax) || zmin >= zmax {
		return nil, fmt.Errorf("%w: paraboloid #%d: need zmin < zmax, got [%g, %g]", ErrInvalidShell, shell, zmin, zmax)
	}
	// radius grows with z, so the widest ring is at zmax
	r := math.Sqrt(math.Max(0, p*(2*zmax+p)))
	s := &Paraboloid{P: p, ZMin: zmin, ZMax: zmax, Shell: shell, Pose: pose}
	s.AABBMin, s.AABBMax = cylinderBox(r, zmin, zmax, pose)
	return s, nil
}

// Coefficients of the ray substituted into the surface equation (local frame).
func (s *Paraboloid) coefficients(O, D Vector3) (a, b, c Real) {
	a = D.X*D.X + D.Y*D.Y
	b = 2 * (O.X*D.X + O.Y*D.Y - s.P*D.Z)
	c = O.X*O.X + O.Y*O.Y - 2*s.P*O.Z - s.P*s.P
	return
}

// Normal returns the inward unit normal at a local surface point.
func (s *Paraboloid) Normal(p Vector3) Vector3 {
	return Vector3{p.X, p.Y, -s.P}.Norm()
}

func intersectParaboloid(O, D Vector3, s *Paraboloid, obs Observer) (surfaceHit, bool) {
	lo, ld := s.Pose.toLocal(O, D)
	a, b, c := s.coefficients(lo, ld)
	if obs != nil {
		obs(KindParaboloid, s.Shell, a, b, c)
	}
	if debugBuild {
		DebugLog("PAR#%02d a=%.9g b=%.9g c=%.9g", s.Shell, a, b, c)
	}
	t, ok := nearestRoot(a, b, c, func(t Real) bool {
		z := lo.Z + ld.Z*t
		return z >= s.ZMin && z <= s.ZMax
	})
	if !ok {
		return surfaceHit{}, false
	}
	N := s.Normal(At(lo, ld, t))
	return surfaceHit{
		t:      t,
		point:  At(O, D, t),
		normal: s.Pose.dirToWorld(N),
	}, true
}
