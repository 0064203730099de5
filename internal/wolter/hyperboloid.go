package wolter

import (
	"fmt"
	"math"
)

// Hyperboloid is the rear mirror segment of one shell: the part of
// (x^2 + y^2)/b^2 - (z-c)^2/a^2 = -1 with z in [ZMin, ZMax].
type Hyperboloid struct {
	A, B, C    Real
	ZMin, ZMax Real
	Shell      int
	Pose       Pose

	// cached
	a2, b2           Real
	AABBMin, AABBMax Vector3
}

// NewHyperboloid validates the segment (b^2 = c^2 - a^2 must be positive) and caches its bounds.
func NewHyperboloid(a, b, c, zmin, zmax Real, shell int, pose Pose) (*Hyperboloid, error) {
	if !isFinite(a) || !isFinite(b) || !isFinite(c) {
		return nil, fmt.Errorf("%w: hyperboloid #%d: non-finite parameters a=%g b=%g c=%g", ErrInvalidShell, shell, a, b, c)
	}
	if a == 0 || b == 0 {
		return nil, fmt.Errorf("%w: hyperboloid #%d: degenerate semi-axes a=%g b=%g", ErrInvalidShell, shell, a, b)
	}
	b2 := c*c - a*a
	if b2 <= 0 {
		return nil, fmt.Errorf("%w: hyperboloid #%d: b^2 = c^2 - a^2 = %g must be > 0", ErrInvalidShell, shell, b2)
	}
	if math.Abs(b*b-b2) > 1e-9*math.Max(1, c*c) {
		return nil, fmt.Errorf("%w: hyperboloid #%d: b^2 = %g does not match c^2 - a^2 = %g", ErrInvalidShell, shell, b*b, b2)
	}
	if !isFinite(zmin) || !isFinite(zmax) || zmin >= zmax {
		return nil, fmt.Errorf("%w: hyperboloid #%d: need zmin < zmax, got [%g, %g]", ErrInvalidShell, shell, zmin, zmax)
	}
	s := &Hyperboloid{A: a, B: b, C: c, ZMin: zmin, ZMax: zmax, Shell: shell, Pose: pose, a2: a * a, b2: b * b}
	// r^2 = b^2((z-c)^2/a^2 - 1) is largest where |z-c| is
	dz := math.Max(math.Abs(zmin-c), math.Abs(zmax-c))
	r := math.Sqrt(math.Max(0, s.b2*(dz*dz/s.a2-1)))
	s.AABBMin, s.AABBMax = cylinderBox(r, zmin, zmax, pose)
	return s, nil
}

func (s *Hyperboloid) coefficients(O, D Vector3) (a, b, c Real) {
	oz := O.Z - s.C
	a = (D.X*D.X+D.Y*D.Y)/s.b2 - (D.Z*D.Z)/s.a2
	b = 2 * ((O.X*D.X+O.Y*D.Y)/s.b2 - (oz*D.Z)/s.a2)
	c = (O.X*O.X+O.Y*O.Y)/s.b2 - (oz*oz)/s.a2 + 1
	return
}

// Normal returns the inward unit normal at a local surface point.
func (s *Hyperboloid) Normal(p Vector3) Vector3 {
	return Vector3{p.X / s.b2, p.Y / s.b2, -(p.Z - s.C) / s.a2}.Norm()
}

func intersectHyperboloid(O, D Vector3, s *Hyperboloid, obs Observer) (surfaceHit, bool) {
	lo, ld := s.Pose.toLocal(O, D)
	a, b, c := s.coefficients(lo, ld)
	if obs != nil {
		obs(KindHyperboloid, s.Shell, a, b, c)
	}
	if debugBuild {
		DebugLog("HYP#%02d a=%.9g b=%.9g c=%.9g", s.Shell, a, b, c)
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
