package wolter

import (
	"fmt"
	"math"
)

// ShellDesign describes a nested Wolter-I assembly.
// Radii are the minimum paraboloid aperture radii (Yp_min), outermost first; shell i is Radii[i].
type ShellDesign struct {
	FocalLength  Real
	MirrorHeight Real
	Radii        []Real
	TiltXDeg     Real
	TiltYDeg     Real
	Pivot        Vector3
}

// ShellGeometry holds the derived parameters of one paraboloid/hyperboloid pair.
type ShellGeometry struct {
	Theta        Real // grazing angle at the intersection ring
	P            Real
	PZMin, PZMax Real
	A, B, C      Real
	HZMin, HZMax Real
}

// ReferenceDesign is the 54-shell reference telescope.
func ReferenceDesign() ShellDesign {
	radii := make([]Real, len(ReferenceRadii))
	copy(radii, ReferenceRadii)
	return ShellDesign{FocalLength: FocalLength, MirrorHeight: MirrorHeight, Radii: radii}
}

// ShellParameters derives the confocal pair for one aperture radius.
func ShellParameters(focal, height, yp Real) (ShellGeometry, error) {
	if !isFinite(yp) || yp <= 0 || yp >= focal {
		return ShellGeometry{}, fmt.Errorf("%w: radius %g must be in (0, %g)", ErrInvalidShell, yp, focal)
	}
	c := focal * 0.5
	theta := math.Asin(yp/focal) * 0.25
	pzmin := focal*math.Cos(4*theta) + 2*c
	a := focal * (2*math.Cos(2*theta) - 1) * 0.5
	return ShellGeometry{
		Theta: theta,
		P:     yp * math.Tan(theta),
		PZMin: pzmin,
		PZMax: pzmin + height,
		A:     a,
		B:     math.Sqrt(math.Max(0, c*c-a*a)),
		C:     c,
		HZMin: pzmin - height,
		HZMax: pzmin,
	}, nil
}

// BuildShells constructs one paraboloid and one hyperboloid per radius.
func BuildShells(d ShellDesign) ([]*Paraboloid, []*Hyperboloid, error) {
	if !isFinite(d.FocalLength) || d.FocalLength <= 0 {
		return nil, nil, fmt.Errorf("%w: focal length must be > 0, got %g", ErrInvalidShell, d.FocalLength)
	}
	if !isFinite(d.MirrorHeight) || d.MirrorHeight <= 0 {
		return nil, nil, fmt.Errorf("%w: mirror height must be > 0, got %g", ErrInvalidShell, d.MirrorHeight)
	}
	if len(d.Radii) == 0 {
		return nil, nil, fmt.Errorf("%w: no shell radii", ErrInvalidShell)
	}
	pose := NewPose(d.TiltXDeg, d.TiltYDeg, d.Pivot)
	paras := make([]*Paraboloid, 0, len(d.Radii))
	hypers := make([]*Hyperboloid, 0, len(d.Radii))
	for i, yp := range d.Radii {
		g, err := ShellParameters(d.FocalLength, d.MirrorHeight, yp)
		if err != nil {
			return nil, nil, fmt.Errorf("shell #%d: %w", i, err)
		}
		p, err := NewParaboloid(g.P, g.PZMin, g.PZMax, i, pose)
		if err != nil {
			return nil, nil, err
		}
		h, err := NewHyperboloid(g.A, g.B, g.C, g.HZMin, g.HZMax, i, pose)
		if err != nil {
			return nil, nil, err
		}
		paras = append(paras, p)
		hypers = append(hypers, h)
	}
	DebugLog("Built %d shells: F=%.3f H=%.3f tilt=(%.4f, %.4f) deg", len(d.Radii), d.FocalLength, d.MirrorHeight, d.TiltXDeg, d.TiltYDeg)
	return paras, hypers, nil
}

// Layout spaces Shells radii evenly between the outer and inner aperture diameters.
type Layout struct {
	OuterDiameter Real `json:"outerDiameter"`
	InnerDiameter Real `json:"innerDiameter"`
	Shells        int  `json:"shells"`
}

// Radii returns the outermost-first radius list.
func (l Layout) Radii() ([]Real, error) {
	if l.Shells <= 0 {
		return nil, fmt.Errorf("%w: shells must be > 0, got %d", ErrInvalidLayout, l.Shells)
	}
	outer, inner := l.OuterDiameter/2, l.InnerDiameter/2
	if !isFinite(outer) || outer <= 0 {
		return nil, fmt.Errorf("%w: outer diameter must be > 0, got %g", ErrInvalidLayout, l.OuterDiameter)
	}
	if l.Shells == 1 {
		return []Real{outer}, nil
	}
	if !isFinite(inner) || inner <= 0 || inner >= outer {
		return nil, fmt.Errorf("%w: need 0 < inner < outer diameter, got %g and %g", ErrInvalidLayout, l.InnerDiameter, l.OuterDiameter)
	}
	step := (outer - inner) / Real(l.Shells-1)
	radii := make([]Real, l.Shells)
	for i := range radii {
		radii[i] = outer - step*Real(i)
	}
	radii[l.Shells-1] = inner
	return radii, nil
}
