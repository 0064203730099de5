package wolter

import (
	"errors"
	"fmt"
	"math/rand"
)

// PointSource is a distant point source: parallel rays leave a square aperture at height Z
// and travel along Direction towards the mirrors.
type PointSource struct {
	Direction Vector3 // unit
	HalfWidth Real
	Z         Real
}

// NewPointSource aims the source along (offX, offY, -1); offX/offY are the off-axis slopes.
func NewPointSource(offX, offY, halfWidth, z Real) (*PointSource, error) {
	if !isFinite(offX) || !isFinite(offY) {
		return nil, errors.New("off-axis slopes must be finite")
	}
	if !isFinite(halfWidth) || halfWidth <= 0 {
		return nil, fmt.Errorf("aperture half width must be > 0, got %g", halfWidth)
	}
	if !isFinite(z) {
		return nil, fmt.Errorf("source height must be finite, got %g", z)
	}
	src := &PointSource{
		Direction: Vector3{offX, offY, -1}.Norm(),
		HalfWidth: halfWidth,
		Z:         z,
	}
	DebugLog("Created point source %+v", src)
	return src, nil
}

// Sample draws one ray uniformly over the aperture.
func (s *PointSource) Sample(rng *rand.Rand) Ray {
	w := s.HalfWidth
	return Ray{
		Origin:    Vector3{-w + 2*w*rng.Float64(), -w + 2*w*rng.Float64(), s.Z},
		Direction: s.Direction,
	}
}

// ApertureArea is the sampled area in mm^2.
func (s *PointSource) ApertureArea() Real {
	side := 2 * s.HalfWidth
	return side * side
}
