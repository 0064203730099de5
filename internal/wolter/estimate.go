package wolter

import (
	"context"
	"math/rand"
)

// EffectiveArea is the collecting area seen by the detector for one source direction.
type EffectiveArea struct {
	Rays     int
	Hits     int // focused sensor hits within the detector
	Fraction Real
	AreaMM2  Real
	AreaCM2  Real
}

func newEffectiveArea(hits, n int, aperture Real) EffectiveArea {
	if n <= 0 {
		return EffectiveArea{}
	}
	f := Real(hits) / Real(n)
	area := f * aperture
	return EffectiveArea{
		Rays:     n,
		Hits:     hits,
		Fraction: f,
		AreaMM2:  area,
		AreaCM2:  area / 100,
	}
}

// detected reports whether a trace was focused onto the physical detector:
// it must reach the sensor within bounds after at least one mirror reflection.
// Light falling straight through the central hole or past the outer shell does not count.
func detected(tr Trace) bool {
	h, ok := tr.SensorHit()
	return ok && h.Disposition == WithinSensorBounds && tr.Bounces() > 0
}

// EstimateEffectiveArea fires n rays from src and scales the detected fraction by the aperture area.
// fn, when not nil, sees every trace (detected or not) in order.
func EstimateEffectiveArea(ctx context.Context, tracer *Tracer, src *PointSource, n int, rng *rand.Rand, fn TraceFunc) (EffectiveArea, error) {
	if n <= 0 {
		return EffectiveArea{}, nil
	}
	hits := 0
	err := TraceSource(ctx, tracer, src, n, rng, func(r Ray, tr Trace) error {
		if detected(tr) {
			hits++
		}
		if fn != nil {
			return fn(r, tr)
		}
		return nil
	})
	if err != nil {
		return EffectiveArea{}, err
	}
	ea := newEffectiveArea(hits, n, src.ApertureArea())
	DebugLog("Effective area: %d/%d rays, %.4f mm^2", hits, n, ea.AreaMM2)
	return ea, nil
}
