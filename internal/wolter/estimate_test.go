package wolter

import (
	"context"
	"errors"
	"math/rand"
	"testing"
)

func TestEstimateEffectiveArea(t *testing.T) {
	tr := NewTracer(referenceScene(t))
	src, _ := NewPointSource(0, 0, SourceHalfWidth, 2*FocalLength+SourceLift)
	ea, err := EstimateEffectiveArea(context.Background(), tr, src, 2000, rand.New(rand.NewSource(1)), nil)
	if err != nil {
		t.Fatalf("EstimateEffectiveArea: %v", err)
	}
	if ea.Rays != 2000 || ea.Hits <= 0 || ea.Hits > ea.Rays {
		t.Fatalf("ea = %+v", ea)
	}
	if ea.AreaMM2 <= 0 || ea.AreaMM2 > src.ApertureArea() || !almostEq(ea.AreaCM2*100, ea.AreaMM2, 1e-9) {
		t.Fatalf("area = %+v", ea)
	}
	if !almostEq(ea.Fraction, Real(ea.Hits)/2000, 1e-15) {
		t.Fatalf("fraction = %v", ea.Fraction)
	}
}

func TestEstimateEffectiveArea_Empty(t *testing.T) {
	src, _ := NewPointSource(0, 0, 1, 3400)
	ea, err := EstimateEffectiveArea(context.Background(), NewTracer(referenceScene(t)), src, 0, rand.New(rand.NewSource(1)), nil)
	if err != nil || ea != (EffectiveArea{}) {
		t.Fatalf("ea=%+v err=%v", ea, err)
	}
}

func TestEstimateEffectiveArea_OnAxisHole(t *testing.T) {
	// a 1 mm source on the axis falls through the central hole: it lands on the detector unfocused
	src, _ := NewPointSource(0, 0, 1, 3400)
	seen, onDetector := 0, 0
	ea, err := EstimateEffectiveArea(context.Background(), NewTracer(referenceScene(t)), src, 100, rand.New(rand.NewSource(2)), func(r Ray, tr Trace) error {
		seen++
		if h, ok := tr.SensorHit(); ok && h.Disposition == WithinSensorBounds && tr.Bounces() == 0 {
			onDetector++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("EstimateEffectiveArea: %v", err)
	}
	if seen != 100 || onDetector != 100 {
		t.Fatalf("seen=%d direct detector hits=%d", seen, onDetector)
	}
	if ea.Rays != 100 || ea.Hits != 0 || ea.AreaMM2 != 0 || ea.Fraction != 0 {
		t.Fatalf("direct light counted as effective area: %+v", ea)
	}
}

func TestEstimateEffectiveArea_CallbackError(t *testing.T) {
	src, _ := NewPointSource(0, 0, 1, 3400)
	stop := errors.New("stop")
	n := 0
	_, err := EstimateEffectiveArea(context.Background(), NewTracer(referenceScene(t)), src, 10, rand.New(rand.NewSource(2)), func(Ray, Trace) error {
		n++
		if n == 3 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) || n != 3 {
		t.Fatalf("n=%d err=%v", n, err)
	}
}
