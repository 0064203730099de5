package wolter

import (
	"errors"
	"math"
	"testing"
)

func TestNewSensorPlane_Invalid(t *testing.T) {
	if _, err := NewSensorPlane(Vector3{}, 1, 1, 4); !errors.Is(err, ErrInvalidSensor) {
		t.Fatalf("zero normal: %v", err)
	}
	if _, err := NewSensorPlane(v3(0, 0, 1), math.NaN(), 1, 4); !errors.Is(err, ErrInvalidSensor) {
		t.Fatalf("NaN offset: %v", err)
	}
	if _, err := NewSensorPlane(v3(0, 0, 1), 0, -1, 4); !errors.Is(err, ErrInvalidSensor) {
		t.Fatalf("negative pitch: %v", err)
	}
}

func TestSensorPlane_Normalizes(t *testing.T) {
	s, err := NewSensorPlane(v3(0, 0, 2), -10, 0, 0)
	if err != nil {
		t.Fatalf("NewSensorPlane: %v", err)
	}
	if s.Normal != v3(0, 0, 1) || s.Offset != -5 {
		t.Fatalf("plane not normalized: %+v", s)
	}
	tt, p, ok := s.Intersect(v3(1, 2, 20), v3(0, 0, -1))
	if !ok || tt != 15 || p != v3(1, 2, 5) {
		t.Fatalf("Intersect = %v %+v %v", tt, p, ok)
	}
}

func TestSensorPlane_IntersectRejects(t *testing.T) {
	s, _ := NewFocalSensor(10, 1, 4)
	if _, _, ok := s.Intersect(v3(0, 0, 20), v3(1, 0, 0)); ok {
		t.Fatalf("parallel ray must miss")
	}
	if _, _, ok := s.Intersect(v3(0, 0, 20), v3(0, 0, 1)); ok {
		t.Fatalf("plane behind the ray must miss")
	}
	if _, _, ok := s.Intersect(v3(0, 0, 10+EpsT/2), v3(0, 0, -1)); ok {
		t.Fatalf("plane closer than EpsT must miss")
	}
}

func TestSensorPlane_PixelIndex(t *testing.T) {
	s, err := NewFocalSensor(0, 1, 4) // half width 2
	if err != nil {
		t.Fatalf("NewFocalSensor: %v", err)
	}
	cases := []struct {
		x, y   Real
		ix, iy int
		inside bool
	}{
		{-2, 2, 0, 0, true},
		{2, -2, 3, 3, true}, // far edges are inclusive
		{0, 0, 2, 2, true},
		{-0.5, 0.5, 1, 1, true},
		{1.99, -1.99, 3, 3, true},
		{math.Nextafter(2, 3), 0, 0, 0, false},
		{0, -2.5, 0, 0, false},
	}
	for _, tc := range cases {
		ix, iy, inside := s.PixelIndex(v3(tc.x, tc.y, 0))
		if inside != tc.inside || (inside && (ix != tc.ix || iy != tc.iy)) {
			t.Fatalf("(%v,%v): got (%d,%d,%v) want (%d,%d,%v)", tc.x, tc.y, ix, iy, inside, tc.ix, tc.iy, tc.inside)
		}
	}
}

func TestSensorPlane_Unpixelated(t *testing.T) {
	s, _ := NewFocalSensor(0, 0, 0)
	if s.Pixelated() {
		t.Fatalf("expected no pixel grid")
	}
	if _, _, inside := s.PixelIndex(v3(1e6, -1e6, 0)); !inside {
		t.Fatalf("unbounded sensor must accept every point")
	}
}

func TestReferenceSensor(t *testing.T) {
	s, err := NewFocalSensor(FocalLength+SensorDefocus, SensorPixelSize, SensorResolution)
	if err != nil {
		t.Fatalf("NewFocalSensor: %v", err)
	}
	if s.HalfWidth() != 3840 {
		t.Fatalf("half width = %v, want 3840", s.HalfWidth())
	}
	ix, iy, inside := s.PixelIndex(v3(0, 0, 1610.4))
	if !inside || ix != 512 || iy != 512 {
		t.Fatalf("centre pixel = (%d,%d,%v)", ix, iy, inside)
	}
}
