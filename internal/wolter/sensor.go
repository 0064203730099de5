package wolter

import (
	"fmt"
	"math"
)

// SensorPlane is the focal-plane detector: the plane Normal·x + Offset = 0.
// PixelSize and Resolution describe a square pixel grid centred on the optical axis;
// leave either zero to disable bounds and pixel mapping.
type SensorPlane struct {
	Normal     Vector3 // unit
	Offset     Real
	PixelSize  Real
	Resolution int

	// cached
	half Real
}

// NewSensorPlane normalizes the plane equation and validates the pixel grid.
func NewSensorPlane(normal Vector3, offset, pixelSize Real, resolution int) (SensorPlane, error) {
	l := normal.Len()
	if !isFinite(l) || l == 0 {
		return SensorPlane{}, fmt.Errorf("%w: zero or non-finite normal %+v", ErrInvalidSensor, normal)
	}
	if !isFinite(offset) {
		return SensorPlane{}, fmt.Errorf("%w: non-finite offset %g", ErrInvalidSensor, offset)
	}
	if pixelSize < 0 || resolution < 0 || !isFinite(pixelSize) {
		return SensorPlane{}, fmt.Errorf("%w: pixel size %g and resolution %d must be >= 0", ErrInvalidSensor, pixelSize, resolution)
	}
	s := SensorPlane{
		Normal:     normal.Mul(1 / l),
		Offset:     offset / l,
		PixelSize:  pixelSize,
		Resolution: resolution,
	}
	s.half = Real(resolution) * pixelSize * 0.5
	return s, nil
}

// NewFocalSensor is a sensor perpendicular to the optical axis at z.
func NewFocalSensor(z, pixelSize Real, resolution int) (SensorPlane, error) {
	return NewSensorPlane(Vector3{0, 0, 1}, -z, pixelSize, resolution)
}

// Pixelated reports whether the sensor has a finite pixel grid.
func (s SensorPlane) Pixelated() bool {
	return s.PixelSize > 0 && s.Resolution > 0
}

// HalfWidth is half the physical side of the sensor.
func (s SensorPlane) HalfWidth() Real { return s.half }

// Intersect returns the distance and point where the ray crosses the plane.
func (s SensorPlane) Intersect(O, D Vector3) (Real, Vector3, bool) {
	den := s.Normal.Dot(D)
	if math.Abs(den) < epsParallel {
		return 0, Vector3{}, false
	}
	t := -(s.Normal.Dot(O) + s.Offset) / den
	if !(t > EpsT) {
		return 0, Vector3{}, false
	}
	return t, At(O, D, t), true
}

// PixelIndex maps a plane point to pixel indices; iy grows downwards (image rows).
// inside is false for points beyond the physical sensor; bounds are inclusive.
func (s SensorPlane) PixelIndex(p Vector3) (ix, iy int, inside bool) {
	if !s.Pixelated() {
		return 0, 0, true
	}
	h := s.half
	if p.X < -h || p.X > h || p.Y < -h || p.Y > h {
		return 0, 0, false
	}
	ix = int(math.Floor((p.X + h) / s.PixelSize))
	iy = int(math.Floor((h - p.Y) / s.PixelSize))
	// the far edges belong to the last pixel
	if ix >= s.Resolution {
		ix = s.Resolution - 1
	}
	if iy >= s.Resolution {
		iy = s.Resolution - 1
	}
	return ix, iy, true
}
