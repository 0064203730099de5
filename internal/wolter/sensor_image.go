package wolter

import (
	"fmt"
	"sync"
)

// SensorImage bins in-bounds sensor hits into a Res x Res histogram (row-major, row 0 at the top).
type SensorImage struct {
	Res int
	Buf []Real

	mu sync.Mutex
}

// NewSensorImage allocates a zeroed histogram.
func NewSensorImage(res int) (*SensorImage, error) {
	if res <= 0 {
		return nil, fmt.Errorf("%w: image resolution must be > 0, got %d", ErrInvalidSensor, res)
	}
	return &SensorImage{Res: res, Buf: make([]Real, res*res)}, nil
}

func (s *SensorImage) idx(ix, iy int) int { return iy*s.Res + ix }

// Add deposits one record; only pixel-mapped sensor hits count.
func (s *SensorImage) Add(h HitRecord) bool {
	if h.Kind != KindSensor || !h.HasPixel {
		return false
	}
	if h.PixelX < 0 || h.PixelX >= s.Res || h.PixelY < 0 || h.PixelY >= s.Res {
		return false
	}
	s.mu.Lock()
	s.Buf[s.idx(h.PixelX, h.PixelY)]++
	s.mu.Unlock()
	return true
}

// At returns the count in one pixel.
func (s *SensorImage) At(ix, iy int) Real {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Buf[s.idx(ix, iy)]
}

// Total is the sum over all pixels.
func (s *SensorImage) Total() Real {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum := 0.0
	for _, v := range s.Buf {
		sum += v
	}
	return sum
}

// maxValue is the peak pixel, 1 for an empty image.
func (s *SensorImage) maxValue() Real {
	maxv := 0.0
	for _, v := range s.Buf {
		if v > maxv {
			maxv = v
		}
	}
	if maxv == 0 {
		maxv = 1 // avoid div-by-zero; the image will be black
	}
	return maxv
}
