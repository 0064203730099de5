package wolter

import (
	"image"
	"image/png"
	"math"
	"os"
)

// Image16 renders the histogram as 16-bit grayscale, normalized to its peak and gamma mapped.
func (s *SensorImage) Image(gamma Real) *image.Gray16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	scale := 1.0 / s.maxValue()

	// Helper: map count -> [0..65535] with gamma.
	toU16 := func(v Real) uint16 {
		if v <= 0 {
			return 0
		}
		n := v * scale
		if n > 1 {
			n = 1
		}
		if gamma != 1 {
			n = math.Pow(n, 1.0/gamma)
		}
		x := math.Round(n * 65535.0)
		if x > 65535 {
			return 65535
		}
		return uint16(x)
	}

	img := image.NewGray16(image.Rect(0, 0, s.Res, s.Res))
	for iy := 0; iy < s.Res; iy++ {
		rowOff := iy * img.Stride
		for ix := 0; ix < s.Res; ix++ {
			v := toU16(s.Buf[s.idx(ix, iy)])
			p := rowOff + ix*2
			// Gray16 stores big-endian uint16.
			img.Pix[p+0] = uint8(v >> 8)
			img.Pix[p+1] = uint8(v)
		}
	}
	return img
}

// SavePNG16 writes the sensor image as a lossless 16-bit PNG.
func (s *SensorImage) SavePNG16(path string, gamma Real) error {
	img := s.Image(gamma)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
