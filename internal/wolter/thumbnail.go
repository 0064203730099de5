package wolter

import (
	"image"
	"image/png"
	"os"

	"github.com/nfnt/resize"
)

// SaveThumbnail writes a size x size bilinear preview of img as PNG.
func SaveThumbnail(img image.Image, path string, size int) error {
	if size <= 0 {
		size = ThumbnailSize
	}
	small := resize.Resize(uint(size), uint(size), img, resize.Bilinear)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, small); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
