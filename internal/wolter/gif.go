package wolter

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"os"
)

// grayPalette is a 256-level grayscale palette for GIF frames.
var grayPalette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}()

// SaveAnimatedGIF writes one frame per sensor image (e.g. one per off-axis source angle).
// delay is in 100ths of a second; each frame is normalized to its own peak.
func SaveAnimatedGIF(frames []*SensorImage, path string, delay int, gamma Real) error {
	if len(frames) == 0 {
		return errors.New("no frames")
	}
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}
	for k, fr := range frames {
		if k%imax(1, len(frames)/100) == 0 { // ~1% steps
			fmt.Printf("[GIF] %.2f%%\n", Real(k+1)*100/Real(len(frames)))
		}
		src := fr.Image(gamma)
		pimg := image.NewPaletted(src.Bounds(), grayPalette)
		draw.Draw(pimg, pimg.Bounds(), src, image.Point{}, draw.Src)
		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, out)
}
