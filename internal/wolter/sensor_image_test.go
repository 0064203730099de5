package wolter

import (
	"errors"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func pixelHit(ix, iy int) HitRecord {
	return HitRecord{Kind: KindSensor, Disposition: WithinSensorBounds, HasPixel: true, PixelX: ix, PixelY: iy}
}

func TestSensorImage_Add(t *testing.T) {
	img, err := NewSensorImage(4)
	if err != nil {
		t.Fatalf("NewSensorImage: %v", err)
	}
	if !img.Add(pixelHit(1, 2)) || !img.Add(pixelHit(1, 2)) || !img.Add(pixelHit(3, 0)) {
		t.Fatalf("Add rejected a valid hit")
	}
	if img.Add(HitRecord{Kind: KindParaboloid}) || img.Add(HitRecord{Kind: KindSensor}) || img.Add(pixelHit(4, 0)) {
		t.Fatalf("Add accepted an invalid record")
	}
	if img.At(1, 2) != 2 || img.At(3, 0) != 1 || img.Total() != 3 {
		t.Fatalf("counts wrong: %v", img.Buf)
	}
	if _, err := NewSensorImage(0); !errors.Is(err, ErrInvalidSensor) {
		t.Fatalf("zero resolution: %v", err)
	}
}

func TestSensorImage_Image(t *testing.T) {
	img, _ := NewSensorImage(3)
	img.Add(pixelHit(0, 0))
	img.Add(pixelHit(0, 0))
	img.Add(pixelHit(2, 1))
	g := img.Image(1)
	if g.Gray16At(0, 0).Y != 65535 {
		t.Fatalf("peak = %d", g.Gray16At(0, 0).Y)
	}
	if y := g.Gray16At(2, 1).Y; y != 32768 {
		t.Fatalf("half = %d", y)
	}
	if g.Gray16At(1, 1).Y != 0 {
		t.Fatalf("empty pixel not black")
	}
	// gamma < 1 darkens mid tones
	if y := img.Image(0.5).Gray16At(2, 1).Y; y >= 32768 {
		t.Fatalf("gamma 0.5 mid tone = %d", y)
	}
}

func TestSensorImage_SavePNG16(t *testing.T) {
	img, _ := NewSensorImage(8)
	img.Add(pixelHit(4, 4))
	path := filepath.Join(t.TempDir(), "psf.png")
	if err := img.SavePNG16(path, Gamma); err != nil {
		t.Fatalf("SavePNG16: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	dec, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := dec.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Fatalf("bounds = %v", b)
	}
	if r, _, _, _ := dec.At(4, 4).RGBA(); r != 65535 {
		t.Fatalf("peak pixel = %d", r)
	}
}

func TestSensorImage_RawRoundTrip(t *testing.T) {
	img, _ := NewSensorImage(5)
	img.Add(pixelHit(0, 4))
	img.Add(pixelHit(3, 1))
	img.Add(pixelHit(3, 1))
	path := filepath.Join(t.TempDir(), "sub", "psf.raw")
	if err := img.SaveRaw(path); err != nil {
		t.Fatalf("SaveRaw: %v", err)
	}
	st, err := os.Stat(path)
	if err != nil || st.Size() != 4+5*5*8 {
		t.Fatalf("raw size = %v, err=%v", st, err)
	}
	back, err := LoadRaw(path)
	if err != nil {
		t.Fatalf("LoadRaw: %v", err)
	}
	if back.Res != 5 || back.At(0, 4) != 1 || back.At(3, 1) != 2 || back.Total() != 3 {
		t.Fatalf("round trip lost counts: %v", back.Buf)
	}
}

func TestSaveAnimatedGIF(t *testing.T) {
	frames := make([]*SensorImage, 3)
	for i := range frames {
		frames[i], _ = NewSensorImage(6)
		frames[i].Add(pixelHit(i, i))
	}
	path := filepath.Join(t.TempDir(), "sweep.gif")
	if err := SaveAnimatedGIF(frames, path, GIFDelay, Gamma); err != nil {
		t.Fatalf("SaveAnimatedGIF: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(g.Image) != 3 || g.Delay[0] != GIFDelay {
		t.Fatalf("frames=%d delay=%v", len(g.Image), g.Delay)
	}
	if err := SaveAnimatedGIF(nil, path, GIFDelay, Gamma); err == nil {
		t.Fatalf("no frames must fail")
	}
}

func TestSaveThumbnail(t *testing.T) {
	img, _ := NewSensorImage(64)
	img.Add(pixelHit(32, 32))
	path := filepath.Join(t.TempDir(), "thumb.png")
	if err := SaveThumbnail(img.Image(Gamma), path, 16); err != nil {
		t.Fatalf("SaveThumbnail: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil || cfg.Width != 16 || cfg.Height != 16 {
		t.Fatalf("thumbnail config = %+v, err=%v", cfg, err)
	}
}

func TestSavePSFPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "psf_plot.png")
	pts := []Vector3{v3(0, 0, 1610.4), v3(1.15, 0, 1610.4), v3(-0.3, 0.8, 1610.4)}
	if err := SavePSFPlot(pts, path, "PSF"); err != nil {
		t.Fatalf("SavePSFPlot: %v", err)
	}
	if st, err := os.Stat(path); err != nil || st.Size() == 0 {
		t.Fatalf("plot not written: %v", err)
	}
	if err := SavePSFPlot(nil, path, "PSF"); err == nil {
		t.Fatalf("empty plot must fail")
	}
}
