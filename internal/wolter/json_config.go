package wolter

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// TiltDeg is a rotation about X then Y, in degrees.
type TiltDeg struct {
	X Real `json:"x"`
	Y Real `json:"y"`
}

type TelescopeCfg struct {
	FocalLength   Real    `json:"focalLength"`
	MirrorHeight  Real    `json:"mirrorHeight"`
	Radii         []Real  `json:"radii,omitempty"`         // explicit Yp_min list, outermost first
	Layout        *Layout `json:"layout,omitempty"`        // used when radii is empty
	SensorDefocus *Real   `json:"sensorDefocus,omitempty"` // nil means the default; 0 is the focus
	PixelSize     Real    `json:"pixelSize"`
	Resolution    int     `json:"resolution"`
	TiltDeg       TiltDeg `json:"tiltDeg"`
	Pivot         Vector3 `json:"pivot"`
}

// SourceCfg lists off-axis source angles in degrees; entry k of each list forms frame k (missing entries are 0).
type SourceCfg struct {
	OffAxisX  []Real `json:"offAxisX"`
	OffAxisY  []Real `json:"offAxisY"`
	HalfWidth Real   `json:"halfWidth"`
	Z         Real   `json:"z"` // 0 means 2F + SourceLift
}

type OutputCfg struct {
	Dir       string `json:"dir"`
	CSV       bool   `json:"csv"`
	PNG       bool   `json:"png"`
	RAW       bool   `json:"raw"`
	Plot      bool   `json:"plot"`
	GIF       bool   `json:"gif"`
	GIFDelay  int    `json:"gifDelay,omitempty"`
	Gamma     Real   `json:"gamma,omitempty"`
	Thumbnail int    `json:"thumbnail,omitempty"`
}

// S3Cfg enables artifact upload when Bucket is set.
type S3Cfg struct {
	Bucket    string `json:"bucket"`
	Region    string `json:"region"`
	Endpoint  string `json:"endpoint"`
	AccessKey string `json:"accessKey"`
	SecretKey string `json:"secretKey"`
	Prefix    string `json:"prefix"`
}

type Config struct {
	Telescope TelescopeCfg `json:"telescope"`
	Source    SourceCfg    `json:"source"`
	Rays      int          `json:"rays"`
	Seed      int64        `json:"seed"` // 0 seeds from the clock
	MaxSteps  int          `json:"maxSteps"`
	InputCSV  string       `json:"inputCsv,omitempty"` // photon list to retrace instead of sampling the source
	Output    OutputCfg    `json:"output"`
	S3        S3Cfg        `json:"s3"`
}

// Design resolves the shell radii: explicit list, then even layout, then the reference set.
func (c TelescopeCfg) Design() (ShellDesign, error) {
	d := ShellDesign{
		FocalLength:  c.FocalLength,
		MirrorHeight: c.MirrorHeight,
		TiltXDeg:     c.TiltDeg.X,
		TiltYDeg:     c.TiltDeg.Y,
		Pivot:        c.Pivot,
	}
	switch {
	case len(c.Radii) > 0:
		d.Radii = append([]Real(nil), c.Radii...)
	case c.Layout != nil:
		radii, err := c.Layout.Radii()
		if err != nil {
			return ShellDesign{}, err
		}
		d.Radii = radii
	default:
		d.Radii = append([]Real(nil), ReferenceRadii...)
	}
	return d, nil
}

// Defocus is the sensor distance past the focal point.
func (c TelescopeCfg) Defocus() Real {
	if c.SensorDefocus == nil {
		return SensorDefocus
	}
	return *c.SensorDefocus
}

// SensorZ is the sensor plane height, F + defocus.
func (c TelescopeCfg) SensorZ() Real { return c.FocalLength + c.Defocus() }

// Build creates the scene with the sensor at z = F + defocus.
func (c TelescopeCfg) Build() (*Scene, error) {
	d, err := c.Design()
	if err != nil {
		return nil, err
	}
	sensor, err := NewFocalSensor(c.SensorZ(), c.PixelSize, c.Resolution)
	if err != nil {
		return nil, err
	}
	return BuildScene(d, sensor)
}

// Build returns one point source per sweep frame.
func (c SourceCfg) Build() ([]*PointSource, error) {
	n := len(c.OffAxisX)
	if len(c.OffAxisY) > n {
		n = len(c.OffAxisY)
	}
	if n == 0 {
		n = 1
	}
	const k = math.Pi / 180
	out := make([]*PointSource, 0, n)
	for i := 0; i < n; i++ {
		var ax, ay Real
		if i < len(c.OffAxisX) {
			ax = c.OffAxisX[i]
		}
		if i < len(c.OffAxisY) {
			ay = c.OffAxisY[i]
		}
		if math.Abs(ax) >= 90 || math.Abs(ay) >= 90 {
			return nil, fmt.Errorf("source #%d: off-axis angle must be in (-90, 90) degrees, got (%g, %g)", i, ax, ay)
		}
		src, err := NewPointSource(math.Tan(ax*k), math.Tan(ay*k), c.HalfWidth, c.Z)
		if err != nil {
			return nil, fmt.Errorf("source #%d: %w", i, err)
		}
		out = append(out, src)
	}
	return out, nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.fillDefaults(); err != nil {
		return nil, err
	}
	DebugLog("Loaded config from %s: F=%.3f H=%.3f rays=%d maxSteps=%d frames=%d", path, cfg.Telescope.FocalLength, cfg.Telescope.MirrorHeight, cfg.Rays, cfg.MaxSteps, imax(len(cfg.Source.OffAxisX), len(cfg.Source.OffAxisY)))
	return &cfg, nil
}

// fillDefaults / validation
func (cfg *Config) fillDefaults() error {
	t := &cfg.Telescope
	if t.FocalLength <= 0 {
		t.FocalLength = FocalLength
	}
	if t.MirrorHeight <= 0 {
		t.MirrorHeight = MirrorHeight
	}
	if t.SensorDefocus == nil {
		d := Real(SensorDefocus)
		t.SensorDefocus = &d
	} else if !isFinite(*t.SensorDefocus) {
		return fmt.Errorf("sensor defocus must be finite, got %g", *t.SensorDefocus)
	}
	if t.PixelSize <= 0 {
		t.PixelSize = SensorPixelSize
	}
	if t.Resolution <= 0 {
		t.Resolution = SensorResolution
	}
	s := &cfg.Source
	if s.HalfWidth <= 0 {
		s.HalfWidth = SourceHalfWidth
	}
	if s.Z == 0 {
		s.Z = 2*t.FocalLength + SourceLift
	}
	if cfg.Rays <= 0 {
		cfg.Rays = Rays
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = MaxSteps
	}
	o := &cfg.Output
	if o.Dir == "" {
		o.Dir = OutputDir
	}
	if o.GIFDelay <= 0 {
		o.GIFDelay = GIFDelay
	}
	if o.Gamma <= 0 {
		o.Gamma = Gamma
	}
	if o.Thumbnail <= 0 {
		o.Thumbnail = ThumbnailSize
	}
	if s.Z <= t.SensorZ() {
		return fmt.Errorf("source z %g must be above the sensor at %g", s.Z, t.SensorZ())
	}
	return nil
}
