package wolter

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxPlotPoints caps the PSF scatter per frame.
const maxPlotPoints = 20_000

// Run loads the config, traces every source frame and writes the enabled artifacts.
func Run(ctx context.Context, cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	return RunConfig(ctx, cfg, os.Stdout)
}

// Retrace traces a photon list read from csvPath against the configured scene
// (the defaults when cfgPath is empty) and writes every artifact next to a fresh rays.csv.
func Retrace(ctx context.Context, cfgPath, csvPath string) error {
	cfg := &Config{}
	if cfgPath == "" {
		if err := cfg.fillDefaults(); err != nil {
			return err
		}
	} else {
		var err error
		if cfg, err = loadConfig(cfgPath); err != nil {
			return err
		}
	}
	cfg.InputCSV = csvPath
	return RunConfig(ctx, cfg, os.Stdout)
}

// frame accumulates the focused detector hits of one sweep position.
type frame struct {
	name   string
	title  string
	img    *SensorImage
	points []Vector3
}

func newFrame(res int, name, title string) (*frame, error) {
	img, err := NewSensorImage(res)
	if err != nil {
		return nil, err
	}
	return &frame{name: name, title: title, img: img}, nil
}

func (f *frame) add(tr Trace) {
	if !detected(tr) {
		return
	}
	h := tr.Terminal()
	f.img.Add(h)
	if len(f.points) < maxPlotPoints {
		f.points = append(f.points, h.Point)
	}
}

// runner carries the state shared by one run: resolved output switches, writers and counters.
type runner struct {
	cfg       *Config
	tracer    *Tracer
	scene     *Scene
	out       OutputCfg
	id        string
	dir       string
	cw        *CSVWriter
	stats     *Stats
	w         io.Writer
	summary   strings.Builder
	artifacts []string
}

func (o *runner) save(f *frame) error {
	out := o.out
	if out.PNG {
		p := filepath.Join(o.dir, f.name+".png")
		if err := f.img.SavePNG16(p, out.Gamma); err != nil {
			return err
		}
		fmt.Printf("[PNG] wrote %s\n", p)
		tp := filepath.Join(o.dir, f.name+"_thumb.png")
		if err := SaveThumbnail(f.img.Image(out.Gamma), tp, out.Thumbnail); err != nil {
			return err
		}
		o.artifacts = append(o.artifacts, p, tp)
	}
	if out.RAW {
		p := filepath.Join(o.dir, f.name+".raw")
		if err := f.img.SaveRaw(p); err != nil {
			return err
		}
		o.artifacts = append(o.artifacts, p)
	}
	if out.Plot && len(f.points) > 0 {
		p := filepath.Join(o.dir, f.name+"_plot.png")
		if err := SavePSFPlot(f.points, p, f.title); err != nil {
			return err
		}
		o.artifacts = append(o.artifacts, p)
	}
	return nil
}

// RunConfig runs an already loaded config; the summary goes to w.
// With InputCSV set the photon list is retraced instead of sampling the source sweep.
func RunConfig(ctx context.Context, cfg *Config, w io.Writer) error {
	scene, err := cfg.Telescope.Build()
	if err != nil {
		return err
	}
	opts := []Option{WithMaxSteps(cfg.MaxSteps)}
	if !Cull {
		opts = append(opts, WithoutCull())
	}
	r := &runner{
		cfg:    cfg,
		tracer: NewTracer(scene, opts...),
		scene:  scene,
		out:    cfg.Output,
		id:     uuid.NewString(),
		stats:  NewStats(Debug),
		w:      w,
	}
	r.out.CSV = r.out.CSV || CSV || cfg.InputCSV != ""
	r.out.PNG, r.out.RAW = r.out.PNG || PNG, r.out.RAW || RAW
	r.out.Plot, r.out.GIF = r.out.Plot || PLOT, r.out.GIF || GIF

	r.dir = filepath.Join(r.out.Dir, r.id)
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return err
	}
	if r.out.CSV {
		p := filepath.Join(r.dir, "rays.csv")
		f, err := os.Create(p)
		if err != nil {
			return err
		}
		defer f.Close()
		r.cw = NewCSVWriter(f)
		r.artifacts = append(r.artifacts, p)
	}

	start := time.Now()
	if cfg.InputCSV != "" {
		err = r.retrace(ctx)
	} else {
		err = r.sweep(ctx)
	}
	if err != nil {
		return err
	}
	if r.cw != nil {
		if err := r.cw.Flush(); err != nil {
			return err
		}
	}
	DebugLog("Rays: %d, time: %s", r.stats.Total(), time.Since(start))

	var sb strings.Builder
	if err := r.stats.Report(&sb); err != nil {
		return err
	}
	sb.WriteString(r.summary.String())
	summary := filepath.Join(r.dir, "summary.txt")
	if err := os.WriteFile(summary, []byte(sb.String()), 0o644); err != nil {
		return err
	}
	r.artifacts = append(r.artifacts, summary)
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}

	if Debug {
		for _, l := range r.stats.Logs() {
			DebugLog("ray %d: %s after %d bounce(s) at %s", l.ID, l.State, l.Bounces, fmt3(l.Point))
		}
	}

	if cfg.S3.Bucket == "" {
		return nil
	}
	up, err := NewUploader(cfg.S3)
	if err != nil {
		return err
	}
	for _, p := range r.artifacts {
		if err := up.Upload(ctx, p, up.Key(r.id+"/"+filepath.Base(p))); err != nil {
			return err
		}
	}
	return nil
}

// sweep estimates the effective area of every source frame and renders its PSF.
func (o *runner) sweep(ctx context.Context) error {
	cfg := o.cfg
	sources, err := cfg.Source.Build()
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	fmt.Fprintf(o.w, "Run %s: %s, %d frame(s) x %d rays, seed %d\n", o.id, o.scene, len(sources), cfg.Rays, seed)

	frames := make([]*SensorImage, 0, len(sources))
	for k, src := range sources {
		title := fmt.Sprintf("PSF, direction (%.5f, %.5f, %.5f)", src.Direction.X, src.Direction.Y, src.Direction.Z)
		fr, err := newFrame(o.scene.Sensor.Resolution, fmt.Sprintf("psf_%03d", k), title)
		if err != nil {
			return err
		}
		tick := progress(cfg.Rays)
		ea, err := EstimateEffectiveArea(ctx, o.tracer, src, cfg.Rays, rng, func(r Ray, tr Trace) error {
			defer tick()
			r.ID += k * cfg.Rays
			o.stats.Record(r, tr)
			fr.add(tr)
			if o.cw != nil {
				return o.cw.Write(r, tr)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("frame #%d: %w", k, err)
		}
		frames = append(frames, fr.img)
		DebugLog("Frame #%d: direction %+v, %d/%d on detector", k, src.Direction, ea.Hits, ea.Rays)
		fmt.Fprintf(&o.summary, "Frame #%d effective area: %.4f cm^2 (%d/%d rays)\n", k, ea.AreaCM2, ea.Hits, ea.Rays)
		if err := o.save(fr); err != nil {
			return err
		}
	}

	if o.out.GIF && len(frames) > 0 {
		p := filepath.Join(o.dir, "sweep.gif")
		if err := SaveAnimatedGIF(frames, p, o.out.GIFDelay, o.out.Gamma); err != nil {
			return err
		}
		o.artifacts = append(o.artifacts, p)
	}
	return nil
}

// retrace replays the rays listed in InputCSV, keeping their ids.
func (o *runner) retrace(ctx context.Context) error {
	path := o.cfg.InputCSV
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	rays, err := ReadRaysCSV(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fmt.Fprintf(o.w, "Run %s: %s, retracing %d rays from %s\n", o.id, o.scene, len(rays), path)

	fr, err := newFrame(o.scene.Sensor.Resolution, "psf_input", "PSF, "+filepath.Base(path))
	if err != nil {
		return err
	}
	hits := 0
	tick := progress(len(rays))
	err = TraceBatch(ctx, o.tracer, rays, func(r Ray, tr Trace) error {
		defer tick()
		o.stats.Record(r, tr)
		if detected(tr) {
			hits++
		}
		fr.add(tr)
		return o.cw.Write(r, tr)
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(&o.summary, "Retraced %d rays, detected %d\n", len(rays), hits)
	return o.save(fr)
}

// TraceRay traces one ray against the configured scene (the reference scene when cfgPath is empty)
// and writes its history to w.
func TraceRay(cfgPath string, origin, dir Vector3, w io.Writer) error {
	var (
		scene    *Scene
		maxSteps = MaxSteps
		err      error
	)
	if cfgPath == "" {
		scene, err = ReferenceScene()
	} else {
		var cfg *Config
		cfg, err = loadConfig(cfgPath)
		if err == nil {
			maxSteps = cfg.MaxSteps
			scene, err = cfg.Telescope.Build()
		}
	}
	if err != nil {
		return err
	}
	opts := []Option{WithMaxSteps(maxSteps)}
	if !Cull {
		opts = append(opts, WithoutCull())
	}
	tr, err := NewTracer(scene, opts...).Trace(origin, dir)
	if err != nil {
		return err
	}
	u, _ := dir.unit()
	fmt.Fprintf(w, "Ray origin=%s dir=%s\n", fmt3(origin), fmt3(u))
	return tr.Format(w)
}
