package wolter

import (
	"fmt"
	"math"
)

// Observer receives the quadratic coefficients of every shell test.
type Observer func(kind Kind, shell int, a, b, c Real)

// Tracer follows rays through a Scene. It holds no per-ray state and is safe for concurrent use.
type Tracer struct {
	Scene    *Scene
	MaxSteps int
	Cull     bool
	Observer Observer
}

// Option configures a Tracer.
type Option func(*Tracer)

// WithMaxSteps bounds the number of surface events per ray.
func WithMaxSteps(n int) Option {
	return func(t *Tracer) {
		if n > 0 {
			t.MaxSteps = n
		}
	}
}

// WithObserver installs a coefficient hook.
func WithObserver(o Observer) Option {
	return func(t *Tracer) { t.Observer = o }
}

// WithoutCull disables the bounding-box pre-cull.
func WithoutCull() Option {
	return func(t *Tracer) { t.Cull = false }
}

// NewTracer returns a tracer with the default step budget.
func NewTracer(scene *Scene, opts ...Option) *Tracer {
	t := &Tracer{Scene: scene, MaxSteps: MaxSteps, Cull: Cull}
	for _, o := range opts {
		o(t)
	}
	if !t.Cull {
		DebugLogOnce("bounding-box pre-cull disabled")
	}
	return t
}

// Trace follows one ray until it hits the sensor, misses, is absorbed or runs out of steps.
// The direction does not have to be unit-length; a zero or non-finite ray is an error.
func (tr *Tracer) Trace(origin, dir Vector3) (Trace, error) {
	if !origin.finite() || !dir.finite() {
		return Trace{}, fmt.Errorf("%w: non-finite origin %+v or direction %+v", ErrDegenerateRay, origin, dir)
	}
	D, ok := dir.unit()
	if !ok {
		return Trace{}, fmt.Errorf("%w: zero-length direction", ErrDegenerateRay)
	}
	O := origin
	scene := tr.Scene
	out := Trace{Records: make([]HitRecord, 0, 4), State: Tracing}

	for step := 0; step < tr.MaxSteps; step++ {
		// Sensor competes with the shells every step.
		tPlane, P := planeHit(scene, O, D)
		hit, okShell := nearestShellHit(scene, O, D, tPlane, tr.Cull, tr.Observer)

		if !okShell {
			if !isFinite(tPlane) {
				out.Records = append(out.Records, HitRecord{
					Kind:        KindMiss,
					Shell:       -1,
					T:           math.Inf(1),
					Point:       O,
					Disposition: NoIntersection,
				})
				out.State = Missed
				return out, nil
			}
			rec := HitRecord{Kind: KindSensor, Shell: -1, T: tPlane, Point: P, Disposition: WithinSensorBounds}
			ix, iy, inside := scene.Sensor.PixelIndex(P)
			if !inside {
				rec.Disposition = OutOfSensorBounds
			} else if scene.Sensor.Pixelated() {
				rec.PixelX, rec.PixelY, rec.HasPixel = ix, iy, true
			}
			out.Records = append(out.Records, rec)
			out.State = HitSensor
			return out, nil
		}

		N := hit.normal
		rec := HitRecord{
			Kind:         hit.kind,
			Shell:        hit.shell,
			T:            hit.t,
			Point:        hit.point,
			Normal:       N,
			IncidenceDeg: incidenceDeg(N, D),
		}
		if !reflectsOff(N, D) {
			rec.Disposition = Absorbed
			out.Records = append(out.Records, rec)
			out.State = AbsorbedAtShell
			return out, nil
		}
		rec.Disposition = Reflected
		out.Records = append(out.Records, rec)
		out.State = ReflectedAtShell

		D = reflect3(D, N).Norm()
		O = At(hit.point, D, bumpShift)
	}

	out.Records = append(out.Records, HitRecord{
		Kind:        KindStepLimit,
		Shell:       -1,
		Point:       O,
		Disposition: StepLimitReached,
	})
	out.State = StepLimitExceeded
	return out, nil
}
