package wolter

import (
	"fmt"
	"io"
)

// Kind is the surface a trace event happened at.
type Kind uint8

const (
	KindParaboloid  Kind = iota // front mirror segment
	KindHyperboloid             // rear mirror segment
	KindSensor                  // focal plane
	KindMiss                    // nothing ahead
	KindStepLimit               // bounce budget exhausted
)

func (k Kind) String() string {
	switch k {
	case KindParaboloid:
		return "paraboloid"
	case KindHyperboloid:
		return "hyperboloid"
	case KindSensor:
		return "sensor"
	case KindMiss:
		return "miss"
	case KindStepLimit:
		return "step-limit"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Disposition says what happened to the ray at an event.
type Disposition uint8

const (
	Reflected          Disposition = iota // inward face, ray continues
	Absorbed                              // outward face, ray stops
	WithinSensorBounds                    // sensor hit on the physical detector
	OutOfSensorBounds                     // sensor plane hit outside the detector
	NoIntersection                        // nothing ahead
	StepLimitReached                      // too many bounces
)

func (d Disposition) String() string {
	switch d {
	case Reflected:
		return "reflected"
	case Absorbed:
		return "absorbed"
	case WithinSensorBounds:
		return "within-sensor-bounds"
	case OutOfSensorBounds:
		return "out-of-bounds"
	case NoIntersection:
		return "no-intersection"
	case StepLimitReached:
		return "step-limit-exceeded"
	}
	return fmt.Sprintf("disposition(%d)", uint8(d))
}

// State of the bounce controller.
type State uint8

const (
	Tracing State = iota
	ReflectedAtShell
	AbsorbedAtShell
	HitSensor
	Missed
	StepLimitExceeded
)

func (s State) String() string {
	switch s {
	case Tracing:
		return "Tracing"
	case ReflectedAtShell:
		return "ReflectedAtShell"
	case AbsorbedAtShell:
		return "AbsorbedAtShell"
	case HitSensor:
		return "HitSensor"
	case Missed:
		return "Missed"
	case StepLimitExceeded:
		return "StepLimitExceeded"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Terminal reports whether the state ends a trace.
func (s State) Terminal() bool {
	return s != Tracing && s != ReflectedAtShell
}

// HitRecord is one trace event. Shell is -1 and Normal/IncidenceDeg are zero for
// sensor, miss and step-limit events; T is +Inf for a miss.
type HitRecord struct {
	Kind         Kind
	Shell        int
	T            Real
	Point        Vector3
	Normal       Vector3
	IncidenceDeg Real
	Disposition  Disposition
	PixelX       int
	PixelY       int
	HasPixel     bool
}

// OnShell reports whether the event happened on a mirror segment.
func (h HitRecord) OnShell() bool {
	return h.Kind == KindParaboloid || h.Kind == KindHyperboloid
}

func fmt3(v Vector3) string { return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z) }

func (h HitRecord) String() string {
	switch h.Kind {
	case KindParaboloid, KindHyperboloid:
		tag := "PAR"
		if h.Kind == KindHyperboloid {
			tag = "HYP"
		}
		return fmt.Sprintf("%s#%02d  t=%.6f  p=%s  n=%s  inc=%.3f°  -> %s", tag, h.Shell, h.T, fmt3(h.Point), fmt3(h.Normal), h.IncidenceDeg, h.Disposition)
	case KindSensor:
		s := fmt.Sprintf("SENSOR  t=%.6f  p=%s  %s", h.T, fmt3(h.Point), h.Disposition)
		if h.HasPixel {
			s += fmt.Sprintf("  (pixel ix=%d, iy=%d)", h.PixelX, h.PixelY)
		}
		return s
	case KindMiss:
		return "MISS    " + h.Disposition.String()
	default:
		return fmt.Sprintf("%-7s %s at %s", h.Kind, h.Disposition, fmt3(h.Point))
	}
}

// Trace is the full ordered history of one ray.
type Trace struct {
	Records []HitRecord
	State   State
}

// Terminal is the last record.
func (tr Trace) Terminal() HitRecord {
	if len(tr.Records) == 0 {
		return HitRecord{Shell: -1}
	}
	return tr.Records[len(tr.Records)-1]
}

// FirstShell returns the first shell index hit on a surface of the given kind.
func (tr Trace) FirstShell(k Kind) (int, bool) {
	for _, r := range tr.Records {
		if r.Kind == k {
			return r.Shell, true
		}
	}
	return -1, false
}

// SensorHit returns the sensor record if the ray reached the focal plane.
func (tr Trace) SensorHit() (HitRecord, bool) {
	if tr.State != HitSensor {
		return HitRecord{}, false
	}
	return tr.Terminal(), true
}

// Bounces counts the reflections.
func (tr Trace) Bounces() int {
	n := 0
	for _, r := range tr.Records {
		if r.Disposition == Reflected {
			n++
		}
	}
	return n
}

// Format writes the numbered history followed by a short summary.
func (tr Trace) Format(w io.Writer) error {
	for i, r := range tr.Records {
		if _, err := fmt.Fprintf(w, "[%d] %s\n", i+1, r); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "------------------------------------------------------------"); err != nil {
		return err
	}
	if i, ok := tr.FirstShell(KindParaboloid); ok {
		fmt.Fprintf(w, "First paraboloid shell hit: %d\n", i)
	}
	if i, ok := tr.FirstShell(KindHyperboloid); ok {
		fmt.Fprintf(w, "First hyperboloid shell hit: %d\n", i)
	}
	if h, ok := tr.SensorHit(); ok {
		_, err := fmt.Fprintf(w, "Hit sensor at %s\n", fmt3(h.Point))
		return err
	}
	_, err := fmt.Fprintln(w, "Did not reach the sensor.")
	return err
}
