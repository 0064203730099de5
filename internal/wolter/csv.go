package wolter

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
)

var csvHeader = []string{
	"ray_id", "emit_x_mm", "emit_y_mm", "emit_z_mm", "dir_x", "dir_y", "dir_z",
	"hit_sensor", "hit_x_mm", "hit_y_mm", "hit_z_mm", "history_len", "history_flat",
}

// ReadRaysCSV parses a photon list: ray_id,emit_x_mm,emit_y_mm,emit_z_mm,dir_x,dir_y,dir_z[,...].
// Comment lines (#), the header and malformed rows are skipped.
func ReadRaysCSV(r io.Reader) ([]Ray, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rays []Ray
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				continue
			}
			return nil, err
		}
		if len(rec) < 7 {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			continue // header or bad id
		}
		var v [6]Real
		ok := true
		for i := range v {
			v[i], err = strconv.ParseFloat(strings.TrimSpace(rec[i+1]), 64)
			if err != nil || !isFinite(v[i]) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		rays = append(rays, Ray{ID: id, Origin: Vector3{v[0], v[1], v[2]}, Direction: Vector3{v[3], v[4], v[5]}})
	}
	DebugLog("Read %d rays from CSV", len(rays))
	return rays, nil
}

// CSVWriter writes one row per traced ray.
type CSVWriter struct {
	w      *csv.Writer
	header bool
}

// NewCSVWriter wraps w; the header is written with the first row.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

func ff(x Real) string { return strconv.FormatFloat(x, 'f', 6, 64) }

// Write appends the row for r and its trace. history_flat lists every event as kind:shell:x:y:z separated by |.
func (c *CSVWriter) Write(r Ray, tr Trace) error {
	if !c.header {
		if err := c.w.Write(csvHeader); err != nil {
			return err
		}
		c.header = true
	}
	hit, ok := tr.SensorHit()
	hitS, hx, hy, hz := "0", "", "", ""
	if ok {
		// plane hits outside the detector keep their point but are not sensor hits
		hx, hy, hz = ff(hit.Point.X), ff(hit.Point.Y), ff(hit.Point.Z)
		if hit.Disposition == WithinSensorBounds {
			hitS = "1"
		}
	}
	parts := make([]string, 0, len(tr.Records))
	for _, h := range tr.Records {
		parts = append(parts, h.Kind.String()+":"+strconv.Itoa(h.Shell)+":"+ff(h.Point.X)+":"+ff(h.Point.Y)+":"+ff(h.Point.Z))
	}
	return c.w.Write([]string{
		strconv.Itoa(r.ID),
		ff(r.Origin.X), ff(r.Origin.Y), ff(r.Origin.Z),
		ff(r.Direction.X), ff(r.Direction.Y), ff(r.Direction.Z),
		hitS, hx, hy, hz,
		strconv.Itoa(len(tr.Records)),
		strings.Join(parts, "|"),
	})
}

// Flush flushes buffered rows and reports any write error.
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}
