package wolter

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// SavePSFPlot writes a scatter plot of sensor hit points (x, y in mm) as an image; the format follows the extension.
func SavePSFPlot(points []Vector3, path, title string) error {
	if len(points) == 0 {
		return errors.New("no sensor hits to plot")
	}
	xys := make(plotter.XYs, 0, len(points))
	for _, p := range points {
		xys = append(xys, plotter.XY{X: p.X, Y: p.Y})
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (mm)"
	p.Y.Label.Text = "y (mm)"
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("psf scatter: %w", err)
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(0.5)
	p.Add(sc, plotter.NewGrid())
	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return err
	}
	fmt.Printf("[PLOT] wrote %s (%d points)\n", path, len(points))
	return nil
}
