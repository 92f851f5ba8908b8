// Package measureplot renders a cost-versus-start scatter for one scored
// segment length to an image file, backing the compile-measures
// subcommand's visual summary of a batch run. This is the one place in the
// repository that touches gonum.org/v1/plot, rather than spreading its
// considerable rendering-stack surface (git.sr.ht/~sbinet/gg,
// ajstarks/svgo, go-fonts/liberation, go-latex/latex, go-pdf/fpdf,
// golang/freetype, golang.org/x/image) across every caller.
package measureplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"tdscan/internal/topk"
)

// Point is one (start, cost) sample for a fixed segment length.
type Point struct {
	Start uint
	Cost  float64
}

// FromResults extracts every Result with the given segment length into
// Points, in the order the Results are given (they are not sorted by start).
func FromResults(results []topk.Result, segmentLength uint) []Point {
	var out []Point
	for _, r := range results {
		if r.SegmentLength == segmentLength {
			out = append(out, Point{Start: r.Start, Cost: r.Cost})
		}
	}
	return out
}

// Render draws points as a scatter of cost against start position and
// writes it to path in whatever image format path's extension implies
// (png, svg, pdf, ...).
func Render(title string, points []Point, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "start"
	p.Y.Label.Text = "cost"

	pts := make(plotter.XYs, len(points))
	for i, pt := range points {
		pts[i].X = float64(pt.Start)
		pts[i].Y = pt.Cost
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("measureplot: building scatter: %w", err)
	}
	p.Add(scatter)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("measureplot: saving %s: %w", path, err)
	}
	return nil
}
