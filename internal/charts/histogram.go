package charts

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoRuns is returned when there is nothing to plot.
var ErrNoRuns = errors.New("no runs to plot")

// Histogram plots the distribution of per-run case totals and saves it to
// path. The image format follows the file extension.
func Histogram(totals []int, bins int, path, title string) error {
	if len(totals) == 0 {
		return ErrNoRuns
	}
	if bins < 1 {
		bins = 20
	}
	vals := make(plotter.Values, len(totals))
	for i, v := range totals {
		vals[i] = float64(v)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "total cases"
	p.Y.Label.Text = "runs"

	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return fmt.Errorf("histogram: %w", err)
	}
	p.Add(h)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
