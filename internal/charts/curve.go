package charts

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"epi-ca/internal/sims/epidemic"
)

// ErrTooFewPoints is returned when a curve has fewer than two generations.
var ErrTooFewPoints = errors.New("curve needs at least two generations")

// Curve collects per-generation state counts of a single run.
type Curve struct {
	Generations []float64
	Counts      [epidemic.NumStates][]float64
	Cases       []float64
}

// Observe appends the counts of the current generation.
func (c *Curve) Observe(m *epidemic.Model) {
	c.Generations = append(c.Generations, float64(m.Generation()))
	counts := m.Counts()
	for i, v := range counts {
		c.Counts[i] = append(c.Counts[i], float64(v))
	}
	c.Cases = append(c.Cases, float64(m.TotalCases()))
}

// Render draws one line per state plus the cumulative case count as a PNG.
func (c *Curve) Render(w io.Writer, title string) error {
	if len(c.Generations) < 2 {
		return ErrTooFewPoints
	}
	series := make([]chart.Series, 0, epidemic.NumStates+1)
	for _, s := range epidemic.States() {
		series = append(series, chart.ContinuousSeries{
			Name:    s.String(),
			XValues: c.Generations,
			YValues: c.Counts[s],
			Style: chart.Style{
				StrokeColor: stateColor(s),
				StrokeWidth: 2,
			},
		})
	}
	series = append(series, chart.ContinuousSeries{
		Name:    "total cases",
		XValues: c.Generations,
		YValues: c.Cases,
		Style: chart.Style{
			StrokeColor:     drawing.Color{R: 255, G: 165, B: 0, A: 255},
			StrokeWidth:     2,
			StrokeDashArray: []float64{5, 3},
		},
	})

	graph := chart.Chart{
		Title:  title,
		Width:  900,
		Height: 450,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name: "generation",
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name: "individuals",
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.LegendLeft(&graph)}
	return graph.Render(chart.PNG, w)
}

// Save renders the curve into a PNG file at path.
func (c *Curve) Save(path, title string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.Render(f, title); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}

func stateColor(s epidemic.State) drawing.Color {
	c, err := epidemic.ColorOf(s)
	if err != nil {
		return chart.ColorBlack
	}
	// Pure green and cyan wash out on a white background.
	switch s {
	case epidemic.Healthy:
		return drawing.Color{R: 0, G: 170, B: 0, A: 255}
	case epidemic.Immune:
		return drawing.Color{R: 0, G: 170, B: 190, A: 255}
	}
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
