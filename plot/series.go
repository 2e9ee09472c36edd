package plot

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
)

// Series fully describes one renderable curve.
type Series struct {
	X, Y      []float64
	Label     string
	Color     string
	LineStyle string
	Marker    string
}

// ErrorSeries is a curve with a symmetric y error per point.
type ErrorSeries struct {
	X, Y, YErr []float64
	Label      string
	Color      string
	LineStyle  string
}

// Point is a single highlighted point, independent of any series.
type Point struct {
	X, Y   float64
	Label  string
	Marker string
	Size   float64
	Color  string
}

// VLine is a vertical reference line, unrelated to any data series.
type VLine struct {
	X         float64
	Color     string
	LineStyle string
}

// Fit is a pre-computed fit curve overlaid on error-bar data.
type Fit struct {
	X, Y  []float64
	Label string
	Color string
}

func (s Series) xys() (plotter.XYs, error) {
	if len(s.X) != len(s.Y) {
		return nil, fmt.Errorf("series %q: x has %d values, y has %d", s.Label, len(s.X), len(s.Y))
	}
	pts := make(plotter.XYs, len(s.X))
	for i := range s.X {
		pts[i].X, pts[i].Y = s.X[i], s.Y[i]
	}
	return pts, nil
}

// errPoints carries the zipped data for an error-bar plotter.
type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

func (e ErrorSeries) points() (errPoints, error) {
	if len(e.X) != len(e.Y) {
		return errPoints{}, fmt.Errorf("series %q: x has %d values, y has %d", e.Label, len(e.X), len(e.Y))
	}
	if len(e.YErr) != len(e.Y) {
		return errPoints{}, fmt.Errorf("series %q: y has %d values, yerr has %d", e.Label, len(e.Y), len(e.YErr))
	}
	pts := make(plotter.XYs, len(e.X))
	errs := make(plotter.YErrors, len(e.X))
	for i := range e.X {
		pts[i].X, pts[i].Y = e.X[i], e.Y[i]
		errs[i].Low, errs[i].High = e.YErr[i], e.YErr[i]
	}
	return errPoints{pts, errs}, nil
}

func (f Fit) xys() (plotter.XYs, error) {
	return Series{X: f.X, Y: f.Y, Label: f.Label}.xys()
}

// xRange returns the x extent across every series.
func xRange(series []Series) (min, max float64) {
	first := true
	for _, s := range series {
		for _, x := range s.X {
			if first || x < min {
				min = x
			}
			if first || x > max {
				max = x
			}
			first = false
		}
	}
	return min, max
}

// yRange returns the y extent across every series.
func yRange(series []Series) (min, max float64) {
	first := true
	for _, s := range series {
		for _, y := range s.Y {
			if first || y < min {
				min = y
			}
			if first || y > max {
				max = y
			}
			first = false
		}
	}
	return min, max
}
