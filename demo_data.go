package main

import (
	"math"

	"github.com/pivolan/plotfuncs/plot"
)

const demoPoints = 200

func sine(t float64) float64 {
	return math.Sin(2 * math.Pi * t / 3)
}

func linspace(from, to float64, n int) []float64 {
	xs := make([]float64, n)
	step := (to - from) / float64(n-1)
	for i := range xs {
		xs[i] = from + float64(i)*step
	}
	return xs
}

func apply(xs []float64, f func(float64) float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys
}

// waveSeries is the shared demo data: a sine, a phase-shifted cosine and a
// damped oscillation, colored from the default palette.
func waveSeries() []plot.Series {
	xs := linspace(0, 6, demoPoints)
	scheme := plot.Scheme()
	return []plot.Series{
		{
			X: xs, Y: apply(xs, sine),
			Label: "sin", Color: plot.SchemeColor(scheme, 0), LineStyle: "-",
		},
		{
			X: xs, Y: apply(xs, func(t float64) float64 { return math.Cos(2*math.Pi*t/3 + 0.5) }),
			Label: "cos", Color: plot.SchemeColor(scheme, 4), LineStyle: "--",
		},
		{
			X: xs, Y: apply(xs, func(t float64) float64 { return math.Exp(-t/3) * sine(t) }),
			Label: "damped", Color: plot.SchemeColor(scheme, 7), LineStyle: "-.",
		},
	}
}

// noisySeries is sparse "measurement" data with a deterministic wobble
// standing in for noise, plus a per-point error estimate.
func noisySeries() []plot.ErrorSeries {
	xs := linspace(0, 6, 25)
	scheme := plot.Scheme02()
	var out []plot.ErrorSeries
	for i, f := range []func(float64) float64{sine, math.Sqrt} {
		ys := make([]float64, len(xs))
		errs := make([]float64, len(xs))
		for j, x := range xs {
			wobble := 0.08 * math.Sin(13*x+float64(i))
			ys[j] = f(x) + wobble
			errs[j] = 0.05 + math.Abs(wobble)
		}
		out = append(out, plot.ErrorSeries{
			X: xs, Y: ys, YErr: errs,
			Label: []string{"run 1", "run 2"}[i],
			Color: plot.SchemeColor(scheme, i*4),
		})
	}
	return out
}

// fitCurves are the smooth counterparts of noisySeries.
func fitCurves() []plot.Fit {
	xs := linspace(0, 6, demoPoints)
	scheme := plot.Scheme02()
	return []plot.Fit{
		{X: xs, Y: apply(xs, sine), Label: "run 1 fit", Color: plot.SchemeColor(scheme, 2)},
		{X: xs, Y: apply(xs, math.Sqrt), Label: "run 2 fit", Color: plot.SchemeColor(scheme, 6)},
	}
}

// twinSeries pairs an oscillation with its cumulative energy, two quantities
// on very different scales.
func twinSeries() (left, right []plot.Series) {
	xs := linspace(0, 6, demoPoints)
	amp := apply(xs, sine)
	energy := make([]float64, len(xs))
	sum := 0.0
	for i, a := range amp {
		sum += a * a * 100
		energy[i] = sum
	}
	left = []plot.Series{{X: xs, Y: amp, Label: "amplitude", Color: "red", LineStyle: "-"}}
	right = []plot.Series{{X: xs, Y: energy, Label: "energy", Color: "blue", LineStyle: "--"}}
	return left, right
}
