package plot

import (
	"math"
	"strconv"

	gplot "gonum.org/v1/plot"
)

// maxTicker places at most N major ticks on "nice" step boundaries: steps are
// always 1, 2 or 5 times a power of ten.
type maxTicker struct {
	n int
}

func (t maxTicker) Ticks(min, max float64) []gplot.Tick {
	if !(max > min) {
		return nil
	}
	n := t.n
	if n < 2 {
		n = 2
	}
	step := niceStep((max - min) / float64(n))
	var ticks []gplot.Tick
	for v := math.Ceil(min/step) * step; v <= max+step*1e-9; v += step {
		ticks = append(ticks, gplot.Tick{Value: v, Label: formatTick(v)})
	}
	return ticks
}

// niceStep rounds a raw step up to the nearest 1, 2 or 5 multiple of a power
// of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	magnitude := math.Pow(10, math.Floor(math.Log10(raw)))
	normalized := raw / magnitude
	switch {
	case normalized <= 1:
		return magnitude
	case normalized <= 2:
		return 2 * magnitude
	case normalized <= 5:
		return 5 * magnitude
	}
	return 10 * magnitude
}

// sciTicker rescales another ticker's labels by a decade offset. The offset
// multiplier itself is appended to the axis label by the caller.
type sciTicker struct {
	base gplot.Ticker
	exp  int
}

func (t sciTicker) Ticks(min, max float64) []gplot.Tick {
	ticks := t.base.Ticks(min, max)
	scale := math.Pow(10, -float64(t.exp))
	for i := range ticks {
		if ticks[i].Label == "" {
			continue
		}
		ticks[i].Label = formatTick(ticks[i].Value * scale)
	}
	return ticks
}

// decadeOffset returns the power of ten a scientific-notation axis factors
// out of its tick labels. Zero means the labels stay as they are.
func decadeOffset(min, max float64) int {
	m := math.Max(math.Abs(min), math.Abs(max))
	if m == 0 || math.IsInf(m, 0) || math.IsNaN(m) {
		return 0
	}
	e := int(math.Floor(math.Log10(m)))
	if e == 0 {
		return 0
	}
	return e
}

func formatTick(v float64) string {
	// Collapse -0 and float noise around zero.
	if math.Abs(v) < 1e-12 {
		v = 0
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
