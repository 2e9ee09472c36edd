package plot

import (
	"fmt"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrorBars plots each series as markers with capped y error bars, connected
// by a solid line. Options.Alpha sets the transparency of the drawn data.
func ErrorBars(series []ErrorSeries, o Options) error {
	o = o.withDefaults()
	p := gplot.New()
	applyFrame(p, o)
	for i := range series {
		s := series[i]
		s.LineStyle = "-"
		if err := addErrorSeries(p, s, o); err != nil {
			return err
		}
	}
	applyLegendLoc(&p.Legend, o.LegendLoc)
	return finish(p, o)
}

// ErrorBarsWithFits plots error-bar data overlaid with pre-computed fit
// curves. The data is drawn half-transparent unless Options.Alpha says
// otherwise, so the fit lines stay visible on top of dense point clouds.
func ErrorBarsWithFits(series []ErrorSeries, fits []Fit, o Options) error {
	if o.Alpha == 0 {
		o.Alpha = 0.5
	}
	o = o.withDefaults()
	p := gplot.New()
	applyFrame(p, o)
	for _, s := range series {
		if err := addErrorSeries(p, s, o); err != nil {
			return err
		}
	}
	for _, f := range fits {
		pts, err := f.xys()
		if err != nil {
			return err
		}
		ln, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("fit %q: %v", f.Label, err)
		}
		ln.Color = seriesColor(f.Color, 1)
		ln.Width = vg.Points(o.LineWidth)
		p.Add(ln)
		if f.Label != "" {
			p.Legend.Add(f.Label, ln)
		}
	}
	var xs []Series
	for _, s := range series {
		xs = append(xs, Series{X: s.X})
	}
	for _, f := range fits {
		xs = append(xs, Series{X: f.X})
	}
	applyXTicks(p, xs, o)
	applyLegendLoc(&p.Legend, o.LegendLoc)
	return finish(p, o)
}

// addErrorSeries draws one error series: connecting line per its line style,
// shared marker, and capped error bars, all with the configured transparency.
func addErrorSeries(p *gplot.Plot, s ErrorSeries, o Options) error {
	data, err := s.points()
	if err != nil {
		return err
	}
	col := seriesColor(s.Color, o.Alpha)
	var thumbs []gplot.Thumbnailer
	if hasLine(s.LineStyle) {
		ln, err := plotter.NewLine(data.XYs)
		if err != nil {
			return fmt.Errorf("series %q: %v", s.Label, err)
		}
		ln.Color = col
		ln.Width = vg.Points(o.LineWidth)
		ln.Dashes = dashPattern(s.LineStyle)
		p.Add(ln)
		thumbs = append(thumbs, ln)
	}
	if shape := glyphShape(o.Marker); shape != nil {
		sc, err := plotter.NewScatter(data.XYs)
		if err != nil {
			return fmt.Errorf("series %q: %v", s.Label, err)
		}
		sc.GlyphStyle.Shape = shape
		sc.GlyphStyle.Color = col
		sc.GlyphStyle.Radius = vg.Points(o.MarkerSize / 2)
		p.Add(sc)
		thumbs = append(thumbs, sc)
	}
	bars, err := plotter.NewYErrorBars(data)
	if err != nil {
		return fmt.Errorf("series %q: %v", s.Label, err)
	}
	bars.LineStyle.Color = col
	bars.LineStyle.Width = vg.Points(o.LineWidth)
	bars.CapWidth = vg.Points(o.CapSize)
	p.Add(bars)
	if s.Label != "" && len(thumbs) > 0 {
		p.Legend.Add(s.Label, thumbs...)
	}
	return nil
}
