package plot

import (
	"fmt"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// OneAxis plots every series on a single shared axis and saves the figure
// when a document name is configured.
//
// Each Series fully describes one curve: data, label, color, line style and
// marker. Legend placement, fonts, tick count and optional y limits come from
// the Options.
func OneAxis(series []Series, o Options) error {
	o = o.withDefaults()
	p, err := newAxes(series, o)
	if err != nil {
		return err
	}
	return finish(p, o)
}

// OneAxisVLines is OneAxis with vertical reference lines at the given x
// positions. Lines span the y extent of the data, or the configured y limits.
func OneAxisVLines(series []Series, vlines []VLine, o Options) error {
	o = o.withDefaults()
	p, err := newAxes(series, o)
	if err != nil {
		return err
	}
	ymin, ymax := yExtent(series, o)
	for _, v := range vlines {
		ln, err := plotter.NewLine(plotter.XYs{{X: v.X, Y: ymin}, {X: v.X, Y: ymax}})
		if err != nil {
			return fmt.Errorf("vline at %v: %v", v.X, err)
		}
		ln.Color = seriesColor(v.Color, 1)
		ln.Width = vg.Points(o.LineWidth)
		ln.Dashes = dashPattern(v.LineStyle)
		p.Add(ln)
	}
	return finish(p, o)
}

// OneAxisPoints plots the series with a shared marker (Options.Marker) and
// overlays isolated highlighted points, each with its own marker, size and
// color and its own legend entry.
func OneAxisPoints(series []Series, points []Point, o Options) error {
	o = o.withDefaults()
	shared := make([]Series, len(series))
	for i, s := range series {
		s.Marker = o.Marker
		shared[i] = s
	}
	p, err := newAxes(shared, o)
	if err != nil {
		return err
	}
	for _, pt := range points {
		sc, err := plotter.NewScatter(plotter.XYs{{X: pt.X, Y: pt.Y}})
		if err != nil {
			return fmt.Errorf("point %q: %v", pt.Label, err)
		}
		size := pt.Size
		if size == 0 {
			size = o.MarkerSize
		}
		sc.GlyphStyle.Shape = glyphShape(pt.Marker)
		sc.GlyphStyle.Color = seriesColor(pt.Color, 1)
		sc.GlyphStyle.Radius = vg.Points(size / 2)
		p.Add(sc)
		if pt.Label != "" {
			p.Legend.Add(pt.Label, sc)
		}
	}
	return finish(p, o)
}

// newAxes builds the single-axis figure shared by the one-axis helpers.
func newAxes(series []Series, o Options) (*gplot.Plot, error) {
	p := gplot.New()
	applyFrame(p, o)
	if err := addSeries(p, series, o); err != nil {
		return nil, err
	}
	applyXTicks(p, series, o)
	applyLegendLoc(&p.Legend, o.LegendLoc)
	return p, nil
}

// applyFrame sets labels, title, fonts and y limits.
func applyFrame(p *gplot.Plot, o Options) {
	p.Title.Text = o.Title
	p.Title.TextStyle.Font.Size = vg.Points(o.FontSize)
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(o.FontSize)
	p.Y.Label.TextStyle.Font.Size = vg.Points(o.FontSize)
	p.X.Tick.Label.Font.Size = vg.Points(o.FontSize)
	p.Y.Tick.Label.Font.Size = vg.Points(o.FontSize)
	p.Legend.TextStyle.Font.Size = vg.Points(o.LegendSize)
	if len(o.YLim) == 2 {
		p.Y.Min, p.Y.Max = o.YLim[0], o.YLim[1]
	}
}

// addSeries draws each curve in the order the data appears: the connecting
// line when the line style asks for one, the markers when the marker code
// does, and one merged legend entry per labeled series.
func addSeries(p *gplot.Plot, series []Series, o Options) error {
	for _, s := range series {
		pts, err := s.xys()
		if err != nil {
			return err
		}
		col := seriesColor(s.Color, 1)
		var thumbs []gplot.Thumbnailer
		if hasLine(s.LineStyle) {
			ln, err := plotter.NewLine(pts)
			if err != nil {
				return fmt.Errorf("series %q: %v", s.Label, err)
			}
			ln.Color = col
			ln.Width = vg.Points(o.LineWidth)
			ln.Dashes = dashPattern(s.LineStyle)
			p.Add(ln)
			thumbs = append(thumbs, ln)
		}
		if shape := glyphShape(s.Marker); shape != nil {
			sc, err := plotter.NewScatter(pts)
			if err != nil {
				return fmt.Errorf("series %q: %v", s.Label, err)
			}
			sc.GlyphStyle.Shape = shape
			sc.GlyphStyle.Color = col
			sc.GlyphStyle.Radius = vg.Points(o.MarkerSize / 2)
			p.Add(sc)
			thumbs = append(thumbs, sc)
		}
		if s.Label != "" && len(thumbs) > 0 {
			p.Legend.Add(s.Label, thumbs...)
		}
	}
	return nil
}

// applyXTicks installs the max-N tick locator and, for scientific tick style,
// factors the decade offset out of the labels and into the axis title.
func applyXTicks(p *gplot.Plot, series []Series, o Options) {
	ticker := gplot.Ticker(maxTicker{n: o.XTicksLimit})
	if o.XTickStyle == "sci" || o.XTickStyle == "scientific" {
		xmin, xmax := xRange(series)
		if exp := decadeOffset(xmin, xmax); exp != 0 {
			ticker = sciTicker{base: ticker, exp: exp}
			p.X.Label.Text = fmt.Sprintf("%s ×1e%d", p.X.Label.Text, exp)
		}
	}
	p.X.Tick.Marker = ticker
}

// yExtent is the vertical span reference lines are drawn over.
func yExtent(series []Series, o Options) (float64, float64) {
	if len(o.YLim) == 2 {
		return o.YLim[0], o.YLim[1]
	}
	return yRange(series)
}

// finish saves the figure when a document name is configured.
func finish(p *gplot.Plot, o Options) error {
	if o.Name == "" {
		return nil
	}
	return save(p, o.Name)
}
