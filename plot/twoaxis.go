package plot

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// TwoAxes plots the left and right series lists against twin y axes sharing
// one x axis. Axis titles take the configured left/right colors so the reader
// can tell which curves belong to which scale, and both axes feed a single
// merged legend. Vertical reference lines span the left data's y extent.
//
// Twin-axis figures are rendered as PNG documents.
func TwoAxes(left, right []Series, vlines []VLine, o Options) error {
	o = o.withDefaults()
	graph := chart.Chart{
		Title:      o.Title,
		TitleStyle: chart.Style{FontSize: o.FontSize},
		Width:      1280,
		Height:     720,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 40,
			},
			FillColor: drawing.ColorWhite,
		},
		XAxis: chart.XAxis{
			Name:      o.XLabel,
			NameStyle: chart.Style{FontSize: o.FontSize},
			Style:     chart.Style{FontSize: o.FontSize},
		},
		YAxis: chart.YAxis{
			Name:      o.YLabel,
			NameStyle: chart.Style{FontSize: o.FontSize, FontColor: parseColor(o.LeftColor)},
			Style:     chart.Style{FontSize: o.FontSize},
		},
		YAxisSecondary: chart.YAxis{
			Name:      o.YLabelRight,
			NameStyle: chart.Style{FontSize: o.FontSize, FontColor: parseColor(o.RightColor)},
			Style:     chart.Style{FontSize: o.FontSize},
		},
	}
	if o.HideXTicks {
		graph.XAxis.ValueFormatter = func(interface{}) string { return "" }
	}
	for _, s := range left {
		cs, err := continuousSeries(s, chart.YAxisPrimary, o)
		if err != nil {
			return err
		}
		graph.Series = append(graph.Series, cs)
	}
	for _, s := range right {
		cs, err := continuousSeries(s, chart.YAxisSecondary, o)
		if err != nil {
			return err
		}
		graph.Series = append(graph.Series, cs)
	}
	if len(vlines) > 0 {
		ymin, ymax := yRange(left)
		for _, v := range vlines {
			graph.Series = append(graph.Series, chart.ContinuousSeries{
				XValues: []float64{v.X, v.X},
				YValues: []float64{ymin, ymax},
				Style: chart.Style{
					StrokeColor:     parseColor(v.Color),
					StrokeWidth:     o.LineWidth,
					StrokeDashArray: strokeDashes(v.LineStyle),
				},
			})
		}
	}
	graph.Elements = []chart.Renderable{
		chart.Legend(&graph, chart.Style{FontSize: o.LegendSize}),
	}
	if o.Name == "" {
		return nil
	}
	f, err := os.Create(outputPath(o.Name + ".png"))
	if err != nil {
		return fmt.Errorf("error creating chart file: %v", err)
	}
	if err := graph.Render(chart.PNG, f); err != nil {
		f.Close()
		return fmt.Errorf("error rendering chart: %v", err)
	}
	return f.Close()
}

// continuousSeries maps one descriptor onto a go-chart series bound to the
// given axis.
func continuousSeries(s Series, axis chart.YAxisType, o Options) (chart.Series, error) {
	if len(s.X) != len(s.Y) {
		return nil, fmt.Errorf("series %q: x has %d values, y has %d", s.Label, len(s.X), len(s.Y))
	}
	style := chart.Style{
		StrokeColor:     parseColor(s.Color),
		StrokeWidth:     o.LineWidth,
		StrokeDashArray: strokeDashes(s.LineStyle),
	}
	if glyphShape(s.Marker) != nil {
		style.DotColor = parseColor(s.Color)
		style.DotWidth = o.MarkerSize / 2
	}
	return chart.ContinuousSeries{
		Name:    s.Label,
		XValues: s.X,
		YValues: s.Y,
		YAxis:   axis,
		Style:   style,
	}, nil
}
