package plot

import (
	"fmt"
	"os"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

// Subplots draws one panel per series, stacked in a single column inside one
// document. The figure height scales with the number of panels. Every panel
// gets the shared axis labels, its own legend and the max-N tick locator;
// panel tick labels use OffsetTextSize.
func Subplots(series []Series, o Options) error {
	o = o.withDefaults()
	if len(series) == 0 {
		return fmt.Errorf("no series to plot")
	}
	plots := make([][]*gplot.Plot, len(series))
	for i, s := range series {
		p := gplot.New()
		applyFrame(p, o)
		p.Title.Text = ""
		p.X.Tick.Label.Font.Size = vg.Points(o.OffsetTextSize)
		p.Y.Tick.Label.Font.Size = vg.Points(o.OffsetTextSize)
		if err := addSeries(p, []Series{s}, o); err != nil {
			return err
		}
		applyXTicks(p, []Series{s}, o)
		applyLegendLoc(&p.Legend, o.LegendLoc)
		plots[i] = []*gplot.Plot{p}
	}
	if o.Name == "" {
		return nil
	}
	width := 8 * vg.Inch
	height := vg.Length(len(series)) * 4 * vg.Inch
	c := vgpdf.New(width, height)
	dc := draw.New(c)
	tiles := draw.Tiles{
		Rows: len(series),
		Cols: 1,
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}
	canvases := gplot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}
	f, err := os.Create(outputPath(o.Name + ".pdf"))
	if err != nil {
		return fmt.Errorf("error creating chart file: %v", err)
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("error rendering chart: %v", err)
	}
	return f.Close()
}
