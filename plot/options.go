package plot

// Options is the per-call configuration shared by the plotting helpers. The
// zero value of every field falls back to the default named in its comment, so
// callers only set what they want to change.
type Options struct {
	XLabel string // x-axis label; "x"
	YLabel string // y-axis label; "y"
	Title  string // figure title; empty

	// Name is the document name without extension. Empty means the figure is
	// not saved. A name without a directory is placed in the configured
	// output directory.
	Name string

	FontSize       float64 // axis labels, title and tick labels; 16
	OffsetTextSize float64 // subplot tick labels and the sci offset; FontSize
	MarkerSize     float64 // marker diameter in points; 5
	LineWidth      float64 // stroke width in points; 1.5
	Marker         string  // shared marker for helpers without per-series markers; "o"

	LegendLoc  string  // legend location, see applyLegendLoc; "best"
	LegendSize float64 // legend font size; 16

	XTicksLimit int    // maximum number of x-axis ticks; 5
	XTickStyle  string // "sci", "scientific" or "plain"; "sci"

	YLim []float64 // [min, max] y limits; nil leaves the axis automatic

	CapSize float64 // error-bar cap width in points; 5
	Alpha   float64 // data transparency in (0, 1]; 1

	// Twin-axis fields.
	YLabelRight string // right y-axis label; "y2"
	LeftColor   string // left axis title color; "red"
	RightColor  string // right axis title color; "blue"
	HideXTicks  bool   // blank the x tick labels
}

func (o Options) withDefaults() Options {
	if o.XLabel == "" {
		o.XLabel = "x"
	}
	if o.YLabel == "" {
		o.YLabel = "y"
	}
	if o.FontSize == 0 {
		o.FontSize = 16
	}
	if o.OffsetTextSize == 0 {
		o.OffsetTextSize = o.FontSize
	}
	if o.MarkerSize == 0 {
		o.MarkerSize = 5
	}
	if o.LineWidth == 0 {
		o.LineWidth = 1.5
	}
	if o.Marker == "" {
		o.Marker = "o"
	}
	if o.LegendLoc == "" {
		o.LegendLoc = "best"
	}
	if o.LegendSize == 0 {
		o.LegendSize = 16
	}
	if o.XTicksLimit == 0 {
		o.XTicksLimit = 5
	}
	if o.XTickStyle == "" {
		o.XTickStyle = "sci"
	}
	if o.YLabelRight == "" {
		o.YLabelRight = "y2"
	}
	if o.LeftColor == "" {
		o.LeftColor = "red"
	}
	if o.RightColor == "" {
		o.RightColor = "blue"
	}
	if o.CapSize == 0 {
		o.CapSize = 5
	}
	if o.Alpha == 0 {
		o.Alpha = 1
	}
	return o
}
