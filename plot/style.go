package plot

import (
	"image/color"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// namedColors covers the CSS names callers pass alongside hex codes.
var namedColors = map[string]drawing.Color{
	"black":  drawing.ColorBlack,
	"white":  drawing.ColorWhite,
	"red":    drawing.ColorRed,
	"green":  drawing.ColorGreen,
	"blue":   drawing.ColorBlue,
	"lime":   drawing.ColorLime,
	"purple": drawing.ColorPurple,
	"grey":   drawing.Color{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	"gray":   drawing.Color{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	"orange": drawing.Color{R: 0xff, G: 0xa5, B: 0x00, A: 0xff},
}

// parseColor turns a "#rrggbb" hex string or a CSS color name into a color.
// Unknown strings render black.
func parseColor(s string) drawing.Color {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 || len(hex) == 6 {
		if c := drawing.ColorFromHex(hex); !c.IsZero() {
			return c
		}
	}
	return drawing.ColorBlack
}

// seriesColor resolves a descriptor color for the gonum renderers, applying
// the given transparency.
func seriesColor(s string, alpha float64) color.NRGBA {
	c := parseColor(s)
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha * float64(c.A))}
}

// dashPattern maps a line style code to a dash pattern. Solid and unknown
// codes draw an unbroken line.
func dashPattern(style string) []vg.Length {
	switch style {
	case "--":
		return []vg.Length{vg.Points(6), vg.Points(3)}
	case ":":
		return []vg.Length{vg.Points(1), vg.Points(3)}
	case "-.":
		return []vg.Length{vg.Points(6), vg.Points(3), vg.Points(1), vg.Points(3)}
	}
	return nil
}

// strokeDashes is dashPattern for the go-chart renderer.
func strokeDashes(style string) []float64 {
	switch style {
	case "--":
		return []float64{6, 3}
	case ":":
		return []float64{1, 3}
	case "-.":
		return []float64{6, 3, 1, 3}
	}
	return nil
}

// hasLine reports whether a line style code draws a connecting line at all.
func hasLine(style string) bool {
	return style != ""
}

// glyphShape maps a marker code to a glyph. Empty and unknown codes draw no
// marker.
func glyphShape(marker string) draw.GlyphDrawer {
	switch marker {
	case "o", ".":
		return draw.CircleGlyph{}
	case "s":
		return draw.SquareGlyph{}
	case "^", "v":
		return draw.PyramidGlyph{}
	case "D", "d":
		return draw.BoxGlyph{}
	case "x":
		return draw.CrossGlyph{}
	case "+":
		return draw.PlusGlyph{}
	case "*":
		return draw.RingGlyph{}
	}
	return nil
}

// Legend locations accepted by the helpers:
//
//	0: "best"
//	1: "upper right"
//	2: "upper left"
//	3: "lower left"
//	4: "lower right"
//	5: "right"
//	6: "center left"
//	7: "center right"
//	8: "lower center"
//	9: "upper center"
//	10: "center"
func applyLegendLoc(lg *gplot.Legend, loc string) {
	switch loc {
	case "upper left", "center left":
		lg.Top, lg.Left = true, true
	case "lower left":
		lg.Top, lg.Left = false, true
	case "lower right", "lower center":
		lg.Top, lg.Left = false, false
	default:
		// "best", "upper right", "right", "center right", "upper center"
		// and "center" all land in the upper right corner.
		lg.Top, lg.Left = true, false
	}
}
