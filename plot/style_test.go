package plot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wcharczuk/go-chart/v2/drawing"
	gplot "gonum.org/v1/plot"
)

func TestParseColor(t *testing.T) {
	assert.Equal(t, drawing.Color{R: 0xe6, G: 0x19, B: 0x4b, A: 0xff}, parseColor("#e6194b"))
	assert.Equal(t, drawing.ColorRed, parseColor("red"))
	assert.Equal(t, drawing.ColorBlue, parseColor(" Blue "))
	assert.Equal(t, drawing.ColorBlack, parseColor("not-a-color"))
	assert.Equal(t, drawing.ColorBlack, parseColor(""))
}

func TestSeriesColorAlpha(t *testing.T) {
	c := seriesColor("#ffffff", 0.5)
	assert.EqualValues(t, 127, c.A)
	assert.EqualValues(t, 255, c.R)

	opaque := seriesColor("red", 1)
	assert.EqualValues(t, 255, opaque.A)

	clamped := seriesColor("red", 2)
	assert.EqualValues(t, 255, clamped.A)
}

func TestDashPattern(t *testing.T) {
	assert.Nil(t, dashPattern("-"))
	assert.Nil(t, dashPattern(""))
	assert.Len(t, dashPattern("--"), 2)
	assert.Len(t, dashPattern(":"), 2)
	assert.Len(t, dashPattern("-."), 4)
}

func TestGlyphShape(t *testing.T) {
	assert.NotNil(t, glyphShape("o"))
	assert.NotNil(t, glyphShape("*"))
	assert.Nil(t, glyphShape(""))
	assert.Nil(t, glyphShape("zz"))
}

func TestApplyLegendLoc(t *testing.T) {
	cases := []struct {
		loc       string
		top, left bool
	}{
		{"best", true, false},
		{"upper right", true, false},
		{"upper left", true, true},
		{"lower left", false, true},
		{"lower right", false, false},
		{"center", true, false},
	}
	for _, c := range cases {
		var lg gplot.Legend
		applyLegendLoc(&lg, c.loc)
		assert.Equal(t, c.top, lg.Top, c.loc)
		assert.Equal(t, c.left, lg.Left, c.loc)
	}
}
