package plot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeries() []Series {
	n := 50
	xs := make([]float64, n)
	sin := make([]float64, n)
	cos := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = float64(i) * 0.2
		sin[i] = math.Sin(xs[i])
		cos[i] = math.Cos(xs[i])
	}
	return []Series{
		{X: xs, Y: sin, Label: "sin", Color: "#ffb400", LineStyle: "-", Marker: ""},
		{X: xs, Y: cos, Label: "cos", Color: "#5e569b", LineStyle: "--", Marker: "o"},
	}
}

func assertDocument(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestOneAxisSavesDocument(t *testing.T) {
	name := filepath.Join(t.TempDir(), "waves")
	err := OneAxis(testSeries(), Options{
		XLabel: "t",
		YLabel: "amplitude",
		Title:  "waves",
		Name:   name,
	})
	assert.NoError(t, err)
	assertDocument(t, name+".pdf")
}

func TestOneAxisWithoutNameSavesNothing(t *testing.T) {
	err := OneAxis(testSeries(), Options{})
	assert.NoError(t, err)
}

func TestOneAxisYLim(t *testing.T) {
	name := filepath.Join(t.TempDir(), "clipped")
	err := OneAxis(testSeries(), Options{Name: name, YLim: []float64{0, 250}})
	assert.NoError(t, err)
	assertDocument(t, name+".pdf")
}

func TestOneAxisMismatchedSeries(t *testing.T) {
	err := OneAxis([]Series{{X: []float64{1, 2, 3}, Y: []float64{1, 2}, Label: "bad"}}, Options{})
	assert.Error(t, err)
}

func TestOneAxisSciOffset(t *testing.T) {
	xs := []float64{0, 10000, 20000, 30000}
	ys := []float64{1, 2, 3, 4}
	name := filepath.Join(t.TempDir(), "sci")
	err := OneAxis([]Series{{X: xs, Y: ys, Label: "big x", Color: "red", LineStyle: "-"}},
		Options{Name: name, XTickStyle: "sci"})
	assert.NoError(t, err)
	assertDocument(t, name+".pdf")
}

func TestOneAxisVLines(t *testing.T) {
	name := filepath.Join(t.TempDir(), "vlines")
	vlines := []VLine{
		{X: 2, Color: "red", LineStyle: "--"},
		{X: 5, Color: "#3cb44b", LineStyle: ":"},
	}
	err := OneAxisVLines(testSeries(), vlines, Options{Name: name})
	assert.NoError(t, err)
	assertDocument(t, name+".pdf")
}

func TestOneAxisPoints(t *testing.T) {
	name := filepath.Join(t.TempDir(), "points")
	points := []Point{
		{X: 1, Y: 0.5, Label: "peak", Marker: "*", Size: 12, Color: "#e6194b"},
		{X: 3, Y: -0.5, Marker: "D", Color: "blue"},
	}
	err := OneAxisPoints(testSeries(), points, Options{Name: name})
	assert.NoError(t, err)
	assertDocument(t, name+".pdf")
}
