package plot

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func twinTestData() (left, right []Series) {
	xs := []float64{0, 1, 2, 3, 4, 5}
	left = []Series{{
		X: xs, Y: []float64{0, 1, 0, -1, 0, 1},
		Label: "amplitude", Color: "red", LineStyle: "-",
	}}
	right = []Series{{
		X: xs, Y: []float64{0, 100, 200, 300, 400, 500},
		Label: "energy", Color: "blue", LineStyle: "--", Marker: "o",
	}}
	return left, right
}

func TestTwoAxesSavesDocument(t *testing.T) {
	left, right := twinTestData()
	name := filepath.Join(t.TempDir(), "twin")
	err := TwoAxes(left, right, nil, Options{
		XLabel:      "t",
		YLabel:      "amplitude",
		YLabelRight: "energy",
		Title:       "twin axes",
		Name:        name,
	})
	assert.NoError(t, err)
	assertDocument(t, name+".png")
}

func TestTwoAxesWithVLines(t *testing.T) {
	left, right := twinTestData()
	vlines := []VLine{{X: 2.5, Color: "#911eb4", LineStyle: "--"}}
	name := filepath.Join(t.TempDir(), "twin_vlines")
	err := TwoAxes(left, right, vlines, Options{Name: name, HideXTicks: true})
	assert.NoError(t, err)
	assertDocument(t, name+".png")
}

func TestTwoAxesWithoutNameSavesNothing(t *testing.T) {
	left, right := twinTestData()
	assert.NoError(t, TwoAxes(left, right, nil, Options{}))
}

func TestTwoAxesMismatchedSeries(t *testing.T) {
	left := []Series{{X: []float64{1, 2}, Y: []float64{1}}}
	err := TwoAxes(left, nil, nil, Options{})
	assert.Error(t, err)
}
