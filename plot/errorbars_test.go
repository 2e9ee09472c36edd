package plot

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testErrorSeries() []ErrorSeries {
	return []ErrorSeries{
		{
			X:     []float64{0, 1, 2, 3, 4},
			Y:     []float64{0.1, 0.9, 2.2, 2.8, 4.1},
			YErr:  []float64{0.2, 0.15, 0.3, 0.2, 0.25},
			Label: "run 1",
			Color: "#25828e",
		},
		{
			X:     []float64{0, 1, 2, 3, 4},
			Y:     []float64{0.3, 1.2, 1.9, 3.2, 3.8},
			YErr:  []float64{0.1, 0.2, 0.2, 0.3, 0.2},
			Label: "run 2",
			Color: "#b4de2c",
		},
	}
}

func TestErrorBarsSavesDocument(t *testing.T) {
	name := filepath.Join(t.TempDir(), "errorbars")
	err := ErrorBars(testErrorSeries(), Options{
		XLabel: "t",
		YLabel: "signal",
		Name:   name,
		Alpha:  0.8,
	})
	assert.NoError(t, err)
	assertDocument(t, name+".pdf")
}

func TestErrorBarsMismatchedYErr(t *testing.T) {
	bad := []ErrorSeries{{
		X:    []float64{1, 2, 3},
		Y:    []float64{1, 2, 3},
		YErr: []float64{0.1},
	}}
	err := ErrorBars(bad, Options{})
	assert.Error(t, err)
}

func TestErrorBarsWithFits(t *testing.T) {
	fits := []Fit{
		{
			X:     []float64{0, 1, 2, 3, 4},
			Y:     []float64{0, 1, 2, 3, 4},
			Label: "linear fit",
			Color: "#1f9e89",
		},
	}
	name := filepath.Join(t.TempDir(), "fits")
	err := ErrorBarsWithFits(testErrorSeries(), fits, Options{Name: name})
	assert.NoError(t, err)
	assertDocument(t, name+".pdf")
}

func TestErrorBarsWithFitsMismatchedFit(t *testing.T) {
	fits := []Fit{{X: []float64{1, 2}, Y: []float64{1}}}
	err := ErrorBarsWithFits(testErrorSeries(), fits, Options{})
	assert.Error(t, err)
}
