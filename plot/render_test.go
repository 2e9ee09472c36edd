package plot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugName(t *testing.T) {
	cases := map[string]string{
		"Überschall flight #2": "uberschall_flight_2",
		"plain":                "plain",
		"  spaced   out  ":     "spaced_out",
		"":                     "figure",
		"###":                  "figure",
	}
	for in, want := range cases {
		assert.Equal(t, want, slugName(in), "input %q", in)
	}
}

func TestOutputPathKeepsDirectories(t *testing.T) {
	withDir := filepath.Join("some", "dir", "fig.pdf")
	assert.Equal(t, withDir, outputPath(withDir))
}

func TestShowWritesHTML(t *testing.T) {
	path, err := Show(testSeries(), Options{Title: "wave demo"})
	require.NoError(t, err)
	defer os.Remove(path)

	assert.True(t, strings.HasSuffix(path, ".html"))
	assert.Contains(t, filepath.Base(path), "wave_demo_")

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), "sin")
}

func TestShowUniqueNames(t *testing.T) {
	a, err := Show(testSeries(), Options{Title: "same title"})
	require.NoError(t, err)
	defer os.Remove(a)
	b, err := Show(testSeries(), Options{Title: "same title"})
	require.NoError(t, err)
	defer os.Remove(b)
	assert.NotEqual(t, a, b)
}

func TestShowMismatchedSeries(t *testing.T) {
	_, err := Show([]Series{{X: []float64{1, 2}, Y: []float64{1}, Label: "bad"}}, Options{})
	assert.Error(t, err)
}
