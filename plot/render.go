package plot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	echarts "github.com/go-echarts/go-echarts/v2/opts"
	"github.com/mozillazg/go-unidecode"
	uuid "github.com/satori/go.uuid"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/pivolan/plotfuncs/config"
)

// save writes the figure as <name>.pdf in the configured output directory.
func save(p *gplot.Plot, name string) error {
	if err := p.Save(6.4*vg.Inch, 4.8*vg.Inch, outputPath(name+".pdf")); err != nil {
		return fmt.Errorf("error rendering chart: %v", err)
	}
	return nil
}

// outputPath resolves a document file name. Names that already carry a
// directory are used as-is; bare names land in the configured output
// directory, falling back to the working directory.
func outputPath(file string) string {
	if filepath.Dir(file) != "." {
		return file
	}
	if dir := config.GetConfig().OutputDir; dir != "" {
		return filepath.Join(dir, file)
	}
	return file
}

// Show renders the series as a self-contained interactive HTML document in
// the configured show directory and returns its path. It is the display
// counterpart of the document-saving helpers: saving and showing the same
// figure are independent of each other.
func Show(series []Series, o Options) (string, error) {
	o = o.withDefaults()
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(echarts.Title{Title: o.Title}),
		charts.WithXAxisOpts(echarts.XAxis{Name: o.XLabel}),
		charts.WithYAxisOpts(echarts.YAxis{Name: o.YLabel}),
	)
	if len(series) > 0 {
		line.SetXAxis(series[0].X)
	}
	for _, s := range series {
		if len(s.X) != len(s.Y) {
			return "", fmt.Errorf("series %q: x has %d values, y has %d", s.Label, len(s.X), len(s.Y))
		}
		data := make([]echarts.LineData, len(s.Y))
		for i, y := range s.Y {
			data[i] = echarts.LineData{Value: y}
		}
		line.AddSeries(s.Label, data,
			charts.WithLineStyleOpts(echarts.LineStyle{Color: s.Color}),
		)
	}
	path := filepath.Join(showDir(), showName(o))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating chart file: %v", err)
	}
	if err := line.Render(f); err != nil {
		f.Close()
		return "", fmt.Errorf("error rendering chart: %v", err)
	}
	return path, f.Close()
}

func showDir() string {
	if dir := config.GetConfig().ShowDir; dir != "" {
		return dir
	}
	return os.TempDir()
}

// showName builds a unique file name from the figure title, so several shows
// of the same figure never clobber each other.
func showName(o Options) string {
	base := o.Title
	if base == "" {
		base = o.Name
	}
	return fmt.Sprintf("%s_%s.html", slugName(base), uuid.NewV4())
}

// slugName reduces a title to an ascii file-name stem.
func slugName(s string) string {
	s = strings.ToLower(unidecode.Unidecode(s))
	var b strings.Builder
	lastUnderscore := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	slug := strings.Trim(b.String(), "_")
	if slug == "" {
		return "figure"
	}
	return slug
}
