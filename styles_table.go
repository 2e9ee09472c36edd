package main

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pivolan/plotfuncs/plot"
)

// stylesTable renders the style-code reference the plotting helpers accept.
func stylesTable() string {
	buf := &strings.Builder{}

	t := table.NewWriter()
	t.SetTitle("Markers")
	t.AppendHeader(table.Row{"Code", "Shape"})
	t.AppendRows([]table.Row{
		{"o", "circle"},
		{"s", "square"},
		{"^", "triangle"},
		{"v", "triangle"},
		{"D", "filled box"},
		{"x", "cross"},
		{"+", "plus"},
		{"*", "ring"},
		{"", "no marker"},
	})
	t.SetStyle(table.StyleDefault)
	buf.WriteString(t.Render())
	buf.WriteString("\n\n")

	t = table.NewWriter()
	t.SetTitle("Line styles")
	t.AppendHeader(table.Row{"Code", "Stroke"})
	t.AppendRows([]table.Row{
		{"-", "solid"},
		{"--", "dashed"},
		{":", "dotted"},
		{"-.", "dash-dot"},
		{"", "no line"},
	})
	t.SetStyle(table.StyleDefault)
	buf.WriteString(t.Render())
	buf.WriteString("\n\n")

	t = table.NewWriter()
	t.SetTitle("Legend locations")
	t.AppendHeader(table.Row{"Location"})
	for _, loc := range []string{
		"best", "upper right", "upper left", "lower left", "lower right",
		"right", "center left", "center right", "lower center", "upper center",
		"center",
	} {
		t.AppendRow(table.Row{loc})
	}
	t.SetStyle(table.StyleDefault)
	buf.WriteString(t.Render())
	buf.WriteString("\n\n")

	t = table.NewWriter()
	t.SetTitle("Palettes")
	t.AppendHeader(table.Row{"Palette", "Colors"})
	t.AppendRows([]table.Row{
		{"Scheme", strings.Join(plot.Scheme(), " ")},
		{"Scheme02", strings.Join(plot.Scheme02(), " ")},
		{"Scheme03", strings.Join(plot.Scheme03(), " ")},
	})
	t.SetStyle(table.StyleDefault)
	buf.WriteString(t.Render())

	return buf.String()
}
