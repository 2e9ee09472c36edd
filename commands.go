package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pivolan/plotfuncs/plot"
)

var (
	docName  string
	title    string
	fontSize float64
)

func rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "plotdemo",
		Short: "Render sample figures through every plotfuncs helper",
		Long: `plotdemo exercises the plotfuncs library with generated curves and
writes the resulting documents to the configured output directory
(PLOT_OUTPUT_DIR, or the working directory).`,
	}

	rootCmd.PersistentFlags().StringVarP(&docName, "name", "n", "demo", "Document name without extension")
	rootCmd.PersistentFlags().StringVar(&title, "title", "", "Figure title")
	rootCmd.PersistentFlags().Float64Var(&fontSize, "font-size", 0, "Font size for labels and title")

	rootCmd.AddCommand(
		linesCommand(),
		vlinesCommand(),
		pointsCommand(),
		errorBarsCommand(),
		fitsCommand(),
		twinCommand(),
		subplotsCommand(),
		showCommand(),
		stylesCommand(),
	)
	return rootCmd
}

func baseOptions() plot.Options {
	return plot.Options{
		Name:     docName,
		Title:    title,
		FontSize: fontSize,
	}
}

func linesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lines",
		Short: "Single-axis plot with several styled curves",
		RunE: func(cmd *cobra.Command, args []string) error {
			o := baseOptions()
			o.XLabel, o.YLabel = "t", "amplitude"
			return plot.OneAxis(waveSeries(), o)
		},
	}
}

func vlinesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "vlines",
		Short: "Single-axis plot with vertical reference lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			o := baseOptions()
			o.XLabel, o.YLabel = "t", "amplitude"
			vlines := []plot.VLine{
				{X: 2, Color: plot.SchemeColor(plot.Scheme03(), 0), LineStyle: "--"},
				{X: 5, Color: plot.SchemeColor(plot.Scheme03(), 3), LineStyle: ":"},
			}
			return plot.OneAxisVLines(waveSeries(), vlines, o)
		},
	}
}

func pointsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "points",
		Short: "Line plot with isolated highlighted points",
		RunE: func(cmd *cobra.Command, args []string) error {
			o := baseOptions()
			o.XLabel, o.YLabel = "t", "amplitude"
			points := []plot.Point{
				{X: 1.5, Y: sine(1.5), Label: "peak", Marker: "*", Size: 12, Color: "#e6194b"},
				{X: 4.7, Y: sine(4.7), Label: "trough", Marker: "D", Size: 10, Color: "#4363d8"},
			}
			return plot.OneAxisPoints(waveSeries(), points, o)
		},
	}
}

func errorBarsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "errorbars",
		Short: "Measurement-style plot with y error bars",
		RunE: func(cmd *cobra.Command, args []string) error {
			o := baseOptions()
			o.XLabel, o.YLabel = "t", "signal"
			return plot.ErrorBars(noisySeries(), o)
		},
	}
}

func fitsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fits",
		Short: "Error-bar data overlaid with fit curves",
		RunE: func(cmd *cobra.Command, args []string) error {
			o := baseOptions()
			o.XLabel, o.YLabel = "t", "signal"
			return plot.ErrorBarsWithFits(noisySeries(), fitCurves(), o)
		},
	}
}

func twinCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "twin",
		Short: "Twin y-axis plot comparing two differently-scaled quantities",
		RunE: func(cmd *cobra.Command, args []string) error {
			o := baseOptions()
			o.XLabel, o.YLabel, o.YLabelRight = "t", "amplitude", "energy"
			left, right := twinSeries()
			return plot.TwoAxes(left, right, nil, o)
		},
	}
}

func subplotsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "subplots",
		Short: "Stacked subplot grid, one panel per curve",
		RunE: func(cmd *cobra.Command, args []string) error {
			o := baseOptions()
			o.XLabel, o.YLabel = "t", "amplitude"
			return plot.Subplots(waveSeries(), o)
		},
	}
}

func showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Render an interactive HTML rendition and print its path",
		RunE: func(cmd *cobra.Command, args []string) error {
			o := baseOptions()
			o.XLabel, o.YLabel = "t", "amplitude"
			path, err := plot.Show(waveSeries(), o)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func stylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "Print the marker, line-style, legend and palette reference",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), stylesTable())
		},
	}
}
