package main

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var rawColor = color.RGBA{R: 170, G: 170, B: 170, A: 255}

// channelColor returns a distinct color for channel c.
func channelColor(c int) color.Color {
	palette := []color.RGBA{
		{R: 31, G: 119, B: 180, A: 255},
		{R: 214, G: 39, B: 40, A: 255},
		{R: 44, G: 160, B: 44, A: 255},
		{R: 148, G: 103, B: 189, A: 255},
		{R: 255, G: 127, B: 14, A: 255},
	}

	return palette[c%len(palette)]
}

// writePlot renders raw and filtered channels over time. The image format
// follows the file extension.
func writePlot(path string, s *series, filtered [][]float64) error {
	p := plot.New()
	p.Title.Text = "One-Euro filter"
	p.X.Label.Text = "time [s]"
	p.Y.Label.Text = "value"

	for c := range s.channels {
		rawPts := make(plotter.XYs, s.samples())
		outPts := make(plotter.XYs, s.samples())
		for i, t := range s.times {
			rawPts[i] = plotter.XY{X: t, Y: s.channels[c][i]}
			outPts[i] = plotter.XY{X: t, Y: filtered[c][i]}
		}

		rawLine, err := plotter.NewLine(rawPts)
		if err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		rawLine.Color = rawColor
		rawLine.Width = vg.Points(0.5)

		outLine, err := plotter.NewLine(outPts)
		if err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		outLine.Color = channelColor(c)
		outLine.Width = vg.Points(1)

		name := s.channelName(c)
		p.Add(rawLine, outLine)
		p.Legend.Add(name+" raw", rawLine)
		p.Legend.Add(name+" filtered", outLine)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if err := p.Save(14*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}

	return nil
}

// writeHTML renders raw and filtered channels as an interactive line chart.
func writeHTML(path string, s *series, filtered [][]float64) error {
	x := make([]string, s.samples())
	for i, t := range s.times {
		x[i] = strconv.FormatFloat(t, 'f', 3, 64)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "One-Euro filter", Width: "100%", Height: "640px"}),
		charts.WithTitleOpts(opts.Title{Title: "One-Euro filter", Subtitle: fmt.Sprintf("samples=%d channels=%d", s.samples(), len(s.channels))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "time [s]"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)

	line.SetXAxis(x)
	for c := range s.channels {
		name := s.channelName(c)
		line.AddSeries(name+" raw", lineData(s.channels[c]))
		line.AddSeries(name+" filtered", lineData(filtered[c]))
	}

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}

	return nil
}

func lineData(values []float64) []opts.LineData {
	out := make([]opts.LineData, len(values))
	for i, v := range values {
		out[i] = opts.LineData{Value: v}
	}

	return out
}
