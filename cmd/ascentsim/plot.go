package main

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func writeAltitudePlot(path string, times []float64, positions []r3.Vector) error {
	pts := make(plotter.XYs, len(times))
	for i := range times {
		pts[i].X = times[i]
		pts[i].Y = positions[i].Z
	}
	return writeLinePlot(path, "Altitude", "time (s)", "z (m)", pts)
}

func writeFlutterPlot(path string, altitudes, velocities []float64) error {
	pts := make(plotter.XYs, len(altitudes))
	for i := range altitudes {
		pts[i].X = altitudes[i] * 1e-3
		pts[i].Y = velocities[i]
	}
	return writeLinePlot(path, "Flutter velocity versus altitude", "altitude (km)", "flutter velocity (m/s)", pts)
}

func writeLinePlot(path, title, xLabel, yLabel string, pts plotter.XYs) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
