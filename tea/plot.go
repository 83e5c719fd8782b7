// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tea

import (
	"bytes"
	"math"
	"path"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/wcharczuk/go-chart/v2"
)

// PlotSummary draws the history of solver iterations and errors of one or more runs. The files
// are <dirout>/<fnkey>_iters.png and <dirout>/<fnkey>_error.png
//  Input:
//   labels -- legend entries; len(labels) == len(sums)
func PlotSummary(dirout, fnkey string, sums []*Summary, labels []string, verbose bool) (err error) {

	// check
	if len(sums) == 0 || len(sums) != len(labels) {
		return chk.Err("need one label per summary. %d summaries and %d labels are invalid", len(sums), len(labels))
	}
	for i, sum := range sums {
		if len(sum.Steps) < 2 {
			return chk.Err("summary %q needs at least 2 time steps to be plotted", labels[i])
		}
	}

	// series
	colors := []chart.Style{
		{StrokeColor: chart.ColorBlue, StrokeWidth: 2},
		{StrokeColor: chart.ColorRed, StrokeWidth: 2},
		{StrokeColor: chart.ColorGreen, StrokeWidth: 2},
		{StrokeColor: chart.ColorBlack, StrokeWidth: 2},
	}
	var iters, errs []chart.Series
	for i, sum := range sums {
		X := make([]float64, len(sum.Steps))
		N := make([]float64, len(sum.Steps))
		E := make([]float64, len(sum.Steps))
		for j, step := range sum.Steps {
			X[j] = float64(step)
			N[j] = float64(sum.Iters[j])
			E[j] = math.Log10(utl.Max(math.Abs(sum.Errors[j]), 1e-300))
		}
		style := colors[i%len(colors)]
		iters = append(iters, chart.ContinuousSeries{Name: labels[i], XValues: X, YValues: N, Style: style})
		errs = append(errs, chart.ContinuousSeries{Name: labels[i], XValues: X, YValues: E, Style: style})
	}

	// save
	err = saveChart(path.Join(dirout, fnkey+"_iters.png"), "number of iterations", iters, verbose)
	if err != nil {
		return
	}
	return saveChart(path.Join(dirout, fnkey+"_error.png"), "log10(error)", errs, verbose)
}

// saveChart renders series against the time step into a PNG file
func saveChart(filename, ylabel string, series []chart.Series, verbose bool) (err error) {

	// y range; a constant series has no range of its own
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, y := range s.(chart.ContinuousSeries).YValues {
			ymin, ymax = math.Min(ymin, y), math.Max(ymax, y)
		}
	}
	yaxis := chart.YAxis{Name: ylabel}
	if ymax-ymin < 1e-12 {
		yaxis.Range = &chart.ContinuousRange{Min: ymin - 1, Max: ymax + 1}
	}

	// chart
	graph := chart.Chart{
		Width:  800,
		Height: 500,
		XAxis: chart.XAxis{
			Name: "time step",
			ValueFormatter: func(v interface{}) string {
				return io.Sf("%d", int(v.(float64)))
			},
		},
		YAxis:  yaxis,
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	// render and save
	var buf bytes.Buffer
	err = graph.Render(chart.PNG, &buf)
	if err != nil {
		return chk.Err("cannot render chart %q:\n%v", filename, err)
	}
	return save_file(filename, &buf, verbose)
}
