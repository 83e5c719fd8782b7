// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gotea/inp"
	"github.com/cpmech/gotea/tea"
)

func read_summary(simfn, label string) (*tea.Summary, string) {
	sim, err := inp.ReadSettings(simfn, "", false)
	if err != nil {
		chk.Panic("cannot read settings:\n%v", err)
	}
	sum, err := tea.ReadSum(sim.DirOut, sim.Key, sim.EncType)
	if err != nil {
		chk.Panic("cannot read summary:\n%v", err)
	}
	if label == "" {
		label = sim.Key
	}
	return sum, label
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.Pfred("ERROR: %v\n", err)
		}
	}()

	// input data
	simfnA, fnkA := io.ArgToFilename(0, "tea", ".json", true)
	var simfnB, fnkB string
	if io.ArgToString(1, "") != "" {
		simfnB, fnkB = io.ArgToFilename(1, "", ".json", false)
	}
	labelA := io.ArgToString(2, "")
	labelB := io.ArgToString(3, "")

	// print input data
	io.Pf("\n%-40s = %v\n", "simulation filename", simfnA)
	io.Pf("%-40s = %v\n", "simulation filename for comparison", simfnB)
	io.Pf("%-40s = %q\n", "label of first run", labelA)
	io.Pf("%-40s = %q\n\n", "label of second run", labelB)

	// read summaries
	sumA, labelA := read_summary(simfnA, labelA)
	sums := []*tea.Summary{sumA}
	labels := []string{labelA}
	if simfnB != "" {
		sumB, labelB := read_summary(simfnB, labelB)
		sums = append(sums, sumB)
		labels = append(labels, labelB)
	}

	// iterations per time step
	io.Pf("\n%8s", "step")
	for _, l := range labels {
		io.Pf("%16s", l)
	}
	io.Pf("\n")
	for i, step := range sumA.Steps {
		io.Pf("%8d", step)
		for _, s := range sums {
			if i < len(s.Iters) {
				io.Pf("%7d %8.1e", s.Iters[i], s.Errors[i])
			}
		}
		io.Pf("\n")
	}

	// plot
	err := tea.PlotSummary("/tmp", "gotea_residplot_"+fnkA+"_"+fnkB, sums, labels, true)
	if err != nil {
		chk.Panic("cannot plot:\n%v", err)
	}
}
