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

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.Pfred("ERROR: %v\n", err)
		}
	}()

	// input data
	simfn, _ := io.ArgToFilename(0, "tea", ".json", true)
	alias := io.ArgToString(1, "")
	io.Pf("\n%-20s = %v\n", "settings filename", simfn)
	io.Pf("%-20s = %q\n\n", "alias", alias)

	// read fields
	sim, err := inp.ReadSettings(simfn, alias, false)
	if err != nil {
		chk.Panic("cannot read settings:\n%v", err)
	}
	fld, err := tea.ReadFields(sim.DirOut, sim.Key, sim.EncType)
	if err != nil {
		chk.Panic("cannot read fields:\n%v", err)
	}

	// write vtu file
	err = fld.WriteVTU(sim.DirOut, sim.Key, true)
	if err != nil {
		chk.Panic("cannot write vtu file:\n%v", err)
	}
}
