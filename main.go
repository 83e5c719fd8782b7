// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gotea/tea"
)

func main() {

	// catch errors
	failed := false
	defer func() {
		if err := recover(); err != nil {
			io.Pfred("ERROR: %v\n", err)
			failed = true
		}
		if failed {
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "tea", ".json", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	saveSummary := io.ArgToBool(3, true)
	alias := io.ArgToString(4, "")

	// message
	if verbose {
		io.Pf("\nGotea -- implicit heat conduction on structured grids\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")
		io.Pf("%-24s = %v\n", "filename path", fnamepath)
		io.Pf("%-24s = %v\n", "show messages", verbose)
		io.Pf("%-24s = %v\n", "erase previous results", erasePrev)
		io.Pf("%-24s = %v\n", "save summary", saveSummary)
		io.Pf("%-24s = %q\n\n", "word to add to results", alias)
	}

	// analysis data
	analysis, err := tea.NewTEA(fnamepath, alias, erasePrev, saveSummary, verbose)
	if err != nil {
		chk.Panic("cannot start simulation:\n%v", err)
	}
	defer analysis.Free()
	if verbose {
		analysis.Sim.GetInfo(os.Stdout)
		io.Pf("\n\n")
	}

	// run simulation
	err = analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
}
