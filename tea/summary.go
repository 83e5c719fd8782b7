// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tea

import (
	"bytes"
	"os"
	"path"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// FieldSum holds one field summary
type FieldSum struct {
	Step int     // time step; 0 => initial state
	Time float64 // simulation time
	Vol  float64 // total volume
	Mass float64 // total mass
	Ie   float64 // total internal energy
	Temp float64 // total temperature
}

// Summary records summary of outputs
type Summary struct {

	// per time step
	Steps  []int     // time step index
	Times  []float64 // simulation time at end of step
	Iters  []int     // number of solver iterations
	Errors []float64 // error estimate returned by the solver
	Exact  []float64 // squared norm of the exact residual (if checkresult is on)

	// field summaries
	Fields []*FieldSum // initial, every summaryfreq steps and final

	// last run
	Eigmin float64 // last min eigenvalue estimate (cheby and ppcg)
	Eigmax float64 // last max eigenvalue estimate (cheby and ppcg)
	Passed bool    // final temperature check passed (or was not requested)

	// set by Save
	Nchunks int    // number of chunks used in last run
	Dirout  string // directory where results are stored
	Fnkey   string // filename key of simulation
}

// Save saves summary to disc
func (o *Summary) Save(dirout, fnkey, enctype string, nchunks int, verbose bool) (err error) {

	// set flags before saving
	o.Nchunks = nchunks
	o.Dirout = dirout
	o.Fnkey = fnkey

	// buffer and encoder
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)

	// encode summary
	err = enc.Encode(o)
	if err != nil {
		return chk.Err("cannot encode summary:\n%v", err)
	}

	// save file
	fn := out_sum_path(dirout, fnkey, enctype)
	return save_file(fn, &buf, verbose)
}

// ReadSum reads summary back
func ReadSum(dir, fnkey, enctype string) (o *Summary, err error) {

	// open file
	fn := out_sum_path(dir, fnkey, enctype)
	fil, err := os.Open(fn)
	if err != nil {
		return nil, chk.Err("cannot open summary file:\n%v", err)
	}
	defer fil.Close()

	// decode summary
	o = new(Summary)
	dec := GetDecoder(fil, enctype)
	err = dec.Decode(o)
	if err != nil {
		return nil, chk.Err("cannot decode summary:\n%v", err)
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_sum_path(dir, fnkey, enctype string) string {
	return path.Join(dir, io.Sf("%s_sum.%s", fnkey, enctype))
}
