// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tea implements the stencil kernels, the linear solvers and the time loop of the
// implicit heat conduction simulation
package tea

import (
	"math"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gotea/grid"
	"github.com/cpmech/gotea/inp"
)

// CheckTol is the relative tolerance used to compare the final temperature with the expected one
const CheckTol = 1e-6

// TEA holds all data for a heat conduction simulation
type TEA struct {
	Sim     *inp.Settings // settings
	Dom     *Domain       // chunks and executor
	Solver  Solver        // linear solver
	Summary *Summary      // summary structure
	Time    float64       // current simulation time
	Verbose bool          // show messages
}

// NewTEA returns a new TEA structure
//  Input:
//   settingsPath -- settings (.json) filename including full path
//   alias        -- word to be appended to simulation key
//   erasePrev    -- erase previous results files
//   saveSummary  -- save summary and final fields when Run finishes
//   verbose      -- show messages
func NewTEA(settingsPath, alias string, erasePrev, saveSummary, verbose bool) (o *TEA, err error) {
	sim, err := inp.ReadSettings(settingsPath, alias, erasePrev)
	if err != nil {
		return
	}
	return NewTEAfromSettings(sim, saveSummary, verbose)
}

// NewTEAfromSettings returns a new TEA structure with settings that have already been post-processed
func NewTEAfromSettings(sim *inp.Settings, saveSummary, verbose bool) (o *TEA, err error) {

	// new TEA object
	o = new(TEA)
	o.Sim = sim
	o.Verbose = verbose

	// allocate domain
	o.Dom, err = NewDomain(sim)
	if err != nil {
		return nil, err
	}
	o.Dom.Verbose = verbose

	// allocate solver
	if alloc, ok := solverallocators[sim.Solver]; ok {
		o.Solver = alloc(o.Dom)
	} else {
		o.Dom.Free()
		return nil, chk.Err("cannot find solver named %q", sim.Solver)
	}

	// summary
	if saveSummary {
		o.Summary = new(Summary)
	}

	// initial state
	o.Dom.SetIniVals()
	o.fieldSummary(0)
	return
}

// Free releases all chunks and the executor
func (o *TEA) Free() {
	o.Dom.Free()
}

// Run runs all time steps
func (o *TEA) Run() (err error) {

	// constants
	cputime := time.Now()
	nsteps := o.Sim.NumSteps()
	dt := o.Sim.DtInit
	rx := dt / (o.Sim.Dx * o.Sim.Dx)
	ry := dt / (o.Sim.Dy * o.Sim.Dy)

	// time loop
	last := 0 // last step with a field summary; step 0 is recorded by NewTEAfromSettings
	var temp float64
	for step := 1; step <= nsteps; step++ {
		o.Time += dt
		iters, solverr, exact := o.Step(rx, ry)
		if o.Verbose {
			io.Pf("step %6d  time = %10.4f  iterations = %6d  error = %13.6e", step, o.Time, iters, solverr)
			if o.Sim.CheckResult {
				io.Pf("  residual = %13.6e", exact)
			}
			io.Pf("\n")
		}
		if o.Summary != nil {
			o.Summary.Steps = append(o.Summary.Steps, step)
			o.Summary.Times = append(o.Summary.Times, o.Time)
			o.Summary.Iters = append(o.Summary.Iters, iters)
			o.Summary.Errors = append(o.Summary.Errors, solverr)
			o.Summary.Exact = append(o.Summary.Exact, exact)
		}
		if o.Sim.SummaryFreq > 0 && step%o.Sim.SummaryFreq == 0 {
			_, _, _, temp = o.fieldSummary(step)
			last = step
		}
	}

	// final summary and check
	if last != nsteps {
		_, _, _, temp = o.fieldSummary(nsteps)
	} else if nsteps == 0 {
		_, _, _, temp = o.Dom.FieldSummary()
	}
	passed := true
	if o.Sim.Expected != 0 {
		rel := math.Abs(temp-o.Sim.Expected) / math.Abs(o.Sim.Expected)
		passed = rel < CheckTol
		if o.Verbose {
			if passed {
				io.Pfgreen("temperature check PASSED: expected %.15e, got %.15e\n", o.Sim.Expected, temp)
			} else {
				io.Pfred("temperature check FAILED: expected %.15e, got %.15e\n", o.Sim.Expected, temp)
			}
		}
	}
	if o.Verbose {
		io.Pfblue2("cpu time   = %v\n", time.Now().Sub(cputime))
	}

	// save summary
	if o.Summary != nil {
		o.Summary.Passed = passed
		o.Summary.Eigmin, o.Summary.Eigmax = o.Dom.Eigmin, o.Dom.Eigmax
		err = o.Summary.Save(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, o.Sim.Nchunks, o.Verbose)
		if err != nil {
			return
		}
		err = o.SaveFields(o.Verbose)
		if err != nil {
			return
		}
	}
	if !passed {
		return chk.Err("final temperature %.15e differs from expected value %.15e", temp, o.Sim.Expected)
	}
	return
}

// Step solves one time step
//  Output:
//   iters -- number of solver iterations
//   err   -- error estimate returned by the solver
//   exact -- squared norm of the exact residual; 0 if CheckResult is false
func (o *TEA) Step(rx, ry float64) (iters int, err, exact float64) {
	d := o.Dom
	h := o.Sim.HaloDepth

	// prepare halos
	d.HaloUpdate(2, grid.Energy, grid.Density)

	// solve
	iters, err = o.Solver.Solve(rx, ry)

	// finish
	if o.Sim.CheckResult {
		exact = d.residualNorm()
	}
	d.Each(func(c *grid.Chunk) {
		Finalise(d.Ex, c.X, c.Y, h, c.U, c.Density, c.Energy)
	})
	d.HaloUpdate(1, grid.Energy)
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// fieldSummary computes, records and logs the field summary
func (o *TEA) fieldSummary(step int) (vol, mass, ie, temp float64) {
	vol, mass, ie, temp = o.Dom.FieldSummary()
	if o.Verbose {
		io.Pforan("\n%10s%16s%16s%16s%16s%16s\n", "step", "time", "volume", "mass", "energy", "temperature")
		io.Pforan("%10d%16.6e%16.6e%16.6e%16.6e%16.6e\n\n", step, o.Time, vol, mass, ie, temp)
	}
	if o.Summary != nil {
		o.Summary.Fields = append(o.Summary.Fields, &FieldSum{step, o.Time, vol, mass, ie, temp})
	}
	return
}
