// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tea

import (
	"github.com/cpmech/gotea/grid"
	"github.com/cpmech/gotea/inp"
)

// SolverCG solves the system with the conjugate gradient method
type SolverCG struct {
	dom *Domain
}

// set factory of solvers
func init() {
	solverallocators[inp.SolverCG] = func(dom *Domain) Solver {
		return &SolverCG{dom}
	}
}

// Solve runs CG iterations until √(r·r) < eps. The returned error is r·r
func (o *SolverCG) Solve(rx, ry float64) (iters int, err float64) {
	d := o.dom
	rro := d.cgInit(rx, ry)
	err = rro
	if d.converged(err) {
		return
	}
	for tt := 0; tt < d.Sim.MaxIters; tt++ {
		err = d.cgMainStep(tt, &rro)
		d.HaloUpdate(1, grid.U, grid.P)
		iters = tt + 1
		if d.converged(err) {
			break
		}
	}
	return
}
