// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tea

import (
	"math"

	"github.com/cpmech/gotea/grid"
	"github.com/cpmech/gotea/inp"
)

// SolverJacobi solves the system with Jacobi sweeps
type SolverJacobi struct {
	dom *Domain
}

// set factory of solvers
func init() {
	solverallocators[inp.SolverJacobi] = func(dom *Domain) Solver {
		return &SolverJacobi{dom}
	}
}

// Solve runs Jacobi sweeps until Σ|Δu| < eps. Every 50 sweeps, the squared norm of the residual
// is added to the error.
func (o *SolverJacobi) Solve(rx, ry float64) (iters int, err float64) {

	// initialise
	d := o.dom
	h := d.Sim.HaloDepth
	d.Each(func(c *grid.Chunk) {
		JacobiInit(d.Ex, c.X, c.Y, h, d.Sim.Coefficient, rx, ry, c.U, c.U0, c.Density, c.Energy, c.Kx, c.Ky)
		CopyU(d.Ex, c.X, c.Y, h, c.U, c.U0)
	})
	d.HaloUpdate(1, grid.U)

	// iterate
	for tt := 0; tt < d.Sim.MaxIters; tt++ {
		err = d.Sum(func(c *grid.Chunk) float64 {
			return JacobiIterate(d.Ex, c.X, c.Y, h, c.U, c.U0, c.R, c.Kx, c.Ky)
		})
		if tt%50 == 0 {
			d.HaloUpdate(1, grid.U)
			err += d.residualNorm()
		}
		d.HaloUpdate(1, grid.U)
		iters = tt + 1
		if math.Abs(err) < d.Sim.Eps {
			break
		}
	}
	return
}
