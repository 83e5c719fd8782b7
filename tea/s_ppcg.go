// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tea

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gotea/grid"
	"github.com/cpmech/gotea/inp"
)

// SolverPPCG solves the system with CG presteps followed by CG iterations preconditioned by
// Chebyshev polynomial inner steps
type SolverPPCG struct {
	dom *Domain
}

// set factory of solvers
func init() {
	solverallocators[inp.SolverPPCG] = func(dom *Domain) Solver {
		return &SolverPPCG{dom}
	}
}

// Solve runs CG until the switch condition holds, estimates the spectrum and continues with
// polynomially preconditioned CG iterations
func (o *SolverPPCG) Solve(rx, ry float64) (iters int, err float64) {

	// initialise
	d := o.dom
	rro := d.cgInit(rx, ry)
	err = rro
	if d.converged(err) {
		return
	}

	// iterate
	switched := false
	nppcg := 0
	for tt := 0; tt < d.Sim.MaxIters; tt++ {
		switched = switched || d.switchToPoly(tt, err)
		if !switched {
			err = d.cgMainStep(tt, &rro)
		} else {
			nppcg++
			if nppcg == 1 {
				rro = d.residualNorm()
				d.estimate(tt, d.Sim.PpcgInnerSteps)
				if d.Verbose {
					io.Pfyel("eigenvalues: min = %.12e  max = %.12e\n", d.Eigmin, d.Eigmax)
				}
			}
			err = o.mainStep(&rro)
		}
		d.HaloUpdate(1, grid.U, grid.P)
		iters = tt + 1
		if d.converged(err) {
			break
		}
	}
	return
}

// mainStep performs one outer iteration and returns the new r·r
func (o *SolverPPCG) mainStep(rro *float64) (err float64) {
	d := o.dom
	h := d.Sim.HaloDepth

	// CG update
	pw := d.Sum(func(c *grid.Chunk) float64 {
		return CgCalcW(d.Ex, c.X, c.Y, h, c.W, c.P, c.Kx, c.Ky)
	})
	alpha := *rro / pw
	d.Each(func(c *grid.Chunk) {
		CgCalcUr(d.Ex, c.X, c.Y, h, c.U, c.R, c.P, c.W, alpha)
	})

	// inner polynomial steps
	d.Each(func(c *grid.Chunk) {
		PpcgInit(d.Ex, c.X, c.Y, h, d.Theta, c.Sd, c.R)
	})
	d.HaloUpdate(1, grid.Sd)
	for pp := 0; pp < d.Sim.PpcgInnerSteps; pp++ {
		a, b := d.ChebyAlphas[pp], d.ChebyBetas[pp]
		d.Each(func(c *grid.Chunk) {
			PpcgCalcUr(d.Ex, c.X, c.Y, h, c.Sd, c.R, c.U, c.Kx, c.Ky)
			PpcgCalcSd(d.Ex, c.X, c.Y, h, a, b, c.Sd, c.R)
		})
		d.HaloUpdate(1, grid.Sd)
	}

	// new direction
	rrn := d.Sum(func(c *grid.Chunk) float64 {
		return Calculate2Norm(d.Ex, c.X, c.Y, h, c.R)
	})
	beta := rrn / *rro
	d.Each(func(c *grid.Chunk) {
		CgCalcP(d.Ex, c.X, c.Y, h, beta, c.P, c.R)
	})
	*rro = rrn
	return rrn
}
