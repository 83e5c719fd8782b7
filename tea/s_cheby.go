// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tea

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gotea/grid"
	"github.com/cpmech/gotea/inp"
)

// SolverCheby solves the system with CG presteps followed by Chebyshev iterations
type SolverCheby struct {
	dom     *Domain
	EstIter int // estimated number of Chebyshev iterations of the last solve
}

// set factory of solvers
func init() {
	solverallocators[inp.SolverCheby] = func(dom *Domain) Solver {
		return &SolverCheby{dom: dom}
	}
}

// Solve runs CG until the switch condition holds, estimates the spectrum and continues with
// Chebyshev iterations. After the estimated number of iterations, r·r is computed every 10
// iterations.
func (o *SolverCheby) Solve(rx, ry float64) (iters int, err float64) {

	// initialise
	d := o.dom
	h := d.Sim.HaloDepth
	rro := d.cgInit(rx, ry)
	err = rro
	if d.converged(err) {
		return
	}

	// iterate
	switched := false
	ncheby := 0
	for tt := 0; tt < d.Sim.MaxIters; tt++ {
		switched = switched || d.switchToPoly(tt, err)
		if !switched {
			err = d.cgMainStep(tt, &rro)
			d.HaloUpdate(1, grid.U, grid.P)
			iters = tt + 1
			if d.converged(err) {
				break
			}
			continue
		}

		// first Chebyshev step
		ncheby++
		if ncheby == 1 {
			bb := d.Sum(func(c *grid.Chunk) float64 {
				return Calculate2Norm(d.Ex, c.X, c.Y, h, c.U0)
			})
			d.estimate(tt, d.Sim.MaxIters-tt)
			err = d.Sum(func(c *grid.Chunk) float64 {
				ChebyInit(d.Ex, c.X, c.Y, h, d.Theta, c.P, c.R, c.U, c.U0, c.W, c.Kx, c.Ky)
				ChebyCalcU(d.Ex, c.X, c.Y, h, c.P, c.U)
				return Calculate2Norm(d.Ex, c.X, c.Y, h, c.R)
			})
			o.EstIter = ChebyEstIterations(d.Eigmin, d.Eigmax, d.Sim.Eps, bb, err)
			if d.Verbose {
				io.Pfyel("eigenvalues: min = %.12e  max = %.12e  est. iterations = %d\n", d.Eigmin, d.Eigmax, o.EstIter)
			}

			// other Chebyshev steps
		} else {
			alpha, beta := d.ChebyAlphas[ncheby-2], d.ChebyBetas[ncheby-2]
			d.Each(func(c *grid.Chunk) {
				ChebyIterate(d.Ex, c.X, c.Y, h, alpha, beta, c.P, c.R, c.U, c.U0, c.W, c.Kx, c.Ky)
				ChebyCalcU(d.Ex, c.X, c.Y, h, c.P, c.U)
			})
			if ncheby >= o.EstIter && (tt+1)%10 == 0 {
				err = d.Sum(func(c *grid.Chunk) float64 {
					return Calculate2Norm(d.Ex, c.X, c.Y, h, c.R)
				})
			}
		}
		d.HaloUpdate(1, grid.U)
		iters = tt + 1
		if d.converged(err) {
			break
		}
	}
	return
}
