// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tea

import (
	"math"

	"github.com/cpmech/gotea/grid"
)

// Solver solves the linear system of one time step
type Solver interface {
	Solve(rx, ry float64) (iters int, err float64)
}

// solverallocators holds all available solvers
var solverallocators = make(map[string]func(dom *Domain) Solver)

// cgItersForEigenvalues is the minimum number of CG iterations before the error switch applies
const cgItersForEigenvalues = 20

// CG steps shared by the CG, Chebyshev and PPCG solvers /////////////////////////////////////////

// cgInit initialises u, w, kx, ky, r and p and copies u into u0. It returns rro = Σ r·r
func (o *Domain) cgInit(rx, ry float64) (rro float64) {
	h := o.Sim.HaloDepth
	rro = o.Sum(func(c *grid.Chunk) float64 {
		CgInitU(o.Ex, c.X, c.Y, o.Sim.Coefficient, c.P, c.R, c.U, c.W, c.Density, c.Energy)
		CgInitK(o.Ex, c.X, c.Y, h, c.W, c.Kx, c.Ky, rx, ry)
		return CgInitOthers(o.Ex, c.X, c.Y, h, c.Kx, c.Ky, c.P, c.R, c.U, c.W)
	})
	o.HaloUpdate(1, grid.U, grid.P)
	o.Each(func(c *grid.Chunk) {
		CopyU(o.Ex, c.X, c.Y, h, c.U, c.U0)
	})
	return
}

// cgMainStep performs CG iteration tt, records α and β and returns the new Σ r·r
func (o *Domain) cgMainStep(tt int, rro *float64) (err float64) {
	h := o.Sim.HaloDepth
	pw := o.Sum(func(c *grid.Chunk) float64 {
		return CgCalcW(o.Ex, c.X, c.Y, h, c.W, c.P, c.Kx, c.Ky)
	})
	alpha := *rro / pw
	rrn := o.Sum(func(c *grid.Chunk) float64 {
		return CgCalcUr(o.Ex, c.X, c.Y, h, c.U, c.R, c.P, c.W, alpha)
	})
	beta := rrn / *rro
	o.Each(func(c *grid.Chunk) {
		CgCalcP(o.Ex, c.X, c.Y, h, beta, c.P, c.R)
	})
	o.CgAlphas[tt] = alpha
	o.CgBetas[tt] = beta
	*rro = rrn
	return rrn
}

// residualNorm computes r = u0 - A·u and returns Σ r·r
func (o *Domain) residualNorm() float64 {
	h := o.Sim.HaloDepth
	return o.Sum(func(c *grid.Chunk) float64 {
		CalculateResidual(o.Ex, c.X, c.Y, h, c.U, c.U0, c.R, c.Kx, c.Ky)
		return Calculate2Norm(o.Ex, c.X, c.Y, h, c.R)
	})
}

// switchToPoly tells whether the CG presteps are over
func (o *Domain) switchToPoly(tt int, err float64) bool {
	if o.Sim.ErrorSwitch {
		return err < o.Sim.EpsLim && tt > cgItersForEigenvalues
	}
	return tt > o.Sim.Presteps
}

// estimate computes the eigenvalue bounds from the first ncg CG iterations and the Chebyshev
// coefficients for n steps
func (o *Domain) estimate(ncg, n int) {
	o.Eigmin, o.Eigmax = EstimateEigenvalues(o.CgAlphas, o.CgBetas, ncg)
	o.Theta, o.ChebyAlphas, o.ChebyBetas = ChebyCoefs(o.Eigmin, o.Eigmax, n)
}

// converged tells whether the squared residual norm err is below the tolerance
func (o *Domain) converged(err float64) bool {
	return math.Sqrt(math.Abs(err)) < o.Sim.Eps
}
