// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tea

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gotea/par"
)

// All kernels below receive the padded dimensions x and y (cells + 2*halo) and the halo depth.
// Unless noted otherwise, they only touch cells in the window
//   halo <= kk < x-halo  and  halo <= jj < y-halo
// where kk = idx % x is the column and jj = idx / x is the row.

// smvp applies the implicit diffusion operator to a at cell i
func smvp(x int, kx, ky, a la.Vector, i int) float64 {
	return (1.0+(kx[i+1]+kx[i])+(ky[i+x]+ky[i]))*a[i] -
		(kx[i+1]*a[i+1]+kx[i]*a[i-1]) -
		(ky[i+x]*a[i+x]+ky[i]*a[i-x])
}

// inner runs f for all interior cells
func inner(ex *par.Executor, x, y, halo int, f func(i int)) {
	ex.For(x*y, func(i int) {
		kk, jj := i%x, i/x
		if kk >= halo && kk < x-halo && jj >= halo && jj < y-halo {
			f(i)
		}
	})
}

// innerSum runs f for all interior cells and returns the tree sum of its results
func innerSum(ex *par.Executor, x, y, halo int, f func(i int) float64) float64 {
	return ex.MapReduce(x*y, func(i int) float64 {
		kk, jj := i%x, i/x
		if kk >= halo && kk < x-halo && jj >= halo && jj < y-halo {
			return f(i)
		}
		return 0
	})
}

// shared kernels //////////////////////////////////////////////////////////////////////////////////

// CopyU copies the interior of u into u0
func CopyU(ex *par.Executor, x, y, halo int, u, u0 la.Vector) {
	inner(ex, x, y, halo, func(i int) {
		u0[i] = u[i]
	})
}

// CalculateResidual computes r = u0 - A·u
func CalculateResidual(ex *par.Executor, x, y, halo int, u, u0, r, kx, ky la.Vector) {
	inner(ex, x, y, halo, func(i int) {
		r[i] = u0[i] - smvp(x, kx, ky, u, i)
	})
}

// Calculate2Norm returns Σ a[i]² over the interior
func Calculate2Norm(ex *par.Executor, x, y, halo int, a la.Vector) float64 {
	return innerSum(ex, x, y, halo, func(i int) float64 {
		return a[i] * a[i]
	})
}

// Finalise computes energy = u / density
func Finalise(ex *par.Executor, x, y, halo int, u, density, energy la.Vector) {
	inner(ex, x, y, halo, func(i int) {
		energy[i] = u[i] / density[i]
	})
}

// StoreEnergy copies energy0 into energy on all cells, halo included
func StoreEnergy(ex *par.Executor, x, y int, energy0, energy la.Vector) {
	ex.For(x*y, func(i int) {
		energy[i] = energy0[i]
	})
}
