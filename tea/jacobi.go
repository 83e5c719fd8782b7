// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tea

import (
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gotea/inp"
	"github.com/cpmech/gotea/par"
)

// JacobiInit sets u0 = u = energy·density on all cells but the outermost ring and computes the
// face coefficients kx, ky for rows and columns in [halo, dim-halo]; the last one is the face
// shared with the first halo ring
//  Input:
//   coef   -- Conductivity: k = density; RecipConductivity: k = 1/density
//   rx, ry -- dt/dx² and dt/dy²
func JacobiInit(ex *par.Executor, x, y, halo int, coef inp.Coefficient, rx, ry float64,
	u, u0, density, energy, kx, ky la.Vector) {

	ex.For(x*y, func(i int) {
		kk, jj := i%x, i/x
		if kk > 0 && kk < x-1 && jj > 0 && jj < y-1 {
			u0[i] = energy[i] * density[i]
			u[i] = u0[i]
		}
		if jj >= halo && jj <= y-halo && kk >= halo && kk <= x-halo {
			dc := conductivity(coef, density[i])
			dl := conductivity(coef, density[i-1])
			dd := conductivity(coef, density[i-x])
			kx[i] = rx * (dl + dc) / (2.0 * dl * dc)
			ky[i] = ry * (dd + dc) / (2.0 * dd * dc)
		}
	})
}

// JacobiCopyU copies u into r on all cells
func JacobiCopyU(ex *par.Executor, x, y int, r, u la.Vector) {
	ex.For(x*y, func(i int) {
		r[i] = u[i]
	})
}

// JacobiIterate performs one Jacobi sweep: the previous iterate is copied into r and the new
// one is written into u. It returns Σ|u-r| over the interior.
func JacobiIterate(ex *par.Executor, x, y, halo int, u, u0, r, kx, ky la.Vector) (err float64) {
	JacobiCopyU(ex, x, y, r, u)
	return innerSum(ex, x, y, halo, func(i int) float64 {
		u[i] = (u0[i] +
			(kx[i+1]*r[i+1] + kx[i]*r[i-1]) +
			(ky[i+x]*r[i+x] + ky[i]*r[i-x])) /
			(1.0 + (kx[i] + kx[i+1]) + (ky[i] + ky[i+x]))
		return math.Abs(u[i] - r[i])
	})
}

// conductivity returns the value averaged into the face coefficients
func conductivity(coef inp.Coefficient, density float64) float64 {
	if coef == inp.RecipConductivity {
		return 1.0 / density
	}
	return density
}
