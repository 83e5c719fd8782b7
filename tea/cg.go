// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tea

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gotea/inp"
	"github.com/cpmech/gotea/par"
)

// CgInitU sets p = r = 0 and u = energy·density on all cells. w receives the conductivity on all
// cells but the outermost ring.
//
//  Note: the window of w is one cell wide whatever the halo depth. With halo > 1, w is also
//  written inside the halo band; with halo == 1, w is not set on the ring read by CgInitK.
func CgInitU(ex *par.Executor, x, y int, coef inp.Coefficient, p, r, u, w, density, energy la.Vector) {
	ex.For(x*y, func(i int) {
		kk, jj := i%x, i/x
		p[i] = 0
		r[i] = 0
		u[i] = energy[i] * density[i]
		if jj > 0 && jj < y-1 && kk > 0 && kk < x-1 {
			w[i] = conductivity(coef, density[i])
		}
	})
}

// CgInitK computes the face coefficients kx, ky from w for rows and columns in [halo, dim-1)
func CgInitK(ex *par.Executor, x, y, halo int, w, kx, ky la.Vector, rx, ry float64) {
	ex.For(x*y, func(i int) {
		kk, jj := i%x, i/x
		if jj >= halo && jj < y-1 && kk >= halo && kk < x-1 {
			kx[i] = rx * (w[i-1] + w[i]) / (2.0 * w[i-1] * w[i])
			ky[i] = ry * (w[i-x] + w[i]) / (2.0 * w[i-x] * w[i])
		}
	})
}

// CgInitOthers computes w = A·u, r = u - w and p = r. It returns rro = Σ r·p
func CgInitOthers(ex *par.Executor, x, y, halo int, kx, ky, p, r, u, w la.Vector) (rro float64) {
	return innerSum(ex, x, y, halo, func(i int) float64 {
		w[i] = smvp(x, kx, ky, u, i)
		r[i] = u[i] - w[i]
		p[i] = r[i]
		return r[i] * p[i]
	})
}

// CgCalcW computes w = A·p and returns pw = Σ w·p
func CgCalcW(ex *par.Executor, x, y, halo int, w, p, kx, ky la.Vector) (pw float64) {
	return innerSum(ex, x, y, halo, func(i int) float64 {
		w[i] = smvp(x, kx, ky, p, i)
		return w[i] * p[i]
	})
}

// CgCalcUr updates u += α·p and r -= α·w and returns rrn = Σ r²
func CgCalcUr(ex *par.Executor, x, y, halo int, u, r, p, w la.Vector, alpha float64) (rrn float64) {
	return innerSum(ex, x, y, halo, func(i int) float64 {
		u[i] += alpha * p[i]
		r[i] -= alpha * w[i]
		return r[i] * r[i]
	})
}

// CgCalcP computes p = β·p + r
func CgCalcP(ex *par.Executor, x, y, halo int, beta float64, p, r la.Vector) {
	inner(ex, x, y, halo, func(i int) {
		p[i] = beta*p[i] + r[i]
	})
}
