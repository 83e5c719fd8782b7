// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tea

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// EstimateEigenvalues estimates the extreme eigenvalues of the operator from the CG coefficients
// of the first n iterations. The Lanczos tridiagonal matrix is
//   T[i][i]   = 1/α[i] + β[i-1]/α[i-1]
//   T[i][i+1] = √β[i] / α[i]
// and the returned bounds are widened by 5%.
//
//  Note: a negative eigenvalue means the operator is not positive definite; this is fatal
func EstimateEigenvalues(alphas, betas []float64, n int) (eigmin, eigmax float64) {
	if n < 1 || n > len(alphas) || n > len(betas) {
		chk.Panic("cannot estimate eigenvalues with %d CG iterations", n)
	}
	T := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		d := 1.0 / alphas[i]
		if i > 0 {
			d += betas[i-1] / alphas[i-1]
		}
		T.SetSym(i, i, d)
		if i < n-1 {
			T.SetSym(i, i+1, math.Sqrt(betas[i])/alphas[i])
		}
	}
	var eig mat.EigenSym
	if !eig.Factorize(T, false) {
		chk.Panic("eigenvalue decomposition of Lanczos matrix failed")
	}
	vals := eig.Values(nil)
	eigmin, eigmax = floats.Min(vals), floats.Max(vals)
	if eigmin < 0 || eigmax < 0 {
		chk.Panic("negative eigenvalues: min = %g, max = %g", eigmin, eigmax)
	}
	return eigmin * 0.95, eigmax * 1.05
}

// ChebyCoefs computes the Chebyshev acceleration coefficients for n steps
//  Output:
//   theta        -- (max+min)/2
//   alphas,betas -- [n] coefficients; step k uses alphas[k-1], betas[k-1]
func ChebyCoefs(eigmin, eigmax float64, n int) (theta float64, alphas, betas []float64) {
	theta = (eigmax + eigmin) / 2.0
	delta := (eigmax - eigmin) / 2.0
	sigma := theta / delta
	rhoOld := 1.0 / sigma
	alphas = make([]float64, n)
	betas = make([]float64, n)
	for i := 0; i < n; i++ {
		rhoNew := 1.0 / (2.0*sigma - rhoOld)
		alphas[i] = rhoNew * rhoOld
		betas[i] = 2.0 * rhoNew / delta
		rhoOld = rhoNew
	}
	return
}

// ChebyEstIterations estimates the number of Chebyshev steps needed to reduce the squared
// residual norm err to eps·bb, where bb is the squared norm of the right-hand side
func ChebyEstIterations(eigmin, eigmax, eps, bb, err float64) int {
	if err <= 0 {
		return 0
	}
	itAlpha := eps * bb / (4.0 * err)
	gamma := (math.Sqrt(eigmax) - math.Sqrt(eigmin)) / (math.Sqrt(eigmax) + math.Sqrt(eigmin))
	if itAlpha >= 1 || gamma <= 0 {
		return 0
	}
	return int(math.Round(math.Log(itAlpha) / (2.0 * math.Log(gamma))))
}
