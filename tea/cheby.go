// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tea

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gotea/par"
)

// ChebyInit computes w = A·u, r = u0 - w and p = r/θ
func ChebyInit(ex *par.Executor, x, y, halo int, theta float64, p, r, u, u0, w, kx, ky la.Vector) {
	inner(ex, x, y, halo, func(i int) {
		w[i] = smvp(x, kx, ky, u, i)
		r[i] = u0[i] - w[i]
		p[i] = r[i] / theta
	})
}

// ChebyIterate computes w = A·u, r = u0 - w and p = α·p + β·r
func ChebyIterate(ex *par.Executor, x, y, halo int, alpha, beta float64, p, r, u, u0, w, kx, ky la.Vector) {
	inner(ex, x, y, halo, func(i int) {
		w[i] = smvp(x, kx, ky, u, i)
		r[i] = u0[i] - w[i]
		p[i] = alpha*p[i] + beta*r[i]
	})
}

// ChebyCalcU computes u += p
func ChebyCalcU(ex *par.Executor, x, y, halo int, p, u la.Vector) {
	inner(ex, x, y, halo, func(i int) {
		u[i] += p[i]
	})
}
