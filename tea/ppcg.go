// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tea

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gotea/par"
)

// PpcgInit computes sd = r/θ
func PpcgInit(ex *par.Executor, x, y, halo int, theta float64, sd, r la.Vector) {
	inner(ex, x, y, halo, func(i int) {
		sd[i] = r[i] / theta
	})
}

// PpcgCalcUr computes r -= A·sd and u += sd
func PpcgCalcUr(ex *par.Executor, x, y, halo int, sd, r, u, kx, ky la.Vector) {
	inner(ex, x, y, halo, func(i int) {
		r[i] -= smvp(x, kx, ky, sd, i)
		u[i] += sd[i]
	})
}

// PpcgCalcSd computes sd = α·sd + β·r
func PpcgCalcSd(ex *par.Executor, x, y, halo int, alpha, beta float64, sd, r la.Vector) {
	inner(ex, x, y, halo, func(i int) {
		sd[i] = alpha*sd[i] + beta*r[i]
	})
}
