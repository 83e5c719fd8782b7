// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tea

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gotea/grid"
	"github.com/cpmech/gotea/inp"
	"github.com/cpmech/gotea/par"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func newExecutor(tst *testing.T, workers int) *par.Executor {
	ex, err := par.NewExecutor(0, workers)
	if err != nil {
		tst.Fatalf("NewExecutor failed:\n%v", err)
	}
	return ex
}

// interiorValues returns the interior entries of a, row by row
func interiorValues(c *grid.Chunk, a la.Vector) (res []float64) {
	for jj := 0; jj < c.Y; jj++ {
		for kk := 0; kk < c.X; kk++ {
			if c.Interior(kk, jj) {
				res = append(res, a[kk+jj*c.X])
			}
		}
	}
	return
}

func Test_kernels01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kernels01. Jacobi without conduction")

	ex := newExecutor(tst, 2)
	defer ex.Close()

	c := grid.NewChunk(4, 3, 2, 0, 0)
	for i := range c.U0 {
		c.U0[i] = float64(i) + 0.5
		c.U[i] = -1
	}

	// first sweep changes u from -1 to u0
	err := JacobiIterate(ex, c.X, c.Y, c.HaloDepth, c.U, c.U0, c.R, c.Kx, c.Ky)
	chk.Array(tst, "u", 1e-17, interiorValues(c, c.U), interiorValues(c, c.U0))
	chk.Array(tst, "r", 1e-17, interiorValues(c, c.R), utlOnes(12, -1))
	var sum float64
	for _, v := range interiorValues(c, c.U0) {
		sum += v + 1
	}
	chk.Float64(tst, "err", 1e-12, err, sum)

	// second sweep is a fixed point
	err = JacobiIterate(ex, c.X, c.Y, c.HaloDepth, c.U, c.U0, c.R, c.Kx, c.Ky)
	chk.Float64(tst, "err", 1e-17, err, 0)
}

func Test_kernels02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kernels02. uniform field is a fixed point")

	ex := newExecutor(tst, 3)
	defer ex.Close()

	c := grid.NewChunk(4, 4, 1, 0, 0)
	c.Kx.Fill(0.1)
	c.Ky.Fill(0.1)
	c.U.Fill(3)
	c.U0.Fill(3)

	err := JacobiIterate(ex, c.X, c.Y, c.HaloDepth, c.U, c.U0, c.R, c.Kx, c.Ky)
	chk.Float64(tst, "err", 1e-13, err, 0)
	chk.Array(tst, "u", 1e-14, interiorValues(c, c.U), utlOnes(16, 3))

	CalculateResidual(ex, c.X, c.Y, c.HaloDepth, c.U, c.U0, c.R, c.Kx, c.Ky)
	chk.Array(tst, "r", 1e-13, interiorValues(c, c.R), utlOnes(16, 0))
	chk.Float64(tst, "‖r‖²", 1e-28, Calculate2Norm(ex, c.X, c.Y, c.HaloDepth, c.R), 0)
}

func Test_kernels03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kernels03. CG updates")

	ex := newExecutor(tst, 0)
	defer ex.Close()

	c := grid.NewChunk(3, 3, 2, 0, 0)
	h := c.HaloDepth
	c.P.Fill(1)
	c.R.Fill(2)

	// without conduction w = p
	pw := CgCalcW(ex, c.X, c.Y, h, c.W, c.P, c.Kx, c.Ky)
	chk.Float64(tst, "pw", 1e-15, pw, 9)
	chk.Array(tst, "w", 1e-15, interiorValues(c, c.W), utlOnes(9, 1))

	// u += α·p and r -= α·w
	rrn := CgCalcUr(ex, c.X, c.Y, h, c.U, c.R, c.P, c.W, 0.5)
	chk.Array(tst, "u", 1e-15, interiorValues(c, c.U), utlOnes(9, 0.5))
	chk.Array(tst, "r", 1e-15, interiorValues(c, c.R), utlOnes(9, 1.5))
	chk.Float64(tst, "rrn", 1e-15, rrn, 9*2.25)

	// β = 0 => p = r on the interior only
	CgCalcP(ex, c.X, c.Y, h, 0, c.P, c.R)
	chk.Array(tst, "p", 1e-15, interiorValues(c, c.P), utlOnes(9, 1.5))
	chk.Float64(tst, "p[halo]", 1e-15, c.P[0], 1)
	chk.Float64(tst, "p[halo]", 1e-15, c.P[c.X*c.Y-1], 1)
}

func Test_kernels04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kernels04. window of conductivity in CG initialisation")

	ex := newExecutor(tst, 1)
	defer ex.Close()

	// halo 2: w is set on the inner halo ring but not on the outermost one
	c := grid.NewChunk(3, 3, 2, 0, 0)
	c.Density.Fill(2)
	c.Energy.Fill(1.5)
	c.W.Fill(-1)
	CgInitU(ex, c.X, c.Y, inp.Conductivity, c.P, c.R, c.U, c.W, c.Density, c.Energy)
	chk.Float64(tst, "w(0,0)", 1e-15, c.W[0], -1)
	chk.Float64(tst, "w(1,1)", 1e-15, c.W[1+1*c.X], 2)
	chk.Float64(tst, "w(1,3)", 1e-15, c.W[1+3*c.X], 2)
	chk.Float64(tst, "u(0,0)", 1e-15, c.U[0], 3)
	CgInitK(ex, c.X, c.Y, c.HaloDepth, c.W, c.Kx, c.Ky, 0.3, 0.6)
	i := 2 + 2*c.X
	chk.Float64(tst, "kx", 1e-15, c.Kx[i], 0.3*4/8)
	chk.Float64(tst, "ky", 1e-15, c.Ky[i], 0.6*4/8)

	// halo 1: w is never set on the ring read at the first interior cell
	c = grid.NewChunk(3, 3, 1, 0, 0)
	c.Density.Fill(2)
	CgInitU(ex, c.X, c.Y, inp.RecipConductivity, c.P, c.R, c.U, c.W, c.Density, c.Energy)
	chk.Float64(tst, "w(1,1)", 1e-15, c.W[1+1*c.X], 0.5)
	CgInitK(ex, c.X, c.Y, c.HaloDepth, c.W, c.Kx, c.Ky, 1, 1)
	if !math.IsInf(c.Kx[1+1*c.X], 1) {
		tst.Errorf("kx at first interior cell should be +Inf with halo 1. got %g\n", c.Kx[1+1*c.X])
		return
	}
}

func Test_kernels05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kernels05. Jacobi initialisation")

	ex := newExecutor(tst, 2)
	defer ex.Close()

	c := grid.NewChunk(2, 2, 2, 0, 0)
	c.Density.Fill(1)
	c.Density[3+2*c.X] = 3 // second interior column, first interior row
	c.Energy.Fill(2)
	JacobiInit(ex, c.X, c.Y, c.HaloDepth, inp.Conductivity, 1, 2, c.U, c.U0, c.Density, c.Energy, c.Kx, c.Ky)

	// face between cells (2,2) and (3,2) sees densities 1 and 3
	chk.Float64(tst, "kx", 1e-15, c.Kx[3+2*c.X], 1*(1+3)/(2*1*3.0))
	chk.Float64(tst, "ky", 1e-15, c.Ky[3+2*c.X], 2*(1+3)/(2*1*3.0))
	chk.Float64(tst, "kx", 1e-15, c.Kx[2+2*c.X], 1)
	chk.Float64(tst, "u0", 1e-15, c.U0[3+2*c.X], 6)
	chk.Float64(tst, "u0", 1e-15, c.U0[1+1*c.X], 2)
	chk.Float64(tst, "u0", 1e-15, c.U0[0], 0)

	// reciprocal
	JacobiInit(ex, c.X, c.Y, c.HaloDepth, inp.RecipConductivity, 1, 2, c.U, c.U0, c.Density, c.Energy, c.Kx, c.Ky)
	chk.Float64(tst, "kx", 1e-15, c.Kx[3+2*c.X], (1+1/3.0)/(2*1/3.0))

	// halo 1: faces shared with the right and top halo are set too
	c = grid.NewChunk(2, 2, 1, 0, 0)
	c.Density.Fill(2)
	JacobiInit(ex, c.X, c.Y, c.HaloDepth, inp.Conductivity, 1, 2, c.U, c.U0, c.Density, c.Energy, c.Kx, c.Ky)
	chk.Float64(tst, "kx(x-1,1)", 1e-15, c.Kx[c.X-1+1*c.X], 0.5)
	chk.Float64(tst, "ky(1,y-1)", 1e-15, c.Ky[1+(c.Y-1)*c.X], 1)
	chk.Float64(tst, "kx(0,1)", 1e-15, c.Kx[0+1*c.X], 0)
}

func Test_kernels06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kernels06. finalise and store energy")

	ex := newExecutor(tst, 4)
	defer ex.Close()

	c := grid.NewChunk(3, 2, 1, 0, 0)
	c.U.Fill(6)
	c.Density.Fill(2)
	c.Energy.Fill(-1)
	Finalise(ex, c.X, c.Y, c.HaloDepth, c.U, c.Density, c.Energy)
	chk.Array(tst, "energy", 1e-15, interiorValues(c, c.Energy), utlOnes(6, 3))
	chk.Float64(tst, "energy[halo]", 1e-15, c.Energy[0], -1)

	c.Energy0.Fill(7)
	StoreEnergy(ex, c.X, c.Y, c.Energy0, c.Energy)
	chk.Array(tst, "energy", 1e-15, c.Energy, utlOnes(c.X*c.Y, 7))
}

func Test_kernels07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kernels07. Chebyshev and PPCG updates")

	ex := newExecutor(tst, 2)
	defer ex.Close()

	c := grid.NewChunk(3, 3, 2, 0, 0)
	h := c.HaloDepth
	c.U.Fill(1)
	c.U0.Fill(3)

	// without conduction: w = u, r = u0 - u, p = r/θ, then u += p
	ChebyInit(ex, c.X, c.Y, h, 4, c.P, c.R, c.U, c.U0, c.W, c.Kx, c.Ky)
	chk.Array(tst, "r", 1e-15, interiorValues(c, c.R), utlOnes(9, 2))
	chk.Array(tst, "p", 1e-15, interiorValues(c, c.P), utlOnes(9, 0.5))
	ChebyCalcU(ex, c.X, c.Y, h, c.P, c.U)
	chk.Array(tst, "u", 1e-15, interiorValues(c, c.U), utlOnes(9, 1.5))

	// p = α·p + β·r
	ChebyIterate(ex, c.X, c.Y, h, 2, 0.25, c.P, c.R, c.U, c.U0, c.W, c.Kx, c.Ky)
	chk.Array(tst, "r", 1e-15, interiorValues(c, c.R), utlOnes(9, 1.5))
	chk.Array(tst, "p", 1e-15, interiorValues(c, c.P), utlOnes(9, 2*0.5+0.25*1.5))

	// sd = r/θ, then u += sd and r -= A·sd
	PpcgInit(ex, c.X, c.Y, h, 3, c.Sd, c.R)
	chk.Array(tst, "sd", 1e-15, interiorValues(c, c.Sd), utlOnes(9, 0.5))
	PpcgCalcUr(ex, c.X, c.Y, h, c.Sd, c.R, c.U, c.Kx, c.Ky)
	chk.Array(tst, "r", 1e-15, interiorValues(c, c.R), utlOnes(9, 1))
	PpcgCalcSd(ex, c.X, c.Y, h, 2, 4, c.Sd, c.R)
	chk.Array(tst, "sd", 1e-15, interiorValues(c, c.Sd), utlOnes(9, 2*0.5+4*1))
}

// utlOnes returns n copies of v
func utlOnes(n int, v float64) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = v
	}
	return res
}
