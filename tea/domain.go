// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tea

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/gotea/grid"
	"github.com/cpmech/gotea/inp"
	"github.com/cpmech/gotea/par"
)

// Domain holds all chunks living in this process and the execution context that runs their
// kernels. Global scalars are the sums of the per-chunk reductions, taken in chunk order.
type Domain struct {

	// input
	Sim     *inp.Settings // [from TEA] settings
	Ex      *par.Executor // execution context
	Verbose bool          // [from TEA] show messages

	// chunks
	Chunks []*grid.Chunk // all chunks; numbered row by row from the bottom-left corner

	// CG coefficients of the current solve; used by the eigenvalue estimate
	CgAlphas []float64 // [maxiters]
	CgBetas  []float64 // [maxiters]

	// Chebyshev data of the current solve
	Eigmin      float64   // min eigenvalue estimate
	Eigmax      float64   // max eigenvalue estimate
	Theta       float64   // (eigmax+eigmin)/2
	ChebyAlphas []float64 // Chebyshev or PPCG inner coefficients
	ChebyBetas  []float64 // Chebyshev or PPCG inner coefficients

	// auxiliary
	exchange grid.Exchange // fields to exchange
}

// NewDomain allocates chunks and the executor
func NewDomain(sim *inp.Settings) (o *Domain, err error) {
	o = new(Domain)
	o.Sim = sim
	o.Ex, err = par.NewExecutor(sim.GroupSize, sim.Workers)
	if err != nil {
		return nil, chk.Err("cannot allocate executor:\n%v", err)
	}
	o.Chunks, err = grid.Decompose(sim.Xcells, sim.Ycells, sim.HaloDepth, sim.Nchunks)
	if err != nil {
		o.Ex.Close()
		return nil, chk.Err("cannot decompose grid:\n%v", err)
	}
	o.CgAlphas = make([]float64, sim.MaxIters)
	o.CgBetas = make([]float64, sim.MaxIters)
	return
}

// Free releases all chunks and the executor
func (o *Domain) Free() {
	for _, c := range o.Chunks {
		c.Free()
	}
	o.Ex.Close()
}

// SetIniVals computes the geometry of all chunks, applies the initial states, primes the halos
// and stores the initial energy
func (o *Domain) SetIniVals() {
	for _, c := range o.Chunks {
		xmin := o.Sim.Xmin + o.Sim.Dx*float64(c.Left)
		ymin := o.Sim.Ymin + o.Sim.Dy*float64(c.Bottom)
		grid.SetChunkData(o.Ex, c, xmin, ymin, o.Sim.Dx, o.Sim.Dy)
		grid.SetChunkState(o.Ex, c, o.Sim.States)
	}
	o.HaloUpdate(2, grid.Density, grid.Energy0, grid.Energy)
	o.Each(func(c *grid.Chunk) {
		StoreEnergy(o.Ex, c.X, c.Y, c.Energy0, c.Energy)
	})
}

// FieldSummary returns the global volume, mass, internal energy and temperature
func (o *Domain) FieldSummary() (vol, mass, ie, temp float64) {
	for _, c := range o.Chunks {
		v, m, e, t := grid.FieldSummary(o.Ex, c)
		vol += v
		mass += m
		ie += e
		temp += t
	}
	return
}

// HaloUpdate exchanges the given fields with depth cells; depth is limited by the halo of the chunks
func (o *Domain) HaloUpdate(depth int, fields ...grid.Field) {
	depth = utl.Imin(depth, o.Sim.HaloDepth)
	o.exchange.Reset()
	o.exchange.Set(fields...)
	grid.HaloUpdate(o.Ex, o.Chunks, o.exchange, depth)
}

// Each runs f for every chunk
func (o *Domain) Each(f func(c *grid.Chunk)) {
	for _, c := range o.Chunks {
		f(c)
	}
}

// Sum runs f for every chunk and returns the sum of the results
func (o *Domain) Sum(f func(c *grid.Chunk) float64) (res float64) {
	for _, c := range o.Chunks {
		res += f(c)
	}
	return
}
