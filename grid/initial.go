// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gotea/inp"
	"github.com/cpmech/gotea/par"
)

// SetChunkData computes the coordinates, cell sizes, volumes and face areas of a chunk.
//  Input:
//   xmin, ymin -- coordinates of the lower-left corner of the chunk's first interior cell
//   dx, dy     -- cell sizes
func SetChunkData(ex *par.Executor, o *Chunk, xmin, ymin, dx, dy float64) {
	halo := float64(o.HaloDepth)

	// vertices
	ex.For(o.X+1, func(i int) {
		o.VertexX[i] = xmin + dx*(float64(i)-halo)
		o.VertexDx[i] = dx
	})
	ex.For(o.Y+1, func(j int) {
		o.VertexY[j] = ymin + dy*(float64(j)-halo)
		o.VertexDy[j] = dy
	})

	// cell centres
	ex.For(o.X, func(i int) {
		o.CellX[i] = 0.5 * (o.VertexX[i] + o.VertexX[i+1])
		o.CellDx[i] = dx
	})
	ex.For(o.Y, func(j int) {
		o.CellY[j] = 0.5 * (o.VertexY[j] + o.VertexY[j+1])
		o.CellDy[j] = dy
	})

	// volumes and areas
	ex.For(o.X*o.Y, func(idx int) {
		o.Volume[idx] = dx * dy
		o.XArea[idx] = dy
		o.YArea[idx] = dx
	})
}

// SetChunkState applies the initial states to a chunk. states[0] is the background and is set
// everywhere; the remaining states overwrite energy0 and density, in order, where their geometry
// holds. Finally u = energy0·density on all cells but the outermost ring.
//
//  Note: SetChunkData must be called first
func SetChunkState(ex *par.Executor, o *Chunk, states []*inp.State) {
	if len(states) == 0 {
		chk.Panic("cannot set chunk state without background state")
	}
	x, y := o.X, o.Y

	// background
	bg := states[0]
	o.Energy0.Fill(bg.Energy)
	o.Density.Fill(bg.Density)

	// other states
	for _, s := range states[1:] {
		state := s
		ex.For(x*y, func(idx int) {
			kk, jj := idx%x, idx/x
			if o.contains(state, kk, jj) {
				o.Energy0[idx] = state.Energy
				o.Density[idx] = state.Density
			}
		})
	}

	// unknown
	ex.For(x*y, func(idx int) {
		kk, jj := idx%x, idx/x
		if kk > 0 && kk < x-1 && jj > 0 && jj < y-1 {
			o.U[idx] = o.Energy0[idx] * o.Density[idx]
		}
	})
}

// contains tells whether cell (kk,jj) belongs to the region of state s
func (o *Chunk) contains(s *inp.State, kk, jj int) bool {
	switch s.Geometry {
	case inp.Rectangular:
		return o.VertexX[kk+1] >= s.Xmin && o.VertexX[kk] < s.Xmax &&
			o.VertexY[jj+1] >= s.Ymin && o.VertexY[jj] < s.Ymax
	case inp.Circular:
		dx := o.CellX[kk] - s.Xmin
		dy := o.CellY[jj] - s.Ymin
		return math.Sqrt(dx*dx+dy*dy) <= s.Radius
	case inp.Point:
		return o.VertexX[kk] == s.Xmin && o.VertexY[jj] == s.Ymin
	}
	return false
}

// FieldSummary computes the total volume, mass, internal energy and temperature over the
// interior cells of a chunk, as four simultaneous tree reductions
func FieldSummary(ex *par.Executor, o *Chunk) (vol, mass, ie, temp float64) {
	x, y, h := o.X, o.Y, o.HaloDepth
	sums := ex.MapReduceN(x*y, 4, func(idx int, v []float64) {
		kk, jj := idx%x, idx/x
		if kk >= h && kk < x-h && jj >= h && jj < y-h {
			cellVol := o.Volume[idx]
			cellMass := cellVol * o.Density[idx]
			v[0] = cellVol
			v[1] = cellMass
			v[2] = cellMass * o.Energy0[idx]
			v[3] = cellMass * o.U[idx]
		}
	})
	return sums[0], sums[1], sums[2], sums[3]
}
