// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gotea/par"
)

// Debug activates the precondition checks of the halo drivers
var Debug = false

// exchangeOrder is the order in which fields are updated
var exchangeOrder = []Field{Density, P, Energy0, Energy, U, Sd}

// LocalHalos applies the reflective boundary update to all enabled fields on every face lying on
// the physical boundary
func (o *Chunk) LocalHalos(ex *par.Executor, exchange Exchange, depth int) {
	if Debug {
		o.checkDepth(depth)
	}
	for _, f := range exchangeOrder {
		if !exchange[f] {
			continue
		}
		field := o.Field(f)
		for face := Left; face < NumFaces; face++ {
			if o.Neighbours[face] == ExternalFace {
				updateKernels[face](ex, o.X, o.Y, o.HaloDepth, nil, field, depth)
			}
		}
	}
}

// PackOrUnpack moves one face of a field between the chunk and buf, staging through Comms.
//  Input:
//   face  -- face to be packed or unpacked
//   pack  -- true: field => buf; false: buf => field
//   field -- field buffer belonging to this chunk
//   depth -- number of cells to exchange; 1 <= depth <= HaloDepth
//   buf   -- caller's buffer with at least BufferLength values
func (o *Chunk) PackOrUnpack(ex *par.Executor, face Face, pack bool, field la.Vector, depth int, buf []float64) {
	n := BufferLength(o.X, o.Y, face, depth)
	if Debug {
		o.checkDepth(depth)
		if len(buf) < n {
			chk.Panic("buffer for %s face has %d values but %d are needed", face, len(buf), n)
		}
		if len(field) != o.X*o.Y {
			chk.Panic("field has %d values but chunk has %d cells", len(field), o.X*o.Y)
		}
	}
	comms := o.Comms[:n]
	if pack {
		packKernels[face](ex, o.X, o.Y, o.HaloDepth, comms, field, depth)
		copy(buf, comms)
		return
	}
	copy(comms, buf[:n])
	unpackKernels[face](ex, o.X, o.Y, o.HaloDepth, comms, field, depth)
}

// HaloUpdate exchanges the halos of all enabled fields among chunks living in this process and
// then applies the reflective update on the physical boundary.
//
//  The left/right exchange runs before the top/bottom exchange; since the top/bottom bands span
//  the whole padded width, corner halo cells receive the values of diagonal neighbours.
func HaloUpdate(ex *par.Executor, chunks []*Chunk, exchange Exchange, depth int) {
	if !exchange.Any() {
		return
	}
	var buf []float64
	for _, faces := range [][2]Face{{Left, Right}, {Bottom, Top}} {
		for _, c := range chunks {
			for _, face := range faces {
				nb := c.Neighbours[face]
				if nb == ExternalFace {
					continue
				}
				n := BufferLength(c.X, c.Y, face, depth)
				if cap(buf) < n {
					buf = make([]float64, n)
				}
				for _, f := range exchangeOrder {
					if !exchange[f] {
						continue
					}
					c.PackOrUnpack(ex, face, true, c.Field(f), depth, buf[:n])
					chunks[nb].PackOrUnpack(ex, face.Opposite(), false, chunks[nb].Field(f), depth, buf[:n])
				}
			}
		}
	}
	for _, c := range chunks {
		c.LocalHalos(ex, exchange, depth)
	}
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func (o *Chunk) checkDepth(depth int) {
	if depth < 1 || depth > o.HaloDepth {
		chk.Panic("halo depth of exchange (%d) must be in [1, %d]", depth, o.HaloDepth)
	}
}
