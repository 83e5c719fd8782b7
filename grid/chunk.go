// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the chunks of a structured grid with halo cells, the halo exchange
// protocol, the initial state of chunks and the field summaries
package grid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// ExternalFace marks a chunk face lying on the physical boundary of the domain
const ExternalFace = -1

// Face identifies one side of a chunk
type Face int

// faces
const (
	Left Face = iota
	Right
	Top
	Bottom
	NumFaces
)

// Opposite returns the face of the neighbour touching this face
func (o Face) Opposite() Face {
	switch o {
	case Left:
		return Right
	case Right:
		return Left
	case Top:
		return Bottom
	}
	return Top
}

func (o Face) String() string {
	switch o {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return "unknown"
}

// Field identifies a field that may take part in a halo exchange
type Field int

// exchangeable fields
const (
	Density Field = iota
	Energy0
	Energy
	U
	P
	Sd
	NumFields
)

// Exchange tells which fields take part in the next halo exchange
type Exchange [NumFields]bool

// Reset disables all fields
func (o *Exchange) Reset() {
	for i := range o {
		o[i] = false
	}
}

// Set enables the given fields
func (o *Exchange) Set(fields ...Field) {
	for _, f := range fields {
		o[f] = true
	}
}

// Any tells whether at least one field is enabled
func (o Exchange) Any() bool {
	for _, on := range o {
		if on {
			return true
		}
	}
	return false
}

// Chunk holds one subdomain: its fields, including halo cells, its coordinates, the
// communication buffer and the neighbours topology.
//
//  All per-cell fields have X*Y entries stored row by row: index = kk + jj*X, where kk is
//  the column and jj is the row. X and Y include the halo: X = xcells + 2*HaloDepth.
type Chunk struct {

	// dimensions and topology
	X, Y       int           // padded dimensions (including halo)
	HaloDepth  int           // number of halo cells on each side
	Left       int           // global index of first interior column
	Bottom     int           // global index of first interior row
	Neighbours [NumFaces]int // neighbour chunk index or ExternalFace

	// state fields [X*Y]
	Density0 la.Vector // initial density
	Density  la.Vector // density
	Energy0  la.Vector // energy at start of time step
	Energy   la.Vector // energy at end of time step

	// solver fields [X*Y]
	U  la.Vector // energy*density; unknown of the linear system
	U0 la.Vector // right-hand side
	P  la.Vector // search direction
	R  la.Vector // residual
	Mi la.Vector // preconditioner diagonal
	W  la.Vector // matrix-vector product / coefficient workspace
	Kx la.Vector // conductivity coefficient at left faces
	Ky la.Vector // conductivity coefficient at bottom faces
	Sd la.Vector // PPCG inner search direction

	// geometry fields [X*Y]
	Volume la.Vector // cell volumes
	XArea  la.Vector // areas of x faces
	YArea  la.Vector // areas of y faces

	// coordinates
	VertexX  la.Vector // [X+1]
	VertexDx la.Vector // [X+1]
	VertexY  la.Vector // [Y+1]
	VertexDy la.Vector // [Y+1]
	CellX    la.Vector // [X]
	CellDx   la.Vector // [X]
	CellY    la.Vector // [Y]
	CellDy   la.Vector // [Y]

	// communication
	Comms la.Vector // [max(X,Y)*HaloDepth] staging buffer for packed halos
}

// NewChunk allocates a chunk with xcells × ycells interior cells
//  Input:
//   xcells, ycells -- number of interior cells
//   halo           -- halo depth
//   left, bottom   -- position of the first interior cell in the global grid
func NewChunk(xcells, ycells, halo, left, bottom int) (o *Chunk) {
	if xcells < 1 || ycells < 1 || halo < 1 {
		chk.Panic("cannot allocate chunk with %d×%d cells and halo depth %d", xcells, ycells, halo)
	}
	o = new(Chunk)
	o.X = xcells + 2*halo
	o.Y = ycells + 2*halo
	o.HaloDepth = halo
	o.Left = left
	o.Bottom = bottom
	for i := range o.Neighbours {
		o.Neighbours[i] = ExternalFace
	}
	n := o.X * o.Y
	for _, v := range []*la.Vector{
		&o.Density0, &o.Density, &o.Energy0, &o.Energy,
		&o.U, &o.U0, &o.P, &o.R, &o.Mi, &o.W, &o.Kx, &o.Ky, &o.Sd,
		&o.Volume, &o.XArea, &o.YArea,
	} {
		*v = la.NewVector(n)
	}
	o.VertexX = la.NewVector(o.X + 1)
	o.VertexDx = la.NewVector(o.X + 1)
	o.VertexY = la.NewVector(o.Y + 1)
	o.VertexDy = la.NewVector(o.Y + 1)
	o.CellX = la.NewVector(o.X)
	o.CellDx = la.NewVector(o.X)
	o.CellY = la.NewVector(o.Y)
	o.CellDy = la.NewVector(o.Y)
	o.Comms = la.NewVector(utl.Imax(o.X, o.Y) * halo)
	return
}

// Free releases all buffers owned by the chunk
func (o *Chunk) Free() {
	*o = Chunk{X: o.X, Y: o.Y, HaloDepth: o.HaloDepth, Left: o.Left, Bottom: o.Bottom, Neighbours: o.Neighbours}
}

// Field returns the buffer of an exchangeable field
func (o *Chunk) Field(f Field) la.Vector {
	switch f {
	case Density:
		return o.Density
	case Energy0:
		return o.Energy0
	case Energy:
		return o.Energy
	case U:
		return o.U
	case P:
		return o.P
	case Sd:
		return o.Sd
	}
	chk.Panic("cannot find field %d", f)
	return nil
}

// Xcells returns the number of interior columns
func (o *Chunk) Xcells() int { return o.X - 2*o.HaloDepth }

// Ycells returns the number of interior rows
func (o *Chunk) Ycells() int { return o.Y - 2*o.HaloDepth }

// Interior tells whether cell (kk,jj) lies inside the halo-depth inset window
func (o *Chunk) Interior(kk, jj int) bool {
	h := o.HaloDepth
	return kk >= h && kk < o.X-h && jj >= h && jj < o.Y-h
}
