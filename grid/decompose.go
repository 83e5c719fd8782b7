// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Decompose splits a global grid with xcells × ycells cells into nchunks chunks.
//
//  The layout nx × ny (nx*ny == nchunks) minimises 2*((xcells/nx)² + (ycells/ny)²). Remainder
//  cells go to the first columns/rows of chunks. Chunks are numbered row by row, starting at the
//  bottom-left corner; faces on the domain boundary are marked with ExternalFace.
func Decompose(xcells, ycells, halo, nchunks int) (chunks []*Chunk, err error) {

	// find layout
	if nchunks < 1 {
		return nil, chk.Err("number of chunks must be positive. %d is invalid", nchunks)
	}
	nx, ny := 0, 0
	best := math.MaxFloat64
	X, Y := float64(xcells), float64(ycells)
	for xx := 1; xx <= nchunks; xx++ {
		if nchunks%xx != 0 {
			continue
		}
		yy := nchunks / xx
		perimeter := ((X/float64(xx))*(X/float64(xx)) + (Y/float64(yy))*(Y/float64(yy))) * 2
		if perimeter < best {
			nx, ny = xx, yy
			best = perimeter
		}
	}

	// cells per chunk
	dx, dy := xcells/nx, ycells/ny
	modx, mody := xcells%nx, ycells%ny
	if dx < halo || dy < halo {
		return nil, chk.Err("cannot split %d×%d cells into %d×%d chunks with halo depth %d: chunks would be thinner than the halo",
			xcells, ycells, nx, ny, halo)
	}

	// allocate chunks
	chunks = make([]*Chunk, nchunks)
	addyPrev := 0
	for yy := 0; yy < ny; yy++ {
		addy := 0
		if yy < mody {
			addy = 1
		}
		addxPrev := 0
		for xx := 0; xx < nx; xx++ {
			addx := 0
			if xx < modx {
				addx = 1
			}
			idx := xx + yy*nx
			c := NewChunk(dx+addx, dy+addy, halo, xx*dx+addxPrev, yy*dy+addyPrev)
			if xx > 0 {
				c.Neighbours[Left] = idx - 1
			}
			if xx < nx-1 {
				c.Neighbours[Right] = idx + 1
			}
			if yy > 0 {
				c.Neighbours[Bottom] = idx - nx
			}
			if yy < ny-1 {
				c.Neighbours[Top] = idx + nx
			}
			chunks[idx] = c
			addxPrev += addx
		}
		addyPrev += addy
	}
	return
}
