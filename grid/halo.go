// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gotea/par"
)

// HaloKernel updates, packs or unpacks one face of a field.
//  x, y  -- padded dimensions
//  halo  -- halo depth of the chunk
//  buf   -- communication buffer (ignored by update kernels)
//  depth -- width of the band; depth <= halo is not checked
type HaloKernel func(ex *par.Executor, x, y, halo int, buf, field la.Vector, depth int)

// kernels indexed by face
var (
	updateKernels = [NumFaces]HaloKernel{UpdateLeft, UpdateRight, UpdateTop, UpdateBottom}
	packKernels   = [NumFaces]HaloKernel{PackLeft, PackRight, PackTop, PackBottom}
	unpackKernels = [NumFaces]HaloKernel{UnpackLeft, UnpackRight, UnpackTop, UnpackBottom}
)

// BufferLength returns the number of values exchanged through a face
func BufferLength(x, y int, face Face, depth int) int {
	if face == Left || face == Right {
		return y * depth
	}
	return x * depth
}

// local updates (reflective boundaries) ///////////////////////////////////////////////////////////

// UpdateLeft mirrors the first interior columns into the left halo
func UpdateLeft(ex *par.Executor, x, y, halo int, _, field la.Vector, depth int) {
	ex.For(y*depth, func(i int) {
		flip := i % depth
		lines := i / depth
		to := lines*(x-depth) + halo - depth + i
		from := to + 2*(depth-flip) - 1
		field[to] = field[from]
	})
}

// UpdateRight mirrors the last interior columns into the right halo
func UpdateRight(ex *par.Executor, x, y, halo int, _, field la.Vector, depth int) {
	ex.For(y*depth, func(i int) {
		flip := i % depth
		lines := i / depth
		to := x - halo + lines*(x-depth) + i
		from := to - (1 + flip*2)
		field[to] = field[from]
	})
}

// UpdateTop mirrors the last interior rows into the top halo
func UpdateTop(ex *par.Executor, x, y, halo int, _, field la.Vector, depth int) {
	ex.For(x*depth, func(i int) {
		lines := i / x
		to := x*(y-halo) + i
		from := to - (1+lines*2)*x
		field[to] = field[from]
	})
}

// UpdateBottom mirrors the first interior rows into the bottom halo
func UpdateBottom(ex *par.Executor, x, y, halo int, _, field la.Vector, depth int) {
	ex.For(x*depth, func(i int) {
		lines := i / x
		from := x*halo + i
		to := from - (1+lines*2)*x
		field[to] = field[from]
	})
}

// packing /////////////////////////////////////////////////////////////////////////////////////////

// PackLeft copies the depth interior columns next to the left halo into buf.
// Layout: buf[line*depth + offset]
func PackLeft(ex *par.Executor, x, y, halo int, buf, field la.Vector, depth int) {
	ex.For(y*depth, func(i int) {
		lines := i / depth
		buf[i] = field[halo+lines*(x-depth)+i]
	})
}

// PackRight copies the depth interior columns next to the right halo into buf
func PackRight(ex *par.Executor, x, y, halo int, buf, field la.Vector, depth int) {
	ex.For(y*depth, func(i int) {
		lines := i / depth
		buf[i] = field[x-halo-depth+lines*(x-depth)+i]
	})
}

// PackTop copies the depth interior rows below the top halo into buf.
// Layout: buf[row*x + column]
func PackTop(ex *par.Executor, x, y, halo int, buf, field la.Vector, depth int) {
	offset := x * (y - halo - depth)
	ex.For(x*depth, func(i int) {
		buf[i] = field[offset+i]
	})
}

// PackBottom copies the depth interior rows above the bottom halo into buf
func PackBottom(ex *par.Executor, x, y, halo int, buf, field la.Vector, depth int) {
	offset := x * halo
	ex.For(x*depth, func(i int) {
		buf[i] = field[offset+i]
	})
}

// UnpackLeft writes buf into the innermost depth columns of the left halo
func UnpackLeft(ex *par.Executor, x, y, halo int, buf, field la.Vector, depth int) {
	ex.For(y*depth, func(i int) {
		lines := i / depth
		field[halo-depth+lines*(x-depth)+i] = buf[i]
	})
}

// UnpackRight writes buf into the innermost depth columns of the right halo
func UnpackRight(ex *par.Executor, x, y, halo int, buf, field la.Vector, depth int) {
	ex.For(y*depth, func(i int) {
		lines := i / depth
		field[x-halo+lines*(x-depth)+i] = buf[i]
	})
}

// UnpackTop writes buf into the innermost depth rows of the top halo
func UnpackTop(ex *par.Executor, x, y, halo int, buf, field la.Vector, depth int) {
	offset := x * (y - halo)
	ex.For(x*depth, func(i int) {
		field[offset+i] = buf[i]
	})
}

// UnpackBottom writes buf into the innermost depth rows of the bottom halo
func UnpackBottom(ex *par.Executor, x, y, halo int, buf, field la.Vector, depth int) {
	offset := x * (halo - depth)
	ex.For(x*depth, func(i int) {
		field[offset+i] = buf[i]
	})
}
