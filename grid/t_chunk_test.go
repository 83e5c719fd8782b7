// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gotea/inp"
)

func Test_chunk01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("chunk01. allocation")

	c := NewChunk(4, 3, 2, 10, 20)
	chk.Int(tst, "X", c.X, 8)
	chk.Int(tst, "Y", c.Y, 7)
	chk.Int(tst, "xcells", c.Xcells(), 4)
	chk.Int(tst, "ycells", c.Ycells(), 3)
	chk.Int(tst, "len(u)", len(c.U), 56)
	chk.Int(tst, "len(vertex_x)", len(c.VertexX), 9)
	chk.Int(tst, "len(cell_y)", len(c.CellY), 7)
	chk.Int(tst, "len(comms)", len(c.Comms), 16)
	chk.Ints(tst, "neighbours", c.Neighbours[:], []int{ExternalFace, ExternalFace, ExternalFace, ExternalFace})
	if !c.Interior(2, 2) || c.Interior(1, 2) || c.Interior(6, 2) || c.Interior(2, 5) {
		tst.Errorf("Interior is incorrect")
	}

	for f := Density; f < NumFields; f++ {
		if len(c.Field(f)) != c.X*c.Y {
			tst.Errorf("field %d has wrong length", f)
		}
	}
	for face := Left; face < NumFaces; face++ {
		if face.Opposite().Opposite() != face || face.Opposite() == face {
			tst.Errorf("opposite of %s is wrong", face)
		}
	}

	c.Free()
	if c.U != nil || c.Comms != nil {
		tst.Errorf("Free should release all buffers")
	}
	chk.Int(tst, "X after Free", c.X, 8)
}

func Test_decomp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("decomp01. layout and neighbours")

	// 2×2
	chunks, err := Decompose(10, 10, 2, 4)
	if err != nil {
		tst.Errorf("Decompose failed:\n%v", err)
		return
	}
	for i, c := range chunks {
		chk.Int(tst, io.Sf("xcells%d", i), c.Xcells(), 5)
		chk.Int(tst, io.Sf("ycells%d", i), c.Ycells(), 5)
	}
	chk.Ints(tst, "nb0", chunks[0].Neighbours[:], []int{ExternalFace, 1, 2, ExternalFace})
	chk.Ints(tst, "nb1", chunks[1].Neighbours[:], []int{0, ExternalFace, 3, ExternalFace})
	chk.Ints(tst, "nb2", chunks[2].Neighbours[:], []int{ExternalFace, 3, ExternalFace, 0})
	chk.Ints(tst, "nb3", chunks[3].Neighbours[:], []int{2, ExternalFace, ExternalFace, 1})
	chk.Int(tst, "left3", chunks[3].Left, 5)
	chk.Int(tst, "bottom3", chunks[3].Bottom, 5)

	// 3×1 with remainder
	chunks, err = Decompose(11, 4, 2, 3)
	if err != nil {
		tst.Errorf("Decompose failed:\n%v", err)
		return
	}
	chk.Ints(tst, "xcells", []int{chunks[0].Xcells(), chunks[1].Xcells(), chunks[2].Xcells()}, []int{4, 4, 3})
	chk.Ints(tst, "lefts", []int{chunks[0].Left, chunks[1].Left, chunks[2].Left}, []int{0, 4, 8})
	chk.Ints(tst, "nb1", chunks[1].Neighbours[:], []int{0, 2, ExternalFace, ExternalFace})

	// 1×3 with remainder
	chunks, err = Decompose(4, 11, 1, 3)
	if err != nil {
		tst.Errorf("Decompose failed:\n%v", err)
		return
	}
	chk.Ints(tst, "bottoms", []int{chunks[0].Bottom, chunks[1].Bottom, chunks[2].Bottom}, []int{0, 4, 8})
	chk.Ints(tst, "nb1", chunks[1].Neighbours[:], []int{ExternalFace, ExternalFace, 2, 0})

	// errors
	if _, err = Decompose(10, 10, 2, 0); err == nil {
		tst.Errorf("zero chunks should fail")
	}
	if _, err = Decompose(3, 3, 2, 4); err == nil {
		tst.Errorf("chunks thinner than halo should fail")
	}
}

func Test_state01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state01. chunk data and geometries")

	ex := newExecutor(tst, 2)
	defer ex.Close()

	c := NewChunk(4, 4, 1, 0, 0)
	SetChunkData(ex, c, 0, 0, 1, 1)
	chk.Array(tst, "vertex_x", 1e-15, c.VertexX, []float64{-1, 0, 1, 2, 3, 4, 5})
	chk.Array(tst, "cell_y", 1e-15, c.CellY, []float64{-0.5, 0.5, 1.5, 2.5, 3.5, 4.5})
	chk.Float64(tst, "volume", 1e-15, c.Volume[7], 1)
	chk.Float64(tst, "x_area", 1e-15, c.XArea[7], 1)

	states := []*inp.State{
		{Energy: 1, Density: 1},
		{Geom: "point", Xmin: 2, Ymin: 2, Energy: 7, Density: 3},
		{Geom: "rectangle", Xmin: 1, Ymin: 1, Xmax: 2, Ymax: 2, Energy: 5, Density: 2},
	}
	for i, s := range states {
		if err := s.PostProcess(i == 0); err != nil {
			tst.Errorf("PostProcess failed:\n%v", err)
			return
		}
	}
	SetChunkState(ex, c, states)

	x := c.X
	for jj := 0; jj < c.Y; jj++ {
		for kk := 0; kk < x; kk++ {
			idx := kk + jj*x
			e, d := 1.0, 1.0
			if kk >= 1 && kk <= 2 && jj >= 1 && jj <= 2 {
				e, d = 5, 2
			}
			if kk == 3 && jj == 3 {
				e, d = 7, 3
			}
			chk.Float64(tst, io.Sf("energy0(%d,%d)", kk, jj), 1e-17, c.Energy0[idx], e)
			chk.Float64(tst, io.Sf("density(%d,%d)", kk, jj), 1e-17, c.Density[idx], d)
			u := 0.0
			if kk > 0 && kk < x-1 && jj > 0 && jj < c.Y-1 {
				u = e * d
			}
			chk.Float64(tst, io.Sf("u(%d,%d)", kk, jj), 1e-17, c.U[idx], u)
		}
	}

	// circle centred on (2,2) covers the four cells around it
	circ := &inp.State{Geom: "circle", Xmin: 2, Ymin: 2, Radius: 0.75, Energy: 9, Density: 9}
	if err := circ.PostProcess(false); err != nil {
		tst.Errorf("PostProcess failed:\n%v", err)
		return
	}
	SetChunkState(ex, c, []*inp.State{states[0], circ})
	count := 0
	for _, d := range c.Density {
		if d == 9 {
			count++
		}
	}
	chk.Int(tst, "cells in circle", count, 4)
	chk.Float64(tst, "density(2,2)", 1e-17, c.Density[2+2*x], 9)
	chk.Float64(tst, "density(3,3)", 1e-17, c.Density[3+3*x], 9)
}

func Test_summary01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("summary01. field summary")

	ex := newExecutor(tst, 3)
	defer ex.Close()

	states := []*inp.State{
		{Energy: 2, Density: 1},
		{Geom: "rectangle", Xmin: 0, Ymin: 0, Xmax: 2, Ymax: 2, Energy: 5, Density: 3},
	}
	for i, s := range states {
		if err := s.PostProcess(i == 0); err != nil {
			tst.Errorf("PostProcess failed:\n%v", err)
			return
		}
	}

	c := NewChunk(4, 4, 2, 0, 0)
	SetChunkData(ex, c, 0, 0, 1, 1)
	SetChunkState(ex, c, states)
	vol, mass, ie, temp := FieldSummary(ex, c)
	io.Pforan("vol=%v mass=%v ie=%v temp=%v\n", vol, mass, ie, temp)
	chk.Float64(tst, "vol", 1e-14, vol, 16)
	chk.Float64(tst, "mass", 1e-14, mass, 24)
	chk.Float64(tst, "ie", 1e-14, ie, 84)
	chk.Float64(tst, "temp", 1e-14, temp, 204)

	// the same grid split in two chunks
	chunks, err := Decompose(4, 4, 2, 2)
	if err != nil {
		tst.Errorf("Decompose failed:\n%v", err)
		return
	}
	var tot [4]float64
	for _, ch := range chunks {
		SetChunkData(ex, ch, float64(ch.Left), float64(ch.Bottom), 1, 1)
		SetChunkState(ex, ch, states)
		v, m, e, t := FieldSummary(ex, ch)
		tot[0] += v
		tot[1] += m
		tot[2] += e
		tot[3] += t
	}
	chk.Array(tst, "totals", 1e-14, tot[:], []float64{vol, mass, ie, temp})
}
