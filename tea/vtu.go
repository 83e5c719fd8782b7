// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tea

import (
	"bytes"
	"path"

	"github.com/cpmech/gosl/io"
)

// vtkQuad is the VTK code of 4-node quadrilaterals
const vtkQuad = 9

// WriteVTU writes the fields as a VTK unstructured grid of quadrilaterals to <dirout>/<fnkey>.vtu
func (o *Fields) WriteVTU(dirout, fnkey string, verbose bool) (err error) {
	var buf bytes.Buffer
	nv := (o.Xcells + 1) * (o.Ycells + 1)
	nc := o.Xcells * o.Ycells
	io.Ff(&buf, "<?xml version=\"1.0\"?>\n<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n<UnstructuredGrid>\n")
	io.Ff(&buf, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", nv, nc)
	o.topology(&buf)
	o.cdataWrite(&buf)
	io.Ff(&buf, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")
	return save_file(path.Join(dirout, fnkey+".vtu"), &buf, verbose)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// topology writes vertices row by row and one quadrilateral per cell
func (o *Fields) topology(buf *bytes.Buffer) {

	// coordinates
	nx := o.Xcells + 1
	io.Ff(buf, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for j := 0; j <= o.Ycells; j++ {
		for i := 0; i <= o.Xcells; i++ {
			io.Ff(buf, "%23.15e %23.15e %23.15e ", o.Xmin+o.Dx*float64(i), o.Ymin+o.Dy*float64(j), 0.0)
		}
	}
	io.Ff(buf, "\n</DataArray>\n</Points>\n")

	// connectivities
	io.Ff(buf, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for j := 0; j < o.Ycells; j++ {
		for i := 0; i < o.Xcells; i++ {
			a := i + j*nx
			io.Ff(buf, "%d %d %d %d ", a, a+1, a+1+nx, a+nx)
		}
	}

	// offsets
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	for k := 1; k <= o.Xcells*o.Ycells; k++ {
		io.Ff(buf, "%d ", 4*k)
	}

	// types
	io.Ff(buf, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for k := 0; k < o.Xcells*o.Ycells; k++ {
		io.Ff(buf, "%d ", vtkQuad)
	}
	io.Ff(buf, "\n</DataArray>\n</Cells>\n")
}

// cdataWrite writes density, energy and u per cell
func (o *Fields) cdataWrite(buf *bytes.Buffer) {
	io.Ff(buf, "<CellData Scalars=\"TheScalars\">\n")
	for _, f := range []struct {
		name string
		vals []float64
	}{
		{"density", o.Density},
		{"energy", o.Energy},
		{"u", o.U},
	} {
		io.Ff(buf, "<DataArray type=\"Float64\" Name=\"%s\" NumberOfComponents=\"1\" format=\"ascii\">\n", f.name)
		for _, v := range f.vals {
			io.Ff(buf, "%23.15e ", v)
		}
		io.Ff(buf, "\n</DataArray>\n")
	}
	io.Ff(buf, "</CellData>\n")
}
