// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tea

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// Fields holds the interior cells of the global grid, row by row from the bottom-left corner
type Fields struct {
	Xcells  int       // number of columns
	Ycells  int       // number of rows
	Xmin    float64   // left of domain
	Ymin    float64   // bottom of domain
	Dx      float64   // cell width
	Dy      float64   // cell height
	Time    float64   // simulation time
	U       la.Vector // [xcells*ycells] energy*density
	Density la.Vector // [xcells*ycells] density
	Energy  la.Vector // [xcells*ycells] energy
}

// GatherFields collects the interior of all chunks into one global grid
func (o *TEA) GatherFields() (res *Fields) {
	nx, ny := o.Sim.Xcells, o.Sim.Ycells
	res = &Fields{Xcells: nx, Ycells: ny, Xmin: o.Sim.Xmin, Ymin: o.Sim.Ymin, Dx: o.Sim.Dx, Dy: o.Sim.Dy, Time: o.Time}
	res.U = la.NewVector(nx * ny)
	res.Density = la.NewVector(nx * ny)
	res.Energy = la.NewVector(nx * ny)
	for _, c := range o.Dom.Chunks {
		h := c.HaloDepth
		for jj := 0; jj < c.Ycells(); jj++ {
			for kk := 0; kk < c.Xcells(); kk++ {
				l := (kk + h) + (jj+h)*c.X
				g := (c.Left + kk) + (c.Bottom+jj)*nx
				res.U[g] = c.U[l]
				res.Density[g] = c.Density[l]
				res.Energy[g] = c.Energy[l]
			}
		}
	}
	return
}

// At returns the index of cell (i,j) of the global grid
func (o *Fields) At(i, j int) int {
	return i + j*o.Xcells
}

// SaveFields saves the interior fields of all chunks to a single file
func (o *TEA) SaveFields(verbose bool) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := GetEncoder(&buf, o.Sim.EncType)

	// encode fields
	err = enc.Encode(o.GatherFields())
	if err != nil {
		return chk.Err("cannot encode fields:\n%v", err)
	}

	// save file
	fn := out_fld_path(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType)
	return save_file(fn, &buf, verbose)
}

// ReadFields reads fields saved by SaveFields
func ReadFields(dir, fnkey, enctype string) (o *Fields, err error) {

	// open file
	fn := out_fld_path(dir, fnkey, enctype)
	fil, err := os.Open(fn)
	if err != nil {
		return nil, chk.Err("cannot open fields file:\n%v", err)
	}
	defer fil.Close()

	// decode fields
	o = new(Fields)
	dec := GetDecoder(fil, enctype)
	err = dec.Decode(o)
	if err != nil {
		return nil, chk.Err("cannot decode fields:\n%v", err)
	}
	if len(o.U) != o.Xcells*o.Ycells {
		return nil, chk.Err("fields file has %d values but grid has %d×%d cells", len(o.U), o.Xcells, o.Ycells)
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_fld_path(dir, fnkey, enctype string) string {
	return path.Join(dir, io.Sf("%s_fld.%s", fnkey, enctype))
}

func save_file(filename string, buf *bytes.Buffer, verbose bool) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	_, err = fil.Write(buf.Bytes())
	if err != nil {
		return chk.Err("cannot write file <%s>:\n%v", filename, err)
	}
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
