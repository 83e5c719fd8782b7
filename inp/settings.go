// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.json) settings file
package inp

import (
	"encoding/json"
	goio "io"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// solver names
const (
	SolverJacobi = "jacobi"
	SolverCG     = "cg"
	SolverCheby  = "cheby"
	SolverPPCG   = "ppcg"
)

// Coefficient selects how the conductivity is computed from the density
type Coefficient int

// coefficients
const (
	Conductivity      Coefficient = iota + 1 // k = density
	RecipConductivity                        // k = 1/density
)

// Settings holds all data for one run
type Settings struct {

	// grid
	Xmin      float64 `json:"xmin"`      // left of domain
	Ymin      float64 `json:"ymin"`      // bottom of domain
	Xmax      float64 `json:"xmax"`      // right of domain
	Ymax      float64 `json:"ymax"`      // top of domain
	Xcells    int     `json:"xcells"`    // number of cells along x
	Ycells    int     `json:"ycells"`    // number of cells along y
	HaloDepth int     `json:"halodepth"` // number of halo cells around each chunk

	// time stepping
	DtInit      float64 `json:"dtinit"`      // time step size
	EndTime     float64 `json:"endtime"`     // final time
	EndStep     int     `json:"endstep"`     // final step
	SummaryFreq int     `json:"summaryfreq"` // number of steps between field summaries; 0 => never

	// linear solver
	Solver         string  `json:"solver"`         // jacobi, cg, cheby or ppcg
	CoefName       string  `json:"coefficient"`    // conductivity or recip_conductivity
	MaxIters       int     `json:"maxiters"`       // max number of iterations per step
	Eps            float64 `json:"eps"`            // convergence tolerance
	ErrorSwitch    bool    `json:"errorswitch"`    // cheby/ppcg: switch on error instead of fixed presteps
	Presteps       int     `json:"presteps"`       // cheby/ppcg: number of CG steps before eigenvalue estimate
	EpsLim         float64 `json:"epslim"`         // cheby/ppcg: error limit used by errorswitch
	PpcgInnerSteps int     `json:"ppcginnersteps"` // ppcg: number of inner polynomial steps
	CheckResult    bool    `json:"checkresult"`    // compute exact residual after each solve
	Expected       float64 `json:"expected"`       // expected final temperature; 0 => skip verification

	// parallelism
	Nchunks   int `json:"nchunks"`   // number of chunks in this process
	GroupSize int `json:"groupsize"` // reduction group size; 0 => default
	Workers   int `json:"workers"`   // number of parallel workers; 0 => GOMAXPROCS

	// output
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/gotea
	Encoder string `json:"encoder"` // encoder name; e.g. "gob" "json"

	// initial states; states[0] is the background
	States []*State `json:"states"`

	// derived
	Dx          float64     // cell width
	Dy          float64     // cell height
	Coefficient Coefficient // coefficient code
	Key         string      // simulation key; e.g. mysim01.json => mysim01 or mysim01-alias
	EncType     string      // encoder type
}

// ReadSettings reads all settings from a JSON file
//  Input:
//   path       -- settings file
//   alias      -- appended to the filename key
//   erasefiles -- create output directory and erase previous results
func ReadSettings(path, alias string, erasefiles bool) (o *Settings, err error) {

	// read file
	_, err = os.Stat(path)
	if err != nil {
		return nil, chk.Err("cannot read settings file %q:\n%v", path, err)
	}
	b := io.ReadFile(path)

	// decode
	o = new(Settings)
	o.SetDefault()
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal settings file %q:\n%v", path, err)
	}

	// filename key
	fnkey := io.FnKey(filepath.Base(path))
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}
	if o.DirOut == "" {
		o.DirOut = "/tmp/gotea/" + fnkey
	}
	o.DirOut = os.ExpandEnv(o.DirOut)

	// derived
	err = o.PostProcess()
	if err != nil {
		return nil, chk.Err("invalid settings in %q:\n%v", path, err)
	}

	// create directory and erase previous results
	if erasefiles {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s):\n%v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}
	return
}

// SetDefault sets defaults values
func (o *Settings) SetDefault() {

	// grid
	o.Xmax = 100
	o.Ymax = 100
	o.Xcells = 10
	o.Ycells = 10
	o.HaloDepth = 2

	// time stepping
	o.DtInit = 0.1
	o.EndTime = 10
	o.EndStep = math.MaxInt32
	o.SummaryFreq = 10

	// linear solver
	o.Solver = SolverCG
	o.CoefName = "conductivity"
	o.MaxIters = 10000
	o.Eps = 1e-15
	o.Presteps = 30
	o.EpsLim = 1e-5
	o.PpcgInnerSteps = 10
	o.CheckResult = true

	// parallelism
	o.Nchunks = 1
	o.Encoder = "gob"
}

// PostProcess validates the just read settings and computes derived values
func (o *Settings) PostProcess() (err error) {

	// grid
	if o.Xcells < 1 || o.Ycells < 1 {
		return chk.Err("number of cells must be positive. %d×%d is invalid", o.Xcells, o.Ycells)
	}
	if o.Xmax <= o.Xmin || o.Ymax <= o.Ymin {
		return chk.Err("domain [%g,%g]×[%g,%g] is empty", o.Xmin, o.Xmax, o.Ymin, o.Ymax)
	}
	if o.HaloDepth < 1 {
		return chk.Err("halo depth must be at least 1. %d is invalid", o.HaloDepth)
	}
	o.Dx = (o.Xmax - o.Xmin) / float64(o.Xcells)
	o.Dy = (o.Ymax - o.Ymin) / float64(o.Ycells)

	// time stepping
	if o.DtInit <= 0 {
		return chk.Err("time step size must be positive. %g is invalid", o.DtInit)
	}

	// solver
	switch o.Solver {
	case SolverJacobi, SolverCG, SolverCheby, SolverPPCG:
	default:
		return chk.Err("cannot find solver named %q", o.Solver)
	}
	switch o.CoefName {
	case "conductivity":
		o.Coefficient = Conductivity
	case "recip_conductivity":
		o.Coefficient = RecipConductivity
	default:
		return chk.Err("cannot find coefficient named %q", o.CoefName)
	}
	if o.MaxIters < 1 {
		return chk.Err("max number of iterations must be positive. %d is invalid", o.MaxIters)
	}
	if o.Solver != SolverJacobi && o.HaloDepth < 2 {
		return chk.Err("solver %q needs halo depth >= 2 because the conductivity ring of CG starts one cell inside the chunk. %d is invalid", o.Solver, o.HaloDepth)
	}
	if o.Solver == SolverPPCG && o.PpcgInnerSteps < 1 {
		return chk.Err("number of inner steps must be positive. %d is invalid", o.PpcgInnerSteps)
	}

	// parallelism
	if o.Nchunks < 1 {
		o.Nchunks = 1
	}

	// encoder
	o.EncType = o.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// states
	if len(o.States) == 0 {
		return chk.Err("at least one (background) state must be given")
	}
	for i, s := range o.States {
		err = s.PostProcess(i == 0)
		if err != nil {
			return chk.Err("state %d is invalid:\n%v", i, err)
		}
	}
	return
}

// NumSteps returns the number of time steps: the smaller of endstep and ceil(endtime/dtinit)
func (o *Settings) NumSteps() int {
	n := int(math.Ceil(o.EndTime/o.DtInit - 1e-10))
	if o.EndStep < n {
		n = o.EndStep
	}
	if n < 0 {
		n = 0
	}
	return n
}

// GetInfo writes the settings as indented JSON
func (o *Settings) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return
	}
	_, err = w.Write(b)
	return
}
