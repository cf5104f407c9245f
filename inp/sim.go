// Copyright 2016 The Prionfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/prionfem
	Encoder string `json:"encoder"` // encoder name; e.g. "gob" or "json"
	Steady  bool   `json:"steady"`  // steady simulation
	Debug   bool   `json:"debug"`   // activate debugging
}

// LinSolData holds data for the linear solver
type LinSolData struct {
	Name      string  `json:"name"`      // "cg", "umfpack" or "mumps"
	Precond   string  `json:"precond"`   // "ssor" or "jacobi" (cg only)
	Omega     float64 `json:"omega"`     // relaxation factor (ssor only)
	MaxIt     int     `json:"maxit"`     // maximum number of iterations (cg only)
	Rtol      float64 `json:"rtol"`      // relative tolerance w.r.t initial residual (cg only)
	Symmetric bool    `json:"symmetric"` // use symmetric solver
	Verbose   bool    `json:"verbose"`   // verbose?
}

// SetDefault sets default values
func (o *LinSolData) SetDefault() {
	o.Name = "cg"
	o.Precond = "ssor"
	o.Omega = 1.0
	o.MaxIt = 1000
	o.Rtol = 1e-6
}

// SolverData holds nonlinear solver data
type SolverData struct {

	// nonlinear solver
	Type       string  `json:"type"`       // nonlinear solver type; "imp" => implicit (Newton-Raphson)
	NmaxIt     int     `json:"nmaxit"`     // maximum number of iterations
	FbTol      float64 `json:"fbtol"`      // absolute tolerance on the L2 norm of fb
	StopOnFail bool    `json:"stoponfail"` // abort the run when iterations are exhausted
	ShowR      bool    `json:"showr"`      // show residual
	ShowT      bool    `json:"showt"`      // show time stepping

	// transient analyses
	DtMin float64 `json:"dtmin"` // minimum value of Dt
	Theta float64 `json:"theta"` // θ-method; 1 => backward Euler

	// constants
	Eps float64 `json:"eps"` // smallest number satisfying 1.0 + ϵ > 1.0
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.Type = "imp"
	o.NmaxIt = 1000
	o.FbTol = 1e-10
	o.DtMin = 1e-8
	o.Theta = 1.0
	o.Eps = 1e-16
}

// ElemData holds element data
type ElemData struct {
	Tag  int    `json:"tag"`  // tag of element
	Mat  string `json:"mat"`  // material name
	Type string `json:"type"` // type of element; e.g. "diffusion"
	Nip  int    `json:"nip"`  // number of integration points; 0 => use default
	Nipf int    `json:"nipf"` // number of integration points on face; 0 => use default
	Afld string `json:"afld"` // name of reaction-rate field overriding the material constant
}

// Region holds region data
type Region struct {

	// input data
	Desc      string      `json:"desc"`      // description of region
	Mshfile   string      `json:"mshfile"`   // file path of file with mesh data
	ElemsData []*ElemData `json:"elemsdata"` // list of elements data
	AbsPath   bool        `json:"abspath"`   // mesh filename is given in absolute path

	// derived
	Msh      *Mesh       // the mesh
	etag2idx map[int]int // maps element tag to element index in ElemsData slice
}

// Etag2data returns the ElemData corresponding to element tag
//  Note: returns nil if not found
func (o *Region) Etag2data(etag int) *ElemData {
	idx, ok := o.etag2idx[etag]
	if !ok {
		return nil
	}
	return o.ElemsData[idx]
}

// FaceBc holds face boundary condition
type FaceBc struct {
	Tag   int      `json:"tag"`   // tag of face
	Keys  []string `json:"keys"`  // keys indicating type of bcs; e.g. "qb" for prescribed flux
	Funcs []string `json:"funcs"` // names of functions; e.g. "influx"
	Extra string   `json:"extra"` // extra information
}

// IniData holds data for setting initial solution values
type IniData struct {
	Fld string `json:"fld"` // name of field (from fields database) evaluated at the nodes
}

// TimeControl holds data for defining the simulation time stepping
type TimeControl struct {
	Tf       float64 `json:"tf"`       // final time
	Dt       float64 `json:"dt"`       // time step size (fixed)
	OutEvery int     `json:"outevery"` // write output every OutEvery accepted steps; 0 => 30
}

// Stage holds stage data
type Stage struct {
	Desc    string      `json:"desc"`    // description of simulation stage
	Skip    bool        `json:"skip"`    // do not run stage
	Initial *IniData    `json:"initial"` // set initial solution values
	FaceBcs []*FaceBc   `json:"facebcs"` // face boundary conditions
	Control TimeControl `json:"control"` // time control
}

// GetFaceBc returns the face boundary condition with given face tag
//  Note: returns nil if not found
func (o Stage) GetFaceBc(facetag int) *FaceBc {
	for _, fbc := range o.FaceBcs {
		if facetag == fbc.Tag {
			return fbc
		}
	}
	return nil
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data       `json:"data"`      // stores global simulation data
	Functions FuncsData  `json:"functions"` // stores all time functions
	Fields    FldsData   `json:"fields"`    // stores all spatial fields
	Regions   []*Region  `json:"regions"`   // stores all regions
	LinSol    LinSolData `json:"linsol"`    // linear solver data
	Solver    SolverData `json:"solver"`    // nonlinear solver data
	Stages    []*Stage   `json:"stages"`    // stores all stages

	// derived
	GoroutineId int    // id of goroutine to avoid race problems
	DirOut      string // directory to save results
	Key         string // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	EncType     string // encoder type
	MatParams   *MatDb // materials' parameters
	Ndim        int    // space dimension
}

// ReadSim reads all simulation data from a .sim JSON file
//  Note: returns nil on errors
func ReadSim(simfilepath, alias string, erasefiles bool, goroutineId int) *Simulation {

	// new sim
	var o Simulation
	o.GoroutineId = goroutineId

	// read file
	b := io.ReadFile(simfilepath)

	// set default values
	o.Solver.SetDefault()
	o.LinSol.SetDefault()

	// decode
	err := json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	dir = os.ExpandEnv(dir)
	o.Key = io.FnKey(fn)
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/prionfem/" + io.FnKey(fn)
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// create directory and erase previous simulation results
	if erasefiles {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}

	// for all regions
	for i, reg := range o.Regions {

		// read mesh
		ddir := dir
		if reg.AbsPath {
			ddir = ""
		}
		reg.Msh, err = ReadMsh(ddir, reg.Mshfile, goroutineId)
		if err != nil {
			chk.Panic("ReadSim: cannot read mesh file:\n%v", err)
		}

		// dependent variables
		reg.etag2idx = make(map[int]int)
		for j, ed := range reg.ElemsData {
			reg.etag2idx[ed.Tag] = j
		}

		// space dimension
		if i == 0 {
			o.Ndim = reg.Msh.Ndim
		} else if reg.Msh.Ndim != o.Ndim {
			chk.Panic("ReadSim: Ndim value is inconsistent: %d != %d", reg.Msh.Ndim, o.Ndim)
		}
	}

	// read materials database
	o.MatParams, err = ReadMat(dir, o.Data.Matfile, o.Ndim)
	if err != nil {
		chk.Panic("ReadSim: cannot read materials database:\n%v", err)
	}

	// for all stages
	for _, stg := range o.Stages {

		// fix Tf and Dt
		if stg.Control.Tf < 1e-14 {
			stg.Control.Tf = 1
		}
		if stg.Control.Dt < 1e-14 {
			stg.Control.Dt = 1
		}

		// fix output increment
		if stg.Control.OutEvery < 1 {
			stg.Control.OutEvery = 30
		}
	}

	// results
	return &o
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}
