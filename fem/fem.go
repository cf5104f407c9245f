// Copyright 2016 The Prionfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the finite element structures and solvers
package fem

import (
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"

	"github.com/neurofem/prionfem/inp"
)

// Main holds the main structure to run simulations
type Main struct {

	// data
	Sim *inp.Simulation // simulation data
	Sum *Summary        // summary of the run
	Dom *Domain         // domain

	// flags
	SaveSum bool // save summary file at the end of the run
	Verbose bool // show messages
}

// NewMain returns a new Main structure
//  Input:
//   simfnpath     -- simulation (.sim) filename including full path
//   alias         -- word to be appended to simulation key; e.g. when running multiple results
//   erasePrev     -- erase previous results files
//   saveSummary   -- save summary file
//   allowParallel -- allow parallel execution; i.e. use MPI if available
//   verbose       -- show messages
//   goroutineId   -- goroutine id; useful when running many simulations concurrently
func NewMain(simfnpath, alias string, erasePrev, saveSummary, allowParallel, verbose bool, goroutineId int) *Main {

	// distributed run
	distr := allowParallel && mpi.IsOn() && mpi.WorldSize() > 1
	erase := erasePrev
	if distr && mpi.WorldRank() != 0 {
		erase = false
	}

	// structures
	var o Main
	o.Sim = inp.ReadSim(simfnpath, alias, erase, goroutineId)
	o.Sum = new(Summary)
	o.Dom = NewDomain(o.Sim, distr)
	o.SaveSum = saveSummary
	o.Verbose = verbose
	return &o
}

// Run runs all stages of the simulation
func (o *Main) Run() (err error) {

	// benchmarking
	root := o.Dom.Proc == 0
	cpuTime := time.Now()
	if o.Verbose && root {
		defer func() {
			io.Pf("\nfinal time = %v\n", o.Dom.Sol.T)
			io.Pfblue2("cpu time   = %v\n", time.Since(cpuTime))
		}()
	}

	// loop over stages
	for _, stg := range o.Sim.Stages {

		// skip stage
		if stg.Skip {
			continue
		}
		if o.Verbose && root {
			io.Pf("stage: %s\n", stg.Desc)
		}

		// set stage
		err = o.Dom.SetStage(stg)
		if err != nil {
			return
		}

		// run
		var sv Solver
		sv, err = NewSolver(o.Sim.Solver.Type, o.Dom, o.Sum)
		if err != nil {
			return
		}
		err = sv.Run(stg)
		if err != nil {
			return
		}
	}

	// save summary
	if o.SaveSum {
		return o.Sum.Save(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, o.Dom.Proc)
	}
	return
}
