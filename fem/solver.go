// Copyright 2016 The Prionfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"

	"github.com/neurofem/prionfem/inp"
)

// NlStatus holds the outcome of the nonlinear iterations of one time step
type NlStatus struct {
	Converged bool    // iterations converged
	It        int     // number of iterations (linear solves) performed
	ResNorm   float64 // L2 norm of the residual at the last check
}

// Solver implements the actual solver (time loop)
type Solver interface {
	Run(stg *inp.Stage) (err error)
}

// SolverAlloc is a function that allocates a solver
type SolverAlloc func(dom *Domain, sum *Summary) Solver

// solverallocators holds all available solvers
var solverallocators = make(map[string]SolverAlloc)

// NewSolver returns a solver by name
func NewSolver(name string, dom *Domain, sum *Summary) (Solver, error) {
	alloc, ok := solverallocators[name]
	if !ok {
		return nil, chk.Err("cannot find solver type %q", name)
	}
	return alloc(dom, sum), nil
}
