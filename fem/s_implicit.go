// Copyright 2016 The Prionfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"

	"github.com/neurofem/prionfem/inp"
)

// SolverImplicit solves the transient problem with an implicit scheme:
// the θ-method in time and Newton-Raphson iterations at each time step
type SolverImplicit struct {
	dom *Domain   // domain
	sum *Summary  // summary of the run
	δy  []float64 // Newton correction
}

// add solver to database
func init() {
	solverallocators["imp"] = func(dom *Domain, sum *Summary) Solver {
		o := new(SolverImplicit)
		o.dom = dom
		o.sum = sum
		return o
	}
}

// Run runs the time loop of one stage
func (o *SolverImplicit) Run(stg *inp.Stage) (err error) {

	// auxiliary
	dom := o.dom
	dat := &dom.Sim.Solver
	tf := stg.Control.Tf
	Δt := stg.Control.Dt
	if Δt < dat.DtMin {
		return chk.Err("time step size must be at least %g. Δt = %g is incorrect", dat.DtMin, Δt)
	}

	// allocate linear solver and Newton correction
	lis, err := NewLinSol(dom, &dom.Sim.LinSol)
	if err != nil {
		return
	}
	defer lis.Clean()
	o.δy = make([]float64, dom.Ny)

	// message
	root := dom.Proc == 0
	if dat.ShowT && root {
		defer io.Pf("\n")
	}

	// output initial state
	tidx := 0
	if err = dom.Out(tidx); err != nil {
		return
	}
	o.sum.OutTimes = append(o.sum.OutTimes, dom.Sol.T)
	tidx++

	// time loop
	step := 0
	t := dom.Sol.T
	for t < tf-0.5*Δt {

		// update time
		t += Δt
		dom.Sol.T = t
		step++
		if dat.ShowT && root {
			io.Pf("> t = %v\n", t)
		}

		// run iterations
		stat, err := o.runIterations(Δt, lis)
		if err != nil {
			return err
		}
		o.sum.Stats = append(o.sum.Stats, stat)
		if !stat.Converged {
			if root {
				io.Pf("Newton iterations did not converge at t = %v. it = %d, resid = %g\n", t, stat.It, stat.ResNorm)
			}
			if dat.StopOnFail {
				return chk.Err("Newton iterations did not converge at t = %g after %d iterations. resid = %g", t, stat.It, stat.ResNorm)
			}
		}

		// output results
		if step%stg.Control.OutEvery == 0 {
			if err = dom.Out(tidx); err != nil {
				return err
			}
			o.sum.OutTimes = append(o.sum.OutTimes, t)
			tidx++
		}
	}
	return
}

// runIterations solves the nonlinear problem of one time step
func (o *SolverImplicit) runIterations(Δt float64, lis LinSol) (stat NlStatus, err error) {

	// auxiliary
	dom := o.dom
	dat := &dom.Sim.Solver

	// star variables
	err = dom.StarVars(Δt)
	if err != nil {
		return
	}

	// zero accumulated increments
	utl.Fill(dom.Sol.ΔY, 0)

	// iterations
	for it := 0; it < dat.NmaxIt; it++ {
		stat.It = it

		// assemble residual fb == -R
		utl.Fill(dom.Fb, 0)
		for _, e := range dom.Elems {
			err = e.AddToRhs(dom.Fb, dom.Sol)
			if err != nil {
				return
			}
		}

		// join all processors
		if dom.Distr {
			copy(dom.Wb, dom.Fb)
			dom.Comm.AllReduceSum(dom.Fb, dom.Wb)
		}

		// check convergence (before solving)
		stat.ResNorm = la.Vector(dom.Fb).Norm()
		if dat.ShowR && dom.Proc == 0 {
			io.Pf("    it = %2d  resid = %g\n", it, stat.ResNorm)
		}
		if stat.ResNorm <= dat.FbTol {
			stat.Converged = true
			break
		}

		// assemble Jacobian Kb == dRdy
		firstIt := it == 0
		dom.Kb.Start()
		for _, e := range dom.Elems {
			err = e.AddToKb(dom.Kb, dom.Sol, firstIt)
			if err != nil {
				return
			}
		}

		// solve linear problem: Kb * δy = fb
		err = lis.Fact()
		if err != nil {
			return
		}
		err = lis.Solve(o.δy, dom.Fb)
		if err != nil {
			return
		}
		stat.It = it + 1

		// update solution
		for I := 0; I < dom.Ny; I++ {
			dom.Sol.Y[I] += o.δy[I]
			dom.Sol.ΔY[I] += o.δy[I]
		}
	}

	// update rate variables
	if stat.Converged && !dom.Sol.Steady {
		dom.UpdateDydt()
	}
	return
}
