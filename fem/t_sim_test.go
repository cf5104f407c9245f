// Copyright 2016 The Prionfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/neurofem/prionfem/ana"
)

func Test_zero01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("zero01. zero initial state stays at the fixed point")

	// run simulation
	analysis := NewMain("data/zero01.sim", "", true, true, false, chk.Verbose, 0)
	err := analysis.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// u == 0 is an exact solution, thus Newton must converge without solving
	if len(analysis.Sum.Stats) != 2 {
		tst.Errorf("wrong number of time steps: %d != 2", len(analysis.Sum.Stats))
		return
	}
	for _, st := range analysis.Sum.Stats {
		if !st.Converged {
			tst.Errorf("nonlinear iterations did not converge")
			return
		}
		if st.It != 0 {
			tst.Errorf("exact solution must not need iterations. it = %d", st.It)
			return
		}
	}
	for _, y := range analysis.Dom.Sol.Y {
		chk.Float64(tst, "u", 1e-14, y, 0)
	}
}

func Test_zero02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("zero02. residual exactly at the tolerance stops the iterations")

	// with fbtol = 0 the zero state gives resid == fbtol exactly; the
	// convergence check must accept it without performing a linear solve
	analysis := NewMain("data/zero01.sim", "zero02", true, true, false, chk.Verbose, 0)
	analysis.Sim.Solver.FbTol = 0
	err := analysis.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	for _, st := range analysis.Sum.Stats {
		if !st.Converged {
			tst.Errorf("nonlinear iterations did not converge")
			return
		}
		if st.It != 0 {
			tst.Errorf("no linear solve is needed when resid == fbtol. it = %d", st.It)
			return
		}
	}
}

func Test_uniform01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("uniform01. uniform field follows the logistic curve")

	// run simulation
	analysis := NewMain("data/uniform01.sim", "", true, true, false, chk.Verbose, 0)
	err := analysis.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// a uniform field makes the diffusive term vanish; every node must then
	// satisfy the scalar backward Euler recurrence of du/dt = α u (1 - u)
	α, Δt, u := 2.0, 0.1, 0.1
	nsteps := 15
	for i := 0; i < nsteps; i++ {
		un := u
		for k := 0; k < 50; k++ {
			r := un - Δt*α*un*(1.0-un) - u
			if math.Abs(r) < 1e-15 {
				break
			}
			un -= r / (1.0 - Δt*α*(1.0-2.0*un))
		}
		u = un
	}
	for _, y := range analysis.Dom.Sol.Y {
		chk.Float64(tst, "u", 1e-6, y, u)
	}

	// the time discretisation error w.r.t the closed-form solution is O(Δt)
	sol := ana.Logistic{Alpha: α, U0: 0.1}
	chk.Float64(tst, "u vs closed-form", 0.05, u, sol.F(1.5))
}

func Test_flux01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flux01. mass balance with prescribed boundary flux")

	// run simulation
	analysis := NewMain("data/flux01.sim", "", true, true, false, chk.Verbose, 0)
	err := analysis.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// with α = 0, summing the residual over all nodes gives exact global
	// conservation:  ∫u dΩ = t * qb * faceArea
	qb, area, t := 1.5, 0.5, 0.2
	intPhi := 1.0 / 24.0 // ∫φ dΩ = V/4 for each tet4 node, V = 1/6
	mass := 0.0
	for _, y := range analysis.Dom.Sol.Y {
		mass += y * intPhi
	}
	chk.Float64(tst, "mass", 1e-8, mass, t*qb*area)
}

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. long run with output cadence")

	// run simulation
	analysis := NewMain("data/out01.sim", "", true, true, false, chk.Verbose, 0)
	err := analysis.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// number of steps and output times: initial state plus one output every
	// 30 accepted steps
	dom, sum := analysis.Dom, analysis.Sum
	if len(sum.Stats) != 150 {
		tst.Errorf("wrong number of time steps: %d != 150", len(sum.Stats))
		return
	}
	for _, st := range sum.Stats {
		if !st.Converged {
			tst.Errorf("nonlinear iterations did not converge")
			return
		}
	}
	chk.Array(tst, "output times", 1e-12, sum.OutTimes, []float64{0, 3, 6, 9, 12, 15})

	// saturation: at t = 15 the logistic growth must have taken every node
	// close to the stable fixed point u = 1
	for _, y := range dom.Sol.Y {
		chk.Float64(tst, "u saturated", 1e-3, y, 1.0)
	}

	// output files must exist and be readable
	for tidx := 0; tidx < 6; tidx++ {
		fn := out_nod_path(dom.Sim.DirOut, dom.Sim.Key, dom.Sim.EncType, tidx)
		if _, err := os.Stat(fn); err != nil {
			tst.Errorf("output file is missing: %v", err)
			return
		}
	}
	err = dom.ReadSol(dom.Sim.DirOut, dom.Sim.Key, dom.Sim.EncType, 5)
	if err != nil {
		tst.Errorf("ReadSol failed:\n%v", err)
		return
	}
	chk.Float64(tst, "t @ last output", 1e-12, dom.Sol.T, 15.0)

	// summary file round trip
	var sum2 Summary
	err = sum2.Read(dom.Sim.DirOut, dom.Sim.Key, dom.Sim.EncType)
	if err != nil {
		tst.Errorf("summary Read failed:\n%v", err)
		return
	}
	chk.Array(tst, "summary output times", 1e-12, sum2.OutTimes, sum.OutTimes)
}
