// Copyright 2016 The Prionfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_jacobian01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jacobian01. consistency of Kb w.r.t the residual")

	// domain with one anisotropic element and field-based reaction rate
	analysis := NewMain("data/jac01.sim", "", true, false, false, chk.Verbose, 0)
	dom := analysis.Dom
	err := dom.SetStage(analysis.Sim.Stages[0])
	if err != nil {
		tst.Errorf("SetStage failed:\n%v", err)
		return
	}

	// set a state well inside the nonlinear regime
	Δt := 0.1
	dom.Sol.T = Δt
	copy(dom.Sol.Y, []float64{0.1, 0.3, -0.2, 0.7})
	err = dom.StarVars(Δt)
	if err != nil {
		tst.Errorf("StarVars failed:\n%v", err)
		return
	}

	// analytical Jacobian
	e := dom.Elems[0]
	dom.Kb.Start()
	err = e.AddToKb(dom.Kb, dom.Sol, true)
	if err != nil {
		tst.Errorf("AddToKb failed:\n%v", err)
		return
	}
	K := dom.Kb.ToDense().GetDeep2()

	// numerical Jacobian by central differences of R = -fb
	ε := 1e-6
	fbp := make([]float64, dom.Ny)
	fbm := make([]float64, dom.Ny)
	for j := 0; j < dom.Ny; j++ {
		dom.Sol.Y[j] += ε
		utl.Fill(fbp, 0)
		e.AddToRhs(fbp, dom.Sol)
		dom.Sol.Y[j] -= 2.0 * ε
		utl.Fill(fbm, 0)
		e.AddToRhs(fbm, dom.Sol)
		dom.Sol.Y[j] += ε
		for i := 0; i < dom.Ny; i++ {
			dRdy := -(fbp[i] - fbm[i]) / (2.0 * ε)
			chk.AnaNum(tst, io.Sf("K[%d][%d]", i, j), 1e-7, K[i][j], dRdy, chk.Verbose)
		}
	}
}

func Test_jacobian02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jacobian02. repeated assembly gives identical Kb and fb")

	analysis := NewMain("data/jac01.sim", "", true, false, false, chk.Verbose, 0)
	dom := analysis.Dom
	err := dom.SetStage(analysis.Sim.Stages[0])
	if err != nil {
		tst.Errorf("SetStage failed:\n%v", err)
		return
	}

	Δt := 0.1
	dom.Sol.T = Δt
	copy(dom.Sol.Y, []float64{0.1, 0.3, -0.2, 0.7})
	err = dom.StarVars(Δt)
	if err != nil {
		tst.Errorf("StarVars failed:\n%v", err)
		return
	}

	assemble := func() (K [][]float64, fb []float64) {
		fb = make([]float64, dom.Ny)
		for _, e := range dom.Elems {
			if err := e.AddToRhs(fb, dom.Sol); err != nil {
				tst.Errorf("AddToRhs failed:\n%v", err)
				return
			}
		}
		dom.Kb.Start()
		for _, e := range dom.Elems {
			if err := e.AddToKb(dom.Kb, dom.Sol, true); err != nil {
				tst.Errorf("AddToKb failed:\n%v", err)
				return
			}
		}
		K = dom.Kb.ToDense().GetDeep2()
		return
	}

	Ka, fba := assemble()
	Kb, fbb := assemble()
	chk.Array(tst, "fb", 1e-17, fba, fbb)
	chk.Deep2(tst, "Kb", 1e-17, Ka, Kb)
}
