// Copyright 2016 The Prionfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_linsol01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linsol01. conjugate gradients with SSOR and Jacobi")

	// domain with one element; small Δt keeps Kb positive definite
	analysis := NewMain("data/zero01.sim", "linsol", true, false, false, chk.Verbose, 0)
	dom := analysis.Dom
	err := dom.SetStage(analysis.Sim.Stages[0])
	if err != nil {
		tst.Errorf("SetStage failed:\n%v", err)
		return
	}
	err = dom.StarVars(0.1)
	if err != nil {
		tst.Errorf("StarVars failed:\n%v", err)
		return
	}

	// assemble Kb
	dom.Kb.Start()
	for _, e := range dom.Elems {
		err = e.AddToKb(dom.Kb, dom.Sol, true)
		if err != nil {
			tst.Errorf("AddToKb failed:\n%v", err)
			return
		}
	}
	K := dom.Kb.ToDense().GetDeep2()

	// solve with both preconditioners and verify K * x = b
	b := []float64{1, 2, 3, 4}
	x := make([]float64, dom.Ny)
	for _, precond := range []string{"ssor", "jacobi"} {
		dat := dom.Sim.LinSol
		dat.Precond = precond
		lis, err := NewLinSol(dom, &dat)
		if err != nil {
			tst.Errorf("NewLinSol failed:\n%v", err)
			return
		}
		err = lis.Fact()
		if err != nil {
			tst.Errorf("Fact failed:\n%v", err)
			return
		}
		err = lis.Solve(x, b)
		if err != nil {
			tst.Errorf("Solve failed:\n%v", err)
			return
		}
		stats := lis.Stats()
		if !stats.Converged {
			tst.Errorf("CG did not converge with %q", precond)
			return
		}
		if chk.Verbose {
			io.Pf("%s: it = %d, resid = %g\n", precond, stats.It, stats.ResNorm)
		}
		for i := 0; i < dom.Ny; i++ {
			s := 0.0
			for j := 0; j < dom.Ny; j++ {
				s += K[i][j] * x[j]
			}
			chk.Float64(tst, io.Sf("%s: (K*x)[%d]", precond, i), 1e-4, s, b[i])
		}
		lis.Clean()
	}
}
