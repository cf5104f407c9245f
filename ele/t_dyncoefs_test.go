// Copyright 2016 The Prionfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/neurofem/prionfem/inp"
)

func Test_dyncoefs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dyncoefs01. θ-method coefficients")

	// default: backward Euler
	var dat inp.SolverData
	dat.SetDefault()
	var dc DynCoefs
	err := dc.Init(&dat)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	dc.CalcBoth(0.1)
	chk.Float64(tst, "β1", 1e-14, dc.GetBet1(), 10)
	chk.Float64(tst, "β2", 1e-17, dc.GetBet2(), 0)

	// Crank-Nicolson
	dat.Theta = 0.5
	err = dc.Init(&dat)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	dc.CalcBoth(0.1)
	chk.Float64(tst, "β1", 1e-13, dc.GetBet1(), 20)
	chk.Float64(tst, "β2", 1e-14, dc.GetBet2(), 1)

	// invalid θ
	dat.Theta = 0
	err = dc.Init(&dat)
	if err == nil {
		tst.Errorf("Init must fail with θ = 0")
	}
}
