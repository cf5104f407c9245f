// Copyright 2016 The Prionfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prion

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_fk01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fk01. diffusivity tensor and reaction term")

	mdl, err := New("fk")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	c := 1.0 / math.Sqrt(3.0)
	err = mdl.Init(3, dbf.Params{
		{N: "dext", V: 1},
		{N: "daxn", V: 2},
		{N: "ax", V: c},
		{N: "ay", V: c},
		{N: "az", V: c},
		{N: "alpha", V: 2},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	o := mdl.(*FK)

	// Kten = dext I + daxn a⊗a
	d, f := 1.0+2.0/3.0, 2.0/3.0
	chk.Deep2(tst, "Kten", 1e-14, o.Kten, [][]float64{
		{d, f, f},
		{f, d, f},
		{f, f, d},
	})

	// positive definiteness: vᵀ K v > 0
	for _, v := range [][]float64{{1, 0, 0}, {1, -1, 0}, {0.3, -0.2, 0.9}} {
		s := 0.0
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				s += v[i] * o.Kten[i][j] * v[j]
			}
		}
		if s <= 0 {
			tst.Errorf("Kten must be positive definite. vᵀKv = %g", s)
			return
		}
	}

	// reaction term and its derivative
	chk.Float64(tst, "React(2,0)", 1e-17, o.React(2, 0), 0)
	chk.Float64(tst, "React(2,1)", 1e-17, o.React(2, 1), 0)
	chk.Float64(tst, "React(2,0.5)", 1e-17, o.React(2, 0.5), 0.5)
	chk.Float64(tst, "DreactDu(2,0.5)", 1e-17, o.DreactDu(2, 0.5), 0)
	chk.Float64(tst, "DreactDu(2,0)", 1e-17, o.DreactDu(2, 0), 2)
}

func Test_fk02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fk02. parameter validation")

	// axon direction must be unit length whenever daxn > 0
	mdl, _ := New("fk")
	err := mdl.Init(3, dbf.Params{
		{N: "dext", V: 1},
		{N: "daxn", V: 2},
		{N: "ax", V: 1},
		{N: "ay", V: 1},
		{N: "az", V: 1},
		{N: "alpha", V: 2},
	})
	if err == nil {
		tst.Errorf("Init must fail with non-unit axon direction and daxn > 0")
		return
	}

	// any direction is fine with daxn = 0
	mdl, _ = New("fk")
	err = mdl.Init(3, dbf.Params{
		{N: "dext", V: 5},
		{N: "daxn", V: 0},
		{N: "ax", V: 1},
		{N: "ay", V: 1},
		{N: "az", V: 1},
		{N: "alpha", V: 2},
	})
	if err != nil {
		tst.Errorf("Init must not fail when daxn = 0:\n%v", err)
		return
	}

	// negative coefficients
	mdl, _ = New("fk")
	err = mdl.Init(3, dbf.Params{
		{N: "dext", V: -1},
		{N: "daxn", V: 0},
		{N: "ax", V: 1},
		{N: "ay", V: 0},
		{N: "az", V: 0},
		{N: "alpha", V: 2},
	})
	if err == nil {
		tst.Errorf("Init must fail with negative diffusion coefficient")
		return
	}

	// unknown model
	_, err = New("nonexistent")
	if err == nil {
		tst.Errorf("New must fail with unknown model name")
	}
}
