// Copyright 2016 The Prionfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fld

import (
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

func Test_cte01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cte01. constant field")

	f, err := New("cte")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	err = f.Init(dbf.Params{
		{N: "c", V: 0.25},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Float64(tst, "F @ origin", 1e-17, f.F([]float64{0, 0, 0}), 0.25)
	chk.Float64(tst, "F elsewhere", 1e-17, f.F([]float64{-3, 10, 7}), 0.25)

	// unknown field
	_, err = New("nonexistent")
	if err == nil {
		tst.Errorf("New must fail with unknown field name")
	}
}

func Test_bump01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bump01. Gaussian bump restricted to a box")

	f, err := New("bump")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	err = f.Init(dbf.Params{
		{N: "xlo", V: 49}, {N: "xhi", V: 51},
		{N: "ylo", V: 79}, {N: "yhi", V: 81},
		{N: "zlo", V: 69}, {N: "zhi", V: 71},
		{N: "s", V: 2}, {N: "peak", V: 1},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	// peak at the box centre
	chk.Float64(tst, "F @ centre", 1e-17, f.F([]float64{50, 80, 70}), 1)

	// zero outside and on the box boundary (the cutoff is hard)
	chk.Float64(tst, "F outside", 1e-17, f.F([]float64{0, 0, 0}), 0)
	chk.Float64(tst, "F @ boundary", 1e-17, f.F([]float64{49, 80, 70}), 0)
	chk.Float64(tst, "F @ boundary", 1e-17, f.F([]float64{50, 80, 71}), 0)

	// positive and symmetric strictly inside
	a := f.F([]float64{50.3, 80, 70})
	b := f.F([]float64{49.7, 80, 70})
	if a <= 0 {
		tst.Errorf("F must be positive inside the box")
		return
	}
	chk.Float64(tst, "symmetry", 1e-15, a, b)

	// invalid box
	g, _ := New("bump")
	err = g.Init(dbf.Params{
		{N: "xlo", V: 1}, {N: "xhi", V: 0},
		{N: "ylo", V: 0}, {N: "yhi", V: 1},
		{N: "zlo", V: 0}, {N: "zhi", V: 1},
		{N: "s", V: 1}, {N: "peak", V: 1},
	})
	if err == nil {
		tst.Errorf("Init must fail with invalid box limits")
	}
}
