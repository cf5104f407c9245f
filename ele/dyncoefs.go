// Copyright 2016 The Prionfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"

	"github.com/neurofem/prionfem/inp"
)

// DynCoefs calculates the coefficients of the θ-method for the integration of
// first-order transient problems:
//
//   dy/dt = β1 y - ψ*   with   ψ* = β1 yOld + β2 (dy/dt)Old
//
// θ = 1 recovers the backward Euler scheme
type DynCoefs struct {

	// input
	θ float64

	// derived
	β1, β2 float64
}

// Init initialises this structure
func (o *DynCoefs) Init(dat *inp.SolverData) (err error) {
	o.θ = dat.Theta
	if o.θ < 1e-5 || o.θ > 1.0 {
		return chk.Err("θ-method requires 1e-5 <= θ <= 1. θ = %g is incorrect", o.θ)
	}
	return
}

// CalcBoth computes β1 and β2 for a given time increment
func (o *DynCoefs) CalcBoth(dt float64) {
	o.β1 = 1.0 / (o.θ * dt)
	o.β2 = (1.0 - o.θ) / o.θ
}

// GetBet1 returns β1
func (o *DynCoefs) GetBet1() float64 { return o.β1 }

// GetBet2 returns β2
func (o *DynCoefs) GetBet2() float64 { return o.β2 }
