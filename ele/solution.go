// Copyright 2016 The Prionfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

// Solution holds the solution data (e.g. primary variables)
type Solution struct {

	// state
	T      float64   // current time
	Dt     float64   // current time increment
	Y      []float64 // primary variables; e.g. concentrations
	Dydt   []float64 // dY/dt
	ΔY     []float64 // total increment of Y over the current time step
	Psi    []float64 // star variables ψ* (coded history of the previous step)
	Steady bool      // steady simulation: skip transient terms

	// auxiliary
	DynCfs *DynCoefs // integration coefficients for the transient scheme
}

// Allocate allocates the solution vectors with ny equations
func (o *Solution) Allocate(ny int, steady bool) {
	o.Y = make([]float64, ny)
	o.Dydt = make([]float64, ny)
	o.ΔY = make([]float64, ny)
	o.Psi = make([]float64, ny)
	o.Steady = steady
}
