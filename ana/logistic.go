// Copyright 2016 The Prionfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for comparisons and tests
package ana

import "math"

// Logistic computes the closed-form solution of the space-uniform
// Fisher-Kolmogorov equation
//
//   du/dt = α u (1 - u)   with   u(0) = u0
//
// A spatially uniform initial condition with no-flux boundaries makes the
// diffusive term vanish, thus the full simulation must follow this curve.
type Logistic struct {
	Alpha float64 // growth rate α
	U0    float64 // initial value
}

// F returns u(t)
func (o Logistic) F(t float64) float64 {
	e := math.Exp(-o.Alpha * t)
	return o.U0 / (o.U0 + (1.0-o.U0)*e)
}

// Rate returns du/dt @ t
func (o Logistic) Rate(t float64) float64 {
	u := o.F(t)
	return o.Alpha * u * (1.0 - u)
}
