// Copyright 2016 The Prionfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prion

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// FK implements the Fisher-Kolmogorov model: an anisotropic diffusivity
// tensor built from an isotropic (extracellular) coefficient and an axonal
// coefficient along a preferred direction, plus a logistic growth rate
//
//   Kten[i][j] = daxn * a[i] * a[j]          i != j
//   Kten[i][i] = dext + daxn * a[i] * a[i]
//
// where a is the (unit) axon direction. The tensor is symmetric and, for
// dext >= 0 and daxn >= 0, positive semi-definite.
type FK struct {

	// parameters
	Dext  float64   // extracellular (isotropic) diffusion coefficient
	Daxn  float64   // axonal diffusion coefficient
	Axon  []float64 // axon direction; must be unit length whenever Daxn > 0
	Alpha float64   // logistic growth rate

	// derived
	Kten [][]float64 // constant diffusivity tensor
}

// add model to database
func init() {
	allocators["fk"] = func() Model { return new(FK) }
}

// Init initialises this structure
//  Note: the axon direction is the caller's responsibility: it is used as
//        given, without renormalisation, and rejected if Daxn > 0 and the
//        direction is not unit length
func (o *FK) Init(ndim int, prms dbf.Params) (err error) {

	// parameters
	var ax, ay, az float64
	prms.Connect(&o.Dext, "dext", "dext FK model")
	prms.Connect(&o.Daxn, "daxn", "daxn FK model")
	prms.Connect(&o.Alpha, "alpha", "alpha FK model")
	prms.Connect(&ax, "ax", "ax FK model")
	prms.Connect(&ay, "ay", "ay FK model")
	prms.Connect(&az, "az", "az FK model")
	o.Axon = []float64{ax, ay, az}

	// check
	if o.Dext < 0 || o.Daxn < 0 {
		return chk.Err("FK model: diffusion coefficients must be non-negative. dext=%g daxn=%g", o.Dext, o.Daxn)
	}
	if o.Daxn > 0 {
		norm := math.Sqrt(ax*ax + ay*ay + az*az)
		if math.Abs(norm-1.0) > 1e-10 {
			return chk.Err("FK model: axon direction must be unit length when daxn > 0. ||a||=%g", norm)
		}
	}

	// diffusivity tensor
	o.Kten = utl.Alloc(ndim, ndim)
	for i := 0; i < ndim; i++ {
		for j := 0; j < ndim; j++ {
			if i == j {
				o.Kten[i][j] = o.Dext + o.Daxn*o.Axon[i]*o.Axon[j]
			} else {
				o.Kten[i][j] = o.Daxn * o.Axon[i] * o.Axon[j]
			}
		}
	}
	return
}

// React computes the logistic reaction term s = α u (1 - u)
func (o *FK) React(alpha, u float64) float64 {
	return alpha * u * (1.0 - u)
}

// DreactDu computes the derivative of the reaction term: α (1 - 2 u)
func (o *FK) DreactDu(alpha, u float64) float64 {
	return alpha * (1.0 - 2.0*u)
}
