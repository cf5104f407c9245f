// Copyright 2016 The Prionfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fld implements scalar fields over the spatial domain
package fld

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Field defines scalar fields evaluated at a spatial point
type Field interface {
	Init(prms dbf.Params) error // Init initialises this structure
	F(x []float64) float64    // F returns the field value @ x
}

// New returns a field by name
func New(name string) (f Field, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("field %q is not available in 'fld' database", name)
	}
	return allocator(), nil
}

// allocators holds all available fields
var allocators = map[string]func() Field{}

// Cte implements a field with constant value everywhere
type Cte struct {
	C float64 // value
}

// add field to database
func init() {
	allocators["cte"] = func() Field { return new(Cte) }
}

// Init initialises this structure
func (o *Cte) Init(prms dbf.Params) (err error) {
	prms.Connect(&o.C, "c", "c Cte field")
	return
}

// F returns the field value @ x
func (o *Cte) F(x []float64) float64 {
	return o.C
}

// Bump implements a separable Gaussian bump restricted to the inside of an
// axis-aligned box
//
//   F(x) = peak * Π_i exp(-(s*(x[i]-c[i]))²)   strictly inside the box
//   F(x) = 0                                   otherwise
//
// where c is the box centre and s the decay rate. The cutoff at the box
// boundary is hard; there is no smoothing across it.
type Bump struct {

	// parameters
	Xlo, Xhi float64 // x-limits of box
	Ylo, Yhi float64 // y-limits of box
	Zlo, Zhi float64 // z-limits of box
	S        float64 // decay rate
	Peak     float64 // peak value @ box centre

	// derived
	c []float64 // box centre
}

// add field to database
func init() {
	allocators["bump"] = func() Field { return new(Bump) }
}

// Init initialises this structure
func (o *Bump) Init(prms dbf.Params) (err error) {
	prms.Connect(&o.Xlo, "xlo", "xlo Bump field")
	prms.Connect(&o.Xhi, "xhi", "xhi Bump field")
	prms.Connect(&o.Ylo, "ylo", "ylo Bump field")
	prms.Connect(&o.Yhi, "yhi", "yhi Bump field")
	prms.Connect(&o.Zlo, "zlo", "zlo Bump field")
	prms.Connect(&o.Zhi, "zhi", "zhi Bump field")
	prms.Connect(&o.S, "s", "s Bump field")
	prms.Connect(&o.Peak, "peak", "peak Bump field")
	if o.Xhi <= o.Xlo || o.Yhi <= o.Ylo || o.Zhi <= o.Zlo {
		return chk.Err("Bump field: box limits are invalid: x=[%g,%g] y=[%g,%g] z=[%g,%g]", o.Xlo, o.Xhi, o.Ylo, o.Yhi, o.Zlo, o.Zhi)
	}
	o.c = []float64{
		(o.Xlo + o.Xhi) / 2.0,
		(o.Ylo + o.Yhi) / 2.0,
		(o.Zlo + o.Zhi) / 2.0,
	}
	return
}

// F returns the field value @ x
func (o *Bump) F(x []float64) float64 {
	if x[0] <= o.Xlo || x[0] >= o.Xhi {
		return 0
	}
	if x[1] <= o.Ylo || x[1] >= o.Yhi {
		return 0
	}
	if x[2] <= o.Zlo || x[2] >= o.Zhi {
		return 0
	}
	d0 := o.S * (x[0] - o.c[0])
	d1 := o.S * (x[1] - o.c[1])
	d2 := o.S * (x[2] - o.c[2])
	return o.Peak * math.Exp(-d0*d0-d1*d1-d2*d2)
}
