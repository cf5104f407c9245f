// Copyright 2016 The Prionfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements finite elements and auxiliary structures
package ele

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"

	"github.com/neurofem/prionfem/inp"
)

// Element defines the interface for all finite elements
type Element interface {

	// information and initialisation
	Id() int                  // returns the cell Id
	SetEqs(eqs [][]int) error // set equation numbers

	// conditions (natural boundary conditions and element's)
	SetEleConds(key string, f dbf.T, extra string) error // set element conditions

	// called for each time step
	InterpStarVars(sol *Solution) error // interpolate star variables to integration points

	// called for each iteration
	AddToRhs(fb []float64, sol *Solution) error                // add -R to fb: fb += -R
	AddToKb(Kb *la.Triplet, sol *Solution, firstIt bool) error // add element K to global Jacobian matrix Kb
}

// KMapper defines elements that can expose the element matrix computed during
// the latest call to AddToKb together with the assembly (scatter) map.
// Iterative solvers use this pair to build their own matrix representation.
type KMapper interface {
	KMap() (k [][]float64, umap []int)
}

// Info holds all information required to set a simulation stage
type Info struct {

	// essential
	Dofs [][]string        // degrees of freedom per node; e.g. [nverts]{"u"}
	Y2F  map[string]string // maps "y" keys to "f" keys; e.g. "u" => "q"

	// internal Dofs
	T1vars []string // first-order transient variables; e.g. {"u"} => u solved with du/dt term
}

// GetInfoFunc is a function that returns stage information
type GetInfoFunc func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData) *Info

// AllocatorFunc is a function that allocates an element
type AllocatorFunc func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData, x [][]float64) Element

// infogetters holds all available GetInfo functions [type][info]
var infogetters = make(map[string]GetInfoFunc)

// allocators holds all available element allocators [type][allocator]
var allocators = make(map[string]AllocatorFunc)

// SetInfoFunc sets a new GetInfo function
func SetInfoFunc(elemType string, fcn GetInfoFunc) {
	if _, ok := infogetters[elemType]; ok {
		chk.Panic("cannot set GetInfo function for %q because it exists already", elemType)
	}
	infogetters[elemType] = fcn
}

// SetAllocator sets a new element allocator
func SetAllocator(elemType string, fcn AllocatorFunc) {
	if _, ok := allocators[elemType]; ok {
		chk.Panic("cannot set allocator for %q because it exists already", elemType)
	}
	allocators[elemType] = fcn
}

// GetInfo returns stage information for an element
func GetInfo(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData) (*Info, error) {
	fcn, ok := infogetters[edat.Type]
	if !ok {
		return nil, chk.Err("cannot find GetInfo function for element type %q", edat.Type)
	}
	info := fcn(sim, cell, edat)
	if info == nil {
		return nil, chk.Err("GetInfo function failed for element type %q", edat.Type)
	}
	return info, nil
}

// New allocates an element
func New(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData, x [][]float64) (Element, error) {
	fcn, ok := allocators[edat.Type]
	if !ok {
		return nil, chk.Err("cannot find allocator for element type %q", edat.Type)
	}
	elem := fcn(sim, cell, edat, x)
	if elem == nil {
		return nil, chk.Err("allocator failed for element type %q", edat.Type)
	}
	return elem, nil
}

// NaturalBc holds information on one natural boundary condition, applied to
// one face of an element
type NaturalBc struct {
	Key     string   // key; e.g. "qb"
	IdxFace int      // local index of face
	Fcn     dbf.T // function of time
	Extra   string   // extra information
}
