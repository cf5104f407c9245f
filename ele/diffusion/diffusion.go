// Copyright 2016 The Prionfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package diffusion implements an element for solving the anisotropic
// reaction-diffusion (Fisher-Kolmogorov) equation
//
//   du/dt = div(D grad(u)) + α u (1 - u)
//
// where D is the constant diffusivity tensor of the material model and α the
// logistic growth rate, either constant or given by a spatial field
package diffusion

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"

	"github.com/neurofem/prionfem/ele"
	"github.com/neurofem/prionfem/fld"
	"github.com/neurofem/prionfem/inp"
	"github.com/neurofem/prionfem/mdl/prion"
	"github.com/neurofem/prionfem/shp"
)

// Diffusion implements the reaction-diffusion element
type Diffusion struct {

	// basic data
	Cell *inp.Cell   // the cell structure
	X    [][]float64 // [ndim][nnode] matrix of nodal coordinates
	Ndim int         // space dimension

	// integration points
	IpsElem []shp.Ipoint // [nip] integration points of element
	IpsFace []shp.Ipoint // [nipf] integration points corresponding to faces

	// material model
	Mdl    *prion.FK // model
	Alphas []float64 // [nip] reaction rate at integration points

	// problem variables
	Umap []int // assembly map (location array)

	// natural boundary conditions
	NatBcs []*ele.NaturalBc

	// scratchpad: computed @ each ip
	Ustar []float64   // [nip] ψ* interpolated at integration points
	Uval  float64     // u at current ip
	Gradu []float64   // [ndim] grad(u) at current ip
	Wvec  []float64   // [ndim] -D grad(u) at current ip
	K     [][]float64 // [nnode][nnode] element matrix
}

// initialisation ///////////////////////////////////////////////////////////////////////////////////

// register element
func init() {

	// information allocator
	ele.SetInfoFunc("diffusion", func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData) *ele.Info {
		nverts := cell.Shp.Nverts
		ykeys := []string{"u"}
		info := ele.Info{
			Dofs: make([][]string, nverts),
			Y2F:  map[string]string{"u": "q"},
		}
		for m := 0; m < nverts; m++ {
			info.Dofs[m] = ykeys
		}
		info.T1vars = ykeys
		return &info
	})

	// element allocator
	ele.SetAllocator("diffusion", func(sim *inp.Simulation, cell *inp.Cell, edat *inp.ElemData, x [][]float64) ele.Element {

		// basic data
		var o Diffusion
		o.Cell = cell
		o.X = x
		o.Ndim = sim.Ndim
		nverts := cell.Shp.Nverts

		// integration points
		var err error
		o.IpsElem, o.IpsFace, err = o.Cell.Shp.GetIps(edat.Nip, edat.Nipf)
		if err != nil {
			chk.Panic("cannot allocate integration points of diffusion element with nip=%d and nipf=%d:\n%v", edat.Nip, edat.Nipf, err)
		}
		nip := len(o.IpsElem)

		// material model
		mat := sim.MatParams.Get(edat.Mat)
		if mat == nil {
			chk.Panic("cannot get material named %q", edat.Mat)
		}
		o.Mdl = mat.Mdl.(*prion.FK)

		// reaction rate at integration points
		var afld fld.Field
		if edat.Afld != "" {
			afld = sim.Fields.Get(edat.Afld)
			if afld == nil {
				chk.Panic("cannot find field named %q for the reaction rate", edat.Afld)
			}
		}
		o.Alphas = make([]float64, nip)
		for idx, ip := range o.IpsElem {
			if afld == nil {
				o.Alphas[idx] = o.Mdl.Alpha
			} else {
				o.Alphas[idx] = afld.F(o.Cell.Shp.IpRealCoords(o.X, ip))
			}
		}

		// scratchpad
		o.Ustar = make([]float64, nip)
		o.Gradu = make([]float64, o.Ndim)
		o.Wvec = make([]float64, o.Ndim)
		o.K = utl.Alloc(nverts, nverts)
		return &o
	})
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// Id returns the cell Id
func (o *Diffusion) Id() int { return o.Cell.Id }

// SetEqs sets equation numbers
func (o *Diffusion) SetEqs(eqs [][]int) (err error) {
	o.Umap = make([]int, o.Cell.Shp.Nverts)
	for m := 0; m < o.Cell.Shp.Nverts; m++ {
		o.Umap[m] = eqs[m][0]
	}
	return
}

// SetEleConds sets element conditions
func (o *Diffusion) SetEleConds(key string, f dbf.T, extra string) (err error) {
	return
}

// SetNatBcs sets natural boundary conditions
func (o *Diffusion) SetNatBcs(fconds []*inp.FaceCond) {
	o.NatBcs = make([]*ele.NaturalBc, len(fconds))
	for i, fc := range fconds {
		o.NatBcs[i] = &ele.NaturalBc{Key: fc.Cond, IdxFace: fc.FaceId, Fcn: fc.Func, Extra: fc.Extra}
	}
}

// InterpStarVars interpolates star variables to integration points
func (o *Diffusion) InterpStarVars(sol *ele.Solution) (err error) {
	for idx, ip := range o.IpsElem {
		err = o.Cell.Shp.CalcAtIp(o.X, ip, false)
		if err != nil {
			return
		}
		o.Ustar[idx] = 0
		for m := 0; m < o.Cell.Shp.Nverts; m++ {
			o.Ustar[idx] += o.Cell.Shp.S[m] * sol.Psi[o.Umap[m]]
		}
	}
	return
}

// AddToRhs adds -R to global residual vector fb
func (o *Diffusion) AddToRhs(fb []float64, sol *ele.Solution) (err error) {

	// auxiliary
	β1 := sol.DynCfs.GetBet1()
	nverts := o.Cell.Shp.Nverts

	// for each integration point
	for idx, ip := range o.IpsElem {

		// interpolation functions, gradients and variables @ ip
		err = o.ipvars(idx, sol)
		if err != nil {
			return
		}
		coef := o.Cell.Shp.J * ip[3]
		S := o.Cell.Shp.S
		G := o.Cell.Shp.G
		α := o.Alphas[idx]

		// add to fb
		for m := 0; m < nverts; m++ {
			r := o.Umap[m]
			if !sol.Steady {
				fb[r] -= coef * S[m] * (β1*o.Uval - o.Ustar[idx]) // transient
			}
			for i := 0; i < o.Ndim; i++ {
				fb[r] += coef * G[m][i] * o.Wvec[i] // diffusive
			}
			fb[r] += coef * S[m] * o.Mdl.React(α, o.Uval) // reactive
		}
	}

	// contribution from natural boundary conditions
	if len(o.NatBcs) > 0 {
		return o.add_natbcs_to_rhs(fb, sol)
	}
	return
}

// AddToKb adds element K to global Jacobian matrix Kb
func (o *Diffusion) AddToKb(Kb *la.Triplet, sol *ele.Solution, firstIt bool) (err error) {

	// zero K matrix
	for m := range o.K {
		utl.Fill(o.K[m], 0)
	}

	// auxiliary
	β1 := sol.DynCfs.GetBet1()
	nverts := o.Cell.Shp.Nverts

	// for each integration point
	for idx, ip := range o.IpsElem {

		// interpolation functions, gradients and variables @ ip
		err = o.ipvars(idx, sol)
		if err != nil {
			return
		}
		coef := o.Cell.Shp.J * ip[3]
		S := o.Cell.Shp.S
		G := o.Cell.Shp.G
		α := o.Alphas[idx]

		// K := dR/du
		for m := 0; m < nverts; m++ {
			for n := 0; n < nverts; n++ {
				if !sol.Steady {
					o.K[m][n] += coef * S[m] * S[n] * β1 // transient
				}
				for i := 0; i < o.Ndim; i++ {
					for j := 0; j < o.Ndim; j++ {
						o.K[m][n] += coef * G[m][i] * o.Mdl.Kten[i][j] * G[n][j] // diffusive
					}
				}
				o.K[m][n] -= coef * S[m] * o.Mdl.DreactDu(α, o.Uval) * S[n] // reactive
			}
		}
	}

	// add K to sparse matrix Kb
	for m, r := range o.Umap {
		for n, c := range o.Umap {
			Kb.Put(r, c, o.K[m][n])
		}
	}
	return
}

// KMap returns the element matrix computed during the latest call to AddToKb
// together with the assembly map
func (o *Diffusion) KMap() (k [][]float64, umap []int) {
	return o.K, o.Umap
}

// internal variables ///////////////////////////////////////////////////////////////////////////////

// ipvars computes current values @ integration points. idx == index of integration point
func (o *Diffusion) ipvars(idx int, sol *ele.Solution) (err error) {

	// interpolation functions and gradients
	err = o.Cell.Shp.CalcAtIp(o.X, o.IpsElem[idx], true)
	if err != nil {
		return
	}

	// u and grad(u) @ ip by means of interpolating from nodes
	o.Uval = 0
	for i := 0; i < o.Ndim; i++ {
		o.Gradu[i] = 0
	}
	for m := 0; m < o.Cell.Shp.Nverts; m++ {
		r := o.Umap[m]
		o.Uval += o.Cell.Shp.S[m] * sol.Y[r]
		for i := 0; i < o.Ndim; i++ {
			o.Gradu[i] += o.Cell.Shp.G[m][i] * sol.Y[r]
		}
	}

	// wvec = -D grad(u)
	for i := 0; i < o.Ndim; i++ {
		o.Wvec[i] = 0
		for j := 0; j < o.Ndim; j++ {
			o.Wvec[i] -= o.Mdl.Kten[i][j] * o.Gradu[j]
		}
	}
	return
}

// add_natbcs_to_rhs adds natural boundary conditions to rhs
func (o *Diffusion) add_natbcs_to_rhs(fb []float64, sol *ele.Solution) (err error) {
	for _, nbc := range o.NatBcs {
		switch nbc.Key {
		case "qb":
			qb := nbc.Fcn.F(sol.T, nil)
			for _, ipf := range o.IpsFace {
				err = o.Cell.Shp.CalcAtFaceIp(o.X, ipf, nbc.IdxFace)
				if err != nil {
					return
				}
				Sf := o.Cell.Shp.Sf
				Jf := la.Vector(o.Cell.Shp.Fnvec).Norm()
				coef := ipf[3] * Jf
				for i, m := range o.Cell.Shp.FaceLocalVerts[nbc.IdxFace] {
					fb[o.Umap[m]] += coef * Sf[i] * qb
				}
			}
		default:
			return chk.Err("boundary condition %q is not available", nbc.Key)
		}
	}
	return
}
