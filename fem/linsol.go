// Copyright 2016 The Prionfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"

	"github.com/neurofem/prionfem/ele"
	"github.com/neurofem/prionfem/inp"
)

// SolStats holds statistics of one linear solution
type SolStats struct {
	Converged bool    // iterative solver converged (always true for direct solvers)
	It        int     // number of iterations performed
	ResNorm   float64 // norm of the residual at the last iteration
}

// LinSol defines the interface for linear solvers of Kb * δy = fb
type LinSol interface {
	Fact() error                // factorise or prepare preconditioner from the current Kb
	Solve(x, b []float64) error // solve for x given b
	Stats() SolStats            // statistics of the latest solution
	Clean()                     // deallocate resources
}

// NewLinSol returns a linear solver according to the input data
func NewLinSol(dom *Domain, dat *inp.LinSolData) (LinSol, error) {
	switch dat.Name {
	case "cg":
		return newCGSol(dom, dat)
	case "umfpack", "mumps":
		return newDirect(dom, dat)
	}
	return nil, chk.Err("linear solver %q is not available", dat.Name)
}

// direct //////////////////////////////////////////////////////////////////////////////////////////

// Direct wraps the sparse direct solvers
type Direct struct {
	dom         *Domain
	dat         *inp.LinSolData
	sol         la.SparseSolver
	initialised bool
	stats       SolStats
}

func newDirect(dom *Domain, dat *inp.LinSolData) (*Direct, error) {
	if dom.Distr && dat.Name != "mumps" {
		return nil, chk.Err("distributed runs require %q or %q as linear solver. %q is incorrect", "mumps", "cg", dat.Name)
	}
	var o Direct
	o.dom = dom
	o.dat = dat
	o.sol = la.NewSparseSolver(dat.Name)
	return &o, nil
}

// Fact factorises the current Kb
func (o *Direct) Fact() (err error) {
	if !o.initialised {
		o.sol.Init(o.dom.Kb, &la.SpArgs{
			Symmetric:    o.dat.Symmetric,
			Verbose:      o.dat.Verbose,
			Communicator: o.dom.Comm,
		})
		o.initialised = true
	}
	o.sol.Fact()
	return
}

// Solve solves the factorised system
func (o *Direct) Solve(x, b []float64) (err error) {
	o.sol.Solve(x, b, false)
	o.stats = SolStats{Converged: true, It: 1}
	return
}

// Stats returns statistics of the latest solution
func (o *Direct) Stats() SolStats { return o.stats }

// Clean deallocates the solver
func (o *Direct) Clean() {
	if o.initialised {
		o.sol.Free()
	}
}

// conjugate gradients /////////////////////////////////////////////////////////////////////////////

// CGSol implements the preconditioned conjugate gradients method. The matrix
// is re-assembled from the element matrices into a row-compressed store; in a
// distributed run each processor holds the contributions of its own elements
// and matrix-vector products are joined with AllReduceSum.
type CGSol struct {

	// input
	dom     *Domain
	dat     *inp.LinSolData
	precond string // "ssor" or "jacobi"

	// row-compressed matrix
	built bool      // sparsity pattern is ready
	n     int       // number of rows
	ap    []int     // [n+1] row pointers
	aj    []int     // [nnz] column indices (sorted within rows)
	ax    []float64 // [nnz] values
	di    []int     // [n] position of the diagonal entry within each row; -1 if absent

	// auxiliary
	dg    []float64 // [n] (joined) diagonal of the matrix
	r     []float64 // residual
	z     []float64 // preconditioned residual
	p     []float64 // search direction
	q     []float64 // A * p
	w     []float64 // workspace to join vectors from all processors
	stats SolStats
}

func newCGSol(dom *Domain, dat *inp.LinSolData) (*CGSol, error) {
	var o CGSol
	o.dom = dom
	o.dat = dat
	o.precond = dat.Precond
	if o.precond != "ssor" && o.precond != "jacobi" {
		return nil, chk.Err("preconditioner %q is not available", o.precond)
	}
	// SSOR needs the full rows; with partitioned elements only Jacobi works
	if dom.Distr && o.precond == "ssor" {
		o.precond = "jacobi"
	}
	o.n = dom.Ny
	o.dg = make([]float64, o.n)
	o.r = make([]float64, o.n)
	o.z = make([]float64, o.n)
	o.p = make([]float64, o.n)
	o.q = make([]float64, o.n)
	o.w = make([]float64, o.n)
	return &o, nil
}

// symbolic builds the sparsity pattern from the assembly maps of the elements
func (o *CGSol) symbolic() error {
	cols := make([]map[int]bool, o.n)
	for _, e := range o.dom.Elems {
		km, ok := e.(ele.KMapper)
		if !ok {
			return chk.Err("element %d does not expose its matrix to the iterative solver", e.Id())
		}
		_, umap := km.KMap()
		for _, r := range umap {
			if cols[r] == nil {
				cols[r] = make(map[int]bool)
			}
			for _, c := range umap {
				cols[r][c] = true
			}
		}
	}
	o.ap = make([]int, o.n+1)
	o.di = make([]int, o.n)
	for i := 0; i < o.n; i++ {
		o.ap[i+1] = o.ap[i] + len(cols[i])
		o.di[i] = -1
	}
	o.aj = make([]int, o.ap[o.n])
	o.ax = make([]float64, o.ap[o.n])
	for i := 0; i < o.n; i++ {
		jj := o.ap[i]
		for c := range cols[i] {
			o.aj[jj] = c
			jj++
		}
		row := o.aj[o.ap[i]:o.ap[i+1]]
		sort.Ints(row)
		for k, c := range row {
			if c == i {
				o.di[i] = o.ap[i] + k
			}
		}
	}
	o.built = true
	return nil
}

// Fact re-assembles the matrix from the element matrices
func (o *CGSol) Fact() (err error) {

	// sparsity pattern (fixed throughout the run)
	if !o.built {
		err = o.symbolic()
		if err != nil {
			return
		}
	}

	// numeric assembly
	utl.Fill(o.ax, 0)
	for _, e := range o.dom.Elems {
		k, umap := e.(ele.KMapper).KMap()
		for m, r := range umap {
			row := o.aj[o.ap[r]:o.ap[r+1]]
			for n, c := range umap {
				jj := o.ap[r] + sort.SearchInts(row, c)
				o.ax[jj] += k[m][n]
			}
		}
	}

	// joined diagonal
	utl.Fill(o.dg, 0)
	for i := 0; i < o.n; i++ {
		if o.di[i] >= 0 {
			o.dg[i] = o.ax[o.di[i]]
		}
	}
	if o.dom.Distr {
		copy(o.w, o.dg)
		o.dom.Comm.AllReduceSum(o.dg, o.w)
	}
	for i := 0; i < o.n; i++ {
		if o.dg[i] == 0 {
			return chk.Err("zero diagonal entry found at equation %d", i)
		}
	}
	return
}

// matvec computes q := A * x, joined over all processors
func (o *CGSol) matvec(q, x []float64) {
	for i := 0; i < o.n; i++ {
		s := 0.0
		for jj := o.ap[i]; jj < o.ap[i+1]; jj++ {
			s += o.ax[jj] * x[o.aj[jj]]
		}
		q[i] = s
	}
	if o.dom.Distr {
		copy(o.w, q)
		o.dom.Comm.AllReduceSum(q, o.w)
	}
}

// applyPrec computes z := M⁻¹ r
func (o *CGSol) applyPrec(z, r []float64) {

	// Jacobi
	if o.precond == "jacobi" {
		for i := 0; i < o.n; i++ {
			z[i] = r[i] / o.dg[i]
		}
		return
	}

	// SSOR:  M = (D/ω + L) [ω/(2-ω)] D⁻¹ (D/ω + U)
	ω := o.dat.Omega
	c := ω * (2.0 - ω)
	for i := 0; i < o.n; i++ { // forward sweep: (D + ωL) v = ω(2-ω) r
		s := c * r[i]
		for jj := o.ap[i]; jj < o.di[i]; jj++ {
			s -= ω * o.ax[jj] * z[o.aj[jj]]
		}
		z[i] = s / o.dg[i]
	}
	for i := 0; i < o.n; i++ { // scale by D
		z[i] *= o.dg[i]
	}
	for i := o.n - 1; i >= 0; i-- { // backward sweep: (D + ωU) z = v
		s := z[i]
		for jj := o.di[i] + 1; jj < o.ap[i+1]; jj++ {
			s -= ω * o.ax[jj] * z[o.aj[jj]]
		}
		z[i] = s / o.dg[i]
	}
}

// Solve runs the preconditioned conjugate gradients iterations
//  Note: vectors are full-length and identical on all processors, thus the
//        scalar products need no extra communication
func (o *CGSol) Solve(x, b []float64) (err error) {

	// initial residual (x starts from zero)
	utl.Fill(x, 0)
	copy(o.r, b)
	norm0 := la.Vector(o.r).Norm()
	o.stats = SolStats{}
	if norm0 < 1e-15 {
		o.stats.Converged = true
		return
	}
	tol := o.dat.Rtol * norm0

	// first direction
	o.applyPrec(o.z, o.r)
	copy(o.p, o.z)
	rz := la.VecDot(o.r, o.z)

	// iterations
	for it := 0; it < o.dat.MaxIt; it++ {
		o.stats.It = it + 1
		o.matvec(o.q, o.p)
		pq := la.VecDot(o.p, o.q)
		if pq <= 0 {
			return chk.Err("matrix is not positive definite. p·Ap = %g", pq)
		}
		α := rz / pq
		for i := 0; i < o.n; i++ {
			x[i] += α * o.p[i]
			o.r[i] -= α * o.q[i]
		}
		o.stats.ResNorm = la.Vector(o.r).Norm()
		if o.stats.ResNorm <= tol {
			o.stats.Converged = true
			return
		}
		o.applyPrec(o.z, o.r)
		rznew := la.VecDot(o.r, o.z)
		β := rznew / rz
		for i := 0; i < o.n; i++ {
			o.p[i] = o.z[i] + β*o.p[i]
		}
		rz = rznew
	}
	return chk.Err("CG did not converge after %d iterations. resid = %g", o.stats.It, o.stats.ResNorm)
}

// Stats returns statistics of the latest solution
func (o *CGSol) Stats() SolStats { return o.stats }

// Clean deallocates resources
func (o *CGSol) Clean() {}
