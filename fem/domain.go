// Copyright 2016 The Prionfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"

	"github.com/neurofem/prionfem/ele"
	"github.com/neurofem/prionfem/inp"
)

// Dof holds information about one degree-of-freedom
type Dof struct {
	Key string // primary variable key; e.g. "u"
	Eq  int    // equation number
}

// Node holds a pointer to a vertex and its degrees-of-freedom
type Node struct {
	Vert *inp.Vert // pointer to vertex
	Dofs []*Dof    // degrees-of-freedom; e.g. {"u"}
}

// GetEq returns the equation number of a given key
//  Note: returns -1 if not found
func (o *Node) GetEq(key string) int {
	for _, d := range o.Dofs {
		if d.Key == key {
			return d.Eq
		}
	}
	return -1
}

// FaceLoaded defines elements that accept natural boundary conditions on faces
type FaceLoaded interface {
	SetNatBcs(fconds []*inp.FaceCond)
}

// Domain holds all Nodes and Elements active during a stage, in addition to
// the solution at nodes.
//
// In a distributed (MPI) run, every processor keeps the full-length solution
// and residual vectors, but allocates elements for its own partition only.
// The residual (and matrix-vector products) are then joined with one
// AllReduceSum per assembly.
type Domain struct {

	// init: auxiliary variables
	Sim   *inp.Simulation   // simulation data
	Reg   *inp.Region       // region data
	Msh   *inp.Mesh         // mesh data
	Distr bool              // distributed/parallel run
	Proc  int               // processor id
	Nproc int               // number of processors
	Comm  *mpi.Communicator // world communicator (distributed runs only)

	// stage: nodes (active) and elements (active AND in this processor)
	Nodes  []*Node       // active nodes (all of them)
	Elems  []ele.Element // [procNcells] elements in this processor
	MyCids []int         // [procNcells] ids of cells in this processor

	// stage: equation numbers
	Ny    int   // total number of equations
	T1eqs []int // first-order transient equations (equations with du/dt term)

	// stage: solution and linear problem
	Sol *ele.Solution // solution state
	Kb  *la.Triplet   // Jacobian == dRdy
	Fb  []float64     // residual == -fb
	Wb  []float64     // workspace to join fb from all processors
}

// NewDomain returns a new domain
//  Note: returns nil on errors
func NewDomain(sim *inp.Simulation, distr bool) *Domain {
	if len(sim.Regions) != 1 {
		chk.Panic("simulations must have one and only one region for now. %d is incorrect", len(sim.Regions))
	}
	var o Domain
	o.Sim = sim
	o.Reg = sim.Regions[0]
	o.Msh = o.Reg.Msh
	o.Distr = distr
	o.Nproc = 1
	if distr {
		o.Comm = mpi.NewCommunicator(nil)
		o.Proc = mpi.WorldRank()
		o.Nproc = mpi.WorldSize()
		if len(o.Msh.Part2cells) != o.Nproc {
			chk.Panic("number of mesh partitions must be equal to number of processors. %d != %d", len(o.Msh.Part2cells), o.Nproc)
		}
	}
	return &o
}

// SetStage sets the stage being simulated: activates nodes and elements,
// numbers equations and sets the initial solution values
func (o *Domain) SetStage(stg *inp.Stage) (err error) {

	// nodes and equation numbers: one "u" per vertex, numbered by the vertex
	// id so that every processor agrees on the global ordering
	o.Nodes = make([]*Node, len(o.Msh.Verts))
	for _, v := range o.Msh.Verts {
		o.Nodes[v.Id] = &Node{v, []*Dof{{"u", v.Id}}}
	}
	o.Ny = len(o.Msh.Verts)

	// transient equations
	o.T1eqs = make([]int, o.Ny)
	for i := 0; i < o.Ny; i++ {
		o.T1eqs[i] = i
	}

	// elements in this processor
	o.Elems = nil
	o.MyCids = nil
	nnzKb := 0
	for _, c := range o.Msh.Cells {

		// skip cells from other partitions
		if o.Distr && c.Part != o.Proc {
			continue
		}

		// element data
		edat := o.Reg.Etag2data(c.Tag)
		if edat == nil {
			return chk.Err("cannot get element data with tag = %d", c.Tag)
		}

		// stage information
		info, err := ele.GetInfo(o.Sim, c, edat)
		if err != nil {
			return err
		}

		// coordinates matrix and equation numbers
		x := utl.Alloc(o.Msh.Ndim, len(c.Verts))
		eqs := make([][]int, len(c.Verts))
		for m, vid := range c.Verts {
			for i := 0; i < o.Msh.Ndim; i++ {
				x[i][m] = o.Msh.Verts[vid].C[i]
			}
			eqs[m] = make([]int, len(info.Dofs[m]))
			for j, key := range info.Dofs[m] {
				eqs[m][j] = o.Nodes[vid].GetEq(key)
			}
		}

		// allocate element
		e, err := ele.New(o.Sim, c, edat, x)
		if err != nil {
			return chk.Err("cannot allocate element %d:\n%v", c.Id, err)
		}
		err = e.SetEqs(eqs)
		if err != nil {
			return err
		}

		// face boundary conditions
		fconds, err := c.SetFaceConds(stg, o.Sim.Functions)
		if err != nil {
			return err
		}
		if len(fconds) > 0 {
			fl, ok := e.(FaceLoaded)
			if !ok {
				return chk.Err("element %d cannot take face boundary conditions", c.Id)
			}
			fl.SetNatBcs(fconds)
		}

		// results
		o.Elems = append(o.Elems, e)
		o.MyCids = append(o.MyCids, c.Id)
		nnzKb += len(c.Verts) * len(c.Verts)
	}

	// solution structure and linear problem
	o.Sol = new(ele.Solution)
	o.Sol.Allocate(o.Ny, o.Sim.Data.Steady)
	o.Sol.DynCfs = new(ele.DynCoefs)
	err = o.Sol.DynCfs.Init(&o.Sim.Solver)
	if err != nil {
		return
	}
	o.Kb = new(la.Triplet)
	o.Kb.Init(o.Ny, o.Ny, nnzKb)
	o.Fb = make([]float64, o.Ny)
	o.Wb = make([]float64, o.Ny)

	// initial solution values
	if stg.Initial != nil {
		f := o.Sim.Fields.Get(stg.Initial.Fld)
		if f == nil {
			return chk.Err("cannot find field named %q to set initial values", stg.Initial.Fld)
		}
		for _, n := range o.Nodes {
			o.Sol.Y[n.GetEq("u")] = f.F(n.Vert.C)
		}
	}
	return
}

// StarVars computes the star variables ψ* that code the previous step and
// interpolates them to the integration points of all elements
func (o *Domain) StarVars(Δt float64) (err error) {
	o.Sol.Dt = Δt
	o.Sol.DynCfs.CalcBoth(Δt)
	β1 := o.Sol.DynCfs.GetBet1()
	β2 := o.Sol.DynCfs.GetBet2()
	for _, I := range o.T1eqs {
		o.Sol.Psi[I] = β1*o.Sol.Y[I] + β2*o.Sol.Dydt[I]
	}
	for _, e := range o.Elems {
		err = e.InterpStarVars(o.Sol)
		if err != nil {
			return
		}
	}
	return
}

// UpdateDydt updates the rate variables after a converged step
func (o *Domain) UpdateDydt() {
	β1 := o.Sol.DynCfs.GetBet1()
	for _, I := range o.T1eqs {
		o.Sol.Dydt[I] = β1*o.Sol.Y[I] - o.Sol.Psi[I]
	}
}
