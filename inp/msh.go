// Copyright 2016 The Prionfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"math"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/neurofem/prionfem/shp"
)

// Vert holds vertex data
type Vert struct {
	Id  int       `json:"i"` // id
	Tag int       `json:"t"` // tag
	C   []float64 `json:"c"` // coordinates (size==Ndim)
}

// Cell holds cell data
type Cell struct {

	// input
	Id    int    `json:"i"`  // id
	Tag   int    `json:"t"`  // tag
	Part  int    `json:"p"`  // partition id
	Type  string `json:"y"`  // geometry type; e.g. "tet4"
	Verts []int  `json:"v"`  // vertices
	FTags []int  `json:"ft"` // face tags (one per face; 0 => no tag)

	// derived
	Shp *shp.Shape // shape structure
}

// FaceCond holds information of one face boundary condition
type FaceCond struct {
	FaceId      int      // local index of face on cell
	LocalVerts  []int    // local ids of vertices on face
	GlobalVerts []int    // global ids of vertices on face
	Cond        string   // condition; e.g. "qb"
	Func        dbf.T  // function of time
	Extra       string // extra information
}

// SetFaceConds sets face boundary conditions based on the stage data
func (o *Cell) SetFaceConds(stg *Stage, functions FuncsData) (fconds []*FaceCond, err error) {
	for faceId, ftag := range o.FTags {
		if ftag == 0 {
			continue
		}
		fbc := stg.GetFaceBc(ftag)
		if fbc == nil {
			continue
		}
		for j, key := range fbc.Keys {
			fcn := functions.Get(fbc.Funcs[j])
			if fcn == nil {
				return nil, chk.Err("cannot find function named %q corresponding to face tag %d", fbc.Funcs[j], ftag)
			}
			lverts := o.Shp.FaceLocalVerts[faceId]
			gverts := make([]int, len(lverts))
			for k, lv := range lverts {
				gverts[k] = o.Verts[lv]
			}
			fconds = append(fconds, &FaceCond{faceId, lverts, gverts, key, fcn, fbc.Extra})
		}
	}
	return
}

// CellFaceId structure
type CellFaceId struct {
	C   *Cell // cell
	Fid int   // face id
}

// Mesh holds a mesh for FE analyses
type Mesh struct {

	// input
	Verts []*Vert `json:"verts"` // vertices
	Cells []*Cell `json:"cells"` // cells

	// derived
	FnamePath  string  // complete filename path
	Ndim       int     // space dimension
	Xmin, Xmax float64 // min and max x-coordinate
	Ymin, Ymax float64 // min and max y-coordinate
	Zmin, Zmax float64 // min and max z-coordinate

	// derived: maps
	VertTag2verts map[int][]*Vert      // vertex tag => set of vertices
	CellTag2cells map[int][]*Cell      // cell tag => set of cells
	FaceTag2cells map[int][]CellFaceId // face tag => set of cells with face tag
	Part2cells    map[int][]*Cell      // partition number => set of cells
}

// ReadMsh reads a mesh for FE analyses
//  Note: returns nil on errors
func ReadMsh(dir, fn string, goroutineId int) (o *Mesh, err error) {

	// new mesh
	o = new(Mesh)

	// read file
	o.FnamePath = filepath.Join(dir, fn)
	b := io.ReadFile(o.FnamePath)

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, err
	}

	// check
	if len(o.Verts) < 2 {
		return nil, chk.Err("mesh %q has not enough vertices", fn)
	}
	if len(o.Cells) < 1 {
		return nil, chk.Err("mesh %q has no cells", fn)
	}

	// vertex related derived data
	o.Ndim = len(o.Verts[0].C)
	o.Xmin, o.Ymin, o.Zmin = math.Inf(+1), math.Inf(+1), math.Inf(+1)
	o.Xmax, o.Ymax, o.Zmax = math.Inf(-1), math.Inf(-1), math.Inf(-1)
	o.VertTag2verts = make(map[int][]*Vert)
	for i, v := range o.Verts {

		// check vertex id
		if v.Id != i {
			return nil, chk.Err("vertices ids must coincide with order in %q list. %d != %d", fn, v.Id, i)
		}

		// ndim
		nd := len(v.C)
		if nd < 2 || nd > 3 {
			return nil, chk.Err("number of space dimensions must be 2 or 3. %d is invalid", nd)
		}

		// tags
		if v.Tag < 0 {
			o.VertTag2verts[v.Tag] = append(o.VertTag2verts[v.Tag], v)
		}

		// limits
		o.Xmin = math.Min(o.Xmin, v.C[0])
		o.Xmax = math.Max(o.Xmax, v.C[0])
		o.Ymin = math.Min(o.Ymin, v.C[1])
		o.Ymax = math.Max(o.Ymax, v.C[1])
		if nd > 2 {
			o.Zmin = math.Min(o.Zmin, v.C[2])
			o.Zmax = math.Max(o.Zmax, v.C[2])
		}
	}

	// cell related derived data
	o.CellTag2cells = make(map[int][]*Cell)
	o.FaceTag2cells = make(map[int][]CellFaceId)
	o.Part2cells = make(map[int][]*Cell)
	for i, c := range o.Cells {

		// check id and tag
		if c.Id != i {
			return nil, chk.Err("cells ids must coincide with order in %q list. %d != %d", fn, c.Id, i)
		}
		if c.Tag >= 0 {
			return nil, chk.Err("cells tags must be negative. %d is incorrect", c.Tag)
		}

		// get shape structure
		c.Shp = shp.Get(c.Type, goroutineId)
		if c.Shp == nil {
			return nil, chk.Err("cannot allocate shape structure for cell type %q", c.Type)
		}
		if len(c.Verts) != c.Shp.Nverts {
			return nil, chk.Err("cell %d (%q) has incorrect number of vertices. %d != %d", c.Id, c.Type, len(c.Verts), c.Shp.Nverts)
		}

		// face tags
		if len(c.FTags) > 0 && len(c.FTags) != len(c.Shp.FaceLocalVerts) {
			return nil, chk.Err("cell %d has incorrect number of face tags. %d != %d", c.Id, len(c.FTags), len(c.Shp.FaceLocalVerts))
		}

		// maps
		o.CellTag2cells[c.Tag] = append(o.CellTag2cells[c.Tag], c)
		for fid, ftag := range c.FTags {
			if ftag < 0 {
				o.FaceTag2cells[ftag] = append(o.FaceTag2cells[ftag], CellFaceId{c, fid})
			}
		}
		o.Part2cells[c.Part] = append(o.Part2cells[c.Part], c)
	}

	// results
	return
}
