// Copyright 2016 The Prionfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/neurofem/prionfem/mdl/prion"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Model string     `json:"model"` // name of model; e.g. "fk"
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters

	// derived
	Mdl prion.Model // pointer to model
}

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials []*Material `json:"materials"` // all materials

	// derived
	name2mat map[string]*Material // maps material name to material
}

// ReadMat reads all materials data from a .mat JSON file and initialises
// the corresponding models
func ReadMat(dir, fn string, ndim int) (mdb *MatDb, err error) {

	// read file
	b := io.ReadFile(filepath.Join(dir, fn))

	// decode
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, err
	}

	// derived data and models
	mdb.name2mat = make(map[string]*Material)
	for _, m := range mdb.Materials {
		if _, ok := mdb.name2mat[m.Name]; ok {
			return nil, chk.Err("duplicate material name %q in %q", m.Name, fn)
		}
		mdb.name2mat[m.Name] = m
		m.Mdl, err = prion.New(m.Model)
		if err != nil {
			return nil, chk.Err("cannot allocate model for material %q:\n%v", m.Name, err)
		}
		err = m.Mdl.Init(ndim, m.Prms)
		if err != nil {
			return nil, chk.Err("cannot initialise model for material %q:\n%v", m.Name, err)
		}
	}
	return
}

// Get returns a material by name
//  Note: returns nil if not found
func (o *MatDb) Get(name string) *Material {
	return o.name2mat[name]
}

// String prints one material
func (o *Material) String() string {
	return io.Sf("{\"name\":%q, \"model\":%q, \"prms\":%v}", o.Name, o.Model, o.Prms)
}
