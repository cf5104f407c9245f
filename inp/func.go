// Copyright 2016 The Prionfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/neurofem/prionfem/fld"
)

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name"` // name of function; e.g. "dt"
	Type string     `json:"type"` // type of function; e.g. "cte"
	Prms dbf.Params `json:"prms"` // parameters
}

// FuncsData holds functions definitions
type FuncsData []*FuncData

// Get returns function by name
//  Note: returns nil if not found
func (o FuncsData) Get(name string) dbf.T {
	if name == "zero" {
		return &dbf.Zero
	}
	for _, d := range o {
		if d.Name == name {
			return dbf.New(d.Type, d.Prms)
		}
	}
	return nil
}

// String prints one function
func (o FuncData) String() string {
	return io.Sf("{\"name\":%q, \"type\":%q, \"prms\":%v}", o.Name, o.Type, o.Prms)
}

// FldData holds the definition of a spatial field
type FldData struct {
	Name string     `json:"name"` // name of field; e.g. "seed"
	Type string     `json:"type"` // type of field; e.g. "bump"
	Prms dbf.Params `json:"prms"` // parameters
}

// FldsData holds spatial fields definitions
type FldsData []*FldData

// Get returns field by name
//  Note: returns nil if not found
func (o FldsData) Get(name string) fld.Field {
	for _, d := range o {
		if d.Name == name {
			f, err := fld.New(d.Type)
			if err != nil {
				chk.Panic("cannot get %q field named %q:\n%v", d.Type, d.Name, err)
			}
			err = f.Init(d.Prms)
			if err != nil {
				chk.Panic("cannot initialise %q field named %q:\n%v", d.Type, d.Name, err)
			}
			return f
		}
	}
	return nil
}
