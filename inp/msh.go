// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data structures: mesh, materials,
// layered sections and solver settings. Models are either assembled in code
// or read from JSON files.
package inp

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
)

// Vert holds vertex data
type Vert struct {
	Id  int       `json:"id"`  // identifier
	Tag int       `json:"tag"` // tag
	C   []float64 `json:"c"`   // coordinates
	Fix []string  `json:"fix"` // prescribed-zero dof keys; e.g. "ux", "ry"
}

// Cell holds cell data
type Cell struct {
	Id    int     `json:"id"`    // identifier
	Tag   int     `json:"tag"`   // tag
	Type  string  `json:"type"`  // geometry type; e.g. "qua4", "lin2"
	Verts []int   `json:"verts"` // vertices
	Sec   string  `json:"sec"`   // section name (layered shells)
	Mat   string  `json:"mat"`   // material name (trusses)
	A     float64 `json:"a"`     // cross-sectional area (trusses)
}

// Mesh holds a mesh for FE analyses
type Mesh struct {
	Ndim  int     `json:"ndim"`  // space dimension
	Verts []*Vert `json:"verts"` // vertices
	Cells []*Cell `json:"cells"` // cells
}

// Check verifies mesh consistency: sequential ids and in-range connectivity
func (o *Mesh) Check() (err error) {
	if o.Ndim < 2 || o.Ndim > 3 {
		return chk.Err("ndim must be 2 or 3. ndim=%d is invalid", o.Ndim)
	}
	for i, v := range o.Verts {
		if v.Id != i {
			return chk.Err("vertices must be numbered sequentially. %d != %d", v.Id, i)
		}
		if len(v.C) != o.Ndim {
			return chk.Err("vertex %d has %d coordinates. need %d", v.Id, len(v.C), o.Ndim)
		}
	}
	for i, c := range o.Cells {
		if c.Id != i {
			return chk.Err("cells must be numbered sequentially. %d != %d", c.Id, i)
		}
		for _, n := range c.Verts {
			if n < 0 || n >= len(o.Verts) {
				return chk.Err("cell %d references inexistent vertex %d", c.Id, n)
			}
		}
	}
	return
}

// ReadMsh reads a mesh from a JSON file
func ReadMsh(fn string) (msh *Mesh, err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read mesh file %q:\n%v", fn, err)
	}
	msh = new(Mesh)
	err = json.Unmarshal(b, msh)
	if err != nil {
		return nil, chk.Err("cannot parse mesh file %q:\n%v", fn, err)
	}
	err = msh.Check()
	if err != nil {
		return nil, chk.Err("mesh file %q is inconsistent:\n%v", fn, err)
	}
	return
}
