// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rcwall/msolid"
)

// SolverData holds the settings of the nonlinear solver
type SolverData struct {
	NmaxIt  int     `json:"nmaxit"`  // maximum number of iterations per step
	Itol    float64 `json:"itol"`    // tolerance for the RMS of iterative displacements
	FbTol   float64 `json:"fbtol"`   // relative tolerance for the residual
	FbMin   float64 `json:"fbmin"`   // residual smaller than this is converged outright
	DvgCtrl bool    `json:"dvgctrl"` // stop iterating when the residual grows
	NdvgMax int     `json:"ndvgmax"` // max number of consecutive growing residuals
	ShowR   bool    `json:"showr"`   // print residuals during iterations
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.NmaxIt = 100
	o.Itol = 1e-5
	o.FbTol = 1e-8
	o.FbMin = 1e-14
	o.DvgCtrl = true
	o.NdvgMax = 5
}

// PostProcess fills holes left by the input file with default values
func (o *SolverData) PostProcess() {
	if o.NmaxIt < 1 {
		o.NmaxIt = 100
	}
	if o.Itol <= 0 {
		o.Itol = 1e-5
	}
	if o.FbTol <= 0 {
		o.FbTol = 1e-8
	}
	if o.FbMin <= 0 {
		o.FbMin = 1e-14
	}
	if o.NdvgMax < 1 {
		o.NdvgMax = 5
	}
}

// Model gathers all input data of one simulation
type Model struct {
	Msh    *Mesh               `json:"msh"`    // mesh
	Mats   msolid.MatDb        `json:"mats"`   // materials database
	Secs   map[string]*SecData `json:"secs"`   // layered sections
	Solver SolverData          `json:"solver"` // solver settings
}

// Check verifies model consistency: mesh, sections and material references
func (o *Model) Check() (err error) {
	if o.Msh == nil {
		return chk.Err("model has no mesh")
	}
	err = o.Msh.Check()
	if err != nil {
		return
	}
	for name, sec := range o.Secs {
		err = sec.Check(name)
		if err != nil {
			return
		}
		for _, l := range sec.Layers {
			if _, ok := o.Mats[l.Mat]; !ok {
				return chk.Err("section %q references inexistent material %q", name, l.Mat)
			}
		}
	}
	for _, c := range o.Msh.Cells {
		if c.Sec != "" {
			if _, ok := o.Secs[c.Sec]; !ok {
				return chk.Err("cell %d references inexistent section %q", c.Id, c.Sec)
			}
		}
		if c.Mat != "" {
			if _, ok := o.Mats[c.Mat]; !ok {
				return chk.Err("cell %d references inexistent material %q", c.Id, c.Mat)
			}
		}
	}
	return
}

// ReadModel reads a full simulation model from a JSON file
func ReadModel(fn string) (mdl *Model, err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read model file %q:\n%v", fn, err)
	}
	mdl = new(Model)
	mdl.Solver.SetDefault()
	err = json.Unmarshal(b, mdl)
	if err != nil {
		return nil, chk.Err("cannot parse model file %q:\n%v", fn, err)
	}
	mdl.Solver.PostProcess()
	err = mdl.Check()
	if err != nil {
		return nil, chk.Err("model file %q is inconsistent:\n%v", fn, err)
	}
	return
}
