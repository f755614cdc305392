// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// OnedModel defines uniaxial (1D) stress-strain models. Update computes the
// trial response for a total strain, reading the committed history held in
// the given state and overwriting it with the trial values; the caller is
// responsible for committing or reverting the state afterwards.
type OnedModel interface {
	Init(prms dbf.Params) error           // initialises model with parameters
	InitIntVars() (*OnedState, error)     // allocates internal (secondary) variables
	Update(s *OnedState, ε float64) error // updates stress for given total strain
	CalcD(s *OnedState) float64           // computes D = dσ/dε consistent with Update
}

// PsModel defines plane-stress models with {σxx, σyy, σxy} components
type PsModel interface {
	Init(prms dbf.Params) error               // initialises model with parameters
	InitIntVars() (*PlateState, error)        // allocates internal (secondary) variables
	Update(s *PlateState, ε []float64) error  // updates stresses for given total strains [3]
	CalcD(D [][]float64, s *PlateState) error // fills the in-plane 3x3 block of D
}

// PlateModel defines plate models with {σxx, σyy, σxy, σxz, σyz} components,
// as required by layered shell sections
type PlateModel interface {
	InitIntVars() (*PlateState, error)        // allocates internal (secondary) variables
	Update(s *PlateState, ε []float64) error  // updates stresses for given total strains [5]
	CalcD(D [][]float64, s *PlateState) error // computes the 5x5 tangent matrix
}

// MatData holds the definition of one material
type MatData struct {
	Model string     // model kind; e.g. "steel", "concrete", "plate", "rebar"
	Sub   string     // name of wrapped material, for adapter kinds
	Prms  dbf.Params // parameters
}

// MatDb is a database of materials: name => definition
type MatDb map[string]*MatData

// onedallocators holds all available uniaxial models
var onedallocators = make(map[string]func() OnedModel)

// psallocators holds all available plane-stress models
var psallocators = make(map[string]func() PsModel)

// GetOned allocates and initialises a uniaxial model instance.
// A fresh instance is returned on every call; models carry parameters only,
// never history, so instances may nonetheless be shared.
func (o MatDb) GetOned(name string) (OnedModel, error) {
	dat, ok := o[name]
	if !ok {
		return nil, chk.Err("cannot find material %q in database", name)
	}
	alloc, ok := onedallocators[dat.Model]
	if !ok {
		return nil, chk.Err("material %q: model %q is not a uniaxial model", name, dat.Model)
	}
	mdl := alloc()
	err := mdl.Init(dat.Prms)
	if err != nil {
		return nil, chk.Err("material %q: initialisation failed:\n%v", name, err)
	}
	return mdl, nil
}

// GetPs allocates and initialises a plane-stress model instance
func (o MatDb) GetPs(name string) (PsModel, error) {
	dat, ok := o[name]
	if !ok {
		return nil, chk.Err("cannot find material %q in database", name)
	}
	alloc, ok := psallocators[dat.Model]
	if !ok {
		return nil, chk.Err("material %q: model %q is not a plane-stress model", name, dat.Model)
	}
	mdl := alloc()
	err := mdl.Init(dat.Prms)
	if err != nil {
		return nil, chk.Err("material %q: initialisation failed:\n%v", name, err)
	}
	return mdl, nil
}

// GetPlate allocates and initialises a plate model instance, resolving
// wrapped materials recursively. The set of plate kinds is closed:
// "plate" (plane-stress wrapper), "rebar" (uniaxial adapter) and
// "elast-plate" (isotropic elastic layer).
func (o MatDb) GetPlate(name string) (PlateModel, error) {
	dat, ok := o[name]
	if !ok {
		return nil, chk.Err("cannot find material %q in database", name)
	}
	switch dat.Model {

	case "plate":
		sub, err := o.GetPs(dat.Sub)
		if err != nil {
			return nil, chk.Err("material %q: cannot build wrapped plane-stress material:\n%v", name, err)
		}
		mdl := &PlateFromPlaneStress{Ps: sub}
		err = mdl.Init(dat.Prms)
		if err != nil {
			return nil, chk.Err("material %q: initialisation failed:\n%v", name, err)
		}
		return mdl, nil

	case "rebar":
		sub, err := o.GetOned(dat.Sub)
		if err != nil {
			return nil, chk.Err("material %q: cannot build wrapped uniaxial material:\n%v", name, err)
		}
		mdl := &PlateRebar{Mdl: sub}
		err = mdl.Init(dat.Prms)
		if err != nil {
			return nil, chk.Err("material %q: initialisation failed:\n%v", name, err)
		}
		return mdl, nil

	case "elast-plate":
		mdl := new(ElastPlate)
		err := mdl.Init(dat.Prms)
		if err != nil {
			return nil, chk.Err("material %q: initialisation failed:\n%v", name, err)
		}
		return mdl, nil
	}
	return nil, chk.Err("material %q: model %q is not a plate model", name, dat.Model)
}
