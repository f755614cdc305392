// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package section implements the layered (through-thickness) integration of
// shell sections. Generalised strains are ordered
//
//	{εxx, εyy, γxy, κxx, κyy, κxy, γxz, γyz}
//
// and the work-conjugate resultants are
//
//	{Nxx, Nyy, Nxy, Mxx, Myy, Mxy, Qxz, Qyz}
//
// Each layer is integrated with the midpoint rule at its mid-surface offset.
package section

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/rcwall/inp"
	"github.com/cpmech/rcwall/msolid"
)

// State holds the states of all layers of one section point
type State struct {
	Lys []*msolid.PlateState
}

// Set copies states
//
//	Note: this and other states must have the same number of layers
func (o *State) Set(other *State) {
	for i, l := range o.Lys {
		l.Set(other.Lys[i])
	}
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := &State{Lys: make([]*msolid.PlateState, len(o.Lys))}
	for i, l := range o.Lys {
		other.Lys[i] = l.GetCopy()
	}
	return other
}

// Layered integrates a stack of plate material layers through the thickness
type Layered struct {
	Name string              // section name
	Th   float64             // nominal total thickness
	Mdls []msolid.PlateModel // one model per layer
	Z    []float64           // signed mid-surface offset per layer
	T    []float64           // thickness per layer

	// scratch
	dl [][]float64 // layer tangent [5][5]
	εl []float64   // layer strains [5]
}

// New builds a layered section from its definition, resolving layer
// materials in the database. Layers are stacked bottom-up with the section
// mid-surface at z=0.
func New(name string, def *inp.SecData, mdb msolid.MatDb) (o *Layered, err error) {
	err = def.Check(name)
	if err != nil {
		return
	}
	nly := len(def.Layers)
	o = &Layered{
		Name: name,
		Th:   def.Th,
		Mdls: make([]msolid.PlateModel, nly),
		Z:    make([]float64, nly),
		T:    make([]float64, nly),
		dl:   utl.Alloc(5, 5),
		εl:   make([]float64, 5),
	}
	z := -def.Th / 2.0
	for i, l := range def.Layers {
		o.Mdls[i], err = mdb.GetPlate(l.Mat)
		if err != nil {
			return nil, chk.Err("section %q: layer %d:\n%v", name, i, err)
		}
		o.T[i] = l.Th
		o.Z[i] = z + l.Th/2.0
		z += l.Th
	}
	return
}

// InitIntVars initialises the internal variables of all layers
func (o *Layered) InitIntVars() (s *State, err error) {
	s = &State{Lys: make([]*msolid.PlateState, len(o.Mdls))}
	for i, m := range o.Mdls {
		s.Lys[i], err = m.InitIntVars()
		if err != nil {
			return nil, chk.Err("section %q: layer %d:\n%v", o.Name, i, err)
		}
	}
	return
}

// Update updates the stresses of all layers for given generalised strains [8]
func (o *Layered) Update(s *State, ε []float64) (err error) {
	for i, m := range o.Mdls {
		z := o.Z[i]
		o.εl[0] = ε[0] + z*ε[3]
		o.εl[1] = ε[1] + z*ε[4]
		o.εl[2] = ε[2] + z*ε[5]
		o.εl[3] = ε[6]
		o.εl[4] = ε[7]
		err = m.Update(s.Lys[i], o.εl)
		if err != nil {
			return chk.Err("section %q: layer %d:\n%v", o.Name, i, err)
		}
	}
	return
}

// Resultants integrates the layer stresses into generalised resultants [8]
func (o *Layered) Resultants(s *State, rst []float64) {
	for i := 0; i < 8; i++ {
		rst[i] = 0
	}
	for i := range o.Mdls {
		σ := s.Lys[i].Sig
		t, z := o.T[i], o.Z[i]
		for k := 0; k < 3; k++ {
			rst[k] += σ[k] * t
			rst[3+k] += σ[k] * z * t
		}
		rst[6] += σ[3] * t
		rst[7] += σ[4] * t
	}
}

// CalcD computes the 8x8 generalised tangent matrix, consistent with
// Update and Resultants
func (o *Layered) CalcD(D [][]float64, s *State) (err error) {
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			D[i][j] = 0
		}
	}
	for i, m := range o.Mdls {
		err = m.CalcD(o.dl, s.Lys[i])
		if err != nil {
			return chk.Err("section %q: layer %d:\n%v", o.Name, i, err)
		}
		t, z := o.T[i], o.Z[i]
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				v := o.dl[a][b] * t
				D[a][b] += v
				D[a][3+b] += v * z
				D[3+a][b] += v * z
				D[3+a][3+b] += v * z * z
			}
			for b := 0; b < 2; b++ {
				v := o.dl[a][3+b] * t
				D[a][6+b] += v
				D[3+a][6+b] += v * z
				w := o.dl[3+b][a] * t
				D[6+b][a] += w
				D[6+b][3+a] += w * z
			}
		}
		for a := 0; a < 2; a++ {
			for b := 0; b < 2; b++ {
				D[6+a][6+b] += o.dl[3+a][3+b] * t
			}
		}
	}
	return
}
