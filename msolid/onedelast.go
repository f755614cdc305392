// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/fun/dbf"
)

// OnedElast implements a linear elastic uniaxial model
type OnedElast struct {
	E float64 // Young's modulus
}

// add model to factory
func init() {
	onedallocators["oned-elast"] = func() OnedModel { return new(OnedElast) }
}

// Init initialises model
func (o *OnedElast) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		}
	}
	return
}

// InitIntVars initialises internal (secondary) variables
func (o *OnedElast) InitIntVars() (s *OnedState, err error) {
	s = NewOnedState()
	return
}

// Update updates stress for given total strain
func (o *OnedElast) Update(s *OnedState, ε float64) (err error) {
	s.Eps = ε
	s.Sig = o.E * ε
	return
}

// CalcD computes D = dσ/dε
func (o *OnedElast) CalcD(s *OnedState) float64 {
	return o.E
}
