// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// PlateFromPlaneStress lifts a plane-stress model to plate space by adding
// linear elastic out-of-plane shear with modulus Gop
type PlateFromPlaneStress struct {
	Ps  PsModel // wrapped in-plane model
	Gop float64 // out-of-plane shear modulus
}

// Init initialises the adapter. The wrapped model must be set and
// initialised beforehand.
func (o *PlateFromPlaneStress) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "Gop":
			o.Gop = p.V
		}
	}
	if o.Gop <= 0 {
		return chk.Err("plate adapter: Gop must be positive")
	}
	return
}

// InitIntVars initialises internal (secondary) variables
func (o *PlateFromPlaneStress) InitIntVars() (s *PlateState, err error) {
	return o.Ps.InitIntVars()
}

// Update updates stresses for given total strains [5]
func (o *PlateFromPlaneStress) Update(s *PlateState, ε []float64) (err error) {
	err = o.Ps.Update(s, ε[:3])
	if err != nil {
		return
	}
	s.Eps[3], s.Eps[4] = ε[3], ε[4]
	s.Sig[3] = o.Gop * ε[3]
	s.Sig[4] = o.Gop * ε[4]
	return
}

// CalcD computes the 5x5 tangent matrix
func (o *PlateFromPlaneStress) CalcD(D [][]float64, s *PlateState) (err error) {
	err = o.Ps.CalcD(D, s)
	if err != nil {
		return
	}
	for i := 0; i < 5; i++ {
		D[i][3], D[i][4] = 0, 0
		D[3][i], D[4][i] = 0, 0
	}
	D[3][3] = o.Gop
	D[4][4] = o.Gop
	return
}

// PlateRebar represents a smeared reinforcement layer: a uniaxial model
// acting along direction alp, contributing a rank-one stiffness in plate
// space and nothing out of plane
type PlateRebar struct {
	Mdl OnedModel  // wrapped uniaxial model
	Alp float64    // bar direction w.r.t the x-axis [rad]
	p   [3]float64 // strain projection vector {c², s², cs}
}

// Init initialises the adapter. The wrapped model must be set and
// initialised beforehand. Angles are given in degrees.
func (o *PlateRebar) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "alp":
			o.Alp = p.V * math.Pi / 180.0
		}
	}
	c, s := math.Cos(o.Alp), math.Sin(o.Alp)
	o.p[0], o.p[1], o.p[2] = c*c, s*s, c*s
	return
}

// InitIntVars initialises internal (secondary) variables
func (o *PlateRebar) InitIntVars() (s *PlateState, err error) {
	s = NewPlateState(true)
	return
}

// Update updates stresses for given total strains [5]
func (o *PlateRebar) Update(s *PlateState, ε []float64) (err error) {
	copy(s.Eps, ε)
	εs := o.p[0]*ε[0] + o.p[1]*ε[1] + o.p[2]*ε[2]
	err = o.Mdl.Update(s.Oned, εs)
	if err != nil {
		return
	}
	σs := s.Oned.Sig
	s.Sig[0] = σs * o.p[0]
	s.Sig[1] = σs * o.p[1]
	s.Sig[2] = σs * o.p[2]
	s.Sig[3], s.Sig[4] = 0, 0
	return
}

// CalcD computes the 5x5 tangent matrix
func (o *PlateRebar) CalcD(D [][]float64, s *PlateState) (err error) {
	Es := o.Mdl.CalcD(s.Oned)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			D[i][j] = 0
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			D[i][j] = Es * o.p[i] * o.p[j]
		}
	}
	return
}

// ElastPlate implements an isotropic linear elastic plate layer
type ElastPlate struct {
	E  float64 // Young's modulus
	Nu float64 // Poisson's coefficient
	G  float64 // shear modulus
}

// Init initialises model
func (o *ElastPlate) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		}
	}
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	return
}

// InitIntVars initialises internal (secondary) variables
func (o *ElastPlate) InitIntVars() (s *PlateState, err error) {
	s = NewPlateState(false)
	return
}

// Update updates stresses for given total strains [5]
func (o *ElastPlate) Update(s *PlateState, ε []float64) (err error) {
	copy(s.Eps, ε)
	q := o.E / (1.0 - o.Nu*o.Nu)
	s.Sig[0] = q * (ε[0] + o.Nu*ε[1])
	s.Sig[1] = q * (ε[1] + o.Nu*ε[0])
	s.Sig[2] = o.G * ε[2]
	s.Sig[3] = o.G * ε[3]
	s.Sig[4] = o.G * ε[4]
	return
}

// CalcD computes the 5x5 tangent matrix
func (o *ElastPlate) CalcD(D [][]float64, s *PlateState) (err error) {
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			D[i][j] = 0
		}
	}
	q := o.E / (1.0 - o.Nu*o.Nu)
	D[0][0], D[0][1] = q, q*o.Nu
	D[1][0], D[1][1] = q*o.Nu, q
	D[2][2] = o.G
	D[3][3] = o.G
	D[4][4] = o.G
	return
}
