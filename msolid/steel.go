// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// ReinfSteel implements the Giuffrè-Menegotto-Pinto uniaxial law for
// reinforcing steel: linear elastic and strain-hardening asymptotes joined
// by a smooth transition curve whose curvature decays with repeated
// reversals (Bauschinger effect). On a strain reversal the transition curve
// is re-anchored at the reversal point so the new branch approaches the
// opposite asymptote smoothly.
type ReinfSteel struct {
	Fy  float64 // yield stress
	E   float64 // Young's modulus
	B   float64 // strain-hardening ratio Esh/E
	R0  float64 // initial curvature parameter of the transition curve
	CR1 float64 // curvature degradation coefficient
	CR2 float64 // curvature degradation coefficient
}

// add model to factory
func init() {
	onedallocators["steel"] = func() OnedModel { return new(ReinfSteel) }
}

// Init initialises model
func (o *ReinfSteel) Init(prms dbf.Params) (err error) {
	o.R0, o.CR1, o.CR2 = 15.0, 0.925, 0.15
	for _, p := range prms {
		switch p.N {
		case "fy":
			o.Fy = p.V
		case "E":
			o.E = p.V
		case "b":
			o.B = p.V
		case "R0":
			o.R0 = p.V
		case "cR1":
			o.CR1 = p.V
		case "cR2":
			o.CR2 = p.V
		}
	}
	return
}

// InitIntVars initialises internal (secondary) variables
func (o *ReinfSteel) InitIntVars() (s *OnedState, err error) {
	s = NewOnedState()
	return
}

// Update updates stress for given total strain. The committed history is
// read from s and overwritten with the trial values.
func (o *ReinfSteel) Update(s *OnedState, ε float64) (err error) {

	εy := o.Fy / o.E
	Esh := o.B * o.E
	Δε := ε - s.Eps
	kon := s.Kon

	// branch bookkeeping; a reversal re-anchors the transition curve
	switch {
	case kon == 0:
		s.EpsMax, s.EpsMin = εy, -εy
		if Δε < 0 {
			kon = 2
			s.Eps0, s.Sig0 = -εy, -o.Fy
			s.EpsPl = -εy
		} else {
			kon = 1
			s.Eps0, s.Sig0 = εy, o.Fy
			s.EpsPl = εy
		}
	case kon == 2 && Δε > 0:
		// reversal: compression branch => tension branch
		kon = 1
		s.EpsR, s.SigR = s.Eps, s.Sig
		if s.Eps < s.EpsMin {
			s.EpsMin = s.Eps
		}
		s.Eps0 = (o.Fy - Esh*εy - s.SigR + o.E*s.EpsR) / (o.E - Esh)
		s.Sig0 = o.Fy + Esh*(s.Eps0-εy)
		s.EpsPl = s.EpsMax
	case kon == 1 && Δε < 0:
		// reversal: tension branch => compression branch
		kon = 2
		s.EpsR, s.SigR = s.Eps, s.Sig
		if s.Eps > s.EpsMax {
			s.EpsMax = s.Eps
		}
		s.Eps0 = (-o.Fy + Esh*εy - s.SigR + o.E*s.EpsR) / (o.E - Esh)
		s.Sig0 = -o.Fy + Esh*(s.Eps0+εy)
		s.EpsPl = s.EpsMin
	}
	s.Kon = kon

	// transition curve between (εr,σr) and the target asymptote
	ξ := math.Abs((s.EpsPl - s.Eps0) / εy)
	R := o.R0 * (1.0 - o.CR1*ξ/(o.CR2+ξ))
	εrat := (ε - s.EpsR) / (s.Eps0 - s.EpsR)
	dum1 := 1.0 + math.Pow(math.Abs(εrat), R)
	dum2 := math.Pow(dum1, 1.0/R)
	σrat := o.B*εrat + (1.0-o.B)*εrat/dum2

	s.Eps = ε
	s.Sig = σrat*(s.Sig0-s.SigR) + s.SigR
	return
}

// CalcD computes D = dσ/dε consistent with Update
func (o *ReinfSteel) CalcD(s *OnedState) float64 {
	if s.Kon == 0 {
		return o.E
	}
	εy := o.Fy / o.E
	ξ := math.Abs((s.EpsPl - s.Eps0) / εy)
	R := o.R0 * (1.0 - o.CR1*ξ/(o.CR2+ξ))
	εrat := (s.Eps - s.EpsR) / (s.Eps0 - s.EpsR)
	dum1 := 1.0 + math.Pow(math.Abs(εrat), R)
	dum2 := math.Pow(dum1, 1.0/R)
	return (o.B + (1.0-o.B)/(dum1*dum2)) * (s.Sig0 - s.SigR) / (s.Eps0 - s.EpsR)
}
