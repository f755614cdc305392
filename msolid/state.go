// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements material models for reinforced-concrete walls:
// uniaxial hysteretic steel, plane-stress concrete with cracking/crushing,
// and the adapters that lift these responses into plate space.
//
// Models are stateless with respect to history: all path-dependent data
// lives in OnedState / PlateState values owned by the element integration
// points. The committed/trial discipline is realised by keeping two state
// copies per point and using Set to promote (commit) or restore (revert).
package msolid

// OnedState holds the history of a uniaxial stress point
type OnedState struct {

	// essential
	Sig float64 // σ: current stress
	Eps float64 // ε: current strain

	// hysteresis (Menegotto-Pinto transition curve)
	Kon    int     // loading index: 0=virgin, 1=tension branch, 2=compression branch
	Eps0   float64 // ε0: strain at intersection of elastic and hardening asymptotes
	Sig0   float64 // σ0: stress at intersection of elastic and hardening asymptotes
	EpsR   float64 // εr: strain at last reversal
	SigR   float64 // σr: stress at last reversal
	EpsPl  float64 // strain extreme defining the curvature parameter ξ
	EpsMax float64 // maximum strain ever reached
	EpsMin float64 // minimum strain ever reached
}

// NewOnedState allocates a new uniaxial state
func NewOnedState() *OnedState {
	return new(OnedState)
}

// Set copies states
//
//	Note: this and other states must correspond to the same model
func (o *OnedState) Set(other *OnedState) {
	*o = *other
}

// GetCopy returns a copy of this state
func (o *OnedState) GetCopy() *OnedState {
	other := NewOnedState()
	other.Set(o)
	return other
}

// PlateState holds the history of a plate (layer) stress point.
// Components are ordered {σxx, σyy, σxy, σxz, σyz} and likewise for strains
// with engineering shear.
type PlateState struct {

	// essential
	Sig []float64 // σ: current stress [5]
	Eps []float64 // ε: current strain [5]

	// fixed material axes and damage memory (concrete)
	Axes    bool      // material axes have been fixed
	Alp     float64   // α: angle of material axis 1 w.r.t the x-axis [rad]
	EpstMax []float64 // maximum tensile strain reached, per axis [2]
	EpscMin []float64 // minimum compressive strain reached, per axis [2]
	Cracked []bool    // crack open across axis, per axis [2]
	Crushed []bool    // compressive limit state reached, per axis [2]

	// wrapped uniaxial state (rebar layers)
	Oned *OnedState
}

// NewPlateState allocates a new plate state
//
//	withOned -- allocate the wrapped uniaxial state (rebar layers)
func NewPlateState(withOned bool) *PlateState {
	var s PlateState
	s.Sig = make([]float64, 5)
	s.Eps = make([]float64, 5)
	s.EpstMax = make([]float64, 2)
	s.EpscMin = make([]float64, 2)
	s.Cracked = make([]bool, 2)
	s.Crushed = make([]bool, 2)
	if withOned {
		s.Oned = NewOnedState()
	}
	return &s
}

// Set copies states
//
//	Note: this and other states must have been pre-allocated with the same sizes
func (o *PlateState) Set(other *PlateState) {
	copy(o.Sig, other.Sig)
	copy(o.Eps, other.Eps)
	o.Axes = other.Axes
	o.Alp = other.Alp
	copy(o.EpstMax, other.EpstMax)
	copy(o.EpscMin, other.EpscMin)
	copy(o.Cracked, other.Cracked)
	copy(o.Crushed, other.Crushed)
	if o.Oned != nil {
		o.Oned.Set(other.Oned)
	}
}

// GetCopy returns a copy of this state
func (o *PlateState) GetCopy() *PlateState {
	other := NewPlateState(o.Oned != nil)
	other.Set(o)
	return other
}
