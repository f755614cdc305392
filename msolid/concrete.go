// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Concrete implements a plane-stress concrete model with smeared, fixed
// orthogonal cracks. The response is isotropic elastic until the first
// cracking or compressive nonlinearity, at which point the material axes are
// fixed along the current principal strain directions; thereafter each axis
// follows an independent uniaxial law:
//
//	compression: Hognestad parabola up to (eps0, fc), linear softening to
//	             (epsu, fcu), then a residual plateau at fcu (crushed)
//	tension:     linear to the cracking strain ft/E0, linear softening to
//	             zero stress at epst (cracked)
//
// Unloading and reloading follow secants through the origin. In-plane shear
// across fixed axes keeps the retention factor betsh of the elastic modulus.
type Concrete struct {

	// parameters (compression entries kept negative)
	Fc    float64 // compressive strength
	Ft    float64 // tensile strength
	Fcu   float64 // residual (crushing) strength
	Eps0  float64 // strain at compressive strength
	Epsu  float64 // strain at crushing strength
	Epst  float64 // strain at complete loss of tensile capacity
	Nu    float64 // Poisson's coefficient (isotropic stage only)
	Betsh float64 // shear retention factor across fixed axes

	// derived
	E0     float64 // initial modulus 2|fc|/|eps0|
	G      float64 // elastic shear modulus
	EpsCr  float64 // cracking strain ft/E0
	EpsLim float64 // compressive strain fixing the material axes
}

// add model to factory
func init() {
	psallocators["concrete"] = func() PsModel { return new(Concrete) }
}

// Init initialises model
func (o *Concrete) Init(prms dbf.Params) (err error) {
	o.Betsh = 0.25
	for _, p := range prms {
		switch p.N {
		case "fc":
			o.Fc = p.V
		case "ft":
			o.Ft = p.V
		case "fcu":
			o.Fcu = p.V
		case "eps0":
			o.Eps0 = p.V
		case "epsu":
			o.Epsu = p.V
		case "epst":
			o.Epst = p.V
		case "nu":
			o.Nu = p.V
		case "betsh":
			o.Betsh = p.V
		}
	}

	// compression quantities are negative internally, whichever sign convention
	// the input file uses
	o.Fc = -math.Abs(o.Fc)
	o.Fcu = -math.Abs(o.Fcu)
	o.Eps0 = -math.Abs(o.Eps0)
	o.Epsu = -math.Abs(o.Epsu)
	if o.Fc == 0 || o.Eps0 == 0 {
		return chk.Err("concrete: fc and eps0 must be nonzero")
	}
	if o.Epsu >= o.Eps0 {
		return chk.Err("concrete: |epsu| must exceed |eps0|")
	}
	o.E0 = 2.0 * o.Fc / o.Eps0
	o.G = o.E0 / (2.0 * (1.0 + o.Nu))
	o.EpsCr = o.Ft / o.E0
	o.EpsLim = 0.25 * o.Eps0
	if o.Epst <= o.EpsCr {
		return chk.Err("concrete: epst=%g must exceed the cracking strain %g", o.Epst, o.EpsCr)
	}
	return
}

// InitIntVars initialises internal (secondary) variables
func (o *Concrete) InitIntVars() (s *PlateState, err error) {
	s = NewPlateState(false)
	return
}

// uniaxial computes the stress and tangent along one fixed material axis.
// With update=true the envelope memory in s is advanced; CalcD passes false
// so that tangent evaluation never mutates the state.
func (o *Concrete) uniaxial(s *PlateState, i int, ε float64, update bool) (σ, D float64) {

	if ε < 0 { // compression

		εmin := s.EpscMin[i]
		if ε <= εmin { // loading on the envelope
			if update {
				s.EpscMin[i] = ε
				if ε <= o.Epsu {
					s.Crushed[i] = true
				}
			}
			return o.compEnvelope(ε)
		}
		// unloading/reloading: secant through the origin
		if εmin < 0 {
			σmin, _ := o.compEnvelope(εmin)
			Esec := σmin / εmin
			return Esec * ε, Esec
		}
		return o.E0 * ε, o.E0
	}

	// tension
	εmax := s.EpstMax[i]
	if ε >= εmax { // loading on the envelope
		if update {
			s.EpstMax[i] = ε
			if ε >= o.Epst {
				s.Cracked[i] = true
			}
		}
		return o.tensEnvelope(ε)
	}
	if εmax > 0 {
		σmax, _ := o.tensEnvelope(εmax)
		Esec := σmax / εmax
		return Esec * ε, Esec
	}
	return o.E0 * ε, o.E0
}

// compEnvelope evaluates the compressive backbone at ε (ε < 0)
func (o *Concrete) compEnvelope(ε float64) (σ, D float64) {
	x := ε / o.Eps0
	switch {
	case x < 1.0: // ascending parabola
		σ = o.Fc * (2.0*x - x*x)
		D = o.E0 * (1.0 - x)
	case ε > o.Epsu: // linear softening
		D = (o.Fcu - o.Fc) / (o.Epsu - o.Eps0)
		σ = o.Fc + D*(ε-o.Eps0)
	default: // residual plateau
		σ = o.Fcu
		D = 0
	}
	return
}

// tensEnvelope evaluates the tensile backbone at ε (ε >= 0)
func (o *Concrete) tensEnvelope(ε float64) (σ, D float64) {
	switch {
	case ε <= o.EpsCr:
		σ = o.E0 * ε
		D = o.E0
	case ε < o.Epst: // linear softening
		D = -o.Ft / (o.Epst - o.EpsCr)
		σ = o.Ft * (o.Epst - ε) / (o.Epst - o.EpsCr)
	default: // crack fully open
		σ = 0
		D = 0
	}
	return
}

// strainToAxes transforms global strains {εx, εy, γxy} to the fixed axes
func strainToAxes(εl, ε []float64, α float64) {
	c, s := math.Cos(α), math.Sin(α)
	εl[0] = c*c*ε[0] + s*s*ε[1] + c*s*ε[2]
	εl[1] = s*s*ε[0] + c*c*ε[1] - c*s*ε[2]
	εl[2] = -2.0*c*s*ε[0] + 2.0*c*s*ε[1] + (c*c-s*s)*ε[2]
}

// stressFromAxes transforms local stresses {σ1, σ2, τ12} back to global axes
func stressFromAxes(σ, σl []float64, α float64) {
	c, s := math.Cos(α), math.Sin(α)
	σ[0] = c*c*σl[0] + s*s*σl[1] - 2.0*c*s*σl[2]
	σ[1] = s*s*σl[0] + c*c*σl[1] + 2.0*c*s*σl[2]
	σ[2] = c*s*σl[0] - c*s*σl[1] + (c*c-s*s)*σl[2]
}

// Update updates stresses for given total strains {εx, εy, γxy}
func (o *Concrete) Update(s *PlateState, ε []float64) (err error) {

	copy(s.Eps, ε)

	if !s.Axes {

		// principal strains decide whether the axes must be fixed now
		εm := 0.5 * (ε[0] + ε[1])
		εd := 0.5 * (ε[0] - ε[1])
		rad := math.Sqrt(εd*εd + 0.25*ε[2]*ε[2])
		ε1, ε2 := εm+rad, εm-rad

		if ε1 <= o.EpsCr && ε2 >= o.EpsLim {
			// isotropic elastic
			q := o.E0 / (1.0 - o.Nu*o.Nu)
			s.Sig[0] = q * (ε[0] + o.Nu*ε[1])
			s.Sig[1] = q * (ε[1] + o.Nu*ε[0])
			s.Sig[2] = o.G * ε[2]
			return
		}
		s.Axes = true
		s.Alp = 0.5 * math.Atan2(ε[2], ε[0]-ε[1])
	}

	var εl, σl [3]float64
	strainToAxes(εl[:], ε, s.Alp)
	σl[0], _ = o.uniaxial(s, 0, εl[0], true)
	σl[1], _ = o.uniaxial(s, 1, εl[1], true)
	σl[2] = o.Betsh * o.G * εl[2]
	stressFromAxes(s.Sig, σl[:], s.Alp)
	return
}

// CalcD fills the in-plane 3x3 block of D, consistent with Update
func (o *Concrete) CalcD(D [][]float64, s *PlateState) (err error) {

	if !s.Axes {
		q := o.E0 / (1.0 - o.Nu*o.Nu)
		D[0][0], D[0][1], D[0][2] = q, q*o.Nu, 0
		D[1][0], D[1][1], D[1][2] = q*o.Nu, q, 0
		D[2][0], D[2][1], D[2][2] = 0, 0, o.G
		return
	}

	var εl [3]float64
	strainToAxes(εl[:], s.Eps, s.Alp)
	_, D1 := o.uniaxial(s, 0, εl[0], false)
	_, D2 := o.uniaxial(s, 1, εl[1], false)
	Ds := o.Betsh * o.G

	// D = Tᵀ diag(D1, D2, Ds) T with T the strain transformation
	c, sn := math.Cos(s.Alp), math.Sin(s.Alp)
	c2, s2, cs := c*c, sn*sn, c*sn
	T := [3][3]float64{
		{c2, s2, cs},
		{s2, c2, -cs},
		{-2.0 * cs, 2.0 * cs, c2 - s2},
	}
	d := [3]float64{D1, D2, Ds}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			D[i][j] = 0
			for k := 0; k < 3; k++ {
				D[i][j] += T[k][i] * d[k] * T[k][j]
			}
		}
	}
	return
}
