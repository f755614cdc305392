// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

func concreteParams() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "fc", V: 20.7e6},
		&dbf.P{N: "ft", V: 2.07e6},
		&dbf.P{N: "fcu", V: 4.14e6},
		&dbf.P{N: "eps0", V: 0.002},
		&dbf.P{N: "epsu", V: 0.01},
		&dbf.P{N: "epst", V: 0.001},
		&dbf.P{N: "nu", V: 0.3},
	}
}

func newConcrete(tst *testing.T) (*Concrete, *PlateState) {
	mdl := new(Concrete)
	err := mdl.Init(concreteParams())
	if err != nil {
		tst.Fatalf("Init failed:\n%v", err)
	}
	s, err := mdl.InitIntVars()
	if err != nil {
		tst.Fatalf("InitIntVars failed:\n%v", err)
	}
	return mdl, s
}

func Test_concrete01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("concrete01. isotropic elastic stage")

	mdl, s := newConcrete(tst)
	chk.Float64(tst, "E0", 1e-8, mdl.E0, 2.07e10)
	chk.Float64(tst, "εcr", 1e-15, mdl.EpsCr, 1e-4)

	ε := []float64{-5e-5, 2e-5, 3e-5}
	err := mdl.Update(s, ε)
	if err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}
	if s.Axes {
		tst.Errorf("axes must not be fixed in the elastic range")
		return
	}
	q := mdl.E0 / (1.0 - mdl.Nu*mdl.Nu)
	chk.Float64(tst, "σxx", 1e-8, s.Sig[0], q*(ε[0]+mdl.Nu*ε[1]))
	chk.Float64(tst, "σyy", 1e-8, s.Sig[1], q*(ε[1]+mdl.Nu*ε[0]))
	chk.Float64(tst, "σxy", 1e-8, s.Sig[2], mdl.G*ε[2])

	D := utl.Alloc(3, 3)
	err = mdl.CalcD(D, s)
	if err != nil {
		tst.Errorf("CalcD failed:\n%v", err)
		return
	}
	chk.Float64(tst, "D00", 1e-8, D[0][0], q)
	chk.Float64(tst, "D01", 1e-8, D[0][1], q*mdl.Nu)
	chk.Float64(tst, "D22", 1e-8, D[2][2], mdl.G)
}

func Test_concrete02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("concrete02. cracking wipes out the tensile stress")

	mdl, s := newConcrete(tst)

	// pull the x-axis past the end of the softening branch
	err := mdl.Update(s, []float64{2e-3, 0, 0})
	if err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}
	if !s.Axes {
		tst.Errorf("axes must be fixed after cracking")
		return
	}
	chk.Float64(tst, "α", 1e-14, s.Alp, 0)
	if !s.Cracked[0] {
		tst.Errorf("axis 1 must be cracked")
		return
	}
	chk.Float64(tst, "σxx", 1e-8, s.Sig[0], 0)

	// halfway down the softening branch instead
	mdl2, s2 := newConcrete(tst)
	εh := 0.5 * (mdl2.EpsCr + mdl2.Epst)
	err = mdl2.Update(s2, []float64{εh, 0, 0})
	if err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}
	σh := mdl2.Ft * (mdl2.Epst - εh) / (mdl2.Epst - mdl2.EpsCr)
	chk.Float64(tst, "σxx(soft)", 1e-6*mdl2.Ft, s2.Sig[0], σh)

	// closing the crack unloads along a secant through the origin
	err = mdl2.Update(s2, []float64{0.5 * εh, 0, 0})
	if err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}
	chk.Float64(tst, "σxx(secant)", 1e-6*mdl2.Ft, s2.Sig[0], 0.5*σh)
}

func Test_concrete03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("concrete03. compressive envelope: peak and residual")

	// at eps0 the stress is the compressive strength
	mdl, s := newConcrete(tst)
	err := mdl.Update(s, []float64{mdl.Eps0, 0, 0})
	if err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}
	chk.Float64(tst, "σxx(peak)", 1e-6*(-mdl.Fc), s.Sig[0], mdl.Fc)

	// past epsu the stress plateaus at the residual strength
	mdl2, s2 := newConcrete(tst)
	err = mdl2.Update(s2, []float64{-0.02, 0, 0})
	if err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}
	chk.Float64(tst, "σxx(residual)", 1e-6*(-mdl2.Fcu), s2.Sig[0], mdl2.Fcu)
	if !(s2.Crushed[0] || s2.Crushed[1]) {
		tst.Errorf("crushed flag must be set past epsu")
		return
	}

	// tangent vanishes on the plateau
	D := utl.Alloc(3, 3)
	err = mdl2.CalcD(D, s2)
	if err != nil {
		tst.Errorf("CalcD failed:\n%v", err)
		return
	}
	chk.Float64(tst, "D(residual)", 1e-6*mdl2.E0, D[0][0], 0)
}
