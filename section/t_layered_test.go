// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/rcwall/ana"
	"github.com/cpmech/rcwall/inp"
	"github.com/cpmech/rcwall/msolid"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// elastic stack with ν=0 so the in-plane response is uniaxial and matches
// the closed-form composite rigidities exactly
func elasticStack() (msolid.MatDb, *inp.SecData) {
	mdb := msolid.MatDb{
		"stiff": {Model: "elast-plate", Prms: dbf.Params{&dbf.P{N: "E", V: 200e9}, &dbf.P{N: "nu", V: 0}}},
		"soft":  {Model: "elast-plate", Prms: dbf.Params{&dbf.P{N: "E", V: 100e9}, &dbf.P{N: "nu", V: 0}}},
	}
	def := &inp.SecData{
		Th: 0.03,
		Layers: []*inp.SecLayer{
			{Mat: "stiff", Th: 0.01},
			{Mat: "soft", Th: 0.02},
		},
	}
	return mdb, def
}

func Test_layered01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("layered01. elastic stack matches composite rigidities")

	mdb, def := elasticStack()
	sec, err := New("wall", def, mdb)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	s, err := sec.InitIntVars()
	if err != nil {
		tst.Errorf("InitIntVars failed:\n%v", err)
		return
	}

	EA, ES, EI := ana.CompositeRigidity{
		E: []float64{200e9, 100e9},
		T: []float64{0.01, 0.02},
	}.Calc()

	// tangent blocks
	D := utl.Alloc(8, 8)
	err = sec.CalcD(D, s)
	if err != nil {
		tst.Errorf("CalcD failed:\n%v", err)
		return
	}
	chk.Float64(tst, "EA", 1e-6*EA, D[0][0], EA)
	chk.Float64(tst, "ES", 1e-6*EA, D[0][3], ES)
	chk.Float64(tst, "ES sym", 1e-6*EA, D[3][0], ES)
	chk.Float64(tst, "EI", 1e-6*EI, D[3][3], EI)

	// shear block: ΣGt with G = E/2 for ν=0
	GA := 0.5 * (200e9*0.01 + 100e9*0.02)
	chk.Float64(tst, "GA", 1e-6*GA, D[6][6], GA)

	// resultants of a combined stretch + bend state
	εxx, κxx := 1e-4, 2e-3
	ε := []float64{εxx, 0, 0, κxx, 0, 0, 0, 0}
	err = sec.Update(s, ε)
	if err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}
	rst := make([]float64, 8)
	sec.Resultants(s, rst)
	chk.Float64(tst, "Nxx", 1e-6*EA*εxx, rst[0], EA*εxx+ES*κxx)
	chk.Float64(tst, "Mxx", 1e-6*EI*κxx, rst[3], ES*εxx+EI*κxx)
	chk.Float64(tst, "Nyy", 1e-8, rst[1], 0)
}

func Test_layered02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("layered02. symmetric stack has no stretch-bend coupling")

	mdb := msolid.MatDb{
		"lyr": {Model: "elast-plate", Prms: dbf.Params{&dbf.P{N: "E", V: 30e9}, &dbf.P{N: "nu", V: 0}}},
	}
	def := &inp.SecData{
		Th: 0.04,
		Layers: []*inp.SecLayer{
			{Mat: "lyr", Th: 0.02},
			{Mat: "lyr", Th: 0.02},
		},
	}
	sec, err := New("sym", def, mdb)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	s, err := sec.InitIntVars()
	if err != nil {
		tst.Errorf("InitIntVars failed:\n%v", err)
		return
	}

	D := utl.Alloc(8, 8)
	err = sec.CalcD(D, s)
	if err != nil {
		tst.Errorf("CalcD failed:\n%v", err)
		return
	}
	chk.Float64(tst, "EA", 1e-3, D[0][0], 30e9*0.04)
	chk.Float64(tst, "ES", 1e-3, D[0][3], 0)

	// pure stretch produces no moment
	err = sec.Update(s, []float64{1e-4, 0, 0, 0, 0, 0, 0, 0})
	if err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}
	rst := make([]float64, 8)
	sec.Resultants(s, rst)
	chk.Float64(tst, "Nxx", 1e-6, rst[0], 30e9*0.04*1e-4)
	chk.Float64(tst, "Mxx", 1e-8, rst[3], 0)
}

func Test_layered03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("layered03. definition errors are caught")

	mdb, def := elasticStack()
	def.Layers[0].Th = 0.005 // sum no longer matches nominal
	_, err := New("bad", def, mdb)
	if err == nil {
		tst.Errorf("New must fail when layer thicknesses do not sum to the nominal")
		return
	}
}
