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

func Test_plate01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plate01. rebar layer projects the bar response")

	mdb := MatDb{
		"bars": {Model: "oned-elast", Prms: dbf.Params{&dbf.P{N: "E", V: 200e9}}},
		"lyrX": {Model: "rebar", Sub: "bars", Prms: dbf.Params{&dbf.P{N: "alp", V: 0}}},
		"lyrY": {Model: "rebar", Sub: "bars", Prms: dbf.Params{&dbf.P{N: "alp", V: 90}}},
	}

	mdlX, err := mdb.GetPlate("lyrX")
	if err != nil {
		tst.Errorf("GetPlate failed:\n%v", err)
		return
	}
	sX, err := mdlX.InitIntVars()
	if err != nil {
		tst.Errorf("InitIntVars failed:\n%v", err)
		return
	}

	ε := []float64{1e-3, -2e-3, 5e-4, 1e-4, 2e-4}
	err = mdlX.Update(sX, ε)
	if err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}
	chk.Float64(tst, "σxx", 1e-6, sX.Sig[0], 200e9*1e-3)
	chk.Float64(tst, "σyy", 1e-6, sX.Sig[1], 0)
	chk.Float64(tst, "σxz", 1e-15, sX.Sig[3], 0)

	// bars at 90 degrees only feel εyy
	mdlY, err := mdb.GetPlate("lyrY")
	if err != nil {
		tst.Errorf("GetPlate failed:\n%v", err)
		return
	}
	sY, err := mdlY.InitIntVars()
	if err != nil {
		tst.Errorf("InitIntVars failed:\n%v", err)
		return
	}
	err = mdlY.Update(sY, ε)
	if err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}
	chk.Float64(tst, "σyy(90°)", 1e-6, sY.Sig[1], 200e9*(-2e-3))
	chk.Float64(tst, "σxx(90°)", 1e-6, sY.Sig[0], 0)

	// rank-one tangent
	D := utl.Alloc(5, 5)
	err = mdlX.CalcD(D, sX)
	if err != nil {
		tst.Errorf("CalcD failed:\n%v", err)
		return
	}
	chk.Float64(tst, "D00", 1e-6, D[0][0], 200e9)
	chk.Float64(tst, "D11", 1e-15, D[1][1], 0)
	chk.Float64(tst, "D33", 1e-15, D[3][3], 0)
}

func Test_plate02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plate02. plane-stress wrapper adds out-of-plane shear")

	mdb := MatDb{
		"conc": {Model: "concrete", Prms: concreteParams()},
		"wall": {Model: "plate", Sub: "conc", Prms: dbf.Params{&dbf.P{N: "Gop", V: 1.25e10}}},
	}
	mdl, err := mdb.GetPlate("wall")
	if err != nil {
		tst.Errorf("GetPlate failed:\n%v", err)
		return
	}
	s, err := mdl.InitIntVars()
	if err != nil {
		tst.Errorf("InitIntVars failed:\n%v", err)
		return
	}

	ε := []float64{-1e-5, 0, 0, 3e-4, -2e-4}
	err = mdl.Update(s, ε)
	if err != nil {
		tst.Errorf("Update failed:\n%v", err)
		return
	}
	chk.Float64(tst, "σxz", 1e-6, s.Sig[3], 1.25e10*3e-4)
	chk.Float64(tst, "σyz", 1e-6, s.Sig[4], 1.25e10*(-2e-4))

	D := utl.Alloc(5, 5)
	err = mdl.CalcD(D, s)
	if err != nil {
		tst.Errorf("CalcD failed:\n%v", err)
		return
	}
	chk.Float64(tst, "D33", 1e-6, D[3][3], 1.25e10)
	chk.Float64(tst, "D44", 1e-6, D[4][4], 1.25e10)
	chk.Float64(tst, "D30", 1e-15, D[3][0], 0)
}
