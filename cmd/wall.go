// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/rcwall/ele"
	"github.com/cpmech/rcwall/fem"
	"github.com/cpmech/rcwall/inp"
	"github.com/cpmech/rcwall/msolid"
	"github.com/cpmech/rcwall/out"
)

// wall geometry and loading
const (
	ControlNode = 52     // top-centre vertex (x=0.5, y=2.0)
	GravityLoad = -320e3 // vertical load at the control node [N]
	TrussArea   = 223.53e-6
)

// grid coordinates: 5 columns x 11 rows
var (
	wallX = []float64{0, 0.2, 0.5, 0.8, 1.0}
	wallY = utl.LinSpace(0, 2.0, 11)
)

// newSec builds a section definition with the nominal thickness set to the
// exact sum of the layer thicknesses
func newSec(layers ...*inp.SecLayer) *inp.SecData {
	th := 0.0
	for _, l := range layers {
		th += l.Th
	}
	return &inp.SecData{Th: th, Layers: layers}
}

// BuildWallModel assembles the shear wall: a 1m x 2m x 0.125m wall meshed
// with 40 layered shells (confined boundary columns, unconfined interior)
// plus 40 slender truss columns carrying the P-Δ effect. The base row is
// fully fixed.
func BuildWallModel() *inp.Model {

	// materials
	mats := msolid.MatDb{
		"concrete": {Model: "concrete", Prms: dbf.Params{
			&dbf.P{N: "fc", V: 20.7e6},
			&dbf.P{N: "ft", V: 2.07e6},
			&dbf.P{N: "fcu", V: 4.14e6},
			&dbf.P{N: "eps0", V: 0.002},
			&dbf.P{N: "epsu", V: 0.01},
			&dbf.P{N: "epst", V: 0.001},
			&dbf.P{N: "nu", V: 0.3},
		}},
		"conc-plate": {Model: "plate", Sub: "concrete", Prms: dbf.Params{
			&dbf.P{N: "Gop", V: 1.25e10},
		}},
		"steel-boundary": {Model: "steel", Prms: dbf.Params{
			&dbf.P{N: "fy", V: 379e6},
			&dbf.P{N: "E", V: 202.7e9},
			&dbf.P{N: "b", V: 0.01},
			&dbf.P{N: "R0", V: 18.5},
			&dbf.P{N: "cR1", V: 0.925},
			&dbf.P{N: "cR2", V: 0.15},
		}},
		"steel-interior": {Model: "steel", Prms: dbf.Params{
			&dbf.P{N: "fy", V: 392e6},
			&dbf.P{N: "E", V: 200.6e9},
			&dbf.P{N: "b", V: 0.01},
			&dbf.P{N: "R0", V: 18.5},
			&dbf.P{N: "cR1", V: 0.925},
			&dbf.P{N: "cR2", V: 0.15},
		}},
		"rebar-v": {Model: "rebar", Sub: "steel-interior", Prms: dbf.Params{
			&dbf.P{N: "alp", V: 0},
		}},
		"rebar-h": {Model: "rebar", Sub: "steel-interior", Prms: dbf.Params{
			&dbf.P{N: "alp", V: 90},
		}},
	}

	// layered sections: confined boundary columns and unconfined interior
	secs := map[string]*inp.SecData{
		"confined": newSec(
			&inp.SecLayer{Mat: "conc-plate", Th: 0.0125},
			&inp.SecLayer{Mat: "rebar-v", Th: 0.0002403},
			&inp.SecLayer{Mat: "rebar-v", Th: 0.0003676},
			&inp.SecLayer{Mat: "conc-plate", Th: 0.024696},
			&inp.SecLayer{Mat: "conc-plate", Th: 0.024696},
			&inp.SecLayer{Mat: "conc-plate", Th: 0.024696},
			&inp.SecLayer{Mat: "conc-plate", Th: 0.024696},
			&inp.SecLayer{Mat: "rebar-v", Th: 0.0003676},
			&inp.SecLayer{Mat: "rebar-v", Th: 0.0002403},
			&inp.SecLayer{Mat: "conc-plate", Th: 0.0125},
		),
		"unconfined": newSec(
			&inp.SecLayer{Mat: "conc-plate", Th: 0.0125},
			&inp.SecLayer{Mat: "rebar-v", Th: 0.0002403},
			&inp.SecLayer{Mat: "rebar-h", Th: 0.0002356},
			&inp.SecLayer{Mat: "conc-plate", Th: 0.0495241},
			&inp.SecLayer{Mat: "conc-plate", Th: 0.0495241},
			&inp.SecLayer{Mat: "rebar-h", Th: 0.0002356},
			&inp.SecLayer{Mat: "rebar-v", Th: 0.0002403},
			&inp.SecLayer{Mat: "conc-plate", Th: 0.0125},
		),
	}

	// vertices: base row fully fixed
	ncol := len(wallX)
	nrow := len(wallY)
	msh := &inp.Mesh{Ndim: 2}
	for j := 0; j < nrow; j++ {
		for i := 0; i < ncol; i++ {
			v := &inp.Vert{Id: j*ncol + i, C: []float64{wallX[i], wallY[j]}}
			if j == 0 {
				v.Fix = []string{"ux", "uy", "uz", "rx", "ry", "rz"}
			}
			msh.Verts = append(msh.Verts, v)
		}
	}

	// shells: boundary columns are confined, interior is unconfined
	cid := 0
	for j := 0; j < nrow-1; j++ {
		for i := 0; i < ncol-1; i++ {
			sec := "unconfined"
			if i == 0 || i == ncol-2 {
				sec = "confined"
			}
			msh.Cells = append(msh.Cells, &inp.Cell{
				Id:   cid,
				Type: "qua4",
				Verts: []int{
					j*ncol + i, j*ncol + i + 1,
					(j+1)*ncol + i + 1, (j+1)*ncol + i,
				},
				Sec: sec,
			})
			cid++
		}
	}

	// slender truss columns at x = 0, 0.2, 0.8 and 1.0
	for _, i := range []int{0, 1, 3, 4} {
		for j := 0; j < nrow-1; j++ {
			msh.Cells = append(msh.Cells, &inp.Cell{
				Id:    cid,
				Type:  "lin2",
				Verts: []int{j*ncol + i, (j+1)*ncol + i},
				Mat:   "steel-boundary",
				A:     TrussArea,
			})
			cid++
		}
	}

	mdl := &inp.Model{Msh: msh, Mats: mats, Secs: secs}
	mdl.Solver.SetDefault()
	mdl.Solver.ShowR = showRes
	return mdl
}

// runGravity ramps the vertical load at the control node in ten equal
// increments and then makes it permanent, so the lateral stages start from
// the gravity stress state with λ = 0
func runGravity(dom *fem.Domain, sol *fem.Solver) (err error) {
	err = dom.SetRefLoad(ControlNode, "uy", GravityLoad)
	if err != nil {
		return
	}
	io.Pf("running gravity stage\n")
	status := sol.LoadControl(0.1, 10, nil)
	if status != fem.Converged {
		return chk.Err("gravity stage failed: %v", status)
	}
	dom.FreezeLoads()
	io.Pf("gravity stage complete. uy(top centre) = %g m\n", dom.U(ControlNode, "uy"))
	return
}

// baseShear sums the horizontal reactions of the base row
func baseShear(dom *fem.Domain) (V float64, err error) {
	fint, err := dom.Reactions()
	if err != nil {
		return
	}
	for i := 0; i < len(wallX); i++ {
		V += fint[i*ele.Ndof+0]
	}
	return
}

// record appends the current control-node displacement [mm] and base shear
// [kN] to the curve
func record(dom *fem.Domain, curve *out.Curve) (err error) {
	V, err := baseShear(dom)
	if err != nil {
		return
	}
	curve.Append(dom.U(ControlNode, "ux")*1000.0, -V/1000.0)
	return
}

// finish saves the curve table and renders the optional chart and figure
func finish(curve *out.Curve, fnkey, title string) (err error) {
	curve.Save(outDir, fnkey)
	if !noChart {
		io.Pf("%s\n", curve.Ascii(72, 12))
	}
	if pngFile != "" {
		err = curve.SavePng(title, pngFile)
		if err != nil {
			return
		}
		io.Pf("figure saved to %s\n", pngFile)
	}
	return
}
