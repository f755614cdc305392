// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/rcwall/ele"
	"github.com/cpmech/rcwall/inp"
	"github.com/cpmech/rcwall/msolid"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// vertical elastic bar: node 0 fixed, node 1 on top, EA = 2e7, L = 2
func barModel() *inp.Model {
	mdl := &inp.Model{
		Msh: &inp.Mesh{
			Ndim: 2,
			Verts: []*inp.Vert{
				{Id: 0, C: []float64{0, 0}, Fix: []string{"ux", "uy"}},
				{Id: 1, C: []float64{0, 2}, Fix: []string{"ux"}},
			},
			Cells: []*inp.Cell{
				{Id: 0, Type: "lin2", Verts: []int{0, 1}, Mat: "bars", A: 1e-4},
			},
		},
		Mats: msolid.MatDb{
			"bars": {Model: "oned-elast", Prms: dbf.Params{&dbf.P{N: "E", V: 200e9}}},
		},
	}
	mdl.Solver.SetDefault()
	return mdl
}

func Test_fem01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fem01. load control: bar under axial load, δ = PL/EA")

	dom, err := NewDomain(barModel())
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}
	chk.IntAssert(dom.Ny, 1)

	P := 1e4
	err = dom.SetRefLoad(1, "uy", -P)
	if err != nil {
		tst.Errorf("SetRefLoad failed:\n%v", err)
		return
	}

	nsteps := 0
	sol := NewSolver(dom)
	status := sol.LoadControl(0.5, 2, func(rep StepReport) { nsteps++ })
	if status != Converged {
		tst.Errorf("stage did not converge: %v", status)
		return
	}
	chk.IntAssert(nsteps, 2)

	// δ = PL/EA = 1e4·2/(200e9·1e-4) = 1e-3
	chk.Float64(tst, "uy(top)", 1e-9, dom.U(1, "uy"), -1e-3)

	// support reaction balances the load
	fint, err := dom.Reactions()
	if err != nil {
		tst.Errorf("Reactions failed:\n%v", err)
		return
	}
	chk.Float64(tst, "R(base)", 1e-6*P, fint[0*ele.Ndof+1], P)
}

func Test_fem02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fem02. displacement control: multiplier recovers EAδ/L")

	dom, err := NewDomain(barModel())
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}
	err = dom.SetRefLoad(1, "uy", 1.0)
	if err != nil {
		tst.Errorf("SetRefLoad failed:\n%v", err)
		return
	}

	nsteps := 0
	sol := NewSolver(dom)
	status := sol.DispControl(1, "uy", -1e-4, 5, func(rep StepReport) { nsteps++ })
	if status != Converged {
		tst.Errorf("stage did not converge: %v", status)
		return
	}
	chk.IntAssert(nsteps, 5)
	chk.Float64(tst, "uy(top)", 1e-12, dom.U(1, "uy"), -5e-4)

	// λ is the applied force: EAδ/L = 2e7·5e-4/2... = EA/L · δ
	chk.Float64(tst, "λ", 1e-3*5000.0, dom.Sol.Lam, -5000.0)
}

func Test_fem03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fem03. shell wall strip under compression")

	mdl := &inp.Model{
		Msh: &inp.Mesh{
			Ndim: 2,
			Verts: []*inp.Vert{
				{Id: 0, C: []float64{0, 0}, Fix: []string{"ux", "uy", "uz", "rx", "ry", "rz"}},
				{Id: 1, C: []float64{1, 0}, Fix: []string{"ux", "uy", "uz", "rx", "ry", "rz"}},
				{Id: 2, C: []float64{1, 1}},
				{Id: 3, C: []float64{0, 1}},
			},
			Cells: []*inp.Cell{
				{Id: 0, Type: "qua4", Verts: []int{0, 1, 2, 3}, Sec: "wall"},
			},
		},
		Mats: msolid.MatDb{
			"conc": {Model: "elast-plate", Prms: dbf.Params{&dbf.P{N: "E", V: 30e9}, &dbf.P{N: "nu", V: 0}}},
		},
		Secs: map[string]*inp.SecData{
			"wall": {Th: 0.1, Layers: []*inp.SecLayer{{Mat: "conc", Th: 0.1}}},
		},
	}
	mdl.Solver.SetDefault()

	dom, err := NewDomain(mdl)
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}

	// P/2 on each top node
	P := 3e4
	err = dom.SetRefLoad(2, "uy", -P/2.0)
	if err != nil {
		tst.Errorf("SetRefLoad failed:\n%v", err)
		return
	}
	err = dom.SetRefLoad(3, "uy", -P/2.0)
	if err != nil {
		tst.Errorf("SetRefLoad failed:\n%v", err)
		return
	}

	sol := NewSolver(dom)
	status := sol.LoadControl(1.0, 1, nil)
	if status != Converged {
		tst.Errorf("stage did not converge: %v", status)
		return
	}

	// uniform field: δ = PH/(E t W) = 3e4/(30e9·0.1) = 1e-5
	chk.Float64(tst, "uy(top left)", 1e-10, dom.U(3, "uy"), -1e-5)
	chk.Float64(tst, "uy(top right)", 1e-10, dom.U(2, "uy"), -1e-5)

	// base reactions balance the load
	fint, err := dom.Reactions()
	if err != nil {
		tst.Errorf("Reactions failed:\n%v", err)
		return
	}
	R := fint[0*ele.Ndof+1] + fint[1*ele.Ndof+1]
	chk.Float64(tst, "ΣR(base)", 1e-6*P, R, P)
}

func Test_fem04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fem04. displacement history returns to the origin")

	dom, err := NewDomain(barModel())
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}
	err = dom.SetRefLoad(1, "uy", 1.0)
	if err != nil {
		tst.Errorf("SetRefLoad failed:\n%v", err)
		return
	}

	sol := NewSolver(dom)
	status := sol.DispHistory(1, "uy", []float64{2e-4, -2e-4, 0}, 5e-5, nil)
	if status != Converged {
		tst.Errorf("stage did not converge: %v", status)
		return
	}

	// elastic bar: closed loop ends with no displacement and no force
	chk.Float64(tst, "uy(top)", 1e-12, dom.U(1, "uy"), 0)
	chk.Float64(tst, "λ", 1e-6, dom.Sol.Lam, 0)
}

func Test_fem05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fem05. relative residual check converges on its own")

	// disable the displacement norm check and the absolute residual
	// shortcut: only the residual relative to the step start can converge
	mdl := barModel()
	mdl.Solver.Itol = 1e-300
	mdl.Solver.FbMin = 1e-300

	dom, err := NewDomain(mdl)
	if err != nil {
		tst.Errorf("NewDomain failed:\n%v", err)
		return
	}
	P := 1e4
	err = dom.SetRefLoad(1, "uy", -P)
	if err != nil {
		tst.Errorf("SetRefLoad failed:\n%v", err)
		return
	}

	// linear problem: the first correction balances the system and the
	// second residual evaluation certifies it
	var its []int
	sol := NewSolver(dom)
	status := sol.LoadControl(1.0, 1, func(rep StepReport) { its = append(its, rep.Iterations) })
	if status != Converged {
		tst.Errorf("stage did not converge: %v", status)
		return
	}
	chk.Ints(tst, "iterations", its, []int{2})
	chk.Float64(tst, "uy(top)", 1e-9, dom.U(1, "uy"), -1e-3)
}
