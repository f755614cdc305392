// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/rcwall/inp"
	"github.com/cpmech/rcwall/msolid"
)

// Truss implements a 2-node corotational truss with a uniaxial material.
// The axial strain is measured on the deformed chord, so the geometric
// stiffness from the axial force is included in the tangent.
type Truss struct {

	// basic data
	id   int
	cell *inp.Cell
	x    [][]float64 // nodal coordinates [2][2]
	mdl  msolid.OnedModel
	area float64
	l0   float64 // reference length
	eqs  [][]int // equation numbers [2][2]

	// internal variables
	state    *msolid.OnedState
	stateBkp *msolid.OnedState

	// scratch
	u  [4]float64 // local primary unknowns
	fi [4]float64 // local internal forces
	n  [2]float64 // current unit direction
	l  float64    // current length
}

// register element
func init() {
	infogetters["lin2"] = func(cell *inp.Cell) *Info {
		return &Info{Dofs: [][]string{{"ux", "uy"}, {"ux", "uy"}}}
	}
	allocators["lin2"] = func(cell *inp.Cell, mdl *inp.Model) (Elem, error) {
		return newTruss(cell, mdl)
	}
}

func newTruss(cell *inp.Cell, mdl *inp.Model) (o *Truss, err error) {
	m, err := mdl.Mats.GetOned(cell.Mat)
	if err != nil {
		return nil, chk.Err("cell %d:\n%v", cell.Id, err)
	}
	if cell.A <= 0 {
		return nil, chk.Err("cell %d: truss must have positive cross-sectional area", cell.Id)
	}
	o = &Truss{
		id:   cell.Id,
		cell: cell,
		x:    utl.Alloc(2, 2),
		mdl:  m,
		area: cell.A,
	}
	for i, n := range cell.Verts {
		o.x[i][0] = mdl.Msh.Verts[n].C[0]
		o.x[i][1] = mdl.Msh.Verts[n].C[1]
	}
	dx := o.x[1][0] - o.x[0][0]
	dy := o.x[1][1] - o.x[0][1]
	o.l0 = math.Sqrt(dx*dx + dy*dy)
	if o.l0 <= 0 {
		return nil, chk.Err("cell %d: truss has zero length", cell.Id)
	}
	return
}

// Id returns the cell id
func (o *Truss) Id() int { return o.id }

// SetEqs sets equation numbers
func (o *Truss) SetEqs(eqs [][]int) error {
	o.eqs = eqs
	return nil
}

// SetIniIvs allocates internal variables
func (o *Truss) SetIniIvs(sol *Solution) (err error) {
	o.state, err = o.mdl.InitIntVars()
	if err != nil {
		return
	}
	o.stateBkp = o.state.GetCopy()
	return
}

// geometry computes the current chord length and unit direction
func (o *Truss) geometry(sol *Solution) {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			o.u[i*2+j] = Uval(sol, o.eqs[i][j])
		}
	}
	dx := o.x[1][0] + o.u[2] - o.x[0][0] - o.u[0]
	dy := o.x[1][1] + o.u[3] - o.x[0][1] - o.u[1]
	o.l = math.Sqrt(dx*dx + dy*dy)
	o.n[0], o.n[1] = dx/o.l, dy/o.l
}

// calcFint computes the local internal force vector from the current state
func (o *Truss) calcFint(sol *Solution) {
	o.geometry(sol)
	N := o.area * o.state.Sig
	o.fi[0], o.fi[1] = -N*o.n[0], -N*o.n[1]
	o.fi[2], o.fi[3] = N*o.n[0], N*o.n[1]
}

// AddToRhs adds -R to fb
func (o *Truss) AddToRhs(fb []float64, sol *Solution) (err error) {
	o.calcFint(sol)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if eq := o.eqs[i][j]; eq >= 0 {
				fb[eq] -= o.fi[i*2+j]
			}
		}
	}
	return
}

// AddToKb adds the element stiffness (material plus geometric) to the
// global matrix
func (o *Truss) AddToKb(Kb *mat.Dense, sol *Solution, firstIt bool) (err error) {
	o.geometry(sol)
	Et := o.mdl.CalcD(o.state)
	km := Et * o.area / o.l0
	kg := o.area * o.state.Sig / o.l
	var k [2][2]float64
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			δ := 0.0
			if a == b {
				δ = 1.0
			}
			k[a][b] = km*o.n[a]*o.n[b] + kg*(δ-o.n[a]*o.n[b])
		}
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			I := o.eqs[i][j]
			if I < 0 {
				continue
			}
			for p := 0; p < 2; p++ {
				for q := 0; q < 2; q++ {
					J := o.eqs[p][q]
					if J < 0 {
						continue
					}
					sgn := 1.0
					if i != p {
						sgn = -1.0
					}
					Kb.Set(I, J, Kb.At(I, J)+sgn*k[j][q])
				}
			}
		}
	}
	return
}

// Update computes the trial state for the current primary unknowns
func (o *Truss) Update(sol *Solution) (err error) {
	o.geometry(sol)
	ε := (o.l - o.l0) / o.l0
	err = o.mdl.Update(o.state, ε)
	if err != nil {
		return chk.Err("cell %d:\n%v", o.id, err)
	}
	return
}

// BackupIvs copies trial => committed internal variables
func (o *Truss) BackupIvs() error {
	o.stateBkp.Set(o.state)
	return nil
}

// RestoreIvs copies committed => trial internal variables
func (o *Truss) RestoreIvs() error {
	o.state.Set(o.stateBkp)
	return nil
}

// AddToFint adds the internal forces to the vertex-indexed global vector
func (o *Truss) AddToFint(fint []float64, sol *Solution) (err error) {
	o.calcFint(sol)
	for i, n := range o.cell.Verts {
		for j := 0; j < 2; j++ {
			fint[n*Ndof+j] += o.fi[i*2+j]
		}
	}
	return
}
