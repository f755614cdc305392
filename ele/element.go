// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the finite elements of the engine. Elements keep
// the path-dependent material history at their integration points in two
// copies (committed and trial); the driver promotes or reverts the trial
// copy via BackupIvs and RestoreIvs.
package ele

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rcwall/inp"
)

// Ndof is the number of degrees of freedom a vertex can carry
const Ndof = 6

// DofIndex maps dof keys to their slot in per-vertex arrays
var DofIndex = map[string]int{
	"ux": 0, "uy": 1, "uz": 2,
	"rx": 3, "ry": 4, "rz": 5,
}

// Solution holds the current solution of the driver, shared with elements
type Solution struct {
	T   float64   // current pseudo-time
	Y   []float64 // primary unknowns (one per free equation)
	Lam float64   // load multiplier λ
}

// Info holds the degrees of freedom an element needs, per local node
type Info struct {
	Dofs [][]string
}

// Elem defines what all elements must implement
type Elem interface {
	Id() int                                                  // returns the cell id
	SetEqs(eqs [][]int) error                                 // sets equation numbers, -1 for prescribed dofs
	SetIniIvs(sol *Solution) error                            // sets initial ivs for given values in sol
	AddToRhs(fb []float64, sol *Solution) error               // adds -R to fb
	AddToKb(Kb *mat.Dense, sol *Solution, firstIt bool) error // adds element K to global Kb
	Update(sol *Solution) error                               // performs (tangent) update
	BackupIvs() error                                         // copies trial => committed internal variables
	RestoreIvs() error                                        // copies committed => trial internal variables
	AddToFint(fint []float64, sol *Solution) error            // adds internal forces to the vertex-indexed fint
}

// infogetters and allocators hold all available element types
var (
	infogetters = make(map[string]func(cell *inp.Cell) *Info)
	allocators  = make(map[string]func(cell *inp.Cell, mdl *inp.Model) (Elem, error))
)

// GetInfo returns the dof requirements of an element type
func GetInfo(cell *inp.Cell) (*Info, error) {
	getinfo, ok := infogetters[cell.Type]
	if !ok {
		return nil, chk.Err("cannot find element type %q", cell.Type)
	}
	return getinfo(cell), nil
}

// New allocates an element for a cell
func New(cell *inp.Cell, mdl *inp.Model) (Elem, error) {
	alloc, ok := allocators[cell.Type]
	if !ok {
		return nil, chk.Err("cannot find element type %q", cell.Type)
	}
	return alloc(cell, mdl)
}

// Uval reads one primary unknown: prescribed dofs (eq < 0) are zero
func Uval(sol *Solution, eq int) float64 {
	if eq < 0 {
		return 0
	}
	return sol.Y[eq]
}
