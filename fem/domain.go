// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rcwall/ele"
	"github.com/cpmech/rcwall/inp"
)

// Domain holds the nodes, elements and global vectors/matrices of one
// simulation. External loads split into a permanent part Fext and a
// reference pattern Fref scaled by the load multiplier λ.
type Domain struct {

	// data
	Model *inp.Model
	Nodes []*Node
	Elems []ele.Elem

	// degrees of freedom
	Ny int // total number of free equations

	// solution and global arrays
	Sol  *ele.Solution
	Kb   *mat.Dense
	Fb   []float64 // residual vector
	Fext []float64 // permanent external loads
	Fref []float64 // reference load pattern, scaled by λ

	// scratch
	fint []float64 // vertex-indexed internal forces (reactions)
	lu   mat.LU
}

// NewDomain builds a domain from the input model: it numbers the equations,
// allocates the elements and initialises the internal variables
func NewDomain(model *inp.Model) (o *Domain, err error) {

	err = model.Check()
	if err != nil {
		return
	}
	o = &Domain{Model: model}

	// nodes
	o.Nodes = make([]*Node, len(model.Msh.Verts))
	for i, v := range model.Msh.Verts {
		o.Nodes[i] = &Node{Vert: v}
	}

	// equation numbering follows the cell order
	nextEq := 0
	infos := make([]*ele.Info, len(model.Msh.Cells))
	for i, c := range model.Msh.Cells {
		infos[i], err = ele.GetInfo(c)
		if err != nil {
			return nil, chk.Err("cell %d:\n%v", c.Id, err)
		}
		for loc, n := range c.Verts {
			for _, key := range infos[i].Dofs[loc] {
				nextEq = o.Nodes[n].AddDofAndEq(key, nextEq)
			}
		}
	}
	o.Ny = nextEq
	if o.Ny < 1 {
		return nil, chk.Err("model has no free degrees of freedom")
	}

	// elements
	o.Elems = make([]ele.Elem, len(model.Msh.Cells))
	for i, c := range model.Msh.Cells {
		o.Elems[i], err = ele.New(c, model)
		if err != nil {
			return nil, err
		}
		eqs := make([][]int, len(c.Verts))
		for loc, n := range c.Verts {
			keys := infos[i].Dofs[loc]
			eqs[loc] = make([]int, len(keys))
			for j, key := range keys {
				eqs[loc][j] = o.Nodes[n].GetEq(key)
			}
		}
		err = o.Elems[i].SetEqs(eqs)
		if err != nil {
			return nil, chk.Err("cell %d:\n%v", c.Id, err)
		}
	}

	// solution and global arrays
	o.Sol = &ele.Solution{
		Y: make([]float64, o.Ny),
	}
	o.Kb = mat.NewDense(o.Ny, o.Ny, nil)
	o.Fb = make([]float64, o.Ny)
	o.Fext = make([]float64, o.Ny)
	o.Fref = make([]float64, o.Ny)
	o.fint = make([]float64, len(model.Msh.Verts)*ele.Ndof)

	// initial internal variables
	for _, e := range o.Elems {
		err = e.SetIniIvs(o.Sol)
		if err != nil {
			return nil, err
		}
	}
	return
}

// Eq returns the free equation number of a vertex dof, or an error for
// absent or prescribed dofs
func (o *Domain) Eq(vid int, key string) (int, error) {
	if vid < 0 || vid >= len(o.Nodes) {
		return -1, chk.Err("vertex %d does not exist", vid)
	}
	eq := o.Nodes[vid].GetEq(key)
	if eq < 0 {
		return -1, chk.Err("vertex %d has no free dof %q", vid, key)
	}
	return eq, nil
}

// SetRefLoad sets one entry of the reference load pattern (scaled by λ)
func (o *Domain) SetRefLoad(vid int, key string, value float64) (err error) {
	eq, err := o.Eq(vid, key)
	if err != nil {
		return
	}
	o.Fref[eq] = value
	return
}

// FreezeLoads makes the current scaled reference loads permanent and resets
// the multiplier, so a subsequent stage starts from λ = 0
func (o *Domain) FreezeLoads() {
	for i := range o.Fext {
		o.Fext[i] += o.Sol.Lam * o.Fref[i]
		o.Fref[i] = 0
	}
	o.Sol.Lam = 0
}

// assembleRhs computes Fb = Fext + λ·Fref - fint
func (o *Domain) assembleRhs() (err error) {
	for i := range o.Fb {
		o.Fb[i] = o.Fext[i] + o.Sol.Lam*o.Fref[i]
	}
	for _, e := range o.Elems {
		err = e.AddToRhs(o.Fb, o.Sol)
		if err != nil {
			return
		}
	}
	return
}

// assembleKb computes the global tangent matrix
func (o *Domain) assembleKb(firstIt bool) (err error) {
	o.Kb.Zero()
	for _, e := range o.Elems {
		err = e.AddToKb(o.Kb, o.Sol, firstIt)
		if err != nil {
			return
		}
	}
	return
}

// factorize decomposes the current tangent matrix
func (o *Domain) factorize() (err error) {
	o.lu.Factorize(o.Kb)
	if o.lu.Cond() > 1e16 {
		return chk.Err("tangent matrix is singular to working precision")
	}
	return
}

// solve computes x = Kb⁻¹ b with the current factorisation
func (o *Domain) solve(x, b []float64) (err error) {
	xv := mat.NewVecDense(len(x), x)
	bv := mat.NewVecDense(len(b), b)
	err = o.lu.SolveVecTo(xv, false, bv)
	if err != nil {
		return chk.Err("linear solver failed:\n%v", err)
	}
	return
}

// Reactions scatters the element internal forces into a vertex-indexed
// vector; entries at prescribed dofs are the support reactions
func (o *Domain) Reactions() (fint []float64, err error) {
	for i := range o.fint {
		o.fint[i] = 0
	}
	for _, e := range o.Elems {
		err = e.AddToFint(o.fint, o.Sol)
		if err != nil {
			return
		}
	}
	return o.fint, nil
}

// U returns the displacement of a vertex dof (zero for prescribed dofs)
func (o *Domain) U(vid int, key string) float64 {
	eq := o.Nodes[vid].GetEq(key)
	if eq < 0 {
		return 0
	}
	return o.Sol.Y[eq]
}

// backup saves the primary unknowns and multiplier for rollback
func (o *Domain) backup(y []float64) float64 {
	copy(y, o.Sol.Y)
	return o.Sol.Lam
}

// restore brings the primary unknowns, multiplier and internal variables
// back to the last committed configuration
func (o *Domain) restore(y []float64, lam float64) (err error) {
	copy(o.Sol.Y, y)
	o.Sol.Lam = lam
	for _, e := range o.Elems {
		err = e.RestoreIvs()
		if err != nil {
			return
		}
	}
	return
}

// commit promotes the trial internal variables and closes the step
func (o *Domain) commit() (err error) {
	for _, e := range o.Elems {
		err = e.BackupIvs()
		if err != nil {
			return
		}
	}
	return
}
