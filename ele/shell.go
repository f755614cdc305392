// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/rcwall/inp"
	"github.com/cpmech/rcwall/section"
	"github.com/cpmech/rcwall/shp"
)

// Shell implements a 4-node flat shell with a layered section: membrane and
// Mindlin bending with 2x2 integration and assumed-constant transverse shear
// (the shear rows of B are evaluated at the centroid to avoid locking).
// A small drilling stiffness proportional to the virgin in-plane shear
// rigidity keeps the normal rotations well-posed.
type Shell struct {

	// basic data
	id   int
	cell *inp.Cell
	x    [][]float64 // nodal coordinates [4][2]
	sec  *section.Layered
	eqs  [][]int // equation numbers [4][6], -1 for prescribed dofs

	// integration
	ips []*shp.Ipoint
	b   [][][]float64 // strain-displacement matrix per ip [8][24]
	wj  []float64     // weight times Jacobian per ip
	vol float64       // Σ wJ
	kdr float64       // drilling stiffness density

	// internal variables
	states    []*section.State
	statesBkp []*section.State

	// scratch
	u   []float64   // local primary unknowns [24]
	ε   []float64   // generalised strains [8]
	rst []float64   // generalised resultants [8]
	d   [][]float64 // section tangent [8][8]
	fi  []float64   // local internal forces [24]
}

// register element
func init() {
	infogetters["qua4"] = func(cell *inp.Cell) *Info {
		dofs := make([][]string, 4)
		for i := 0; i < 4; i++ {
			dofs[i] = []string{"ux", "uy", "uz", "rx", "ry", "rz"}
		}
		return &Info{Dofs: dofs}
	}
	allocators["qua4"] = func(cell *inp.Cell, mdl *inp.Model) (Elem, error) {
		return newShell(cell, mdl)
	}
}

func newShell(cell *inp.Cell, mdl *inp.Model) (o *Shell, err error) {

	secdat, ok := mdl.Secs[cell.Sec]
	if !ok {
		return nil, chk.Err("cell %d: cannot find section %q", cell.Id, cell.Sec)
	}
	sec, err := section.New(cell.Sec, secdat, mdl.Mats)
	if err != nil {
		return nil, chk.Err("cell %d:\n%v", cell.Id, err)
	}

	o = &Shell{
		id:   cell.Id,
		cell: cell,
		x:    utl.Alloc(4, 2),
		sec:  sec,
		u:    make([]float64, 24),
		ε:    make([]float64, 8),
		rst:  make([]float64, 8),
		d:    utl.Alloc(8, 8),
		fi:   make([]float64, 24),
	}
	for i, n := range cell.Verts {
		o.x[i][0] = mdl.Msh.Verts[n].C[0]
		o.x[i][1] = mdl.Msh.Verts[n].C[1]
	}

	// B matrices: 2x2 points with centroid shear rows
	o.ips, err = shp.GetIps("qua4", 4)
	if err != nil {
		return nil, err
	}
	sh := shp.Get("qua4")
	ctr := &shp.Ipoint{R: 0, S: 0, W: 4}
	err = sh.CalcAtIp(o.x, ctr, true)
	if err != nil {
		return nil, chk.Err("cell %d:\n%v", cell.Id, err)
	}
	var sc [4]float64
	gc := utl.Alloc(4, 2)
	for i := 0; i < 4; i++ {
		sc[i] = sh.S[i]
		gc[i][0], gc[i][1] = sh.G[i][0], sh.G[i][1]
	}
	o.b = make([][][]float64, len(o.ips))
	o.wj = make([]float64, len(o.ips))
	for idx, ip := range o.ips {
		err = sh.CalcAtIp(o.x, ip, true)
		if err != nil {
			return nil, chk.Err("cell %d:\n%v", cell.Id, err)
		}
		o.wj[idx] = ip.W * sh.J
		o.vol += o.wj[idx]
		B := utl.Alloc(8, 24)
		for i := 0; i < 4; i++ {
			c := i * Ndof
			// membrane
			B[0][c+0] = sh.G[i][0]
			B[1][c+1] = sh.G[i][1]
			B[2][c+0] = sh.G[i][1]
			B[2][c+1] = sh.G[i][0]
			// bending curvatures
			B[3][c+4] = sh.G[i][0]
			B[4][c+3] = -sh.G[i][1]
			B[5][c+3] = -sh.G[i][0]
			B[5][c+4] = sh.G[i][1]
			// transverse shear, centroid values
			B[6][c+2] = gc[i][0]
			B[6][c+4] = sc[i]
			B[7][c+2] = gc[i][1]
			B[7][c+3] = -sc[i]
		}
		o.b[idx] = B
	}
	return
}

// Id returns the cell id
func (o *Shell) Id() int { return o.id }

// SetEqs sets equation numbers
func (o *Shell) SetEqs(eqs [][]int) error {
	o.eqs = eqs
	return nil
}

// SetIniIvs allocates the layer states and the drilling stiffness
func (o *Shell) SetIniIvs(sol *Solution) (err error) {
	nip := len(o.ips)
	o.states = make([]*section.State, nip)
	o.statesBkp = make([]*section.State, nip)
	for idx := 0; idx < nip; idx++ {
		o.states[idx], err = o.sec.InitIntVars()
		if err != nil {
			return
		}
		o.statesBkp[idx] = o.states[idx].GetCopy()
	}

	// drilling stiffness from the virgin in-plane shear rigidity
	err = o.sec.CalcD(o.d, o.states[0])
	if err != nil {
		return
	}
	o.kdr = 1e-3 * o.d[2][2]
	return
}

// gather reads the local primary unknowns from the solution
func (o *Shell) gather(sol *Solution) {
	for i := 0; i < 4; i++ {
		for j := 0; j < Ndof; j++ {
			o.u[i*Ndof+j] = Uval(sol, o.eqs[i][j])
		}
	}
}

// calcFint computes the local internal force vector from the current states
func (o *Shell) calcFint(sol *Solution) {
	o.gather(sol)
	for c := 0; c < 24; c++ {
		o.fi[c] = 0
	}
	for idx := range o.ips {
		o.sec.Resultants(o.states[idx], o.rst)
		B := o.b[idx]
		for c := 0; c < 24; c++ {
			s := 0.0
			for r := 0; r < 8; r++ {
				s += B[r][c] * o.rst[r]
			}
			o.fi[c] += s * o.wj[idx]
		}
	}
	kdr := o.kdr * o.vol / 4.0
	for i := 0; i < 4; i++ {
		c := i*Ndof + 5
		o.fi[c] += kdr * o.u[c]
	}
}

// AddToRhs adds -R to fb
func (o *Shell) AddToRhs(fb []float64, sol *Solution) (err error) {
	o.calcFint(sol)
	for i := 0; i < 4; i++ {
		for j := 0; j < Ndof; j++ {
			if eq := o.eqs[i][j]; eq >= 0 {
				fb[eq] -= o.fi[i*Ndof+j]
			}
		}
	}
	return
}

// AddToKb adds the element stiffness to the global matrix
func (o *Shell) AddToKb(Kb *mat.Dense, sol *Solution, firstIt bool) (err error) {
	for idx := range o.ips {
		err = o.sec.CalcD(o.d, o.states[idx])
		if err != nil {
			return
		}
		B := o.b[idx]
		w := o.wj[idx]
		for i := 0; i < 4; i++ {
			for j := 0; j < Ndof; j++ {
				I := o.eqs[i][j]
				if I < 0 {
					continue
				}
				a := i*Ndof + j
				for k := 0; k < 4; k++ {
					for l := 0; l < Ndof; l++ {
						J := o.eqs[k][l]
						if J < 0 {
							continue
						}
						c := k*Ndof + l
						v := 0.0
						for r := 0; r < 8; r++ {
							if B[r][a] == 0 {
								continue
							}
							for q := 0; q < 8; q++ {
								v += B[r][a] * o.d[r][q] * B[q][c]
							}
						}
						Kb.Set(I, J, Kb.At(I, J)+v*w)
					}
				}
			}
		}
	}

	// drilling
	kdr := o.kdr * o.vol / 4.0
	for i := 0; i < 4; i++ {
		if eq := o.eqs[i][5]; eq >= 0 {
			Kb.Set(eq, eq, Kb.At(eq, eq)+kdr)
		}
	}
	return
}

// Update computes the trial states for the current primary unknowns
func (o *Shell) Update(sol *Solution) (err error) {
	o.gather(sol)
	for idx := range o.ips {
		B := o.b[idx]
		for r := 0; r < 8; r++ {
			o.ε[r] = 0
			for c := 0; c < 24; c++ {
				o.ε[r] += B[r][c] * o.u[c]
			}
		}
		err = o.sec.Update(o.states[idx], o.ε)
		if err != nil {
			return chk.Err("cell %d:\n%v", o.id, err)
		}
	}
	return
}

// BackupIvs copies trial => committed internal variables
func (o *Shell) BackupIvs() error {
	for idx, s := range o.statesBkp {
		s.Set(o.states[idx])
	}
	return nil
}

// RestoreIvs copies committed => trial internal variables
func (o *Shell) RestoreIvs() error {
	for idx, s := range o.states {
		s.Set(o.statesBkp[idx])
	}
	return nil
}

// AddToFint adds the internal forces to the vertex-indexed global vector
func (o *Shell) AddToFint(fint []float64, sol *Solution) (err error) {
	o.calcFint(sol)
	for i, n := range o.cell.Verts {
		for j := 0; j < Ndof; j++ {
			fint[n*Ndof+j] += o.fi[i*Ndof+j]
		}
	}
	return
}
