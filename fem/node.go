// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the global assembler and the nonlinear drivers:
// load control and displacement control with commit/rollback of the
// material history
package fem

import (
	"github.com/cpmech/rcwall/inp"
)

// Dof holds one degree of freedom of a node
type Dof struct {
	Key string // dof name; e.g. "ux"
	Eq  int    // equation number; -1 for prescribed (fixed) dofs
}

// Node holds a vertex and its active degrees of freedom
type Node struct {
	Vert *inp.Vert
	Dofs []*Dof
}

// GetDof returns the dof with the given key, or nil
func (o *Node) GetDof(key string) *Dof {
	for _, d := range o.Dofs {
		if d.Key == key {
			return d
		}
	}
	return nil
}

// GetEq returns the equation number of a dof key, or -1 if the dof is
// absent or prescribed
func (o *Node) GetEq(key string) int {
	d := o.GetDof(key)
	if d == nil {
		return -1
	}
	return d.Eq
}

// AddDofAndEq adds a dof (once) and numbers its equation sequentially.
// Prescribed dofs get Eq = -1. Returns the next free equation number.
func (o *Node) AddDofAndEq(key string, nextEq int) int {
	if o.GetDof(key) != nil {
		return nextEq
	}
	eq := -1
	fixed := false
	for _, k := range o.Vert.Fix {
		if k == key {
			fixed = true
			break
		}
	}
	if !fixed {
		eq = nextEq
		nextEq++
	}
	o.Dofs = append(o.Dofs, &Dof{Key: key, Eq: eq})
	return nextEq
}
