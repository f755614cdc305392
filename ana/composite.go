// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used to verify the engine
package ana

// CompositeRigidity computes the closed-form membrane, coupling and bending
// rigidities of a stack of linear elastic layers, integrated with the
// midpoint rule about the stack mid-surface (the same rule the layered
// section uses, so comparisons are exact)
type CompositeRigidity struct {
	E []float64 // layer moduli, bottom to top
	T []float64 // layer thicknesses, bottom to top
}

// Calc returns EA = ΣEt, ES = ΣEtz and EI = ΣEtz²
func (o CompositeRigidity) Calc() (EA, ES, EI float64) {
	th := 0.0
	for _, t := range o.T {
		th += t
	}
	z := -th / 2.0
	for i, t := range o.T {
		zm := z + t/2.0
		EA += o.E[i] * t
		ES += o.E[i] * t * zm
		EI += o.E[i] * t * zm * zm
		z += t
	}
	return
}
