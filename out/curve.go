// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the recording and reporting of analysis results:
// load-displacement curves as text tables, terminal charts and PNG figures
package out

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Curve records a load-displacement history, one point per committed step
type Curve struct {
	DispLabel  string // label of the displacement column
	ForceLabel string // label of the force column
	Disp       []float64
	Force      []float64
}

// NewCurve allocates a curve with column labels
func NewCurve(dispLabel, forceLabel string) *Curve {
	return &Curve{DispLabel: dispLabel, ForceLabel: forceLabel}
}

// Append adds one point
func (o *Curve) Append(disp, force float64) {
	o.Disp = append(o.Disp, disp)
	o.Force = append(o.Force, force)
}

// Npts returns the number of recorded points
func (o *Curve) Npts() int {
	return len(o.Disp)
}

// Report writes a two-column text table
func (o *Curve) Report(buf *bytes.Buffer) {
	io.Ff(buf, "%23s %23s\n", o.DispLabel, o.ForceLabel)
	for i, d := range o.Disp {
		io.Ff(buf, "%23.15e %23.15e\n", d, o.Force[i])
	}
}

// Save writes the text table to dirout/fnkey.txt
func (o *Curve) Save(dirout, fnkey string) {
	var buf bytes.Buffer
	o.Report(&buf)
	io.WriteFileVD(dirout, fnkey+".txt", &buf)
}

// MaxAbsForce returns the largest force magnitude of the record
func (o *Curve) MaxAbsForce() (fmax float64) {
	for _, f := range o.Force {
		if f > fmax {
			fmax = f
		}
		if -f > fmax {
			fmax = -f
		}
	}
	return
}

// Check verifies the record consistency
func (o *Curve) Check() error {
	if len(o.Disp) != len(o.Force) {
		return chk.Err("curve has %d displacements but %d forces", len(o.Disp), len(o.Force))
	}
	return nil
}
