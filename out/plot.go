// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SavePng plots the load-displacement curve and saves it as a PNG file
func (o *Curve) SavePng(title, fnpath string) (err error) {
	err = o.Check()
	if err != nil {
		return
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = o.DispLabel
	p.Y.Label.Text = o.ForceLabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(o.Disp))
	for i, d := range o.Disp {
		pts[i].X = d
		pts[i].Y = o.Force[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return chk.Err("cannot build curve line:\n%v", err)
	}
	p.Add(line)

	err = p.Save(6*vg.Inch, 4*vg.Inch, fnpath)
	if err != nil {
		return chk.Err("cannot save figure %q:\n%v", fnpath, err)
	}
	return
}
