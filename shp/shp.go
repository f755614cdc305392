// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures and interpolation functions
// for the finite elements of this engine
package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Ipoint holds the natural coordinates and weight of an integration point
type Ipoint struct {
	R, S float64 // natural coordinates
	W    float64 // weight
}

// Shape holds the shape data of one geometry type and the scratch results
// of the last CalcAtIp call
type Shape struct {

	// constants
	Type   string // geometry type; e.g. "qua4"
	Nverts int    // number of vertices

	// scratch variables updated by CalcAtIp
	S    []float64   // shape functions
	DSdR [][]float64 // derivatives of S w.r.t natural coordinates [nverts][2]
	G    [][]float64 // cartesian gradients dS/dx [nverts][2]
	J    float64     // determinant of the Jacobian
}

// Get returns a new Shape structure for the given geometry type,
// or nil for unknown types
func Get(geoType string) *Shape {
	switch geoType {
	case "qua4":
		return &Shape{
			Type:   "qua4",
			Nverts: 4,
			S:      make([]float64, 4),
			DSdR:   utl.Alloc(4, 2),
			G:      utl.Alloc(4, 2),
		}
	}
	return nil
}

// natural coordinates of qua4 corners
var qua4rs = [4][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

// CalcAtIp computes the shape functions at an integration point and, with
// derivs=true, also the cartesian gradients and the Jacobian determinant
// for the element with nodal coordinates x [nverts][2]
func (o *Shape) CalcAtIp(x [][]float64, ip *Ipoint, derivs bool) (err error) {

	for i := 0; i < 4; i++ {
		r, s := qua4rs[i][0], qua4rs[i][1]
		o.S[i] = (1.0 + ip.R*r) * (1.0 + ip.S*s) / 4.0
		o.DSdR[i][0] = r * (1.0 + ip.S*s) / 4.0
		o.DSdR[i][1] = s * (1.0 + ip.R*r) / 4.0
	}
	if !derivs {
		return
	}

	// Jacobian dx/dr
	var jac [2][2]float64
	for i := 0; i < 4; i++ {
		for k := 0; k < 2; k++ {
			jac[k][0] += x[i][k] * o.DSdR[i][0]
			jac[k][1] += x[i][k] * o.DSdR[i][1]
		}
	}
	o.J = jac[0][0]*jac[1][1] - jac[0][1]*jac[1][0]
	if o.J <= 0 {
		return chk.Err("%s: nonpositive Jacobian determinant: %g", o.Type, o.J)
	}

	// cartesian gradients via the inverse Jacobian
	ai00 := jac[1][1] / o.J
	ai01 := -jac[0][1] / o.J
	ai10 := -jac[1][0] / o.J
	ai11 := jac[0][0] / o.J
	for i := 0; i < 4; i++ {
		o.G[i][0] = o.DSdR[i][0]*ai00 + o.DSdR[i][1]*ai10
		o.G[i][1] = o.DSdR[i][0]*ai01 + o.DSdR[i][1]*ai11
	}
	return
}

// GetIps returns the integration points of a geometry type
func GetIps(geoType string, nip int) (ips []*Ipoint, err error) {
	switch geoType {
	case "qua4":
		switch nip {
		case 1:
			return []*Ipoint{{0, 0, 4}}, nil
		case 4:
			q := 1.0 / math.Sqrt(3.0)
			return []*Ipoint{
				{-q, -q, 1},
				{q, -q, 1},
				{q, q, 1},
				{-q, q, 1},
			}, nil
		}
		return nil, chk.Err("qua4: nip=%d is unavailable", nip)
	}
	return nil, chk.Err("geometry type %q is unavailable", geoType)
}
