// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_shp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp01. qua4: partition of unity and Jacobian")

	o := Get("qua4")
	if o == nil {
		tst.Errorf("cannot get qua4 shape")
		return
	}

	// unit square scaled by a and b
	a, b := 0.3, 2.0
	x := [][]float64{{0, 0}, {a, 0}, {a, b}, {0, b}}

	ips, err := GetIps("qua4", 4)
	if err != nil {
		tst.Errorf("GetIps failed:\n%v", err)
		return
	}
	sumW := 0.0
	for idx, ip := range ips {
		err = o.CalcAtIp(x, ip, true)
		if err != nil {
			tst.Errorf("CalcAtIp failed:\n%v", err)
			return
		}
		sumS := o.S[0] + o.S[1] + o.S[2] + o.S[3]
		chk.Float64(tst, io.Sf("ΣS(ip%d)", idx), 1e-15, sumS, 1.0)
		chk.Float64(tst, io.Sf("J(ip%d)", idx), 1e-15, o.J, a*b/4.0)
		sumW += ip.W * o.J
	}
	chk.Float64(tst, "ΣwJ = area", 1e-14, sumW, a*b)

	// gradients reproduce a linear field u = 1 + 2x + 3y
	ip := ips[0]
	err = o.CalcAtIp(x, ip, true)
	if err != nil {
		tst.Errorf("CalcAtIp failed:\n%v", err)
		return
	}
	dudx, dudy := 0.0, 0.0
	for i := 0; i < 4; i++ {
		u := 1.0 + 2.0*x[i][0] + 3.0*x[i][1]
		dudx += o.G[i][0] * u
		dudy += o.G[i][1] * u
	}
	chk.Float64(tst, "du/dx", 1e-13, dudx, 2.0)
	chk.Float64(tst, "du/dy", 1e-13, dudy, 3.0)
}
