// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// SecLayer holds the definition of one layer within a layered section,
// ordered from the bottom face upwards
type SecLayer struct {
	Mat string  `json:"mat"` // material name
	Th  float64 `json:"th"`  // layer thickness
}

// SecData holds the definition of a layered shell section
type SecData struct {
	Th     float64     `json:"th"`     // nominal total thickness
	Layers []*SecLayer `json:"layers"` // layer stack, bottom to top
}

// Check verifies section consistency: positive thicknesses summing to the
// nominal total within tolerance
func (o *SecData) Check(name string) (err error) {
	if len(o.Layers) < 1 {
		return chk.Err("section %q must have at least one layer", name)
	}
	sum := 0.0
	for i, l := range o.Layers {
		if l.Th <= 0 {
			return chk.Err("section %q: layer %d has nonpositive thickness %g", name, i, l.Th)
		}
		sum += l.Th
	}
	if o.Th <= 0 {
		return chk.Err("section %q must have positive nominal thickness", name)
	}
	if math.Abs(sum-o.Th) > 1e-8*o.Th {
		return chk.Err("section %q: layer thicknesses sum to %g. nominal is %g", name, sum, o.Th)
	}
	return
}
