// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/guptarohit/asciigraph"
)

// Ascii renders the force history of a curve as a terminal chart
func (o *Curve) Ascii(width, height int) string {
	if len(o.Force) < 2 {
		return ""
	}
	return asciigraph.Plot(o.Force,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(o.ForceLabel+" per step"),
	)
}
