// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"math"

	"github.com/spf13/cobra"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/rcwall/fem"
	"github.com/cpmech/rcwall/out"
)

var (
	maxDisp  float64 // target displacement of the control node
	dispIncr float64 // displacement increment per step
)

// pushoverSteps returns the number of increments required to reach the
// target displacement, rounding up so the last step attains or passes it
func pushoverSteps(maxDisp, incr float64) int {
	return int(math.Ceil(maxDisp / incr))
}

var pushoverCmd = &cobra.Command{
	Use:   "pushover",
	Short: "monotonic displacement-controlled lateral loading",
	RunE: func(cmd *cobra.Command, args []string) error {
		if dispIncr <= 0 || maxDisp <= 0 {
			return chk.Err("max-disp and incr must be positive")
		}
		dom, err := fem.NewDomain(BuildWallModel())
		if err != nil {
			return err
		}
		sol := fem.NewSolver(dom)
		err = runGravity(dom, sol)
		if err != nil {
			return err
		}

		// unit lateral reference load at the control node; the multiplier
		// found by displacement control is the applied lateral force
		err = dom.SetRefLoad(ControlNode, "ux", 1.0)
		if err != nil {
			return err
		}

		io.Pf("running pushover to %g m in %g m increments\n", maxDisp, dispIncr)
		curve := out.NewCurve("top displacement [mm]", "base shear [kN]")
		err = record(dom, curve)
		if err != nil {
			return err
		}
		nsteps := pushoverSteps(maxDisp, dispIncr)
		var rerr error
		status := sol.DispControl(ControlNode, "ux", dispIncr, nsteps, func(rep fem.StepReport) {
			if rerr == nil {
				rerr = record(dom, curve)
			}
		})
		if rerr != nil {
			return rerr
		}
		if status != fem.Converged {
			io.Pforan("pushover stopped early: %v after %d committed steps\n", status, curve.Npts()-1)
		}

		io.Pf("peak base shear = %.2f kN\n", curve.MaxAbsForce())
		return finish(curve, "pushover", "Pushover")
	},
}

func init() {
	pushoverCmd.Flags().Float64Var(&maxDisp, "max-disp", 0.020, "target top displacement [m]")
	pushoverCmd.Flags().Float64Var(&dispIncr, "incr", 0.00001, "displacement increment [m]")
	rootCmd.AddCommand(pushoverCmd)
}
