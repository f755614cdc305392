// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/rcwall/fem"
	"github.com/cpmech/rcwall/out"
)

var (
	histFile string  // displacement history file
	maxIncr  float64 // largest displacement increment per step
)

// readHistory parses a displacement history: whitespace-separated target
// displacements of the control node, one or more per line
func readHistory(fn string) (targets []float64, err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read history file %q:\n%v", fn, err)
	}
	for _, tok := range strings.Fields(string(b)) {
		targets = append(targets, io.Atof(tok))
	}
	if len(targets) == 0 {
		return nil, chk.Err("history file %q has no values", fn)
	}
	return
}

var cyclicCmd = &cobra.Command{
	Use:   "cyclic",
	Short: "displacement history (cyclic protocol) from an input file",
	RunE: func(cmd *cobra.Command, args []string) error {
		targets, err := readHistory(histFile)
		if err != nil {
			return err
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
		err = dom.SetRefLoad(ControlNode, "ux", 1.0)
		if err != nil {
			return err
		}

		io.Pf("running cyclic protocol: %d targets\n", len(targets))
		curve := out.NewCurve("top displacement [mm]", "base shear [kN]")
		err = record(dom, curve)
		if err != nil {
			return err
		}
		var rerr error
		status := sol.DispHistory(ControlNode, "ux", targets, maxIncr, func(rep fem.StepReport) {
			if rerr == nil {
				rerr = record(dom, curve)
			}
		})
		if rerr != nil {
			return rerr
		}
		if status != fem.Converged {
			io.Pforan("cyclic protocol stopped early: %v after %d committed steps\n", status, curve.Npts()-1)
		}

		io.Pf("peak base shear = %.2f kN\n", curve.MaxAbsForce())
		return finish(curve, "cyclic", "Cyclic")
	},
}

func init() {
	cyclicCmd.Flags().StringVar(&histFile, "input", "RCshearwall_Load_input.txt", "displacement history file")
	cyclicCmd.Flags().Float64Var(&maxIncr, "max-incr", 0.0001, "largest displacement increment [m]")
	rootCmd.AddCommand(cyclicCmd)
}
