// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/rcwall/ele"
	"github.com/cpmech/rcwall/fem"
)

var gravityCmd = &cobra.Command{
	Use:   "gravity",
	Short: "apply the vertical load and report the gravity state",
	RunE: func(cmd *cobra.Command, args []string) error {
		dom, err := fem.NewDomain(BuildWallModel())
		if err != nil {
			return err
		}
		sol := fem.NewSolver(dom)
		err = runGravity(dom, sol)
		if err != nil {
			return err
		}

		// vertical base reactions must balance the applied load
		fint, err := dom.Reactions()
		if err != nil {
			return err
		}
		R := 0.0
		for i := 0; i < len(wallX); i++ {
			R += fint[i*ele.Ndof+1]
		}
		io.Pf("total vertical base reaction = %.3f kN\n", R/1000.0)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gravityCmd)
}
