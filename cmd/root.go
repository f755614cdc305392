// Copyright 2026 The Rcwall Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the command line interface: gravity, pushover and
// cyclic analyses of the reinforced-concrete shear wall model
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	outDir  string // directory for result tables and figures
	showRes bool   // print residuals during iterations
	noChart bool   // skip the terminal chart
	pngFile string // also save the curve as a PNG figure
)

var rootCmd = &cobra.Command{
	Use:   "rcwall",
	Short: "nonlinear analysis of layered-shell RC shear walls",
	Long: `rcwall models a reinforced-concrete shear wall with layered shell
elements (concrete plus smeared rebar layers) and corotational truss columns,
and drives it through gravity, pushover or cyclic loading.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outDir, "outdir", "o", "results", "directory for result files")
	rootCmd.PersistentFlags().BoolVar(&showRes, "show-residuals", false, "print residuals during iterations")
	rootCmd.PersistentFlags().BoolVar(&noChart, "no-chart", false, "skip the terminal chart")
	rootCmd.PersistentFlags().StringVar(&pngFile, "png", "", "save the curve as a PNG figure with this filename")
}
