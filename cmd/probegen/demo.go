// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/cogentcore/probegen"
	"github.com/cogentcore/probegen/probe"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "generate artifacts for the built-in demo probes",
	Long: `demo generates the synthetic demo probes (a 32-channel linear
array, a 4x8 multi-column grid, and a 2-shank probe) through the
standard pipeline, with no library needed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		probes := []*probe.Probe{
			probe.NewLinear(32, 25),
			probe.NewMultiColumns(4, 8, 20, 25),
			probe.NewMultiShank(2, 16, 25, 250),
		}
		opts := options()
		var results []*probegen.Result
		for pi, pb := range probes {
			po := *opts
			po.Type = opts.TypeBase + pi
			results = append(results, probegen.Generate(pb, &po))
		}
		return report(cmd, results)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
