// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cogentcore/probegen"
	"github.com/cogentcore/probegen/library"
)

var generateAll bool

var generateCmd = &cobra.Command{
	Use:   "generate [manufacturer/probe]...",
	Short: "generate artifacts for the named probes",
	Long: `generate produces the coordinate table, mesh, and metadata for each
named probe, given as manufacturer/probe pairs, for example:

    probegen generate neuronexus/A1x32-Poly3-10mm-50-177

With --all, every probe the library can list is generated instead.
Probes are processed independently; one failed probe never stops the
rest, and each probe's outcome is reported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib := newLibrary()
		var keys []library.Key
		if generateAll {
			var err error
			keys, err = lib.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(keys) == 0 {
				return fmt.Errorf("library has no listable probes; name probes explicitly")
			}
		} else {
			if len(args) == 0 {
				return fmt.Errorf("name at least one manufacturer/probe, or use --all")
			}
			for _, arg := range args {
				man, name, ok := strings.Cut(arg, "/")
				if !ok || man == "" || name == "" {
					return fmt.Errorf("probe %q: want manufacturer/probe", arg)
				}
				keys = append(keys, library.Key{Manufacturer: man, Name: name})
			}
		}
		results := probegen.Batch(cmd.Context(), lib, keys, options())
		return report(cmd, results)
	},
}

// report prints one line per probe plus a summary, and returns an
// error when any probe failed so the process exits nonzero.
func report(cmd *cobra.Command, results []*probegen.Result) error {
	ok := 0
	for _, rs := range results {
		cmd.Println(rs.String())
		if rs.OK() {
			ok++
		}
	}
	cmd.Printf("%d/%d probes generated to %s\n", ok, len(results), cfg.Out)
	if ok < len(results) {
		return fmt.Errorf("%d of %d probes failed", len(results)-ok, len(results))
	}
	return nil
}

func init() {
	generateCmd.Flags().BoolVar(&generateAll, "all", false, "generate every probe the library lists")
	rootCmd.AddCommand(generateCmd)
}
