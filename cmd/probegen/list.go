// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list the probes known to the library",
	Long: `list prints the manufacturer/probe keys the configured library can
enumerate. A local library lists its full tree; the online library has
no index, so only cached probes appear.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := newLibrary().List(cmd.Context())
		if err != nil {
			return err
		}
		for _, ky := range keys {
			cmd.Println(ky.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
