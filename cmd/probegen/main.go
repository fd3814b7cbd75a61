// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command probegen generates visualization artifacts (coordinate CSV,
// OBJ mesh, metadata JSON) for neural probes from the probeinterface
// probe library.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/logx"
	"github.com/spf13/cobra"

	"github.com/cogentcore/probegen"
	"github.com/cogentcore/probegen/library"
)

// Config holds the generation settings, settable from flags or a TOML
// config file. Explicitly set flags win over the file.
type Config struct {
	// Out is the output root directory.
	Out string `toml:"out"`

	// Library is the probe library location: a local directory path
	// or an http(s) base URL. Empty means the canonical online library.
	Library string `toml:"library"`

	// Cache is the on-disk cache directory for fetched documents.
	Cache string `toml:"cache"`

	// Thickness is the shank extrusion depth in micrometers.
	Thickness float32 `toml:"thickness"`

	// Jobs is the maximum number of probes processed concurrently.
	Jobs int `toml:"jobs"`

	// TypeBase is the first metadata type id assigned.
	TypeBase int `toml:"type-base"`

	// Insecure disables TLS certificate verification for library
	// fetches. It is scoped to the fetch client only.
	Insecure bool `toml:"insecure"`

	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`
}

var (
	cfgFile string
	cfg     = Config{
		Out:       "probe_outputs",
		Thickness: probegen.DefaultThickness,
		TypeBase:  1,
	}
)

var rootCmd = &cobra.Command{
	Use:   "probegen",
	Short: "generate visualization artifacts for neural probes",
	Long: `probegen converts electrode-geometry descriptions from the
probeinterface probe library into three artifacts per probe: a
coordinate table (CSV), a 3D mesh of the shanks and contacts (OBJ),
and a metadata descriptor (JSON), laid out one directory per probe.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		if cfg.Verbose {
			logx.UserLevel = slog.LevelDebug
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "TOML config file")
	pf.StringVarP(&cfg.Out, "out", "o", cfg.Out, "output root directory")
	pf.StringVar(&cfg.Library, "library", "", "probe library: local directory or http(s) base URL")
	pf.StringVar(&cfg.Cache, "cache", "", "cache directory for fetched library documents")
	pf.Float32Var(&cfg.Thickness, "thickness", cfg.Thickness, "shank extrusion depth in micrometers")
	pf.IntVarP(&cfg.Jobs, "jobs", "j", 0, "max concurrent probes (0 = one per CPU)")
	pf.IntVar(&cfg.TypeBase, "type-base", cfg.TypeBase, "first metadata type id assigned")
	pf.BoolVar(&cfg.Insecure, "insecure", false, "skip TLS certificate verification for library fetches")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug logging")
}

// loadConfig merges the TOML config file, if given, under any flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command) error {
	if cfgFile == "" {
		return nil
	}
	fc := cfg
	if err := tomlx.Open(&fc, cfgFile); err != nil {
		return err
	}
	fl := cmd.Flags()
	if !fl.Changed("out") {
		cfg.Out = fc.Out
	}
	if !fl.Changed("library") {
		cfg.Library = fc.Library
	}
	if !fl.Changed("cache") {
		cfg.Cache = fc.Cache
	}
	if !fl.Changed("thickness") {
		cfg.Thickness = fc.Thickness
	}
	if !fl.Changed("jobs") {
		cfg.Jobs = fc.Jobs
	}
	if !fl.Changed("type-base") {
		cfg.TypeBase = fc.TypeBase
	}
	if !fl.Changed("insecure") {
		cfg.Insecure = fc.Insecure
	}
	if !fl.Changed("verbose") {
		cfg.Verbose = fc.Verbose
	}
	return nil
}

// newLibrary returns the configured probe library: a local directory
// when the location is a path, otherwise an HTTP fetcher.
func newLibrary() library.Library {
	loc := cfg.Library
	if loc != "" && !strings.HasPrefix(loc, "http://") && !strings.HasPrefix(loc, "https://") {
		return library.NewDir(loc)
	}
	return library.NewFetcher(&library.FetcherOptions{
		BaseURL:            loc,
		CacheDir:           cfg.Cache,
		InsecureSkipVerify: cfg.Insecure,
	})
}

func options() *probegen.Options {
	return &probegen.Options{
		Dir:       cfg.Out,
		Thickness: cfg.Thickness,
		TypeBase:  cfg.TypeBase,
		Jobs:      cfg.Jobs,
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
