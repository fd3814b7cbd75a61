// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cogentcore/probegen/export"
	"github.com/cogentcore/probegen/library"
	"github.com/cogentcore/probegen/probe"
)

// Options configures artifact generation.
type Options struct {
	// Dir is the root output directory; each probe writes its three
	// artifacts under Dir/<manufacturer>/<name>/.
	Dir string

	// Thickness is the shank extrusion depth in micrometers.
	// Zero or negative means [DefaultThickness].
	Thickness float32

	// Type is the integer probe type id recorded in the metadata of a
	// single [Generate] run. Must be unique across the library.
	Type int

	// TypeBase is the first type id assigned by [Batch]; probes get
	// sequential ids in request order. Zero means 1.
	TypeBase int

	// Jobs is the maximum number of probes generated concurrently by
	// [Batch]. Zero or negative means one per CPU.
	Jobs int
}

// Result reports the outcome of one probe's generation run: either a
// whole-pipeline failure, or the three per-artifact outcomes. Every
// requested probe yields exactly one Result; probes are never
// silently skipped.
type Result struct {
	// Key identifies the probe.
	Key library.Key

	// Err is a whole-pipeline failure (lookup or configuration).
	// When set, no artifacts were attempted.
	Err error

	// Table, Mesh, and Metadata record the per-artifact outcomes;
	// nil means the artifact was written.
	Table, Mesh, Metadata error
}

// OK reports whether all three artifacts were written.
func (rs *Result) OK() bool {
	return rs.Err == nil && rs.Table == nil && rs.Mesh == nil && rs.Metadata == nil
}

func (rs *Result) String() string {
	if rs.Err != nil {
		return fmt.Sprintf("%s: failed: %s", rs.Key, rs.Err)
	}
	if rs.OK() {
		return fmt.Sprintf("%s: ok", rs.Key)
	}
	var failed []string
	for _, ar := range []struct {
		name string
		err  error
	}{{"table", rs.Table}, {"mesh", rs.Mesh}, {"metadata", rs.Metadata}} {
		if ar.err != nil {
			failed = append(failed, fmt.Sprintf("%s: %s", ar.name, ar.err))
		}
	}
	return fmt.Sprintf("%s: partial: %s", rs.Key, strings.Join(failed, "; "))
}

// Generate runs the full pipeline for one probe: normalize, export the
// coordinate table, build and export the mesh, and export the
// metadata. The three exports are independent: a geometry failure
// costs only the mesh artifact, and a failed write costs only its own
// artifact. A lookup or configuration failure aborts the whole probe
// with Result.Err set and nothing written.
func Generate(pb *probe.Probe, opts *Options) *Result {
	rs := &Result{Key: library.Key{Manufacturer: pb.Manufacturer, Name: pb.Name}}
	np, err := pb.Normalize()
	if err != nil {
		rs.Err = err
		return rs
	}
	dir := filepath.Join(opts.Dir, pb.Manufacturer, pb.Name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		werr := fmt.Errorf("%w: %s: %s", export.ErrWrite, dir, err)
		rs.Table, rs.Mesh, rs.Metadata = werr, werr, werr
		return rs
	}
	rs.Table = export.Table(np, filepath.Join(dir, pb.Name+".csv"))
	ms, err := BuildMesh(np, opts.Thickness)
	if err != nil {
		rs.Mesh = err
	} else {
		rs.Mesh = export.OBJ(ms, np.Name, filepath.Join(dir, pb.Name+".obj"))
	}
	rec := export.NewMetadataRecord(np, opts.Type)
	rs.Metadata = export.Metadata(rec, filepath.Join(dir, pb.Name+"_metadata.json"))
	return rs
}
