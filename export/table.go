// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export serializes the three per-probe artifacts consumed by
// the visualization host: the coordinate table (CSV), the assembled
// mesh (Wavefront OBJ), and the metadata descriptor (JSON). The three
// writes are independent of each other; a failure in one never blocks
// the others.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/cogentcore/probegen/probe"
)

// ErrWrite indicates that one output artifact could not be serialized
// or persisted. It is scoped to the single artifact that failed.
var ErrWrite = errors.New("export: write failed")

// TableHeader is the coordinate table CSV header.
var TableHeader = []string{"electrode_number", "x", "y", "z", "width", "height", "depth"}

// Table writes the coordinate table for a normalized probe: one row
// per contact in ascending electrode order, positions and sizes in
// micrometers as plain decimal (never scientific notation).
func Table(pb *probe.Probe, filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w: %s: %s", ErrWrite, filename, err)
	}
	defer fp.Close()
	cw := csv.NewWriter(fp)
	if err := cw.Write(TableHeader); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrWrite, filename, err)
	}
	for ci := range pb.Contacts {
		ct := &pb.Contacts[ci]
		row := []string{
			strconv.Itoa(ct.Number),
			Decimal(ct.Pos.X), Decimal(ct.Pos.Y), Decimal(ct.Pos.Z),
			Decimal(ct.Size.X), Decimal(ct.Size.Y), Decimal(ct.Size.Z),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("%w: %s: %s", ErrWrite, filename, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrWrite, filename, err)
	}
	if err := fp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrWrite, filename, err)
	}
	return nil
}

// Decimal renders a micrometer value as the shortest plain decimal
// that round-trips the float32 exactly.
func Decimal(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
