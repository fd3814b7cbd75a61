// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package probegen converts neural-probe electrode-geometry
// descriptions into the three artifacts consumed by a visualization
// host: a coordinate table (CSV), a 3D mesh of the shanks plus
// contacts (OBJ), and a metadata descriptor (JSON).
//
// Data flows normalize → build → assemble → export: [probe.Probe]
// descriptions are normalized onto the tip-at-origin axis frame,
// synthesized into [shape] primitives, assembled into one indexed
// mesh, and written by [export]. [Generate] runs the pipeline for one
// probe; [Batch] runs many probes concurrently with isolated failures.
package probegen

import (
	"fmt"

	"cogentcore.org/core/math32"
	"github.com/cogentcore/probegen/probe"
	"github.com/cogentcore/probegen/shape"
)

// DefaultThickness is the nominal shank extrusion depth in
// micrometers, used when no thickness is configured.
const DefaultThickness = 20

// ContactShapes synthesizes one box primitive per contact of the
// normalized probe, in electrode order, centered at the contact
// position and sized per its declared dimensions. A contact with a
// non-positive dimension returns an error wrapping
// [shape.ErrDegenerate].
func ContactShapes(pb *probe.Probe) ([]shape.Shape, error) {
	shapes := make([]shape.Shape, 0, len(pb.Contacts))
	for ci := range pb.Contacts {
		ct := &pb.Contacts[ci]
		bx, err := shape.NewBox(ct.Pos, ct.Size)
		if err != nil {
			return nil, fmt.Errorf("contact %d: %w", ct.Number, err)
		}
		shapes = append(shapes, bx)
	}
	return shapes, nil
}

// ShankShapes extrudes each shank outline of the normalized probe to
// the given thickness, translated by the shank's lateral offset. An
// outline with fewer than three points returns an error wrapping
// [shape.ErrDegenerate].
func ShankShapes(pb *probe.Probe, thickness float32) ([]shape.Shape, error) {
	shapes := make([]shape.Shape, 0, len(pb.Outlines))
	for oi := range pb.Outlines {
		off := math32.Vec3(pb.LateralOffset(oi), 0, 0)
		ex, err := shape.NewExtrusion(pb.Outlines[oi].Points, thickness, off)
		if err != nil {
			return nil, fmt.Errorf("shank %d: %w", oi, err)
		}
		shapes = append(shapes, ex)
	}
	return shapes, nil
}

// BuildMesh synthesizes and assembles the complete probe mesh: shank
// bodies first, then contact primitives in electrode order, merged
// into one indexed mesh with face indices re-based by the running
// vertex count, and validated.
func BuildMesh(pb *probe.Probe, thickness float32) (*shape.Mesh, error) {
	if thickness <= 0 {
		thickness = DefaultThickness
	}
	shanks, err := ShankShapes(pb, thickness)
	if err != nil {
		return nil, err
	}
	contacts, err := ContactShapes(pb)
	if err != nil {
		return nil, err
	}
	gp := &shape.Group{Shapes: append(shanks, contacts...)}
	return gp.Mesh()
}
