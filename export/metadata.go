// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"fmt"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/math32"
	"github.com/cogentcore/probegen/probe"
)

// MetadataRecord is the flat key/value descriptor exported alongside
// the geometry artifacts. Type, Sites, and Shanks are integers
// end-to-end; they are never rendered as JSON strings.
type MetadataRecord struct {
	// Name is the human-readable probe name.
	Name string `json:"name"`

	// Type is the integer probe type id, unique across the whole
	// probe library (uniqueness is the caller's cross-probe concern).
	Type int `json:"type"`

	// Producer is the probe manufacturer.
	Producer string `json:"producer"`

	// Sites is the electrode site count.
	Sites int `json:"sites"`

	// Shanks is the shank count.
	Shanks int `json:"shanks"`

	// TipCoordinates holds one [x, y, z] tip point per shank, in the
	// normalized frame.
	TipCoordinates [][]float32 `json:"tip_coordinates"`

	// References records the provenance of the geometry.
	References string `json:"references"`

	// Spec is the URL of the source format specification.
	Spec string `json:"spec"`
}

// NewMetadataRecord derives the metadata descriptor from a normalized
// probe and the given library-wide type id.
func NewMetadataRecord(pb *probe.Probe, typeID int) *MetadataRecord {
	name := pb.Name
	if mn, ok := pb.Annotations["model_name"]; ok && mn != "" {
		name = mn
	}
	return &MetadataRecord{
		Name:           name,
		Type:           typeID,
		Producer:       pb.Manufacturer,
		Sites:          pb.NumContacts(),
		Shanks:         pb.NumShanks(),
		TipCoordinates: tipCoordinates(pb),
		References:     "Generated from the probeinterface probe library",
		Spec:           "https://probeinterface.readthedocs.io/",
	}
}

// tipCoordinates returns the tip points of each shank outline, offset
// by the shank's lateral position, falling back to the lowest contact
// of each shank when the outline is empty. A merged multi-shank
// contour carries several minimum-y points, one per shank tip, so
// every one is emitted.
func tipCoordinates(pb *probe.Probe) [][]float32 {
	tips := make([][]float32, 0, len(pb.Outlines))
	for oi := range pb.Outlines {
		off := pb.LateralOffset(oi)
		pts := pb.Outlines[oi].Tips()
		if len(pts) == 0 {
			if low, ok := lowestContact(pb, oi); ok {
				tips = append(tips, []float32{low.X, low.Y, low.Z})
			}
			continue
		}
		for _, tip := range pts {
			tips = append(tips, []float32{tip.X + off, tip.Y, 0})
		}
	}
	return tips
}

func lowestContact(pb *probe.Probe, shank int) (pos math32.Vector3, ok bool) {
	for ci := range pb.Contacts {
		ct := &pb.Contacts[ci]
		if ct.Shank != shank {
			continue
		}
		if !ok || ct.Pos.Y < pos.Y {
			pos = ct.Pos
			ok = true
		}
	}
	return
}

// Metadata writes the record as indented JSON.
func Metadata(rec *MetadataRecord, filename string) error {
	if err := jsonx.SaveIndent(rec, filename); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrWrite, filename, err)
	}
	return nil
}
