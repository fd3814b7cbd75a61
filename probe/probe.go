// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package probe defines the electrode-geometry data model for neural
// probes: contacts, shank outlines, and the probe aggregate, along
// with structural validation and coordinate normalization onto the
// canonical tip-at-origin axis frame.
//
// Axis convention, in micrometers throughout: x is the lateral axis
// (multi-shank offsets), y is the shank length axis (tip at y=0,
// contacts at positive y), and z is the contact-face normal axis
// (extrusion depth). Probes described in 2D have z = 0 everywhere.
package probe

import (
	"errors"
	"sort"

	"cogentcore.org/core/math32"
)

// ErrConfig indicates a structurally inconsistent probe description,
// such as a contact referencing a nonexistent shank or non-dense
// electrode numbers. It aborts the whole pipeline for that probe.
var ErrConfig = errors.New("probe: invalid configuration")

// Contact is a single electrode site on a probe.
type Contact struct {
	// Number is the 1-based electrode number, dense and unique
	// within a probe.
	Number int

	// Pos is the contact center position. Before [Probe.Normalize]
	// it is local to the contact's shank; after, it is tip-relative
	// in the canonical axis frame.
	Pos math32.Vector3

	// Size is the contact extent: width (x), height (y), depth (z).
	Size math32.Vector3

	// Shank is the index of the shank carrying this contact.
	Shank int
}

// Outline is the 2D boundary polygon of one shank in the lateral /
// length plane, owned by exactly one shank and immutable once loaded.
type Outline struct {
	// Points is the ordered boundary, implicitly closed from the last
	// point back to the first.
	Points []math32.Vector2
}

// Tip returns the outline point with the minimum y coordinate, ties
// broken by minimum x: the distal tip of the shank. ok is false for
// an empty outline.
func (ol *Outline) Tip() (tip math32.Vector2, ok bool) {
	if len(ol.Points) == 0 {
		return
	}
	tip = ol.Points[0]
	for _, pt := range ol.Points[1:] {
		if pt.Y < tip.Y || (pt.Y == tip.Y && pt.X < tip.X) {
			tip = pt
		}
	}
	return tip, true
}

// Tips returns every outline point at the minimum y coordinate,
// deduplicated by x and ordered by ascending x. A merged multi-shank
// contour has one such point per shank tip. Nil for an empty outline.
func (ol *Outline) Tips() []math32.Vector2 {
	if len(ol.Points) == 0 {
		return nil
	}
	minY := ol.Points[0].Y
	for _, pt := range ol.Points[1:] {
		if pt.Y < minY {
			minY = pt.Y
		}
	}
	var tips []math32.Vector2
	for _, pt := range ol.Points {
		if pt.Y == minY {
			tips = append(tips, pt)
		}
	}
	sort.Slice(tips, func(i, j int) bool {
		return tips[i].X < tips[j].X
	})
	dd := tips[:1]
	for _, pt := range tips[1:] {
		if pt.X != dd[len(dd)-1].X {
			dd = append(dd, pt)
		}
	}
	return dd
}

// Probe aggregates the shank outlines and the full contact set of one
// probe. It is constructed once per generation run, from a library
// document or one of the demo constructors, and is read-only after
// [Probe.Normalize].
type Probe struct {
	// Name is the probe model name.
	Name string

	// Manufacturer is the probe producer key in the library.
	Manufacturer string

	// NDim is the dimensionality of the source description, 2 or 3.
	NDim int

	// Pitch is the fixed lateral spacing between adjacent shanks.
	Pitch float32

	// Outlines holds one outline per shank, ordered by shank index.
	// Shank 0 is the reference shank anchored at the origin.
	Outlines []Outline

	// Contacts is the full contact set, in electrode-number order.
	Contacts []Contact

	// DeclaredShanks is the shank count reported by the source when it
	// exceeds len(Outlines); some sources describe a multi-shank probe
	// with a single merged outline. Zero means len(Outlines) governs.
	DeclaredShanks int

	// Annotations carries free-form annotations from the source.
	Annotations map[string]string
}

// NumContacts returns the number of contacts.
func (pb *Probe) NumContacts() int {
	return len(pb.Contacts)
}

// NumShanks returns the shank count: the declared count when the
// source reported one larger than the outline count, otherwise the
// number of outlines.
func (pb *Probe) NumShanks() int {
	if pb.DeclaredShanks > len(pb.Outlines) {
		return pb.DeclaredShanks
	}
	return len(pb.Outlines)
}

// LateralOffset returns the x offset of the given shank:
// shank index times pitch, exactly zero for the reference shank.
func (pb *Probe) LateralOffset(shank int) float32 {
	return float32(shank) * pb.Pitch
}

// Clone returns a deep copy of the probe.
func (pb *Probe) Clone() *Probe {
	np := *pb
	np.Outlines = make([]Outline, len(pb.Outlines))
	for oi, ol := range pb.Outlines {
		np.Outlines[oi].Points = append([]math32.Vector2(nil), ol.Points...)
	}
	np.Contacts = append([]Contact(nil), pb.Contacts...)
	if pb.Annotations != nil {
		np.Annotations = make(map[string]string, len(pb.Annotations))
		for k, v := range pb.Annotations {
			np.Annotations[k] = v
		}
	}
	return &np
}
