// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package library

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"cogentcore.org/core/math32"
	"github.com/cogentcore/probegen/probe"
)

// probeFile is the top level of a probeinterface JSON document.
type probeFile struct {
	Specification string      `json:"specification"`
	Version       string      `json:"version"`
	Probes        []probeSpec `json:"probes"`
}

// probeSpec is one probe entry in a probeinterface document.
type probeSpec struct {
	NDim               flexInt        `json:"ndim"`
	SIUnits            string         `json:"si_units"`
	Annotations        map[string]any `json:"annotations"`
	ContactPositions   [][]float32    `json:"contact_positions"`
	ContactShapes      []string       `json:"contact_shapes"`
	ContactShapeParams []shapeParams  `json:"contact_shape_params"`
	PlanarContour      [][]float32    `json:"probe_planar_contour"`
	ContactIDs         []string       `json:"contact_ids"`
	ShankIDs           []flexInt      `json:"shank_ids"`
}

type shapeParams struct {
	Radius float32 `json:"radius"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// flexInt decodes a JSON number or a numeric string. The library
// documents are inconsistent about which they use for fields such as
// shank_ids; string-typed numbers are coerced, never fatal.
type flexInt int

func (fi *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*fi = 0
		return nil
	}
	fv, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("not an integer-like value: %q", data)
	}
	*fi = flexInt(fv)
	return nil
}

// Decode parses a probeinterface JSON document into a [probe.Probe].
// Malformed or empty documents return an error wrapping
// [probe.ErrConfig].
func Decode(r io.Reader, manufacturer, name string) (*probe.Probe, error) {
	var pf probeFile
	if err := json.NewDecoder(r).Decode(&pf); err != nil {
		return nil, fmt.Errorf("%w: %s/%s: %s", probe.ErrConfig, manufacturer, name, err)
	}
	if len(pf.Probes) == 0 {
		return nil, fmt.Errorf("%w: %s/%s: document has no probes", probe.ErrConfig, manufacturer, name)
	}
	ps := &pf.Probes[0]
	pb := &probe.Probe{
		Name:         name,
		Manufacturer: manufacturer,
		NDim:         int(ps.NDim),
	}
	if pb.NDim == 0 {
		pb.NDim = 2
	}
	if len(ps.Annotations) > 0 {
		pb.Annotations = make(map[string]string, len(ps.Annotations))
		for k, v := range ps.Annotations {
			pb.Annotations[k] = fmt.Sprint(v)
		}
	}
	for pi, pos := range ps.ContactPositions {
		ct := probe.Contact{Number: pi + 1, Size: contactSize(ps, pi)}
		switch len(pos) {
		case 2:
			ct.Pos = math32.Vec3(pos[0], pos[1], 0)
		case 3:
			ct.Pos = math32.Vec3(pos[0], pos[1], pos[2])
		default:
			return nil, fmt.Errorf("%w: %s/%s: contact %d has %d coordinates", probe.ErrConfig, manufacturer, name, pi+1, len(pos))
		}
		pb.Contacts = append(pb.Contacts, ct)
	}
	pb.Outlines = []probe.Outline{{Points: contourPoints(ps)}}
	pb.DeclaredShanks = distinctShanks(ps.ShankIDs)
	return pb, nil
}

// contactSize maps a probeinterface contact shape to box dimensions,
// in micrometers: circles become cubes of side 2r, squares cubes of
// the side length, rectangles w × h × min(w, h), anything else a
// 20 μm cube.
func contactSize(ps *probeSpec, i int) math32.Vector3 {
	shape := "circle"
	if i < len(ps.ContactShapes) {
		shape = ps.ContactShapes[i]
	}
	var pr shapeParams
	if i < len(ps.ContactShapeParams) {
		pr = ps.ContactShapeParams[i]
	}
	switch shape {
	case "circle":
		rd := pr.Radius
		if rd <= 0 {
			rd = 10
		}
		return math32.Vec3(2*rd, 2*rd, 2*rd)
	case "square":
		side := pr.Width
		if side <= 0 {
			side = 20
		}
		return math32.Vec3(side, side, side)
	case "rect":
		wd, ht := pr.Width, pr.Height
		if wd <= 0 {
			wd = 20
		}
		if ht <= 0 {
			ht = 10
		}
		return math32.Vec3(wd, ht, math32.Min(wd, ht))
	default:
		return math32.Vec3(20, 20, 20)
	}
}

// contourPoints returns the planar contour as outline points, falling
// back to a bounding rectangle around the contacts, with a 30 μm
// margin, for documents without a contour.
func contourPoints(ps *probeSpec) []math32.Vector2 {
	if len(ps.PlanarContour) >= 3 {
		pts := make([]math32.Vector2, len(ps.PlanarContour))
		for pi, pt := range ps.PlanarContour {
			if len(pt) >= 2 {
				pts[pi] = math32.Vec2(pt[0], pt[1])
			}
		}
		return pts
	}
	if len(ps.ContactPositions) == 0 {
		return nil
	}
	const margin = 30
	min := math32.Vec2(ps.ContactPositions[0][0], ps.ContactPositions[0][1])
	max := min
	for _, pos := range ps.ContactPositions {
		if len(pos) < 2 {
			continue
		}
		min.SetMin(math32.Vec2(pos[0], pos[1]))
		max.SetMax(math32.Vec2(pos[0], pos[1]))
	}
	min = min.SubScalar(margin)
	max = max.AddScalar(margin)
	return []math32.Vector2{
		math32.Vec2(min.X, max.Y),
		math32.Vec2(min.X, min.Y),
		math32.Vec2(max.X, min.Y),
		math32.Vec2(max.X, max.Y),
	}
}

func distinctShanks(ids []flexInt) int {
	if len(ids) == 0 {
		return 0
	}
	seen := map[flexInt]bool{}
	for _, id := range ids {
		seen[id] = true
	}
	return len(seen)
}
