// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probe

import (
	"sort"

	"cogentcore.org/core/math32"
)

// Normalize returns a copy of the probe mapped onto the canonical axis
// frame: the reference shank's tip at the origin, shank length along
// +y, contact face normal along z, and shank i offset by exactly
// i × Pitch along +x. Probes described in 2D get z = 0 on every
// contact. The outlines stay shank-local; their lateral offsets are
// applied at mesh build time via [Probe.LateralOffset].
//
// Validate is called first; a structural error aborts with [ErrConfig].
// Normalize is a one-shot mapping from source coordinates and must not
// be applied to an already normalized probe.
func (pb *Probe) Normalize() (*Probe, error) {
	if err := pb.Validate(); err != nil {
		return nil, err
	}
	np := pb.Clone()
	tip := np.refTip()
	for oi := range np.Outlines {
		pts := np.Outlines[oi].Points
		for pi := range pts {
			pts[pi] = pts[pi].Sub(tip)
		}
	}
	for ci := range np.Contacts {
		ct := &np.Contacts[ci]
		if np.NDim == 2 {
			ct.Pos.Z = 0
		}
		ct.Pos.X += np.LateralOffset(ct.Shank) - tip.X
		ct.Pos.Y -= tip.Y
	}
	sort.Slice(np.Contacts, func(i, j int) bool {
		return np.Contacts[i].Number < np.Contacts[j].Number
	})
	return np, nil
}

// refTip returns the anchor point translated to the origin: the tip of
// the reference shank's outline, falling back to the lowest shank-0
// contact position for a probe with an empty outline.
func (pb *Probe) refTip() math32.Vector2 {
	if tip, ok := pb.Outlines[0].Tip(); ok {
		return tip
	}
	var tip math32.Vector2
	found := false
	for ci := range pb.Contacts {
		ct := &pb.Contacts[ci]
		if ct.Shank != 0 {
			continue
		}
		pt := math32.Vec2(ct.Pos.X, ct.Pos.Y)
		if !found || pt.Y < tip.Y || (pt.Y == tip.Y && pt.X < tip.X) {
			tip = pt
			found = true
		}
	}
	return tip
}
