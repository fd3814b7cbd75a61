// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probe

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Demo probes are synthetic constructions that feed the exact same
// normalize / build / export pipeline as library probes; they exist
// for testing hosts without a library checkout.

// DemoManufacturer is the producer recorded for demo probes.
const DemoManufacturer = "demo"

// tipOutline returns a pointed shank outline of the given width whose
// tip sits exactly at the origin, extending up to the given y.
func tipOutline(width, top float32) []math32.Vector2 {
	hw := width / 2
	return []math32.Vector2{
		math32.Vec2(-hw, top),
		math32.Vec2(-hw, width),
		math32.Vec2(0, 0),
		math32.Vec2(hw, width),
		math32.Vec2(hw, top),
	}
}

// NewLinear returns a single-shank demo probe with n contacts in one
// column, spaced ypitch apart along the shank, each a 20 μm cube.
func NewLinear(n int, ypitch float32) *Probe {
	const y0, width = 100, 40
	pb := &Probe{
		Name:         fmt.Sprintf("linear_%dch", n),
		Manufacturer: DemoManufacturer,
		NDim:         2,
		Outlines:     []Outline{{Points: tipOutline(width, y0+float32(n-1)*ypitch+width)}},
	}
	for ci := 0; ci < n; ci++ {
		pb.Contacts = append(pb.Contacts, Contact{
			Number: ci + 1,
			Pos:    math32.Vec3(0, y0+float32(ci)*ypitch, 0),
			Size:   math32.Vec3(20, 20, 20),
		})
	}
	return pb
}

// NewMultiColumns returns a single-shank demo probe with cols columns
// of perCol contacts each, on an xpitch by ypitch grid centered on the
// shank axis, each contact a 12 μm cube (a 6 μm-radius site).
func NewMultiColumns(cols, perCol int, xpitch, ypitch float32) *Probe {
	const y0 = 100
	span := float32(cols-1) * xpitch
	width := span + 60
	pb := &Probe{
		Name:         fmt.Sprintf("multi_column_%dx%d", cols, perCol),
		Manufacturer: DemoManufacturer,
		NDim:         2,
		Outlines:     []Outline{{Points: tipOutline(width, y0+float32(perCol-1)*ypitch+60)}},
	}
	num := 1
	for col := 0; col < cols; col++ {
		x := float32(col)*xpitch - span/2
		for ri := 0; ri < perCol; ri++ {
			pb.Contacts = append(pb.Contacts, Contact{
				Number: num,
				Pos:    math32.Vec3(x, y0+float32(ri)*ypitch, 0),
				Size:   math32.Vec3(12, 12, 12),
			})
			num++
		}
	}
	return pb
}

// NewMultiShank returns a demo probe with the given number of shanks
// at the given lateral pitch, each shank carrying one column of
// perShank contacts. Contact positions are shank-local; Normalize
// applies the lateral offsets.
func NewMultiShank(shanks, perShank int, ypitch, pitch float32) *Probe {
	const y0, width = 100, 40
	pb := &Probe{
		Name:         fmt.Sprintf("multi_shank_%dx%d", shanks, perShank),
		Manufacturer: DemoManufacturer,
		NDim:         2,
		Pitch:        pitch,
	}
	top := y0 + float32(perShank-1)*ypitch + width
	num := 1
	for si := 0; si < shanks; si++ {
		pb.Outlines = append(pb.Outlines, Outline{Points: tipOutline(width, top)})
		for ci := 0; ci < perShank; ci++ {
			pb.Contacts = append(pb.Contacts, Contact{
				Number: num,
				Pos:    math32.Vec3(0, y0+float32(ci)*ypitch, 0),
				Size:   math32.Vec3(20, 20, 20),
				Shank:  si,
			})
			num++
		}
	}
	return pb
}
