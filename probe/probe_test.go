// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probe

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoShank returns a 2-shank probe with shank-local contacts and a
// pointed outline whose tip is at the origin.
func twoShank(pitch float32) *Probe {
	ol := func() Outline {
		return Outline{Points: []math32.Vector2{
			math32.Vec2(-20, 500),
			math32.Vec2(-20, 40),
			math32.Vec2(0, 0),
			math32.Vec2(20, 40),
			math32.Vec2(20, 500),
		}}
	}
	return &Probe{
		Name:         "test-2shank",
		Manufacturer: "testman",
		NDim:         2,
		Pitch:        pitch,
		Outlines:     []Outline{ol(), ol()},
		Contacts: []Contact{
			{Number: 1, Pos: math32.Vec3(0, 400, 0), Size: math32.Vec3(20, 20, 20), Shank: 0},
			{Number: 2, Pos: math32.Vec3(0, 400, 0), Size: math32.Vec3(20, 20, 20), Shank: 1},
		},
	}
}

func TestValidate(t *testing.T) {
	pb := twoShank(250)
	assert.NoError(t, pb.Validate())

	bad := pb.Clone()
	bad.Contacts[1].Shank = 2
	assert.ErrorIs(t, bad.Validate(), ErrConfig)

	bad = pb.Clone()
	bad.Contacts[1].Number = 1
	assert.ErrorIs(t, bad.Validate(), ErrConfig)

	bad = pb.Clone()
	bad.Contacts[1].Number = 3 // gap: 1,3
	assert.ErrorIs(t, bad.Validate(), ErrConfig)

	bad = pb.Clone()
	bad.Contacts[0].Number = 0 // zero-based numbering
	assert.ErrorIs(t, bad.Validate(), ErrConfig)

	bad = pb.Clone()
	bad.Outlines = nil
	assert.ErrorIs(t, bad.Validate(), ErrConfig)
}

func TestNormalizeLateralOffset(t *testing.T) {
	pb := twoShank(250)
	np, err := pb.Normalize()
	require.NoError(t, err)

	// reference shank gets exactly zero offset
	assert.Equal(t, float32(0), np.Contacts[0].Pos.X)
	assert.Equal(t, float32(400), np.Contacts[0].Pos.Y)

	// shank 1 is offset by 1 x pitch along +x
	assert.Equal(t, float32(250), np.Contacts[1].Pos.X)
	assert.Equal(t, float32(400), np.Contacts[1].Pos.Y)

	assert.Equal(t, float32(0), np.LateralOffset(0))
	assert.Equal(t, float32(250), np.LateralOffset(1))

	// the source probe is untouched
	assert.Equal(t, float32(0), pb.Contacts[1].Pos.X)
}

func TestNormalizeSingleShank(t *testing.T) {
	pb := twoShank(250)
	pb.Outlines = pb.Outlines[:1]
	pb.Contacts[1].Shank = 0
	np, err := pb.Normalize()
	require.NoError(t, err)
	for ci := range np.Contacts {
		assert.Equal(t, float32(0), np.Contacts[ci].Pos.X)
	}
}

func TestNormalize2D(t *testing.T) {
	pb := twoShank(250)
	pb.Contacts[0].Pos.Z = 17 // stray z on a 2D probe
	np, err := pb.Normalize()
	require.NoError(t, err)
	assert.Equal(t, float32(0), np.Contacts[0].Pos.Z)

	pb3 := twoShank(250)
	pb3.NDim = 3
	pb3.Contacts[0].Pos.Z = 17
	np3, err := pb3.Normalize()
	require.NoError(t, err)
	assert.Equal(t, float32(17), np3.Contacts[0].Pos.Z)
}

func TestNormalizeTipAnchor(t *testing.T) {
	pb := twoShank(0)
	// shift the whole description away from the origin; normalization
	// must bring the reference tip back
	for oi := range pb.Outlines {
		for pi := range pb.Outlines[oi].Points {
			pb.Outlines[oi].Points[pi] = pb.Outlines[oi].Points[pi].Add(math32.Vec2(30, -120))
		}
	}
	for ci := range pb.Contacts {
		pb.Contacts[ci].Pos.X += 30
		pb.Contacts[ci].Pos.Y -= 120
	}
	np, err := pb.Normalize()
	require.NoError(t, err)
	tip, ok := np.Outlines[0].Tip()
	require.True(t, ok)
	assert.Equal(t, float32(0), tip.X)
	assert.Equal(t, float32(0), tip.Y)
	assert.Equal(t, float32(400), np.Contacts[0].Pos.Y)
	assert.Equal(t, float32(0), np.Contacts[0].Pos.X)
}

func TestNormalizeUnknownShank(t *testing.T) {
	pb := twoShank(250)
	pb.Contacts[1].Shank = 5
	_, err := pb.Normalize()
	assert.ErrorIs(t, err, ErrConfig)
}

func TestOutlineTip(t *testing.T) {
	ol := Outline{Points: []math32.Vector2{
		math32.Vec2(10, 5),
		math32.Vec2(-3, 5), // same y, smaller x wins
		math32.Vec2(0, 80),
	}}
	tip, ok := ol.Tip()
	require.True(t, ok)
	assert.Equal(t, math32.Vec2(-3, 5), tip)

	empty := Outline{}
	_, ok = empty.Tip()
	assert.False(t, ok)
}

func TestOutlineTips(t *testing.T) {
	// merged two-shank contour: two points at the minimum y, one per
	// shank tip, with a duplicate at the second tip
	ol := Outline{Points: []math32.Vector2{
		math32.Vec2(-35, 600),
		math32.Vec2(-35, 40),
		math32.Vec2(250, 0),
		math32.Vec2(0, 0),
		math32.Vec2(250, 0),
		math32.Vec2(285, 40),
		math32.Vec2(285, 600),
	}}
	tips := ol.Tips()
	require.Len(t, tips, 2)
	assert.Equal(t, math32.Vec2(0, 0), tips[0])
	assert.Equal(t, math32.Vec2(250, 0), tips[1])

	single := Outline{Points: []math32.Vector2{
		math32.Vec2(-20, 500),
		math32.Vec2(0, 0),
		math32.Vec2(20, 500),
	}}
	assert.Equal(t, []math32.Vector2{math32.Vec2(0, 0)}, single.Tips())

	empty := Outline{}
	assert.Nil(t, empty.Tips())
}

func TestDemoProbes(t *testing.T) {
	lin := NewLinear(32, 25)
	require.NoError(t, lin.Validate())
	assert.Equal(t, 32, lin.NumContacts())
	assert.Equal(t, 1, lin.NumShanks())

	mc := NewMultiColumns(4, 8, 20, 25)
	require.NoError(t, mc.Validate())
	assert.Equal(t, 32, mc.NumContacts())

	msk := NewMultiShank(2, 16, 25, 250)
	require.NoError(t, msk.Validate())
	assert.Equal(t, 32, msk.NumContacts())
	assert.Equal(t, 2, msk.NumShanks())

	np, err := msk.Normalize()
	require.NoError(t, err)
	// second shank's contacts all sit at x = pitch
	for ci := range np.Contacts {
		ct := &np.Contacts[ci]
		if ct.Shank == 1 {
			assert.Equal(t, float32(250), ct.Pos.X)
		}
	}

	// demo outlines have their tip at the origin already
	tip, ok := lin.Outlines[0].Tip()
	require.True(t, ok)
	assert.Equal(t, math32.Vec2(0, 0), tip)
}
