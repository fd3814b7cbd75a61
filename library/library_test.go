// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package library

import (
	"context"
	"strings"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogentcore/probegen/probe"
)

func TestDirProbe(t *testing.T) {
	lib := NewDir("testdata")
	pb, err := lib.Probe(context.Background(), "testman", "alpha-1")
	require.NoError(t, err)

	assert.Equal(t, "alpha-1", pb.Name)
	assert.Equal(t, "testman", pb.Manufacturer)
	assert.Equal(t, 2, pb.NDim)
	assert.Equal(t, 4, pb.NumContacts())
	assert.Equal(t, "Alpha Probe 1", pb.Annotations["model_name"])

	// single merged outline, declared shank count from shank_ids
	assert.Len(t, pb.Outlines, 1)
	assert.Len(t, pb.Outlines[0].Points, 5)
	assert.Equal(t, 2, pb.DeclaredShanks)
	assert.Equal(t, 2, pb.NumShanks())

	// shape mapping: circle 2r cube, rect w x h x min, square side cube
	assert.Equal(t, math32.Vec3(20, 20, 20), pb.Contacts[0].Size)
	assert.Equal(t, math32.Vec3(20, 10, 10), pb.Contacts[2].Size)
	assert.Equal(t, math32.Vec3(15, 15, 15), pb.Contacts[3].Size)

	// positions carried through, 1-based dense numbering
	assert.Equal(t, math32.Vec3(250, 450, 0), pb.Contacts[2].Pos)
	for ci := range pb.Contacts {
		assert.Equal(t, ci+1, pb.Contacts[ci].Number)
	}

	// a library probe feeds straight into normalization
	_, err = pb.Normalize()
	assert.NoError(t, err)
}

func TestDirProbeNotFound(t *testing.T) {
	lib := NewDir("testdata")
	_, err := lib.Probe(context.Background(), "testman", "no-such-probe")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = lib.Probe(context.Background(), "nobody", "alpha-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDirList(t *testing.T) {
	lib := NewDir("testdata")
	keys, err := lib.List(context.Background())
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Equal(t, Key{Manufacturer: "testman", Name: "alpha-1"}, keys[0])
	assert.Equal(t, "testman/alpha-1", keys[0].String())
}

func TestDecodeStringNumbers(t *testing.T) {
	// numeric fields as JSON strings are coerced, not fatal
	doc := `{"probes": [{
		"ndim": "2",
		"contact_positions": [[0, 100], [0, 200]],
		"contact_shapes": ["circle", "circle"],
		"contact_shape_params": [{"radius": 5}, {"radius": 5}],
		"probe_planar_contour": [[-10, 300], [0, 0], [10, 300]],
		"shank_ids": ["0", "1"]
	}]}`
	pb, err := Decode(strings.NewReader(doc), "testman", "beta-2")
	require.NoError(t, err)
	assert.Equal(t, 2, pb.NDim)
	assert.Equal(t, 2, pb.DeclaredShanks)
	assert.Equal(t, math32.Vec3(10, 10, 10), pb.Contacts[0].Size)
}

func TestDecodeNoContour(t *testing.T) {
	// contour-less documents get a bounding rectangle with margin
	doc := `{"probes": [{
		"ndim": 2,
		"contact_positions": [[0, 100], [0, 200]]
	}]}`
	pb, err := Decode(strings.NewReader(doc), "testman", "gamma-3")
	require.NoError(t, err)
	require.Len(t, pb.Outlines, 1)
	require.Len(t, pb.Outlines[0].Points, 4)
	tip, ok := pb.Outlines[0].Tip()
	require.True(t, ok)
	assert.Equal(t, float32(-30), tip.X)
	assert.Equal(t, float32(70), tip.Y)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode(strings.NewReader("{"), "testman", "bad")
	assert.ErrorIs(t, err, probe.ErrConfig)

	_, err = Decode(strings.NewReader(`{"probes": []}`), "testman", "empty")
	assert.ErrorIs(t, err, probe.ErrConfig)

	_, err = Decode(strings.NewReader(`{"probes": [{"contact_positions": [[1]]}]}`), "testman", "short")
	assert.ErrorIs(t, err, probe.ErrConfig)
}
