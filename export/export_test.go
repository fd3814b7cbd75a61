// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogentcore/probegen/probe"
	"github.com/cogentcore/probegen/shape"
)

func testProbe(t *testing.T) *probe.Probe {
	pb := &probe.Probe{
		Name:         "alpha-1",
		Manufacturer: "testman",
		NDim:         2,
		Outlines: []probe.Outline{{Points: []math32.Vector2{
			math32.Vec2(-20, 600),
			math32.Vec2(-20, 40),
			math32.Vec2(0, 0),
			math32.Vec2(20, 40),
			math32.Vec2(20, 600),
		}}},
		Contacts: []probe.Contact{
			{Number: 1, Pos: math32.Vec3(0, 450, 0), Size: math32.Vec3(20, 20, 20)},
			{Number: 2, Pos: math32.Vec3(0, 500, 0), Size: math32.Vec3(20, 20, 20)},
		},
	}
	np, err := pb.Normalize()
	require.NoError(t, err)
	return np
}

func TestTable(t *testing.T) {
	np := testProbe(t)
	path := filepath.Join(t.TempDir(), "alpha-1.csv")
	require.NoError(t, Table(np, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "electrode_number,x,y,z,width,height,depth", lines[0])
	assert.Equal(t, "1,0,450,0,20,20,20", lines[1])
	assert.Equal(t, "2,0,500,0,20,20,20", lines[2])
}

func TestTableWriteError(t *testing.T) {
	np := testProbe(t)
	err := Table(np, filepath.Join(t.TempDir(), "missing", "alpha-1.csv"))
	assert.ErrorIs(t, err, ErrWrite)
}

func TestDecimal(t *testing.T) {
	assert.Equal(t, "0", Decimal(0))
	assert.Equal(t, "250", Decimal(250))
	assert.Equal(t, "12.5", Decimal(12.5))
	// plain decimal, never scientific notation
	assert.NotContains(t, Decimal(1e7), "e")
	assert.NotContains(t, Decimal(0.0000125), "e")
}

func TestOBJ(t *testing.T) {
	bx, err := shape.NewBox(math32.Vec3(0, 450, 0), math32.Vec3(20, 20, 20))
	require.NoError(t, err)
	gp := &shape.Group{Shapes: []shape.Shape{bx}}
	ms, err := gp.Mesh()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "alpha-1.obj")
	require.NoError(t, OBJ(ms, "alpha-1", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "# Probe: alpha-1")

	var vtx, face int
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "v "):
			vtx++
		case strings.HasPrefix(line, "f "):
			face++
			// face indices are 1-based
			for _, fld := range strings.Fields(line)[1:] {
				assert.NotEqual(t, "0", fld)
			}
		}
	}
	assert.Equal(t, 8, vtx)
	assert.Equal(t, 6, face)
}

func TestMetadata(t *testing.T) {
	np := testProbe(t)
	rec := NewMetadataRecord(np, 3)
	assert.Equal(t, "alpha-1", rec.Name)
	assert.Equal(t, 3, rec.Type)
	assert.Equal(t, "testman", rec.Producer)
	assert.Equal(t, 2, rec.Sites)
	assert.Equal(t, 1, rec.Shanks)
	require.Len(t, rec.TipCoordinates, 1)
	assert.Equal(t, []float32{0, 0, 0}, rec.TipCoordinates[0])

	path := filepath.Join(t.TempDir(), "alpha-1_metadata.json")
	require.NoError(t, Metadata(rec, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	// numeric fields are JSON numbers, never strings
	assert.Contains(t, text, `"type": 3`)
	assert.Contains(t, text, `"sites": 2`)
	assert.Contains(t, text, `"shanks": 1`)
	assert.NotContains(t, text, `"type": "3"`)
}

func TestMetadataMergedContourTips(t *testing.T) {
	// a merged multi-shank contour has one minimum-y point per shank
	// tip; the metadata carries all of them
	pb := &probe.Probe{
		Name:         "double-4ch",
		Manufacturer: "testman",
		NDim:         2,
		Outlines: []probe.Outline{{Points: []math32.Vector2{
			math32.Vec2(-35, 600),
			math32.Vec2(-35, 40),
			math32.Vec2(0, 0),
			math32.Vec2(250, 0),
			math32.Vec2(285, 40),
			math32.Vec2(285, 600),
		}}},
		Contacts: []probe.Contact{
			{Number: 1, Pos: math32.Vec3(0, 450, 0), Size: math32.Vec3(20, 20, 20)},
			{Number: 2, Pos: math32.Vec3(250, 450, 0), Size: math32.Vec3(20, 20, 20)},
		},
		DeclaredShanks: 2,
	}
	np, err := pb.Normalize()
	require.NoError(t, err)

	rec := NewMetadataRecord(np, 1)
	assert.Equal(t, 2, rec.Shanks)
	require.Len(t, rec.TipCoordinates, 2)
	assert.Equal(t, []float32{0, 0, 0}, rec.TipCoordinates[0])
	assert.Equal(t, []float32{250, 0, 0}, rec.TipCoordinates[1])
}

func TestMetadataDeclaredShanks(t *testing.T) {
	np := testProbe(t)
	np.DeclaredShanks = 4 // merged-outline source reporting 4 shanks
	rec := NewMetadataRecord(np, 1)
	assert.Equal(t, 4, rec.Shanks)
}

func TestMetadataModelName(t *testing.T) {
	np := testProbe(t)
	np.Annotations = map[string]string{"model_name": "Alpha Probe 1"}
	rec := NewMetadataRecord(np, 1)
	assert.Equal(t, "Alpha Probe 1", rec.Name)
}
