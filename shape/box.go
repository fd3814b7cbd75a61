// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Box is a rectangular-prism solid (cuboid) with 8 shared corner
// vertices and 6 quad faces, wound outward. It is the primitive used
// for electrode contacts.
type Box struct {
	ShapeBase

	// Size along each dimension.
	Size math32.Vector3
}

// NewBox returns a Box of the given size centered at pos.
// Any non-positive dimension returns an [ErrDegenerate] error.
func NewBox(pos, size math32.Vector3) (*Box, error) {
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, fmt.Errorf("%w: box size %v", ErrDegenerate, size)
	}
	bx := &Box{Size: size}
	bx.Pos = pos
	return bx, nil
}

// N returns the number of vertices and faces in the box.
func (bx *Box) N() (numVertex, numFace int) {
	return 8, 6
}

// boxFaces indexes the corners of each quad face, in outward winding
// order. Corner i has x = bit 0, y = bit 1, z = bit 2 (0 = min side).
var boxFaces = [6][4]int{
	{0, 2, 3, 1}, // -z
	{4, 5, 7, 6}, // +z
	{0, 1, 5, 4}, // -y
	{2, 6, 7, 3}, // +y
	{0, 4, 6, 2}, // -x
	{1, 3, 7, 5}, // +x
}

// Set writes the box vertices and faces into the given mesh.
func (bx *Box) Set(ms *Mesh) {
	hsz := bx.Size.DivScalar(2)
	vo, fo := bx.VtxOff, bx.FaceOff
	for ci := 0; ci < 8; ci++ {
		c := math32.Vec3(-hsz.X, -hsz.Y, -hsz.Z)
		if ci&1 != 0 {
			c.X = hsz.X
		}
		if ci&2 != 0 {
			c.Y = hsz.Y
		}
		if ci&4 != 0 {
			c.Z = hsz.Z
		}
		ms.Vertex[vo+ci] = bx.Pos.Add(c)
	}
	for fi, quad := range boxFaces {
		fc := make(Face, 4)
		for qi, ci := range quad {
			fc[qi] = vo + ci
		}
		ms.Faces[fo+fi] = fc
	}
	bx.CBBox = math32.Box3{Min: bx.Pos.Sub(hsz), Max: bx.Pos.Add(hsz)}
}
