// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape synthesizes indexed 3D meshes from parametric shape
// elements. Every shape knows its vertex and face counts in advance
// and writes itself into preallocated mesh arrays at a given offset,
// so composite shapes assemble without any re-indexing pass.
package shape

import (
	"errors"

	"cogentcore.org/core/math32"
)

// ErrDegenerate indicates degenerate geometry: a contact primitive with
// a non-positive dimension, a shank outline with fewer than three
// points, or a mesh that fails integrity validation.
var ErrDegenerate = errors.New("shape: degenerate geometry")

// Shape is the interface for all mesh-constructing elements.
type Shape interface {
	// N returns the number of vertices and faces in this shape element.
	N() (numVertex, numFace int)

	// Offs returns the starting offsets for this shape's vertices and
	// faces within the full mesh arrays.
	Offs() (vtxOff, faceOff int)

	// SetOffs sets the starting offsets for this shape's vertices and
	// faces within the full mesh arrays.
	SetOffs(vtxOff, faceOff int)

	// Set writes this shape's vertices and faces into the given mesh
	// at the current offsets. Face indices are written already re-based
	// by the vertex offset, so they are valid in the full mesh.
	Set(ms *Mesh)

	// BBox returns the bounding box of the shape in assembled
	// coordinates. Only valid after Set has been called.
	BBox() math32.Box3
}

// ShapeBase is the base shape element.
type ShapeBase struct {
	// VtxOff is the vertex offset, in points.
	VtxOff int

	// FaceOff is the face offset, in faces.
	FaceOff int

	// Pos is a 3D position offset applied to every vertex,
	// enabling composition.
	Pos math32.Vector3

	// CBBox is the bounding box in assembled coordinates, set by Set.
	CBBox math32.Box3
}

// Offs returns the starting offsets for vertices and faces in the full
// mesh arrays.
func (sb *ShapeBase) Offs() (vtxOff, faceOff int) {
	return sb.VtxOff, sb.FaceOff
}

// SetOffs sets the starting offsets for vertices and faces in the full
// mesh arrays.
func (sb *ShapeBase) SetOffs(vtxOff, faceOff int) {
	sb.VtxOff, sb.FaceOff = vtxOff, faceOff
}

// BBox returns the bounding box for the shape, in assembled coordinates.
// Only valid after Set has been called.
func (sb *ShapeBase) BBox() math32.Box3 {
	return sb.CBBox
}
