// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Face is one mesh face: an ordered tuple of 0-based vertex indices.
// Quads and general polygons are allowed in addition to triangles.
type Face []int

// Mesh is an indexed face soup: a sequence of 3D vertex positions plus
// a sequence of faces referencing them. Units are micrometers.
type Mesh struct {
	// Vertex holds the vertex positions.
	Vertex []math32.Vector3

	// Faces holds the faces, each an ordered tuple of vertex indices.
	Faces []Face
}

// NewMesh returns a mesh with vertex and face arrays allocated for the
// given counts, ready for [Shape.Set] calls.
func NewMesh(numVertex, numFace int) *Mesh {
	return &Mesh{
		Vertex: make([]math32.Vector3, numVertex),
		Faces:  make([]Face, numFace),
	}
}

// NumVertex returns the number of vertices in the mesh.
func (ms *Mesh) NumVertex() int {
	return len(ms.Vertex)
}

// NumFaces returns the number of faces in the mesh.
func (ms *Mesh) NumFaces() int {
	return len(ms.Faces)
}

// Validate checks mesh integrity: every face must have at least three
// vertices and reference only in-bounds vertex indices. Assembled
// meshes must always pass; a failure means a shape wrote indices
// outside its own vertex contribution.
func (ms *Mesh) Validate() error {
	nv := len(ms.Vertex)
	for fi, fc := range ms.Faces {
		if len(fc) < 3 {
			return fmt.Errorf("%w: face %d has %d vertices", ErrDegenerate, fi, len(fc))
		}
		for _, vi := range fc {
			if vi < 0 || vi >= nv {
				return fmt.Errorf("%w: face %d references vertex %d of %d", ErrDegenerate, fi, vi, nv)
			}
		}
	}
	return nil
}

// Centroid returns the mean of the vertex positions in the half-open
// index range [start, end), used to recover primitive centers.
func (ms *Mesh) Centroid(start, end int) math32.Vector3 {
	var sum math32.Vector3
	if end <= start {
		return sum
	}
	for vi := start; vi < end; vi++ {
		sum.SetAdd(ms.Vertex[vi])
	}
	return sum.DivScalar(float32(end - start))
}
