// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

// Group is a group of shapes assembled into one mesh, with each
// shape's face indices re-based by the running vertex count so that
// no face references a vertex outside its own shape's contribution.
type Group struct {
	ShapeBase

	// Shapes is the list of shapes in the group, in assembly order.
	Shapes []Shape
}

// N returns the total number of vertices and faces over all shapes
// in the group.
func (gp *Group) N() (numVertex, numFace int) {
	for _, sh := range gp.Shapes {
		nv, nf := sh.N()
		numVertex += nv
		numFace += nf
	}
	return
}

// Set writes all shapes into the given mesh, advancing the running
// vertex and face offsets as it goes.
func (gp *Group) Set(ms *Mesh) {
	vo, fo := gp.VtxOff, gp.FaceOff
	gp.CBBox.SetEmpty()
	for _, sh := range gp.Shapes {
		sh.SetOffs(vo, fo)
		sh.Set(ms)
		gp.CBBox.ExpandByBox(sh.BBox())
		nv, nf := sh.N()
		vo += nv
		fo += nf
	}
}

// Mesh allocates a mesh sized for the whole group, writes all shapes
// into it, and validates the result.
func (gp *Group) Mesh() (*Mesh, error) {
	nv, nf := gp.N()
	ms := NewMesh(nv, nf)
	gp.SetOffs(0, 0)
	gp.Set(ms)
	if err := ms.Validate(); err != nil {
		return nil, err
	}
	return ms, nil
}
