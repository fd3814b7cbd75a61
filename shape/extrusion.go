// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Extrusion is a closed solid formed by extruding a 2D outline polygon
// along the z axis, from -Thickness/2 to +Thickness/2: a bottom cap,
// a top cap, and one quad side wall per outline edge, with the last
// outline point connected back to the first. It is the primitive used
// for probe shank bodies.
type Extrusion struct {
	ShapeBase

	// Outline is the boundary polygon in the x (lateral), y (length)
	// plane, in order.
	Outline []math32.Vector2

	// Thickness is the extrusion depth along z.
	Thickness float32
}

// NewExtrusion returns an Extrusion of the outline at the given
// thickness, translated by pos. An outline with fewer than three
// points or a non-positive thickness returns an [ErrDegenerate] error.
func NewExtrusion(outline []math32.Vector2, thickness float32, pos math32.Vector3) (*Extrusion, error) {
	if len(outline) < 3 {
		return nil, fmt.Errorf("%w: outline has %d points, need at least 3", ErrDegenerate, len(outline))
	}
	if thickness <= 0 {
		return nil, fmt.Errorf("%w: extrusion thickness %g", ErrDegenerate, thickness)
	}
	ex := &Extrusion{Outline: outline, Thickness: thickness}
	ex.Pos = pos
	return ex, nil
}

// N returns the number of vertices and faces in the extrusion:
// 2 vertices per outline point, plus two caps and one side wall
// per edge.
func (ex *Extrusion) N() (numVertex, numFace int) {
	n := len(ex.Outline)
	return 2 * n, n + 2
}

// Set writes the extrusion vertices and faces into the given mesh.
// Vertex layout is bottom, top per outline point, in outline order.
func (ex *Extrusion) Set(ms *Mesh) {
	n := len(ex.Outline)
	hz := ex.Thickness / 2
	vo, fo := ex.VtxOff, ex.FaceOff
	ex.CBBox = math32.B3Empty()
	for pi, pt := range ex.Outline {
		bot := ex.Pos.Add(math32.Vec3(pt.X, pt.Y, -hz))
		top := ex.Pos.Add(math32.Vec3(pt.X, pt.Y, hz))
		ms.Vertex[vo+2*pi] = bot
		ms.Vertex[vo+2*pi+1] = top
		ex.CBBox.ExpandByPoint(bot)
		ex.CBBox.ExpandByPoint(top)
	}
	// bottom cap is reversed so its normal points along -z
	bottom := make(Face, n)
	top := make(Face, n)
	for pi := 0; pi < n; pi++ {
		bottom[pi] = vo + 2*(n-1-pi)
		top[pi] = vo + 2*pi + 1
	}
	ms.Faces[fo] = bottom
	ms.Faces[fo+1] = top
	for pi := 0; pi < n; pi++ {
		next := (pi + 1) % n
		ms.Faces[fo+2+pi] = Face{vo + 2*pi, vo + 2*next, vo + 2*next + 1, vo + 2*pi + 1}
	}
}
