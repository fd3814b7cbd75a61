// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cogentcore/probegen/shape"
)

// OBJ writes the assembled mesh in Wavefront OBJ text format: comment
// header, vertex lines, then face lines with 1-based vertex indices.
// Positions are in micrometers under the same axis convention as the
// coordinate table.
func OBJ(ms *shape.Mesh, name, filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w: %s: %s", ErrWrite, filename, err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	fmt.Fprintf(bw, "# Probe: %s\n", name)
	fmt.Fprintf(bw, "# Generated by probegen\n")
	fmt.Fprintf(bw, "# Vertices: %d\n", ms.NumVertex())
	fmt.Fprintf(bw, "# Faces: %d\n\n", ms.NumFaces())
	for _, vt := range ms.Vertex {
		fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", vt.X, vt.Y, vt.Z)
	}
	fmt.Fprintln(bw)
	for _, fc := range ms.Faces {
		bw.WriteString("f")
		for _, vi := range fc {
			fmt.Fprintf(bw, " %d", vi+1)
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrWrite, filename, err)
	}
	if err := fp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrWrite, filename, err)
	}
	return nil
}
