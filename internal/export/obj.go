// Package export writes generated mesh buffers to interchange formats.
package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/procmesh/apartment-engine/internal/geometry"
)

// WriteOBJ writes the mesh as a Wavefront OBJ object with positions, UVs and
// triangle faces. Output is deterministic: buffers are emitted in index order
// with one-based OBJ indices.
func WriteOBJ(w io.Writer, name string, m *geometry.MeshBuffer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "o %s\n", name); err != nil {
		return fmt.Errorf("write obj header: %w", err)
	}
	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
			return fmt.Errorf("write vertex %d: %w", i, err)
		}
	}
	for i := 0; i < m.VertexCount(); i++ {
		if _, err := fmt.Fprintf(bw, "vt %g %g\n", m.UVs[i*2], m.UVs[i*2+1]); err != nil {
			return fmt.Errorf("write uv %d: %w", i, err)
		}
	}
	for t := 0; t < m.TriangleCount(); t++ {
		a := m.Indices[t*3] + 1
		b := m.Indices[t*3+1] + 1
		c := m.Indices[t*3+2] + 1
		if _, err := fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n", a, a, b, b, c, c); err != nil {
			return fmt.Errorf("write face %d: %w", t, err)
		}
	}
	return bw.Flush()
}
