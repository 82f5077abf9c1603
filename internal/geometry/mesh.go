package geometry

// MeshBuffer accumulates triangle geometry as flat arrays: three floats per
// vertex position, two floats per vertex UV, three indices per triangle.
// Buffers are rebuilt from scratch on every generation pass, never patched.
type MeshBuffer struct {
	Positions []float32 `json:"positions"`
	Indices   []uint32  `json:"indices"`
	UVs       []float32 `json:"uvs"`
}

func NewMeshBuffer() *MeshBuffer {
	return &MeshBuffer{}
}

func (m *MeshBuffer) VertexCount() int {
	return len(m.Positions) / 3
}

func (m *MeshBuffer) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m *MeshBuffer) IsEmpty() bool {
	return len(m.Positions) == 0
}

func (m *MeshBuffer) Clear() {
	m.Positions = m.Positions[:0]
	m.Indices = m.Indices[:0]
	m.UVs = m.UVs[:0]
}

// Vertex returns the position of vertex i.
func (m *MeshBuffer) Vertex(i int) Vector3 {
	return Vector3{X: m.Positions[i*3], Y: m.Positions[i*3+1], Z: m.Positions[i*3+2]}
}

func (m *MeshBuffer) appendVertex(p Vector3, u, v float32) uint32 {
	idx := uint32(m.VertexCount())
	m.Positions = append(m.Positions, p.X, p.Y, p.Z)
	m.UVs = append(m.UVs, u, v)
	return idx
}

// AddQuad appends the quad v0..v3 (perimeter order) as two triangles. The
// winding is chosen so the geometric normal of the emitted triangles agrees
// with desiredNormal, regardless of the order the caller supplied the points.
// UVs are planar, scaled by the quad's edge lengths.
func (m *MeshBuffer) AddQuad(v0, v1, v2, v3 Vector3, desiredNormal Vector3) {
	e0 := v1.Sub(v0)
	e1 := v2.Sub(v0)
	n := e0.Cross(e1)
	if n.Length() < Epsilon {
		return
	}

	w := v1.Sub(v0).Length()
	h := v3.Sub(v0).Length()
	i0 := m.appendVertex(v0, 0, 0)
	i1 := m.appendVertex(v1, w, 0)
	i2 := m.appendVertex(v2, w, h)
	i3 := m.appendVertex(v3, 0, h)

	if n.Dot(desiredNormal) >= 0 {
		m.Indices = append(m.Indices, i0, i1, i2, i0, i2, i3)
	} else {
		m.Indices = append(m.Indices, i0, i2, i1, i0, i3, i2)
	}
}

// TriangleNormal returns the unnormalized geometric normal of triangle t.
func (m *MeshBuffer) TriangleNormal(t int) Vector3 {
	a := m.Vertex(int(m.Indices[t*3]))
	b := m.Vertex(int(m.Indices[t*3+1]))
	c := m.Vertex(int(m.Indices[t*3+2]))
	return b.Sub(a).Cross(c.Sub(a))
}
