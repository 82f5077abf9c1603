package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeOutwardNormal_PointsAwayFromCenter(t *testing.T) {
	center := V3(0, 0, 0)
	a := V3(-2, 0, 3)
	b := V3(2, 0, 3)

	n := EdgeOutwardNormal(a, b, center)
	assert.InDelta(t, 0, n.X, 1e-5)
	assert.InDelta(t, 1, n.Z, 1e-5)

	// Swapping the endpoints must not flip the outward direction.
	rev := EdgeOutwardNormal(b, a, center)
	assert.InDelta(t, n.X, rev.X, 1e-5)
	assert.InDelta(t, n.Z, rev.Z, 1e-5)
}

func TestEdgeOutwardNormal_AllFootprintEdges(t *testing.T) {
	fp := Footprint{HalfWidth: 3, HalfLength: 5}
	n := fp.EdgeNormals()
	want := [4]Vector3{
		{Z: 1},  // front
		{X: 1},  // right
		{Z: -1}, // back
		{X: -1}, // left
	}
	for i := range n {
		assert.InDelta(t, want[i].X, n[i].X, 1e-5, "edge %d X", i)
		assert.InDelta(t, want[i].Z, n[i].Z, 1e-5, "edge %d Z", i)
	}
}

func TestOffsetCorner_RightAngle(t *testing.T) {
	corner := V3(3, 0, 5)
	nPrev := V3(0, 0, 1)
	nNext := V3(1, 0, 0)

	p := OffsetCorner(corner, nPrev, nNext, 0.2)
	assert.InDelta(t, 3.2, p.X, 1e-5)
	assert.InDelta(t, 5.2, p.Z, 1e-5)
}

func TestOffsetCorner_NearParallelFoldStaysFinite(t *testing.T) {
	corner := V3(0, 0, 0)
	p := OffsetCorner(corner, V3(0, 0, 1), V3(0, 0, -1), 0.2)
	assert.False(t, p.X != p.X || p.Z != p.Z, "miter point must not be NaN")
	assert.Less(t, p.Length(), float32(500), "clamped miter must stay bounded")
}

func TestAddQuad_WindingFollowsDesiredNormal(t *testing.T) {
	up := V3(0, 1, 0)

	// Counter-clockwise from above.
	ccw := NewMeshBuffer()
	ccw.AddQuad(V3(0, 0, 0), V3(0, 0, 1), V3(1, 0, 1), V3(1, 0, 0), up)
	// The same quad supplied clockwise.
	cw := NewMeshBuffer()
	cw.AddQuad(V3(0, 0, 0), V3(1, 0, 0), V3(1, 0, 1), V3(0, 0, 1), up)

	for _, m := range []*MeshBuffer{ccw, cw} {
		require.Equal(t, 2, m.TriangleCount())
		for ti := 0; ti < m.TriangleCount(); ti++ {
			n := m.TriangleNormal(ti)
			assert.Greater(t, n.Dot(up), float32(0), "triangle %d must face up", ti)
		}
	}
}

func TestAddQuad_UVsScaleToEdgeLengths(t *testing.T) {
	m := NewMeshBuffer()
	m.AddQuad(V3(0, 0, 0), V3(4, 0, 0), V3(4, 0, 3), V3(0, 0, 3), V3(0, 1, 0))

	require.Equal(t, 4, m.VertexCount())
	require.Len(t, m.UVs, 8)
	assert.Equal(t, []float32{0, 0, 4, 0, 4, 3, 0, 3}, m.UVs)
}

func TestAddQuad_DegenerateQuadSkipped(t *testing.T) {
	m := NewMeshBuffer()
	p := V3(1, 2, 3)
	m.AddQuad(p, p, p, p, V3(0, 1, 0))
	assert.True(t, m.IsEmpty())
}
