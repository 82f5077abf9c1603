package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWallEdges() (aInner, bInner, aOuter, bOuter, center Vector3) {
	aInner = V3(-2, 0, 2)
	bInner = V3(2, 0, 2)
	aOuter = V3(-2, 0, 2.2)
	bOuter = V3(2, 0, 2.2)
	center = V3(0, 0, 0)
	return
}

func TestAddThickWallSegment_SolidWallFaceCount(t *testing.T) {
	aI, bI, aO, bO, center := testWallEdges()
	m := NewMeshBuffer()
	AddThickWallSegment(m, aI, bI, aO, bO, 0, 3, center, true)

	// Inner, outer, top and bottom: four quads.
	assert.Equal(t, 16, m.VertexCount())
	assert.Equal(t, 8, m.TriangleCount())
}

func TestAddThickWallSegment_OpenBottom(t *testing.T) {
	aI, bI, aO, bO, center := testWallEdges()
	m := NewMeshBuffer()
	AddThickWallSegment(m, aI, bI, aO, bO, 0, 3, center, false)
	assert.Equal(t, 6, m.TriangleCount())
}

func TestAddThickWallSegment_ZeroLengthSkipped(t *testing.T) {
	m := NewMeshBuffer()
	p := V3(1, 0, 1)
	AddThickWallSegment(m, p, p, p.Add(V3(0, 0, 0.2)), p.Add(V3(0, 0, 0.2)), 0, 3, V3(0, 0, 0), true)
	assert.True(t, m.IsEmpty())
}

func TestAddThickWallSegment_InnerFaceFacesRoom(t *testing.T) {
	aI, bI, aO, bO, center := testWallEdges()
	m := NewMeshBuffer()
	AddThickWallSegment(m, aI, bI, aO, bO, 0, 3, center, false)

	// First quad is the inner face; its normal must point toward -Z (the room).
	inward := V3(0, 0, -1)
	for ti := 0; ti < 2; ti++ {
		assert.Greater(t, m.TriangleNormal(ti).Dot(inward), float32(0))
	}
}

func TestAddWallWithDoorway_EmitsAllPieces(t *testing.T) {
	aI, bI, aO, bO, center := testWallEdges()
	m := NewMeshBuffer()
	AddWallWithDoorway(m, aI, bI, aO, bO, 3, center, 1, 2.1, 0)

	// Two solid sub-segments (4 quads each), header (4 quads), two jambs.
	assert.Equal(t, 14*2, m.TriangleCount())
}

func TestAddWallWithDoorway_DoorWiderThanWall(t *testing.T) {
	aI, bI, aO, bO, center := testWallEdges()
	m := NewMeshBuffer()
	AddWallWithDoorway(m, aI, bI, aO, bO, 3, center, 10, 2.1, 0)

	// Opening consumes the whole segment: just the header and both jambs.
	assert.Equal(t, 6*2, m.TriangleCount())
}

func TestAddWallWithDoorway_OffsetClampedToFit(t *testing.T) {
	aI, bI, aO, bO, center := testWallEdges()
	m := NewMeshBuffer()
	// Offset pushes the door past the right end; the opening must be pulled
	// back so its full width still fits.
	AddWallWithDoorway(m, aI, bI, aO, bO, 3, center, 1, 2.1, 100)

	maxX := float32(-1000)
	minX := float32(1000)
	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		if v.X > maxX {
			maxX = v.X
		}
		if v.X < minX {
			minX = v.X
		}
	}
	require.InDelta(t, 2, maxX, 1e-4)
	require.InDelta(t, -2, minX, 1e-4)

	// The jamb at the left side of the clamped opening sits at x = 1.
	found := false
	for i := 0; i < m.VertexCount(); i++ {
		if d := m.Vertex(i).X - 1; d > -1e-4 && d < 1e-4 {
			found = true
			break
		}
	}
	assert.True(t, found, "expected a jamb edge at the clamped opening boundary")
}

func TestAddWallWithDoorway_DoorHeightClampedBelowWall(t *testing.T) {
	aI, bI, aO, bO, center := testWallEdges()
	m := NewMeshBuffer()
	AddWallWithDoorway(m, aI, bI, aO, bO, 3, center, 1, 50, 0)

	for i := 0; i < m.VertexCount(); i++ {
		assert.LessOrEqual(t, m.Vertex(i).Y, float32(3)+1e-4)
	}
}

func TestAddWallWithDoorway_ZeroLengthSkipped(t *testing.T) {
	m := NewMeshBuffer()
	p := V3(0, 0, 2)
	AddWallWithDoorway(m, p, p, p, p, 3, V3(0, 0, 0), 1, 2, 0)
	assert.True(t, m.IsEmpty())
}
