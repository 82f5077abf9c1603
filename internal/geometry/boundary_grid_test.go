package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meshArea(m *MeshBuffer) float32 {
	var area float32
	for t := 0; t < m.TriangleCount(); t++ {
		area += m.TriangleNormal(t).Length() / 2
	}
	return area
}

func TestBuildBoundaryGrid_LinesIncludeBounds(t *testing.T) {
	b := Bounds{X0: -3, X1: 3, Z0: -5, Z1: 5}
	g := BuildBoundaryGrid(b, []RoomRect{
		{Label: LabelEntry, X0: -1, X1: 1, Z0: 3, Z1: 5},
	})

	assert.InDelta(t, -3, g.Xs[0], 1e-5)
	assert.InDelta(t, 3, g.Xs[len(g.Xs)-1], 1e-5)
	assert.InDelta(t, -5, g.Zs[0], 1e-5)
	assert.InDelta(t, 5, g.Zs[len(g.Zs)-1], 1e-5)
	assert.Equal(t, 4, len(g.Xs))
	assert.Equal(t, 3, len(g.Zs))
}

func TestBuildBoundaryGrid_DeduplicatesNearbyEdges(t *testing.T) {
	b := Bounds{X0: -3, X1: 3, Z0: -5, Z1: 5}
	g := BuildBoundaryGrid(b, []RoomRect{
		{Label: LabelEntry, X0: -1, X1: 1, Z0: 3, Z1: 5},
		{Label: LabelKitchen, X0: -3, X1: -1 + 1e-5, Z0: 3, Z1: 5},
	})
	// The kitchen's right edge coincides with the entry's left edge within
	// epsilon and must not create a hairline cell column.
	assert.Equal(t, 4, len(g.Xs))
}

func TestBuildBoundaryGrid_LabelsCoverEveryCell(t *testing.T) {
	b := Bounds{X0: -3, X1: 3, Z0: -5, Z1: 5}
	g := BuildBoundaryGrid(b, []RoomRect{
		{Label: LabelEntry, X0: -1, X1: 1, Z0: 3, Z1: 5},
		{Label: LabelKitchen, X0: -3, X1: -1, Z0: 3, Z1: 5},
	})
	for iz := 0; iz < g.NZ(); iz++ {
		for ix := 0; ix < g.NX(); ix++ {
			assert.NotEmpty(t, g.Label(ix, iz))
		}
	}
	// Area across all cells equals the footprint area.
	var total float32
	for iz := 0; iz < g.NZ(); iz++ {
		for ix := 0; ix < g.NX(); ix++ {
			total += (g.Xs[ix+1] - g.Xs[ix]) * (g.Zs[iz+1] - g.Zs[iz])
		}
	}
	assert.InDelta(t, 60, total, 1e-3)
}

func TestBuildBoundaryGrid_FirstRectWinsTies(t *testing.T) {
	b := Bounds{X0: 0, X1: 2, Z0: 0, Z1: 2}
	g := BuildBoundaryGrid(b, []RoomRect{
		{Label: LabelEntry, X0: 0, X1: 2, Z0: 0, Z1: 2},
		{Label: LabelKitchen, X0: 0, X1: 2, Z0: 0, Z1: 2},
	})
	assert.Equal(t, LabelEntry, g.Label(0, 0))
}

func TestBuildBoundaryGrid_UncoveredDefaultsToLiving(t *testing.T) {
	b := Bounds{X0: -3, X1: 3, Z0: -5, Z1: 5}
	g := BuildBoundaryGrid(b, nil)
	require.Equal(t, 1, g.NX()*g.NZ())
	assert.Equal(t, LabelLiving, g.Label(0, 0))
}

func TestFloorMeshes_AreaPerLabel(t *testing.T) {
	b := Bounds{X0: -3, X1: 3, Z0: -5, Z1: 5}
	g := BuildBoundaryGrid(b, []RoomRect{
		{Label: LabelEntry, X0: -1, X1: 1, Z0: 3, Z1: 5},
	})
	floors, order := g.FloorMeshes(false)
	require.Contains(t, order, LabelEntry)
	require.Contains(t, order, LabelLiving)
	assert.InDelta(t, 4, meshArea(floors[LabelEntry]), 1e-3)
	assert.InDelta(t, 56, meshArea(floors[LabelLiving]), 1e-3)
}

func TestFloorMeshes_DoubleSidedDoublesTriangles(t *testing.T) {
	b := Bounds{X0: 0, X1: 2, Z0: 0, Z1: 2}
	g := BuildBoundaryGrid(b, nil)
	single, _ := g.FloorMeshes(false)
	double, _ := g.FloorMeshes(true)
	assert.Equal(t, 2*single[LabelLiving].TriangleCount(), double[LabelLiving].TriangleCount())
}

func TestInteriorWalls_MergesCollinearRuns(t *testing.T) {
	// Entry and Kitchen split the footprint down the middle; the boundary
	// crosses two cell rows but must emit a single wall prism.
	b := Bounds{X0: -2, X1: 2, Z0: 0, Z1: 4}
	g := BuildBoundaryGrid(b, []RoomRect{
		{Label: LabelEntry, X0: -2, X1: 0, Z0: 0, Z1: 2},
		{Label: LabelEntry, X0: -2, X1: 0, Z0: 2, Z1: 4},
		{Label: LabelKitchen, X0: 0, X1: 2, Z0: 0, Z1: 2},
		{Label: LabelKitchen, X0: 0, X1: 2, Z0: 2, Z1: 4},
	})
	m := NewMeshBuffer()
	g.InteriorWalls(m, 3, 0.1, false)

	// One merged run: inner face, outer face, top cap. No bottom cap.
	assert.Equal(t, 6, m.TriangleCount())

	// The run spans the full footprint depth.
	minZ, maxZ := float32(1000), float32(-1000)
	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		if v.Z < minZ {
			minZ = v.Z
		}
		if v.Z > maxZ {
			maxZ = v.Z
		}
	}
	assert.InDelta(t, 0, minZ, 1e-5)
	assert.InDelta(t, 4, maxZ, 1e-5)
}

func TestInteriorWalls_RunBreaksWhenPairChanges(t *testing.T) {
	// Left side is Entry then Bathroom; right side is Kitchen. The vertical
	// boundary carries two different label pairs, so two prisms.
	b := Bounds{X0: -2, X1: 2, Z0: 0, Z1: 4}
	g := BuildBoundaryGrid(b, []RoomRect{
		{Label: LabelEntry, X0: -2, X1: 0, Z0: 2, Z1: 4},
		{Label: LabelBathroom, X0: -2, X1: 0, Z0: 0, Z1: 2},
		{Label: LabelKitchen, X0: 0, X1: 2, Z0: 0, Z1: 4},
	})
	m := NewMeshBuffer()
	g.InteriorWalls(m, 3, 0.1, false)

	// Two vertical-line prisms plus the horizontal Entry/Bathroom boundary.
	assert.Equal(t, 18, m.TriangleCount())
}

func TestInteriorWalls_EntryOpenToLivingSkipsWall(t *testing.T) {
	b := Bounds{X0: -2, X1: 2, Z0: 0, Z1: 4}
	rects := []RoomRect{
		{Label: LabelEntry, X0: -2, X1: 2, Z0: 2, Z1: 4},
	}
	g := BuildBoundaryGrid(b, rects)

	closed := NewMeshBuffer()
	g.InteriorWalls(closed, 3, 0.1, false)
	assert.Equal(t, 6, closed.TriangleCount(), "closed entry boundary emits one prism")

	open := NewMeshBuffer()
	g.InteriorWalls(open, 3, 0.1, true)
	assert.True(t, open.IsEmpty(), "open entry boundary emits nothing")
}

func TestInteriorWalls_NoBottomCap(t *testing.T) {
	b := Bounds{X0: -2, X1: 2, Z0: 0, Z1: 4}
	g := BuildBoundaryGrid(b, []RoomRect{
		{Label: LabelEntry, X0: -2, X1: 2, Z0: 2, Z1: 4},
	})
	m := NewMeshBuffer()
	g.InteriorWalls(m, 3, 0.1, false)

	down := V3(0, -1, 0)
	for ti := 0; ti < m.TriangleCount(); ti++ {
		n := m.TriangleNormal(ti).Normalized()
		assert.Less(t, n.Dot(down), float32(0.9), "triangle %d looks like a bottom cap", ti)
	}
}
