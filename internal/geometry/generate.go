package geometry

import (
	"fmt"
	"math/rand"
)

// Result holds everything one generation pass produces: the shell mesh with
// its interior partitions, one floor mesh per room label (ordered for
// deterministic serialization), and the solved layout for inspection.
type Result struct {
	Shell       *MeshBuffer
	Floors      map[string]*MeshBuffer
	FloorLabels []string
	Rooms       []RoomRect
	Grid        *BoundaryGrid
	DoorX       float32
}

// Generate runs one full generation pass: seed the RNG, solve the layout,
// rasterize the boundary grid, then emit shell walls, interior partitions and
// floor slabs. It is a pure function of its parameters; the same Params
// (seed included) reproduce byte-identical buffers because every buffer is
// rebuilt from scratch in a fixed order.
func Generate(p Params) (*Result, error) {
	if p.Width <= 0 || p.Length <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("generate: non-positive apartment dimensions %gx%gx%g", p.Width, p.Length, p.Height)
	}
	if p.WallThickness <= 0 {
		return nil, fmt.Errorf("generate: non-positive wall thickness %g", p.WallThickness)
	}
	if p.PartitionInterior && p.InteriorWallThickness <= 0 {
		return nil, fmt.Errorf("generate: non-positive interior wall thickness %g", p.InteriorWallThickness)
	}

	fp := Footprint{HalfWidth: p.Width / 2, HalfLength: p.Length / 2}
	doorX := doorCenterX(p, fp)

	rng := rand.New(rand.NewSource(p.Seed))
	var rooms []RoomRect
	if p.PartitionInterior {
		rooms = SolveLayout(p, doorX, rng)
	}

	shell := NewMeshBuffer()
	buildShell(shell, fp, p)

	grid := BuildBoundaryGrid(fp.Bounds(), rooms)
	if p.PartitionInterior {
		grid.InteriorWalls(shell, p.Height, p.InteriorWallThickness, p.EntryOpenToLiving)
	}

	var floors map[string]*MeshBuffer
	var labels []string
	if p.FloorPerRoom {
		floors, labels = grid.FloorMeshes(p.DoubleSidedFloors)
	} else {
		floors, labels = singleFloor(fp.Bounds(), p.DoubleSidedFloors)
	}

	return &Result{
		Shell:       shell,
		Floors:      floors,
		FloorLabels: labels,
		Rooms:       rooms,
		Grid:        grid,
		DoorX:       doorX,
	}, nil
}

// doorCenterX mirrors the clamp AddWallWithDoorway applies along the front
// wall, so the layout solver and the mesh agree on where the door is.
func doorCenterX(p Params, fp Footprint) float32 {
	dw := clamp32(p.DoorWidth, 0, p.Width)
	limit := fp.HalfWidth - dw/2
	return clamp32(p.DoorOffset, -limit, limit)
}

// buildShell emits the four outer walls between the inner corner loop and its
// miter-offset outer loop. The front wall takes the doorway cut when
// configured; every shell wall closes its bottom.
func buildShell(m *MeshBuffer, fp Footprint, p Params) {
	inner := fp.Corners()
	outer := fp.OuterCorners(p.WallThickness)
	center := fp.Centroid()
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		if i == 0 && p.CutFrontDoor {
			AddWallWithDoorway(m, inner[i], inner[j], outer[i], outer[j],
				p.Height, center, p.DoorWidth, p.DoorHeight, p.DoorOffset)
			continue
		}
		AddThickWallSegment(m, inner[i], inner[j], outer[i], outer[j],
			0, p.Height, center, true)
	}
}

func singleFloor(b Bounds, doubleSided bool) (map[string]*MeshBuffer, []string) {
	buf := NewMeshBuffer()
	up := Vector3{Y: 1}
	buf.AddQuad(V3(b.X0, 0, b.Z0), V3(b.X1, 0, b.Z0), V3(b.X1, 0, b.Z1), V3(b.X0, 0, b.Z1), up)
	if doubleSided {
		buf.AddQuad(V3(b.X0, 0, b.Z0), V3(b.X1, 0, b.Z0), V3(b.X1, 0, b.Z1), V3(b.X0, 0, b.Z1), up.Negate())
	}
	return map[string]*MeshBuffer{LabelLiving: buf}, []string{LabelLiving}
}
