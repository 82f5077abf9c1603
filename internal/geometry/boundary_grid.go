package geometry

// BoundaryGrid is the non-uniform rasterization of the footprint induced by
// every room-rectangle edge. Cell labels are stored flat, row-major by z then
// x, like the tile arrays in the region map this grew out of.
type BoundaryGrid struct {
	Xs         []float32
	Zs         []float32
	CellLabels []string
}

func (g *BoundaryGrid) NX() int {
	return len(g.Xs) - 1
}

func (g *BoundaryGrid) NZ() int {
	return len(g.Zs) - 1
}

func (g *BoundaryGrid) Label(ix, iz int) string {
	return g.CellLabels[iz*g.NX()+ix]
}

// insertCoord keeps vs sorted and deduplicated within Epsilon.
func insertCoord(vs []float32, v float32) []float32 {
	lo := 0
	for lo < len(vs) && vs[lo] < v {
		lo++
	}
	if lo < len(vs) && vs[lo]-v < Epsilon && v-vs[lo] < Epsilon {
		return vs
	}
	if lo > 0 && v-vs[lo-1] < Epsilon {
		return vs
	}
	vs = append(vs, 0)
	copy(vs[lo+1:], vs[lo:])
	vs[lo] = v
	return vs
}

// BuildBoundaryGrid derives the grid lines from the footprint bounds plus
// every rectangle edge, then labels each cell by testing its center against
// the rectangles in order; the first containing rectangle wins and uncovered
// cells default to Living. The bounds are always part of the grid lines, so
// every cell lies inside the footprint.
func BuildBoundaryGrid(bounds Bounds, rects []RoomRect) *BoundaryGrid {
	xs := []float32{}
	zs := []float32{}
	xs = insertCoord(xs, bounds.X0)
	xs = insertCoord(xs, bounds.X1)
	zs = insertCoord(zs, bounds.Z0)
	zs = insertCoord(zs, bounds.Z1)
	for _, r := range rects {
		xs = insertCoord(xs, clamp32(r.X0, bounds.X0, bounds.X1))
		xs = insertCoord(xs, clamp32(r.X1, bounds.X0, bounds.X1))
		zs = insertCoord(zs, clamp32(r.Z0, bounds.Z0, bounds.Z1))
		zs = insertCoord(zs, clamp32(r.Z1, bounds.Z0, bounds.Z1))
	}

	nx := len(xs) - 1
	nz := len(zs) - 1
	labels := make([]string, nx*nz)
	for iz := 0; iz < nz; iz++ {
		cz := (zs[iz] + zs[iz+1]) / 2
		for ix := 0; ix < nx; ix++ {
			cx := (xs[ix] + xs[ix+1]) / 2
			label := LabelLiving
			for _, r := range rects {
				if r.Contains(cx, cz) {
					label = r.Label
					break
				}
			}
			labels[iz*nx+ix] = label
		}
	}

	return &BoundaryGrid{Xs: xs, Zs: zs, CellLabels: labels}
}

// FloorMeshes emits one upward-facing floor quad per cell, grouped into one
// buffer per distinct label. The returned label list preserves first
// appearance in scan order, keeping output deterministic. Double-sided floors
// get a downward duplicate of every quad.
func (g *BoundaryGrid) FloorMeshes(doubleSided bool) (map[string]*MeshBuffer, []string) {
	floors := make(map[string]*MeshBuffer)
	order := []string{}
	up := Vector3{Y: 1}
	nx, nz := g.NX(), g.NZ()
	for iz := 0; iz < nz; iz++ {
		for ix := 0; ix < nx; ix++ {
			label := g.Label(ix, iz)
			buf, ok := floors[label]
			if !ok {
				buf = NewMeshBuffer()
				floors[label] = buf
				order = append(order, label)
			}
			x0, x1 := g.Xs[ix], g.Xs[ix+1]
			z0, z1 := g.Zs[iz], g.Zs[iz+1]
			buf.AddQuad(V3(x0, 0, z0), V3(x1, 0, z0), V3(x1, 0, z1), V3(x0, 0, z1), up)
			if doubleSided {
				buf.AddQuad(V3(x0, 0, z0), V3(x1, 0, z0), V3(x1, 0, z1), V3(x0, 0, z1), up.Negate())
			}
		}
	}
	return floors, order
}

// boundaryPair is an unordered label pair across a grid edge.
type boundaryPair struct {
	a, b string
}

func makePair(a, b string) boundaryPair {
	if a > b {
		a, b = b, a
	}
	return boundaryPair{a: a, b: b}
}

func (p boundaryPair) is(a, b string) bool {
	return p == makePair(a, b)
}

// InteriorWalls emits partition walls along every grid edge whose two cell
// labels differ, skipping the {Entry, Living} boundary when the entry is
// open to the living space. Contiguous edges along one grid line that share
// the same label pair merge into a single wall run, so a boundary costs one
// prism rather than one per cell. Interior walls never close their bottom:
// the floor slabs sit directly underneath.
func (g *BoundaryGrid) InteriorWalls(m *MeshBuffer, height, thickness float32, entryOpenToLiving bool) {
	open := func(pair boundaryPair) bool {
		return entryOpenToLiving && pair.is(LabelEntry, LabelLiving)
	}
	nx, nz := g.NX(), g.NZ()
	half := thickness / 2

	// Vertical grid lines: walls between horizontally adjacent cells.
	for ix := 1; ix < nx; ix++ {
		x := g.Xs[ix]
		iz := 0
		for iz < nz {
			la, lb := g.Label(ix-1, iz), g.Label(ix, iz)
			pair := makePair(la, lb)
			if la == lb || open(pair) {
				iz++
				continue
			}
			run := iz + 1
			for run < nz {
				na, nb := g.Label(ix-1, run), g.Label(ix, run)
				if na == nb || makePair(na, nb) != pair || open(makePair(na, nb)) {
					break
				}
				run++
			}
			z0, z1 := g.Zs[iz], g.Zs[run]
			center := V3((g.Xs[ix-1]+x)/2, 0, (z0+z1)/2)
			AddThickWallSegment(m,
				V3(x-half, 0, z0), V3(x-half, 0, z1),
				V3(x+half, 0, z0), V3(x+half, 0, z1),
				0, height, center, false)
			iz = run
		}
	}

	// Horizontal grid lines: walls between vertically adjacent cells.
	for iz := 1; iz < nz; iz++ {
		z := g.Zs[iz]
		ix := 0
		for ix < nx {
			la, lb := g.Label(ix, iz-1), g.Label(ix, iz)
			pair := makePair(la, lb)
			if la == lb || open(pair) {
				ix++
				continue
			}
			run := ix + 1
			for run < nx {
				na, nb := g.Label(run, iz-1), g.Label(run, iz)
				if na == nb || makePair(na, nb) != pair || open(makePair(na, nb)) {
					break
				}
				run++
			}
			x0, x1 := g.Xs[ix], g.Xs[run]
			center := V3((x0+x1)/2, 0, (g.Zs[iz-1]+z)/2)
			AddThickWallSegment(m,
				V3(x0, 0, z-half), V3(x1, 0, z-half),
				V3(x0, 0, z+half), V3(x1, 0, z+half),
				0, height, center, false)
			ix = run
		}
	}
}
