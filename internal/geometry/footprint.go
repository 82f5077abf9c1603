package geometry

// Footprint is the apartment's interior rectangle, centered on the origin in
// the XZ plane. Corners run counter-clockwise viewed from above, starting at
// the front-left; edge 0 (corner 0 -> corner 1) is the front (max-Z) wall.
type Footprint struct {
	HalfWidth  float32
	HalfLength float32
}

func (f Footprint) Corners() [4]Vector3 {
	return [4]Vector3{
		{X: -f.HalfWidth, Z: f.HalfLength},
		{X: f.HalfWidth, Z: f.HalfLength},
		{X: f.HalfWidth, Z: -f.HalfLength},
		{X: -f.HalfWidth, Z: -f.HalfLength},
	}
}

func (f Footprint) Centroid() Vector3 {
	return Vector3{}
}

// EdgeNormals returns the outward unit normal of each edge i
// (corner i -> corner i+1).
func (f Footprint) EdgeNormals() [4]Vector3 {
	c := f.Corners()
	center := f.Centroid()
	var n [4]Vector3
	for i := range c {
		n[i] = EdgeOutwardNormal(c[i], c[(i+1)%4], center)
	}
	return n
}

// OuterCorners returns the corner loop pushed outward by thickness, with
// miter joints so adjacent wall faces meet exactly.
func (f Footprint) OuterCorners(thickness float32) [4]Vector3 {
	c := f.Corners()
	n := f.EdgeNormals()
	var out [4]Vector3
	for i := range c {
		prev := n[(i+3)%4]
		out[i] = OffsetCorner(c[i], prev, n[i], thickness)
	}
	return out
}

// Bounds is an axis-aligned region of the floor plane.
type Bounds struct {
	X0, X1 float32
	Z0, Z1 float32
}

func (f Footprint) Bounds() Bounds {
	return Bounds{
		X0: -f.HalfWidth, X1: f.HalfWidth,
		Z0: -f.HalfLength, Z1: f.HalfLength,
	}
}
