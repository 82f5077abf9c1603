package geometry

// EdgeOutwardNormal computes the horizontal unit normal of segment a->b,
// oriented away from center. Orientation comes from a dot-sign test against
// the midpoint, which makes the result robust to winding order.
func EdgeOutwardNormal(a, b, center Vector3) Vector3 {
	dir := b.Sub(a).Horizontal()
	n := Vector3{X: dir.Z, Z: -dir.X}.Normalized()
	mid := a.Add(b).Scale(0.5)
	if n.Dot(mid.Sub(center).Horizontal()) < 0 {
		n = n.Negate()
	}
	return n
}

// OffsetCorner returns the miter point where the two wall edges meeting at
// corner, each pushed outward by thickness along its own normal, intersect.
// The closed form is corner + (nPrev+nNext) * thickness/(1 + nPrev.nNext);
// the dot product is clamped so near-180-degree folds cannot blow up.
func OffsetCorner(corner, outwardPrev, outwardNext Vector3, thickness float32) Vector3 {
	d := outwardPrev.Dot(outwardNext)
	if d > 0.999 {
		d = 0.999
	} else if d < -0.999 {
		d = -0.999
	}
	return corner.Add(outwardPrev.Add(outwardNext).Scale(thickness / (1 + d)))
}
