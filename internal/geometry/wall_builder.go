package geometry

import "github.com/chewxy/math32"

// AddThickWallSegment emits a thickness-extruded band between the inner edge
// aInner->bInner and the outer edge aOuter->bOuter, spanning baseY..topY:
// an inner face toward roomCenter, an outer face away from it, a top cap, and
// optionally a bottom cap. Coincident endpoints emit nothing.
func AddThickWallSegment(m *MeshBuffer, aInner, bInner, aOuter, bOuter Vector3, baseY, topY float32, roomCenter Vector3, closeBottom bool) {
	if aInner.DistanceTo(bInner) < Epsilon {
		return
	}

	mid := aInner.Add(bInner).Scale(0.5)
	inward := roomCenter.Sub(mid).Horizontal().Normalized()
	if inward.Length() < Epsilon {
		// Room center sits on the wall line; fall back to the thickness direction.
		inward = aInner.Sub(aOuter).Horizontal().Normalized()
	}

	up := Vector3{Y: 1}

	m.AddQuad(
		aInner.WithY(baseY), bInner.WithY(baseY), bInner.WithY(topY), aInner.WithY(topY),
		inward)
	m.AddQuad(
		aOuter.WithY(baseY), bOuter.WithY(baseY), bOuter.WithY(topY), aOuter.WithY(topY),
		inward.Negate())
	m.AddQuad(
		aInner.WithY(topY), bInner.WithY(topY), bOuter.WithY(topY), aOuter.WithY(topY),
		up)
	if closeBottom {
		m.AddQuad(
			aInner.WithY(baseY), bInner.WithY(baseY), bOuter.WithY(baseY), aOuter.WithY(baseY),
			up.Negate())
	}
}

// AddWallWithDoorway emits a wall segment from floor to height with a
// rectangular doorway cut. The door center sits at segmentLength/2 +
// doorOffset along the inner edge, clamped so the opening always fits; a door
// wider than the wall consumes nearly the whole segment. The pieces are the
// solid sub-segments left and right of the opening, a header band above it,
// and two jambs closing the wall thickness at the opening's sides. Jamb outer
// points are placed along the true outward wall normal so they stay square
// even when the outer edge is miter-extended past the inner one.
func AddWallWithDoorway(m *MeshBuffer, aInner, bInner, aOuter, bOuter Vector3, height float32, roomCenter Vector3, doorWidth, doorHeight, doorOffset float32) {
	segLen := aInner.DistanceTo(bInner)
	if segLen < Epsilon {
		return
	}

	dw := math32.Min(doorWidth, segLen)
	dh := math32.Min(math32.Max(doorHeight, Epsilon), height-Epsilon)
	center := math32.Min(math32.Max(segLen/2+doorOffset, dw/2), segLen-dw/2)
	t0 := (center - dw/2) / segLen
	t1 := (center + dw/2) / segLen

	outward := EdgeOutwardNormal(aInner, bInner, roomCenter)
	thickness := aOuter.Sub(aInner).Horizontal().Dot(outward)

	pi0 := aInner.Lerp(bInner, t0)
	pi1 := aInner.Lerp(bInner, t1)
	po0 := pi0.Add(outward.Scale(thickness))
	po1 := pi1.Add(outward.Scale(thickness))

	if t0*segLen > Epsilon {
		AddThickWallSegment(m, aInner, pi0, aOuter, po0, 0, height, roomCenter, true)
	}
	if (1-t1)*segLen > Epsilon {
		AddThickWallSegment(m, pi1, bInner, po1, bOuter, 0, height, roomCenter, true)
	}

	// Header above the opening.
	AddThickWallSegment(m, pi0, pi1, po0, po1, dh, height, roomCenter, true)

	// Jambs face into the opening, along the wall direction.
	along := bInner.Sub(aInner).Normalized()
	m.AddQuad(
		pi0.WithY(0), po0.WithY(0), po0.WithY(dh), pi0.WithY(dh),
		along)
	m.AddQuad(
		pi1.WithY(0), po1.WithY(0), po1.WithY(dh), pi1.WithY(dh),
		along.Negate())
}
