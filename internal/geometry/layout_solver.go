package geometry

import (
	"math/rand"

	"github.com/chewxy/math32"
)

// hardMinRoomSize is the floor applied to sampled depths and front-strip
// extents so infeasible constraints can never produce degenerate rectangles.
const hardMinRoomSize = 0.5

// minEntryWidth is the last-resort floor for the entry rectangle when the
// free interval between kitchen and bathroom is narrower than configured.
const minEntryWidth = 0.05

// sampleRange draws a uniform value in [lo, hi] from rng. A collapsed or
// inverted range returns lo, but still consumes one draw so the stream
// position stays fixed across configurations.
func sampleRange(rng *rand.Rand, lo, hi float32) float32 {
	r := float32(rng.Float64())
	if hi <= lo {
		return lo
	}
	return lo + r*(hi-lo)
}

func clamp32(v, lo, hi float32) float32 {
	return math32.Min(math32.Max(v, lo), hi)
}

// SolveLayout deterministically places labeled, non-overlapping room
// rectangles inside the footprint. doorX is the front-door center along X,
// already clamped into the wall span; the Entry rectangle is guaranteed to
// contain it whenever the kitchen/bathroom side assignment leaves a feasible
// interval. Draw order is fixed: entry depth, kitchen depth, bath depth,
// kitchen width, bath width, permutation choice, side coin-flip, entry width,
// bedroom depth, bedroom width, bedroom side.
func SolveLayout(p Params, doorX float32, rng *rand.Rand) []RoomRect {
	hw := p.Width / 2
	hl := p.Length / 2

	maxFrontDepth := p.Length - p.LivingMinDepth
	if p.IncludeBedroom {
		maxFrontDepth -= p.Bedroom.MinDepth
	}
	if maxFrontDepth < hardMinRoomSize {
		maxFrontDepth = hardMinRoomSize
	}

	entryDepth := sampleRange(rng,
		math32.Max(p.Entry.MinDepth, hardMinRoomSize),
		math32.Min(p.Entry.MaxDepth, maxFrontDepth))

	var kitchenDepth, bathDepth float32
	if p.IncludeKitchen {
		kitchenDepth = sampleRange(rng,
			math32.Max(p.Kitchen.MinDepth, hardMinRoomSize),
			math32.Min(p.Kitchen.MaxDepth, maxFrontDepth))
	}
	if p.IncludeBathroom {
		bathDepth = sampleRange(rng,
			math32.Max(p.Bathroom.MinDepth, hardMinRoomSize),
			math32.Min(p.Bathroom.MaxDepth, maxFrontDepth))
	}

	frontStrip := clamp32(math32.Max(entryDepth, math32.Max(kitchenDepth, bathDepth)),
		hardMinRoomSize, maxFrontDepth)
	entryDepth = math32.Min(entryDepth, frontStrip)

	var kitchenWidth, bathWidth float32
	if p.IncludeKitchen {
		kitchenWidth = sampleRange(rng, p.Kitchen.MinWidth, math32.Min(p.Kitchen.MaxWidth, p.Width))
	}
	if p.IncludeBathroom {
		bathWidth = sampleRange(rng, p.Bathroom.MinWidth, math32.Min(p.Bathroom.MaxWidth, p.Width))
	}
	if p.IncludeKitchen && p.IncludeBathroom {
		kitchenWidth, bathWidth = shrinkToBudget(
			kitchenWidth, bathWidth,
			p.Kitchen.MinWidth, p.Bathroom.MinWidth,
			p.Width-p.Entry.MinWidth)
	}
	// Rectangles may never overlap, configured minimums notwithstanding.
	// Cap side-room widths so at least a sliver of entry always fits.
	hardCap := p.Width - minEntryWidth
	kitchenWidth = math32.Min(kitchenWidth, hardCap)
	bathWidth = math32.Min(bathWidth, hardCap)
	if total := kitchenWidth + bathWidth; total > hardCap {
		scale := hardCap / total
		kitchenWidth *= scale
		bathWidth *= scale
	}

	// Side assignment: the free interval left between the two side
	// allocations must hold the entry, which in turn must contain the door.
	entryQualifies := func(leftW, rightW float32) bool {
		fx0 := -hw + leftW
		fx1 := hw - rightW
		return fx1-fx0 >= p.Entry.MinWidth-Epsilon && doorX >= fx0 && doorX <= fx1
	}

	var leftRooms, rightRooms []string
	kitchenLeft := false
	packedFallback := false
	switch {
	case p.IncludeKitchen && p.IncludeBathroom:
		kitchenLeftOK := entryQualifies(kitchenWidth, bathWidth)
		bathLeftOK := entryQualifies(bathWidth, kitchenWidth)
		switch {
		case kitchenLeftOK && bathLeftOK:
			kitchenLeft = rng.Float64() < 0.5
		case kitchenLeftOK:
			kitchenLeft = true
		case bathLeftOK:
			kitchenLeft = false
		default:
			// No permutation leaves room for the entry at the door; pack
			// both occupants on the side away from the door instead.
			packedFallback = true
		}
		if packedFallback {
			if doorX >= 0 {
				leftRooms = []string{LabelKitchen, LabelBathroom}
			} else {
				rightRooms = []string{LabelBathroom, LabelKitchen}
			}
		} else if kitchenLeft {
			leftRooms = []string{LabelKitchen}
			rightRooms = []string{LabelBathroom}
		} else {
			leftRooms = []string{LabelBathroom}
			rightRooms = []string{LabelKitchen}
		}
	case p.IncludeKitchen || p.IncludeBathroom:
		label := LabelKitchen
		w := kitchenWidth
		if p.IncludeBathroom {
			label = LabelBathroom
			w = bathWidth
		}
		farLeft := doorX >= 0
		coin := rng.Float64() < 0.5
		left := farLeft
		if coin {
			// Flip toward the door side only when the entry still fits there.
			if farLeft && entryQualifies(0, w) {
				left = false
			} else if !farLeft && entryQualifies(w, 0) {
				left = true
			}
		}
		if left {
			leftRooms = []string{label}
		} else {
			rightRooms = []string{label}
		}
	}

	roomWidth := func(label string) float32 {
		if label == LabelKitchen {
			return kitchenWidth
		}
		return bathWidth
	}
	roomDepth := func(label string) float32 {
		if label == LabelKitchen {
			return math32.Min(kitchenDepth, frontStrip)
		}
		return math32.Min(bathDepth, frontStrip)
	}

	rects := make([]RoomRect, 0, 4)

	// Entry goes in the free center interval, centered on the door.
	fx0 := -hw
	for _, label := range leftRooms {
		fx0 += roomWidth(label)
	}
	fx1 := hw
	for _, label := range rightRooms {
		fx1 -= roomWidth(label)
	}
	intervalW := math32.Max(fx1-fx0, minEntryWidth)
	entryWidth := sampleRange(rng, p.Entry.MinWidth, math32.Min(p.Entry.MaxWidth, intervalW))
	entryWidth = clamp32(entryWidth, minEntryWidth, intervalW)
	ex0 := clamp32(doorX-entryWidth/2, fx0, math32.Max(fx0, fx1-entryWidth))
	rects = append(rects, RoomRect{
		Label: LabelEntry,
		X0:    ex0, X1: ex0 + entryWidth,
		Z0: hl - entryDepth, Z1: hl,
	})

	appendSide := func(labels []string, fromLeft bool) {
		x := -hw
		if !fromLeft {
			x = hw
		}
		for _, label := range labels {
			w := roomWidth(label)
			d := roomDepth(label)
			var x0, x1 float32
			if fromLeft {
				x0, x1 = x, x+w
				x += w
			} else {
				x0, x1 = x-w, x
				x -= w
			}
			rects = append(rects, RoomRect{
				Label: label,
				X0:    x0, X1: x1,
				Z0: hl - d, Z1: hl,
			})
		}
	}
	appendSide(leftRooms, true)
	appendSide(rightRooms, false)

	// Keep the advertised output order: Entry, Kitchen, Bathroom, Bedroom.
	orderRects(rects)

	if p.IncludeBedroom {
		maxBedDepth := math32.Max(p.Length-frontStrip-p.LivingMinDepth, hardMinRoomSize)
		bedDepth := sampleRange(rng,
			math32.Max(p.Bedroom.MinDepth, hardMinRoomSize),
			math32.Min(p.Bedroom.MaxDepth, maxBedDepth))
		bedDepth = clamp32(bedDepth, hardMinRoomSize, maxBedDepth)

		maxBedWidth := math32.Max(p.Width-p.LivingMinWidth, hardMinRoomSize)
		bedWidth := sampleRange(rng, p.Bedroom.MinWidth, math32.Min(p.Bedroom.MaxWidth, maxBedWidth))
		bedWidth = clamp32(bedWidth, hardMinRoomSize, maxBedWidth)

		var bedLeft bool
		if p.IncludeBathroom {
			bedLeft = sideHasLabel(leftRooms, LabelBathroom)
		} else {
			bedLeft = rng.Float64() < 0.5
		}

		var bx0, bx1 float32
		if bedLeft {
			bx0, bx1 = -hw, -hw+bedWidth
		} else {
			bx0, bx1 = hw-bedWidth, hw
		}
		rects = append(rects, RoomRect{
			Label: LabelBedroom,
			X0:    bx0, X1: bx1,
			Z0: -hl, Z1: -hl + bedDepth,
		})
	}

	return rects
}

// shrinkToBudget reduces kitchen and bath widths so their sum fits budget,
// taking from the larger first and never going below the configured minimums.
// If the minimums alone exceed the budget the constraint stays violated.
func shrinkToBudget(kitchenW, bathW, kitchenMin, bathMin, budget float32) (float32, float32) {
	over := kitchenW + bathW - budget
	if over <= 0 {
		return kitchenW, bathW
	}
	if kitchenW >= bathW {
		give := math32.Min(over, kitchenW-kitchenMin)
		kitchenW -= give
		over -= give
		if over > 0 {
			bathW -= math32.Min(over, bathW-bathMin)
		}
	} else {
		give := math32.Min(over, bathW-bathMin)
		bathW -= give
		over -= give
		if over > 0 {
			kitchenW -= math32.Min(over, kitchenW-kitchenMin)
		}
	}
	return kitchenW, bathW
}

func sideHasLabel(labels []string, want string) bool {
	for _, l := range labels {
		if l == want {
			return true
		}
	}
	return false
}

// orderRects sorts the front-strip rectangles into Entry, Kitchen, Bathroom
// order; earlier rectangles win point-in-rectangle ties during labeling.
func orderRects(rects []RoomRect) {
	rank := func(label string) int {
		switch label {
		case LabelEntry:
			return 0
		case LabelKitchen:
			return 1
		case LabelBathroom:
			return 2
		}
		return 3
	}
	for i := 1; i < len(rects); i++ {
		for j := i; j > 0 && rank(rects[j].Label) < rank(rects[j-1].Label); j-- {
			rects[j], rects[j-1] = rects[j-1], rects[j]
		}
	}
}
