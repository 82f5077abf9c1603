package geometry

// Room labels form a closed set; anything the solver does not cover becomes
// Living at grid-labeling time.
const (
	LabelEntry    = "Entry"
	LabelKitchen  = "Kitchen"
	LabelBathroom = "Bathroom"
	LabelBedroom  = "Bedroom"
	LabelLiving   = "Living"
)

// RoomSpan bounds the sampled size of one room.
type RoomSpan struct {
	MinWidth float32
	MaxWidth float32
	MinDepth float32
	MaxDepth float32
}

// Params is the frozen input record for one generation pass. All dimensions
// share one linear unit; the host validates them as positive before calling.
type Params struct {
	Width  float32
	Length float32
	Height float32

	WallThickness         float32
	InteriorWallThickness float32

	CutFrontDoor bool
	DoorWidth    float32
	DoorHeight   float32
	DoorOffset   float32

	PartitionInterior bool
	IncludeKitchen    bool
	IncludeBathroom   bool
	IncludeBedroom    bool

	Entry    RoomSpan
	Kitchen  RoomSpan
	Bathroom RoomSpan
	Bedroom  RoomSpan

	LivingMinWidth float32
	LivingMinDepth float32

	EntryOpenToLiving bool
	FloorPerRoom      bool
	DoubleSidedFloors bool

	Seed int64
}

// RoomRect is an axis-aligned labeled rectangle in the floor plane,
// constructed once per generation pass and immutable thereafter.
type RoomRect struct {
	Label string  `json:"label"`
	X0    float32 `json:"x0"`
	X1    float32 `json:"x1"`
	Z0    float32 `json:"z0"`
	Z1    float32 `json:"z1"`
}

func (r RoomRect) Width() float32 {
	return r.X1 - r.X0
}

func (r RoomRect) Depth() float32 {
	return r.Z1 - r.Z0
}

// Contains reports whether the point (x,z) lies inside the rectangle.
func (r RoomRect) Contains(x, z float32) bool {
	return x >= r.X0 && x <= r.X1 && z >= r.Z0 && z <= r.Z1
}

// Overlaps reports area overlap with other; touching edges do not count.
func (r RoomRect) Overlaps(other RoomRect) bool {
	return r.X0 < other.X1-Epsilon && other.X0 < r.X1-Epsilon &&
		r.Z0 < other.Z1-Epsilon && other.Z0 < r.Z1-Epsilon
}
