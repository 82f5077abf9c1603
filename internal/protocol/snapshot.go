package protocol

// MeshLite is a renderable triangle mesh in wire form: flat position, index
// and UV buffers, matching the generator's output layout one to one.
type MeshLite struct {
	Positions []float32 `json:"positions"`
	Indices   []uint32  `json:"indices"`
	UVs       []float32 `json:"uvs"`
}

type RoomLite struct {
	Label string  `json:"label"`
	X0    float32 `json:"x0"`
	X1    float32 `json:"x1"`
	Z0    float32 `json:"z0"`
	Z1    float32 `json:"z1"`
}

type FloorLite struct {
	Label    string   `json:"label"`
	Material string   `json:"material,omitempty"`
	Mesh     MeshLite `json:"mesh"`
}

// ParametersLite echoes the generation parameters a snapshot was built from,
// so clients can populate their controls without a second round trip.
type ParametersLite struct {
	Width             float32 `json:"width"`
	Length            float32 `json:"length"`
	Height            float32 `json:"height"`
	WallThickness     float32 `json:"wallThickness"`
	DoorWidth         float32 `json:"doorWidth"`
	DoorHeight        float32 `json:"doorHeight"`
	DoorOffset        float32 `json:"doorOffset"`
	CutFrontDoor      bool    `json:"cutFrontDoor"`
	PartitionInterior bool    `json:"partitionInterior"`
	EntryOpenToLiving bool    `json:"entryOpenToLiving"`
	Seed              int64   `json:"seed"`
}

// SceneSnapshot is the full generated scene as sent to a newly connected
// client and re-broadcast after every regeneration.
type SceneSnapshot struct {
	SceneID         string         `json:"sceneId"`
	Parameters      ParametersLite `json:"parameters"`
	DoorX           float32        `json:"doorX"`
	Shell           MeshLite       `json:"shell"`
	Floors          []FloorLite    `json:"floors"`
	Rooms           []RoomLite     `json:"rooms"`
	ProtocolVersion string         `json:"protocolVersion"`
}
