package protocol

import "encoding/json"

type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// RequestRegenerate re-runs the generator, optionally with a new seed; a nil
// seed keeps the current one.
type RequestRegenerate struct {
	Seed *int64 `json:"seed,omitempty"`
}

// RequestSetParameters updates any subset of the generation parameters and
// triggers a regeneration. Nil fields keep their current values.
type RequestSetParameters struct {
	Width             *float32 `json:"width,omitempty"`
	Length            *float32 `json:"length,omitempty"`
	Height            *float32 `json:"height,omitempty"`
	WallThickness     *float32 `json:"wallThickness,omitempty"`
	DoorWidth         *float32 `json:"doorWidth,omitempty"`
	DoorHeight        *float32 `json:"doorHeight,omitempty"`
	DoorOffset        *float32 `json:"doorOffset,omitempty"`
	CutFrontDoor      *bool    `json:"cutFrontDoor,omitempty"`
	PartitionInterior *bool    `json:"partitionInterior,omitempty"`
	EntryOpenToLiving *bool    `json:"entryOpenToLiving,omitempty"`
	Seed              *int64   `json:"seed,omitempty"`
}

// RequestSetFloorMaterial attaches a material name to a floor object. The
// attachment survives regenerations as long as the label keeps existing.
type RequestSetFloorMaterial struct {
	Label    string `json:"label"`
	Material string `json:"material"`
}
