package protocol

type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	EventID  int64  `json:"eventId"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

// SceneRegenerated carries the complete regenerated scene. Buffers are always
// rebuilt from scratch, so there is no incremental mesh patching.
type SceneRegenerated struct {
	Snapshot SceneSnapshot `json:"snapshot"`
}

type FloorMaterialChanged struct {
	Label    string `json:"label"`
	Material string `json:"material"`
}

type GenerationFailed struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
