package main

import (
	"encoding/json"

	"github.com/procmesh/apartment-engine/internal/geometry"
	"github.com/procmesh/apartment-engine/internal/protocol"
)

// Handlers uses dependency injection for better testability
type Handlers struct {
	scene       *SceneState
	broadcaster Broadcaster
	logger      Logger
}

func NewHandlers(scene *SceneState, broadcaster Broadcaster, logger Logger) *Handlers {
	return &Handlers{
		scene:       scene,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

func (h *Handlers) HandleRequestRegenerate(req protocol.RequestRegenerate) error {
	p := h.scene.Params()
	if req.Seed != nil {
		p.Seed = *req.Seed
	}
	return h.regenerate(p)
}

func (h *Handlers) HandleRequestSetParameters(req protocol.RequestSetParameters) error {
	p := h.scene.Params()
	if req.Width != nil {
		p.Width = *req.Width
	}
	if req.Length != nil {
		p.Length = *req.Length
	}
	if req.Height != nil {
		p.Height = *req.Height
	}
	if req.WallThickness != nil {
		p.WallThickness = *req.WallThickness
	}
	if req.DoorWidth != nil {
		p.DoorWidth = *req.DoorWidth
	}
	if req.DoorHeight != nil {
		p.DoorHeight = *req.DoorHeight
	}
	if req.DoorOffset != nil {
		p.DoorOffset = *req.DoorOffset
	}
	if req.CutFrontDoor != nil {
		p.CutFrontDoor = *req.CutFrontDoor
	}
	if req.PartitionInterior != nil {
		p.PartitionInterior = *req.PartitionInterior
	}
	if req.EntryOpenToLiving != nil {
		p.EntryOpenToLiving = *req.EntryOpenToLiving
	}
	if req.Seed != nil {
		p.Seed = *req.Seed
	}
	return h.regenerate(p)
}

func (h *Handlers) regenerate(p geometry.Params) error {
	if err := h.scene.Regenerate(p); err != nil {
		h.logger.Printf("regeneration failed: %v", err)
		code, message := "generation_failed", err.Error()
		if ee, ok := err.(*EngineError); ok {
			code, message = ee.Code, ee.Message
		}
		h.broadcaster.BroadcastEvent("GenerationFailed", protocol.GenerationFailed{Code: code, Message: message})
		return err
	}
	snap := h.scene.Snapshot()
	h.logger.Printf("scene %s regenerated: %d floors, %d rooms, seed %d",
		snap.SceneID, len(snap.Floors), len(snap.Rooms), snap.Parameters.Seed)
	h.broadcaster.BroadcastEvent("SceneRegenerated", protocol.SceneRegenerated{Snapshot: snap})
	return nil
}

func (h *Handlers) HandleRequestSetFloorMaterial(req protocol.RequestSetFloorMaterial) error {
	if err := h.scene.SetFloorMaterial(req.Label, req.Material); err != nil {
		h.logger.Printf("set floor material failed: %v", err)
		return err
	}
	h.broadcaster.BroadcastEvent("FloorMaterialChanged", protocol.FloorMaterialChanged{
		Label:    req.Label,
		Material: req.Material,
	})
	return nil
}

func (h *Handlers) HandleWebSocketMessage(data []byte) error {
	var env protocol.IntentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	switch env.Type {
	case "RequestRegenerate":
		var req protocol.RequestRegenerate
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return err
		}
		return h.HandleRequestRegenerate(req)

	case "RequestSetParameters":
		var req protocol.RequestSetParameters
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return err
		}
		return h.HandleRequestSetParameters(req)

	case "RequestSetFloorMaterial":
		var req protocol.RequestSetFloorMaterial
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return err
		}
		return h.HandleRequestSetFloorMaterial(req)

	default:
		h.logger.Printf("Unknown message type: %s", env.Type)
		return nil
	}
}
