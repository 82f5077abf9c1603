package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/procmesh/apartment-engine/internal/geometry"
	"github.com/procmesh/apartment-engine/internal/protocol"
)

// FloorObject is the host-side wrapper around one floor mesh. The mesh is
// replaced on every regeneration; the material attachment survives for as
// long as a room with the same label keeps existing.
type FloorObject struct {
	Label    string
	Material string
	Mesh     *geometry.MeshBuffer
}

// SceneState owns the current parameters, the latest generation result and
// the floor object registry keyed by lower-cased room label.
type SceneState struct {
	lock    sync.Mutex
	params  geometry.Params
	result  *geometry.Result
	floors  map[string]*FloorObject
	order   []string
	version uint64
}

func NewSceneState(p geometry.Params) (*SceneState, error) {
	s := &SceneState{floors: make(map[string]*FloorObject)}
	if err := s.Regenerate(p); err != nil {
		return nil, err
	}
	return s, nil
}

// Params returns a copy of the parameters the current scene was built from.
func (s *SceneState) Params() geometry.Params {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.params
}

// Regenerate runs a full generation pass with the given parameters and
// reconciles the floor registry against the new result. On failure the
// previous scene stays in place.
func (s *SceneState) Regenerate(p geometry.Params) error {
	result, err := geometry.Generate(p)
	if err != nil {
		return &EngineError{Code: "generation_failed", Message: err.Error()}
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	s.params = p
	s.result = result
	s.version++
	s.reconcileFloors(result)
	return nil
}

// reconcileFloors diffs the registry against the labels of a fresh result:
// existing objects get the new mesh and keep their material, new labels get
// new objects, and objects whose label disappeared are dropped. Caller holds
// the lock.
func (s *SceneState) reconcileFloors(result *geometry.Result) {
	seen := make(map[string]bool, len(result.FloorLabels))
	order := make([]string, 0, len(result.FloorLabels))
	for _, label := range result.FloorLabels {
		key := strings.ToLower(label)
		seen[key] = true
		order = append(order, key)
		if obj, ok := s.floors[key]; ok {
			obj.Label = label
			obj.Mesh = result.Floors[label]
			continue
		}
		s.floors[key] = &FloorObject{Label: label, Mesh: result.Floors[label]}
	}
	for key := range s.floors {
		if !seen[key] {
			delete(s.floors, key)
		}
	}
	s.order = order
}

// SetFloorMaterial attaches a material name to the floor object for label.
func (s *SceneState) SetFloorMaterial(label, material string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	obj, ok := s.floors[strings.ToLower(label)]
	if !ok {
		return &EngineError{Code: "unknown_floor", Message: fmt.Sprintf("no floor labeled %q", label)}
	}
	obj.Material = material
	return nil
}

// Snapshot assembles the wire-form scene from the current state.
func (s *SceneState) Snapshot() protocol.SceneSnapshot {
	s.lock.Lock()
	defer s.lock.Unlock()

	floors := make([]protocol.FloorLite, 0, len(s.order))
	for _, key := range s.order {
		obj := s.floors[key]
		floors = append(floors, protocol.FloorLite{
			Label:    obj.Label,
			Material: obj.Material,
			Mesh:     meshLite(obj.Mesh),
		})
	}

	rooms := make([]protocol.RoomLite, 0, len(s.result.Rooms))
	for _, r := range s.result.Rooms {
		rooms = append(rooms, protocol.RoomLite{Label: r.Label, X0: r.X0, X1: r.X1, Z0: r.Z0, Z1: r.Z1})
	}

	return protocol.SceneSnapshot{
		SceneID:         fmt.Sprintf("scene-%d", s.version),
		Parameters:      parametersLite(s.params),
		DoorX:           s.result.DoorX,
		Shell:           meshLite(s.result.Shell),
		Floors:          floors,
		Rooms:           rooms,
		ProtocolVersion: "v0",
	}
}

func meshLite(m *geometry.MeshBuffer) protocol.MeshLite {
	return protocol.MeshLite{
		Positions: m.Positions,
		Indices:   m.Indices,
		UVs:       m.UVs,
	}
}

func parametersLite(p geometry.Params) protocol.ParametersLite {
	return protocol.ParametersLite{
		Width:             p.Width,
		Length:            p.Length,
		Height:            p.Height,
		WallThickness:     p.WallThickness,
		DoorWidth:         p.DoorWidth,
		DoorHeight:        p.DoorHeight,
		DoorOffset:        p.DoorOffset,
		CutFrontDoor:      p.CutFrontDoor,
		PartitionInterior: p.PartitionInterior,
		EntryOpenToLiving: p.EntryOpenToLiving,
		Seed:              p.Seed,
	}
}
