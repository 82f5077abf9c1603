package export

import (
	"strings"
	"testing"

	"github.com/procmesh/apartment-engine/internal/geometry"
)

func TestWriteOBJ_SingleQuad(t *testing.T) {
	m := geometry.NewMeshBuffer()
	m.AddQuad(
		geometry.V3(0, 0, 0),
		geometry.V3(2, 0, 0),
		geometry.V3(2, 0, 2),
		geometry.V3(0, 0, 2),
		geometry.V3(0, 1, 0))

	var sb strings.Builder
	if err := WriteOBJ(&sb, "floor", m); err != nil {
		t.Fatalf("WriteOBJ failed: %v", err)
	}
	out := sb.String()

	if !strings.HasPrefix(out, "o floor\n") {
		t.Errorf("missing object header:\n%s", out)
	}
	if got := strings.Count(out, "\nv "); got != 4 {
		t.Errorf("expected 4 vertex lines, got %d", got)
	}
	if got := strings.Count(out, "\nvt "); got != 4 {
		t.Errorf("expected 4 uv lines, got %d", got)
	}
	if got := strings.Count(out, "\nf "); got != 2 {
		t.Errorf("expected 2 face lines, got %d", got)
	}
	if strings.Contains(out, " 0/") {
		t.Error("OBJ indices must be one-based")
	}
}

func TestWriteOBJ_Deterministic(t *testing.T) {
	m := geometry.NewMeshBuffer()
	m.AddQuad(
		geometry.V3(0, 0, 0),
		geometry.V3(1, 0, 0),
		geometry.V3(1, 1, 0),
		geometry.V3(0, 1, 0),
		geometry.V3(0, 0, -1))

	var a, b strings.Builder
	if err := WriteOBJ(&a, "wall", m); err != nil {
		t.Fatal(err)
	}
	if err := WriteOBJ(&b, "wall", m); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("OBJ output must be deterministic for identical buffers")
	}
}

func TestWriteOBJ_EmptyMesh(t *testing.T) {
	var sb strings.Builder
	if err := WriteOBJ(&sb, "empty", geometry.NewMeshBuffer()); err != nil {
		t.Fatalf("WriteOBJ failed on empty mesh: %v", err)
	}
	if sb.String() != "o empty\n" {
		t.Errorf("unexpected output for empty mesh: %q", sb.String())
	}
}
