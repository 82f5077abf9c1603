package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/procmesh/apartment-engine/internal/config"
	"github.com/procmesh/apartment-engine/internal/export"
	"github.com/procmesh/apartment-engine/internal/geometry"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (empty for defaults)")
	seed := flag.Int64("seed", 0, "override the configured seed")
	outDir := flag.String("out", "out", "output directory for OBJ files")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	params := cfg.Apartment.Params()
	if isFlagSet("seed") {
		params.Seed = *seed
	}

	result, err := geometry.Generate(params)
	if err != nil {
		log.Fatalf("generation failed: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	if err := writeMesh(*outDir, "shell", result.Shell); err != nil {
		log.Fatalf("failed to write shell: %v", err)
	}
	for _, label := range result.FloorLabels {
		name := "floor_" + strings.ToLower(label)
		if err := writeMesh(*outDir, name, result.Floors[label]); err != nil {
			log.Fatalf("failed to write %s: %v", name, err)
		}
	}

	log.Printf("wrote shell and %d floors to %s (seed %d)", len(result.FloorLabels), *outDir, params.Seed)
	for _, room := range result.Rooms {
		log.Printf("  %s: %.2f x %.2f at x=[%.2f,%.2f] z=[%.2f,%.2f]",
			room.Label, room.Width(), room.Depth(), room.X0, room.X1, room.Z0, room.Z1)
	}
}

func writeMesh(dir, name string, m *geometry.MeshBuffer) error {
	path := filepath.Join(dir, name+".obj")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := export.WriteOBJ(f, name, m); err != nil {
		return err
	}
	return f.Close()
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
