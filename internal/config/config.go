package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/procmesh/apartment-engine/internal/geometry"
)

// minDimension is the floor applied to every linear dimension before it
// reaches the generator, so a sloppy config can never produce degenerate
// geometry.
const minDimension = 0.01

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Apartment ApartmentConfig `yaml:"apartment"`
}

type ServerConfig struct {
	ListenAddress string `yaml:"listen_address"`
	StaticDir     string `yaml:"static_dir"`
}

type ApartmentConfig struct {
	Width                 float32 `yaml:"width"`
	Length                float32 `yaml:"length"`
	Height                float32 `yaml:"height"`
	WallThickness         float32 `yaml:"wall_thickness"`
	InteriorWallThickness float32 `yaml:"interior_wall_thickness"`

	Door  DoorConfig  `yaml:"door"`
	Rooms RoomsConfig `yaml:"rooms"`

	LivingMinWidth float32 `yaml:"living_min_width"`
	LivingMinDepth float32 `yaml:"living_min_depth"`

	PartitionInterior bool `yaml:"partition_interior"`
	EntryOpenToLiving bool `yaml:"entry_open_to_living"`
	FloorPerRoom      bool `yaml:"floor_per_room"`
	DoubleSidedFloors bool `yaml:"double_sided_floors"`

	Seed int64 `yaml:"seed"`
}

type DoorConfig struct {
	Cut    bool    `yaml:"cut"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
	Offset float32 `yaml:"offset"`
}

type RoomsConfig struct {
	Entry    SpanConfig `yaml:"entry"`
	Kitchen  RoomConfig `yaml:"kitchen"`
	Bathroom RoomConfig `yaml:"bathroom"`
	Bedroom  RoomConfig `yaml:"bedroom"`
}

type RoomConfig struct {
	Include bool       `yaml:"include"`
	Span    SpanConfig `yaml:",inline"`
}

type SpanConfig struct {
	MinWidth float32 `yaml:"min_width"`
	MaxWidth float32 `yaml:"max_width"`
	MinDepth float32 `yaml:"min_depth"`
	MaxDepth float32 `yaml:"max_depth"`
}

// Load reads configuration from a YAML file. An empty path returns defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddress: ":8080",
			StaticDir:     "internal/web/static",
		},
		Apartment: ApartmentConfig{
			Width:                 6,
			Length:                10,
			Height:                3,
			WallThickness:         0.2,
			InteriorWallThickness: 0.1,
			Door: DoorConfig{
				Cut:    true,
				Width:  0.9,
				Height: 2.1,
				Offset: 0,
			},
			Rooms: RoomsConfig{
				Entry: SpanConfig{MinWidth: 1.2, MaxWidth: 2.5, MinDepth: 1.2, MaxDepth: 2.5},
				Kitchen: RoomConfig{
					Include: true,
					Span:    SpanConfig{MinWidth: 1.8, MaxWidth: 3, MinDepth: 1.8, MaxDepth: 3},
				},
				Bathroom: RoomConfig{
					Include: true,
					Span:    SpanConfig{MinWidth: 1.5, MaxWidth: 2.4, MinDepth: 1.5, MaxDepth: 2.4},
				},
				Bedroom: RoomConfig{
					Include: true,
					Span:    SpanConfig{MinWidth: 2.5, MaxWidth: 4, MinDepth: 2.5, MaxDepth: 4},
				},
			},
			LivingMinWidth:    2,
			LivingMinDepth:    2.5,
			PartitionInterior: true,
			EntryOpenToLiving: true,
			FloorPerRoom:      true,
			DoubleSidedFloors: false,
			Seed:              12345,
		},
	}
}

func (c *Config) Validate() error {
	if c.Server.ListenAddress == "" {
		return fmt.Errorf("server.listen_address must not be empty")
	}
	a := &c.Apartment
	if a.Width <= 0 || a.Length <= 0 || a.Height <= 0 {
		return fmt.Errorf("apartment dimensions must be positive, got %gx%gx%g", a.Width, a.Length, a.Height)
	}
	if a.WallThickness <= 0 {
		return fmt.Errorf("apartment.wall_thickness must be positive, got %g", a.WallThickness)
	}
	if a.PartitionInterior && a.InteriorWallThickness <= 0 {
		return fmt.Errorf("apartment.interior_wall_thickness must be positive, got %g", a.InteriorWallThickness)
	}
	return nil
}

func clampDim(v float32) float32 {
	if v < minDimension {
		return minDimension
	}
	return v
}

func (s SpanConfig) span() geometry.RoomSpan {
	return geometry.RoomSpan{
		MinWidth: clampDim(s.MinWidth),
		MaxWidth: clampDim(s.MaxWidth),
		MinDepth: clampDim(s.MinDepth),
		MaxDepth: clampDim(s.MaxDepth),
	}
}

// Params converts the apartment section into the generator's frozen input
// record, clamping every dimension to the host minimum on the way.
func (a ApartmentConfig) Params() geometry.Params {
	return geometry.Params{
		Width:                 clampDim(a.Width),
		Length:                clampDim(a.Length),
		Height:                clampDim(a.Height),
		WallThickness:         clampDim(a.WallThickness),
		InteriorWallThickness: clampDim(a.InteriorWallThickness),
		CutFrontDoor:          a.Door.Cut,
		DoorWidth:             clampDim(a.Door.Width),
		DoorHeight:            clampDim(a.Door.Height),
		DoorOffset:            a.Door.Offset,
		PartitionInterior:     a.PartitionInterior,
		IncludeKitchen:        a.Rooms.Kitchen.Include,
		IncludeBathroom:       a.Rooms.Bathroom.Include,
		IncludeBedroom:        a.Rooms.Bedroom.Include,
		Entry:                 a.Rooms.Entry.span(),
		Kitchen:               a.Rooms.Kitchen.Span.span(),
		Bathroom:              a.Rooms.Bathroom.Span.span(),
		Bedroom:               a.Rooms.Bedroom.Span.span(),
		LivingMinWidth:        clampDim(a.LivingMinWidth),
		LivingMinDepth:        clampDim(a.LivingMinDepth),
		EntryOpenToLiving:     a.EntryOpenToLiving,
		FloorPerRoom:          a.FloorPerRoom,
		DoubleSidedFloors:     a.DoubleSidedFloors,
		Seed:                  a.Seed,
	}
}
