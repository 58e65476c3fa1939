package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/akmonengine/affine"
	"github.com/go-gl/mathgl/mgl64"
)

const defaultFrames = 60

// RotationDeg is an Euler rotation in degrees, applied in XYZ order (friendlier than quaternions).
type RotationDeg struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (r RotationDeg) Quat() mgl64.Quat {
	return mgl64.AnglesToQuat(r.X*math.Pi/180, r.Y*math.Pi/180, r.Z*math.Pi/180, mgl64.XYZ)
}

type KeyframeCfg struct {
	Position mgl64.Vec3  `json:"position"`
	Rotation RotationDeg `json:"rotationDeg"`
	// Scale defaults to (1,1,1) when omitted
	Scale *mgl64.Vec3 `json:"scale,omitempty"`
}

func (k KeyframeCfg) Transform() affine.Transform {
	scale := mgl64.Vec3{1, 1, 1}
	if k.Scale != nil {
		scale = *k.Scale
	}

	return affine.New(k.Position, k.Rotation.Quat(), scale)
}

type EntityCfg struct {
	Name   string      `json:"name"`
	Parent string      `json:"parent,omitempty"`
	Start  KeyframeCfg `json:"start"`
	// End is the keyframe reached on the last frame; the entity stays still when omitted
	End *KeyframeCfg `json:"end,omitempty"`
	// HalfExtents of the local bounding box, defaults to a unit sphere's box
	HalfExtents *mgl64.Vec3 `json:"halfExtents,omitempty"`
}

type Config struct {
	Frames   int         `json:"frames,omitempty"`
	Workers  int         `json:"workers,omitempty"`
	Entities []EntityCfg `json:"entities"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene config: %w", err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("scene config %s: %w", path, err)
	}

	return cfg, nil
}

// ParseConfig decodes and validates a scene config.
// A parent must be declared before its children.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}

	if cfg.Frames < 0 {
		return nil, fmt.Errorf("invalid frame count: %d", cfg.Frames)
	}
	if cfg.Frames == 0 {
		cfg.Frames = defaultFrames
	}
	cfg.Workers = max(affine.DEFAULT_WORKERS, cfg.Workers)

	seen := make(map[string]bool, len(cfg.Entities))
	for i, e := range cfg.Entities {
		if e.Name == "" {
			return nil, fmt.Errorf("entity %d has no name", i)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("duplicate entity name %q", e.Name)
		}
		if e.Parent != "" && !seen[e.Parent] {
			return nil, fmt.Errorf("entity %q: parent %q must be declared before it", e.Name, e.Parent)
		}
		seen[e.Name] = true
	}

	return &cfg, nil
}
