package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotationDegQuat(t *testing.T) {
	tests := []struct {
		name     string
		rotation RotationDeg
		expected mgl64.Quat
	}{
		{"none", RotationDeg{}, mgl64.QuatIdent()},
		{"x", RotationDeg{X: 90}, mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{1, 0, 0})},
		{"y", RotationDeg{Y: -45}, mgl64.QuatRotate(-math.Pi/4, mgl64.Vec3{0, 1, 0})},
		{"z", RotationDeg{Z: 180}, mgl64.QuatRotate(math.Pi, mgl64.Vec3{0, 0, 1})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.rotation.Quat()
			assert.InDelta(t, 1.0, math.Abs(q.Dot(tt.expected)), 1e-9)
		})
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{"entities": [{"name": "a", "start": {"position": [1, 2, 3]}}]}`))

	require.NoError(t, err)
	assert.Equal(t, defaultFrames, cfg.Frames)
	assert.Equal(t, 1, cfg.Workers)
	require.Len(t, cfg.Entities, 1)

	tr := cfg.Entities[0].Start.Transform()
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, tr.Position)
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, tr.Scale)
	assert.Equal(t, mgl64.QuatIdent(), tr.Rotation)
	assert.Nil(t, cfg.Entities[0].End)
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"invalid json", `{"entities": [`},
		{"negative frames", `{"frames": -1, "entities": []}`},
		{"missing name", `{"entities": [{"start": {}}]}`},
		{"duplicate name", `{"entities": [{"name": "a"}, {"name": "a"}]}`},
		{"unknown parent", `{"entities": [{"name": "a", "parent": "b"}]}`},
		{"parent declared after child", `{"entities": [{"name": "a", "parent": "b"}, {"name": "b"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.json))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("scene.json")

	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Frames)
	assert.Len(t, cfg.Entities, 5)
	assert.Equal(t, "Quat Sphere", cfg.Entities[3].Parent)
	require.NotNil(t, cfg.Entities[3].Start.Scale)
	assert.Equal(t, mgl64.Vec3{0.25, 0.25, 0.25}, *cfg.Entities[3].Start.Scale)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}
