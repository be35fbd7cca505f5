package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded SwarmConfig
	if err := yaml.Unmarshal(defaultSwarmYAML, &embedded); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if embedded != DefaultSwarmConfig() {
		t.Errorf("embedded defaults drifted from DefaultSwarmConfig():\n%+v\n%+v", embedded, DefaultSwarmConfig())
	}
}

func TestLoadSwarmCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("spawning:\n  enemy_threshold: 7\nworld:\n  width: 50\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadSwarm(path)
	if err != nil {
		t.Fatalf("LoadSwarm() failed: %v", err)
	}
	if cfg.Spawning.EnemyThreshold != 7 {
		t.Errorf("EnemyThreshold = %d, expected 7", cfg.Spawning.EnemyThreshold)
	}
	if cfg.World.Width != 50 {
		t.Errorf("World.Width = %f, expected 50", cfg.World.Width)
	}
	// Untouched keys keep their defaults
	if cfg.World.Height != 20 {
		t.Errorf("World.Height = %f, expected default 20", cfg.World.Height)
	}
	if cfg.Effects.BombRadius != 5 {
		t.Errorf("Effects.BombRadius = %f, expected default 5", cfg.Effects.BombRadius)
	}
}

func TestLoadSwarmSlowFieldPixelKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("effects:\n  slow_field_speed_px: 64\n  slow_field_radius_px: 16\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadSwarm(path)
	if err != nil {
		t.Fatalf("LoadSwarm() failed: %v", err)
	}
	if cfg.Effects.SlowFieldSpeedPx != 64 || cfg.Effects.SlowFieldRadiusPx != 16 {
		t.Errorf("slow field = %v px/s, %v px; expected 64, 16",
			cfg.Effects.SlowFieldSpeedPx, cfg.Effects.SlowFieldRadiusPx)
	}
}

func TestLoadSwarmMissingCustomPath(t *testing.T) {
	if _, err := LoadSwarm(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadSwarm() with a missing custom path should fail")
	}
}

func TestLoadSwarmBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("world: [oops"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadSwarm(path); err == nil {
		t.Error("LoadSwarm() with malformed YAML should fail")
	}
}

func TestApplySwarmPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		enabled      bool
		initialLevel float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSwarmConfig()
			ApplySwarmPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initialLevel {
				t.Errorf("InitialLevel = %f, expected %f", cfg.Difficulty.InitialLevel, tc.initialLevel)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if _, ok := ParsePreset("hard"); !ok {
		t.Error("hard should be a valid preset")
	}
	if _, ok := ParsePreset(""); !ok {
		t.Error("empty preset should be accepted")
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should be rejected")
	}
}
