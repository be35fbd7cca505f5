package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "swarm.yaml"

// LoadSwarm loads the swarm configuration.
// Search order: customPath -> ~/.swarm/configs/swarm.yaml -> ./configs/swarm.yaml -> embedded default.
// Files are decoded over the defaults, so a partial YAML only overrides the
// keys it names.
func LoadSwarm(customPath string) (SwarmConfig, error) {
	cfg := DefaultSwarmConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath(ConfigFile),
		filepath.Join("configs", ConfigFile),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := DefaultSwarmConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			return fileCfg, nil
		}
	}

	embedded := DefaultSwarmConfig()
	if err := yaml.Unmarshal(defaultSwarmYAML, &embedded); err != nil {
		return cfg, nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".swarm", "configs", filename)
}

// ApplySwarmPreset modifies the config based on a difficulty preset.
func ApplySwarmPreset(cfg *SwarmConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the run pacing beyond the progression curve
	switch preset {
	case DifficultyEasy:
		cfg.PowerUps.SpawnInterval = 4
		cfg.Enemies.BasicSpeed = 2.5
	case DifficultyHard:
		cfg.PowerUps.SpawnInterval = 9
		cfg.Spawning.SpecialChance = 0.35
	}
}
