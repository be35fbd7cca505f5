package config

import (
	_ "embed"
)

//go:embed defaults/swarm.yaml
var defaultSwarmYAML []byte

// DefaultSwarmConfig returns the built-in configuration. It mirrors
// defaults/swarm.yaml and is the last fallback of LoadSwarm.
func DefaultSwarmConfig() SwarmConfig {
	return SwarmConfig{
		World: WorldConfig{
			Width:     35,
			Height:    20,
			UnitScale: 32,
		},
		Player: PlayerConfig{
			Speed:         12,
			Radius:        0.5,
			Scale:         1,
			FireCooldown:  0.35,
			LaserLength:   12,
			LaserDuration: 0.5,
		},
		Enemies: EnemyConfig{
			BasicSpeed: 3,
			LineSpeed:  4,
			Radius:     0.6,
			RestScale:  0.75,
			ImmuneTime: 2,
			DyingTime:  2,
		},
		Spawning: SpawningConfig{
			DirectorInterval: 2,
			EnemyThreshold:   20,
			TaskInterval:     0.1,
			MinCount:         10,
			MaxCount:         20,
			SpecialChance:    0.2,
			CircleChance:     0.1,
			GridChance:       0.1,
			Grid: GridConfig{
				Rows:     3,
				Cols:     6,
				SpacingX: 3.8,
				SpacingY: 4.0,
			},
			Circle: CircleSpan{
				MinCount:  8,
				MaxCount:  15,
				MinRadius: 5,
				MaxRadius: 7,
			},
			EdgeCount: 6,
		},
		PowerUps: PowerUpConfig{
			SpawnInterval: 6,
			MaxActive:     3,
			Lifetime:      10,
			Radius:        0.5,
		},
		Effects: EffectsConfig{
			BombDuration:       3,
			BombRadius:         5,
			LightningRange:     6,
			LightningTargets:   3,
			LightningFXTime:    0.4,
			SlowFieldDuration:  5,
			SlowFieldSpeedPx:   100,
			SlowFieldRadiusPx:  30,
			SlowDuration:       5,
			ShieldInvulnerable: 0.5,
			LaserFXTime:        0.05,
		},
		Session: SessionConfig{
			StartCountdown:  3,
			DeathScreenTime: 2.5,
			KillPoints:      10,
			PointsPerSecond: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 300,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				ThresholdIncrease: 20,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `swarm settings --dump`.
func DefaultYAML() []byte {
	return defaultSwarmYAML
}
