// Package config provides YAML-based game configuration loading and
// difficulty management for the swarm game.
package config

// SwarmConfig contains all tunables of the swarm game.
type SwarmConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Spawning   SpawningConfig   `yaml:"spawning"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Effects    EffectsConfig    `yaml:"effects"`
	Session    SessionConfig    `yaml:"session"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the playfield in world units (y-up).
type WorldConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	UnitScale float64 `yaml:"unit_scale"` // pixels per world unit on desktop
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Speed         float64 `yaml:"speed"` // units per second at full tilt
	Radius        float64 `yaml:"radius"`
	Scale         float64 `yaml:"scale"`
	FireCooldown  float64 `yaml:"fire_cooldown"`
	LaserLength   float64 `yaml:"laser_length"`
	LaserDuration float64 `yaml:"laser_duration"`
}

// EnemyConfig defines enemy lifecycle parameters.
type EnemyConfig struct {
	BasicSpeed float64 `yaml:"basic_speed"`
	LineSpeed  float64 `yaml:"line_speed"`
	Radius     float64 `yaml:"radius"`
	RestScale  float64 `yaml:"rest_scale"`
	ImmuneTime float64 `yaml:"immune_time"`
	DyingTime  float64 `yaml:"dying_time"`
}

// SpawningConfig defines the spawn director and formation spawner.
type SpawningConfig struct {
	DirectorInterval float64    `yaml:"director_interval"`
	EnemyThreshold   int        `yaml:"enemy_threshold"`
	TaskInterval     float64    `yaml:"task_interval"`
	MinCount         int        `yaml:"min_count"`
	MaxCount         int        `yaml:"max_count"`
	SpecialChance    float64    `yaml:"special_chance"`
	CircleChance     float64    `yaml:"circle_chance"`
	GridChance       float64    `yaml:"grid_chance"`
	Grid             GridConfig `yaml:"grid"`
	Circle           CircleSpan `yaml:"circle"`
	EdgeCount        int        `yaml:"edge_count"` // line enemies per edge
}

// GridConfig is the fixed grid formation layout.
type GridConfig struct {
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	SpacingX float64 `yaml:"spacing_x"`
	SpacingY float64 `yaml:"spacing_y"`
}

// CircleSpan is the random range of a circle formation.
type CircleSpan struct {
	MinCount  int     `yaml:"min_count"`
	MaxCount  int     `yaml:"max_count"`
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
}

// PowerUpConfig defines pickup spawning.
type PowerUpConfig struct {
	SpawnInterval float64 `yaml:"spawn_interval"`
	MaxActive     int     `yaml:"max_active"`
	Lifetime      float64 `yaml:"lifetime"`
	Radius        float64 `yaml:"radius"`
}

// EffectsConfig defines the power-up effect systems.
type EffectsConfig struct {
	BombDuration       float64 `yaml:"bomb_duration"`
	BombRadius         float64 `yaml:"bomb_radius"`
	LightningRange     float64 `yaml:"lightning_range"`
	LightningTargets   int     `yaml:"lightning_targets"`
	LightningFXTime    float64 `yaml:"lightning_fx_time"`
	SlowFieldDuration  float64 `yaml:"slow_field_duration"`
	SlowFieldSpeedPx   float64 `yaml:"slow_field_speed_px"`  // pixels per second, divided by world.unit_scale
	SlowFieldRadiusPx  float64 `yaml:"slow_field_radius_px"` // pixels, divided by world.unit_scale
	SlowDuration       float64 `yaml:"slow_duration"`
	ShieldInvulnerable float64 `yaml:"shield_invulnerable"`
	LaserFXTime        float64 `yaml:"laser_fx_time"`
}

// SessionConfig defines run pacing and scoring.
type SessionConfig struct {
	StartCountdown  float64 `yaml:"start_countdown"`
	DeathScreenTime float64 `yaml:"death_screen_time"`
	KillPoints      int     `yaml:"kill_points"`
	PointsPerSecond int     `yaml:"points_per_second"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Added to enemy speed factor at max difficulty
	ThresholdIncrease int     `yaml:"threshold_increase"` // Extra enemies allowed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string is accepted and
// means "keep the loaded config".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
