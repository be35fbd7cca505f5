package component

import (
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-swarm/internal/core"
)

// PowerUpKind is the closed set of pickups.
type PowerUpKind int

const (
	PowerUpShield PowerUpKind = iota
	PowerUpBomb
	PowerUpLightning
	PowerUpSlowField
	PowerUpLaser3x
)

// String returns the pickup name.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpShield:
		return "SHIELD"
	case PowerUpBomb:
		return "BOMB"
	case PowerUpLightning:
		return "LIGHTNING"
	case PowerUpSlowField:
		return "SLOW_FIELD"
	case PowerUpLaser3x:
		return "LASER_3X"
	default:
		return "UNKNOWN"
	}
}

// Sprite returns the logical sprite path of the pickup.
func (k PowerUpKind) Sprite() string {
	switch k {
	case PowerUpShield:
		return SpriteShield
	case PowerUpBomb:
		return SpriteBomb
	case PowerUpLightning:
		return SpriteLightning
	case PowerUpSlowField:
		return SpriteSlowField
	case PowerUpLaser3x:
		return SpriteLaser
	default:
		return ""
	}
}

// PowerUpData is a collectible lying in the arena.
type PowerUpData struct {
	Kind     PowerUpKind
	Lifetime float64
}

var PowerUp = donburi.NewComponentType[PowerUpData]()

// BombEntry is an active bomb blast with a fixed center.
type BombEntry struct {
	Center   core.Vec2
	TimeLeft float64
	Radius   float64
}

// LaserEntry is an active laser anchored to the player.
type LaserEntry struct {
	Start     core.Vec2
	Direction core.Vec2
	Length    float64
	TimeLeft  float64
}

// LightningEntry is a pending lightning strike request.
type LightningEntry struct {
	Origin core.Vec2
}

// SlowFieldEntry is a moving slow field.
type SlowFieldEntry struct {
	Position  core.Vec2
	Direction core.Vec2
	TimeLeft  float64
}

// PowerUpStateData lives on the player. Each queue entry carries its own
// countdown and is removed once it reaches zero.
type PowerUpStateData struct {
	HasShield       bool
	Invulnerability float64
	Bombs           []BombEntry
	Lasers          []LaserEntry
	Lightning       []LightningEntry
	SlowFields      []SlowFieldEntry
}

var PowerUpState = donburi.NewComponentType[PowerUpStateData]()
