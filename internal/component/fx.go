package component

import (
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-swarm/internal/core"
)

// FXKind is the kind of a visual effect.
type FXKind int

const (
	FXShield FXKind = iota
	FXBomb
	FXLightning
	FXLaser
	FXSlowField
)

// String returns the effect name.
func (k FXKind) String() string {
	switch k {
	case FXShield:
		return "SHIELD"
	case FXBomb:
		return "BOMB"
	case FXLightning:
		return "LIGHTNING"
	case FXLaser:
		return "LASER"
	case FXSlowField:
		return "SLOW_FIELD"
	default:
		return "UNKNOWN"
	}
}

// Sprite returns the logical sprite path of the effect.
func (k FXKind) Sprite() string {
	switch k {
	case FXShield:
		return SpriteFXShield
	case FXBomb:
		return SpriteFXBomb
	case FXLightning:
		return SpriteFXLightning
	case FXLaser:
		return SpriteFXLaser
	case FXSlowField:
		return SpriteFXSlowField
	default:
		return ""
	}
}

// FXData marks a purely visual, time-boxed entity. Persistent effects
// (the shield) never expire by duration; their owner removes them.
type FXData struct {
	Kind       FXKind
	Follow     donburi.Entity
	HasFollow  bool
	Remaining  float64
	Duration   float64
	Persistent bool

	// Segment effects (laser) extend from the transform position.
	Length    float64
	Direction core.Vec2
}

var FX = donburi.NewComponentType[FXData]()
