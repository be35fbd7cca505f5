package component

import (
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-swarm/internal/core"
)

// TransformData places an entity in world space. Position is the center.
// Scale drives both the drawn size and the collision radius.
type TransformData struct {
	Position core.Vec2
	Rotation float64
	Scale    core.Vec2
}

var Transform = donburi.NewComponentType[TransformData]()

// VelocityData is integrated by the physics system each tick.
type VelocityData struct {
	Velocity     core.Vec2
	Acceleration core.Vec2
}

var Velocity = donburi.NewComponentType[VelocityData]()

// ColliderData is a circle collider. Only circle-circle tests exist.
type ColliderData struct {
	Radius float64
}

var Collider = donburi.NewComponentType[ColliderData]()

// EffectiveRadius is the collider radius after the transform's scale.
func EffectiveRadius(c *ColliderData, t *TransformData) float64 {
	return c.Radius * t.Scale.X
}

// SpriteData references a drawable by logical asset path. The render layer
// resolves the path; the simulation never draws.
type SpriteData struct {
	Path string
}

var Sprite = donburi.NewComponentType[SpriteData]()

// Logical sprite paths.
const (
	SpritePlayer      = "sprites/player.png"
	SpriteEnemy       = "sprites/enemy.png"
	SpriteLineEnemy   = "sprites/enemy_line.png"
	SpriteShield      = "sprites/powerup_shield.png"
	SpriteBomb        = "sprites/powerup_bomb.png"
	SpriteLightning   = "sprites/powerup_lightning.png"
	SpriteSlowField   = "sprites/powerup_slow.png"
	SpriteLaser       = "sprites/powerup_laser.png"
	SpriteFXShield    = "fx/shield.png"
	SpriteFXBomb      = "fx/bomb.png"
	SpriteFXLightning = "fx/lightning.png"
	SpriteFXLaser     = "fx/laser.png"
	SpriteFXSlowField = "fx/slow_field.png"
	SpriteCountdown   = "ui/countdown.png"
	SpriteScore       = "ui/score.png"
)
