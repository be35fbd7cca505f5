package component

import "github.com/yohamta/donburi"

// TagKind classifies an entity for collision outcome dispatch.
// It is never used for rendering decisions.
type TagKind int

const (
	TagNone TagKind = iota
	TagPlayer
	TagEnemy
	TagPowerUp
	TagLaserBeam
	TagStartTime
	TagScoreUI
)

// String returns the tag name.
func (k TagKind) String() string {
	switch k {
	case TagNone:
		return "NONE"
	case TagPlayer:
		return "PLAYER"
	case TagEnemy:
		return "ENEMY"
	case TagPowerUp:
		return "POWERUP"
	case TagLaserBeam:
		return "LASER_BEAM"
	case TagStartTime:
		return "START_TIME"
	case TagScoreUI:
		return "SCORE_UI"
	default:
		return "UNKNOWN"
	}
}

// TagData carries exactly one tag per taggable entity.
type TagData struct {
	Kind TagKind
}

var Tag = donburi.NewComponentType[TagData]()

// TagOf returns the entity's tag, or TagNone when it has none.
func TagOf(e *donburi.Entry) TagKind {
	if !e.HasComponent(Tag) {
		return TagNone
	}
	return Tag.Get(e).Kind
}
