package component

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-swarm/internal/core"
)

// PlayerData holds player-only control state.
type PlayerData struct {
	Heading      core.Vec2 // last non-zero movement direction, aims the laser
	FireCooldown float64
}

var Player = donburi.NewComponentType[PlayerData]()

// CountdownData drives the START_TIME entity shown before a run begins.
type CountdownData struct {
	Remaining float64
	Second    int          // whole second currently displayed
	Pulse     *gween.Tween // scale pulse restarted every second
}

var Countdown = donburi.NewComponentType[CountdownData]()
