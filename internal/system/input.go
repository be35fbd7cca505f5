package system

import (
	"github.com/vovakirdan/tui-swarm/internal/component"
	"github.com/vovakirdan/tui-swarm/internal/core"
	"github.com/vovakirdan/tui-swarm/internal/world"
)

// PlayerInput turns the input frame into player velocity and laser shots.
type PlayerInput struct{}

// NewPlayerInput creates the input system.
func NewPlayerInput() *PlayerInput {
	return &PlayerInput{}
}

// Name implements world.System.
func (p *PlayerInput) Name() string { return "player-input" }

// Update implements world.System.
func (p *PlayerInput) Update(ctx *world.Context) {
	entry, ok := ctx.Player()
	if !ok {
		return
	}
	vel := component.Velocity.Get(entry)
	pl := component.Player.Get(entry)

	f := ctx.Flags
	if f.Mode != world.ModeGameStage || f.Starting || f.Pausing || f.DeathScreen {
		vel.Velocity = core.Vec2{}
		return
	}

	pc := ctx.Cfg.Player
	axis := ctx.Input.Axis()
	vel.Velocity = axis.Scale(pc.Speed)
	if !axis.IsZero() {
		pl.Heading = axis.Normalize()
	}

	if pl.FireCooldown > 0 {
		pl.FireCooldown -= ctx.Delta
	}
	if !ctx.Input.Has(core.ActionFire) || pl.FireCooldown > 0 {
		return
	}
	pl.FireCooldown = pc.FireCooldown

	if !entry.HasComponent(component.PowerUpState) {
		entry.AddComponent(component.PowerUpState)
	}
	state := component.PowerUpState.Get(entry)
	state.Lasers = append(state.Lasers, component.LaserEntry{
		Start:     component.Transform.Get(entry).Position,
		Direction: pl.Heading,
		Length:    pc.LaserLength,
		TimeLeft:  pc.LaserDuration,
	})
	ctx.Log.Debug("laser fired", "heading", pl.Heading)
}
