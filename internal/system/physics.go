package system

import (
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-swarm/internal/component"
	"github.com/vovakirdan/tui-swarm/internal/core"
	"github.com/vovakirdan/tui-swarm/internal/world"
)

// Physics integrates velocity into position. The player is kept inside
// the arena.
type Physics struct{}

// NewPhysics creates the integrator.
func NewPhysics() *Physics {
	return &Physics{}
}

// Name implements world.System.
func (p *Physics) Name() string { return "physics" }

// Update implements world.System.
func (p *Physics) Update(ctx *world.Context) {
	if ctx.Flags.Pausing {
		return
	}
	dt := ctx.Delta

	ctx.Aspects.Movers.Each(ctx.World, func(entry *donburi.Entry) {
		vel := component.Velocity.Get(entry)
		tr := component.Transform.Get(entry)
		vel.Velocity = vel.Velocity.Add(vel.Acceleration.Scale(dt))
		tr.Position = tr.Position.Add(vel.Velocity.Scale(dt))

		if entry.HasComponent(component.Player) {
			tr.Position = core.V(
				core.ClampF(tr.Position.X, 0, ctx.Flags.Width),
				core.ClampF(tr.Position.Y, 0, ctx.Flags.Height),
			)
		}
	})
}
