package system

import (
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-swarm/internal/component"
	"github.com/vovakirdan/tui-swarm/internal/core"
	"github.com/vovakirdan/tui-swarm/internal/world"
)

// spawnable pickups; LASER_3X has no effect and is never dropped.
var spawnable = []component.PowerUpKind{
	component.PowerUpShield,
	component.PowerUpBomb,
	component.PowerUpLightning,
	component.PowerUpSlowField,
}

// PowerUpDirector drops pickups into the arena and expires uncollected ones.
type PowerUpDirector struct {
	timer float64
}

// NewPowerUpDirector creates the pickup director.
func NewPowerUpDirector() *PowerUpDirector {
	return &PowerUpDirector{}
}

// Name implements world.System.
func (d *PowerUpDirector) Name() string { return "powerup-director" }

// Update implements world.System.
func (d *PowerUpDirector) Update(ctx *world.Context) {
	if !ctx.Flags.Spawning() || ctx.Flags.Pausing {
		return
	}
	pc := ctx.Cfg.PowerUps

	active := 0
	ctx.Aspects.PowerUps.Each(ctx.World, func(entry *donburi.Entry) {
		pu := component.PowerUp.Get(entry)
		pu.Lifetime -= ctx.Delta
		if pu.Lifetime <= 0 {
			ctx.Commands.Destroy(entry.Entity())
			return
		}
		active++
	})

	d.timer += ctx.Delta
	if d.timer < pc.SpawnInterval {
		return
	}
	d.timer = 0
	if active >= pc.MaxActive {
		return
	}

	kind := spawnable[ctx.Rand.Intn(len(spawnable))]
	margin := pc.Radius * 2
	pos := core.V(
		ctx.Rand.FloatRange(margin, ctx.Flags.Width-margin),
		ctx.Rand.FloatRange(margin, ctx.Flags.Height-margin),
	)
	cfg := ctx.Cfg
	ctx.Commands.Spawn(func(w donburi.World) {
		world.NewPowerUp(w, cfg, kind, pos)
	})
	ctx.Log.Debug("power-up dropped", "kind", kind, "x", pos.X, "y", pos.Y)
}
