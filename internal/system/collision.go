package system

import (
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-swarm/internal/component"
	"github.com/vovakirdan/tui-swarm/internal/core"
	"github.com/vovakirdan/tui-swarm/internal/world"
)

// body is a collider snapshot taken before any pair is resolved.
type body struct {
	entity donburi.Entity
	pos    core.Vec2
	radius float64
	tag    component.TagKind
	enemy  bool
}

// Colliding is the circle test: centers closer than the sum of radii.
func Colliding(posA core.Vec2, ra float64, posB core.Vec2, rb float64) bool {
	return posA.Dist(posB) < ra+rb
}

// CollisionResolver tests every collider pair and dispatches outcomes by tag.
type CollisionResolver struct{}

// NewCollisionResolver creates the resolver.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{}
}

// Name implements world.System.
func (r *CollisionResolver) Name() string { return "collision" }

// Update implements world.System.
func (r *CollisionResolver) Update(ctx *world.Context) {
	if ctx.Flags.Pausing || ctx.Flags.DeathScreen {
		return
	}

	bodies := r.gather(ctx)
	consumed := make(map[donburi.Entity]bool)
	for _, p := range findPairs(bodies) {
		a, b := bodies[p[0]], bodies[p[1]]
		if b.tag == component.TagPlayer {
			a, b = b, a
		}
		if a.tag != component.TagPlayer {
			continue
		}

		switch {
		case b.tag == component.TagPowerUp:
			if consumed[b.entity] {
				continue
			}
			consumed[b.entity] = true
			r.pickup(ctx, a.entity, b)
		case b.enemy:
			r.hit(ctx, a.entity)
		}
		if ctx.Flags.DeathScreen {
			return
		}
	}
}

func (r *CollisionResolver) gather(ctx *world.Context) []body {
	var bodies []body
	ctx.Aspects.Colliders.Each(ctx.World, func(entry *donburi.Entry) {
		tr := component.Transform.Get(entry)
		bodies = append(bodies, body{
			entity: entry.Entity(),
			pos:    tr.Position,
			radius: component.EffectiveRadius(component.Collider.Get(entry), tr),
			tag:    component.TagOf(entry),
			enemy:  entry.HasComponent(component.EnemyState),
		})
	})
	return bodies
}

// findPairs returns the index pairs i < j of overlapping bodies.
func findPairs(bodies []body) [][2]int {
	var pairs [][2]int
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if Colliding(bodies[i].pos, bodies[i].radius, bodies[j].pos, bodies[j].radius) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

// hit resolves player contact with an enemy.
func (r *CollisionResolver) hit(ctx *world.Context, player donburi.Entity) {
	if !ctx.World.Valid(player) {
		return
	}
	entry := ctx.World.Entry(player)

	if entry.HasComponent(component.PowerUpState) {
		state := component.PowerUpState.Get(entry)
		if state.Invulnerability > 0 {
			return
		}
		if state.HasShield {
			state.HasShield = false
			state.Invulnerability = ctx.Cfg.Effects.ShieldInvulnerable
			destroyShieldFX(ctx, player)
			ctx.Log.Debug("shield broken")
			return
		}
	}

	ctx.Flags.DeathScreen = true
	ctx.Flags.DeathScreenInit = true
	ctx.Log.Debug("player hit", "score", ctx.Score())
}

// pickup consumes a power-up and applies its effect to the player.
func (r *CollisionResolver) pickup(ctx *world.Context, player donburi.Entity, pu body) {
	if !ctx.World.Valid(player) || !ctx.World.Valid(pu.entity) {
		return
	}
	kind := component.PowerUp.Get(ctx.World.Entry(pu.entity)).Kind
	at := pu.pos
	ctx.Commands.Destroy(pu.entity)

	entry := ctx.World.Entry(player)
	if !entry.HasComponent(component.PowerUpState) {
		entry.AddComponent(component.PowerUpState)
		entry = ctx.World.Entry(player)
	}
	state := component.PowerUpState.Get(entry)
	playerPos := component.Transform.Get(entry).Position
	ec := ctx.Cfg.Effects

	switch kind {
	case component.PowerUpShield:
		if state.HasShield {
			break
		}
		state.HasShield = true
		spawnFX(ctx, component.FXData{
			Kind:       component.FXShield,
			Follow:     player,
			HasFollow:  true,
			Persistent: true,
		}, playerPos, core.Vec2{})

	case component.PowerUpBomb:
		state.Bombs = append(state.Bombs, component.BombEntry{
			Center:   at,
			TimeLeft: ec.BombDuration,
			Radius:   ec.BombRadius,
		})
		spawnFX(ctx, component.FXData{Kind: component.FXBomb, Remaining: ec.BombDuration}, at, core.Vec2{})

	case component.PowerUpLightning:
		spawnFX(ctx, component.FXData{Kind: component.FXLightning, Remaining: ec.LightningFXTime}, at, core.Vec2{})
		state.Lightning = append(state.Lightning, component.LightningEntry{Origin: at})

	case component.PowerUpSlowField:
		speed := slowFieldSpeed(ctx)
		for _, dir := range []core.Vec2{core.V(0, 1), core.V(0, -1)} {
			state.SlowFields = append(state.SlowFields, component.SlowFieldEntry{
				Position:  playerPos,
				Direction: dir,
				TimeLeft:  ec.SlowFieldDuration,
			})
			spawnFX(ctx, component.FXData{
				Kind:      component.FXSlowField,
				Remaining: ec.SlowFieldDuration,
				Direction: dir,
			}, playerPos, dir.Scale(speed))
		}

	default:
		// LASER_3X and unknown kinds have no pickup effect.
	}
	ctx.Log.Debug("power-up collected", "kind", kind)
}

// spawnFX queues an effect entity.
func spawnFX(ctx *world.Context, fx component.FXData, pos, vel core.Vec2) {
	ctx.Commands.Spawn(func(w donburi.World) {
		world.NewFX(w, fx, pos, vel)
	})
}

// destroyShieldFX removes every shield effect bound to owner.
func destroyShieldFX(ctx *world.Context, owner donburi.Entity) {
	ctx.Aspects.Effects.Each(ctx.World, func(entry *donburi.Entry) {
		fx := component.FX.Get(entry)
		if fx.Kind == component.FXShield && fx.HasFollow && fx.Follow == owner {
			ctx.Commands.Destroy(entry.Entity())
		}
	})
}

// slowFieldSpeed converts the configured pixel speed into world units.
func slowFieldSpeed(ctx *world.Context) float64 {
	return pixels(ctx, ctx.Cfg.Effects.SlowFieldSpeedPx)
}

// pixels converts a length in pixels into world units (pixels / UnitScale).
// A non-positive scale treats the value as world units already.
func pixels(ctx *world.Context, v float64) float64 {
	if ctx.Flags.UnitScale <= 0 {
		return v
	}
	return v / ctx.Flags.UnitScale
}
