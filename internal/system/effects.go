package system

import (
	"sort"

	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-swarm/internal/component"
	"github.com/vovakirdan/tui-swarm/internal/core"
	"github.com/vovakirdan/tui-swarm/internal/world"
)

// powerUpState returns the player's power-up state, if attached.
func powerUpState(ctx *world.Context) (*donburi.Entry, *component.PowerUpStateData, bool) {
	entry, ok := ctx.Player()
	if !ok || !entry.HasComponent(component.PowerUpState) {
		return nil, nil, false
	}
	return entry, component.PowerUpState.Get(entry), true
}

// ShieldSystem runs down the post-break invulnerability window and drops
// shield effects whose owner is gone or no longer shielded.
type ShieldSystem struct{}

// NewShieldSystem creates the shield sweep.
func NewShieldSystem() *ShieldSystem { return &ShieldSystem{} }

// Name implements world.System.
func (s *ShieldSystem) Name() string { return "shield" }

// Update implements world.System.
func (s *ShieldSystem) Update(ctx *world.Context) {
	if ctx.Flags.Pausing {
		return
	}
	if _, state, ok := powerUpState(ctx); ok && state.Invulnerability > 0 {
		state.Invulnerability -= ctx.Delta
		if state.Invulnerability < 0 {
			state.Invulnerability = 0
		}
	}

	ctx.Aspects.Effects.Each(ctx.World, func(entry *donburi.Entry) {
		fx := component.FX.Get(entry)
		if fx.Kind != component.FXShield || !fx.HasFollow {
			return
		}
		if !ctx.World.Valid(fx.Follow) {
			ctx.Commands.Destroy(entry.Entity())
			return
		}
		owner := ctx.World.Entry(fx.Follow)
		if !owner.HasComponent(component.PowerUpState) || !component.PowerUpState.Get(owner).HasShield {
			ctx.Commands.Destroy(entry.Entity())
		}
	})
}

// BombSystem kills every enemy caught inside an active blast.
type BombSystem struct{}

// NewBombSystem creates the bomb sweep.
func NewBombSystem() *BombSystem { return &BombSystem{} }

// Name implements world.System.
func (s *BombSystem) Name() string { return "bomb" }

// Update implements world.System.
func (s *BombSystem) Update(ctx *world.Context) {
	if ctx.Flags.Pausing {
		return
	}
	_, state, ok := powerUpState(ctx)
	if !ok || len(state.Bombs) == 0 {
		return
	}

	for i := range state.Bombs {
		b := &state.Bombs[i]
		b.TimeLeft -= ctx.Delta
		if b.TimeLeft <= 0 {
			continue
		}
		ctx.Aspects.TaggedEnemy.Each(ctx.World, func(entry *donburi.Entry) {
			if component.TagOf(entry) != component.TagEnemy {
				return
			}
			if component.Transform.Get(entry).Position.Dist(b.Center) >= b.Radius {
				return
			}
			if component.EnemyState.Get(entry).MarkDying(ctx.Cfg.Enemies.DyingTime) {
				ctx.AwardKill()
			}
		})
	}

	kept := state.Bombs[:0]
	for _, b := range state.Bombs {
		if b.TimeLeft > 0 {
			kept = append(kept, b)
		}
	}
	state.Bombs = kept
}

// LaserSystem sweeps active beams from the player's position.
type LaserSystem struct{}

// NewLaserSystem creates the laser sweep.
func NewLaserSystem() *LaserSystem { return &LaserSystem{} }

// Name implements world.System.
func (s *LaserSystem) Name() string { return "laser" }

// Update implements world.System.
func (s *LaserSystem) Update(ctx *world.Context) {
	if ctx.Flags.Pausing {
		return
	}
	player, state, ok := powerUpState(ctx)
	if !ok || len(state.Lasers) == 0 {
		return
	}
	origin := component.Transform.Get(player).Position

	for i := range state.Lasers {
		l := &state.Lasers[i]
		l.TimeLeft -= ctx.Delta
		if l.TimeLeft <= 0 {
			continue
		}
		l.Start = origin
		spawnFX(ctx, component.FXData{
			Kind:      component.FXLaser,
			Remaining: ctx.Cfg.Effects.LaserFXTime,
			Length:    l.Length,
			Direction: l.Direction,
		}, l.Start, core.Vec2{})

		// Hit test is distance from the beam origin, not from the segment.
		ctx.Aspects.Enemies.Each(ctx.World, func(entry *donburi.Entry) {
			if component.Transform.Get(entry).Position.Dist(l.Start) >= l.Length {
				return
			}
			e := entry.Entity()
			if ctx.Commands.Destroying(e) {
				return
			}
			if !component.EnemyState.Get(entry).IsDying {
				ctx.AwardKill()
			}
			ctx.Commands.Destroy(e)
		})
	}

	kept := state.Lasers[:0]
	for _, l := range state.Lasers {
		if l.TimeLeft > 0 {
			kept = append(kept, l)
		}
	}
	state.Lasers = kept
}

// LightningSystem strikes the enemies nearest the player once per queued
// request.
type LightningSystem struct{}

// NewLightningSystem creates the lightning sweep.
func NewLightningSystem() *LightningSystem { return &LightningSystem{} }

// Name implements world.System.
func (s *LightningSystem) Name() string { return "lightning" }

type strikeCandidate struct {
	entry *donburi.Entry
	dist  float64
}

// Update implements world.System.
func (s *LightningSystem) Update(ctx *world.Context) {
	if ctx.Flags.Pausing {
		return
	}
	player, state, ok := powerUpState(ctx)
	if !ok || len(state.Lightning) == 0 {
		return
	}
	defer func() { state.Lightning = state.Lightning[:0] }()

	ec := ctx.Cfg.Effects
	origin := component.Transform.Get(player).Position
	var candidates []strikeCandidate
	ctx.Aspects.Enemies.Each(ctx.World, func(entry *donburi.Entry) {
		st := component.EnemyState.Get(entry)
		if !st.IsLive || st.IsDying {
			return
		}
		d := component.Transform.Get(entry).Position.Dist(origin)
		if d > ec.LightningRange {
			return
		}
		candidates = append(candidates, strikeCandidate{entry: entry, dist: d})
	})

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})
	if len(candidates) > ec.LightningTargets {
		candidates = candidates[:ec.LightningTargets]
	}

	for _, c := range candidates {
		if component.EnemyState.Get(c.entry).MarkDying(ctx.Cfg.Enemies.DyingTime) {
			ctx.AwardKill()
		}
		spawnFX(ctx, component.FXData{
			Kind:      component.FXLightning,
			Remaining: ec.LightningFXTime,
		}, component.Transform.Get(c.entry).Position, core.Vec2{})
	}
	ctx.Log.Debug("lightning strike", "targets", len(candidates))
}

// SlowFieldSystem moves slow fields and halves the speed of enemies they
// touch.
type SlowFieldSystem struct{}

// NewSlowFieldSystem creates the slow field sweep.
func NewSlowFieldSystem() *SlowFieldSystem { return &SlowFieldSystem{} }

// Name implements world.System.
func (s *SlowFieldSystem) Name() string { return "slow-field" }

// Update implements world.System.
func (s *SlowFieldSystem) Update(ctx *world.Context) {
	if ctx.Flags.Pausing {
		return
	}
	_, state, ok := powerUpState(ctx)
	if !ok || len(state.SlowFields) == 0 {
		return
	}

	ec := ctx.Cfg.Effects
	speed := slowFieldSpeed(ctx)
	radius := pixels(ctx, ec.SlowFieldRadiusPx)

	for i := range state.SlowFields {
		f := &state.SlowFields[i]
		f.Position = f.Position.Add(f.Direction.Scale(speed * ctx.Delta))
		ctx.Aspects.Enemies.Each(ctx.World, func(entry *donburi.Entry) {
			if component.Transform.Get(entry).Position.Dist(f.Position) >= radius {
				return
			}
			component.EnemyState.Get(entry).ApplySlow(ec.SlowDuration)
		})
		f.TimeLeft -= ctx.Delta
	}

	kept := state.SlowFields[:0]
	for _, f := range state.SlowFields {
		if f.TimeLeft > 0 {
			kept = append(kept, f)
		}
	}
	state.SlowFields = kept
}

// FXSystem expires timed effects and keeps following effects on their
// target.
type FXSystem struct{}

// NewFXSystem creates the effect sweep.
func NewFXSystem() *FXSystem { return &FXSystem{} }

// Name implements world.System.
func (s *FXSystem) Name() string { return "fx" }

// Update implements world.System.
func (s *FXSystem) Update(ctx *world.Context) {
	if ctx.Flags.Pausing {
		return
	}
	ctx.Aspects.Effects.Each(ctx.World, func(entry *donburi.Entry) {
		fx := component.FX.Get(entry)
		if fx.HasFollow {
			if !ctx.World.Valid(fx.Follow) {
				ctx.Commands.Destroy(entry.Entity())
				return
			}
			target := ctx.World.Entry(fx.Follow)
			if target.HasComponent(component.Transform) {
				component.Transform.Get(entry).Position = component.Transform.Get(target).Position
			}
		}
		if fx.Persistent {
			return
		}
		fx.Remaining -= ctx.Delta
		if fx.Remaining <= 0 {
			ctx.Commands.Destroy(entry.Entity())
		}
	})
}
