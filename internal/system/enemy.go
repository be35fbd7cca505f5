package system

import (
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-swarm/internal/component"
	"github.com/vovakirdan/tui-swarm/internal/core"
	"github.com/vovakirdan/tui-swarm/internal/world"
)

// advanceLifecycle runs the immune, dying and slow timers shared by both
// enemy variants. It reports whether the enemy is live and may move.
func advanceLifecycle(ctx *world.Context, entry *donburi.Entry) bool {
	st := component.EnemyState.Get(entry)
	tr := component.Transform.Get(entry)
	vel := component.Velocity.Get(entry)
	ec := ctx.Cfg.Enemies
	dt := ctx.Delta

	if st.IsSlowed {
		st.SlowTimeRemaining -= dt
		if st.SlowTimeRemaining <= 0 {
			st.IsSlowed = false
			st.SlowTimeRemaining = 0
			st.Speed *= 2
		}
	}

	switch {
	case st.IsDying:
		vel.Velocity = core.Vec2{}
		st.DyingTimeRemaining -= dt
		if st.DyingTimeRemaining < 0 {
			tr.Scale = core.Vec2{}
			ctx.Commands.Destroy(entry.Entity())
			return false
		}
		s := tween(ease.InQuad, ec.DyingTime-st.DyingTimeRemaining, ec.RestScale, -ec.RestScale, ec.DyingTime)
		if s < tr.Scale.X {
			tr.Scale = core.V(s, s)
		}
		return false

	case st.IsImmune:
		vel.Velocity = core.Vec2{}
		st.ImmuneTimeRemaining -= dt
		if st.ImmuneTimeRemaining <= 0 {
			st.ImmuneTimeRemaining = 0
			st.IsImmune = false
			st.IsLive = true
			tr.Scale = core.V(ec.RestScale, ec.RestScale)
			return true
		}
		s := tween(ease.OutQuad, ec.ImmuneTime-st.ImmuneTimeRemaining, 0, ec.RestScale, ec.ImmuneTime)
		if s > tr.Scale.X {
			tr.Scale = core.V(s, s)
		}
		return false
	}

	return st.IsLive
}

// tween evaluates an easing curve at elapsed, clamped to [0, duration].
func tween(fn ease.TweenFunc, elapsed, from, change, duration float64) float64 {
	if duration <= 0 {
		return from + change
	}
	elapsed = core.ClampF(elapsed, 0, duration)
	return float64(fn(float32(elapsed), float32(from), float32(change), float32(duration)))
}

// BasicEnemySystem moves free-roaming enemies toward the player.
type BasicEnemySystem struct{}

// NewBasicEnemySystem creates the seeker system.
func NewBasicEnemySystem() *BasicEnemySystem {
	return &BasicEnemySystem{}
}

// Name implements world.System.
func (s *BasicEnemySystem) Name() string { return "basic-enemy" }

// Update implements world.System.
func (s *BasicEnemySystem) Update(ctx *world.Context) {
	if ctx.Flags.Pausing {
		return
	}
	target, hasPlayer := ctx.PlayerPosition()

	ctx.Aspects.BasicEnemy.Each(ctx.World, func(entry *donburi.Entry) {
		if !advanceLifecycle(ctx, entry) {
			return
		}
		st := component.EnemyState.Get(entry)
		vel := component.Velocity.Get(entry)

		if !hasPlayer || (st.InFormation && !st.FormationSpawnComplete) {
			vel.Velocity = core.Vec2{}
			return
		}
		pos := component.Transform.Get(entry).Position
		vel.Velocity = target.Sub(pos).Normalize().Scale(st.Speed)
	})
}

// LineEnemySystem flies edge enemies straight across the arena and retires
// them once they leave through the opposite edge.
type LineEnemySystem struct{}

// NewLineEnemySystem creates the edge-line system.
func NewLineEnemySystem() *LineEnemySystem {
	return &LineEnemySystem{}
}

// Name implements world.System.
func (s *LineEnemySystem) Name() string { return "line-enemy" }

// Update implements world.System.
func (s *LineEnemySystem) Update(ctx *world.Context) {
	if ctx.Flags.Pausing {
		return
	}

	ctx.Aspects.LineEnemy.Each(ctx.World, func(entry *donburi.Entry) {
		st := component.EnemyState.Get(entry)
		line := component.EnemyLine.Get(entry)
		pos := component.Transform.Get(entry).Position

		if !st.IsDying && line.SpawnEdge.Exited(pos, ctx.Flags.Width, ctx.Flags.Height) {
			st.MarkDying(ctx.Cfg.Enemies.DyingTime)
			ctx.Log.Debug("line enemy exited", "edge", line.SpawnEdge, "x", pos.X, "y", pos.Y)
		}
		if !advanceLifecycle(ctx, entry) {
			return
		}
		component.Velocity.Get(entry).Velocity = line.Heading.Scale(st.Speed)
	})
}
