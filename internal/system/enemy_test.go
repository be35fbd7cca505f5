package system

import (
	"math"
	"testing"

	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-swarm/internal/component"
	"github.com/vovakirdan/tui-swarm/internal/core"
	"github.com/vovakirdan/tui-swarm/internal/world"
)

func TestImmuneScaleGrowsToRest(t *testing.T) {
	ctx := newStage(t)
	addPlayer(ctx, core.V(30, 15))
	e := world.NewEnemy(ctx.World, ctx.Cfg, component.SpawnTask{Position: core.V(5, 5), Speed: 3}, world.EnemyOptions{})
	sys := NewBasicEnemySystem()

	prev := 0.0
	for i := 0; i < 30; i++ {
		step(ctx, sys, 0.1)
		entry := ctx.World.Entry(e)
		s := component.Transform.Get(entry).Scale.X
		if s < prev {
			t.Fatalf("tick %d: scale shrank %v -> %v", i, prev, s)
		}
		prev = s
		if i < 19 {
			if !component.EnemyState.Get(entry).IsImmune {
				t.Fatalf("tick %d: immunity ended early", i)
			}
			if v := component.Velocity.Get(entry).Velocity; !v.IsZero() {
				t.Fatalf("tick %d: immune enemy moving %v", i, v)
			}
		}
	}

	entry := ctx.World.Entry(e)
	st := component.EnemyState.Get(entry)
	if st.IsImmune || !st.IsLive {
		t.Errorf("state after immunity = %+v", *st)
	}
	if s := component.Transform.Get(entry).Scale.X; s != ctx.Cfg.Enemies.RestScale {
		t.Errorf("rest scale = %v, want %v", s, ctx.Cfg.Enemies.RestScale)
	}
}

func TestDyingShrinksAndRemovesOnce(t *testing.T) {
	ctx := newStage(t)
	entry := addEnemy(ctx, core.V(5, 5))
	e := entry.Entity()
	component.Velocity.Get(entry).Velocity = core.V(1, 1)
	component.EnemyState.Get(entry).MarkDying(ctx.Cfg.Enemies.DyingTime)
	sys := NewBasicEnemySystem()

	prev := ctx.Cfg.Enemies.RestScale
	removed := 0
	for i := 0; i < 40; i++ {
		ctx.Delta = 0.1
		sys.Update(ctx)
		removed += ctx.Commands.Flush(ctx.World)
		if !ctx.World.Valid(e) {
			continue
		}
		entry := ctx.World.Entry(e)
		if v := component.Velocity.Get(entry).Velocity; !v.IsZero() {
			t.Fatalf("dying enemy moving %v", v)
		}
		s := component.Transform.Get(entry).Scale.X
		if s > prev {
			t.Fatalf("tick %d: scale grew %v -> %v", i, prev, s)
		}
		prev = s
	}
	if removed != 1 {
		t.Errorf("removed %d times, want 1", removed)
	}
	if ctx.World.Valid(e) {
		t.Error("dying enemy still present")
	}
}

func TestBasicEnemySeeksPlayer(t *testing.T) {
	ctx := newStage(t)
	addPlayer(ctx, core.V(10, 5))
	entry := addEnemy(ctx, core.V(5, 5))

	step(ctx, NewBasicEnemySystem(), 0.1)

	v := component.Velocity.Get(entry).Velocity
	want := core.V(ctx.Cfg.Enemies.BasicSpeed, 0)
	if v.Dist(want) > 1e-9 {
		t.Errorf("velocity = %v, want %v", v, want)
	}
}

func TestBasicEnemyWithoutPlayerStops(t *testing.T) {
	ctx := newStage(t)
	entry := addEnemy(ctx, core.V(5, 5))
	component.Velocity.Get(entry).Velocity = core.V(1, 0)

	step(ctx, NewBasicEnemySystem(), 0.1)

	if v := component.Velocity.Get(entry).Velocity; !v.IsZero() {
		t.Errorf("velocity = %v, want zero", v)
	}
}

func TestBasicEnemyHoldsFormation(t *testing.T) {
	ctx := newStage(t)
	addPlayer(ctx, core.V(10, 5))
	entry := addEnemy(ctx, core.V(5, 5))
	st := component.EnemyState.Get(entry)
	st.InFormation = true

	step(ctx, NewBasicEnemySystem(), 0.1)
	if v := component.Velocity.Get(entry).Velocity; !v.IsZero() {
		t.Errorf("incomplete formation member moving %v", v)
	}

	component.EnemyState.Get(entry).FormationSpawnComplete = true
	step(ctx, NewBasicEnemySystem(), 0.1)
	if v := component.Velocity.Get(entry).Velocity; v.IsZero() {
		t.Error("complete formation member not moving")
	}
}

func TestSlowWearsOff(t *testing.T) {
	ctx := newStage(t)
	entry := addEnemy(ctx, core.V(5, 5))
	st := component.EnemyState.Get(entry)
	base := st.Speed
	st.ApplySlow(0.3)

	sys := NewBasicEnemySystem()
	for i := 0; i < 5; i++ {
		step(ctx, sys, 0.1)
	}

	st = component.EnemyState.Get(entry)
	if st.IsSlowed || st.Speed != base {
		t.Errorf("after slow: slowed=%v speed=%v, want false %v", st.IsSlowed, st.Speed, base)
	}
}

func addLineEnemy(ctx *world.Context, edge component.Edge, pos core.Vec2) *donburi.Entry {
	e := world.NewEnemy(ctx.World, ctx.Cfg, component.SpawnTask{
		Kind:     component.TaskLine,
		Position: pos,
		Speed:    ctx.Cfg.Enemies.LineSpeed,
		Edge:     edge,
	}, world.EnemyOptions{Complete: true})
	entry := ctx.World.Entry(e)
	st := component.EnemyState.Get(entry)
	st.IsImmune = false
	st.IsLive = true
	return entry
}

func TestLineEnemyExit(t *testing.T) {
	tests := []struct {
		name  string
		edge  component.Edge
		pos   core.Vec2
		dying bool
	}{
		{"left inside", component.EdgeLeft, core.V(34, 10), false},
		{"left past", component.EdgeLeft, core.V(36, 10), true},
		{"right past", component.EdgeRight, core.V(-1, 10), true},
		{"top past", component.EdgeTop, core.V(10, -1), true},
		{"top inside", component.EdgeTop, core.V(10, 1), false},
		{"bottom past", component.EdgeBottom, core.V(10, 21), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newStage(t)
			entry := addLineEnemy(ctx, tt.edge, tt.pos)

			step(ctx, NewLineEnemySystem(), 0.01)

			st := component.EnemyState.Get(entry)
			if st.IsDying != tt.dying {
				t.Errorf("dying = %v, want %v", st.IsDying, tt.dying)
			}
		})
	}
}

func TestLineEnemyKeepsHeading(t *testing.T) {
	ctx := newStage(t)
	addPlayer(ctx, core.V(10, 19))
	entry := addLineEnemy(ctx, component.EdgeLeft, core.V(0, 5))

	step(ctx, NewLineEnemySystem(), 0.1)

	v := component.Velocity.Get(entry).Velocity
	if math.Abs(v.X-ctx.Cfg.Enemies.LineSpeed) > 1e-9 || v.Y != 0 {
		t.Errorf("velocity = %v, want (%v, 0)", v, ctx.Cfg.Enemies.LineSpeed)
	}
}

func TestEnemiesFrozenWhilePaused(t *testing.T) {
	ctx := newStage(t)
	ctx.Flags.Pausing = true
	entry := addEnemy(ctx, core.V(5, 5))
	component.EnemyState.Get(entry).MarkDying(1)

	step(ctx, NewBasicEnemySystem(), 0.5)

	if r := component.EnemyState.Get(entry).DyingTimeRemaining; r != 1 {
		t.Errorf("dying timer advanced while paused: %v", r)
	}
}
