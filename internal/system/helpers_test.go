package system

import (
	"testing"

	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-swarm/internal/component"
	"github.com/vovakirdan/tui-swarm/internal/config"
	"github.com/vovakirdan/tui-swarm/internal/core"
	"github.com/vovakirdan/tui-swarm/internal/world"
)

func newStage(t *testing.T) *world.Context {
	t.Helper()
	ctx := world.NewContext(config.DefaultSwarmConfig(), 1)
	ctx.Flags.Mode = world.ModeGameStage
	return ctx
}

// step runs one system the way the scheduler does.
func step(ctx *world.Context, sys world.System, dt float64) {
	ctx.Delta = dt
	sys.Update(ctx)
	ctx.Commands.Flush(ctx.World)
}

func addPlayer(ctx *world.Context, pos core.Vec2) *donburi.Entry {
	return ctx.World.Entry(world.NewPlayer(ctx.World, ctx.Cfg, pos))
}

// addEnemy creates a basic enemy that has finished its spawn animation.
func addEnemy(ctx *world.Context, pos core.Vec2) *donburi.Entry {
	e := world.NewEnemy(ctx.World, ctx.Cfg, component.SpawnTask{
		Kind:     component.TaskBasic,
		Position: pos,
		Speed:    ctx.Cfg.Enemies.BasicSpeed,
	}, world.EnemyOptions{})
	entry := ctx.World.Entry(e)
	st := component.EnemyState.Get(entry)
	st.IsImmune = false
	st.ImmuneTimeRemaining = 0
	st.IsLive = true
	rest := ctx.Cfg.Enemies.RestScale
	component.Transform.Get(entry).Scale = core.V(rest, rest)
	return entry
}

func addPowerUp(ctx *world.Context, kind component.PowerUpKind, pos core.Vec2) donburi.Entity {
	return world.NewPowerUp(ctx.World, ctx.Cfg, kind, pos)
}

func effectsOf(ctx *world.Context, kind component.FXKind) []*donburi.Entry {
	var out []*donburi.Entry
	for _, e := range world.Collect(ctx.World, ctx.Aspects.Effects) {
		if component.FX.Get(e).Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func stateOf(t *testing.T, entry *donburi.Entry) *component.PowerUpStateData {
	t.Helper()
	if !entry.HasComponent(component.PowerUpState) {
		t.Fatal("player has no power-up state")
	}
	return component.PowerUpState.Get(entry)
}
