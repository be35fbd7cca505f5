package world

import (
	"testing"

	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-swarm/internal/component"
	"github.com/vovakirdan/tui-swarm/internal/config"
	"github.com/vovakirdan/tui-swarm/internal/core"
)

func newTestContext() *Context {
	return NewContext(config.DefaultSwarmConfig(), 1)
}

func TestCommandsDoubleDestroy(t *testing.T) {
	ctx := newTestContext()
	e := NewPowerUp(ctx.World, ctx.Cfg, component.PowerUpBomb, core.V(1, 1))

	ctx.Commands.Destroy(e)
	ctx.Commands.Destroy(e)
	if !ctx.Commands.Destroying(e) {
		t.Error("Destroying() should report the queued entity")
	}

	if removed := ctx.Commands.Flush(ctx.World); removed != 1 {
		t.Errorf("Flush() removed %d, expected 1", removed)
	}
	if ctx.World.Valid(e) {
		t.Error("entity should be gone after flush")
	}

	// A stale handle queued again is skipped
	ctx.Commands.Destroy(e)
	if removed := ctx.Commands.Flush(ctx.World); removed != 0 {
		t.Errorf("Flush() of stale handle removed %d, expected 0", removed)
	}
}

func TestCommandsSpawnOrder(t *testing.T) {
	ctx := newTestContext()
	var order []int

	ctx.Commands.Spawn(func(w donburi.World) {
		order = append(order, 1)
		ctx.Commands.Spawn(func(w donburi.World) {
			order = append(order, 3)
		})
	})
	ctx.Commands.Spawn(func(w donburi.World) {
		order = append(order, 2)
	})

	if ctx.Commands.Pending() != 2 {
		t.Errorf("Pending() = %d, expected 2", ctx.Commands.Pending())
	}
	ctx.Commands.Flush(ctx.World)

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("spawn order = %v, expected [1 2 3]", order)
	}
	if ctx.Commands.Pending() != 0 {
		t.Error("buffer should be empty after flush")
	}
}

type probeSystem struct {
	name  string
	log   *[]string
	apply func(ctx *Context)
}

func (p probeSystem) Name() string { return p.name }

func (p probeSystem) Update(ctx *Context) {
	*p.log = append(*p.log, p.name)
	if p.apply != nil {
		p.apply(ctx)
	}
}

func TestSchedulerFlushesBetweenSystems(t *testing.T) {
	ctx := newTestContext()
	var calls []string
	var seen bool

	spawner := probeSystem{name: "spawn", log: &calls, apply: func(ctx *Context) {
		ctx.Commands.Spawn(func(w donburi.World) {
			NewPlayer(w, ctx.Cfg, core.V(5, 5))
		})
		if _, ok := ctx.Player(); ok {
			t.Error("spawn must not be visible inside the requesting system")
		}
	}}
	reader := probeSystem{name: "read", log: &calls, apply: func(ctx *Context) {
		_, seen = ctx.Player()
	}}

	s := NewScheduler(spawner)
	s.Add(reader)
	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	s.Tick(ctx, in, 0.5)

	if !seen {
		t.Error("next system should see the flushed spawn")
	}
	if len(calls) != 2 || calls[0] != "spawn" || calls[1] != "read" {
		t.Errorf("system order = %v", calls)
	}
	if ctx.Delta != 0.5 || !ctx.Input.Has(core.ActionFire) {
		t.Error("Tick() should install input and delta")
	}
}

func TestNewPlayerHasNoPowerUpState(t *testing.T) {
	ctx := newTestContext()
	e := NewPlayer(ctx.World, ctx.Cfg, core.V(3, 4))
	entry := ctx.World.Entry(e)

	if entry.HasComponent(component.PowerUpState) {
		t.Error("power-up state is attached on first pickup, not at creation")
	}
	if component.TagOf(entry) != component.TagPlayer {
		t.Errorf("tag = %s, expected PLAYER", component.TagOf(entry))
	}
	pos, ok := ctx.PlayerPosition()
	if !ok || pos != core.V(3, 4) {
		t.Errorf("PlayerPosition() = %v, %v", pos, ok)
	}
}

func TestPlayerPositionFallsBackToCenter(t *testing.T) {
	ctx := newTestContext()
	pos, ok := ctx.PlayerPosition()
	if ok {
		t.Error("no player exists")
	}
	if pos != core.V(17.5, 10) {
		t.Errorf("fallback = %v, expected world center", pos)
	}
}

func TestNewEnemyVariants(t *testing.T) {
	ctx := newTestContext()

	basic := NewEnemy(ctx.World, ctx.Cfg, component.SpawnTask{
		Kind:     component.TaskBasic,
		Position: core.V(1, 2),
		Speed:    3,
	}, EnemyOptions{Group: 4, InFormation: true})
	line := NewEnemy(ctx.World, ctx.Cfg, component.SpawnTask{
		Kind:  component.TaskLine,
		Edge:  component.EdgeTop,
		Speed: 4,
	}, EnemyOptions{Complete: true})

	if n := ctx.Aspects.BasicEnemy.Count(ctx.World); n != 1 {
		t.Errorf("basic aspect count = %d, expected 1", n)
	}
	if n := ctx.Aspects.LineEnemy.Count(ctx.World); n != 1 {
		t.Errorf("line aspect count = %d, expected 1", n)
	}

	bs := component.EnemyState.Get(ctx.World.Entry(basic))
	if !bs.IsImmune || bs.ImmuneTimeRemaining != 2 || bs.Group != 4 || !bs.InFormation {
		t.Errorf("basic enemy state = %+v", *bs)
	}
	if s := component.Transform.Get(ctx.World.Entry(basic)).Scale; !s.IsZero() {
		t.Errorf("new enemy scale = %v, expected zero", s)
	}

	ld := component.EnemyLine.Get(ctx.World.Entry(line))
	if ld.SpawnEdge != component.EdgeTop || ld.Heading != core.V(0, -1) {
		t.Errorf("line data = %+v", *ld)
	}
}

func TestRunScore(t *testing.T) {
	ctx := newTestContext()
	ctx.ResetRun()
	if ctx.Run.ID == "" {
		t.Error("ResetRun() should assign a run id")
	}

	ctx.AwardKill()
	ctx.AwardKill()
	ctx.Run.Survived = 12.7

	if got := ctx.Score(); got != 2*10+12 {
		t.Errorf("Score() = %d, expected 32", got)
	}
}

func TestModeRoundTrip(t *testing.T) {
	for _, m := range []Mode{ModeMainMenu, ModeGameStage, ModeHighScore} {
		got, ok := ParseMode(m.String())
		if !ok || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if _, ok := ParseMode("CREDITS"); ok {
		t.Error("unknown mode should not parse")
	}
}
