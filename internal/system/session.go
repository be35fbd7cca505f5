package system

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-swarm/internal/component"
	"github.com/vovakirdan/tui-swarm/internal/core"
	"github.com/vovakirdan/tui-swarm/internal/world"
)

// Session drives the run around the simulation: menu confirmation, the
// start countdown, pausing, survival time and the death screen.
type Session struct {
	states *StateMachine

	// OnRunEnd is called once per run when the death screen elapses.
	OnRunEnd func(ctx *world.Context)

	deathTimer float64
	ended      bool
}

// NewSession creates a session bound to the state machine it drives.
func NewSession(states *StateMachine) *Session {
	return &Session{states: states}
}

// Name implements world.System.
func (s *Session) Name() string { return "session" }

// Update implements world.System.
func (s *Session) Update(ctx *world.Context) {
	in := ctx.Input
	switch ctx.Flags.Mode {
	case world.ModeMainMenu:
		if in.Has(core.ActionConfirm) {
			s.states.ChangeState(world.ModeGameStage)
		}
	case world.ModeHighScore:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionBack) {
			s.states.ChangeState(world.ModeMainMenu)
		}
	case world.ModeGameStage:
		s.updateStage(ctx)
	}
}

func (s *Session) updateStage(ctx *world.Context) {
	f := &ctx.Flags
	in := ctx.Input

	if in.Has(core.ActionBack) {
		s.states.ChangeState(world.ModeMainMenu)
		return
	}

	if f.DeathScreen {
		s.updateDeath(ctx)
		return
	}
	s.ended = false

	if f.Starting {
		s.updateCountdown(ctx)
		return
	}

	if in.Has(core.ActionPause) {
		f.Pausing = !f.Pausing
		ctx.Log.Debug("pause toggled", "paused", f.Pausing)
	}
	if !f.Pausing {
		ctx.Run.Survived += ctx.Delta
	}
}

func (s *Session) updateDeath(ctx *world.Context) {
	f := &ctx.Flags
	if f.DeathScreenInit {
		f.DeathScreenInit = false
		f.Pausing = false
		s.deathTimer = ctx.Cfg.Session.DeathScreenTime
		s.ended = false
		ctx.Log.Info("run over", "run", ctx.Run.ID, "score", ctx.Score(), "kills", ctx.Run.Kills)
		return
	}
	if s.ended {
		return
	}
	s.deathTimer -= ctx.Delta
	if s.deathTimer > 0 {
		return
	}
	s.ended = true
	if s.OnRunEnd != nil {
		s.OnRunEnd(ctx)
	}
	s.states.ChangeState(world.ModeHighScore)
}

func (s *Session) updateCountdown(ctx *world.Context) {
	done := true
	ctx.Aspects.Countdowns.Each(ctx.World, func(entry *donburi.Entry) {
		cd := component.Countdown.Get(entry)
		tr := component.Transform.Get(entry)

		cd.Remaining -= ctx.Delta
		if cd.Remaining <= 0 {
			ctx.Commands.Destroy(entry.Entity())
			return
		}
		done = false

		sec := int(math.Ceil(cd.Remaining))
		if sec != cd.Second || cd.Pulse == nil {
			cd.Second = sec
			cd.Pulse = gween.New(1.5, 1, 0.4, ease.OutQuad)
		}
		scale, _ := cd.Pulse.Update(float32(ctx.Delta))
		tr.Scale = core.V(float64(scale), float64(scale))
	})

	if done {
		ctx.Flags.Starting = false
		ctx.Log.Debug("run started", "run", ctx.Run.ID)
	}
}
