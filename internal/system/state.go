package system

import (
	"context"

	"github.com/looplab/fsm"

	"github.com/vovakirdan/tui-swarm/internal/world"
)

// EntryFunc populates the world when a state is entered.
type EntryFunc func(ctx *world.Context)

type worldKey struct{}

// StateMachine owns the top-level mode. Requested transitions are applied
// on the next tick: the active gameplay population is torn down, the store
// is flushed, then the entry action of the new state runs.
type StateMachine struct {
	fsm     *fsm.FSM
	entries map[world.Mode]EntryFunc

	pending    world.Mode
	hasPending bool
	entered    bool
}

// NewStateMachine creates a machine in MAIN_MENU. The MAIN_MENU entry
// creates a player stand-in; other entries are registered with OnEnter.
func NewStateMachine() *StateMachine {
	s := &StateMachine{
		entries: map[world.Mode]EntryFunc{
			world.ModeMainMenu: enterMainMenu,
		},
	}

	modes := []world.Mode{world.ModeMainMenu, world.ModeGameStage, world.ModeHighScore}
	events := make(fsm.Events, 0, len(modes))
	for _, dst := range modes {
		var src []string
		for _, m := range modes {
			if m != dst {
				src = append(src, m.String())
			}
		}
		events = append(events, fsm.EventDesc{Name: dst.String(), Src: src, Dst: dst.String()})
	}

	s.fsm = fsm.NewFSM(world.ModeMainMenu.String(), events, fsm.Callbacks{
		"enter_state": func(c context.Context, e *fsm.Event) {
			ctx, ok := c.Value(worldKey{}).(*world.Context)
			if !ok {
				return
			}
			mode, _ := world.ParseMode(e.Dst)
			ctx.Log.Debug("state transition", "from", e.Src, "to", e.Dst)
			s.enter(ctx, mode, true)
		},
	})
	return s
}

// Name implements world.System.
func (s *StateMachine) Name() string { return "state" }

// OnEnter registers the entry action for a state, replacing any previous one.
func (s *StateMachine) OnEnter(m world.Mode, fn EntryFunc) {
	s.entries[m] = fn
}

// ChangeState requests a transition for the next tick. Requests for the
// current state are ignored; a later request replaces an earlier one.
func (s *StateMachine) ChangeState(m world.Mode) {
	if m == s.Current() {
		s.hasPending = false
		return
	}
	s.pending = m
	s.hasPending = true
}

// Current returns the active state.
func (s *StateMachine) Current() world.Mode {
	m, _ := world.ParseMode(s.fsm.Current())
	return m
}

// Update implements world.System.
func (s *StateMachine) Update(ctx *world.Context) {
	if !s.entered {
		s.entered = true
		s.enter(ctx, s.Current(), false)
	}
	ctx.Flags.Mode = s.Current()

	if !s.hasPending {
		return
	}
	target := s.pending
	s.hasPending = false
	if target == s.Current() {
		return
	}

	c := context.WithValue(context.Background(), worldKey{}, ctx)
	if err := s.fsm.Event(c, target.String()); err != nil {
		ctx.Log.Warn("state transition rejected", "to", target, "error", err)
		return
	}
	ctx.Flags.Mode = s.Current()
}

func (s *StateMachine) enter(ctx *world.Context, m world.Mode, teardown bool) {
	if teardown {
		for _, e := range world.Collect(ctx.World, ctx.Aspects.ActiveGameplay) {
			ctx.Commands.Destroy(e.Entity())
		}
		ctx.Commands.Flush(ctx.World)
	}

	ctx.Flags.Mode = m
	ctx.Flags.Starting = false
	ctx.Flags.Pausing = false
	ctx.Flags.DeathScreen = false
	ctx.Flags.DeathScreenInit = false

	if fn, ok := s.entries[m]; ok && fn != nil {
		fn(ctx)
	}
}

func enterMainMenu(ctx *world.Context) {
	world.NewPlayer(ctx.World, ctx.Cfg, ctx.Flags.Center())
}
