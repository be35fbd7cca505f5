// Package game wires the swarm systems into a fixed-order scheduler and
// exposes the Reset/Step/Render surface the platform front-ends drive.
package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-swarm/internal/config"
	"github.com/vovakirdan/tui-swarm/internal/core"
	"github.com/vovakirdan/tui-swarm/internal/system"
	"github.com/vovakirdan/tui-swarm/internal/world"
)

// RunRecorder persists finished runs. storage.Store implements it.
type RunRecorder interface {
	SaveRun(run core.RunRecord) (int64, error)
}

// Game is one swarm session: a world, its systems and the run bookkeeping.
type Game struct {
	cfg      config.SwarmConfig
	preset   config.DifficultyPreset
	initials string
	logger   *log.Logger
	recorder RunRecorder

	runtime core.RuntimeConfig
	ctx     *world.Context
	states  *system.StateMachine
	sched   *world.Scheduler

	lastRun     *core.RunRecord
	runFinished bool
	missing     map[string]bool // sprite paths with no glyph, logged once
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger shared with the systems.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithRecorder sets where finished runs are saved.
func WithRecorder(r RunRecorder) Option {
	return func(g *Game) {
		g.recorder = r
	}
}

// WithInitials sets the player initials stored with each run.
func WithInitials(s string) Option {
	return func(g *Game) {
		g.initials = s
	}
}

// WithPreset applies a difficulty preset to the config.
func WithPreset(p config.DifficultyPreset) Option {
	return func(g *Game) {
		g.preset = p
	}
}

// New creates a game from cfg. Call Reset before the first Step.
func New(cfg config.SwarmConfig, opts ...Option) *Game {
	g := &Game{
		cfg:     cfg,
		logger:  log.New(io.Discard),
		missing: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(g)
	}
	config.ApplySwarmPreset(&g.cfg, g.preset)
	return g
}

// ID returns the identifier runs are stored under.
func (g *Game) ID() string { return "swarm" }

// Title returns the display name.
func (g *Game) Title() string { return "Swarm" }

// Reset builds a fresh world in MAIN_MENU.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc

	opts := []world.Option{world.WithLogger(g.logger)}
	if dm := config.NewDifficultyManager(g.cfg.Difficulty); dm.IsEnabled() {
		opts = append(opts, world.WithDifficulty(dm))
	}
	g.ctx = world.NewContext(g.cfg, rc.Seed, opts...)

	g.states = system.NewStateMachine()
	g.states.OnEnter(world.ModeGameStage, g.enterStage)
	g.states.OnEnter(world.ModeHighScore, g.enterHighScore)

	session := system.NewSession(g.states)
	session.OnRunEnd = g.finishRun

	g.sched = world.NewScheduler(
		g.states,
		system.NewPlayerInput(),
		system.NewSpawnDirector(),
		system.NewFormationSpawner(),
		system.NewPowerUpDirector(),
		system.NewBasicEnemySystem(),
		system.NewLineEnemySystem(),
		system.NewPhysics(),
		system.NewCollisionResolver(),
		system.NewShieldSystem(),
		system.NewBombSystem(),
		system.NewLaserSystem(),
		system.NewLightningSystem(),
		system.NewSlowFieldSystem(),
		system.NewFXSystem(),
		session,
	)
	g.lastRun = nil
	g.runFinished = false
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.runFinished = false
	g.sched.Tick(g.ctx, in, g.runtime.Delta())
	return core.StepResult{State: g.State(), RunFinished: g.runFinished}
}

// State returns the externally visible status.
func (g *Game) State() core.GameState {
	if g.ctx == nil {
		return core.GameState{}
	}
	return core.GameState{
		Mode:     g.ctx.Flags.Mode.String(),
		Score:    g.ctx.Score(),
		Kills:    g.ctx.Run.Kills,
		Survived: g.ctx.Run.Survived,
		GameOver: g.ctx.Flags.DeathScreen,
		Paused:   g.ctx.Flags.Pausing,
	}
}

// Config returns the effective config with the preset applied.
func (g *Game) Config() config.SwarmConfig { return g.cfg }

// Context exposes the world for front-ends that draw it themselves.
func (g *Game) Context() *world.Context { return g.ctx }

// ChangeState requests a mode transition for the next tick.
func (g *Game) ChangeState(m world.Mode) {
	g.states.ChangeState(m)
}

// LastRun returns the most recently finished run.
func (g *Game) LastRun() (core.RunRecord, bool) {
	if g.lastRun == nil {
		return core.RunRecord{}, false
	}
	return *g.lastRun, true
}

// Difficulty returns the preset name stored with runs.
func (g *Game) Difficulty() string {
	if g.preset == "" {
		return string(config.DifficultyNormal)
	}
	return string(g.preset)
}

func (g *Game) enterStage(ctx *world.Context) {
	ctx.ResetRun()
	ctx.Flags.Starting = true
	center := ctx.Flags.Center()
	world.NewPlayer(ctx.World, ctx.Cfg, center)
	world.NewCountdown(ctx.World, ctx.Cfg.Session.StartCountdown, center)
	world.NewScoreUI(ctx.World, core.V(0, ctx.Flags.Height))
	g.logger.Info("run starting", "run", ctx.Run.ID, "difficulty", g.Difficulty())
}

func (g *Game) enterHighScore(ctx *world.Context) {
	world.NewScoreUI(ctx.World, core.V(ctx.Flags.Width/2, ctx.Flags.Height))
}

func (g *Game) finishRun(ctx *world.Context) {
	run := core.RunRecord{
		ID:         ctx.Run.ID,
		Difficulty: g.Difficulty(),
		Initials:   g.initials,
		Score:      ctx.Score(),
		Kills:      ctx.Run.Kills,
		Survived:   ctx.Run.Survived,
		Seed:       g.runtime.Seed,
	}
	g.lastRun = &run
	g.runFinished = true

	if g.recorder == nil {
		return
	}
	if _, err := g.recorder.SaveRun(run); err != nil {
		g.logger.Warn("run not saved", "run", run.ID, "error", err)
	}
}
