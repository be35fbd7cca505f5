// Package world wraps the donburi entity store for the swarm simulation:
// the per-tick context with mode flags, the deferred command buffer, the
// cached aspect queries, the system scheduler and the entity archetypes.
package world

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-swarm/internal/config"
	"github.com/vovakirdan/tui-swarm/internal/core"
)

// Mode is the top-level game state.
type Mode int

const (
	ModeMainMenu Mode = iota
	ModeGameStage
	ModeHighScore
)

// String returns the state name used by the state machine.
func (m Mode) String() string {
	switch m {
	case ModeMainMenu:
		return "MAIN_MENU"
	case ModeGameStage:
		return "GAME_STAGE"
	case ModeHighScore:
		return "HIGH_SCORE"
	default:
		return "UNKNOWN"
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "MAIN_MENU":
		return ModeMainMenu, true
	case "GAME_STAGE":
		return ModeGameStage, true
	case "HIGH_SCORE":
		return ModeHighScore, true
	default:
		return ModeMainMenu, false
	}
}

// Flags are the game-mode signals every system reads at the start of its
// sweep. Only the state machine writes Mode; only the collision resolver
// raises DeathScreen.
type Flags struct {
	Mode            Mode
	Starting        bool
	Pausing         bool
	DeathScreen     bool
	DeathScreenInit bool

	Width     float64
	Height    float64
	UnitScale float64
}

// Spawning reports whether spawn directors may schedule work this tick.
func (f Flags) Spawning() bool {
	return f.Mode == ModeGameStage && !f.Starting && !f.DeathScreen
}

// Center is the fixed world reference point.
func (f Flags) Center() core.Vec2 {
	return core.V(f.Width/2, f.Height/2)
}

// Run accumulates the statistics of the current run.
type Run struct {
	ID       string
	Kills    int
	Points   int // points from kills
	Survived float64
}

// Score is the displayed score of the run.
func (r Run) Score(pointsPerSecond int) int {
	return r.Points + int(r.Survived)*pointsPerSecond
}

// Context is everything a system sees during one tick. It is owned by the
// scheduler's caller and passed explicitly; there is no global state.
type Context struct {
	World    donburi.World
	Flags    Flags
	Commands *Commands
	Aspects  *Aspects
	Rand     *core.RNG
	Log      *log.Logger
	Cfg      config.SwarmConfig

	// Difficulty is optional; nil means base values.
	Difficulty *config.DifficultyManager

	Input core.InputFrame
	Delta float64
	Run   Run

	nextGroup int
}

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger used by systems.
func WithLogger(l *log.Logger) Option {
	return func(c *Context) {
		c.Log = l
	}
}

// WithDifficulty enables difficulty scaling.
func WithDifficulty(d *config.DifficultyManager) Option {
	return func(c *Context) {
		c.Difficulty = d
	}
}

// NewContext creates a fresh world sized from cfg.
func NewContext(cfg config.SwarmConfig, seed int64, opts ...Option) *Context {
	ctx := &Context{
		World:    donburi.NewWorld(),
		Commands: NewCommands(),
		Aspects:  NewAspects(),
		Rand:     core.NewRNG(seed),
		Log:      log.New(io.Discard),
		Cfg:      cfg,
		Flags: Flags{
			Mode:      ModeMainMenu,
			Width:     cfg.World.Width,
			Height:    cfg.World.Height,
			UnitScale: cfg.World.UnitScale,
		},
		Input: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// NextGroup allocates a formation group id. Ids start at 1.
func (c *Context) NextGroup() int {
	c.nextGroup++
	return c.nextGroup
}

// ResetRun starts a new run with a fresh id.
func (c *Context) ResetRun() {
	c.Run = Run{ID: uuid.NewString()}
}

// AwardKill credits one destroyed enemy to the run.
func (c *Context) AwardKill() {
	c.Run.Kills++
	c.Run.Points += c.Cfg.Session.KillPoints
}

// Score is the current run score.
func (c *Context) Score() int {
	return c.Run.Score(c.Cfg.Session.PointsPerSecond)
}

// EnemySpeed scales a base speed by the current difficulty.
func (c *Context) EnemySpeed(base float64) float64 {
	if c.Difficulty == nil {
		return base
	}
	return c.Difficulty.Speed(base, c.Score(), c.Run.Survived)
}

// EnemyThreshold is the live enemy count above which the director idles.
func (c *Context) EnemyThreshold() int {
	base := c.Cfg.Spawning.EnemyThreshold
	if c.Difficulty == nil {
		return base
	}
	return c.Difficulty.EnemyThreshold(base, c.Score(), c.Run.Survived)
}

// InBounds reports whether p lies inside the world rectangle.
func (c *Context) InBounds(p core.Vec2) bool {
	return p.X >= 0 && p.X <= c.Flags.Width && p.Y >= 0 && p.Y <= c.Flags.Height
}
