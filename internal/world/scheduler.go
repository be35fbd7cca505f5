package world

import (
	"github.com/vovakirdan/tui-swarm/internal/core"
)

// System is one per-tick sweep over the world.
type System interface {
	Name() string
	Update(ctx *Context)
}

// Scheduler runs systems in a fixed order. The command buffer is flushed
// after every system, which makes each system boundary a sync point.
type Scheduler struct {
	systems []System
}

// NewScheduler creates a scheduler running systems in the given order.
func NewScheduler(systems ...System) *Scheduler {
	return &Scheduler{systems: systems}
}

// Add appends systems to the end of the order.
func (s *Scheduler) Add(systems ...System) {
	s.systems = append(s.systems, systems...)
}

// Systems returns the system order.
func (s *Scheduler) Systems() []System {
	return s.systems
}

// Tick advances the world by one frame.
func (s *Scheduler) Tick(ctx *Context, in core.InputFrame, dt float64) {
	ctx.Input = in
	ctx.Delta = dt
	for _, sys := range s.systems {
		sys.Update(ctx)
		ctx.Commands.Flush(ctx.World)
	}
}
