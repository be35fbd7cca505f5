package component

import (
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-swarm/internal/core"
)

// EnemyStateData tracks an enemy through spawn-immune, live, dying and
// removed. IsImmune and IsDying are never both set.
type EnemyStateData struct {
	InFormation            bool
	IsImmune               bool
	ImmuneTimeRemaining    float64
	IsDying                bool
	DyingTimeRemaining     float64
	IsLive                 bool
	Speed                  float64
	IsSlowed               bool
	SlowTimeRemaining      float64
	FormationSpawnComplete bool
	Group                  int // spawner group, 0 for none
}

var EnemyState = donburi.NewComponentType[EnemyStateData]()

// NewEnemyState returns the state of a freshly spawned enemy.
func NewEnemyState(speed, immuneTime float64) EnemyStateData {
	return EnemyStateData{
		IsImmune:            true,
		ImmuneTimeRemaining: immuneTime,
		Speed:               speed,
	}
}

// MarkDying moves the enemy into the dying phase. It reports false and
// leaves the timer alone when the enemy is already dying.
func (s *EnemyStateData) MarkDying(dyingTime float64) bool {
	if s.IsDying {
		return false
	}
	s.IsDying = true
	s.DyingTimeRemaining = dyingTime
	s.IsImmune = false
	s.ImmuneTimeRemaining = 0
	s.IsLive = false
	return true
}

// ApplySlow halves the speed once. It reports false when already slowed.
func (s *EnemyStateData) ApplySlow(duration float64) bool {
	if s.IsSlowed {
		return false
	}
	s.IsSlowed = true
	s.SlowTimeRemaining = duration
	s.Speed /= 2
	return true
}

// Edge is the screen edge a line enemy entered from.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Heading is the inward unit direction for an enemy entering from e.
// World space is y-up, so the top edge moves toward -y.
func (e Edge) Heading() core.Vec2 {
	switch e {
	case EdgeLeft:
		return core.V(1, 0)
	case EdgeRight:
		return core.V(-1, 0)
	case EdgeTop:
		return core.V(0, -1)
	case EdgeBottom:
		return core.V(0, 1)
	default:
		return core.Vec2{}
	}
}

// Exited reports whether pos is past the edge opposite e.
func (e Edge) Exited(pos core.Vec2, width, height float64) bool {
	switch e {
	case EdgeLeft:
		return pos.X > width
	case EdgeRight:
		return pos.X < 0
	case EdgeTop:
		return pos.Y < 0
	case EdgeBottom:
		return pos.Y > height
	default:
		return false
	}
}

// EnemyLineData marks the edge-line variant.
type EnemyLineData struct {
	SpawnEdge Edge
	Heading   core.Vec2
}

var EnemyLine = donburi.NewComponentType[EnemyLineData]()
