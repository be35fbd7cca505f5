package component

import (
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-swarm/internal/core"
)

// Formation is the spatial pattern of a spawn job.
type Formation int

const (
	FormationNone Formation = iota
	FormationGrid
	FormationCircle
	FormationTopBottom
	FormationLeftRight
	FormationAllEdges
)

// String returns the formation name.
func (f Formation) String() string {
	switch f {
	case FormationNone:
		return "NONE"
	case FormationGrid:
		return "GRID"
	case FormationCircle:
		return "CIRCLE"
	case FormationTopBottom:
		return "TOP_BOTTOM"
	case FormationLeftRight:
		return "LEFT_RIGHT"
	case FormationAllEdges:
		return "ALL_EDGES"
	default:
		return "UNKNOWN"
	}
}

// Edges returns the spawn edges of an edge formation, or nil for the
// queued formations.
func (f Formation) Edges() []Edge {
	switch f {
	case FormationTopBottom:
		return []Edge{EdgeTop, EdgeBottom}
	case FormationLeftRight:
		return []Edge{EdgeLeft, EdgeRight}
	case FormationAllEdges:
		return []Edge{EdgeLeft, EdgeRight, EdgeTop, EdgeBottom}
	default:
		return nil
	}
}

// TaskKind selects the enemy variant a spawn task produces.
type TaskKind int

const (
	TaskBasic TaskKind = iota
	TaskLine
)

// SpawnTask is one queued future enemy creation.
type SpawnTask struct {
	Kind     TaskKind
	Position core.Vec2
	Velocity core.Vec2
	Speed    float64
	Edge     Edge // only meaningful for TaskLine
}

// EnemySpawnerData is a transient spawn job. The entity is destroyed once
// its queue drains.
type EnemySpawnerData struct {
	Formation Formation
	Count     int
	Center    core.Vec2
	Interval  float64
	Timer     float64
	Queue     []SpawnTask
	Expanded  bool
	Group     int
}

var EnemySpawner = donburi.NewComponentType[EnemySpawnerData]()
