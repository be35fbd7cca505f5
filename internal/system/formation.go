package system

import (
	"math"

	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-swarm/internal/component"
	"github.com/vovakirdan/tui-swarm/internal/config"
	"github.com/vovakirdan/tui-swarm/internal/core"
	"github.com/vovakirdan/tui-swarm/internal/world"
)

// FormationSpawner expands spawn jobs into tasks and drains them into
// concrete enemies at the job's cadence.
type FormationSpawner struct{}

// NewFormationSpawner creates the spawner system.
func NewFormationSpawner() *FormationSpawner {
	return &FormationSpawner{}
}

// Name implements world.System.
func (s *FormationSpawner) Name() string { return "formation-spawner" }

// Update implements world.System.
func (s *FormationSpawner) Update(ctx *world.Context) {
	if !ctx.Flags.Spawning() || ctx.Flags.Pausing {
		return
	}

	ctx.Aspects.Spawners.Each(ctx.World, func(entry *donburi.Entry) {
		job := component.EnemySpawner.Get(entry)
		if !job.Expanded && len(job.Queue) == 0 {
			s.expand(ctx, job)
		}
		s.drain(ctx, entry.Entity(), job)
	})
}

func (s *FormationSpawner) expand(ctx *world.Context, job *component.EnemySpawnerData) {
	job.Expanded = true
	speed := ctx.EnemySpeed(ctx.Cfg.Enemies.BasicSpeed)

	switch job.Formation {
	case component.FormationNone:
		pos := core.V(
			ctx.Rand.FloatRange(0, ctx.Flags.Width),
			ctx.Rand.FloatRange(0, ctx.Flags.Height),
		)
		job.Queue = append(job.Queue, component.SpawnTask{Kind: component.TaskBasic, Position: pos, Speed: speed})

	case component.FormationGrid:
		job.Queue = append(job.Queue, GridTasks(ctx.Cfg.Spawning.Grid, ctx.Flags.Center(), speed)...)

	case component.FormationCircle:
		cc := ctx.Cfg.Spawning.Circle
		n := ctx.Rand.IntRange(cc.MinCount, cc.MaxCount)
		r := ctx.Rand.FloatRange(cc.MinRadius, cc.MaxRadius)
		job.Queue = append(job.Queue, CircleTasks(n, r, job.Center, speed)...)

	case component.FormationTopBottom, component.FormationLeftRight, component.FormationAllEdges:
		s.spawnEdges(ctx, job)
	}

	ctx.Log.Debug("spawn job expanded", "formation", job.Formation, "tasks", len(job.Queue), "group", job.Group)
}

// spawnEdges places every line enemy of an edge formation at once.
func (s *FormationSpawner) spawnEdges(ctx *world.Context, job *component.EnemySpawnerData) {
	speed := ctx.EnemySpeed(ctx.Cfg.Enemies.LineSpeed)
	var tasks []component.SpawnTask
	for _, edge := range job.Formation.Edges() {
		tasks = append(tasks, EdgeTasks(edge, ctx.Cfg.Spawning.EdgeCount, ctx.Flags.Width, ctx.Flags.Height, speed)...)
	}

	cfg := ctx.Cfg
	group := job.Group
	ctx.Commands.Spawn(func(w donburi.World) {
		for _, t := range tasks {
			world.NewEnemy(w, cfg, t, world.EnemyOptions{Group: group, Complete: true})
		}
	})
}

func (s *FormationSpawner) drain(ctx *world.Context, e donburi.Entity, job *component.EnemySpawnerData) {
	if len(job.Queue) > 0 {
		job.Timer += ctx.Delta
		if job.Timer >= job.Interval {
			job.Timer = 0
			task := job.Queue[0]
			job.Queue = job.Queue[1:]

			cfg := ctx.Cfg
			opts := world.EnemyOptions{
				Group:       job.Group,
				InFormation: job.Formation == component.FormationGrid || job.Formation == component.FormationCircle,
			}
			ctx.Commands.Spawn(func(w donburi.World) {
				world.NewEnemy(w, cfg, task, opts)
			})
		}
	}
	if len(job.Queue) > 0 {
		return
	}

	ctx.Commands.Destroy(e)
	group := job.Group
	enemies := ctx.Aspects.Enemies
	ctx.Commands.Spawn(func(w donburi.World) {
		markGroupComplete(w, enemies, group)
	})
}

func markGroupComplete(w donburi.World, enemies *donburi.Query, group int) {
	if group == 0 {
		return
	}
	enemies.Each(w, func(entry *donburi.Entry) {
		st := component.EnemyState.Get(entry)
		if st.Group == group {
			st.FormationSpawnComplete = true
		}
	})
}

// GridTasks lays out a rows × cols grid of basic tasks centered on center.
func GridTasks(g config.GridConfig, center core.Vec2, speed float64) []component.SpawnTask {
	tasks := make([]component.SpawnTask, 0, g.Rows*g.Cols)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			pos := core.V(
				center.X+(float64(col)-float64(g.Cols-1)/2)*g.SpacingX,
				center.Y+(float64(row)-float64(g.Rows-1)/2)*g.SpacingY,
			)
			tasks = append(tasks, component.SpawnTask{Kind: component.TaskBasic, Position: pos, Speed: speed})
		}
	}
	return tasks
}

// CircleTasks places n basic tasks evenly on a circle.
func CircleTasks(n int, radius float64, center core.Vec2, speed float64) []component.SpawnTask {
	tasks := make([]component.SpawnTask, 0, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pos := center.Add(core.V(math.Cos(angle), math.Sin(angle)).Scale(radius))
		tasks = append(tasks, component.SpawnTask{Kind: component.TaskBasic, Position: pos, Speed: speed})
	}
	return tasks
}

// EdgeTasks spaces n line tasks evenly along edge, moving inward.
func EdgeTasks(edge component.Edge, n int, width, height, speed float64) []component.SpawnTask {
	tasks := make([]component.SpawnTask, 0, n)
	vel := edge.Heading().Scale(speed)
	for i := 0; i < n; i++ {
		f := float64(i+1) / float64(n+1)
		var pos core.Vec2
		switch edge {
		case component.EdgeLeft:
			pos = core.V(0, f*height)
		case component.EdgeRight:
			pos = core.V(width, f*height)
		case component.EdgeTop:
			pos = core.V(f*width, height)
		case component.EdgeBottom:
			pos = core.V(f*width, 0)
		}
		tasks = append(tasks, component.SpawnTask{
			Kind:     component.TaskLine,
			Position: pos,
			Velocity: vel,
			Speed:    speed,
			Edge:     edge,
		})
	}
	return tasks
}
