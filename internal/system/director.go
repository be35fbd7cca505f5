package system

import (
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-swarm/internal/component"
	"github.com/vovakirdan/tui-swarm/internal/world"
)

var specialFormations = []component.Formation{
	component.FormationTopBottom,
	component.FormationLeftRight,
	component.FormationAllEdges,
}

// SpawnDirector schedules enemy formation jobs while the live population
// is below the threshold.
type SpawnDirector struct {
	timer float64
}

// NewSpawnDirector creates a director with an empty timer.
func NewSpawnDirector() *SpawnDirector {
	return &SpawnDirector{}
}

// Name implements world.System.
func (d *SpawnDirector) Name() string { return "spawn-director" }

// Update implements world.System.
func (d *SpawnDirector) Update(ctx *world.Context) {
	if !ctx.Flags.Spawning() {
		return
	}

	d.timer += ctx.Delta
	if d.timer < ctx.Cfg.Spawning.DirectorInterval {
		return
	}
	d.timer = 0
	d.Direct(ctx)
}

// Direct runs one scheduling decision immediately.
func (d *SpawnDirector) Direct(ctx *world.Context) {
	live := ctx.Aspects.Enemies.Count(ctx.World)
	threshold := ctx.EnemyThreshold()
	if live >= threshold {
		return
	}

	sc := ctx.Cfg.Spawning
	d.schedule(ctx, d.defaultFormation(ctx))

	if ctx.Rand.Chance(sc.SpecialChance) {
		d.schedule(ctx, specialFormations[ctx.Rand.Intn(len(specialFormations))])
	}
}

func (d *SpawnDirector) defaultFormation(ctx *world.Context) component.Formation {
	sc := ctx.Cfg.Spawning
	roll := ctx.Rand.Float64()
	switch {
	case roll < sc.GridChance:
		return component.FormationGrid
	case roll < sc.GridChance+sc.CircleChance:
		return component.FormationCircle
	default:
		return component.FormationNone
	}
}

func (d *SpawnDirector) schedule(ctx *world.Context, f component.Formation) {
	sc := ctx.Cfg.Spawning
	center := ctx.Flags.Center()
	if f == component.FormationGrid || f == component.FormationCircle {
		center, _ = ctx.PlayerPosition()
	}

	job := component.EnemySpawnerData{
		Formation: f,
		Count:     ctx.Rand.IntRange(sc.MinCount, sc.MaxCount),
		Center:    center,
		Interval:  sc.TaskInterval,
		Group:     ctx.NextGroup(),
	}
	ctx.Commands.Spawn(func(w donburi.World) {
		world.NewSpawner(w, job)
	})
	ctx.Log.Debug("spawn job scheduled", "formation", f, "count", job.Count, "group", job.Group)
}
