package world

import (
	"github.com/yohamta/donburi"
	ecs "github.com/yohamta/donburi/component"

	"github.com/vovakirdan/tui-swarm/internal/component"
	"github.com/vovakirdan/tui-swarm/internal/config"
	"github.com/vovakirdan/tui-swarm/internal/core"
)

// NewPlayer creates the player ship. The power-up state is attached lazily
// on the first pickup.
func NewPlayer(w donburi.World, cfg config.SwarmConfig, pos core.Vec2) donburi.Entity {
	e := w.Create(
		component.Transform,
		component.Velocity,
		component.Collider,
		component.Tag,
		component.Player,
		component.Sprite,
	)
	entry := w.Entry(e)
	scale := cfg.Player.Scale
	component.Transform.SetValue(entry, component.TransformData{
		Position: pos,
		Scale:    core.V(scale, scale),
	})
	component.Collider.SetValue(entry, component.ColliderData{Radius: cfg.Player.Radius})
	component.Tag.SetValue(entry, component.TagData{Kind: component.TagPlayer})
	component.Player.SetValue(entry, component.PlayerData{Heading: core.V(0, 1)})
	component.Sprite.SetValue(entry, component.SpriteData{Path: component.SpritePlayer})
	return e
}

// EnemyOptions carries the formation bookkeeping of a spawned enemy.
type EnemyOptions struct {
	Group       int
	InFormation bool
	Complete    bool
}

// NewEnemy creates the enemy variant the task asks for. Enemies start
// immune at zero scale.
func NewEnemy(w donburi.World, cfg config.SwarmConfig, task component.SpawnTask, opts EnemyOptions) donburi.Entity {
	comps := []ecs.IComponentType{
		component.Transform,
		component.Velocity,
		component.Collider,
		component.Tag,
		component.EnemyState,
		component.Sprite,
	}
	sprite := component.SpriteEnemy
	if task.Kind == component.TaskLine {
		comps = append(comps, component.EnemyLine)
		sprite = component.SpriteLineEnemy
	}

	e := w.Create(comps...)
	entry := w.Entry(e)
	component.Transform.SetValue(entry, component.TransformData{Position: task.Position})
	component.Velocity.SetValue(entry, component.VelocityData{Velocity: task.Velocity})
	component.Collider.SetValue(entry, component.ColliderData{Radius: cfg.Enemies.Radius})
	component.Tag.SetValue(entry, component.TagData{Kind: component.TagEnemy})

	state := component.NewEnemyState(task.Speed, cfg.Enemies.ImmuneTime)
	state.Group = opts.Group
	state.InFormation = opts.InFormation
	state.FormationSpawnComplete = opts.Complete
	component.EnemyState.SetValue(entry, state)
	component.Sprite.SetValue(entry, component.SpriteData{Path: sprite})

	if task.Kind == component.TaskLine {
		component.EnemyLine.SetValue(entry, component.EnemyLineData{
			SpawnEdge: task.Edge,
			Heading:   task.Edge.Heading(),
		})
	}
	return e
}

// NewSpawner creates a transient spawn job entity.
func NewSpawner(w donburi.World, job component.EnemySpawnerData) donburi.Entity {
	e := w.Create(component.Transform, component.EnemySpawner)
	entry := w.Entry(e)
	component.Transform.SetValue(entry, component.TransformData{
		Position: job.Center,
		Scale:    core.V(1, 1),
	})
	component.EnemySpawner.SetValue(entry, job)
	return e
}

// NewPowerUp creates a collectible pickup.
func NewPowerUp(w donburi.World, cfg config.SwarmConfig, kind component.PowerUpKind, pos core.Vec2) donburi.Entity {
	e := w.Create(
		component.Transform,
		component.Collider,
		component.Tag,
		component.PowerUp,
		component.Sprite,
	)
	entry := w.Entry(e)
	component.Transform.SetValue(entry, component.TransformData{
		Position: pos,
		Scale:    core.V(1, 1),
	})
	component.Collider.SetValue(entry, component.ColliderData{Radius: cfg.PowerUps.Radius})
	component.Tag.SetValue(entry, component.TagData{Kind: component.TagPowerUp})
	component.PowerUp.SetValue(entry, component.PowerUpData{Kind: kind, Lifetime: cfg.PowerUps.Lifetime})
	component.Sprite.SetValue(entry, component.SpriteData{Path: kind.Sprite()})
	return e
}

// NewFX creates a visual effect. A non-zero velocity makes the effect
// drift under physics.
func NewFX(w donburi.World, fx component.FXData, pos, vel core.Vec2) donburi.Entity {
	comps := []ecs.IComponentType{component.Transform, component.FX, component.Sprite}
	if !vel.IsZero() {
		comps = append(comps, component.Velocity)
	}
	if fx.Kind == component.FXLaser {
		comps = append(comps, component.Tag)
	}

	e := w.Create(comps...)
	entry := w.Entry(e)
	if fx.Duration == 0 {
		fx.Duration = fx.Remaining
	}
	component.Transform.SetValue(entry, component.TransformData{
		Position: pos,
		Scale:    core.V(1, 1),
	})
	component.FX.SetValue(entry, fx)
	component.Sprite.SetValue(entry, component.SpriteData{Path: fx.Kind.Sprite()})
	if !vel.IsZero() {
		component.Velocity.SetValue(entry, component.VelocityData{Velocity: vel})
	}
	if fx.Kind == component.FXLaser {
		component.Tag.SetValue(entry, component.TagData{Kind: component.TagLaserBeam})
	}
	return e
}

// NewCountdown creates the START_TIME entity.
func NewCountdown(w donburi.World, seconds float64, pos core.Vec2) donburi.Entity {
	e := w.Create(component.Transform, component.Tag, component.Countdown, component.Sprite)
	entry := w.Entry(e)
	component.Transform.SetValue(entry, component.TransformData{
		Position: pos,
		Scale:    core.V(1, 1),
	})
	component.Tag.SetValue(entry, component.TagData{Kind: component.TagStartTime})
	component.Countdown.SetValue(entry, component.CountdownData{Remaining: seconds})
	component.Sprite.SetValue(entry, component.SpriteData{Path: component.SpriteCountdown})
	return e
}

// NewScoreUI creates the SCORE_UI anchor the renderer prints the score at.
func NewScoreUI(w donburi.World, pos core.Vec2) donburi.Entity {
	e := w.Create(component.Transform, component.Tag, component.Sprite)
	entry := w.Entry(e)
	component.Transform.SetValue(entry, component.TransformData{
		Position: pos,
		Scale:    core.V(1, 1),
	})
	component.Tag.SetValue(entry, component.TagData{Kind: component.TagScoreUI})
	component.Sprite.SetValue(entry, component.SpriteData{Path: component.SpriteScore})
	return e
}
