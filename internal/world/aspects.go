package world

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/vovakirdan/tui-swarm/internal/component"
	"github.com/vovakirdan/tui-swarm/internal/core"
)

// Aspects are the cached queries systems iterate.
type Aspects struct {
	// ActiveGameplay is torn down on every state transition.
	ActiveGameplay *donburi.Query

	Players     *donburi.Query
	Enemies     *donburi.Query
	BasicEnemy  *donburi.Query
	LineEnemy   *donburi.Query
	TaggedEnemy *donburi.Query
	Spawners    *donburi.Query
	PowerUps    *donburi.Query
	Colliders   *donburi.Query
	Movers      *donburi.Query
	Effects     *donburi.Query
	Countdowns  *donburi.Query
	Drawables   *donburi.Query
}

// NewAspects builds the query set.
func NewAspects() *Aspects {
	return &Aspects{
		ActiveGameplay: donburi.NewQuery(filter.Contains(component.Transform)),
		Players: donburi.NewQuery(filter.Contains(
			component.Player, component.Transform,
		)),
		Enemies: donburi.NewQuery(filter.Contains(
			component.Transform, component.EnemyState,
		)),
		BasicEnemy: donburi.NewQuery(filter.And(
			filter.Contains(component.Transform, component.Velocity, component.EnemyState),
			filter.Not(filter.Contains(component.EnemyLine)),
		)),
		LineEnemy: donburi.NewQuery(filter.Contains(
			component.Transform, component.Velocity, component.EnemyState, component.EnemyLine,
		)),
		TaggedEnemy: donburi.NewQuery(filter.Contains(
			component.Tag, component.Transform, component.EnemyState,
		)),
		Spawners:   donburi.NewQuery(filter.Contains(component.EnemySpawner)),
		PowerUps:   donburi.NewQuery(filter.Contains(component.PowerUp, component.Transform)),
		Colliders:  donburi.NewQuery(filter.Contains(component.Transform, component.Collider)),
		Movers:     donburi.NewQuery(filter.Contains(component.Transform, component.Velocity)),
		Effects:    donburi.NewQuery(filter.Contains(component.FX, component.Transform)),
		Countdowns: donburi.NewQuery(filter.Contains(component.Countdown, component.Transform)),
		Drawables:  donburi.NewQuery(filter.Contains(component.Transform, component.Sprite)),
	}
}

// Player returns the player entry, if one exists.
func (c *Context) Player() (*donburi.Entry, bool) {
	return c.Aspects.Players.First(c.World)
}

// PlayerPosition returns the player's position, or the world center when
// there is no player.
func (c *Context) PlayerPosition() (core.Vec2, bool) {
	e, ok := c.Player()
	if !ok {
		return c.Flags.Center(), false
	}
	return component.Transform.Get(e).Position, true
}

// Collect returns the entries of q. Use it when the loop body makes
// structural changes that would disturb a live iteration.
func Collect(w donburi.World, q *donburi.Query) []*donburi.Entry {
	var out []*donburi.Entry
	q.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}
