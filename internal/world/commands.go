package world

import "github.com/yohamta/donburi"

// Commands buffers structural changes requested during a sweep. The
// scheduler flushes it after every system, so no sweep ever sees its own
// creations or removals.
type Commands struct {
	destroy []donburi.Entity
	queued  map[donburi.Entity]struct{}
	spawn   []func(w donburi.World)
}

// NewCommands creates an empty command buffer.
func NewCommands() *Commands {
	return &Commands{queued: make(map[donburi.Entity]struct{})}
}

// Destroy queues e for removal. Queuing the same entity twice is harmless.
func (c *Commands) Destroy(e donburi.Entity) {
	if _, ok := c.queued[e]; ok {
		return
	}
	c.queued[e] = struct{}{}
	c.destroy = append(c.destroy, e)
}

// Destroying reports whether e is already queued for removal.
func (c *Commands) Destroying(e donburi.Entity) bool {
	_, ok := c.queued[e]
	return ok
}

// Spawn queues a creation. fn runs during Flush, after the removals, in
// the order the spawns were queued.
func (c *Commands) Spawn(fn func(w donburi.World)) {
	c.spawn = append(c.spawn, fn)
}

// Pending returns the number of queued operations.
func (c *Commands) Pending() int {
	return len(c.destroy) + len(c.spawn)
}

// Flush applies every queued operation and returns how many entities were
// removed. Stale handles are skipped. Spawn closures may queue more work;
// Flush drains until the buffer is quiet.
func (c *Commands) Flush(w donburi.World) int {
	removed := 0
	for len(c.destroy) > 0 || len(c.spawn) > 0 {
		destroy := c.destroy
		c.destroy = nil
		for _, e := range destroy {
			if !w.Valid(e) {
				continue
			}
			w.Remove(e)
			removed++
		}

		spawn := c.spawn
		c.spawn = nil
		for _, fn := range spawn {
			fn(w)
		}
	}

	clear(c.queued)
	return removed
}
