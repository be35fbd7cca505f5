// Package system holds the per-tick sweeps of the swarm simulation.
//
// Every system implements world.System. Systems never create or remove
// entities while iterating; they queue the change on ctx.Commands and the
// scheduler applies it after the sweep.
package system
