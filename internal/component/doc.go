// Package component declares the donburi component types of the swarm world.
//
// Components are plain data. Behavior lives in package system; creation
// helpers live in package world.
package component
