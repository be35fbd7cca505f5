package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-swarm/internal/core"
)

// DefaultHoldTicks is how long a movement key counts as held after a
// press. Terminals only report key repeats, never releases.
const DefaultHoldTicks = 8

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case " ", "f":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// opposite returns the movement action cancelled by a.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	default:
		return core.ActionNone
	}
}

func isMovement(a core.Action) bool {
	return opposite(a) != core.ActionNone
}

// HeldInput turns discrete key presses into a per-tick input frame.
// Movement keys stay held for a few ticks; other actions last one tick.
type HeldInput struct {
	holdTicks int
	held      map[core.Action]int
	once      core.InputFrame
}

// NewHeldInput creates an input accumulator. holdTicks <= 0 uses
// DefaultHoldTicks.
func NewHeldInput(holdTicks int) *HeldInput {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &HeldInput{
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
		once:      core.NewInputFrame(),
	}
}

// Press records an action.
func (h *HeldInput) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if isMovement(a) {
		delete(h.held, opposite(a))
		h.held[a] = h.holdTicks
		return
	}
	h.once.Set(a)
}

// Frame returns the input for the next tick and ages the held keys.
func (h *HeldInput) Frame() core.InputFrame {
	frame := h.once.Clone()
	for a, ticks := range h.held {
		frame.Set(a)
		if ticks <= 1 {
			delete(h.held, a)
		} else {
			h.held[a] = ticks - 1
		}
	}
	h.once.Clear()
	return frame
}

// Release drops every held key.
func (h *HeldInput) Release() {
	clear(h.held)
	h.once.Clear()
}
