package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionFire           // Space - fire the laser
	ActionConfirm        // Enter - leave menu / high-score screen
	ActionPause          // P - pause/unpause
	ActionBack           // Esc - back to main menu
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Tilt is an analog direction in [-1, 1] per axis, y-up. Platforms with
	// an accelerometer or gamepad write it directly; keyboard platforms leave
	// it zero and the directional actions are used instead.
	Tilt Vec2
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Axis returns the movement direction for this frame. An explicit tilt wins
// over directional actions. The result is clamped to unit length.
func (f InputFrame) Axis() Vec2 {
	axis := f.Tilt
	if axis.IsZero() {
		if f.Has(ActionLeft) {
			axis.X--
		}
		if f.Has(ActionRight) {
			axis.X++
		}
		if f.Has(ActionUp) {
			axis.Y++
		}
		if f.Has(ActionDown) {
			axis.Y--
		}
	}
	if axis.Len() > 1 {
		axis = axis.Normalize()
	}
	return axis
}

// Clear resets all actions and the tilt for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Tilt = Vec2{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Tilt = f.Tilt
	return clone
}
