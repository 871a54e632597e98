package core

// Action represents a semantic input action, abstracted from physical key presses.
// Key mapping itself belongs to the host application.
type Action int

const (
	ActionNone      Action = iota
	ActionForward          // move along -Z
	ActionBackward         // move along +Z
	ActionLeftward         // move along -X
	ActionRightward        // move along +X
	ActionJump             // jump impulse
	ActionRestart          // restart after the run ended
	ActionQuit             // leave the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionBackward:
		return "Backward"
	case ActionLeftward:
		return "Leftward"
	case ActionRightward:
		return "Rightward"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action moves the player. Any movement
// while the run is ready starts the timer.
func (a Action) IsMovement() bool {
	switch a {
	case ActionForward, ActionBackward, ActionLeftward, ActionRightward, ActionJump:
		return true
	}
	return false
}

// InputFrame represents the input state for the player during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{
		Actions: make(map[Action]bool),
	}
	for _, a := range actions {
		f.Set(a)
	}
	return f
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

// HasMovement returns true if any movement action was triggered this frame.
func (f InputFrame) HasMovement() bool {
	for a, on := range f.Actions {
		if on && a.IsMovement() {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
