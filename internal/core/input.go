package core

// Action represents a semantic game action, abstracted from physical key
// presses. Mapping raw device events to this vocabulary is the platform's
// job; the simulation only ever sees these.
type Action int

const (
	ActionNone        Action = iota
	ActionClimb              // Space, Up, W, Enter - start a climb
	ActionTogglePause        // P, Esc - pause/unpause
	ActionQuit               // Q, Ctrl+C - end the session
	ActionRestart            // R - restart after game over (platform-level)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionClimb:
		return "Climb"
	case ActionTogglePause:
		return "TogglePause"
	case ActionQuit:
		return "Quit"
	case ActionRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
