package core

// Action represents a semantic game intent, abstracted from physical key
// presses. The simulation works with high-level intents rather than raw
// input; jumping is autonomous and has no action.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // A, Left arrow - run left (held state)
	ActionMoveRight        // D, Right arrow - run right (held state)
	ActionPause            // P, Escape - pause/unpause the attempt
	ActionRestart          // R - restart the attempt after death
	ActionQuit             // Q, Ctrl+C - abandon the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the held input state for a single simulation tick.
// Move actions are held-state: present while the key is down. Edge detection
// and key repeat live in the platform layer, never in the simulation.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
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

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
