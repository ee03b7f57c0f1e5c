package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions so game logic never sees raw
// input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, h - shift the falling piece left
	ActionRight            // Right arrow, l - shift the falling piece right
	ActionSoftDrop         // Down arrow, j - move the piece down one row
	ActionRotateCW         // Up arrow, x - rotate clockwise
	ActionRotateCCW        // Z - rotate counterclockwise
	ActionHardDrop         // Space - drop the piece to its resting place
	ActionConfirm          // Enter - confirm selection in menus
	ActionBack             // B, Escape - go back to the menu
	ActionRestart          // R - restart after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionHardDrop:
		return "HardDrop"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
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

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
