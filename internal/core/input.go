package core

// Action represents a semantic platform action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionRestart        // Ctrl+R - new run with a fresh seed
	ActionPause          // Escape - pause/unpause during play
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// KeyNone is recorded for presses that carry no printable character
// (arrows, enter, function keys). They still count as "any key".
const KeyNone rune = 0

// InputFrame represents the input collected during one simulation tick.
// Actions are order-independent; key presses keep their arrival order.
type InputFrame struct {
	Actions map[Action]bool
	Keys    []rune
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

// Press appends a raw key press. Use KeyNone for non-character keys.
func (f *InputFrame) Press(r rune) {
	f.Keys = append(f.Keys, r)
}

// Pressed reports whether any key was pressed this frame.
func (f InputFrame) Pressed() bool {
	return len(f.Keys) > 0
}

// Clear resets all actions and key presses for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Keys = f.Keys[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Keys) > 0 {
		clone.Keys = append([]rune(nil), f.Keys...)
	}
	return clone
}
