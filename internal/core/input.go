package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionFire           // Space - special attack, thrust
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
	ActionChoice1        // 1 - first upgrade offer
	ActionChoice2        // 2 - second upgrade offer
	ActionChoice3        // 3 - third upgrade offer
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionFire:    "Fire",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
	ActionChoice1: "Choice1",
	ActionChoice2: "Choice2",
	ActionChoice3: "Choice3",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame is the input state for one simulation tick: the set of active
// actions plus an optional analog stick vector.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool

	// Analog is a stick vector in [-1, 1] per axis. When non-zero it takes
	// precedence over the digital directions.
	Analog Vec2
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
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
	f.Analog = Vec2{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Analog = f.Analog
	return clone
}

// Direction returns the movement intent for this frame.
// Analog input is normalized only when its magnitude exceeds 1. Digital input
// yields -1/0/+1 per axis with diagonals scaled by Diagonal. Opposite keys
// resolve to the later one in reading order (down wins over up, right over left).
func (f InputFrame) Direction() Vec2 {
	if f.Analog.Len() > 0 {
		return LimitLen(f.Analog, 1)
	}

	var x, y float64
	if f.Has(ActionUp) {
		y = -1
	}
	if f.Has(ActionDown) {
		y = 1
	}
	if f.Has(ActionLeft) {
		x = -1
	}
	if f.Has(ActionRight) {
		x = 1
	}
	if x != 0 && y != 0 {
		x *= Diagonal
		y *= Diagonal
	}
	return V(x, y)
}

// Choice returns the zero-based upgrade offer selected this frame, or -1.
func (f InputFrame) Choice() int {
	switch {
	case f.Has(ActionChoice1):
		return 0
	case f.Has(ActionChoice2):
		return 1
	case f.Has(ActionChoice3):
		return 2
	}
	return -1
}
