package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/horde-arcade/internal/core"
)

// holdTicks is how many ticks a movement key stays down after its last key
// event. Terminals report presses and auto-repeat but never releases, so a
// key counts as held until its repeat stops arriving.
const holdTicks = 9

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionFire, false
	case "1":
		return core.ActionChoice1, false
	case "2":
		return core.ActionChoice2, false
	case "3":
		return core.ActionChoice3, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// HeldKeys accumulates key events between ticks. Movement and fire keys stay
// active for holdTicks ticks; everything else lasts for exactly one frame.
type HeldKeys struct {
	held    map[core.Action]int
	pressed map[core.Action]bool
}

// NewHeldKeys creates an empty key state.
func NewHeldKeys() *HeldKeys {
	return &HeldKeys{
		held:    make(map[core.Action]int),
		pressed: make(map[core.Action]bool),
	}
}

func isHeld(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionFire:
		return true
	}
	return false
}

// opposite returns the direction that a press of a cancels.
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
	}
	return core.ActionNone
}

// Press records a key event.
func (h *HeldKeys) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !isHeld(a) {
		h.pressed[a] = true
		return
	}
	delete(h.held, opposite(a))
	h.held[a] = holdTicks
}

// Frame returns the input for the next tick and ages the held keys.
func (h *HeldKeys) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, left := range h.held {
		frame.Set(a)
		if left <= 1 {
			delete(h.held, a)
		} else {
			h.held[a] = left - 1
		}
	}
	for a := range h.pressed {
		frame.Set(a)
		delete(h.pressed, a)
	}
	return frame
}

// Release drops every key, e.g. on restart.
func (h *HeldKeys) Release() {
	clear(h.held)
	clear(h.pressed)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
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
