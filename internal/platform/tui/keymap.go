package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"termcraft/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes bindings and makes them testable.
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
	case " ": // jump (craft) / context action (farm)
		return core.ActionJump, false
	case "z", "enter":
		return core.ActionPlace, false
	case "x":
		return core.ActionMine, false
	case "e":
		return core.ActionTill, false
	case "1":
		return core.ActionSlot1, false
	case "2":
		return core.ActionSlot2, false
	case "3":
		return core.ActionSlot3, false
	case "4":
		return core.ActionSlot4, false
	case "5":
		return core.ActionSlot5, false
	case "tab":
		return core.ActionHotbar, false
	case "ctrl+s":
		return core.ActionSave, false
	case "ctrl+l":
		return core.ActionLoad, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse translates a mouse press into a game click. Only left and right
// button presses map; motion and release events are discarded.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (core.Click, bool) {
	if msg.Action != tea.MouseActionPress {
		return core.Click{}, false
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		return core.Click{X: msg.X, Y: msg.Y, Button: core.ClickLeft}, true
	case tea.MouseButtonRight:
		return core.Click{X: msg.X, Y: msg.Y, Button: core.ClickRight}, true
	}
	return core.Click{}, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionStats
	MenuActionQuit
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
	case "tab":
		return MenuActionStats
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
