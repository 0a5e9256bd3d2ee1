package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow
	ActionDown             // S, Down arrow
	ActionLeft             // A, Left arrow
	ActionRight            // D, Right arrow
	ActionJump             // Space - jump (craft) / context action (farm)
	ActionPlace            // Z, Enter - place the selected block at the target
	ActionMine             // X - mine the targeted block
	ActionTill             // E - till soil (farm)
	ActionSlot1            // 1..5 - hotbar slot selection
	ActionSlot2
	ActionSlot3
	ActionSlot4
	ActionSlot5
	ActionHotbar  // Tab - toggle hotbar visibility
	ActionSave    // Ctrl+S - save world to disk
	ActionLoad    // Ctrl+L - load world from disk
	ActionConfirm // Enter - confirm selection in menu
	ActionBack    // B, Escape - go back to menu
	ActionRestart // R - regenerate the world
	ActionQuit    // Q, Ctrl+C - exit game/session
	ActionPause   // P - pause/unpause game
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
	case ActionJump:
		return "Jump"
	case ActionPlace:
		return "Place"
	case ActionMine:
		return "Mine"
	case ActionTill:
		return "Till"
	case ActionSlot1, ActionSlot2, ActionSlot3, ActionSlot4, ActionSlot5:
		return "Slot"
	case ActionHotbar:
		return "Hotbar"
	case ActionSave:
		return "Save"
	case ActionLoad:
		return "Load"
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

// SlotIndex returns the 1-based hotbar slot for slot actions, or 0 otherwise.
func (a Action) SlotIndex() int {
	if a >= ActionSlot1 && a <= ActionSlot5 {
		return int(a-ActionSlot1) + 1
	}
	return 0
}

// ClickButton identifies which mouse button produced a click.
type ClickButton int

const (
	ClickLeft  ClickButton = iota // mine
	ClickRight                    // place
)

// Click is a mouse click in screen cell coordinates. Games translate it to
// world coordinates through their camera.
type Click struct {
	X, Y   int
	Button ClickButton
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions and clicks that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Clicks holds mouse clicks received this frame, in arrival order.
	Clicks []Click
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

// AddClick records a mouse click for this frame.
func (f *InputFrame) AddClick(c Click) {
	f.Clicks = append(f.Clicks, c)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Slot returns the 1-based hotbar slot selected this frame, or 0 if none.
func (f InputFrame) Slot() int {
	for a := ActionSlot1; a <= ActionSlot5; a++ {
		if f.Has(a) {
			return a.SlotIndex()
		}
	}
	return 0
}

// Clear resets all actions and clicks for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Clicks = append(clone.Clicks, f.Clicks...)
	return clone
}
