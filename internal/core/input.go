package core

// Action is a player intent decoupled from the physical key that produced it.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionFlip    // flip the card under the cursor, or continue after a win
	ActionNewGame // drop the save and deal a fresh grid
	ActionBack
	ActionQuit
	ActionPause
	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionFlip:    "Flip",
	ActionNewGame: "NewGame",
	ActionBack:    "Back",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame collects the actions pressed between two simulation ticks.
// It is a value type, so a game may keep the frame it was handed.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns a frame with no actions set.
func NewInputFrame() InputFrame { return InputFrame{} }

// Set marks a as pressed. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action was pressed.
func (f InputFrame) Empty() bool { return f.bits == 0 }

// Clear drops every action so the frame can be reused.
func (f *InputFrame) Clear() { f.bits = 0 }
