package core

import "strings"

// Action is a player intent decoded from a key press by the platform.
type Action uint8

const (
	ActionNone    Action = iota
	ActionUp             // w: left paddle up
	ActionDown           // s: left paddle down
	ActionAltUp          // up arrow: right paddle in versus, left paddle against the CPU
	ActionAltDown        // down arrow
	ActionBack           // esc, b: pause, or leave a paused or finished match
	ActionRestart        // r: new match after game over
	ActionQuit           // q, ctrl+c
	ActionPause          // p
	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "AltUp", "AltDown", "Back", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions seen during one tick. The zero value is
// an empty frame, and frames are plain values that copy cheaply.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

func (f *InputFrame) Set(a Action) {
	if a < actionCount {
		f.bits |= 1 << a
	}
}

func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// String lists the actions in the frame, for logs and test failures.
func (f InputFrame) String() string {
	var names []string
	for a := ActionUp; a < actionCount; a++ {
		if f.Has(a) {
			names = append(names, a.String())
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}
