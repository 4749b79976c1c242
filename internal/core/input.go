package core

import "time"

// Side identifies which pole the player planted: the rhythm engine reacts to
// left/right alternation, not to individual presses.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Other returns the opposite side. SideNone maps to itself.
func (s Side) Other() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// Action represents a semantic game action, abstracted from physical key
// presses. Left/right pole pushes are not actions: they carry timestamps and
// travel as PushEvents instead.
type Action int

const (
	ActionNone Action = iota
	ActionJump
	ActionDuck
	ActionStart   // Enter/Space on the title screen
	ActionRestart // R after a run ends
	ActionPause
	ActionBack
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionJump:
		return "Jump"
	case ActionDuck:
		return "Duck"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// PushEvent is a single directional input, stamped with the monotonic time at
// which it arrived. The stamp is taken at key arrival, not at the tick that
// consumes it, so rhythm timing is unaffected by frame alignment.
type PushEvent struct {
	Side Side
	At   time.Duration
}

// InputFrame is the buffered input for a single simulation tick: the tick's
// own timestamp, boolean actions, and the ordered pole pushes that arrived
// since the previous tick.
type InputFrame struct {
	Now     time.Duration
	Actions map[Action]bool
	Pushes  []PushEvent
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

// Push appends a timestamped pole push. Arrival order is preserved.
func (f *InputFrame) Push(side Side, at time.Duration) {
	f.Pushes = append(f.Pushes, PushEvent{Side: side, At: at})
}

// Clear resets actions and pushes for the next frame. Now is left alone;
// the platform overwrites it each tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pushes = f.Pushes[:0]
}
