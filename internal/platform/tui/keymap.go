package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/slopetap/slopetap/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game inputs.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToFrame updates an input frame from a key message. Pole pushes are
// stamped with at, the arrival time relative to program start, so rhythm
// timing does not depend on tick alignment. Returns true on a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, at time.Duration) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true

	case "left", "a":
		frame.Push(core.SideLeft, at)
	case "right", "d":
		frame.Push(core.SideRight, at)

	case " ", "up", "w":
		frame.Set(core.ActionJump)
	case "down", "s":
		frame.Set(core.ActionDuck)
	case "enter":
		frame.Set(core.ActionStart)
	case "r":
		frame.Set(core.ActionRestart)
	case "p", "esc":
		frame.Set(core.ActionPause)
	}

	return false
}
