package tui

import (
	"github.com/nkaryakin/flappyterm/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key string to a semantic action.
// Returns the action (may be ActionNone) and whether it is a quit request.
func (km *KeyMapper) MapKey(key string) (action core.Action, isQuit bool) {
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case " ", "up", "w", "enter":
		return core.ActionClimb, false
	case "p", "esc":
		return core.ActionTogglePause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}
