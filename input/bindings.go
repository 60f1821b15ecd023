package input

import (
	"github.com/lixenwraith/scene-pilot/agent"
)

// Bindings maps each movement key to the agent action it actuates.
// Fixed after construction; iteration order is the MoveKey declaration
// order, which fixes the per-tick replay order of simultaneously held keys.
type Bindings [MoveKeyCount]agent.Action

// DefaultBindings returns the standard WASD+ZX+arrows layout
func DefaultBindings() Bindings {
	return Bindings{
		KeyMoveForward:  agent.ActionMoveForward,
		KeyMoveBackward: agent.ActionMoveBackward,
		KeyMoveLeft:     agent.ActionMoveLeft,
		KeyMoveRight:    agent.ActionMoveRight,
		KeyMoveUp:       agent.ActionMoveUp,
		KeyMoveDown:     agent.ActionMoveDown,
		KeyLookUp:       agent.ActionLookUp,
		KeyLookDown:     agent.ActionLookDown,
		KeyTurnLeft:     agent.ActionTurnLeft,
		KeyTurnRight:    agent.ActionTurnRight,
	}
}

// ActiveActions collects the actions of every held key in binding order
func (b Bindings) ActiveActions(held *HeldSet) []agent.Action {
	actions := make([]agent.Action, 0, MoveKeyCount)
	for k := MoveKey(0); k < MoveKeyCount; k++ {
		if held.IsHeld(k) {
			actions = append(actions, b[k])
		}
	}
	return actions
}
