package agent

// Action is the closed set of discrete agent actions bound to movement keys
type Action uint8

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionLookUp
	ActionLookDown
	ActionTurnLeft
	ActionTurnRight

	ActionCount
)

var actionNames = [ActionCount]string{
	"move_forward",
	"move_backward",
	"move_left",
	"move_right",
	"move_up",
	"move_down",
	"look_up",
	"look_down",
	"turn_left",
	"turn_right",
}

func (a Action) String() string {
	if a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
