package input

// MoveKey is the closed enumeration of movement keys tracked by the held
// table. Keys outside this set never enter the table.
type MoveKey uint8

const (
	KeyMoveForward  MoveKey = iota // w
	KeyMoveBackward                // s
	KeyMoveLeft                    // a
	KeyMoveRight                   // d
	KeyMoveUp                      // z
	KeyMoveDown                    // x
	KeyLookUp                      // arrow up
	KeyLookDown                    // arrow down
	KeyTurnLeft                    // arrow left
	KeyTurnRight                   // arrow right

	MoveKeyCount
)

var moveKeyNames = [MoveKeyCount]string{
	"move-forward",
	"move-backward",
	"move-left",
	"move-right",
	"move-up",
	"move-down",
	"look-up",
	"look-down",
	"turn-left",
	"turn-right",
}

func (k MoveKey) String() string {
	if k >= MoveKeyCount {
		return "unknown"
	}
	return moveKeyNames[k]
}

// CommandOp is a one-shot command dispatched on press and never stored in
// the held table
type CommandOp uint8

const (
	CommandNone CommandOp = iota
	CommandHelp
	CommandToggleSim
	CommandSingleStep
	CommandCycleMode
	CommandReset
	CommandInvertGravity
	CommandQuit
)

var commandNames = []string{
	"none",
	"help",
	"toggle-sim",
	"single-step",
	"cycle-mode",
	"reset",
	"invert-gravity",
	"quit",
}

func (c CommandOp) String() string {
	if int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// MouseButton distinguishes the picking button, which selects the
// constraint kind
type MouseButton uint8

const (
	ButtonNone MouseButton = iota
	ButtonPrimary
	ButtonSecondary
)
