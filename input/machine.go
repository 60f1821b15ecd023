package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scene-pilot/constants"
)

// Machine parses raw tcell events into semantic Intents.
// Terminals deliver auto-repeat key presses but no key releases, so the
// machine also tracks press recency and synthesizes release intents for
// movement keys that stopped repeating (see ExpireHeld).
type Machine struct {
	lastButtons tcell.ButtonMask
	pressedAt   [MoveKeyCount]time.Time
	holdExpiry  time.Duration

	now func() time.Time
}

// NewMachine creates an input machine using the wall clock
func NewMachine() *Machine {
	return &Machine{
		holdExpiry: constants.KeyHoldExpiry,
		now:        time.Now,
	}
}

// Process parses one terminal event. Returns nil when the event carries no
// semantic meaning.
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return &Intent{Type: IntentQuit}
	case tcell.KeyUp:
		return m.movePress(KeyLookUp)
	case tcell.KeyDown:
		return m.movePress(KeyLookDown)
	case tcell.KeyLeft:
		return m.movePress(KeyTurnLeft)
	case tcell.KeyRight:
		return m.movePress(KeyTurnRight)
	case tcell.KeyRune:
		// fall through to rune handling
	default:
		return nil
	}

	switch ev.Rune() {
	case 'w':
		return m.movePress(KeyMoveForward)
	case 's':
		return m.movePress(KeyMoveBackward)
	case 'a':
		return m.movePress(KeyMoveLeft)
	case 'd':
		return m.movePress(KeyMoveRight)
	case 'z':
		return m.movePress(KeyMoveUp)
	case 'x':
		return m.movePress(KeyMoveDown)
	case 'h':
		return &Intent{Type: IntentCommand, Command: CommandHelp}
	case ' ':
		return &Intent{Type: IntentCommand, Command: CommandToggleSim}
	case '.':
		return &Intent{Type: IntentCommand, Command: CommandSingleStep}
	case 'm':
		return &Intent{Type: IntentCommand, Command: CommandCycleMode}
	case 'r':
		return &Intent{Type: IntentCommand, Command: CommandReset}
	case 'v':
		return &Intent{Type: IntentCommand, Command: CommandInvertGravity}
	}
	return nil
}

func (m *Machine) movePress(k MoveKey) *Intent {
	m.pressedAt[k] = m.now()
	return &Intent{Type: IntentMovePress, Key: k}
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	shift := ev.Modifiers()&tcell.ModShift != 0
	buttons := ev.Buttons()

	// Wheel bits are momentary, not part of the press/release mask
	if buttons&tcell.WheelUp != 0 {
		return &Intent{Type: IntentMouseScroll, MouseX: x, MouseY: y, Scroll: 1, Shift: shift}
	}
	if buttons&tcell.WheelDown != 0 {
		return &Intent{Type: IntentMouseScroll, MouseX: x, MouseY: y, Scroll: -1, Shift: shift}
	}

	prev := m.lastButtons
	m.lastButtons = buttons

	// Newly pressed buttons
	if pressed := buttons &^ prev; pressed != 0 {
		btn := ButtonPrimary
		if pressed&tcell.Button2 != 0 {
			btn = ButtonSecondary
		}
		return &Intent{Type: IntentMousePress, MouseX: x, MouseY: y, Button: btn, Shift: shift}
	}

	// Newly released buttons
	if released := prev &^ buttons; released != 0 {
		return &Intent{Type: IntentMouseRelease, MouseX: x, MouseY: y}
	}

	// Plain motion, possibly with a button held (drag)
	btn := ButtonNone
	if buttons&tcell.Button1 != 0 {
		btn = ButtonPrimary
	} else if buttons&tcell.Button2 != 0 {
		btn = ButtonSecondary
	}
	return &Intent{Type: IntentMouseMove, MouseX: x, MouseY: y, Button: btn, Shift: shift}
}

// ExpireHeld returns release intents for movement keys whose auto-repeat
// stream went quiet for longer than the hold expiry. Called once per frame.
func (m *Machine) ExpireHeld() []Intent {
	now := m.now()
	var released []Intent
	for k := MoveKey(0); k < MoveKeyCount; k++ {
		if m.pressedAt[k].IsZero() {
			continue
		}
		if now.Sub(m.pressedAt[k]) > m.holdExpiry {
			m.pressedAt[k] = time.Time{}
			released = append(released, Intent{Type: IntentMoveRelease, Key: k})
		}
	}
	return released
}

// Reset clears press recency and button state, used on scene reset
func (m *Machine) Reset() {
	m.pressedAt = [MoveKeyCount]time.Time{}
	m.lastButtons = 0
}
