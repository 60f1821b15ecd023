package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scene-pilot/agent"
	"github.com/lixenwraith/scene-pilot/physics"
	"github.com/lixenwraith/scene-pilot/vmath"
)

// StatusProvider supplies the status-line fields drawn each frame
type StatusProvider interface {
	ModeName() string
	Simulating() bool
	HasGrab() bool
}

// Terminal is the render surface: it projects the scene through the
// agent's active sensor onto the terminal cell grid. Framebuffer and
// window sizes are both the cell grid here; the distinction is kept for
// the mouse-rescaling contract.
type Terminal struct {
	screen tcell.Screen
	width  int
	height int

	world  *physics.World
	agt    *agent.Agent
	status StatusProvider

	dirty       bool
	helpVisible bool
}

// NewTerminal wraps an initialized tcell screen
func NewTerminal(screen tcell.Screen, world *physics.World, agt *agent.Agent) *Terminal {
	w, h := screen.Size()
	return &Terminal{
		screen: screen,
		width:  w,
		height: h,
		world:  world,
		agt:    agt,
		dirty:  true,
	}
}

// SetStatus attaches the status-line provider
func (t *Terminal) SetStatus(s StatusProvider) {
	t.status = s
}

// FramebufferSize returns the drawable size in cells
func (t *Terminal) FramebufferSize() (int, int) {
	return t.width, t.height
}

// WindowSize returns the window size in cells. Identical to the
// framebuffer on terminals; mouse rescaling stays a no-op here.
func (t *Terminal) WindowSize() (int, int) {
	return t.width, t.height
}

// Resize updates the cell grid dimensions
func (t *Terminal) Resize(width, height int) {
	t.width = width
	t.height = height
	t.screen.Sync()
	t.dirty = true
}

// RequestRedraw marks the frame dirty
func (t *Terminal) RequestRedraw() {
	t.dirty = true
}

// ToggleHelp flips the help overlay
func (t *Terminal) ToggleHelp() {
	t.helpVisible = !t.helpVisible
	t.dirty = true
}

// Present draws the scene if dirty and swaps it to the terminal
func (t *Terminal) Present() {
	if !t.dirty {
		return
	}
	t.dirty = false

	t.screen.Clear()
	t.drawScene()
	t.drawStatusBar()
	if t.helpVisible {
		t.drawHelp()
	}
	t.screen.Show()
}

func (t *Terminal) drawStatusBar() {
	if t.status == nil || t.height == 0 {
		return
	}
	sim := "off"
	if t.status.Simulating() {
		sim = "on"
	}
	grab := ""
	if t.status.HasGrab() {
		grab = " [grab]"
	}
	cam := t.agt.Camera()
	yawDeg := t.agt.NormalizedYaw() / vmath.Deg2Rad
	line := fmt.Sprintf(" %s | sim:%s%s | fov:%.0f | pos %.1f,%.1f,%.1f yaw %.0f | 'h' help ",
		t.status.ModeName(), sim, grab, cam.FOV, t.agt.Pos.X, t.agt.Pos.Y, t.agt.Pos.Z, yawDeg)

	style := tcell.StyleDefault.Reverse(true)
	t.drawText(0, t.height-1, line, style)
}

func (t *Terminal) drawHelp() {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for i, line := range helpLines {
		if i+1 >= t.height-1 {
			break
		}
		t.drawText(2, i+1, line, style)
	}
}

func (t *Terminal) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		if x+i >= t.width {
			break
		}
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}
