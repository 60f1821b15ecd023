package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scene-pilot/vmath"
)

// glyph is one projected scene point pending depth-sorted drawing
type glyph struct {
	x, y  int
	depth float64
	r     rune
	style tcell.Style
}

var (
	groundStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	rigidStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	baseStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	linkStyle   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
)

// groundExtent is the half-width of the drawn ground grid, in meters
const groundExtent = 8

func (t *Terminal) drawScene() {
	if t.world == nil {
		return
	}

	cam := t.agt.Camera()
	fbW, fbH := float64(t.width), float64(t.height)
	glyphs := make([]glyph, 0, 128)

	add := func(world vmath.Vec3, radius float64, style tcell.Style) {
		point, depth, ok := cam.Project(world, fbW, fbH)
		if !ok {
			return
		}
		x, y := int(point.X), int(point.Y)
		if x < 0 || x >= t.width || y < 0 || y >= t.height-1 {
			return
		}
		glyphs = append(glyphs, glyph{x: x, y: y, depth: depth, r: bodyRune(radius, depth), style: style})
	}

	// Ground grid markers
	for gx := -groundExtent; gx <= groundExtent; gx++ {
		for gz := -groundExtent; gz <= groundExtent; gz++ {
			point, depth, ok := cam.Project(vmath.Vec3{X: float64(gx), Z: float64(gz)}, fbW, fbH)
			if !ok {
				continue
			}
			x, y := int(point.X), int(point.Y)
			if x < 0 || x >= t.width || y < 0 || y >= t.height-1 {
				continue
			}
			glyphs = append(glyphs, glyph{x: x, y: y, depth: depth, r: '.', style: groundStyle})
		}
	}

	for _, rb := range t.world.Rigids() {
		add(rb.Pos, rb.Radius, rigidStyle)
	}
	for _, ab := range t.world.Articulated() {
		add(ab.Pos, ab.Radius, baseStyle)
		for i := range ab.Links {
			add(ab.LinkWorldPos(i), ab.Links[i].Radius, linkStyle)
		}
	}

	// Far to near so closer glyphs overwrite
	sort.Slice(glyphs, func(i, j int) bool {
		return glyphs[i].depth > glyphs[j].depth
	})
	for _, g := range glyphs {
		t.screen.SetContent(g.x, g.y, g.r, nil, g.style)
	}
}

// bodyRune picks a glyph by apparent size
func bodyRune(radius, depth float64) rune {
	if depth <= 0 {
		return 'O'
	}
	apparent := radius / depth
	switch {
	case apparent > 0.08:
		return 'O'
	case apparent > 0.03:
		return 'o'
	default:
		return '·'
	}
}

// HelpText returns the key-command help as one block, for logging at
// startup
func HelpText() string {
	text := ""
	for _, line := range helpLines {
		text += line + "\n"
	}
	return text
}

var helpLines = []string{
	"scene-pilot",
	"",
	"Mouse ('m' cycles LOOK/GRAB):",
	"  LOOK  left-drag: rotate body and look up/down",
	"        wheel: zoom FOV (+shift fine)",
	"  GRAB  left-drag: move object, point-to-point joint",
	"        right-drag: move object, fixed joint",
	"        wheel: pull/push gripped object (+shift coarse)",
	"",
	"Keys:",
	"  wasd      move body    zx  move up/down",
	"  arrows    turn / look up-down",
	"  space     toggle physics simulation",
	"  .         single physics step when paused",
	"  v         invert gravity",
	"  r         reset scene",
	"  h         toggle this help",
	"  esc       quit",
}
