// Package textview is the built-in placeholder engine.
//
// It exists so the shell is runnable and testable without a real browsing
// engine: an address line edited through the shell's editing commands, a
// locally generated placeholder body for the current URL, clamped wheel
// scrolling, and a caret that follows clicks. It fetches nothing and lays
// nothing out; those jobs belong to whatever real engine replaces it.
//
// The package registers itself under the name "textview"; a blank import
// makes it selectable.
package textview

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/scrap/engine"
	"github.com/lixenwraith/scrap/window"
)

func init() {
	engine.Register("textview", func() engine.Engine { return New() })
}

var (
	styleAddress = tcell.StyleDefault.Reverse(true)
	styleBody    = tcell.StyleDefault
	styleCaret   = tcell.StyleDefault.Reverse(true)
	styleDim     = tcell.StyleDefault.Dim(true)
)

// View implements engine.Engine over a single page view.
type View struct {
	surface *window.Surface

	id      uuid.UUID
	url     string
	address []rune
	body    []string
	scroll  int

	caretX, caretY int // body coordinates, caretY is a body line index
	haveCaret      bool

	outbox []engine.Event
	closed bool
}

// New creates a detached view. The shell attaches it before use.
func New() *View {
	return &View{}
}

func (v *View) emit(ev engine.Event) {
	v.outbox = append(v.outbox, ev)
}

// Attach implements engine.Engine.
func (v *View) Attach(s *window.Surface) error {
	if s == nil {
		return fmt.Errorf("nil surface")
	}
	v.surface = s
	return nil
}

// Handle implements engine.Engine.
func (v *View) Handle(cmd engine.Command) error {
	if v.closed {
		return fmt.Errorf("view is closed")
	}

	switch cmd.Type {
	case engine.CommandInsertRune:
		v.address = append(v.address, cmd.Rune)

	case engine.CommandEraseBackward:
		if len(v.address) == 0 {
			v.emit(engine.Event{Type: engine.EventBell, View: v.id})
			return nil
		}
		v.address = v.address[:len(v.address)-1]

	case engine.CommandInsertNewline:
		typed := strings.TrimSpace(string(v.address))
		if typed == "" || typed == v.url {
			v.emit(engine.Event{Type: engine.EventBell, View: v.id})
			return nil
		}
		// Ask the shell; the grant comes back as CommandNavigate.
		v.emit(engine.Event{Type: engine.EventNavigationRequest, View: v.id, URL: typed})

	case engine.CommandNavigate:
		v.id = cmd.View
		v.url = cmd.URL
		v.address = []rune(cmd.URL)
		v.body = placeholderBody(cmd.URL)
		v.scroll = 0
		v.haveCaret = false
		v.emit(engine.Event{Type: engine.EventTitleChanged, View: v.id, Title: "scrap — " + cmd.URL})

	case engine.CommandScroll:
		v.scroll += cmd.DY
		v.clampScroll()

	case engine.CommandPointerMove, engine.CommandPointerDown, engine.CommandPointerUp:
		// Only clicks change view state.

	case engine.CommandClick:
		if cmd.Button == engine.ButtonLeft && cmd.Y >= bodyTop {
			v.caretX = cmd.X
			v.caretY = cmd.Y - bodyTop + v.scroll
			v.haveCaret = v.caretY < len(v.body)
		}

	case engine.CommandResize:
		v.clampScroll()

	default:
		return fmt.Errorf("unsupported command type %d", cmd.Type)
	}
	return nil
}

// bodyTop is the first surface row of page content; row 0 is the address
// line.
const bodyTop = 1

func (v *View) viewportHeight() int {
	if v.surface == nil {
		return 0
	}
	h := v.surface.Height() - bodyTop
	if h < 0 {
		return 0
	}
	return h
}

func (v *View) maxScroll() int {
	m := len(v.body) - v.viewportHeight()
	if m < 0 {
		return 0
	}
	return m
}

func (v *View) clampScroll() {
	if v.scroll < 0 {
		v.scroll = 0
	}
	if m := v.maxScroll(); v.scroll > m {
		v.scroll = m
	}
}

// Render implements engine.Engine.
func (v *View) Render() error {
	if v.surface == nil {
		return fmt.Errorf("render before attach")
	}
	s := v.surface
	s.Clear()

	// Address line with a trailing caret cell.
	for x := 0; x < s.Width(); x++ {
		s.SetCell(x, 0, ' ', styleAddress)
	}
	addr := "▸ " + string(v.address)
	s.SetString(0, 0, addr, styleAddress)
	caretCol := len([]rune(addr))
	if caretCol < s.Width() {
		s.SetCell(caretCol, 0, ' ', styleAddress.Blink(true))
	}

	// Body with scroll offset.
	height := v.viewportHeight()
	for row := 0; row < height; row++ {
		idx := v.scroll + row
		if idx >= len(v.body) {
			break
		}
		s.SetString(0, bodyTop+row, v.body[idx], styleBody)
	}

	// Caret placed by the last click.
	if v.haveCaret {
		if y := v.caretY - v.scroll + bodyTop; y >= bodyTop && y < s.Height() {
			c, ok := s.Cell(v.caretX, y)
			if ok {
				s.SetCell(v.caretX, y, c.Rune, styleCaret)
			}
		}
	}

	// Scroll position marker in the bottom-right corner.
	if m := v.maxScroll(); m > 0 {
		marker := fmt.Sprintf(" %d/%d ", v.scroll, m)
		s.SetString(s.Width()-len(marker), s.Height()-1, marker, styleDim)
	}
	return nil
}

// Events implements engine.Engine.
func (v *View) Events() []engine.Event {
	out := v.outbox
	v.outbox = nil
	return out
}

// Close implements engine.Engine.
func (v *View) Close() error {
	v.closed = true
	v.surface = nil
	return nil
}

// URL returns the current location.
func (v *View) URL() string {
	return v.url
}

// Scroll returns the current scroll offset, for tests.
func (v *View) Scroll() int {
	return v.scroll
}

// placeholderBody generates deterministic local content for a URL. Long
// enough to scroll on an ordinary terminal.
func placeholderBody(url string) []string {
	lines := []string{
		"",
		"  " + url,
		"  " + strings.Repeat("─", len(url)+2),
		"",
		"  This view is drawn by the built-in textview engine. Nothing was",
		"  fetched and nothing was laid out; a real browsing engine attached",
		"  to the same surface would render the page here.",
		"",
		"  The shell forwards your input as engine commands:",
		"",
		"    enter        navigate to the address line",
		"    backspace    edit the address line",
		"    characters   typed into the address line",
		"    wheel        scroll this text",
		"    click        place the caret",
		"    ctrl+q       quit the shell",
		"",
	}
	for i := 1; i <= 40; i++ {
		lines = append(lines, fmt.Sprintf("  %3d  ·", i))
	}
	return lines
}
