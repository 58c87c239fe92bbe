// Package input translates raw screen events into engine commands.
//
// Translation is an explicit call returning command values, not a callback
// web, so the mapping is unit-testable without a live screen. The keyboard
// vocabulary is deliberately tiny: backspace and enter are the only control
// codes with dedicated commands; every other key is forwarded as character
// input when printable and dropped otherwise. Arrow keys, function keys and
// modifier chords are not interpreted.
package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scrap/engine"
)

// Translator converts tcell events into engine commands. The only state it
// keeps is what button-transition detection and click synthesis require:
// the previous button mask and the position of the last press.
//
// OriginX/OriginY shift window coordinates into surface space; a shell that
// insets the surface (for a status line, say) sets them accordingly.
type Translator struct {
	OriginX int
	OriginY int

	// ScrollStep is the delta magnitude per wheel event, in lines.
	// Zero means 1. The delta sign is fixed by wheel direction.
	ScrollStep int

	buttons     tcell.ButtonMask // previous non-wheel button mask
	pressButton engine.Button    // button of the last unmatched press
	pressX      int
	pressY      int
}

// NewTranslator creates a translator with the origin at the window corner.
func NewTranslator() *Translator {
	return &Translator{ScrollStep: 1}
}

// Translate maps one screen event to zero or more engine commands in the
// order the engine should receive them. Unrecognized events yield nil;
// translation never fails.
func (t *Translator) Translate(ev tcell.Event) []engine.Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.translateKey(ev)
	case *tcell.EventMouse:
		return t.translateMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return []engine.Command{engine.Resize(w, h)}
	}
	return nil
}

// translateKey maps exactly backspace and enter to editing commands and
// everything else to character insertion or nothing.
func (t *Translator) translateKey(ev *tcell.EventKey) []engine.Command {
	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return []engine.Command{engine.EraseBackward()}

	case tcell.KeyEnter:
		return []engine.Command{engine.InsertNewline()}

	case tcell.KeyRune:
		r := ev.Rune()
		if !unicode.IsPrint(r) {
			return nil
		}
		return []engine.Command{engine.InsertRune(r)}
	}

	// Ctrl+letter folds to the plain letter, the way the original shell
	// turned control characters back into the key that produced them.
	// Tab (Ctrl+I) is excluded: it is a navigation key here, not typing.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ && k != tcell.KeyTab {
		return []engine.Command{engine.InsertRune('a' + rune(k-tcell.KeyCtrlA))}
	}

	// Arrows, function keys, escape: dropped, never an editing command.
	return nil
}

// pointerButtons lists the tcell buttons the engine vocabulary knows.
// tcell's Button2 is the secondary (right) button and Button3 the middle.
var pointerButtons = []struct {
	mask tcell.ButtonMask
	btn  engine.Button
}{
	{tcell.Button1, engine.ButtonLeft},
	{tcell.Button2, engine.ButtonRight},
	{tcell.Button3, engine.ButtonMiddle},
}

// translateMouse splits a mouse event into scroll, motion, and button
// transition commands in surface coordinates.
func (t *Translator) translateMouse(ev *tcell.EventMouse) []engine.Command {
	x, y := ev.Position()
	sx, sy := x-t.OriginX, y-t.OriginY

	var cmds []engine.Command

	step := t.ScrollStep
	if step <= 0 {
		step = 1
	}
	var dx, dy int
	mask := ev.Buttons()
	if mask&tcell.WheelUp != 0 {
		dy -= step
	}
	if mask&tcell.WheelDown != 0 {
		dy += step
	}
	if mask&tcell.WheelLeft != 0 {
		dx -= step
	}
	if mask&tcell.WheelRight != 0 {
		dx += step
	}
	if dx != 0 || dy != 0 {
		cmds = append(cmds, engine.Scroll(dx, dy))
	}

	buttons := mask &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)
	if buttons == t.buttons {
		// No transition: plain motion. tcell repeats the mask on drag.
		if len(cmds) == 0 {
			cmds = append(cmds, engine.PointerMove(sx, sy))
		}
		return cmds
	}

	for _, pb := range pointerButtons {
		was := t.buttons&pb.mask != 0
		is := buttons&pb.mask != 0
		switch {
		case is && !was:
			t.pressButton = pb.btn
			t.pressX, t.pressY = sx, sy
			cmds = append(cmds, engine.PointerDown(pb.btn, sx, sy))

		case was && !is:
			cmds = append(cmds, engine.PointerUp(pb.btn, sx, sy))
			// Press and release on the same cell is a click; at cell
			// granularity that is the terminal's version of the
			// original's short-drag threshold.
			if t.pressButton == pb.btn && t.pressX == sx && t.pressY == sy {
				cmds = append(cmds, engine.Click(pb.btn, sx, sy))
			}
			if t.pressButton == pb.btn {
				t.pressButton = engine.ButtonNone
			}
		}
	}

	t.buttons = buttons
	return cmds
}
