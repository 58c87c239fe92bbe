package engine

import "github.com/google/uuid"

// CommandType discriminates shell-to-engine commands
type CommandType uint8

const (
	CommandNone CommandType = iota

	// Pointer commands carry surface-space coordinates
	CommandPointerMove // pointer moved to X,Y
	CommandPointerDown // Button pressed at X,Y
	CommandPointerUp   // Button released at X,Y
	CommandClick       // press+release on the same cell

	CommandScroll // signed wheel delta DX,DY

	// Editing commands. Backspace and enter are the only control codes the
	// shell recognizes; every other key arrives as CommandInsertRune.
	CommandInsertRune    // printable character Rune
	CommandEraseBackward // backspace
	CommandInsertNewline // enter

	CommandResize   // surface is now Width x Height
	CommandNavigate // load URL in view View
)

// Button identifies a pointer button
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Command is one instruction from the shell to the engine. Commands are
// immutable values; only the fields relevant to Type are set.
type Command struct {
	Type   CommandType
	X, Y   int    // pointer position, surface space, origin top-left
	Button Button // pointer button for down/up/click
	DX, DY int    // scroll delta, sign preserved from the input event
	Rune   rune   // character for CommandInsertRune
	Width  int    // new surface size for CommandResize
	Height int
	URL    string    // target for CommandNavigate
	View   uuid.UUID // view receiving CommandNavigate
}

// PointerMove builds a pointer-move command.
func PointerMove(x, y int) Command {
	return Command{Type: CommandPointerMove, X: x, Y: y}
}

// PointerDown builds a button-press command.
func PointerDown(b Button, x, y int) Command {
	return Command{Type: CommandPointerDown, Button: b, X: x, Y: y}
}

// PointerUp builds a button-release command.
func PointerUp(b Button, x, y int) Command {
	return Command{Type: CommandPointerUp, Button: b, X: x, Y: y}
}

// Click builds a click command.
func Click(b Button, x, y int) Command {
	return Command{Type: CommandClick, Button: b, X: x, Y: y}
}

// Scroll builds a scroll command with a signed delta.
func Scroll(dx, dy int) Command {
	return Command{Type: CommandScroll, DX: dx, DY: dy}
}

// InsertRune builds a character-insertion command.
func InsertRune(r rune) Command {
	return Command{Type: CommandInsertRune, Rune: r}
}

// EraseBackward builds the backspace editing command.
func EraseBackward() Command {
	return Command{Type: CommandEraseBackward}
}

// InsertNewline builds the enter editing command.
func InsertNewline() Command {
	return Command{Type: CommandInsertNewline}
}

// Resize builds a surface-resize command.
func Resize(width, height int) Command {
	return Command{Type: CommandResize, Width: width, Height: height}
}

// Navigate builds a navigation command for the given view.
func Navigate(view uuid.UUID, url string) Command {
	return Command{Type: CommandNavigate, View: view, URL: url}
}

// IsEditing reports whether the command is one of the two dedicated editing
// commands (backspace, enter).
func (c Command) IsEditing() bool {
	return c.Type == CommandEraseBackward || c.Type == CommandInsertNewline
}
