// Package engine defines the embedding boundary between the shell and a
// browsing/rendering engine.
//
// The shell's obligations to an engine are small and fixed: construct it
// once, attach it to a drawing surface, forward commands in arrival order,
// request one render pass per event-loop iteration, and close it before
// process exit. Everything behind the Engine interface (layout, scripting,
// fetching) is the engine's own concern and invisible to the shell.
//
// Engines are registered by name (see Register) so the shell can select an
// implementation from configuration without importing it directly.
package engine

import "github.com/lixenwraith/scrap/window"

// Engine is the handle the shell drives. Exactly one Engine exists per
// process; the shell owns it for the process lifetime.
//
// All methods are called from the shell's loop goroutine. An engine that
// uses internal concurrency must not let it show across this boundary.
type Engine interface {
	// Attach binds the engine to its render target. Called once, before
	// any command is forwarded. An Attach error is fatal to the shell.
	Attach(s *window.Surface) error

	// Handle processes a single command. Errors are reported to the shell,
	// which logs them and continues; an engine that cannot degrade
	// gracefully should fail Render instead.
	Handle(cmd Command) error

	// Render draws the current state into the attached surface. The shell
	// requests exactly one render pass per event-loop iteration. A Render
	// error is fatal.
	Render() error

	// Events drains messages the engine has emitted since the last call.
	// Handling these may enqueue further commands; the shell loops until
	// both sides are quiescent.
	Events() []Event

	// Close releases the engine. No method is called after Close.
	Close() error
}
