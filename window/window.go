// Package window owns the native screen and its drawing surface.
//
// The shell process holds exactly one Window; the Window holds exactly one
// Surface, and the two are created and destroyed together. All platform
// failures surface as *PlatformError.
package window

import (
	"github.com/gdamore/tcell/v2"
)

// Config controls window creation.
type Config struct {
	Title string
	Mouse bool // enable mouse reporting
}

// Window wraps the terminal screen and its surface.
type Window struct {
	screen  tcell.Screen
	surface *Surface
	open    bool
}

// Create opens the terminal screen and builds its surface. Fails with a
// *PlatformError when the OS denies screen creation (no TTY, unknown
// terminfo).
func Create(cfg Config) (*Window, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, &PlatformError{Op: "create", Err: err}
	}
	return initWindow(screen, cfg, 0, 0)
}

// NewSimulation opens a window backed by a tcell simulation screen of the
// given size. Used by tests and headless runs; behavior is otherwise
// identical to Create.
func NewSimulation(cfg Config, width, height int) (*Window, error) {
	screen := tcell.NewSimulationScreen("UTF-8")
	return initWindow(screen, cfg, width, height)
}

func initWindow(screen tcell.Screen, cfg Config, width, height int) (*Window, error) {
	if err := screen.Init(); err != nil {
		return nil, &PlatformError{Op: "init", Err: err}
	}
	if sim, ok := screen.(tcell.SimulationScreen); ok && width > 0 {
		sim.SetSize(width, height)
	}
	if cfg.Title != "" {
		screen.SetTitle(cfg.Title)
	}
	if cfg.Mouse {
		screen.EnableMouse()
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	w, h := screen.Size()
	return &Window{
		screen:  screen,
		surface: NewSurface(w, h),
		open:    true,
	}, nil
}

// Screen exposes the underlying tcell screen for event polling.
func (w *Window) Screen() tcell.Screen {
	return w.screen
}

// Surface returns the window's drawing surface.
func (w *Window) Surface() *Surface {
	return w.surface
}

// Size returns the current screen dimensions.
func (w *Window) Size() (int, int) {
	return w.screen.Size()
}

// Resize grows or shrinks the surface to the new screen dimensions and
// returns it. The screen is resynced so the next flush repaints in full.
func (w *Window) Resize(width, height int) *Surface {
	w.surface.Resize(width, height)
	w.screen.Sync()
	return w.surface
}

// Flush blits the surface to the screen.
func (w *Window) Flush() {
	w.surface.Flush(w.screen)
}

// Close restores the terminal. Safe to call more than once.
func (w *Window) Close() {
	if !w.open {
		return
	}
	w.open = false
	w.screen.Fini()
}

// Open reports whether the window is still usable.
func (w *Window) Open() bool {
	return w.open
}
